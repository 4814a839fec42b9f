package domain

import "fmt"

// Kind 合約違約的種類
// 為了極致節省記憶體，使用 uint8
type Kind uint8

const (
	// 前置條件違約：呼叫端輸入或業務規則不符，狀態未變動
	KindPrecondition Kind = 1
	// 後置條件違約：變動邏輯本身有 Bug，狀態可能已變動
	KindPostcondition Kind = 2
	// 不變量違約：帳戶離開合法狀態，同樣代表核心有 Bug
	KindInvariant Kind = 3
)

func (k Kind) String() string {
	switch k {
	case KindPrecondition:
		return "precondition_violation"
	case KindPostcondition:
		return "postcondition_violation"
	case KindInvariant:
		return "invariant_violation"
	default:
		return "unknown_violation"
	}
}

// 述詞標籤：回報違約時識別是哪一條規則失敗
const (
	PredInvalidAmount      = "invalid_amount"
	PredInsufficientFunds  = "insufficient_funds"
	PredInvalidTransfer    = "invalid_transfer"
	PredBalanceDelta       = "balance_delta"
	PredSelfBalanceDelta   = "self_balance_delta"
	PredOtherBalanceDelta  = "other_balance_delta"
	PredNonNegativeBalance = "non_negative_balance"
)

// Violation 單筆合約違約
// 三種 Kind 共用同一個結構，讓上層 Adapter 可以統一轉換成狀態碼
type Violation struct {
	// Kind: 違約種類
	Kind Kind
	// Op: 操作名稱 (deposit / withdraw / transfer_to / open_account)
	Op string
	// Predicate: 失敗的述詞標籤
	Predicate string
	// Message: 給人看的錯誤訊息
	Message string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s/%s: %s", v.Kind, v.Op, v.Predicate, v.Message)
}

// predicate 一條具名的布林規則
// holds 必須是純函式：同樣的狀態永遠得到同樣的結果
type predicate struct {
	label   string
	message string
	holds   func() bool
}

// evaluate 依宣告順序逐條檢查，遇到第一條失敗就停 (short-circuit)
//
// 回傳:
//
//	*Violation: 第一條失敗的述詞，全部通過則為 nil
func evaluate(kind Kind, op string, preds ...predicate) *Violation {
	for _, p := range preds {
		if !p.holds() {
			return &Violation{
				Kind:      kind,
				Op:        op,
				Predicate: p.label,
				Message:   p.message,
			}
		}
	}
	return nil
}

// checkPre 前置條件檢查，必須在任何狀態變動之前執行
func checkPre(op string, preds ...predicate) *Violation {
	return evaluate(KindPrecondition, op, preds...)
}

// checkPost 後置條件檢查，在變動完成後比對快照與新狀態
func checkPost(op string, preds ...predicate) *Violation {
	return evaluate(KindPostcondition, op, preds...)
}

// checkInvariants 重新驗證本次操作碰過的「每一個」帳戶
// 轉帳同時變動兩個帳戶，兩邊的不變量都要各自成立
func checkInvariants(op string, accounts ...*Account) *Violation {
	for _, a := range accounts {
		if v := a.checkInvariant(op); v != nil {
			return v
		}
	}
	return nil
}
