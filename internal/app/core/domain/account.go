package domain

import (
	"fmt"
	"math"
)

// amount 使用 int64，並定義精度：小數點後 4 位
// 整數最小單位讓後置條件的「精確相等」比較不受浮點誤差影響
const (
	CurrencyScale = 10000
)

// 操作名稱，違約回報時使用
const (
	OpOpenAccount = "open_account"
	OpDeposit     = "deposit"
	OpWithdraw    = "withdraw"
	OpTransfer    = "transfer_to"
)

// Account 帳戶
// 不變量：balance >= 0，每一次公開操作結束前都會重新驗證
// balance 不直接匯出，所有變動都必須走合約檢查流程
type Account struct {
	ID      int64
	balance int64
}

// balanceSnapshot deposit/withdraw 後置條件所需的舊狀態
// 在前置條件通過之後、變動之前取好，取完即不再更動
type balanceSnapshot struct {
	balance int64
}

// transferSnapshot 轉帳後置條件所需的雙方舊狀態
// 必須在「任何一方」變動之前一次取好
type transferSnapshot struct {
	selfBalance  int64
	otherBalance int64
}

// NewAccount 建立帳戶，初始餘額不得為負
//
// 回傳:
//
//	*Account: 帳戶實例
//	error: 初始餘額為負時回傳前置條件違約
func NewAccount(id int64, initialBalance int64) (*Account, error) {
	if v := checkPre(OpOpenAccount, predicate{
		label:   PredNonNegativeBalance,
		message: "initial balance must be >= 0",
		holds:   func() bool { return initialBalance >= 0 },
	}); v != nil {
		return nil, v
	}

	a := &Account{ID: id, balance: initialBalance}

	// 不變量無條件檢查，不因前置條件已涵蓋而省略
	if v := a.checkInvariant(OpOpenAccount); v != nil {
		return nil, v
	}
	return a, nil
}

// Balance 目前餘額 (最小單位)
func (a *Account) Balance() int64 {
	return a.balance
}

// checkInvariant 驗證帳戶自身的不變量
func (a *Account) checkInvariant(op string) *Violation {
	return evaluate(KindInvariant, op, predicate{
		label:   PredNonNegativeBalance,
		message: fmt.Sprintf("balance must never be negative, got %d", a.balance),
		holds:   func() bool { return a.balance >= 0 },
	})
}

// Deposit 存款
// 流程：前置條件 → 快照 → 變動 → 後置條件 → 不變量，任一關失敗立即回報
func (a *Account) Deposit(amount int64) error {
	if v := checkPre(OpDeposit,
		predicate{
			label:   PredInvalidAmount,
			message: "deposit amount must be positive",
			holds:   func() bool { return amount > 0 },
		},
		predicate{
			label:   PredInvalidAmount,
			message: "deposit amount overflows the balance",
			// int64 溢位會讓餘額變負，必須擋在變動之前
			holds: func() bool { return amount <= math.MaxInt64-a.balance },
		},
	); v != nil {
		return v
	}

	old := balanceSnapshot{balance: a.balance}

	a.balance = a.balance + amount

	if v := checkPost(OpDeposit, predicate{
		label:   PredBalanceDelta,
		message: fmt.Sprintf("balance must increase by exactly %d", amount),
		holds:   func() bool { return a.balance == old.balance+amount },
	}); v != nil {
		return v
	}
	if v := checkInvariants(OpDeposit, a); v != nil {
		return v
	}
	return nil
}

// Withdraw 提款
// 前置條件依宣告順序檢查：金額必須為正，再檢查餘額是否足夠
func (a *Account) Withdraw(amount int64) error {
	if v := checkPre(OpWithdraw,
		predicate{
			label:   PredInvalidAmount,
			message: "withdrawal amount must be positive",
			holds:   func() bool { return amount > 0 },
		},
		predicate{
			label:   PredInsufficientFunds,
			message: "insufficient funds for withdrawal",
			holds:   func() bool { return a.balance >= amount },
		},
	); v != nil {
		return v
	}

	old := balanceSnapshot{balance: a.balance}

	a.balance = a.balance - amount

	if v := checkPost(OpWithdraw, predicate{
		label:   PredBalanceDelta,
		message: fmt.Sprintf("balance must decrease by exactly %d", amount),
		holds:   func() bool { return a.balance == old.balance-amount },
	}); v != nil {
		return v
	}
	if v := checkInvariants(OpWithdraw, a); v != nil {
		return v
	}
	return nil
}

// TransferTo 轉帳到另一個帳戶
// 兩個帳戶的變動要嘛都套用、要嘛都不套用：前置條件全數通過之後
// 的純記憶體加減不會失敗，所以不需要真正的 rollback
func (a *Account) TransferTo(other *Account, amount int64) error {
	if v := checkPre(OpTransfer,
		predicate{
			label:   PredInvalidTransfer,
			message: "cannot transfer to the same account",
			// 比較的是帳戶身分，不是餘額
			holds: func() bool { return a != other },
		},
		predicate{
			label:   PredInvalidAmount,
			message: "transfer amount must be positive",
			holds:   func() bool { return amount > 0 },
		},
		predicate{
			label:   PredInsufficientFunds,
			message: "insufficient funds for transfer",
			holds:   func() bool { return a.balance >= amount },
		},
		predicate{
			label:   PredInvalidAmount,
			message: "transfer amount overflows the destination balance",
			// 目的帳戶的 int64 溢位會讓餘額變負，必須擋在變動之前
			holds: func() bool { return amount <= math.MaxInt64-other.balance },
		},
	); v != nil {
		return v
	}

	// 雙方餘額在任何一方變動前一次取好
	old := transferSnapshot{
		selfBalance:  a.balance,
		otherBalance: other.balance,
	}

	a.balance = a.balance - amount
	other.balance = other.balance + amount

	if v := checkPost(OpTransfer,
		predicate{
			label:   PredSelfBalanceDelta,
			message: fmt.Sprintf("source balance must decrease by exactly %d", amount),
			holds:   func() bool { return a.balance == old.selfBalance-amount },
		},
		predicate{
			label:   PredOtherBalanceDelta,
			message: fmt.Sprintf("destination balance must increase by exactly %d", amount),
			holds:   func() bool { return other.balance == old.otherBalance+amount },
		},
	); v != nil {
		return v
	}

	// 碰過的兩個帳戶都要重新驗證不變量，不是只驗證被呼叫的那一個
	if v := checkInvariants(OpTransfer, a, other); v != nil {
		return v
	}
	return nil
}
