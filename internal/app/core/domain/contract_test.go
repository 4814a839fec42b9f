package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "precondition_violation", KindPrecondition.String())
	assert.Equal(t, "postcondition_violation", KindPostcondition.String())
	assert.Equal(t, "invariant_violation", KindInvariant.String())
	assert.Equal(t, "unknown_violation", Kind(0).String())
}

func TestViolationError(t *testing.T) {
	v := &Violation{
		Kind:      KindPrecondition,
		Op:        OpWithdraw,
		Predicate: PredInsufficientFunds,
		Message:   "insufficient funds for withdrawal",
	}
	assert.Equal(t,
		"precondition_violation: withdraw/insufficient_funds: insufficient funds for withdrawal",
		v.Error())
}

// 述詞必須依宣告順序檢查，第一條失敗就停，後面的述詞不得執行
func TestEvaluateShortCircuit(t *testing.T) {
	evaluated := make([]string, 0, 3)
	track := func(label string, ok bool) predicate {
		return predicate{
			label:   label,
			message: label + " failed",
			holds: func() bool {
				evaluated = append(evaluated, label)
				return ok
			},
		}
	}

	v := evaluate(KindPrecondition, OpWithdraw,
		track("first", true),
		track("second", false),
		track("third", true),
	)

	require.NotNil(t, v)
	assert.Equal(t, "second", v.Predicate)
	assert.Equal(t, KindPrecondition, v.Kind)
	// third 不能被執行
	assert.Equal(t, []string{"first", "second"}, evaluated)
}

func TestEvaluateAllPass(t *testing.T) {
	v := evaluate(KindPostcondition, OpDeposit,
		predicate{label: "a", holds: func() bool { return true }},
		predicate{label: "b", holds: func() bool { return true }},
	)
	assert.Nil(t, v)
}

// 不變量是無條件檢查：直接構造一個非法狀態的帳戶，驗證評估器真的會抓到
func TestCheckInvariantCatchesNegativeBalance(t *testing.T) {
	broken := &Account{ID: 7, balance: -1}

	v := checkInvariants(OpWithdraw, broken)
	require.NotNil(t, v)
	assert.Equal(t, KindInvariant, v.Kind)
	assert.Equal(t, PredNonNegativeBalance, v.Predicate)
	assert.Contains(t, v.Message, "-1")
}

// 轉帳要驗證「每一個」碰過的帳戶，第二個帳戶壞掉也要被抓到
func TestCheckInvariantsChecksEveryAccount(t *testing.T) {
	ok := &Account{ID: 1, balance: 10}
	broken := &Account{ID: 2, balance: -5}

	v := checkInvariants(OpTransfer, ok, broken)
	require.NotNil(t, v)
	assert.Equal(t, KindInvariant, v.Kind)
}

// 階段包裝器要標上正確的違約種類
func TestPhaseHelperKinds(t *testing.T) {
	fail := predicate{label: "x", message: "x failed", holds: func() bool { return false }}

	v := checkPre(OpDeposit, fail)
	require.NotNil(t, v)
	assert.Equal(t, KindPrecondition, v.Kind)

	v = checkPost(OpDeposit, fail)
	require.NotNil(t, v)
	assert.Equal(t, KindPostcondition, v.Kind)
}

// 後置條件評估器本身也要能抓到錯的差額
func TestPostconditionDetectsWrongDelta(t *testing.T) {
	balance := int64(150)
	old := balanceSnapshot{balance: 100}
	amount := int64(40) // 差額對不上

	v := checkPost(OpDeposit, predicate{
		label:   PredBalanceDelta,
		message: fmt.Sprintf("balance must increase by exactly %d", amount),
		holds:   func() bool { return balance == old.balance+amount },
	})
	require.NotNil(t, v)
	assert.Equal(t, KindPostcondition, v.Kind)
	assert.Equal(t, PredBalanceDelta, v.Predicate)
}

func TestAsViolation(t *testing.T) {
	var err error = &Violation{Kind: KindPrecondition, Op: OpDeposit, Predicate: PredInvalidAmount}

	v, ok := AsViolation(err)
	require.True(t, ok)
	assert.Equal(t, PredInvalidAmount, v.Predicate)

	// 包過一層也要能取出
	wrapped := fmt.Errorf("post operation: %w", err)
	v, ok = AsViolation(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindPrecondition, v.Kind)

	_, ok = AsViolation(errors.New("plain"))
	assert.False(t, ok)
}
