package domain

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAccount(t *testing.T, id int64, balance int64) *Account {
	t.Helper()
	a, err := NewAccount(id, balance)
	require.NoError(t, err)
	return a
}

func requireViolation(t *testing.T, err error, kind Kind, predicate string) *Violation {
	t.Helper()
	require.Error(t, err)
	v, ok := AsViolation(err)
	require.True(t, ok, "expected a contract violation, got %v", err)
	assert.Equal(t, kind, v.Kind)
	assert.Equal(t, predicate, v.Predicate)
	return v
}

func TestNewAccount(t *testing.T) {
	a := mustAccount(t, 1, 100)
	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(100), a.Balance())

	// 零餘額合法
	z := mustAccount(t, 2, 0)
	assert.Equal(t, int64(0), z.Balance())

	// 負的初始餘額是前置條件違約
	_, err := NewAccount(3, -1)
	requireViolation(t, err, KindPrecondition, PredNonNegativeBalance)
}

func TestDeposit(t *testing.T) {
	a := mustAccount(t, 1, 100)

	require.NoError(t, a.Deposit(50))
	assert.Equal(t, int64(150), a.Balance())
}

// 金額 <= 0 擋在前置條件，餘額不變 (失敗即 no-op)
func TestDepositInvalidAmount(t *testing.T) {
	a := mustAccount(t, 1, 100)

	for _, amount := range []int64{0, -1, -100} {
		err := a.Deposit(amount)
		requireViolation(t, err, KindPrecondition, PredInvalidAmount)
		assert.Equal(t, int64(100), a.Balance())
	}
}

// 會讓 int64 溢位的存款要擋在前置條件，餘額不得變負
func TestDepositOverflow(t *testing.T) {
	a := mustAccount(t, 1, 10)

	err := a.Deposit(math.MaxInt64)
	requireViolation(t, err, KindPrecondition, PredInvalidAmount)
	assert.Equal(t, int64(10), a.Balance())

	// 剛好補到上限是合法的
	require.NoError(t, a.Deposit(math.MaxInt64-10))
	assert.Equal(t, int64(math.MaxInt64), a.Balance())

	err = a.Deposit(1)
	requireViolation(t, err, KindPrecondition, PredInvalidAmount)
	assert.Equal(t, int64(math.MaxInt64), a.Balance())
}

func TestWithdraw(t *testing.T) {
	a := mustAccount(t, 1, 100)

	require.NoError(t, a.Withdraw(30))
	assert.Equal(t, int64(70), a.Balance())
}

// 前置條件順序：先驗金額、再驗餘額。負金額的大提款要回報 invalid_amount
func TestWithdrawPreconditionOrder(t *testing.T) {
	a := mustAccount(t, 1, 10)

	err := a.Withdraw(-1000)
	requireViolation(t, err, KindPrecondition, PredInvalidAmount)

	err = a.Withdraw(11)
	requireViolation(t, err, KindPrecondition, PredInsufficientFunds)
	assert.Equal(t, int64(10), a.Balance())
}

// 剛好領光是合法的邊界：100 領 100 剩 0，再領 1 失敗且餘額仍為 0
func TestWithdrawExactBalance(t *testing.T) {
	a := mustAccount(t, 1, 100)

	require.NoError(t, a.Withdraw(100))
	assert.Equal(t, int64(0), a.Balance())

	err := a.Withdraw(1)
	requireViolation(t, err, KindPrecondition, PredInsufficientFunds)
	assert.Equal(t, int64(0), a.Balance())
}

func TestTransferTo(t *testing.T) {
	a := mustAccount(t, 1, 500)
	b := mustAccount(t, 2, 200)

	require.NoError(t, a.TransferTo(b, 500))
	assert.Equal(t, int64(0), a.Balance())
	assert.Equal(t, int64(700), b.Balance())

	// 領光之後再轉就是餘額不足
	err := a.TransferTo(b, 1)
	requireViolation(t, err, KindPrecondition, PredInsufficientFunds)
	assert.Equal(t, int64(0), a.Balance())
	assert.Equal(t, int64(700), b.Balance())
}

// 自我轉帳比較的是帳戶身分：任何金額都要被 invalid_transfer 擋下，狀態不變
func TestTransferToSelf(t *testing.T) {
	a := mustAccount(t, 1, 100)

	for _, amount := range []int64{-1, 0, 1, 100} {
		err := a.TransferTo(a, amount)
		requireViolation(t, err, KindPrecondition, PredInvalidTransfer)
		assert.Equal(t, int64(100), a.Balance())
	}
}

// 目的帳戶會溢位的轉帳要擋在前置條件，雙方餘額不變
func TestTransferOverflow(t *testing.T) {
	a := mustAccount(t, 1, 100)
	b := mustAccount(t, 2, math.MaxInt64-10)

	err := a.TransferTo(b, 11)
	requireViolation(t, err, KindPrecondition, PredInvalidAmount)
	assert.Equal(t, int64(100), a.Balance())
	assert.Equal(t, int64(math.MaxInt64-10), b.Balance())

	// 剛好補到上限是合法的
	require.NoError(t, a.TransferTo(b, 10))
	assert.Equal(t, int64(90), a.Balance())
	assert.Equal(t, int64(math.MaxInt64), b.Balance())
}

// 轉帳前置條件順序：身分 → 金額 → 餘額
func TestTransferPreconditionOrder(t *testing.T) {
	a := mustAccount(t, 1, 10)
	b := mustAccount(t, 2, 0)

	// 自我轉帳優先於金額檢查
	err := a.TransferTo(a, -5)
	requireViolation(t, err, KindPrecondition, PredInvalidTransfer)

	// 金額檢查優先於餘額檢查
	err = a.TransferTo(b, 0)
	requireViolation(t, err, KindPrecondition, PredInvalidAmount)

	err = a.TransferTo(b, 11)
	requireViolation(t, err, KindPrecondition, PredInsufficientFunds)
	assert.Equal(t, int64(10), a.Balance())
	assert.Equal(t, int64(0), b.Balance())
}

// 守恆律：隨機金額轉帳後兩帳戶總和不變，且差額精確等於轉帳金額
func TestTransferConservationRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		a0 := rng.Int63n(1_000_000 * CurrencyScale)
		b0 := rng.Int63n(1_000_000 * CurrencyScale)
		amount := 1 + rng.Int63n(a0+1)
		if amount > a0 {
			amount = a0
		}
		if amount == 0 {
			continue
		}

		a := mustAccount(t, 1, a0)
		b := mustAccount(t, 2, b0)

		require.NoError(t, a.TransferTo(b, amount))
		assert.Equal(t, a0-amount, a.Balance())
		assert.Equal(t, b0+amount, b.Balance())
		assert.Equal(t, a0+b0, a.Balance()+b.Balance())
	}
}

// 隨機存提款序列：每一步之後不變量都成立，失敗的操作不改變餘額
func TestDepositWithdrawRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	a := mustAccount(t, 1, 0)
	expected := int64(0)

	for i := 0; i < 1000; i++ {
		amount := rng.Int63n(100*CurrencyScale) - 10*CurrencyScale // 偶爾產生非法金額
		if rng.Intn(2) == 0 {
			if err := a.Deposit(amount); err == nil {
				expected += amount
			}
		} else {
			if err := a.Withdraw(amount); err == nil {
				expected -= amount
			}
		}
		require.Equal(t, expected, a.Balance())
		require.GreaterOrEqual(t, a.Balance(), int64(0))
	}
}

// Fuzz：任意輸入下，錯誤一定是合約違約或成功，餘額永不為負，轉帳守恆
func FuzzOperationSequence(f *testing.F) {
	f.Add(int64(1000000), int64(200000), int64(500000), uint8(3))
	f.Add(int64(0), int64(0), int64(1), uint8(1))
	f.Add(int64(100), int64(100), int64(-1), uint8(2))
	f.Add(int64(50), int64(20), int64(50), uint8(3))

	f.Fuzz(func(t *testing.T, rawA, rawB, amount int64, opCode uint8) {
		a0 := normalizeBalance(rawA)
		b0 := normalizeBalance(rawB)

		a, err := NewAccount(1, a0)
		if err != nil {
			t.Fatalf("seed account A: %v", err)
		}
		b, err := NewAccount(2, b0)
		if err != nil {
			t.Fatalf("seed account B: %v", err)
		}

		switch opCode % 4 {
		case 0:
			err = a.Deposit(amount)
		case 1:
			err = a.Withdraw(amount)
		case 2:
			err = a.TransferTo(b, amount)
		case 3:
			err = a.TransferTo(a, amount)
		}

		if err != nil {
			v, ok := AsViolation(err)
			if !ok {
				t.Fatalf("non-violation error: %v", err)
			}
			if v.Kind != KindPrecondition {
				t.Fatalf("only precondition violations are reachable, got %v", v)
			}
			// 前置條件擋下的操作不得變動任何狀態
			if a.Balance() != a0 || b.Balance() != b0 {
				t.Fatalf("failed operation mutated state: a=%d b=%d", a.Balance(), b.Balance())
			}
		}

		if a.Balance() < 0 || b.Balance() < 0 {
			t.Fatalf("invariant broken: a=%d b=%d", a.Balance(), b.Balance())
		}
		if a.Balance()+b.Balance() != a0+b0 && opCode%4 >= 2 {
			t.Fatalf("conservation broken: got %d want %d", a.Balance()+b.Balance(), a0+b0)
		}
	})
}

func normalizeBalance(v int64) int64 {
	if v == math.MinInt64 {
		return 0
	}
	if v < 0 {
		v = -v
	}
	// 限制範圍避免加總溢位
	return v % (1_000_000 * CurrencyScale)
}
