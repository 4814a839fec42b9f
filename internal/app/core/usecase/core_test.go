package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-contract-ledger/internal/app/core/domain"
)

// stubStore 記錄呼叫內容的假儲存層
type stubStore struct {
	lastOp  *domain.Operation
	balance int64
	err     error
}

func (s *stubStore) PostOperation(ctx context.Context, op *domain.Operation) error {
	s.lastOp = op
	return s.err
}

func (s *stubStore) GetAccountBalance(ctx context.Context, accountID int64) (int64, error) {
	return s.balance, s.err
}

func (s *stubStore) OpenAccount(ctx context.Context, accountID int64, initialBalance int64) (int64, error) {
	return initialBalance, s.err
}

func TestCoreUseCasePassThrough(t *testing.T) {
	ctx := context.Background()
	stub := &stubStore{balance: 42}
	core := NewCoreUseCase(stub)

	op := &domain.Operation{RefID: uuid.New(), To: 1, Amount: 10, Type: domain.OperationTypeDeposit}
	require.NoError(t, core.PostOperation(ctx, op))
	assert.Same(t, op, stub.lastOp)

	got, err := core.GetAccountBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)

	opened, err := core.OpenAccount(ctx, 9, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), opened)
}

func TestCoreUseCasePropagatesError(t *testing.T) {
	ctx := context.Background()
	stub := &stubStore{err: domain.ErrAccountNotFound}
	core := NewCoreUseCase(stub)

	_, err := core.GetAccountBalance(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}
