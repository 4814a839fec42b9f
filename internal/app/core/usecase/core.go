package usecase

import (
	"context"

	"github.com/JoeShih716/go-contract-ledger/internal/app/core/domain"
)

// CoreUseCase 是核心業務邏輯層
type CoreUseCase struct {
	store AccountStore
}

func NewCoreUseCase(store AccountStore) *CoreUseCase {
	return &CoreUseCase{
		store: store,
	}
}

// PostOperation 處理操作
func (c *CoreUseCase) PostOperation(ctx context.Context, op *domain.Operation) error {
	return c.store.PostOperation(ctx, op)
}

// GetAccountBalance 取得帳戶餘額
func (c *CoreUseCase) GetAccountBalance(ctx context.Context, accountID int64) (int64, error) {
	return c.store.GetAccountBalance(ctx, accountID)
}

// OpenAccount 建立帳戶
func (c *CoreUseCase) OpenAccount(ctx context.Context, accountID int64, initialBalance int64) (int64, error) {
	return c.store.OpenAccount(ctx, accountID, initialBalance)
}
