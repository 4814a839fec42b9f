package usecase

import (
	"context"

	"github.com/JoeShih716/go-contract-ledger/internal/app/core/domain"
)

// AccountStore 是帳戶儲存層的介面
// 實作者負責把同一個帳戶上的操作序列化 (per-account lock)，
// 讓合約檢查流程 (前置條件到不變量) 不會被其他操作插隊
type AccountStore interface {
	// 不再分 Deposit/Withdraw，直接看 op.Type 決定
	PostOperation(ctx context.Context, op *domain.Operation) error
	// GetAccountBalance 取得帳戶餘額
	GetAccountBalance(ctx context.Context, accountID int64) (int64, error)
	// OpenAccount 建立帳戶並回傳初始餘額
	OpenAccount(ctx context.Context, accountID int64, initialBalance int64) (int64, error)
}
