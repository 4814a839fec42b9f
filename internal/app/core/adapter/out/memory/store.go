package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-contract-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-contract-ledger/internal/app/core/usecase"
)

// lockedAccount 帳戶 + 專屬鎖
// 一個帳戶身分對應一把互斥鎖：操作從前置條件檢查到不變量檢查
// 全程持鎖，保證合約流程不被同帳戶的其他操作插隊
type lockedAccount struct {
	mu   sync.Mutex
	acct *domain.Account
}

// Store 是一個以記憶體 Map 實現的帳戶儲存層
//
// 結構:
//
//	accounts: 帳戶資料 Map (每個帳戶帶自己的鎖)
//	mu: RWMutex 保護 accounts 與 processed 兩張 Map
//	processed: 已處理過的操作 Map (冪等檢查)
type Store struct {
	accounts map[int64]*lockedAccount
	mu       sync.RWMutex
	// 已處理過的操作
	processed map[uuid.UUID]time.Time
}

// NewStore 建立一個新的 Store 實例
//
// 參數:
//
//	seed: 初始帳戶 Map (帳戶 ID -> 初始餘額)
//
// 回傳:
//
//	*Store: Store 實例
//	error: 初始餘額違反合約時回傳違約
func NewStore(seed map[int64]int64) (*Store, error) {
	store := &Store{
		accounts:  make(map[int64]*lockedAccount, len(seed)),
		processed: make(map[uuid.UUID]time.Time),
	}
	for id, balance := range seed {
		acct, err := domain.NewAccount(id, balance)
		if err != nil {
			return nil, err
		}
		store.accounts[id] = &lockedAccount{acct: acct}
	}
	return store, nil
}

// getOrCreate 取出帳戶，不存在就以零餘額建立
// NewAccount(id, 0) 的前置條件必然通過，錯誤可以忽略
func (s *Store) getOrCreate(id int64) *lockedAccount {
	s.mu.RLock()
	entry, ok := s.accounts[id]
	s.mu.RUnlock()
	if ok {
		return entry
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok = s.accounts[id]; ok {
		return entry
	}
	acct, _ := domain.NewAccount(id, 0)
	entry = &lockedAccount{acct: acct}
	s.accounts[id] = entry
	return entry
}

// PostOperation 處理操作請求
//
// 參數:
//
//	ctx: 上下文
//	op: 操作請求物件
//
// 回傳:
//
//	error: 合約違約或處理錯誤
func (s *Store) PostOperation(ctx context.Context, op *domain.Operation) error {
	// 1. 依遞增順序鎖定所有會碰到的帳戶 (避免死鎖)
	ids := op.LockIDs()
	if len(ids) == 0 {
		return domain.ErrUnknownOperationType
	}

	entries := make(map[int64]*lockedAccount, len(ids))
	for _, id := range ids {
		entry := s.getOrCreate(id)
		entry.mu.Lock()
		entries[id] = entry
	}
	defer func() {
		for _, entry := range entries {
			entry.mu.Unlock()
		}
	}()

	// 2. 冪等檢查：同一個 RefID 只處理一次
	// 重複提交一定碰同一組帳戶，已被上面的帳戶鎖序列化
	s.mu.RLock()
	_, seen := s.processed[op.RefID]
	s.mu.RUnlock()
	if seen {
		return nil
	}

	// 3. 核心操作分發，合約檢查都在 domain 層完成
	var err error
	switch op.Type {
	case domain.OperationTypeDeposit:
		err = entries[op.To].acct.Deposit(op.Amount)
	case domain.OperationTypeWithdraw:
		err = entries[op.From].acct.Withdraw(op.Amount)
	case domain.OperationTypeTransfer:
		err = entries[op.From].acct.TransferTo(entries[op.To].acct, op.Amount)
	default:
		return domain.ErrUnknownOperationType
	}

	// 4. 成功才記錄冪等
	if err == nil {
		s.mu.Lock()
		s.processed[op.RefID] = time.Now()
		s.mu.Unlock()
	}
	return err
}

// GetAccountBalance 取得指定帳戶的當前餘額
//
// 參數:
//
//	ctx: 上下文
//	accountID: 帳戶 ID
//
// 回傳:
//
//	int64: 帳戶餘額
//	error: 查詢錯誤 (如帳戶不存在)
func (s *Store) GetAccountBalance(ctx context.Context, accountID int64) (int64, error) {
	s.mu.RLock()
	entry, ok := s.accounts[accountID]
	s.mu.RUnlock()
	if !ok {
		return 0, domain.ErrAccountNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.acct.Balance(), nil
}

// OpenAccount 建立帳戶
//
// 參數:
//
//	ctx: 上下文
//	accountID: 帳戶 ID
//	initialBalance: 初始餘額 (不得為負)
//
// 回傳:
//
//	int64: 建立後的餘額
//	error: 帳戶已存在或初始餘額違約
func (s *Store) OpenAccount(ctx context.Context, accountID int64, initialBalance int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[accountID]; ok {
		return 0, domain.ErrAccountAlreadyExists
	}

	acct, err := domain.NewAccount(accountID, initialBalance)
	if err != nil {
		return 0, err
	}
	s.accounts[accountID] = &lockedAccount{acct: acct}
	return acct.Balance(), nil
}

var _ usecase.AccountStore = (*Store)(nil)
