package domain

import "github.com/google/uuid"

// OperationType 操作類型
// 為了極致節省記憶體，使用 uint8
type OperationType uint8

const (
	// 存款
	OperationTypeDeposit OperationType = 1
	// 提款
	OperationTypeWithdraw OperationType = 2
	// 轉帳
	OperationTypeTransfer OperationType = 3
)

// Operation 一次合約操作的請求 注意欄位排序以避免 Padding
type Operation struct {
	// From, To: 帳戶 ID
	From int64
	To   int64
	// Amount: 金額 (最小單位)
	Amount int64
	// CreatedAt: 操作時間
	CreatedAt int64
	// RefID: 外部追蹤號 (UUID)，用於冪等檢查
	RefID uuid.UUID
	// Type: 放到最後面，利用 Padding 空間
	Type OperationType
}

// LockIDs 回傳需要鎖定的帳號 ID，並確保順序以避免死鎖
func (o *Operation) LockIDs() (ids []int64) {
	// 預先宣告一個容量為 2 的 slice，避免多次分配
	ids = make([]int64, 0, 2)
	switch o.Type {
	case OperationTypeTransfer:
		// 自我轉帳只鎖一次，讓 invalid_transfer 前置條件去擋，而不是死鎖
		if o.From == o.To {
			ids = append(ids, o.From)
		} else if o.From < o.To {
			ids = append(ids, o.From, o.To)
		} else {
			ids = append(ids, o.To, o.From)
		}
	case OperationTypeDeposit:
		ids = append(ids, o.To)
	case OperationTypeWithdraw:
		ids = append(ids, o.From)
	}
	return ids
}
