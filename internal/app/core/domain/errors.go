package domain

import "errors"

// 帳戶層級的錯誤，與合約違約 (Violation) 分開：
// 這些是查找失敗，不是合約被打破
var (
	// ErrAccountNotFound 找不到帳戶
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountAlreadyExists 帳戶已存在
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrUnknownOperationType 未知的操作類型
	ErrUnknownOperationType = errors.New("unknown operation type")
)

// AsViolation 取出錯誤鏈中的合約違約
//
// 回傳:
//
//	*Violation: 違約內容
//	bool: err 是否為合約違約
func AsViolation(err error) (*Violation, bool) {
	var v *Violation
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
