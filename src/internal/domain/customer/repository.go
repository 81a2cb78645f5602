package customer

import "github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"

// CustomerRepository 顧客倉儲介面
//
// 查詢方法找不到資料時返回 ErrCustomerNotFound。
type CustomerRepository interface {
	// Save 新增顧客（ctx 必須非 nil）
	Save(ctx shared.TransactionContext, c *Customer) error

	// Update 更新顧客（POS ID 衝突返回 ErrPOSCustomerIDTaken）
	Update(ctx shared.TransactionContext, c *Customer) error

	// FindByID 依 ID 查詢
	FindByID(ctx shared.TransactionContext, id CustomerID) (*Customer, error)

	// FindByPOSCustomerID 依 POS 顧客 ID 查詢（收據入帳用）
	FindByPOSCustomerID(ctx shared.TransactionContext, posCustomerID string) (*Customer, error)
}
