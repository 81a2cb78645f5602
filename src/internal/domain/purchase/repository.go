package purchase

import "github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"

// PurchaseRepository 購買紀錄倉儲介面
type PurchaseRepository interface {
	// Save 新增（ctx 必須非 nil）；收據重複返回 ErrDuplicateReceipt
	Save(ctx shared.TransactionContext, p *Purchase) error

	// ExistsByReceiptID 收據是否已處理
	ExistsByReceiptID(ctx shared.TransactionContext, receiptID string) (bool, error)

	// FindByReceiptID 依收據編號查詢；不存在返回 ErrPurchaseNotFound
	FindByReceiptID(ctx shared.TransactionContext, receiptID string) (*Purchase, error)
}
