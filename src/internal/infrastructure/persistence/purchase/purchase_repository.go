package purchase

import (
	"errors"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/purchase"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
	"github.com/jackyeh168/bar_loyalty/src/internal/infrastructure/persistence/gormtx"
	"gorm.io/gorm"
)

// PurchaseRepositoryImpl 購買紀錄倉儲實現（GORM）
//
// receipt_id 唯一索引是收據去重的最後防線：
// 兩個並發請求都通過 ExistsByReceiptID 時，第二個 INSERT 會失敗並回報 ErrDuplicateReceipt。
type PurchaseRepositoryImpl struct {
	db *gorm.DB
}

// NewPurchaseRepository 創建購買紀錄倉儲
func NewPurchaseRepository(db *gorm.DB) purchase.PurchaseRepository {
	return &PurchaseRepositoryImpl{db: db}
}

// Save 新增購買紀錄
func (r *PurchaseRepositoryImpl) Save(ctx shared.TransactionContext, p *purchase.Purchase) error {
	if err := gormtx.DB(ctx, r.db).Create(toGORM(p)).Error; err != nil {
		if gormtx.IsUniqueConstraintError(err) {
			return purchase.ErrDuplicateReceipt.WithContext("receipt_id", p.ReceiptID())
		}
		return err
	}
	return nil
}

// ExistsByReceiptID 收據是否已處理
func (r *PurchaseRepositoryImpl) ExistsByReceiptID(ctx shared.TransactionContext, receiptID string) (bool, error) {
	var count int64
	err := gormtx.DB(ctx, r.db).
		Model(&PurchaseGORM{}).
		Where("receipt_id = ?", receiptID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByReceiptID 依收據編號查詢
func (r *PurchaseRepositoryImpl) FindByReceiptID(ctx shared.TransactionContext, receiptID string) (*purchase.Purchase, error) {
	var model PurchaseGORM
	if err := gormtx.DB(ctx, r.db).Where("receipt_id = ?", receiptID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, purchase.ErrPurchaseNotFound.WithContext("receipt_id", receiptID)
		}
		return nil, err
	}
	return model.toDomain()
}
