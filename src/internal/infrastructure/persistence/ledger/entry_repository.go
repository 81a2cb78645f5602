package ledger

import (
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/ledger"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
	"github.com/jackyeh168/bar_loyalty/src/internal/infrastructure/persistence/gormtx"
	"gorm.io/gorm"
)

// LedgerEntryRepositoryImpl 帳本流水倉儲實現（只新增）
//
// UUIDv7 字串排序即建立順序，排序一律依 id。
type LedgerEntryRepositoryImpl struct {
	db *gorm.DB
}

// NewLedgerEntryRepository 創建帳本流水倉儲
func NewLedgerEntryRepository(db *gorm.DB) ledger.LedgerEntryRepository {
	return &LedgerEntryRepositoryImpl{db: db}
}

// Append 寫入一或多筆流水
func (r *LedgerEntryRepositoryImpl) Append(ctx shared.TransactionContext, entries ...*ledger.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	models := make([]*LedgerEntryGORM, 0, len(entries))
	for _, e := range entries {
		models = append(models, entryToGORM(e))
	}
	return gormtx.DB(ctx, r.db).Create(&models).Error
}

// ListByCustomer 分頁查詢，新到舊
func (r *LedgerEntryRepositoryImpl) ListByCustomer(ctx shared.TransactionContext, customerID ledger.CustomerID, limit, offset int) ([]*ledger.LedgerEntry, error) {
	query := gormtx.DB(ctx, r.db).
		Where("customer_id = ?", customerID.String()).
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	return r.list(query)
}

// ListAllByCustomerAsc 全部流水，舊到新
func (r *LedgerEntryRepositoryImpl) ListAllByCustomerAsc(ctx shared.TransactionContext, customerID ledger.CustomerID) ([]*ledger.LedgerEntry, error) {
	return r.list(gormtx.DB(ctx, r.db).
		Where("customer_id = ?", customerID.String()).
		Order("id ASC"))
}

// CountByCustomer 流水總數
func (r *LedgerEntryRepositoryImpl) CountByCustomer(ctx shared.TransactionContext, customerID ledger.CustomerID) (int64, error) {
	var count int64
	err := gormtx.DB(ctx, r.db).
		Model(&LedgerEntryGORM{}).
		Where("customer_id = ?", customerID.String()).
		Count(&count).Error
	return count, err
}

func (r *LedgerEntryRepositoryImpl) list(query *gorm.DB) ([]*ledger.LedgerEntry, error) {
	var models []LedgerEntryGORM
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	entries := make([]*ledger.LedgerEntry, 0, len(models))
	for i := range models {
		e, err := models[i].toDomain()
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// RedemptionRepositoryImpl 兌換記錄倉儲實現
type RedemptionRepositoryImpl struct {
	db *gorm.DB
}

// NewRedemptionRepository 創建兌換記錄倉儲
func NewRedemptionRepository(db *gorm.DB) ledger.RedemptionRepository {
	return &RedemptionRepositoryImpl{db: db}
}

// Save 新增兌換記錄
func (r *RedemptionRepositoryImpl) Save(ctx shared.TransactionContext, redemption *ledger.Redemption) error {
	return gormtx.DB(ctx, r.db).Create(redemptionToGORM(redemption)).Error
}
