package ledger

import (
	"errors"
	"time"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/ledger"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
	"github.com/jackyeh168/bar_loyalty/src/internal/infrastructure/persistence/gormtx"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ===========================
// BalanceRepositoryImpl
// ===========================

// BalanceRepositoryImpl 積分餘額倉儲實現（GORM）
//
// 鎖定策略：
// - PostgreSQL: SELECT ... FOR UPDATE，同一顧客的事務在此列上排隊
// - SQLite: 無列鎖，由資料庫層級的寫鎖序列化所有寫事務
type BalanceRepositoryImpl struct {
	db  *gorm.DB
	now func() time.Time
}

// NewBalanceRepository 創建積分餘額倉儲
func NewBalanceRepository(db *gorm.DB) ledger.BalanceRepository {
	return &BalanceRepositoryImpl{db: db, now: time.Now}
}

// FindByCustomerID 查詢餘額（不加鎖）
func (r *BalanceRepositoryImpl) FindByCustomerID(ctx shared.TransactionContext, customerID ledger.CustomerID) (*ledger.Balance, error) {
	return r.find(gormtx.DB(ctx, r.db), customerID)
}

// FindForUpdate 查詢並鎖定餘額列
func (r *BalanceRepositoryImpl) FindForUpdate(ctx shared.TransactionContext, customerID ledger.CustomerID) (*ledger.Balance, error) {
	return r.find(gormtx.ForUpdate(gormtx.DB(ctx, r.db)), customerID)
}

// FindOrCreateForUpdate 取得或建立零餘額並鎖定
//
// 實作邏輯：
// 1. INSERT ... ON CONFLICT DO NOTHING（已存在則不動）
// 2. SELECT ... FOR UPDATE
//
// 兩個並發的首次入帳只會有一個 INSERT 生效，另一個在步驟 2 等待鎖。
func (r *BalanceRepositoryImpl) FindOrCreateForUpdate(ctx shared.TransactionContext, customerID ledger.CustomerID) (*ledger.Balance, error) {
	db := gormtx.DB(ctx, r.db)

	now := r.now()
	seed := &BalanceGORM{
		CustomerID: customerID.String(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(seed).Error; err != nil {
		return nil, err
	}

	return r.find(gormtx.ForUpdate(db), customerID)
}

// Update 寫回餘額
func (r *BalanceRepositoryImpl) Update(ctx shared.TransactionContext, balance *ledger.Balance) error {
	db := gormtx.DB(ctx, r.db)

	model := balanceToGORM(balance)
	result := db.Model(&BalanceGORM{}).
		Where("customer_id = ?", model.CustomerID).
		Updates(map[string]interface{}{
			"current_points":  model.CurrentPoints,
			"lifetime_points": model.LifetimePoints,
			"updated_at":      model.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ledger.ErrBalanceNotFound.WithContext("customer_id", model.CustomerID)
	}
	return nil
}

func (r *BalanceRepositoryImpl) find(db *gorm.DB, customerID ledger.CustomerID) (*ledger.Balance, error) {
	var model BalanceGORM
	if err := db.Where("customer_id = ?", customerID.String()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrBalanceNotFound.WithContext("customer_id", customerID.String())
		}
		return nil, err
	}
	return model.toDomain()
}
