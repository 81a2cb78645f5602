package customer

import (
	"errors"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/customer"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
	"github.com/jackyeh168/bar_loyalty/src/internal/infrastructure/persistence/gormtx"
	"gorm.io/gorm"
)

// ===========================
// CustomerRepositoryImpl
// ===========================

// CustomerRepositoryImpl 顧客倉儲實現（GORM）
//
// 設計原則：
// - 實作 customer.CustomerRepository 接口
// - 處理 Domain 與 GORM 模型轉換
// - 將 GORM 錯誤轉換為 Domain 錯誤
type CustomerRepositoryImpl struct {
	db *gorm.DB
}

// NewCustomerRepository 創建新的顧客倉儲實例
func NewCustomerRepository(db *gorm.DB) customer.CustomerRepository {
	return &CustomerRepositoryImpl{db: db}
}

// Save 新增顧客
//
// 錯誤處理：
// - pos_customer_id 唯一約束衝突 → ErrPOSCustomerIDTaken
func (r *CustomerRepositoryImpl) Save(ctx shared.TransactionContext, c *customer.Customer) error {
	db := gormtx.DB(ctx, r.db)

	if err := db.Create(toGORM(c)).Error; err != nil {
		return r.mapWriteError(err, c)
	}
	return nil
}

// Update 更新顧客
func (r *CustomerRepositoryImpl) Update(ctx shared.TransactionContext, c *customer.Customer) error {
	db := gormtx.DB(ctx, r.db)

	model := toGORM(c)
	result := db.Model(&CustomerGORM{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":            model.Name,
			"pos_customer_id": model.POSCustomerID,
			"updated_at":      model.UpdatedAt,
		})
	if result.Error != nil {
		return r.mapWriteError(result.Error, c)
	}
	if result.RowsAffected == 0 {
		return customer.ErrCustomerNotFound.WithContext("customer_id", model.ID)
	}
	return nil
}

// FindByID 依 ID 查詢
func (r *CustomerRepositoryImpl) FindByID(ctx shared.TransactionContext, id customer.CustomerID) (*customer.Customer, error) {
	db := gormtx.DB(ctx, r.db)

	var model CustomerGORM
	if err := db.Where("id = ?", id.String()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrCustomerNotFound.WithContext("customer_id", id.String())
		}
		return nil, err
	}
	return model.toDomain()
}

// FindByPOSCustomerID 依 POS 顧客 ID 查詢
func (r *CustomerRepositoryImpl) FindByPOSCustomerID(ctx shared.TransactionContext, posCustomerID string) (*customer.Customer, error) {
	if posCustomerID == "" {
		return nil, customer.ErrCustomerNotFound.WithContext("pos_customer_id", posCustomerID)
	}

	db := gormtx.DB(ctx, r.db)

	var model CustomerGORM
	if err := db.Where("pos_customer_id = ?", posCustomerID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrCustomerNotFound.WithContext("pos_customer_id", posCustomerID)
		}
		return nil, err
	}
	return model.toDomain()
}

// mapWriteError 唯一約束衝突只可能來自 pos_customer_id
func (r *CustomerRepositoryImpl) mapWriteError(err error, c *customer.Customer) error {
	if gormtx.IsUniqueConstraintError(err) {
		return customer.ErrPOSCustomerIDTaken.WithContext("pos_customer_id", c.POSCustomerID())
	}
	return err
}
