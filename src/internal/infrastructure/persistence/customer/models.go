package customer

import (
	"time"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/customer"
)

// ===========================
// GORM Models
// ===========================

// CustomerGORM 顧客資料表模型
//
// 資料庫約束：
// - id: 主鍵（UUIDv7 字串）
// - pos_customer_id: 唯一索引，可為空（NULL 不參與唯一比較）
type CustomerGORM struct {
	ID            string    `gorm:"column:id;type:varchar(36);primaryKey"`
	Name          string    `gorm:"column:name;type:varchar(255);not null"`
	POSCustomerID *string   `gorm:"column:pos_customer_id;type:varchar(64);uniqueIndex"`
	CreatedAt     time.Time `gorm:"column:created_at;not null"`
	UpdatedAt     time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定資料表名稱
func (CustomerGORM) TableName() string {
	return "customers"
}

// ===========================
// Mapper Functions
// ===========================

// toDomain 將 GORM 模型轉換為 Domain 模型
func (m *CustomerGORM) toDomain() (*customer.Customer, error) {
	id, err := customer.CustomerIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	posID := ""
	if m.POSCustomerID != nil {
		posID = *m.POSCustomerID
	}

	return customer.ReconstructCustomer(id, m.Name, posID, m.CreatedAt, m.UpdatedAt)
}

// toGORM 將 Domain 模型轉換為 GORM 模型（空 POS ID → NULL）
func toGORM(c *customer.Customer) *CustomerGORM {
	var posID *string
	if c.HasPOSCustomerID() {
		s := c.POSCustomerID()
		posID = &s
	}

	return &CustomerGORM{
		ID:            c.ID().String(),
		Name:          c.Name(),
		POSCustomerID: posID,
		CreatedAt:     c.CreatedAt(),
		UpdatedAt:     c.UpdatedAt(),
	}
}
