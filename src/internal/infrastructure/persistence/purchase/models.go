package purchase

import (
	"time"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/customer"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/purchase"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ===========================
// GORM Models
// ===========================

// PurchaseGORM 購買紀錄資料表模型
//
// 資料庫約束：
// - receipt_id: 唯一索引（收據去重）
// - customer_id: 可為空（收據未對應到顧客）
// - payload: 原始收據 JSON（PostgreSQL 為 jsonb，SQLite 為 text）
type PurchaseGORM struct {
	ID            string          `gorm:"column:id;type:varchar(36);primaryKey"`
	ReceiptID     string          `gorm:"column:receipt_id;type:varchar(64);not null;uniqueIndex"`
	CustomerID    *string         `gorm:"column:customer_id;type:varchar(36);index"`
	POSCustomerID string          `gorm:"column:pos_customer_id;type:varchar(64);not null;default:''"`
	TotalAmount   decimal.Decimal `gorm:"column:total_amount;type:numeric(12,2);not null"`
	ItemCount     int             `gorm:"column:item_count;not null"`
	PointsEarned  int             `gorm:"column:points_earned;not null"`
	Status        string          `gorm:"column:status;type:varchar(16);not null"`
	Payload       datatypes.JSON  `gorm:"column:payload"`
	CreatedAt     time.Time       `gorm:"column:created_at;not null"`
}

// TableName 指定資料表名稱
func (PurchaseGORM) TableName() string {
	return "purchases"
}

// ===========================
// Mapper Functions
// ===========================

func (m *PurchaseGORM) toDomain() (*purchase.Purchase, error) {
	id, err := shared.EntityIDFromString[purchase.PurchaseMarker](m.ID, purchase.ErrInvalidPurchase)
	if err != nil {
		return nil, err
	}

	var customerID customer.CustomerID
	if m.CustomerID != nil {
		if customerID, err = customer.CustomerIDFromString(*m.CustomerID); err != nil {
			return nil, err
		}
	}

	return purchase.ReconstructPurchase(
		id,
		m.ReceiptID,
		customerID,
		m.POSCustomerID,
		m.TotalAmount,
		m.ItemCount,
		m.PointsEarned,
		purchase.Status(m.Status),
		[]byte(m.Payload),
		m.CreatedAt,
	), nil
}

func toGORM(p *purchase.Purchase) *PurchaseGORM {
	var customerID *string
	if p.HasCustomer() {
		s := p.CustomerID().String()
		customerID = &s
	}

	return &PurchaseGORM{
		ID:            p.ID().String(),
		ReceiptID:     p.ReceiptID(),
		CustomerID:    customerID,
		POSCustomerID: p.POSCustomerID(),
		TotalAmount:   p.TotalAmount(),
		ItemCount:     p.ItemCount(),
		PointsEarned:  p.PointsEarned(),
		Status:        string(p.Status()),
		Payload:       datatypes.JSON(p.Payload()),
		CreatedAt:     p.CreatedAt(),
	}
}
