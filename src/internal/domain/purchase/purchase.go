package purchase

import (
	"strings"
	"time"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/customer"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PurchaseMarker 是 PurchaseID 的標記類型
type PurchaseMarker struct{}

// PurchaseID 購買紀錄 ID
type PurchaseID = shared.EntityID[PurchaseMarker]

// Status 購買紀錄狀態
type Status string

// StatusCompleted POS 完成的銷售
const StatusCompleted Status = "completed"

// Purchase POS 收據轉成的購買紀錄
//
// 業務規則：
// - receiptID 全域唯一（收據去重的唯一依據）
// - 未對應到顧客時 customerID 為零值、pointsEarned 為 0，仍保留紀錄以供稽核
// - payload 保留原始收據 JSON
type Purchase struct {
	id            PurchaseID
	receiptID     string
	customerID    customer.CustomerID
	posCustomerID string
	totalAmount   decimal.Decimal
	itemCount     int
	pointsEarned  int
	status        Status
	payload       []byte
	createdAt     time.Time
}

// NewPurchase 建立購買紀錄
func NewPurchase(
	receiptID string,
	customerID customer.CustomerID,
	posCustomerID string,
	totalAmount decimal.Decimal,
	itemCount int,
	pointsEarned int,
	payload []byte,
) (*Purchase, error) {
	receiptID = strings.TrimSpace(receiptID)
	if receiptID == "" {
		return nil, ErrInvalidReceiptID
	}
	if pointsEarned < 0 || itemCount < 0 {
		return nil, ErrInvalidPurchase.WithContext(
			"receipt_id", receiptID,
			"item_count", itemCount,
			"points_earned", pointsEarned,
		)
	}

	return &Purchase{
		id:            shared.NewEntityID[PurchaseMarker](),
		receiptID:     receiptID,
		customerID:    customerID,
		posCustomerID: posCustomerID,
		totalAmount:   totalAmount,
		itemCount:     itemCount,
		pointsEarned:  pointsEarned,
		status:        StatusCompleted,
		payload:       payload,
		createdAt:     time.Now(),
	}, nil
}

// ReconstructPurchase 從持久化存儲重建購買紀錄
func ReconstructPurchase(
	id PurchaseID,
	receiptID string,
	customerID customer.CustomerID,
	posCustomerID string,
	totalAmount decimal.Decimal,
	itemCount int,
	pointsEarned int,
	status Status,
	payload []byte,
	createdAt time.Time,
) *Purchase {
	return &Purchase{
		id:            id,
		receiptID:     receiptID,
		customerID:    customerID,
		posCustomerID: posCustomerID,
		totalAmount:   totalAmount,
		itemCount:     itemCount,
		pointsEarned:  pointsEarned,
		status:        status,
		payload:       payload,
		createdAt:     createdAt,
	}
}

func (p *Purchase) ID() PurchaseID                  { return p.id }
func (p *Purchase) ReceiptID() string               { return p.receiptID }
func (p *Purchase) CustomerID() customer.CustomerID { return p.customerID }
func (p *Purchase) POSCustomerID() string           { return p.posCustomerID }
func (p *Purchase) TotalAmount() decimal.Decimal    { return p.totalAmount }
func (p *Purchase) ItemCount() int                  { return p.itemCount }
func (p *Purchase) PointsEarned() int               { return p.pointsEarned }
func (p *Purchase) Status() Status                  { return p.status }
func (p *Purchase) Payload() []byte                 { return p.payload }
func (p *Purchase) CreatedAt() time.Time            { return p.createdAt }
func (p *Purchase) HasCustomer() bool               { return !p.customerID.IsEmpty() }
