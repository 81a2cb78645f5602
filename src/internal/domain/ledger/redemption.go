package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// RedemptionStatusApplied 兌換建立即生效，目前沒有取消流程
const RedemptionStatusApplied = "applied"

// Redemption 兌換記錄：員工以積分折抵消費金額
type Redemption struct {
	id             RedemptionID
	customerID     CustomerID
	staffID        StaffID
	purchaseRef    string // 選填：對應的購買紀錄
	pointsUsed     PointsAmount
	discountAmount decimal.Decimal
	status         string
	createdAt      time.Time
}

// ReconstructRedemption 從持久化存儲重建兌換記錄
func ReconstructRedemption(
	id RedemptionID,
	customerID CustomerID,
	staffID StaffID,
	purchaseRef string,
	pointsUsed int,
	discountAmount decimal.Decimal,
	status string,
	createdAt time.Time,
) (*Redemption, error) {
	points, err := NewPositivePointsAmount(pointsUsed)
	if err != nil {
		return nil, ErrCorruptedBalance.WithContext("redemption_id", id.String(), "points_used", pointsUsed)
	}

	return &Redemption{
		id:             id,
		customerID:     customerID,
		staffID:        staffID,
		purchaseRef:    purchaseRef,
		pointsUsed:     points,
		discountAmount: discountAmount,
		status:         status,
		createdAt:      createdAt,
	}, nil
}

func (r *Redemption) ID() RedemptionID                { return r.id }
func (r *Redemption) CustomerID() CustomerID          { return r.customerID }
func (r *Redemption) StaffID() StaffID                { return r.staffID }
func (r *Redemption) PurchaseRef() string             { return r.purchaseRef }
func (r *Redemption) PointsUsed() PointsAmount        { return r.pointsUsed }
func (r *Redemption) DiscountAmount() decimal.Decimal { return r.discountAmount }
func (r *Redemption) Status() string                  { return r.status }
func (r *Redemption) CreatedAt() time.Time            { return r.createdAt }
