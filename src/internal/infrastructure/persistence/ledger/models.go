package ledger

import (
	"time"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/customer"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// ===========================
// GORM Models
// ===========================

// BalanceGORM 積分餘額資料表模型
//
// 資料庫約束：
// - customer_id: 主鍵（一位顧客一列）
// - current_points / lifetime_points: 非負
// - 業務不變條件 current <= lifetime 由 Domain 層保證，重建時再驗證一次
type BalanceGORM struct {
	CustomerID     string    `gorm:"column:customer_id;type:varchar(36);primaryKey"`
	CurrentPoints  int       `gorm:"column:current_points;not null;default:0;check:current_points >= 0"`
	LifetimePoints int       `gorm:"column:lifetime_points;not null;default:0;check:lifetime_points >= 0"`
	CreatedAt      time.Time `gorm:"column:created_at;not null"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定資料表名稱
func (BalanceGORM) TableName() string {
	return "point_balances"
}

// LedgerEntryGORM 帳本流水資料表模型（只新增）
//
// idx_ledger_customer_id 讓「某顧客依 ID 排序」的歷史查詢與稽核重播走索引。
type LedgerEntryGORM struct {
	ID            string    `gorm:"column:id;type:varchar(36);primaryKey;index:idx_ledger_customer_id,priority:2"`
	CustomerID    string    `gorm:"column:customer_id;type:varchar(36);not null;index:idx_ledger_customer_id,priority:1"`
	ActorID       *string   `gorm:"column:actor_id;type:varchar(36)"`
	Kind          string    `gorm:"column:kind;type:varchar(16);not null"`
	Delta         int       `gorm:"column:delta;not null"`
	BalanceAfter  int       `gorm:"column:balance_after;not null;check:balance_after >= 0"`
	Description   string    `gorm:"column:description;type:varchar(500);not null"`
	ReferenceKind string    `gorm:"column:reference_kind;type:varchar(16);not null;default:''"`
	ReferenceID   string    `gorm:"column:reference_id;type:varchar(64);not null;default:''"`
	CreatedAt     time.Time `gorm:"column:created_at;not null"`
}

// TableName 指定資料表名稱
func (LedgerEntryGORM) TableName() string {
	return "ledger_entries"
}

// RedemptionGORM 兌換記錄資料表模型
type RedemptionGORM struct {
	ID             string          `gorm:"column:id;type:varchar(36);primaryKey"`
	CustomerID     string          `gorm:"column:customer_id;type:varchar(36);not null;index"`
	StaffID        string          `gorm:"column:staff_id;type:varchar(36);not null"`
	PurchaseRef    *string         `gorm:"column:purchase_ref;type:varchar(64)"`
	PointsUsed     int             `gorm:"column:points_used;not null;check:points_used > 0"`
	DiscountAmount decimal.Decimal `gorm:"column:discount_amount;type:numeric(12,2);not null"`
	Status         string          `gorm:"column:status;type:varchar(16);not null"`
	CreatedAt      time.Time       `gorm:"column:created_at;not null"`
}

// TableName 指定資料表名稱
func (RedemptionGORM) TableName() string {
	return "redemptions"
}

// ===========================
// Mapper Functions
// ===========================

func (m *BalanceGORM) toDomain() (*ledger.Balance, error) {
	customerID, err := customer.CustomerIDFromString(m.CustomerID)
	if err != nil {
		return nil, ledger.ErrCorruptedBalance.WithContext("customer_id", m.CustomerID)
	}
	return ledger.ReconstructBalance(customerID, m.CurrentPoints, m.LifetimePoints, m.CreatedAt, m.UpdatedAt)
}

func balanceToGORM(b *ledger.Balance) *BalanceGORM {
	return &BalanceGORM{
		CustomerID:     b.CustomerID().String(),
		CurrentPoints:  b.Current().Value(),
		LifetimePoints: b.Lifetime().Value(),
		CreatedAt:      b.CreatedAt(),
		UpdatedAt:      b.UpdatedAt(),
	}
}

// toDomain 重建流水
//
// 轉換邏輯：
// - ActorID: NULL → 零值 StaffID
// - ReferenceKind/ReferenceID: 空字串 → 無參照
func (m *LedgerEntryGORM) toDomain() (*ledger.LedgerEntry, error) {
	id, err := ledger.EntryIDFromString(m.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := customer.CustomerIDFromString(m.CustomerID)
	if err != nil {
		return nil, err
	}

	var actor ledger.StaffID
	if m.ActorID != nil {
		if actor, err = customer.OptionalStaffIDFromString(*m.ActorID); err != nil {
			return nil, err
		}
	}

	kind, err := ledger.ParseEntryKind(m.Kind)
	if err != nil {
		return nil, err
	}
	ref, err := ledger.NewReference(ledger.ReferenceKind(m.ReferenceKind), m.ReferenceID)
	if err != nil {
		return nil, err
	}

	return ledger.ReconstructLedgerEntry(id, customerID, actor, kind, m.Delta, m.BalanceAfter, m.Description, ref, m.CreatedAt)
}

func entryToGORM(e *ledger.LedgerEntry) *LedgerEntryGORM {
	return &LedgerEntryGORM{
		ID:            e.ID().String(),
		CustomerID:    e.CustomerID().String(),
		ActorID:       nullableID(e.Actor().String()),
		Kind:          e.Kind().String(),
		Delta:         e.Delta(),
		BalanceAfter:  e.BalanceAfter(),
		Description:   e.Description(),
		ReferenceKind: string(e.Reference().Kind()),
		ReferenceID:   e.Reference().ID(),
		CreatedAt:     e.CreatedAt(),
	}
}

func redemptionToGORM(r *ledger.Redemption) *RedemptionGORM {
	return &RedemptionGORM{
		ID:             r.ID().String(),
		CustomerID:     r.CustomerID().String(),
		StaffID:        r.StaffID().String(),
		PurchaseRef:    nullableID(r.PurchaseRef()),
		PointsUsed:     r.PointsUsed().Value(),
		DiscountAmount: r.DiscountAmount(),
		Status:         r.Status(),
		CreatedAt:      r.CreatedAt(),
	}
}

func (m *RedemptionGORM) toDomain() (*ledger.Redemption, error) {
	id, err := ledger.RedemptionIDFromString(m.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := customer.CustomerIDFromString(m.CustomerID)
	if err != nil {
		return nil, err
	}
	staffID, err := customer.StaffIDFromString(m.StaffID)
	if err != nil {
		return nil, err
	}

	purchaseRef := ""
	if m.PurchaseRef != nil {
		purchaseRef = *m.PurchaseRef
	}

	return ledger.ReconstructRedemption(id, customerID, staffID, purchaseRef, m.PointsUsed, m.DiscountAmount, m.Status, m.CreatedAt)
}

// nullableID 空字串 → NULL
func nullableID(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
