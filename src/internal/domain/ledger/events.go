package ledger

import (
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
)

// ===========================
// 帳本領域事件
// ===========================

// PointsEarnedEvent 積分增加事件（賺取或正向調整）
type PointsEarnedEvent struct {
	shared.BaseEvent
	customerID   CustomerID
	kind         EntryKind
	amount       int
	balanceAfter int
}

// NewPointsEarnedEvent 由流水建立積分增加事件
func NewPointsEarnedEvent(entry *LedgerEntry) *PointsEarnedEvent {
	return &PointsEarnedEvent{
		BaseEvent:    shared.NewBaseEvent(entry.ID().String(), entry.CustomerID().String(), entry.CreatedAt()),
		customerID:   entry.CustomerID(),
		kind:         entry.Kind(),
		amount:       entry.Delta(),
		balanceAfter: entry.BalanceAfter(),
	}
}

// EventType 實現 DomainEvent 介面
func (e *PointsEarnedEvent) EventType() string {
	return "ledger.points_earned"
}

func (e *PointsEarnedEvent) CustomerID() CustomerID { return e.customerID }
func (e *PointsEarnedEvent) Kind() EntryKind        { return e.kind }
func (e *PointsEarnedEvent) Amount() int            { return e.amount }
func (e *PointsEarnedEvent) BalanceAfter() int      { return e.balanceAfter }

// PointsDeductedEvent 積分扣減事件（兌換、獎勵扣點、負向調整）
type PointsDeductedEvent struct {
	shared.BaseEvent
	customerID   CustomerID
	kind         EntryKind
	amount       int // 正數，扣減的點數
	balanceAfter int
}

// NewPointsDeductedEvent 由流水建立積分扣減事件
func NewPointsDeductedEvent(entry *LedgerEntry) *PointsDeductedEvent {
	return &PointsDeductedEvent{
		BaseEvent:    shared.NewBaseEvent(entry.ID().String(), entry.CustomerID().String(), entry.CreatedAt()),
		customerID:   entry.CustomerID(),
		kind:         entry.Kind(),
		amount:       -entry.Delta(),
		balanceAfter: entry.BalanceAfter(),
	}
}

// EventType 實現 DomainEvent 介面
func (e *PointsDeductedEvent) EventType() string {
	return "ledger.points_deducted"
}

func (e *PointsDeductedEvent) CustomerID() CustomerID { return e.customerID }
func (e *PointsDeductedEvent) Kind() EntryKind        { return e.kind }
func (e *PointsDeductedEvent) Amount() int            { return e.amount }
func (e *PointsDeductedEvent) BalanceAfter() int      { return e.balanceAfter }

var (
	_ shared.DomainEvent = (*PointsEarnedEvent)(nil)
	_ shared.DomainEvent = (*PointsDeductedEvent)(nil)
)
