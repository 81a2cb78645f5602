package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
)

// ===========================
// Balance 聚合根
// ===========================

// Balance 顧客積分餘額聚合根（每位顧客一筆）
//
// 設計原則：
// 1. 輕量級聚合：流水存放在獨立表，聚合只持有兩個數字
// 2. 每個命令方法同時產生一筆 LedgerEntry，餘額快照在此刻決定
// 3. 事件驅動：狀態變更累積領域事件，由 Use Case 在提交後發布
//
// 業務不變條件：
// - current >= 0
// - lifetime 只增不減（只有 Earn 與正向 Adjust 會增加）
// - current <= lifetime
// - current == 該顧客所有流水 delta 總和（由「每次變更必寫一筆流水」保證）
type Balance struct {
	customerID CustomerID
	current    PointsAmount
	lifetime   PointsAmount
	createdAt  time.Time
	updatedAt  time.Time

	events []shared.DomainEvent
}

// NewBalance 建立零餘額（首次入帳時由 Repository 懶建立）
func NewBalance(customerID CustomerID) (*Balance, error) {
	if customerID.IsEmpty() {
		return nil, ErrCorruptedBalance.WithContext("reason", "customer ID cannot be empty")
	}

	now := time.Now()
	return &Balance{
		customerID: customerID,
		createdAt:  now,
		updatedAt:  now,
		events:     make([]shared.DomainEvent, 0),
	}, nil
}

// ReconstructBalance 從持久化存儲重建聚合根
//
// 即使是從資料庫重建，也必須驗證不變條件，防止損壞資料污染領域層。
func ReconstructBalance(
	customerID CustomerID,
	current int,
	lifetime int,
	createdAt time.Time,
	updatedAt time.Time,
) (*Balance, error) {
	if customerID.IsEmpty() {
		return nil, ErrCorruptedBalance.WithContext("reason", "invalid customer ID in database")
	}
	if current < 0 || lifetime < 0 || current > lifetime {
		return nil, ErrCorruptedBalance.WithContext(
			"customer_id", customerID.String(),
			"current_points", current,
			"lifetime_points", lifetime,
		)
	}

	return &Balance{
		customerID: customerID,
		current:    newPointsAmountUnchecked(current),
		lifetime:   newPointsAmountUnchecked(lifetime),
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		events:     make([]shared.DomainEvent, 0),
	}, nil
}

// ===========================
// 查詢方法
// ===========================

func (b *Balance) CustomerID() CustomerID        { return b.customerID }
func (b *Balance) Current() PointsAmount         { return b.current }
func (b *Balance) Lifetime() PointsAmount        { return b.lifetime }
func (b *Balance) CreatedAt() time.Time          { return b.createdAt }
func (b *Balance) UpdatedAt() time.Time          { return b.updatedAt }
func (b *Balance) CanAfford(p PointsAmount) bool { return !b.current.LessThan(p) }

// ===========================
// 事件管理
// ===========================

func (b *Balance) addEvent(event shared.DomainEvent) {
	b.events = append(b.events, event)
}

// PullEvents 獲取所有待發布事件並清空列表
func (b *Balance) PullEvents() []shared.DomainEvent {
	events := b.events
	b.events = make([]shared.DomainEvent, 0)
	return events
}

// ===========================
// 命令方法
// ===========================

// Earn 賺取積分
//
// 業務規則：
// - points 必須 > 0
// - current 與 lifetime 同時增加
// - 產生 kind=earn 的流水，快照為增加後的 current
//
// 注意：自動發放獎勵不在聚合內處理，由 Application Layer 在同一事務中接著執行。
func (b *Balance) Earn(points PointsAmount, description string, actor StaffID, ref Reference) (*LedgerEntry, error) {
	if points.IsZero() {
		return nil, ErrInvalidPointsAmount.WithContext("operation", "earn")
	}
	return b.increase(EntryKindEarn, points, description, actor, ref), nil
}

// Redeem 以積分折抵消費
//
// 業務規則：
// - points 必須 > 0，且不可超過 current（否則 ErrInsufficientBalance，不做任何變更）
// - 折抵金額 = points × rate，四捨五入到小數 2 位
// - 只扣 current，lifetime 不變
// - 流水參照新建立的兌換記錄
func (b *Balance) Redeem(points PointsAmount, rate DiscountRate, actor StaffID, purchaseRef string) (*Redemption, *LedgerEntry, error) {
	if points.IsZero() {
		return nil, nil, ErrInvalidPointsAmount.WithContext("operation", "redeem")
	}
	if !b.CanAfford(points) {
		return nil, nil, ErrInsufficientBalance.WithContext(
			"requested", points.Value(),
			"available", b.current.Value(),
		)
	}

	now := time.Now()
	discount := rate.DiscountFor(points)
	redemption := &Redemption{
		id:             NewRedemptionID(),
		customerID:     b.customerID,
		staffID:        actor,
		purchaseRef:    strings.TrimSpace(purchaseRef),
		pointsUsed:     points,
		discountAmount: discount,
		status:         RedemptionStatusApplied,
		createdAt:      now,
	}

	description := fmt.Sprintf("Redeemed %d points for ₱%s discount", points.Value(), discount.String())
	entry := b.decrease(EntryKindRedeem, points, description, actor, RedemptionReference(redemption.id))
	return redemption, entry, nil
}

// Adjust 管理員手動調整
//
// 業務規則：
// - signedPoints != 0
// - 正數：current 與 lifetime 同時增加（與 Earn 相同），但流水類型為 adjust
// - 負數：current < |signedPoints| 時返回 ErrWouldUnderflow；否則只扣 current
// - 不觸發自動發放獎勵（調整是更正，不是賺取）
func (b *Balance) Adjust(signedPoints int, description string, actor StaffID) (*LedgerEntry, error) {
	switch {
	case signedPoints == 0:
		return nil, ErrInvalidPointsAmount.WithContext("operation", "adjust")
	case signedPoints > 0:
		return b.increase(EntryKindAdjust, newPointsAmountUnchecked(signedPoints), description, actor, NoReference()), nil
	}

	amount := newPointsAmountUnchecked(-signedPoints)
	if !b.CanAfford(amount) {
		return nil, ErrWouldUnderflow.WithContext(
			"adjustment", signedPoints,
			"available", b.current.Value(),
		)
	}
	return b.decrease(EntryKindAdjust, amount, description, actor, NoReference()), nil
}

// DebitForReward 發放獎勵時扣點（僅供獎勵發放流程使用）
//
// 呼叫前資格檢查已確認 current >= points；此時若仍不足，
// 代表並發或邏輯錯誤，返回 ErrInternalConsistency，呼叫端必須中止事務。
func (b *Balance) DebitForReward(points PointsAmount, description string, rewardRef Reference) (*LedgerEntry, error) {
	if !b.CanAfford(points) {
		return nil, ErrInternalConsistency.WithContext(
			"customer_id", b.customerID.String(),
			"required", points.Value(),
			"available", b.current.Value(),
			"reference", rewardRef.ID(),
		)
	}
	return b.decrease(EntryKindRewardIssued, points, description, StaffID{}, rewardRef), nil
}

// increase current 與 lifetime 同時增加並寫流水
func (b *Balance) increase(kind EntryKind, points PointsAmount, description string, actor StaffID, ref Reference) *LedgerEntry {
	now := time.Now()
	b.current = b.current.Add(points)
	b.lifetime = b.lifetime.Add(points)
	b.updatedAt = now

	entry := newLedgerEntry(b.customerID, actor, kind, points.Value(), b.current.Value(), description, ref, now)
	b.addEvent(NewPointsEarnedEvent(entry))
	return entry
}

// decrease 只扣 current 並寫流水；調用者已確認餘額足夠
func (b *Balance) decrease(kind EntryKind, points PointsAmount, description string, actor StaffID, ref Reference) *LedgerEntry {
	now := time.Now()
	b.current = newPointsAmountUnchecked(b.current.Value() - points.Value())
	b.updatedAt = now

	entry := newLedgerEntry(b.customerID, actor, kind, -points.Value(), b.current.Value(), description, ref, now)
	b.addEvent(NewPointsDeductedEvent(entry))
	return entry
}
