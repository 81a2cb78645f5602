package reward

import (
	"time"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/rules"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
)

// ===========================
// Status 獎勵狀態
// ===========================

// Status 獎勵狀態
//
// 狀態機：
//   [發放] → pending
//   pending --Claim()--> claimed（終態）
//   pending --到期（批次或領取時檢查）--> expired（終態）
type Status string

const (
	StatusPending Status = "pending"
	StatusClaimed Status = "claimed"
	StatusExpired Status = "expired"
)

// ParseStatus 從字串解析狀態
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusClaimed, StatusExpired:
		return st, nil
	default:
		return "", ErrInvalidStatus.WithContext("value", s)
	}
}

// IsTerminal 是否為終態
func (s Status) IsTerminal() bool {
	return s == StatusClaimed || s == StatusExpired
}

// ===========================
// Reward 聚合根
// ===========================

// Reward 已發放給顧客的獎勵
//
// 業務不變條件：
// - pointsDeducted 是發放當下規則門檻的快照，規則之後修改不影響
// - claimedAt / claimedBy 只在 claimed 狀態有值
// - 終態不再轉換
type Reward struct {
	id             RewardID
	customerID     CustomerID
	ruleID         RewardRuleID
	title          string
	pointsDeducted int
	status         Status
	expiresAt      time.Time
	claimedAt      *time.Time
	claimedBy      StaffID
	createdAt      time.Time
	updatedAt      time.Time

	events []shared.DomainEvent
}

// Issue 依規則發放一張待領取獎勵
//
// 扣點由帳本另行處理；此處只建立獎勵本身。
func Issue(customerID CustomerID, rule *rules.RewardRule, now time.Time) *Reward {
	r := &Reward{
		id:             NewRewardID(),
		customerID:     customerID,
		ruleID:         rule.ID(),
		title:          rule.RewardTitle(),
		pointsDeducted: rule.PointsRequired(),
		status:         StatusPending,
		expiresAt:      rule.ExpiresAtFrom(now),
		createdAt:      now,
		updatedAt:      now,
	}
	r.events = []shared.DomainEvent{newRewardIssuedEvent(r)}
	return r
}

// ReconstructReward 從持久化存儲重建獎勵
func ReconstructReward(
	id RewardID,
	customerID CustomerID,
	ruleID RewardRuleID,
	title string,
	pointsDeducted int,
	status Status,
	expiresAt time.Time,
	claimedAt *time.Time,
	claimedBy StaffID,
	createdAt time.Time,
	updatedAt time.Time,
) (*Reward, error) {
	if id.IsEmpty() {
		return nil, ErrInvalidRewardID.WithContext("reason", "invalid reward ID in database")
	}
	if _, err := ParseStatus(string(status)); err != nil {
		return nil, err
	}

	return &Reward{
		id:             id,
		customerID:     customerID,
		ruleID:         ruleID,
		title:          title,
		pointsDeducted: pointsDeducted,
		status:         status,
		expiresAt:      expiresAt,
		claimedAt:      claimedAt,
		claimedBy:      claimedBy,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (r *Reward) ID() RewardID           { return r.id }
func (r *Reward) CustomerID() CustomerID { return r.customerID }
func (r *Reward) RuleID() RewardRuleID   { return r.ruleID }
func (r *Reward) Title() string          { return r.title }
func (r *Reward) PointsDeducted() int    { return r.pointsDeducted }
func (r *Reward) Status() Status         { return r.status }
func (r *Reward) ExpiresAt() time.Time   { return r.expiresAt }
func (r *Reward) ClaimedAt() *time.Time  { return r.claimedAt }
func (r *Reward) ClaimedBy() StaffID     { return r.claimedBy }
func (r *Reward) CreatedAt() time.Time   { return r.createdAt }
func (r *Reward) UpdatedAt() time.Time   { return r.updatedAt }

// IsOverdue 待領取且已超過到期時間
func (r *Reward) IsOverdue(now time.Time) bool {
	return r.status == StatusPending && r.expiresAt.Before(now)
}

// PullEvents 獲取所有待發布事件並清空列表
func (r *Reward) PullEvents() []shared.DomainEvent {
	events := r.events
	r.events = nil
	return events
}

// Claim 員工核銷獎勵
//
// 業務規則：
// - 非 pending → ErrInvalidRewardState（不變更）
// - pending 但已過期 → 狀態改為 expired，並返回 ErrRewardExpired
//   呼叫端需持久化這次狀態變更，即使領取本身失敗
// - 否則 → claimed，記錄時間與員工；不影響積分（發放時已扣）
func (r *Reward) Claim(staff StaffID, now time.Time) error {
	if r.status != StatusPending {
		return ErrInvalidRewardState.WithContext(
			"reward_id", r.id.String(),
			"status", string(r.status),
		)
	}

	if r.expiresAt.Before(now) {
		r.status = StatusExpired
		r.updatedAt = now
		return ErrRewardExpired.WithContext(
			"reward_id", r.id.String(),
			"expires_at", r.expiresAt,
		)
	}

	claimedAt := now
	r.status = StatusClaimed
	r.claimedAt = &claimedAt
	r.claimedBy = staff
	r.updatedAt = now
	r.events = append(r.events, newRewardClaimedEvent(r))
	return nil
}

// Expire 將待領取獎勵標記為過期；已是終態則不變更並返回 false
func (r *Reward) Expire(now time.Time) bool {
	if r.status != StatusPending {
		return false
	}
	r.status = StatusExpired
	r.updatedAt = now
	return true
}
