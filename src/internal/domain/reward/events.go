package reward

import "github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"

// RewardIssuedEvent 獎勵已發放事件
type RewardIssuedEvent struct {
	shared.BaseEvent
	CustomerID     CustomerID
	RuleID         RewardRuleID
	Title          string
	PointsDeducted int
}

func newRewardIssuedEvent(r *Reward) *RewardIssuedEvent {
	return &RewardIssuedEvent{
		BaseEvent:      shared.NewBaseEvent(shared.NewEntityID[RewardMarker]().String(), r.id.String(), r.createdAt),
		CustomerID:     r.customerID,
		RuleID:         r.ruleID,
		Title:          r.title,
		PointsDeducted: r.pointsDeducted,
	}
}

// EventType 實現 DomainEvent 介面
func (e *RewardIssuedEvent) EventType() string {
	return "reward.issued"
}

// RewardClaimedEvent 獎勵已核銷事件
type RewardClaimedEvent struct {
	shared.BaseEvent
	CustomerID CustomerID
	ClaimedBy  StaffID
}

func newRewardClaimedEvent(r *Reward) *RewardClaimedEvent {
	return &RewardClaimedEvent{
		BaseEvent:  shared.NewBaseEvent(shared.NewEntityID[RewardMarker]().String(), r.id.String(), r.updatedAt),
		CustomerID: r.customerID,
		ClaimedBy:  r.claimedBy,
	}
}

// EventType 實現 DomainEvent 介面
func (e *RewardClaimedEvent) EventType() string {
	return "reward.claimed"
}
