package rules

import (
	"time"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/rules"
	"github.com/shopspring/decimal"
)

// EarningRuleDTO 積分規則輸出
type EarningRuleDTO struct {
	RuleID          string
	Name            string
	Type            string
	SpendUnitAmount decimal.Decimal
	MinimumSpend    decimal.Decimal
	PointsPerUnit   int
	PointsPerItem   int
	Active          bool
	CreatedAt       time.Time
}

// RewardRuleDTO 獎勵規則輸出
type RewardRuleDTO struct {
	RuleID         string
	Name           string
	RewardTitle    string
	Description    string
	PointsRequired int
	ExpiresInDays  int
	Active         bool
	CreatedAt      time.Time
}

func toEarningRuleDTO(r *rules.EarningRule) EarningRuleDTO {
	return EarningRuleDTO{
		RuleID:          r.ID().String(),
		Name:            r.Name(),
		Type:            string(r.Type()),
		SpendUnitAmount: r.SpendUnitAmount(),
		MinimumSpend:    r.MinimumSpend(),
		PointsPerUnit:   r.PointsPerUnit(),
		PointsPerItem:   r.PointsPerItem(),
		Active:          r.IsActive(),
		CreatedAt:       r.CreatedAt(),
	}
}

func toRewardRuleDTO(r *rules.RewardRule) RewardRuleDTO {
	return RewardRuleDTO{
		RuleID:         r.ID().String(),
		Name:           r.Name(),
		RewardTitle:    r.RewardTitle(),
		Description:    r.Description(),
		PointsRequired: r.PointsRequired(),
		ExpiresInDays:  r.ExpiresInDays(),
		Active:         r.IsActive(),
		CreatedAt:      r.CreatedAt(),
	}
}
