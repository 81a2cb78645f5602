package reward

import (
	"time"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/reward"
)

// RewardDTO 獎勵輸出
type RewardDTO struct {
	RewardID       string
	CustomerID     string
	RuleID         string
	Title          string
	PointsDeducted int
	Status         string
	ExpiresAt      time.Time
	ClaimedAt      *time.Time
	ClaimedBy      string
	CreatedAt      time.Time
}

func toRewardDTO(r *reward.Reward) RewardDTO {
	return RewardDTO{
		RewardID:       r.ID().String(),
		CustomerID:     r.CustomerID().String(),
		RuleID:         r.RuleID().String(),
		Title:          r.Title(),
		PointsDeducted: r.PointsDeducted(),
		Status:         string(r.Status()),
		ExpiresAt:      r.ExpiresAt(),
		ClaimedAt:      r.ClaimedAt(),
		ClaimedBy:      r.ClaimedBy().String(),
		CreatedAt:      r.CreatedAt(),
	}
}
