package ledger

import (
	"time"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/ledger"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/reward"
)

// EntryDTO 帳本流水輸出
type EntryDTO struct {
	EntryID       string
	CustomerID    string
	ActorID       string // 無操作者時為空
	Kind          string
	Delta         int
	BalanceAfter  int
	Description   string
	ReferenceKind string
	ReferenceID   string
	CreatedAt     time.Time
}

// IssuedRewardDTO 本次自動發放的獎勵
type IssuedRewardDTO struct {
	RewardID       string
	RuleID         string
	Title          string
	PointsDeducted int
	ExpiresAt      time.Time
}

func toEntryDTO(e *ledger.LedgerEntry) EntryDTO {
	return EntryDTO{
		EntryID:       e.ID().String(),
		CustomerID:    e.CustomerID().String(),
		ActorID:       e.Actor().String(),
		Kind:          e.Kind().String(),
		Delta:         e.Delta(),
		BalanceAfter:  e.BalanceAfter(),
		Description:   e.Description(),
		ReferenceKind: string(e.Reference().Kind()),
		ReferenceID:   e.Reference().ID(),
		CreatedAt:     e.CreatedAt(),
	}
}

func toIssuedRewardDTOs(rewards []*reward.Reward) []IssuedRewardDTO {
	out := make([]IssuedRewardDTO, 0, len(rewards))
	for _, r := range rewards {
		out = append(out, IssuedRewardDTO{
			RewardID:       r.ID().String(),
			RuleID:         r.RuleID().String(),
			Title:          r.Title(),
			PointsDeducted: r.PointsDeducted(),
			ExpiresAt:      r.ExpiresAt(),
		})
	}
	return out
}
