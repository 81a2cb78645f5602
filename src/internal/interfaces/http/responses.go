package http

import (
	"time"

	appcustomer "github.com/jackyeh168/bar_loyalty/src/internal/application/customer"
	appledger "github.com/jackyeh168/bar_loyalty/src/internal/application/ledger"
	appreward "github.com/jackyeh168/bar_loyalty/src/internal/application/reward"
	apprules "github.com/jackyeh168/bar_loyalty/src/internal/application/rules"
	"github.com/shopspring/decimal"
)

type entryResponse struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customer_id"`
	ActorID       string    `json:"actor_id,omitempty"`
	Type          string    `json:"type"`
	Points        int       `json:"points"`
	BalanceAfter  int       `json:"balance_after"`
	Description   string    `json:"description"`
	ReferenceKind string    `json:"reference_kind,omitempty"`
	ReferenceID   string    `json:"reference_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func newEntryResponse(e appledger.EntryDTO) entryResponse {
	return entryResponse{
		ID:            e.EntryID,
		CustomerID:    e.CustomerID,
		ActorID:       e.ActorID,
		Type:          e.Kind,
		Points:        e.Delta,
		BalanceAfter:  e.BalanceAfter,
		Description:   e.Description,
		ReferenceKind: e.ReferenceKind,
		ReferenceID:   e.ReferenceID,
		CreatedAt:     e.CreatedAt,
	}
}

type issuedRewardResponse struct {
	ID             string    `json:"id"`
	RuleID         string    `json:"reward_rule_id"`
	Title          string    `json:"reward_title"`
	PointsDeducted int       `json:"points_deducted"`
	ExpiresAt      time.Time `json:"expires_at"`
}

type rewardResponse struct {
	ID             string     `json:"id"`
	CustomerID     string     `json:"customer_id"`
	RuleID         string     `json:"reward_rule_id"`
	Title          string     `json:"reward_title"`
	PointsDeducted int        `json:"points_deducted"`
	Status         string     `json:"status"`
	ExpiresAt      time.Time  `json:"expires_at"`
	ClaimedAt      *time.Time `json:"claimed_at,omitempty"`
	ClaimedBy      string     `json:"staff_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func newRewardResponse(r appreward.RewardDTO) rewardResponse {
	return rewardResponse{
		ID:             r.RewardID,
		CustomerID:     r.CustomerID,
		RuleID:         r.RuleID,
		Title:          r.Title,
		PointsDeducted: r.PointsDeducted,
		Status:         r.Status,
		ExpiresAt:      r.ExpiresAt,
		ClaimedAt:      r.ClaimedAt,
		ClaimedBy:      r.ClaimedBy,
		CreatedAt:      r.CreatedAt,
	}
}

func newRewardResponses(rs []appreward.RewardDTO) []rewardResponse {
	out := make([]rewardResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, newRewardResponse(r))
	}
	return out
}

type earningRuleResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	SpendUnitAmount decimal.Decimal `json:"spend_unit_amount"`
	MinimumSpend    decimal.Decimal `json:"minimum_spend"`
	PointsPerUnit   int             `json:"points_per_unit"`
	PointsPerItem   int             `json:"points_per_item"`
	Active          bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
}

func newEarningRuleResponse(r apprules.EarningRuleDTO) earningRuleResponse {
	return earningRuleResponse{
		ID:              r.RuleID,
		Name:            r.Name,
		Type:            r.Type,
		SpendUnitAmount: r.SpendUnitAmount,
		MinimumSpend:    r.MinimumSpend,
		PointsPerUnit:   r.PointsPerUnit,
		PointsPerItem:   r.PointsPerItem,
		Active:          r.Active,
		CreatedAt:       r.CreatedAt,
	}
}

type rewardRuleResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	RewardTitle    string    `json:"reward_title"`
	Description    string    `json:"description"`
	PointsRequired int       `json:"points_required"`
	ExpiresInDays  int       `json:"expires_in_days"`
	Active         bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

func newRewardRuleResponse(r apprules.RewardRuleDTO) rewardRuleResponse {
	return rewardRuleResponse{
		ID:             r.RuleID,
		Name:           r.Name,
		RewardTitle:    r.RewardTitle,
		Description:    r.Description,
		PointsRequired: r.PointsRequired,
		ExpiresInDays:  r.ExpiresInDays,
		Active:         r.Active,
		CreatedAt:      r.CreatedAt,
	}
}

type customerResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	POSCustomerID string `json:"loyverse_customer_id,omitempty"`
}

func newCustomerResponse(r *appcustomer.CustomerResult) customerResponse {
	return customerResponse{ID: r.CustomerID, Name: r.Name, POSCustomerID: r.POSCustomerID}
}
