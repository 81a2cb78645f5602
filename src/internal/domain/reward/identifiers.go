package reward

import (
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/customer"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/rules"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
)

type (
	CustomerID   = customer.CustomerID
	StaffID      = customer.StaffID
	RewardRuleID = rules.RewardRuleID
)

// RewardMarker 是 RewardID 的標記類型
type RewardMarker struct{}

// RewardID 獎勵 ID
type RewardID = shared.EntityID[RewardMarker]

// NewRewardID 生成新的獎勵 ID
func NewRewardID() RewardID {
	return shared.NewEntityID[RewardMarker]()
}

// RewardIDFromString 從字串解析獎勵 ID
func RewardIDFromString(s string) (RewardID, error) {
	return shared.EntityIDFromString[RewardMarker](s, ErrInvalidRewardID)
}
