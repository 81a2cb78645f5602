package rules

import "github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"

// EarningRuleMarker 是 EarningRuleID 的標記類型
type EarningRuleMarker struct{}

// EarningRuleID 積分規則 ID（UUIDv7，遞增即建立順序）
type EarningRuleID = shared.EntityID[EarningRuleMarker]

// NewEarningRuleID 生成新的積分規則 ID
func NewEarningRuleID() EarningRuleID {
	return shared.NewEntityID[EarningRuleMarker]()
}

// EarningRuleIDFromString 從字串解析積分規則 ID
func EarningRuleIDFromString(s string) (EarningRuleID, error) {
	return shared.EntityIDFromString[EarningRuleMarker](s, ErrInvalidRuleID)
}

// RewardRuleMarker 是 RewardRuleID 的標記類型
type RewardRuleMarker struct{}

// RewardRuleID 獎勵規則 ID
type RewardRuleID = shared.EntityID[RewardRuleMarker]

// NewRewardRuleID 生成新的獎勵規則 ID
func NewRewardRuleID() RewardRuleID {
	return shared.NewEntityID[RewardRuleMarker]()
}

// RewardRuleIDFromString 從字串解析獎勵規則 ID
func RewardRuleIDFromString(s string) (RewardRuleID, error) {
	return shared.EntityIDFromString[RewardRuleMarker](s, ErrInvalidRuleID)
}
