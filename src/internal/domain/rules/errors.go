package rules

import "github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"

const (
	ErrCodeInvalidRuleID      shared.ErrorCode = "RULE_ID_INVALID"
	ErrCodeInvalidEarningRule shared.ErrorCode = "EARNING_RULE_INVALID"
	ErrCodeInvalidRewardRule  shared.ErrorCode = "REWARD_RULE_INVALID"
	ErrCodeInvalidRuleType    shared.ErrorCode = "RULE_TYPE_INVALID"
	ErrCodeRuleNotFound       shared.ErrorCode = "RULE_NOT_FOUND"
	ErrCodeNoActiveRule       shared.ErrorCode = "NO_ACTIVE_RULE"
)

var (
	ErrInvalidRuleID = &shared.DomainError{
		Code:    ErrCodeInvalidRuleID,
		Message: "無效的規則 ID",
	}

	// 積分規則參數錯誤（建立時拒絕，評估時不會遇到）
	ErrInvalidEarningRule = &shared.DomainError{
		Code:    ErrCodeInvalidEarningRule,
		Message: "積分規則參數無效",
	}

	ErrInvalidRewardRule = &shared.DomainError{
		Code:    ErrCodeInvalidRewardRule,
		Message: "獎勵規則參數無效",
	}

	ErrInvalidRuleType = &shared.DomainError{
		Code:    ErrCodeInvalidRuleType,
		Message: "無效的積分規則類型",
	}

	ErrRuleNotFound = &shared.DomainError{
		Code:    ErrCodeRuleNotFound,
		Message: "規則不存在",
	}

	ErrNoActiveRule = &shared.DomainError{
		Code:    ErrCodeNoActiveRule,
		Message: "沒有啟用中的積分規則",
	}
)
