package reward

import "github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"

const (
	ErrCodeInvalidRewardID    shared.ErrorCode = "REWARD_ID_INVALID"
	ErrCodeRewardNotFound     shared.ErrorCode = "REWARD_NOT_FOUND"
	ErrCodeInvalidRewardState shared.ErrorCode = "REWARD_INVALID_STATE"
	ErrCodeRewardExpired      shared.ErrorCode = "REWARD_EXPIRED"
	ErrCodeInvalidStatus      shared.ErrorCode = "REWARD_STATUS_INVALID"
	ErrCodePendingExists      shared.ErrorCode = "REWARD_PENDING_EXISTS"
)

var (
	ErrInvalidRewardID = &shared.DomainError{
		Code:    ErrCodeInvalidRewardID,
		Message: "無效的獎勵 ID",
	}

	ErrRewardNotFound = &shared.DomainError{
		Code:    ErrCodeRewardNotFound,
		Message: "獎勵不存在",
	}

	// 非待領取狀態不可領取；Context 帶目前狀態
	ErrInvalidRewardState = &shared.DomainError{
		Code:    ErrCodeInvalidRewardState,
		Message: "獎勵目前狀態不可領取",
	}

	// 已過期：呼叫時會順便把狀態改為 expired
	ErrRewardExpired = &shared.DomainError{
		Code:    ErrCodeRewardExpired,
		Message: "獎勵已過期",
	}

	ErrInvalidStatus = &shared.DomainError{
		Code:    ErrCodeInvalidStatus,
		Message: "無效的獎勵狀態",
	}

	// 同一顧客同一規則已有待領取獎勵（唯一約束）
	ErrPendingRewardExists = &shared.DomainError{
		Code:    ErrCodePendingExists,
		Message: "已有待領取的同規則獎勵",
	}
)
