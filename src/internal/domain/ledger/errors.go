package ledger

import "github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"

// ===========================
// 錯誤代碼定義
// ===========================

const (
	// 積分數量相關
	ErrCodeNegativePointsAmount shared.ErrorCode = "POINTS_NEGATIVE"
	ErrCodeInvalidPointsAmount  shared.ErrorCode = "POINTS_INVALID"
	ErrCodeInsufficientPoints   shared.ErrorCode = "POINTS_INSUFFICIENT"
	ErrCodeWouldUnderflow       shared.ErrorCode = "POINTS_UNDERFLOW"

	// 兌換相關
	ErrCodeInvalidDiscountRate shared.ErrorCode = "DISCOUNT_RATE_INVALID"

	// 識別符相關
	ErrCodeInvalidEntryID      shared.ErrorCode = "ENTRY_ID_INVALID"
	ErrCodeInvalidRedemptionID shared.ErrorCode = "REDEMPTION_ID_INVALID"
	ErrCodeInvalidEntryKind    shared.ErrorCode = "ENTRY_KIND_INVALID"
	ErrCodeInvalidReference    shared.ErrorCode = "REFERENCE_INVALID"

	// 查詢相關
	ErrCodeBalanceNotFound shared.ErrorCode = "BALANCE_NOT_FOUND"

	// 輸入相關
	ErrCodeDescriptionRequired shared.ErrorCode = "DESCRIPTION_REQUIRED"
	ErrCodeNoPointsEarned      shared.ErrorCode = "NO_POINTS_EARNED"

	// 資料一致性（非使用者錯誤）
	ErrCodeInternalConsistency shared.ErrorCode = "LEDGER_INCONSISTENT"
	ErrCodeCorruptedBalance    shared.ErrorCode = "BALANCE_CORRUPTED"
)

// ===========================
// 預定義錯誤
// ===========================

var (
	ErrNegativePointsAmount = &shared.DomainError{
		Code:    ErrCodeNegativePointsAmount,
		Message: "積分數量不能為負數",
	}

	// 賺取、兌換、獎勵扣點的數量必須 > 0
	ErrInvalidPointsAmount = &shared.DomainError{
		Code:    ErrCodeInvalidPointsAmount,
		Message: "積分數量必須大於 0",
	}

	// 兌換時餘額不足（或顧客尚無餘額紀錄）
	ErrInsufficientBalance = &shared.DomainError{
		Code:    ErrCodeInsufficientPoints,
		Message: "積分不足",
	}

	// 負向調整超過目前餘額
	ErrWouldUnderflow = &shared.DomainError{
		Code:    ErrCodeWouldUnderflow,
		Message: "調整後積分將低於 0",
	}

	ErrInvalidDiscountRate = &shared.DomainError{
		Code:    ErrCodeInvalidDiscountRate,
		Message: "每點折抵金額必須大於 0",
	}

	ErrInvalidEntryID = &shared.DomainError{
		Code:    ErrCodeInvalidEntryID,
		Message: "無效的流水 ID",
	}

	ErrInvalidRedemptionID = &shared.DomainError{
		Code:    ErrCodeInvalidRedemptionID,
		Message: "無效的兌換記錄 ID",
	}

	ErrInvalidEntryKind = &shared.DomainError{
		Code:    ErrCodeInvalidEntryKind,
		Message: "無效的流水類型",
	}

	ErrInvalidReference = &shared.DomainError{
		Code:    ErrCodeInvalidReference,
		Message: "無效的來源參照",
	}

	ErrBalanceNotFound = &shared.DomainError{
		Code:    ErrCodeBalanceNotFound,
		Message: "顧客尚無積分紀錄",
	}

	// 管理員調整必須說明原因
	ErrDescriptionRequired = &shared.DomainError{
		Code:    ErrCodeDescriptionRequired,
		Message: "必須填寫說明",
	}

	// 依規則計算結果為 0（沒有啟用規則或消費不足）
	ErrNoPointsEarned = &shared.DomainError{
		Code:    ErrCodeNoPointsEarned,
		Message: "沒有啟用中的積分規則或未獲得積分",
	}

	// 獎勵扣點時餘額不足：資格檢查剛通過卻扣不了，表示有並發或邏輯錯誤。
	// 必須中止整個事務，不可略過。
	ErrInternalConsistency = &shared.DomainError{
		Code:    ErrCodeInternalConsistency,
		Message: "帳本內部一致性錯誤",
	}

	ErrCorruptedBalance = &shared.DomainError{
		Code:    ErrCodeCorruptedBalance,
		Message: "資料庫中的積分資料損壞",
	}
)
