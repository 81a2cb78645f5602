package purchase

import "github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"

const (
	ErrCodeInvalidReceiptID shared.ErrorCode = "RECEIPT_ID_INVALID"
	ErrCodeInvalidPurchase  shared.ErrorCode = "PURCHASE_INVALID"
	ErrCodeDuplicateReceipt shared.ErrorCode = "RECEIPT_DUPLICATE"
	ErrCodePurchaseNotFound shared.ErrorCode = "PURCHASE_NOT_FOUND"
)

var (
	ErrInvalidReceiptID = &shared.DomainError{
		Code:    ErrCodeInvalidReceiptID,
		Message: "收據編號不可為空",
	}

	ErrInvalidPurchase = &shared.DomainError{
		Code:    ErrCodeInvalidPurchase,
		Message: "購買紀錄資料無效",
	}

	// 同一收據已入帳（唯一約束）
	ErrDuplicateReceipt = &shared.DomainError{
		Code:    ErrCodeDuplicateReceipt,
		Message: "收據已處理過",
	}

	ErrPurchaseNotFound = &shared.DomainError{
		Code:    ErrCodePurchaseNotFound,
		Message: "購買紀錄不存在",
	}
)
