package customer

import "github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"

// 錯誤代碼常量
const (
	ErrCodeInvalidCustomerID    shared.ErrorCode = "CUSTOMER_ID_INVALID"
	ErrCodeInvalidStaffID       shared.ErrorCode = "STAFF_ID_INVALID"
	ErrCodeInvalidCustomerName  shared.ErrorCode = "CUSTOMER_NAME_INVALID"
	ErrCodeCustomerNotFound     shared.ErrorCode = "CUSTOMER_NOT_FOUND"
	ErrCodePOSCustomerIDTaken   shared.ErrorCode = "POS_CUSTOMER_ID_TAKEN"
	ErrCodeInvalidPOSCustomerID shared.ErrorCode = "POS_CUSTOMER_ID_INVALID"
)

// 預定義錯誤
var (
	ErrInvalidCustomerID = &shared.DomainError{
		Code:    ErrCodeInvalidCustomerID,
		Message: "無效的顧客 ID",
	}

	ErrInvalidStaffID = &shared.DomainError{
		Code:    ErrCodeInvalidStaffID,
		Message: "無效的員工 ID",
	}

	ErrInvalidCustomerName = &shared.DomainError{
		Code:    ErrCodeInvalidCustomerName,
		Message: "顧客名稱不可為空",
	}

	ErrCustomerNotFound = &shared.DomainError{
		Code:    ErrCodeCustomerNotFound,
		Message: "顧客不存在",
	}

	// POS 顧客 ID 已綁定其他顧客（唯一約束）
	ErrPOSCustomerIDTaken = &shared.DomainError{
		Code:    ErrCodePOSCustomerIDTaken,
		Message: "POS 顧客 ID 已被綁定",
	}

	ErrInvalidPOSCustomerID = &shared.DomainError{
		Code:    ErrCodeInvalidPOSCustomerID,
		Message: "POS 顧客 ID 不可為空",
	}
)
