package customer

import (
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
)

// ===========================
// 實體 ID 類型定義
// ===========================

// CustomerMarker 是 CustomerID 的標記類型
type CustomerMarker struct{}

// CustomerID 顧客的唯一標識符
//
// 帳本、獎勵、兌換記錄都以此 ID 關聯顧客。
type CustomerID = shared.EntityID[CustomerMarker]

// NewCustomerID 生成新的顧客 ID
func NewCustomerID() CustomerID {
	return shared.NewEntityID[CustomerMarker]()
}

// CustomerIDFromString 從字串解析顧客 ID
func CustomerIDFromString(s string) (CustomerID, error) {
	return shared.EntityIDFromString[CustomerMarker](s, ErrInvalidCustomerID)
}

// StaffMarker 是 StaffID 的標記類型
type StaffMarker struct{}

// StaffID 員工（操作者）的標識符
//
// 員工帳號由外部系統管理，本系統只記錄「誰操作的」。
// 零值表示沒有操作者（例如 POS 自動入帳）。
type StaffID = shared.EntityID[StaffMarker]

// StaffIDFromString 從字串解析員工 ID（必填）
func StaffIDFromString(s string) (StaffID, error) {
	return shared.EntityIDFromString[StaffMarker](s, ErrInvalidStaffID)
}

// OptionalStaffIDFromString 解析選填的員工 ID，空字串返回零值
func OptionalStaffIDFromString(s string) (StaffID, error) {
	return shared.OptionalEntityIDFromString[StaffMarker](s, ErrInvalidStaffID)
}
