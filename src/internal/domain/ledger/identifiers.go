package ledger

import (
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/customer"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
)

// CustomerID / StaffID 沿用 customer 包的定義，避免在帳本內再造一份
type (
	CustomerID = customer.CustomerID
	StaffID    = customer.StaffID
)

// EntryMarker 是 EntryID 的標記類型
type EntryMarker struct{}

// EntryID 帳本流水 ID
//
// UUIDv7：同一顧客的流水依 ID 遞增排序即為建立順序，重播即得目前餘額。
type EntryID = shared.EntityID[EntryMarker]

// NewEntryID 生成新的流水 ID
func NewEntryID() EntryID {
	return shared.NewEntityID[EntryMarker]()
}

// EntryIDFromString 從字串解析流水 ID
func EntryIDFromString(s string) (EntryID, error) {
	return shared.EntityIDFromString[EntryMarker](s, ErrInvalidEntryID)
}

// RedemptionMarker 是 RedemptionID 的標記類型
type RedemptionMarker struct{}

// RedemptionID 兌換記錄 ID
type RedemptionID = shared.EntityID[RedemptionMarker]

// NewRedemptionID 生成新的兌換記錄 ID
func NewRedemptionID() RedemptionID {
	return shared.NewEntityID[RedemptionMarker]()
}

// RedemptionIDFromString 從字串解析兌換記錄 ID
func RedemptionIDFromString(s string) (RedemptionID, error) {
	return shared.EntityIDFromString[RedemptionMarker](s, ErrInvalidRedemptionID)
}
