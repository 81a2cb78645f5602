package ledger

import "github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"

// BalanceRepository 積分餘額倉儲介面
//
// 每位顧客的所有餘額變更都必須先取得該列的鎖，
// 同一顧客的並發變更因此被序列化；不同顧客互不影響。
type BalanceRepository interface {
	// FindByCustomerID 查詢餘額（不加鎖）；不存在返回 ErrBalanceNotFound
	FindByCustomerID(ctx shared.TransactionContext, customerID CustomerID) (*Balance, error)

	// FindForUpdate 查詢並鎖定餘額列（ctx 必須非 nil）；不存在返回 ErrBalanceNotFound
	FindForUpdate(ctx shared.TransactionContext, customerID CustomerID) (*Balance, error)

	// FindOrCreateForUpdate 取得或建立零餘額並鎖定（ctx 必須非 nil）
	//
	// 建立與鎖定在同一事務內完成，兩個並發的首次入帳不會各自建立一筆。
	FindOrCreateForUpdate(ctx shared.TransactionContext, customerID CustomerID) (*Balance, error)

	// Update 寫回餘額（ctx 必須非 nil）
	Update(ctx shared.TransactionContext, balance *Balance) error
}

// LedgerEntryRepository 帳本流水倉儲介面（只新增）
type LedgerEntryRepository interface {
	// Append 寫入一或多筆流水（ctx 必須非 nil）
	Append(ctx shared.TransactionContext, entries ...*LedgerEntry) error

	// ListByCustomer 分頁查詢，新到舊
	ListByCustomer(ctx shared.TransactionContext, customerID CustomerID, limit, offset int) ([]*LedgerEntry, error)

	// ListAllByCustomerAsc 全部流水，舊到新（稽核重播用）
	ListAllByCustomerAsc(ctx shared.TransactionContext, customerID CustomerID) ([]*LedgerEntry, error)

	// CountByCustomer 流水總數
	CountByCustomer(ctx shared.TransactionContext, customerID CustomerID) (int64, error)
}

// RedemptionRepository 兌換記錄倉儲介面
type RedemptionRepository interface {
	// Save 新增兌換記錄（ctx 必須非 nil）
	Save(ctx shared.TransactionContext, redemption *Redemption) error
}
