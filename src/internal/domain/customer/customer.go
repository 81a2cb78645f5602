package customer

import (
	"strings"
	"time"
)

// ===========================
// Customer 聚合根
// ===========================

// Customer 顧客
//
// 顧客的建立、登入、權限由外部系統負責；
// 忠誠度核心只需要：
// 1. 穩定的 CustomerID（帳本外鍵）
// 2. POS 系統的顧客 ID 映射（收據入帳時用來找人）
//
// 業務規則：
// - 名稱不可為空
// - posCustomerID 可為空；非空時全域唯一（由 Repository 唯一索引保證）
type Customer struct {
	id            CustomerID
	name          string
	posCustomerID string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewCustomer 創建新顧客
func NewCustomer(name string) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidCustomerName
	}

	now := time.Now()
	return &Customer{
		id:        NewCustomerID(),
		name:      name,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructCustomer 從持久化存儲重建顧客（僅供 Repository 使用）
func ReconstructCustomer(
	id CustomerID,
	name string,
	posCustomerID string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Customer, error) {
	if id.IsEmpty() {
		return nil, ErrInvalidCustomerID.WithContext("reason", "invalid customer ID in database")
	}

	return &Customer{
		id:            id,
		name:          name,
		posCustomerID: posCustomerID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

// ID 獲取顧客 ID
func (c *Customer) ID() CustomerID {
	return c.id
}

// Name 獲取顧客名稱
func (c *Customer) Name() string {
	return c.name
}

// POSCustomerID 獲取 POS 顧客 ID（未綁定時為空字串）
func (c *Customer) POSCustomerID() string {
	return c.posCustomerID
}

// HasPOSCustomerID 是否已綁定 POS 顧客
func (c *Customer) HasPOSCustomerID() bool {
	return c.posCustomerID != ""
}

// CreatedAt 獲取創建時間
func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt 獲取最後更新時間
func (c *Customer) UpdatedAt() time.Time {
	return c.updatedAt
}

// LinkPOSCustomer 綁定 POS 顧客 ID
//
// 重新綁定會覆蓋舊值；唯一性衝突由 Repository.Update 回報 ErrPOSCustomerIDTaken。
func (c *Customer) LinkPOSCustomer(posCustomerID string) error {
	posCustomerID = strings.TrimSpace(posCustomerID)
	if posCustomerID == "" {
		return ErrInvalidPOSCustomerID
	}

	c.posCustomerID = posCustomerID
	c.updatedAt = time.Now()
	return nil
}
