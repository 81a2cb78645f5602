// Package gormtx 提供 GORM 事務上下文，供各 Repository 子套件共用。
package gormtx

import (
	"errors"
	"strings"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ===========================
// GORM TransactionContext 實作
// ===========================

// Context GORM 事務上下文
//
// 設計原則：
// 1. 實作 shared.TransactionContext 介面（標記介面）
// 2. 封裝 *gorm.DB，避免洩漏到 Domain Layer
// 3. 提供 GetDB() 方法供 Infrastructure Layer 內部使用
type Context struct {
	db *gorm.DB
}

// NewContext 創建 GORM 事務上下文
func NewContext(db *gorm.DB) shared.TransactionContext {
	return &Context{db: db}
}

// GetDB 獲取事務中的 GORM 連接（不在 shared.TransactionContext 介面中）
func (c *Context) GetDB() *gorm.DB {
	return c.db
}

// DB 從 TransactionContext 取得 DB；ctx 為 nil 或不是 GORM 上下文時使用 fallback（auto-commit）
func DB(ctx shared.TransactionContext, fallback *gorm.DB) *gorm.DB {
	if ctx != nil {
		if txCtx, ok := ctx.(*Context); ok && txCtx.db != nil {
			return txCtx.db
		}
	}
	return fallback
}

// ForUpdate 加上 SELECT ... FOR UPDATE 列鎖
//
// SQLite 驅動會略過此子句；SQLite 本身以資料庫層級的寫鎖序列化事務。
func ForUpdate(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

// IsUniqueConstraintError 檢查是否為唯一約束衝突
//
// 支援：
// - gorm.ErrDuplicatedKey（開啟 TranslateError 時）
// - PostgreSQL: "duplicate key value violates unique constraint"
// - SQLite: "UNIQUE constraint failed"
func IsUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value violates unique constraint") ||
		strings.Contains(errMsg, "unique constraint failed")
}
