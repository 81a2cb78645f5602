package persistence

import (
	"fmt"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
	"github.com/jackyeh168/bar_loyalty/src/internal/infrastructure/persistence/gormtx"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ===========================
// GORMTransactionManager
// ===========================

// GORMTransactionManager 以 GORM 實作 shared.TransactionManager
//
// 行為約定：
// - fn 返回 nil → 提交
// - fn 返回錯誤 → 回滾，原樣返回錯誤（保留 errors.Is 判斷）
// - fn panic → 回滾後重新 panic
type GORMTransactionManager struct {
	db *gorm.DB
}

// NewGORMTransactionManager 創建事務管理器
func NewGORMTransactionManager(db *gorm.DB) shared.TransactionManager {
	return &GORMTransactionManager{db: db}
}

// InTransaction 在事務中執行 fn
func (m *GORMTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) (err error) {
	tx := m.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback().Error; rbErr != nil {
				log.WithError(rbErr).Error("rollback after panic failed")
			}
			panic(p)
		}
	}()

	if err = fn(gormtx.NewContext(tx)); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			log.WithError(rbErr).Warn("transaction rollback failed")
		}
		return err
	}

	if err = tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
