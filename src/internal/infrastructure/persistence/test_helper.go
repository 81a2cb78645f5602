package persistence

import (
	"testing"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/customer"
	"gorm.io/gorm"
)

// ===========================
// 測試輔助函數
// ===========================

// setupTestDB 創建測試用的 SQLite in-memory 資料庫並完成遷移
//
// 經過 Open 建立，與正式環境使用相同的連線設定（單一連線）。
//
// 返回：
// - *gorm.DB: GORM 資料庫連接
// - cleanup func(): 清理函數，測試結束時調用
func setupTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	db, err := Open(Options{DSN: ":memory:"})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
	}
	return db, cleanup
}

// createTestCustomer 創建測試用顧客（尚未保存）
func createTestCustomer(t *testing.T, name string) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(name)
	if err != nil {
		t.Fatalf("Failed to create customer: %v", err)
	}
	return c
}
