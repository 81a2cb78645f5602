package persistence

import (
	"fmt"

	"github.com/jackyeh168/bar_loyalty/src/internal/infrastructure/persistence/customer"
	"github.com/jackyeh168/bar_loyalty/src/internal/infrastructure/persistence/ledger"
	"github.com/jackyeh168/bar_loyalty/src/internal/infrastructure/persistence/purchase"
	"github.com/jackyeh168/bar_loyalty/src/internal/infrastructure/persistence/reward"
	"github.com/jackyeh168/bar_loyalty/src/internal/infrastructure/persistence/rules"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Models 所有需要遷移的資料表模型
func Models() []interface{} {
	return []interface{}{
		&customer.CustomerGORM{},
		&ledger.BalanceGORM{},
		&ledger.LedgerEntryGORM{},
		&ledger.RedemptionGORM{},
		&rules.EarningRuleGORM{},
		&rules.RewardRuleGORM{},
		&reward.RewardGORM{},
		&purchase.PurchaseGORM{},
	}
}

// Migrate 建立或更新資料表結構（可重複執行）
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("db: migrate: %w", err)
	}
	log.WithField("tables", len(Models())).Info("database schema migrated")
	return nil
}
