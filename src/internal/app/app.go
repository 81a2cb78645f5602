package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	appledger "github.com/jackyeh168/bar_loyalty/src/internal/application/ledger"
	"github.com/jackyeh168/bar_loyalty/src/internal/infrastructure/config"
	"github.com/jackyeh168/bar_loyalty/src/internal/infrastructure/persistence"
	httpapi "github.com/jackyeh168/bar_loyalty/src/internal/interfaces/http"
	log "github.com/sirupsen/logrus"
)

// Migrate 開啟資料庫並執行遷移
func Migrate(cfg *config.Config) error {
	db, err := persistence.Open(persistence.Options{DSN: cfg.Database.DSN})
	if err != nil {
		return err
	}
	defer closeDB(db)
	return persistence.Migrate(db)
}

// RunServer 啟動 HTTP 服務與獎勵過期週期任務，阻塞直到 ctx 取消
func RunServer(ctx context.Context, cfg *config.Config) error {
	interval, err := cfg.Rewards.Interval()
	if err != nil {
		return err
	}
	shutdownTimeout, err := cfg.HTTP.ShutdownTimeoutDuration()
	if err != nil {
		return err
	}

	c, err := Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	if cfg.HTTP.Mode != "" {
		gin.SetMode(cfg.HTTP.Mode)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	c.Sweeper(interval).Start(ctx)

	dialect, _ := persistence.DetectDialect(cfg.Database.DSN)
	server := httpapi.NewServer(cfg.HTTP.Addr, httpapi.NewRouter(c.Services), shutdownTimeout)
	log.Infof("loyalty service starting (db=%s)", dialect)
	return server.Run(ctx)
}

// ExpireRewards 執行一次獎勵過期處理，返回轉換筆數
func ExpireRewards(ctx context.Context, cfg *config.Config) (int64, error) {
	c, err := Open(ctx, cfg)
	if err != nil {
		return 0, err
	}
	defer c.Close()

	n, err := c.Expire.Sweep(time.Now())
	if err != nil {
		return 0, fmt.Errorf("expire rewards: %w", err)
	}
	return n, nil
}

// VerifyLedger 稽核單一顧客的帳本
func VerifyLedger(ctx context.Context, cfg *config.Config, customerID string) (*appledger.VerifyLedgerResult, error) {
	c, err := Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	return c.Services.VerifyLedger.Execute(customerID)
}
