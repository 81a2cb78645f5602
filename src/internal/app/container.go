// Package app 組裝忠誠度服務：資料庫、Repository、Use Case、HTTP 路由與週期任務。
package app

import (
	"context"
	"fmt"
	"time"

	appcustomer "github.com/jackyeh168/bar_loyalty/src/internal/application/customer"
	"github.com/jackyeh168/bar_loyalty/src/internal/application/intake"
	appledger "github.com/jackyeh168/bar_loyalty/src/internal/application/ledger"
	appreward "github.com/jackyeh168/bar_loyalty/src/internal/application/reward"
	apprules "github.com/jackyeh168/bar_loyalty/src/internal/application/rules"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/ledger"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
	"github.com/jackyeh168/bar_loyalty/src/internal/infrastructure/config"
	"github.com/jackyeh168/bar_loyalty/src/internal/infrastructure/events"
	"github.com/jackyeh168/bar_loyalty/src/internal/infrastructure/lock"
	"github.com/jackyeh168/bar_loyalty/src/internal/infrastructure/persistence"
	persistcustomer "github.com/jackyeh168/bar_loyalty/src/internal/infrastructure/persistence/customer"
	persistledger "github.com/jackyeh168/bar_loyalty/src/internal/infrastructure/persistence/ledger"
	persistpurchase "github.com/jackyeh168/bar_loyalty/src/internal/infrastructure/persistence/purchase"
	persistreward "github.com/jackyeh168/bar_loyalty/src/internal/infrastructure/persistence/reward"
	persistrules "github.com/jackyeh168/bar_loyalty/src/internal/infrastructure/persistence/rules"
	httpapi "github.com/jackyeh168/bar_loyalty/src/internal/interfaces/http"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Container 已組裝好的服務元件
type Container struct {
	DB        *gorm.DB
	Publisher *events.Publisher
	Redis     *redis.Client // 未設定 redis.addr 時為 nil

	Services *httpapi.Services
	Earn     *appledger.EarnPointsUseCase
	Receipts *intake.ProcessReceiptUseCase
	Expire   *appreward.ExpireRewardsUseCase
}

// Deps 組裝所需的外部資源
type Deps struct {
	DB           *gorm.DB
	DiscountRate ledger.DiscountRate
	Redis        *redis.Client // 可為 nil
}

// NewContainer 依既有連線組裝全部元件
//
// 依賴方向：persistence → domain 介面 → application use cases → HTTP services
func NewContainer(deps Deps) *Container {
	db := deps.DB
	txManager := persistence.NewGORMTransactionManager(db)

	publisher := events.NewPublisher()
	if deps.Redis != nil {
		publisher.Subscribe(events.AllEvents, events.NewRedisForwarder(deps.Redis, events.DefaultChannel).Handle)
	}
	var eventPublisher shared.EventPublisher = publisher

	customerRepo := persistcustomer.NewCustomerRepository(db)
	balanceRepo := persistledger.NewBalanceRepository(db)
	entryRepo := persistledger.NewLedgerEntryRepository(db)
	redemptionRepo := persistledger.NewRedemptionRepository(db)
	earningRuleRepo := persistrules.NewEarningRuleRepository(db)
	rewardRuleRepo := persistrules.NewRewardRuleRepository(db)
	rewardRepo := persistreward.NewRewardRepository(db)
	purchaseRepo := persistpurchase.NewPurchaseRepository(db)

	calculator := apprules.NewPointsCalculator(earningRuleRepo)
	issuer := appreward.NewRewardIssuer(rewardRepo, rewardRuleRepo, entryRepo, balanceRepo)
	earn := appledger.NewEarnPointsUseCase(balanceRepo, entryRepo, issuer, txManager, eventPublisher)
	receipts := intake.NewProcessReceiptUseCase(purchaseRepo, customerRepo, calculator, earn, txManager, eventPublisher)
	listRewards := appreward.NewListRewardsUseCase(rewardRepo)

	services := &httpapi.Services{
		Webhook: intake.NewHandleWebhookUseCase(receipts),

		StaffEarn:    appledger.NewStaffEarnUseCase(calculator, earn, txManager),
		Redeem:       appledger.NewRedeemPointsUseCase(balanceRepo, entryRepo, redemptionRepo, deps.DiscountRate, txManager, eventPublisher),
		Adjust:       appledger.NewAdjustPointsUseCase(balanceRepo, entryRepo, txManager, eventPublisher),
		Balance:      appledger.NewGetBalanceUseCase(balanceRepo),
		History:      appledger.NewListHistoryUseCase(entryRepo),
		VerifyLedger: appledger.NewVerifyLedgerUseCase(balanceRepo, entryRepo, txManager),

		ClaimReward: appreward.NewClaimRewardUseCase(rewardRepo, txManager, eventPublisher),
		ListRewards: listRewards,

		CreateEarningRule: apprules.NewCreateEarningRuleUseCase(earningRuleRepo, txManager),
		CreateRewardRule:  apprules.NewCreateRewardRuleUseCase(rewardRuleRepo, txManager),
		SetRuleActive:     apprules.NewSetRuleActiveUseCase(earningRuleRepo, rewardRuleRepo, txManager),
		ListRules:         apprules.NewListRulesUseCase(earningRuleRepo, rewardRuleRepo),

		RegisterCustomer: appcustomer.NewRegisterCustomerUseCase(customerRepo, txManager),
		LinkPOSCustomer:  appcustomer.NewLinkPOSCustomerUseCase(customerRepo, txManager),
		GetCustomer:      appcustomer.NewGetCustomerUseCase(customerRepo),

		Ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}

	return &Container{
		DB:        db,
		Publisher: publisher,
		Redis:     deps.Redis,
		Services:  services,
		Earn:      earn,
		Receipts:  receipts,
		Expire:    appreward.NewExpireRewardsUseCase(rewardRepo, txManager),
	}
}

// Open 依設定開啟資料庫（並遷移）、連線 Redis（選用），再組裝元件
func Open(ctx context.Context, cfg *config.Config) (*Container, error) {
	lifetime, err := cfg.Database.Lifetime()
	if err != nil {
		return nil, err
	}
	slow, err := cfg.Database.Slow()
	if err != nil {
		return nil, err
	}
	rateValue, err := cfg.Redemption.Rate()
	if err != nil {
		return nil, err
	}
	rate, err := ledger.NewDiscountRate(rateValue)
	if err != nil {
		return nil, fmt.Errorf("redemption.peso_per_point: %w", err)
	}

	db, err := persistence.Open(persistence.Options{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: lifetime,
		SlowThreshold:   slow,
	})
	if err != nil {
		return nil, err
	}
	if err := persistence.Migrate(db); err != nil {
		closeDB(db)
		return nil, err
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		redisClient, err = lock.NewClient(pingCtx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		cancel()
		if err != nil {
			closeDB(db)
			return nil, err
		}
		log.Infof("redis connected at %s", cfg.Redis.Addr)
	}

	return NewContainer(Deps{DB: db, DiscountRate: rate, Redis: redisClient}), nil
}

// Sweeper 建立週期過期任務；有 Redis 時以分散式鎖保證同一輪只有一個實例執行
func (c *Container) Sweeper(interval time.Duration) *appreward.ExpirySweeper {
	if c.Redis != nil {
		return appreward.NewExpirySweeper(c.Expire, lock.NewRedisLocker(c.Redis), interval)
	}
	return appreward.NewExpirySweeper(c.Expire, nil, interval)
}

// Close 釋放資料庫與 Redis 連線
func (c *Container) Close() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.WithError(err).Warn("failed to close redis client")
		}
	}
	closeDB(c.DB)
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.WithError(err).Warn("failed to close database")
	}
}
