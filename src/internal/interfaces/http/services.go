package http

import (
	"context"

	appcustomer "github.com/jackyeh168/bar_loyalty/src/internal/application/customer"
	"github.com/jackyeh168/bar_loyalty/src/internal/application/intake"
	appledger "github.com/jackyeh168/bar_loyalty/src/internal/application/ledger"
	appreward "github.com/jackyeh168/bar_loyalty/src/internal/application/reward"
	apprules "github.com/jackyeh168/bar_loyalty/src/internal/application/rules"
)

// 各 handler 依賴的 Use Case 介面（只取需要的方法，測試時以 stub 取代）

type WebhookProcessor interface {
	Execute(payload *intake.WebhookPayload) *intake.WebhookResult
}

type StaffEarner interface {
	Execute(cmd appledger.StaffEarnCommand) (*appledger.EarnPointsResult, error)
}

type PointsRedeemer interface {
	Execute(cmd appledger.RedeemPointsCommand) (*appledger.RedeemPointsResult, error)
}

type PointsAdjuster interface {
	Execute(cmd appledger.AdjustPointsCommand) (*appledger.EntryDTO, error)
}

type BalanceReader interface {
	Execute(query appledger.GetBalanceQuery) (*appledger.GetBalanceResult, error)
}

type HistoryReader interface {
	Execute(query appledger.ListHistoryQuery) (*appledger.ListHistoryResult, error)
}

type LedgerVerifier interface {
	Execute(customerID string) (*appledger.VerifyLedgerResult, error)
}

type RewardClaimer interface {
	Execute(cmd appreward.ClaimRewardCommand) (*appreward.RewardDTO, error)
}

type RewardLister interface {
	Execute(query appreward.ListRewardsQuery) ([]appreward.RewardDTO, error)
	ListPendingRewards(customerID string) ([]appreward.RewardDTO, error)
}

type EarningRuleCreator interface {
	Execute(cmd apprules.CreateEarningRuleCommand) (*apprules.EarningRuleDTO, error)
}

type RewardRuleCreator interface {
	Execute(cmd apprules.CreateRewardRuleCommand) (*apprules.RewardRuleDTO, error)
}

type RuleActivator interface {
	Execute(cmd apprules.SetRuleActiveCommand) error
}

type RuleLister interface {
	Execute() (*apprules.ListRulesResult, error)
}

type CustomerLinker interface {
	Execute(cmd appcustomer.LinkPOSCustomerCommand) (*appcustomer.CustomerResult, error)
}

type CustomerReader interface {
	Execute(customerID string) (*appcustomer.CustomerResult, error)
}

// Services 路由需要的全部 Use Case
type Services struct {
	Webhook WebhookProcessor

	StaffEarn    StaffEarner
	Redeem       PointsRedeemer
	Adjust       PointsAdjuster
	Balance      BalanceReader
	History      HistoryReader
	VerifyLedger LedgerVerifier

	ClaimReward RewardClaimer
	ListRewards RewardLister

	CreateEarningRule EarningRuleCreator
	CreateRewardRule  RewardRuleCreator
	SetRuleActive     RuleActivator
	ListRules         RuleLister

	RegisterCustomer appcustomer.RegisterCustomerUseCase
	LinkPOSCustomer  CustomerLinker
	GetCustomer      CustomerReader

	// Ping 健康檢查（資料庫連線）；nil 時只回報程序存活
	Ping func(ctx context.Context) error
}
