package rules

import "github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"

// EarningRuleRepository 積分規則倉儲介面
type EarningRuleRepository interface {
	Save(ctx shared.TransactionContext, rule *EarningRule) error
	Update(ctx shared.TransactionContext, rule *EarningRule) error
	FindByID(ctx shared.TransactionContext, id EarningRuleID) (*EarningRule, error)

	// FindLatestActive 最新建立的啟用規則（不論類型）；無則返回 ErrNoActiveRule
	FindLatestActive(ctx shared.TransactionContext) (*EarningRule, error)

	// ListAll 全部規則，新到舊
	ListAll(ctx shared.TransactionContext) ([]*EarningRule, error)
}

// RewardRuleRepository 獎勵規則倉儲介面
type RewardRuleRepository interface {
	Save(ctx shared.TransactionContext, rule *RewardRule) error
	Update(ctx shared.TransactionContext, rule *RewardRule) error
	FindByID(ctx shared.TransactionContext, id RewardRuleID) (*RewardRule, error)

	// FindQualifying 啟用中、門檻 <= currentPoints、且 ID 不在 excluded 內的規則，依 ID 遞增
	FindQualifying(ctx shared.TransactionContext, currentPoints int, excluded []RewardRuleID) ([]*RewardRule, error)

	// ListAll 全部規則，新到舊
	ListAll(ctx shared.TransactionContext) ([]*RewardRule, error)
}
