package rules

import (
	"fmt"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/rules"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// ===========================
// CreateEarningRule
// ===========================

// CreateEarningRuleCommand 建立積分規則命令
//
// Type 為 spend_based 時使用 SpendUnitAmount / MinimumSpend / PointsPerUnit；
// 為 per_item 時使用 PointsPerItem。
type CreateEarningRuleCommand struct {
	Name            string
	Type            string
	SpendUnitAmount decimal.Decimal
	MinimumSpend    decimal.Decimal
	PointsPerUnit   int
	PointsPerItem   int
}

// CreateEarningRuleUseCase 建立積分規則（參數在此驗證，評估時不再拒絕）
type CreateEarningRuleUseCase struct {
	ruleRepo  rules.EarningRuleRepository
	txManager shared.TransactionManager
}

// NewCreateEarningRuleUseCase 創建 Use Case 實例
func NewCreateEarningRuleUseCase(ruleRepo rules.EarningRuleRepository, txManager shared.TransactionManager) *CreateEarningRuleUseCase {
	return &CreateEarningRuleUseCase{ruleRepo: ruleRepo, txManager: txManager}
}

// Execute 執行建立
func (uc *CreateEarningRuleUseCase) Execute(cmd CreateEarningRuleCommand) (*EarningRuleDTO, error) {
	ruleType, err := rules.ParseRuleType(cmd.Type)
	if err != nil {
		return nil, err
	}

	var rule *rules.EarningRule
	switch ruleType {
	case rules.RuleTypeSpendBased:
		rule, err = rules.NewSpendBasedRule(cmd.Name, cmd.SpendUnitAmount, cmd.MinimumSpend, cmd.PointsPerUnit)
	case rules.RuleTypePerItem:
		rule, err = rules.NewPerItemRule(cmd.Name, cmd.PointsPerItem)
	}
	if err != nil {
		return nil, err
	}

	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		return uc.ruleRepo.Save(ctx, rule)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save earning rule: %w", err)
	}

	log.WithFields(log.Fields{"rule_id": rule.ID().String(), "type": string(ruleType)}).Info("earning rule created")
	dto := toEarningRuleDTO(rule)
	return &dto, nil
}

// ===========================
// CreateRewardRule
// ===========================

// CreateRewardRuleCommand 建立獎勵規則命令
type CreateRewardRuleCommand struct {
	Name           string
	RewardTitle    string
	Description    string
	PointsRequired int
	ExpiresInDays  int
}

// CreateRewardRuleUseCase 建立獎勵規則
type CreateRewardRuleUseCase struct {
	ruleRepo  rules.RewardRuleRepository
	txManager shared.TransactionManager
}

// NewCreateRewardRuleUseCase 創建 Use Case 實例
func NewCreateRewardRuleUseCase(ruleRepo rules.RewardRuleRepository, txManager shared.TransactionManager) *CreateRewardRuleUseCase {
	return &CreateRewardRuleUseCase{ruleRepo: ruleRepo, txManager: txManager}
}

// Execute 執行建立
func (uc *CreateRewardRuleUseCase) Execute(cmd CreateRewardRuleCommand) (*RewardRuleDTO, error) {
	rule, err := rules.NewRewardRule(cmd.Name, cmd.RewardTitle, cmd.Description, cmd.PointsRequired, cmd.ExpiresInDays)
	if err != nil {
		return nil, err
	}

	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		return uc.ruleRepo.Save(ctx, rule)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save reward rule: %w", err)
	}

	log.WithField("rule_id", rule.ID().String()).Info("reward rule created")
	dto := toRewardRuleDTO(rule)
	return &dto, nil
}

// ===========================
// SetRuleActive
// ===========================

// RuleKind 規則種類
type RuleKind string

const (
	RuleKindEarning RuleKind = "earning"
	RuleKindReward  RuleKind = "reward"
)

// SetRuleActiveCommand 啟用 / 停用規則
type SetRuleActiveCommand struct {
	Kind   RuleKind
	RuleID string
	Active bool
}

// SetRuleActiveUseCase 啟用 / 停用積分或獎勵規則
//
// 停用獎勵規則不影響已發放的獎勵。
type SetRuleActiveUseCase struct {
	earningRepo rules.EarningRuleRepository
	rewardRepo  rules.RewardRuleRepository
	txManager   shared.TransactionManager
}

// NewSetRuleActiveUseCase 創建 Use Case 實例
func NewSetRuleActiveUseCase(
	earningRepo rules.EarningRuleRepository,
	rewardRepo rules.RewardRuleRepository,
	txManager shared.TransactionManager,
) *SetRuleActiveUseCase {
	return &SetRuleActiveUseCase{
		earningRepo: earningRepo,
		rewardRepo:  rewardRepo,
		txManager:   txManager,
	}
}

// Execute 執行變更
func (uc *SetRuleActiveUseCase) Execute(cmd SetRuleActiveCommand) error {
	switch cmd.Kind {
	case RuleKindEarning:
		id, err := rules.EarningRuleIDFromString(cmd.RuleID)
		if err != nil {
			return err
		}
		return uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
			rule, err := uc.earningRepo.FindByID(ctx, id)
			if err != nil {
				return err
			}
			rule.SetActive(cmd.Active)
			return uc.earningRepo.Update(ctx, rule)
		})

	case RuleKindReward:
		id, err := rules.RewardRuleIDFromString(cmd.RuleID)
		if err != nil {
			return err
		}
		return uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
			rule, err := uc.rewardRepo.FindByID(ctx, id)
			if err != nil {
				return err
			}
			rule.SetActive(cmd.Active)
			return uc.rewardRepo.Update(ctx, rule)
		})
	}

	return rules.ErrInvalidRuleType.WithContext("kind", string(cmd.Kind))
}

// ===========================
// ListRules
// ===========================

// ListRulesResult 全部規則（新到舊）
type ListRulesResult struct {
	EarningRules []EarningRuleDTO
	RewardRules  []RewardRuleDTO
}

// ListRulesUseCase 查詢全部規則
type ListRulesUseCase struct {
	earningRepo rules.EarningRuleRepository
	rewardRepo  rules.RewardRuleRepository
}

// NewListRulesUseCase 創建 Use Case 實例
func NewListRulesUseCase(earningRepo rules.EarningRuleRepository, rewardRepo rules.RewardRuleRepository) *ListRulesUseCase {
	return &ListRulesUseCase{earningRepo: earningRepo, rewardRepo: rewardRepo}
}

// Execute 執行查詢
func (uc *ListRulesUseCase) Execute() (*ListRulesResult, error) {
	earning, err := uc.earningRepo.ListAll(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list earning rules: %w", err)
	}
	rewards, err := uc.rewardRepo.ListAll(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list reward rules: %w", err)
	}

	result := &ListRulesResult{
		EarningRules: make([]EarningRuleDTO, 0, len(earning)),
		RewardRules:  make([]RewardRuleDTO, 0, len(rewards)),
	}
	for _, r := range earning {
		result.EarningRules = append(result.EarningRules, toEarningRuleDTO(r))
	}
	for _, r := range rewards {
		result.RewardRules = append(result.RewardRules, toRewardRuleDTO(r))
	}
	return result, nil
}
