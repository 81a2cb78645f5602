package rules

import (
	"testing"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/rules"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test 1: 建立兩種積分規則
func TestCreateEarningRuleUseCase_Success(t *testing.T) {
	repo := &MockEarningRuleRepository{}
	tx := &MockTransactionManager{}
	uc := NewCreateEarningRuleUseCase(repo, tx)

	spend, err := uc.Execute(CreateEarningRuleCommand{
		Name:            "Standard",
		Type:            "spend_based",
		SpendUnitAmount: decimal.NewFromInt(50),
		MinimumSpend:    decimal.Zero,
		PointsPerUnit:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, "spend_based", spend.Type)
	assert.True(t, spend.Active)

	item, err := uc.Execute(CreateEarningRuleCommand{Name: "Drinks", Type: "per_item", PointsPerItem: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, item.PointsPerItem)

	assert.Equal(t, 2, repo.SaveCallCount)
	assert.Equal(t, 2, tx.InTransactionCallCount)
}

// Test 2: 建立時拒絕無效參數
func TestCreateEarningRuleUseCase_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cmd     CreateEarningRuleCommand
		wantErr error
	}{
		{"未知類型", CreateEarningRuleCommand{Name: "x", Type: "bonus"}, rules.ErrInvalidRuleType},
		{"單位金額為 0", CreateEarningRuleCommand{Name: "x", Type: "spend_based", SpendUnitAmount: decimal.Zero, PointsPerUnit: 1}, rules.ErrInvalidEarningRule},
		{"最低消費為負", CreateEarningRuleCommand{Name: "x", Type: "spend_based", SpendUnitAmount: decimal.NewFromInt(1), MinimumSpend: decimal.NewFromInt(-1), PointsPerUnit: 1}, rules.ErrInvalidEarningRule},
		{"每品項 0 點", CreateEarningRuleCommand{Name: "x", Type: "per_item"}, rules.ErrInvalidEarningRule},
		{"名稱空白", CreateEarningRuleCommand{Name: " ", Type: "per_item", PointsPerItem: 1}, rules.ErrInvalidEarningRule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockEarningRuleRepository{}

			_, err := NewCreateEarningRuleUseCase(repo, &MockTransactionManager{}).Execute(tt.cmd)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, repo.SaveCallCount)
		})
	}
}

// Test 3: 建立獎勵規則與驗證
func TestCreateRewardRuleUseCase(t *testing.T) {
	repo := &MockRewardRuleRepository{}
	uc := NewCreateRewardRuleUseCase(repo, &MockTransactionManager{})

	dto, err := uc.Execute(CreateRewardRuleCommand{Name: "Tier 1", RewardTitle: "Free Beer", PointsRequired: 100, ExpiresInDays: 30})
	require.NoError(t, err)
	assert.Equal(t, "Free Beer", dto.RewardTitle)
	assert.Len(t, repo.rules, 1)

	_, err = uc.Execute(CreateRewardRuleCommand{Name: "Tier 0", RewardTitle: "Nothing", PointsRequired: 0, ExpiresInDays: 30})
	assert.ErrorIs(t, err, rules.ErrInvalidRewardRule)

	_, err = uc.Execute(CreateRewardRuleCommand{Name: "Tier 2", RewardTitle: "Shot", PointsRequired: 5, ExpiresInDays: 0})
	assert.ErrorIs(t, err, rules.ErrInvalidRewardRule)
}

// Test 4: 啟用 / 停用
func TestSetRuleActiveUseCase(t *testing.T) {
	// Arrange
	earningRule, _ := rules.NewPerItemRule("Drinks", 1)
	rewardRule, _ := rules.NewRewardRule("Tier 1", "Free Beer", "", 10, 30)
	earningRepo := &MockEarningRuleRepository{rules: []*rules.EarningRule{earningRule}}
	rewardRepo := &MockRewardRuleRepository{rules: []*rules.RewardRule{rewardRule}}
	uc := NewSetRuleActiveUseCase(earningRepo, rewardRepo, &MockTransactionManager{})

	// Act & Assert
	require.NoError(t, uc.Execute(SetRuleActiveCommand{Kind: RuleKindEarning, RuleID: earningRule.ID().String(), Active: false}))
	assert.False(t, earningRule.IsActive())
	assert.Equal(t, 1, earningRepo.UpdateCallCount)

	require.NoError(t, uc.Execute(SetRuleActiveCommand{Kind: RuleKindReward, RuleID: rewardRule.ID().String(), Active: false}))
	assert.False(t, rewardRule.IsActive())

	err := uc.Execute(SetRuleActiveCommand{Kind: RuleKindReward, RuleID: rules.NewRewardRuleID().String()})
	assert.ErrorIs(t, err, rules.ErrRuleNotFound)

	err = uc.Execute(SetRuleActiveCommand{Kind: "promo", RuleID: rewardRule.ID().String()})
	assert.ErrorIs(t, err, rules.ErrInvalidRuleType)
}

// Test 5: 列出規則（新到舊）
func TestListRulesUseCase(t *testing.T) {
	first, _ := rules.NewPerItemRule("First", 1)
	second, _ := rules.NewPerItemRule("Second", 1)
	earningRepo := &MockEarningRuleRepository{rules: []*rules.EarningRule{first, second}}

	result, err := NewListRulesUseCase(earningRepo, &MockRewardRuleRepository{}).Execute()

	require.NoError(t, err)
	require.Len(t, result.EarningRules, 2)
	assert.Equal(t, "Second", result.EarningRules[0].Name)
	assert.Empty(t, result.RewardRules)
}
