package rules

import (
	"errors"
	"fmt"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/rules"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PointsCalculator 依最新啟用的積分規則計算點數
//
// 業務規則：
// - 每次計算都重新查詢規則，不快取「目前規則」
// - 選擇最新建立的啟用規則，不論類型
// - 沒有啟用規則 → 0
type PointsCalculator struct {
	ruleRepo rules.EarningRuleRepository
}

// NewPointsCalculator 創建計算器
func NewPointsCalculator(ruleRepo rules.EarningRuleRepository) *PointsCalculator {
	return &PointsCalculator{ruleRepo: ruleRepo}
}

// Calculate 計算點數（ctx 可為 nil）
func (c *PointsCalculator) Calculate(ctx shared.TransactionContext, amountSpent decimal.Decimal, itemCount int) (int, error) {
	rule, err := c.ruleRepo.FindLatestActive(ctx)
	if errors.Is(err, rules.ErrNoActiveRule) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to find active earning rule: %w", err)
	}
	return rule.CalculatePoints(amountSpent, itemCount), nil
}
