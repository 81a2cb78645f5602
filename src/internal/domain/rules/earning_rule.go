package rules

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ===========================
// RuleType 積分規則類型
// ===========================

// RuleType 積分規則類型
type RuleType string

const (
	RuleTypeSpendBased RuleType = "spend_based" // 依消費金額
	RuleTypePerItem    RuleType = "per_item"    // 依品項數量
)

// ParseRuleType 從字串解析規則類型
func ParseRuleType(s string) (RuleType, error) {
	switch t := RuleType(s); t {
	case RuleTypeSpendBased, RuleTypePerItem:
		return t, nil
	default:
		return "", ErrInvalidRuleType.WithContext("value", s)
	}
}

// minSpendUnit 每單位消費金額下限（0.01），避免除以 0
var minSpendUnit = decimal.New(1, -2)

// ===========================
// EarningRule 聚合根
// ===========================

// EarningRule 積分規則
//
// 業務規則：
// - spend_based：amount < minimumSpend → 0；否則 floor(amount / spendUnitAmount) × pointsPerUnit
// - per_item：itemCount × pointsPerItem，忽略金額
// - 參數在建立時驗證，評估時遇到無效參數一律視為 0 點，不 panic
//
// 同時只有「最新建立的啟用規則」生效，不論類型；選擇邏輯在 Repository 查詢中完成。
type EarningRule struct {
	id              EarningRuleID
	name            string
	ruleType        RuleType
	spendUnitAmount decimal.Decimal
	minimumSpend    decimal.Decimal
	pointsPerUnit   int
	pointsPerItem   int
	active          bool
	createdAt       time.Time
	updatedAt       time.Time
}

// NewSpendBasedRule 建立依消費金額計點的規則
//
// 驗證：
// - name 必填
// - spendUnitAmount >= 0.01
// - minimumSpend >= 0
// - pointsPerUnit >= 1
func NewSpendBasedRule(name string, spendUnitAmount, minimumSpend decimal.Decimal, pointsPerUnit int) (*EarningRule, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidEarningRule.WithContext("field", "name", "reason", "required")
	}
	if spendUnitAmount.LessThan(minSpendUnit) {
		return nil, ErrInvalidEarningRule.WithContext("field", "spend_amount", "value", spendUnitAmount.String())
	}
	if minimumSpend.IsNegative() {
		return nil, ErrInvalidEarningRule.WithContext("field", "minimum_spend", "value", minimumSpend.String())
	}
	if pointsPerUnit < 1 {
		return nil, ErrInvalidEarningRule.WithContext("field", "points_per_unit", "value", pointsPerUnit)
	}

	now := time.Now()
	return &EarningRule{
		id:              NewEarningRuleID(),
		name:            name,
		ruleType:        RuleTypeSpendBased,
		spendUnitAmount: spendUnitAmount,
		minimumSpend:    minimumSpend,
		pointsPerUnit:   pointsPerUnit,
		active:          true,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// NewPerItemRule 建立依品項數量計點的規則（pointsPerItem >= 1）
func NewPerItemRule(name string, pointsPerItem int) (*EarningRule, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidEarningRule.WithContext("field", "name", "reason", "required")
	}
	if pointsPerItem < 1 {
		return nil, ErrInvalidEarningRule.WithContext("field", "points_per_item", "value", pointsPerItem)
	}

	now := time.Now()
	return &EarningRule{
		id:            NewEarningRuleID(),
		name:          name,
		ruleType:      RuleTypePerItem,
		pointsPerItem: pointsPerItem,
		active:        true,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructEarningRule 從持久化存儲重建規則（僅供 Repository 使用）
//
// 不重新驗證參數：舊資料中的無效規則由 CalculatePoints 防禦性地返回 0。
func ReconstructEarningRule(
	id EarningRuleID,
	name string,
	ruleType RuleType,
	spendUnitAmount decimal.Decimal,
	minimumSpend decimal.Decimal,
	pointsPerUnit int,
	pointsPerItem int,
	active bool,
	createdAt time.Time,
	updatedAt time.Time,
) *EarningRule {
	return &EarningRule{
		id:              id,
		name:            name,
		ruleType:        ruleType,
		spendUnitAmount: spendUnitAmount,
		minimumSpend:    minimumSpend,
		pointsPerUnit:   pointsPerUnit,
		pointsPerItem:   pointsPerItem,
		active:          active,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (r *EarningRule) ID() EarningRuleID                { return r.id }
func (r *EarningRule) Name() string                     { return r.name }
func (r *EarningRule) Type() RuleType                   { return r.ruleType }
func (r *EarningRule) SpendUnitAmount() decimal.Decimal { return r.spendUnitAmount }
func (r *EarningRule) MinimumSpend() decimal.Decimal    { return r.minimumSpend }
func (r *EarningRule) PointsPerUnit() int               { return r.pointsPerUnit }
func (r *EarningRule) PointsPerItem() int               { return r.pointsPerItem }
func (r *EarningRule) IsActive() bool                   { return r.active }
func (r *EarningRule) CreatedAt() time.Time             { return r.createdAt }
func (r *EarningRule) UpdatedAt() time.Time             { return r.updatedAt }

// SetActive 啟用或停用規則
func (r *EarningRule) SetActive(active bool) {
	if r.active == active {
		return
	}
	r.active = active
	r.updatedAt = time.Now()
}

// CalculatePoints 計算積分（純函數，結果 >= 0）
//
// 負數輸入視為 0；參數無效（單位金額 <= 0、點數 < 0、未知類型）視為規則不適用，返回 0。
func (r *EarningRule) CalculatePoints(amountSpent decimal.Decimal, itemCount int) int {
	switch r.ruleType {
	case RuleTypePerItem:
		if itemCount <= 0 || r.pointsPerItem <= 0 {
			return 0
		}
		return clampPoints(decimal.NewFromInt(int64(itemCount)).Mul(decimal.NewFromInt(int64(r.pointsPerItem))))

	case RuleTypeSpendBased:
		if !r.spendUnitAmount.IsPositive() || r.pointsPerUnit <= 0 {
			return 0
		}
		if amountSpent.IsNegative() {
			amountSpent = decimal.Zero
		}
		if amountSpent.LessThan(r.minimumSpend) {
			return 0
		}
		units := amountSpent.Div(r.spendUnitAmount).Floor()
		return clampPoints(units.Mul(decimal.NewFromInt(int64(r.pointsPerUnit))))
	}

	return 0
}

// MaxPointsPerCalculation 單次計算的點數上限（積分欄位為 32 位元整數）
const MaxPointsPerCalculation = math.MaxInt32

// clampPoints 以 decimal 計算後截斷到上限，避免異常金額造成整數溢位
func clampPoints(points decimal.Decimal) int {
	if points.GreaterThan(decimal.NewFromInt(MaxPointsPerCalculation)) {
		return MaxPointsPerCalculation
	}
	return int(points.IntPart())
}
