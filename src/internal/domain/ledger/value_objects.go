package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ===========================
// PointsAmount 值對象
// ===========================

// PointsAmount 積分數量值對象
// 設計原則：值對象不可變、自我驗證（>= 0）
type PointsAmount struct {
	value int
}

// NewPointsAmount 建構函數（checked 版本）
func NewPointsAmount(value int) (PointsAmount, error) {
	if value < 0 {
		return PointsAmount{}, fmt.Errorf(
			"%w: attempted to create PointsAmount with value %d",
			ErrNegativePointsAmount,
			value,
		)
	}
	return PointsAmount{value: value}, nil
}

// NewPositivePointsAmount 建構必須 > 0 的積分數量（賺取、兌換、獎勵扣點）
func NewPositivePointsAmount(value int) (PointsAmount, error) {
	if value <= 0 {
		return PointsAmount{}, ErrInvalidPointsAmount.WithContext("value", value)
	}
	return PointsAmount{value: value}, nil
}

// newPointsAmountUnchecked 內部建構函數，調用者保證 value >= 0
func newPointsAmountUnchecked(value int) PointsAmount {
	return PointsAmount{value: value}
}

// Value 獲取積分數量
func (p PointsAmount) Value() int {
	return p.value
}

// IsZero 是否為 0
func (p PointsAmount) IsZero() bool {
	return p.value == 0
}

// Add 相加
func (p PointsAmount) Add(other PointsAmount) PointsAmount {
	return newPointsAmountUnchecked(p.value + other.value)
}

// Subtract 相減；結果為負時返回 ErrInsufficientBalance
func (p PointsAmount) Subtract(other PointsAmount) (PointsAmount, error) {
	if p.value < other.value {
		return PointsAmount{}, ErrInsufficientBalance.WithContext(
			"requested", other.value,
			"available", p.value,
		)
	}
	return newPointsAmountUnchecked(p.value - other.value), nil
}

// LessThan 判斷是否小於另一個 PointsAmount
func (p PointsAmount) LessThan(other PointsAmount) bool {
	return p.value < other.value
}

// ===========================
// DiscountRate 值對象
// ===========================

// DefaultDiscountRate 每點折抵 ₱0.50
var DefaultDiscountRate = DiscountRate{value: decimal.RequireFromString("0.5")}

// DiscountRate 兌換率（每點折抵金額）
type DiscountRate struct {
	value decimal.Decimal
}

// NewDiscountRate 建構兌換率，必須 > 0
func NewDiscountRate(value decimal.Decimal) (DiscountRate, error) {
	if !value.IsPositive() {
		return DiscountRate{}, ErrInvalidDiscountRate.WithContext("value", value.String())
	}
	return DiscountRate{value: value}, nil
}

// Value 獲取每點折抵金額
func (r DiscountRate) Value() decimal.Decimal {
	return r.value
}

// DiscountFor 計算折抵金額：points × rate，四捨五入到小數 2 位
func (r DiscountRate) DiscountFor(points PointsAmount) decimal.Decimal {
	return decimal.NewFromInt(int64(points.Value())).Mul(r.value).Round(2)
}
