package ledger_test

import (
	"testing"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPointsAmount(t *testing.T) {
	// Test 1: 0 與正數有效
	p, err := ledger.NewPointsAmount(0)
	require.NoError(t, err)
	assert.True(t, p.IsZero())

	// Test 2: 負數無效
	_, err = ledger.NewPointsAmount(-1)
	assert.ErrorIs(t, err, ledger.ErrNegativePointsAmount)

	// Test 3: 正數版本拒絕 0
	_, err = ledger.NewPositivePointsAmount(0)
	assert.ErrorIs(t, err, ledger.ErrInvalidPointsAmount)
}

func TestPointsAmount_Subtract(t *testing.T) {
	a, _ := ledger.NewPointsAmount(5)
	b, _ := ledger.NewPointsAmount(6)

	_, err := a.Subtract(b)
	assert.ErrorIs(t, err, ledger.ErrInsufficientBalance)

	r, err := b.Subtract(a)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Value())
}

func TestDiscountRate_DiscountFor(t *testing.T) {
	tests := []struct {
		name   string
		rate   string
		points int
		want   string
	}{
		{"預設 0.5", "0.5", 100, "50"},
		{"奇數點數", "0.5", 3, "1.5"},
		{"四捨五入到 2 位", "0.333", 10, "3.33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := ledger.NewDiscountRate(decimal.RequireFromString(tt.rate))
			require.NoError(t, err)
			p, _ := ledger.NewPointsAmount(tt.points)

			assert.Equal(t, tt.want, rate.DiscountFor(p).String())
		})
	}
}

func TestNewDiscountRate_NonPositive_Fails(t *testing.T) {
	_, err := ledger.NewDiscountRate(decimal.Zero)
	assert.ErrorIs(t, err, ledger.ErrInvalidDiscountRate)

	_, err = ledger.NewDiscountRate(decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, ledger.ErrInvalidDiscountRate)
}

func TestNewReference(t *testing.T) {
	// 類型與 ID 需同時存在
	_, err := ledger.NewReference(ledger.ReferencePurchase, "")
	assert.ErrorIs(t, err, ledger.ErrInvalidReference)

	_, err = ledger.NewReference(ledger.ReferenceNone, "x")
	assert.ErrorIs(t, err, ledger.ErrInvalidReference)

	_, err = ledger.NewReference("order", "x")
	assert.ErrorIs(t, err, ledger.ErrInvalidReference)

	ref, err := ledger.NewReference(ledger.ReferenceReward, "r-1")
	require.NoError(t, err)
	assert.Equal(t, "r-1", ref.ID())

	empty, err := ledger.NewReference(ledger.ReferenceNone, "")
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	assert.True(t, ledger.PurchaseReference("").IsEmpty())
}

func TestParseEntryKind(t *testing.T) {
	for _, k := range []string{"earn", "redeem", "reward", "expire", "adjust"} {
		kind, err := ledger.ParseEntryKind(k)
		require.NoError(t, err)
		assert.Equal(t, k, kind.String())
	}

	_, err := ledger.ParseEntryKind("bonus")
	assert.ErrorIs(t, err, ledger.ErrInvalidEntryKind)
}
