package ledger

import (
	"testing"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/customer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test 1: 尚無餘額 → 0，不建立資料
func TestGetBalanceUseCase_NoBalance_ReturnsZeros(t *testing.T) {
	repo := NewMockBalanceRepository()
	id := customer.NewCustomerID()

	result, err := NewGetBalanceUseCase(repo).Execute(GetBalanceQuery{CustomerID: id.String()})

	require.NoError(t, err)
	assert.Equal(t, 0, result.CurrentPoints)
	assert.Equal(t, 0, result.LifetimePoints)
	assert.Empty(t, repo.rows)
}

// Test 2: 既有餘額
func TestGetBalanceUseCase_Existing(t *testing.T) {
	repo := NewMockBalanceRepository()
	id := customer.NewCustomerID()
	repo.seed(id, 12, 80)

	result, err := NewGetBalanceUseCase(repo).Execute(GetBalanceQuery{CustomerID: id.String()})

	require.NoError(t, err)
	assert.Equal(t, 12, result.CurrentPoints)
	assert.Equal(t, 80, result.LifetimePoints)
}

// Test 3: 流水新到舊、分頁參數收斂
func TestListHistoryUseCase_NewestFirstAndClamp(t *testing.T) {
	// Arrange
	f := newEarnFixture()
	id := customer.NewCustomerID()
	for i := 1; i <= 3; i++ {
		_, err := f.useCase.Execute(EarnPointsCommand{CustomerID: id.String(), Points: i})
		require.NoError(t, err)
	}
	uc := NewListHistoryUseCase(f.entries)

	// Act
	result, err := uc.Execute(ListHistoryQuery{CustomerID: id.String(), Limit: 1000, Offset: -1})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 100, result.Limit)
	assert.Equal(t, 0, result.Offset)
	assert.Equal(t, int64(3), result.Total)
	require.Len(t, result.Entries, 3)
	assert.Equal(t, 3, result.Entries[0].Delta)
	assert.Equal(t, 1, result.Entries[2].Delta)

	paged, err := uc.Execute(ListHistoryQuery{CustomerID: id.String(), Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, paged.Entries, 1)
	assert.Equal(t, 2, paged.Entries[0].Delta)
}

// Test 4: 稽核一致
func TestVerifyLedgerUseCase_Consistent(t *testing.T) {
	f := newEarnFixture()
	id := customer.NewCustomerID()
	_, err := f.useCase.Execute(EarnPointsCommand{CustomerID: id.String(), Points: 5})
	require.NoError(t, err)

	adjust := NewAdjustPointsUseCase(f.balances, f.entries, f.tx, nil)
	_, err = adjust.Execute(AdjustPointsCommand{CustomerID: id.String(), Points: -2, Description: "fix", ActorID: testStaffID})
	require.NoError(t, err)

	result, err := NewVerifyLedgerUseCase(f.balances, f.entries, f.tx).Execute(id.String())

	require.NoError(t, err)
	assert.True(t, result.Consistent)
	assert.Equal(t, 3, result.CurrentPoints)
	assert.Equal(t, 2, result.EntryCount)
}

// Test 5: 稽核不一致（餘額被直接改動）
func TestVerifyLedgerUseCase_Inconsistent(t *testing.T) {
	f := newEarnFixture()
	id := customer.NewCustomerID()
	_, err := f.useCase.Execute(EarnPointsCommand{CustomerID: id.String(), Points: 5})
	require.NoError(t, err)
	f.balances.seed(id, 6, 6)

	result, err := NewVerifyLedgerUseCase(f.balances, f.entries, f.tx).Execute(id.String())

	require.NoError(t, err)
	assert.False(t, result.Consistent)
	assert.NotEmpty(t, result.Problem)
}

// Test 6: 從未入帳的顧客視為一致
func TestVerifyLedgerUseCase_NoBalance(t *testing.T) {
	f := newEarnFixture()

	result, err := NewVerifyLedgerUseCase(f.balances, f.entries, f.tx).Execute(customer.NewCustomerID().String())

	require.NoError(t, err)
	assert.True(t, result.Consistent)
	assert.Equal(t, 0, result.EntryCount)
}
