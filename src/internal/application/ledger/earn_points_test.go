package ledger

import (
	"errors"
	"testing"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/customer"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/ledger"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type earnFixture struct {
	balances  *MockBalanceRepository
	entries   *MockLedgerEntryRepository
	checker   *MockRewardChecker
	tx        *MockTransactionManager
	publisher *MockEventPublisher
	useCase   *EarnPointsUseCase
}

func newEarnFixture() *earnFixture {
	f := &earnFixture{
		balances:  NewMockBalanceRepository(),
		entries:   NewMockLedgerEntryRepository(),
		tx:        NewMockTransactionManager(),
		publisher: &MockEventPublisher{},
	}
	f.checker = &MockRewardChecker{entryRepo: f.entries}
	f.useCase = NewEarnPointsUseCase(f.balances, f.entries, f.checker, f.tx, f.publisher)
	return f
}

// Test 1: 首次入帳建立餘額並寫 earn 流水
func TestEarnPointsUseCase_FirstEarn_CreatesBalance(t *testing.T) {
	// Arrange
	f := newEarnFixture()
	customerID := customer.NewCustomerID()

	// Act
	result, err := f.useCase.Execute(EarnPointsCommand{
		CustomerID:  customerID.String(),
		Points:      10,
		Description: "Earned 10 points",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 10, result.CurrentPoints)
	assert.Equal(t, 10, result.LifetimePoints)
	assert.Equal(t, "earn", result.Entry.Kind)
	assert.Equal(t, 10, result.Entry.Delta)
	assert.Equal(t, 10, result.Entry.BalanceAfter)
	assert.Empty(t, result.Entry.ActorID)
	assert.Empty(t, result.IssuedRewards)
	assert.Nil(t, result.Events)

	assert.Equal(t, 1, f.tx.InTransactionCallCount)
	assert.Equal(t, 1, f.balances.FindOrCreateCount)
	assert.False(t, f.balances.LastLockedWithNilCtx)
	assert.Equal(t, 1, f.checker.CallCount)
	assert.Equal(t, []string{"ledger.points_earned"}, f.publisher.types())
}

// Test 2: 門檻剛好達到 → 自動發放，餘額回到 0，兩筆流水總和為 0
func TestEarnPointsUseCase_CrossesThreshold_IssuesReward(t *testing.T) {
	// Arrange
	f := newEarnFixture()
	rule, _ := rules.NewRewardRule("Tier 1", "Free Beer", "", 10, 30)
	f.checker.rule = rule
	customerID := customer.NewCustomerID()

	// Act
	result, err := f.useCase.Execute(EarnPointsCommand{CustomerID: customerID.String(), Points: 10})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 0, result.CurrentPoints)
	assert.Equal(t, 10, result.LifetimePoints)
	assert.Equal(t, 10, result.Entry.BalanceAfter, "earn 流水快照為發放前")
	require.Len(t, result.IssuedRewards, 1)
	assert.Equal(t, 10, result.IssuedRewards[0].PointsDeducted)

	sum := 0
	for _, e := range f.entries.entries {
		sum += e.Delta()
	}
	assert.Equal(t, 0, sum)
	assert.Len(t, f.entries.entries, 2)

	assert.Equal(t, []string{"ledger.points_earned", "ledger.points_deducted", "reward.issued"}, f.publisher.types())
}

// Test 3: 獎勵發放失敗 → 整個操作失敗，不發布事件
func TestEarnPointsUseCase_RewardCheckerFails_PropagatesError(t *testing.T) {
	// Arrange
	f := newEarnFixture()
	f.checker.err = ledger.ErrInternalConsistency.WithContext("reason", "test")

	// Act
	result, err := f.useCase.Execute(EarnPointsCommand{CustomerID: customer.NewCustomerID().String(), Points: 5})

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ledger.ErrInternalConsistency)
	assert.Empty(t, f.publisher.Published)
}

// Test 4: 輸入驗證失敗不開啟任何讀寫
func TestEarnPointsUseCase_InvalidInput(t *testing.T) {
	valid := customer.NewCustomerID().String()

	tests := []struct {
		name    string
		cmd     EarnPointsCommand
		wantErr error
	}{
		{"無效顧客 ID", EarnPointsCommand{CustomerID: "x", Points: 1}, customer.ErrInvalidCustomerID},
		{"0 點", EarnPointsCommand{CustomerID: valid, Points: 0}, ledger.ErrInvalidPointsAmount},
		{"負數點數", EarnPointsCommand{CustomerID: valid, Points: -5}, ledger.ErrInvalidPointsAmount},
		{"無效操作者", EarnPointsCommand{CustomerID: valid, Points: 1, ActorID: "bob"}, customer.ErrInvalidStaffID},
		{"參照缺 ID", EarnPointsCommand{CustomerID: valid, Points: 1, ReferenceKind: "purchase"}, ledger.ErrInvalidReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEarnFixture()

			_, err := f.useCase.Execute(tt.cmd)

			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Equal(t, 0, f.balances.UpdateCallCount)
			assert.Equal(t, 0, f.entries.AppendCallCount)
		})
	}
}

// Test 5: ExecuteWithContext 不自行發布事件，交給呼叫端
func TestEarnPointsUseCase_ExecuteWithContext_ReturnsEvents(t *testing.T) {
	// Arrange
	f := newEarnFixture()

	// Act
	result, err := f.useCase.ExecuteWithContext(&mockTxContext{}, EarnPointsCommand{
		CustomerID:    customer.NewCustomerID().String(),
		Points:        3,
		ActorID:       testStaffID,
		ReferenceKind: "purchase",
		ReferenceID:   "purchase-1",
	})

	// Assert
	require.NoError(t, err)
	assert.Len(t, result.Events, 1)
	assert.Empty(t, f.publisher.Published)
	assert.Equal(t, 0, f.tx.InTransactionCallCount)
	assert.Equal(t, testStaffID, result.Entry.ActorID)
	assert.Equal(t, "purchase", result.Entry.ReferenceKind)
}

// Test 6: 既有餘額累加
func TestEarnPointsUseCase_ExistingBalance_Accumulates(t *testing.T) {
	f := newEarnFixture()
	customerID := customer.NewCustomerID()
	f.balances.seed(customerID, 7, 40)

	result, err := f.useCase.Execute(EarnPointsCommand{CustomerID: customerID.String(), Points: 3})

	require.NoError(t, err)
	assert.Equal(t, 10, result.CurrentPoints)
	assert.Equal(t, 43, result.LifetimePoints)
}
