package reward

import (
	"context"
	"sort"
	"time"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/customer"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/ledger"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/reward"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/rules"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
)

// ===========================
// Mock Repositories
// ===========================

type MockRewardRepository struct {
	rewards         map[string]*reward.Reward
	order           []string
	UpdateCallCount int
	saveErr         error
}

func NewMockRewardRepository() *MockRewardRepository {
	return &MockRewardRepository{rewards: make(map[string]*reward.Reward)}
}

func (m *MockRewardRepository) Save(ctx shared.TransactionContext, r *reward.Reward) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	for _, existing := range m.rewards {
		if existing.Status() == reward.StatusPending &&
			existing.CustomerID().Equals(r.CustomerID()) &&
			existing.RuleID().Equals(r.RuleID()) {
			return reward.ErrPendingRewardExists
		}
	}
	m.rewards[r.ID().String()] = r
	m.order = append(m.order, r.ID().String())
	return nil
}

func (m *MockRewardRepository) Update(ctx shared.TransactionContext, r *reward.Reward) error {
	m.UpdateCallCount++
	m.rewards[r.ID().String()] = r
	return nil
}

func (m *MockRewardRepository) FindByID(ctx shared.TransactionContext, id reward.RewardID) (*reward.Reward, error) {
	r, ok := m.rewards[id.String()]
	if !ok {
		return nil, reward.ErrRewardNotFound.WithContext("reward_id", id.String())
	}
	return r, nil
}

func (m *MockRewardRepository) FindForUpdate(ctx shared.TransactionContext, id reward.RewardID) (*reward.Reward, error) {
	return m.FindByID(ctx, id)
}

func (m *MockRewardRepository) PendingRuleIDs(ctx shared.TransactionContext, customerID reward.CustomerID) ([]reward.RewardRuleID, error) {
	var ids []reward.RewardRuleID
	for _, r := range m.rewards {
		if r.Status() == reward.StatusPending && r.CustomerID().Equals(customerID) {
			ids = append(ids, r.RuleID())
		}
	}
	return ids, nil
}

func (m *MockRewardRepository) ListByCustomer(ctx shared.TransactionContext, customerID reward.CustomerID, status reward.Status) ([]*reward.Reward, error) {
	var out []*reward.Reward
	for i := len(m.order) - 1; i >= 0; i-- {
		r := m.rewards[m.order[i]]
		if !r.CustomerID().Equals(customerID) {
			continue
		}
		if status != "" && r.Status() != status {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *MockRewardRepository) ExpireOverdue(ctx shared.TransactionContext, now time.Time) (int64, error) {
	var n int64
	for _, r := range m.rewards {
		if r.IsOverdue(now) && r.Expire(now) {
			n++
		}
	}
	return n, nil
}

func (m *MockRewardRepository) put(r *reward.Reward) {
	m.rewards[r.ID().String()] = r
	m.order = append(m.order, r.ID().String())
}

type MockRewardRuleRepository struct {
	rules []*rules.RewardRule
}

func (m *MockRewardRuleRepository) Save(ctx shared.TransactionContext, r *rules.RewardRule) error {
	m.rules = append(m.rules, r)
	return nil
}

func (m *MockRewardRuleRepository) Update(ctx shared.TransactionContext, r *rules.RewardRule) error {
	return nil
}

func (m *MockRewardRuleRepository) FindByID(ctx shared.TransactionContext, id rules.RewardRuleID) (*rules.RewardRule, error) {
	for _, r := range m.rules {
		if r.ID().Equals(id) {
			return r, nil
		}
	}
	return nil, rules.ErrRuleNotFound
}

func (m *MockRewardRuleRepository) FindQualifying(ctx shared.TransactionContext, current int, excluded []rules.RewardRuleID) ([]*rules.RewardRule, error) {
	var out []*rules.RewardRule
	for _, r := range m.rules {
		if !r.IsActive() || r.PointsRequired() > current {
			continue
		}
		skip := false
		for _, ex := range excluded {
			if ex.Equals(r.ID()) {
				skip = true
			}
		}
		if !skip {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID().Less(out[j].ID()) })
	return out, nil
}

func (m *MockRewardRuleRepository) ListAll(ctx shared.TransactionContext) ([]*rules.RewardRule, error) {
	return m.rules, nil
}

type MockLedgerEntryRepository struct {
	entries []*ledger.LedgerEntry
}

func (m *MockLedgerEntryRepository) Append(ctx shared.TransactionContext, entries ...*ledger.LedgerEntry) error {
	m.entries = append(m.entries, entries...)
	return nil
}

func (m *MockLedgerEntryRepository) ListByCustomer(ctx shared.TransactionContext, id customer.CustomerID, limit, offset int) ([]*ledger.LedgerEntry, error) {
	return nil, nil
}

func (m *MockLedgerEntryRepository) ListAllByCustomerAsc(ctx shared.TransactionContext, id customer.CustomerID) ([]*ledger.LedgerEntry, error) {
	return m.entries, nil
}

func (m *MockLedgerEntryRepository) CountByCustomer(ctx shared.TransactionContext, id customer.CustomerID) (int64, error) {
	return int64(len(m.entries)), nil
}

type MockBalanceRepository struct {
	UpdateCallCount int
}

func (m *MockBalanceRepository) FindByCustomerID(ctx shared.TransactionContext, id customer.CustomerID) (*ledger.Balance, error) {
	return nil, ledger.ErrBalanceNotFound
}

func (m *MockBalanceRepository) FindForUpdate(ctx shared.TransactionContext, id customer.CustomerID) (*ledger.Balance, error) {
	return nil, ledger.ErrBalanceNotFound
}

func (m *MockBalanceRepository) FindOrCreateForUpdate(ctx shared.TransactionContext, id customer.CustomerID) (*ledger.Balance, error) {
	return ledger.NewBalance(id)
}

func (m *MockBalanceRepository) Update(ctx shared.TransactionContext, b *ledger.Balance) error {
	m.UpdateCallCount++
	return nil
}

// ===========================
// Mock Collaborators
// ===========================

type mockTxContext struct{}

type MockTransactionManager struct {
	InTransactionCallCount int
}

func (m *MockTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	m.InTransactionCallCount++
	return fn(&mockTxContext{})
}

type MockEventPublisher struct {
	Published []shared.DomainEvent
}

func (m *MockEventPublisher) Publish(e shared.DomainEvent) error {
	m.Published = append(m.Published, e)
	return nil
}

func (m *MockEventPublisher) PublishBatch(events []shared.DomainEvent) error {
	m.Published = append(m.Published, events...)
	return nil
}

type MockLocker struct {
	acquire bool
	err     error
	Keys    []string
}

func (m *MockLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	m.Keys = append(m.Keys, key)
	return m.acquire, m.err
}

type MockSweeper struct {
	count int64
	err   error
	Calls int
}

func (m *MockSweeper) Sweep(now time.Time) (int64, error) {
	m.Calls++
	return m.count, m.err
}

// ===========================
// Helpers
// ===========================

const testStaffID = "0190a0c4-6f5e-7a00-8000-00000000beef"

func fixedNow() time.Time {
	return time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
}

// balanceWith 建立已有 current 點數的餘額（lifetime 與 current 相同）
func balanceWith(current int) *ledger.Balance {
	b, err := ledger.ReconstructBalance(customer.NewCustomerID(), current, current, fixedNow(), fixedNow())
	if err != nil {
		panic(err)
	}
	return b
}

func mustRewardRule(title string, required, days int) *rules.RewardRule {
	r, err := rules.NewRewardRule(title+" rule", title, "", required, days)
	if err != nil {
		panic(err)
	}
	return r
}

func pendingReward(expiresAt time.Time) *reward.Reward {
	r, err := reward.ReconstructReward(
		reward.NewRewardID(), customer.NewCustomerID(), rules.NewRewardRuleID(),
		"Free Beer", 10, reward.StatusPending, expiresAt, nil, customer.StaffID{},
		fixedNow().Add(-time.Hour), fixedNow().Add(-time.Hour),
	)
	if err != nil {
		panic(err)
	}
	return r
}
