package rules

import (
	"sort"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/rules"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
)

type MockEarningRuleRepository struct {
	rules           []*rules.EarningRule
	findErr         error
	SaveCallCount   int
	UpdateCallCount int
}

func (m *MockEarningRuleRepository) Save(ctx shared.TransactionContext, r *rules.EarningRule) error {
	m.SaveCallCount++
	m.rules = append(m.rules, r)
	return nil
}

func (m *MockEarningRuleRepository) Update(ctx shared.TransactionContext, r *rules.EarningRule) error {
	m.UpdateCallCount++
	return nil
}

func (m *MockEarningRuleRepository) FindByID(ctx shared.TransactionContext, id rules.EarningRuleID) (*rules.EarningRule, error) {
	for _, r := range m.rules {
		if r.ID().Equals(id) {
			return r, nil
		}
	}
	return nil, rules.ErrRuleNotFound
}

func (m *MockEarningRuleRepository) FindLatestActive(ctx shared.TransactionContext) (*rules.EarningRule, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	var latest *rules.EarningRule
	for _, r := range m.rules {
		if r.IsActive() && (latest == nil || latest.ID().Less(r.ID())) {
			latest = r
		}
	}
	if latest == nil {
		return nil, rules.ErrNoActiveRule
	}
	return latest, nil
}

func (m *MockEarningRuleRepository) ListAll(ctx shared.TransactionContext) ([]*rules.EarningRule, error) {
	out := append([]*rules.EarningRule(nil), m.rules...)
	sort.Slice(out, func(i, j int) bool { return out[j].ID().Less(out[i].ID()) })
	return out, nil
}

type MockRewardRuleRepository struct {
	rules           []*rules.RewardRule
	UpdateCallCount int
}

func (m *MockRewardRuleRepository) Save(ctx shared.TransactionContext, r *rules.RewardRule) error {
	m.rules = append(m.rules, r)
	return nil
}

func (m *MockRewardRuleRepository) Update(ctx shared.TransactionContext, r *rules.RewardRule) error {
	m.UpdateCallCount++
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
	return nil, nil
}

func (m *MockRewardRuleRepository) ListAll(ctx shared.TransactionContext) ([]*rules.RewardRule, error) {
	return m.rules, nil
}

type mockTxContext struct{}

type MockTransactionManager struct {
	InTransactionCallCount int
}

func (m *MockTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	m.InTransactionCallCount++
	return fn(&mockTxContext{})
}
