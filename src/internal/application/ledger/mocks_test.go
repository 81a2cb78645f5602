package ledger

import (
	"sort"
	"time"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/customer"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/ledger"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/reward"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/rules"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ===========================
// Mock Repositories
// ===========================

type balanceRow struct {
	current, lifetime int
}

type MockBalanceRepository struct {
	rows                 map[string]balanceRow
	UpdateCallCount      int
	ForUpdateCallCount   int
	FindOrCreateCount    int
	LastLockedWithNilCtx bool
}

func NewMockBalanceRepository() *MockBalanceRepository {
	return &MockBalanceRepository{rows: make(map[string]balanceRow)}
}

func (m *MockBalanceRepository) seed(id customer.CustomerID, current, lifetime int) {
	m.rows[id.String()] = balanceRow{current: current, lifetime: lifetime}
}

func (m *MockBalanceRepository) load(id customer.CustomerID) (*ledger.Balance, error) {
	row, ok := m.rows[id.String()]
	if !ok {
		return nil, ledger.ErrBalanceNotFound.WithContext("customer_id", id.String())
	}
	return ledger.ReconstructBalance(id, row.current, row.lifetime, time.Now(), time.Now())
}

func (m *MockBalanceRepository) FindByCustomerID(ctx shared.TransactionContext, id customer.CustomerID) (*ledger.Balance, error) {
	return m.load(id)
}

func (m *MockBalanceRepository) FindForUpdate(ctx shared.TransactionContext, id customer.CustomerID) (*ledger.Balance, error) {
	m.ForUpdateCallCount++
	m.LastLockedWithNilCtx = ctx == nil
	return m.load(id)
}

func (m *MockBalanceRepository) FindOrCreateForUpdate(ctx shared.TransactionContext, id customer.CustomerID) (*ledger.Balance, error) {
	m.FindOrCreateCount++
	m.LastLockedWithNilCtx = ctx == nil
	if _, ok := m.rows[id.String()]; !ok {
		m.rows[id.String()] = balanceRow{}
	}
	return m.load(id)
}

func (m *MockBalanceRepository) Update(ctx shared.TransactionContext, b *ledger.Balance) error {
	m.UpdateCallCount++
	m.rows[b.CustomerID().String()] = balanceRow{current: b.Current().Value(), lifetime: b.Lifetime().Value()}
	return nil
}

type MockLedgerEntryRepository struct {
	entries         []*ledger.LedgerEntry
	AppendCallCount int
}

func NewMockLedgerEntryRepository() *MockLedgerEntryRepository {
	return &MockLedgerEntryRepository{}
}

func (m *MockLedgerEntryRepository) Append(ctx shared.TransactionContext, entries ...*ledger.LedgerEntry) error {
	m.AppendCallCount++
	m.entries = append(m.entries, entries...)
	return nil
}

func (m *MockLedgerEntryRepository) forCustomer(id customer.CustomerID) []*ledger.LedgerEntry {
	var out []*ledger.LedgerEntry
	for _, e := range m.entries {
		if e.CustomerID().Equals(id) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID().Less(out[j].ID()) })
	return out
}

func (m *MockLedgerEntryRepository) ListByCustomer(ctx shared.TransactionContext, id customer.CustomerID, limit, offset int) ([]*ledger.LedgerEntry, error) {
	asc := m.forCustomer(id)
	var desc []*ledger.LedgerEntry
	for i := len(asc) - 1; i >= 0; i-- {
		desc = append(desc, asc[i])
	}
	if offset >= len(desc) {
		return nil, nil
	}
	desc = desc[offset:]
	if len(desc) > limit {
		desc = desc[:limit]
	}
	return desc, nil
}

func (m *MockLedgerEntryRepository) ListAllByCustomerAsc(ctx shared.TransactionContext, id customer.CustomerID) ([]*ledger.LedgerEntry, error) {
	return m.forCustomer(id), nil
}

func (m *MockLedgerEntryRepository) CountByCustomer(ctx shared.TransactionContext, id customer.CustomerID) (int64, error) {
	return int64(len(m.forCustomer(id))), nil
}

type MockRedemptionRepository struct {
	saved []*ledger.Redemption
}

func (m *MockRedemptionRepository) Save(ctx shared.TransactionContext, r *ledger.Redemption) error {
	m.saved = append(m.saved, r)
	return nil
}

// ===========================
// Mock Collaborators
// ===========================

type mockTxContext struct{}

type MockTransactionManager struct {
	InTransactionCallCount int
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	m.InTransactionCallCount++
	return fn(&mockTxContext{})
}

// MockRewardChecker 可設定為「門檻達到就發放」或直接返回錯誤
type MockRewardChecker struct {
	rule      *rules.RewardRule // nil = 不發放
	err       error
	CallCount int
	Balances  []*ledger.Balance
	entryRepo *MockLedgerEntryRepository
}

func (m *MockRewardChecker) CheckAndIssue(ctx shared.TransactionContext, b *ledger.Balance) ([]*reward.Reward, error) {
	m.CallCount++
	m.Balances = append(m.Balances, b)
	if m.err != nil {
		return nil, m.err
	}
	if m.rule == nil || !m.rule.Qualifies(b.Current().Value()) {
		return nil, nil
	}

	r := reward.Issue(b.CustomerID(), m.rule, time.Now())
	points, _ := ledger.NewPositivePointsAmount(r.PointsDeducted())
	entry, err := b.DebitForReward(points, "Reward issued: "+r.Title(), ledger.RewardReference(r.ID().String()))
	if err != nil {
		return nil, err
	}
	if m.entryRepo != nil {
		_ = m.entryRepo.Append(ctx, entry)
	}
	return []*reward.Reward{r}, nil
}

type MockPointsCalculator struct {
	points int
	err    error
	Calls  int
}

func (m *MockPointsCalculator) Calculate(ctx shared.TransactionContext, amount decimal.Decimal, items int) (int, error) {
	m.Calls++
	return m.points, m.err
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

func (m *MockEventPublisher) types() []string {
	out := make([]string, 0, len(m.Published))
	for _, e := range m.Published {
		out = append(out, e.EventType())
	}
	return out
}

const testStaffID = "0190a0c4-6f5e-7a00-8000-00000000beef"
