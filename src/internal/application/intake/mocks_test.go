package intake

import (
	"time"

	appledger "github.com/jackyeh168/bar_loyalty/src/internal/application/ledger"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/customer"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/ledger"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/purchase"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/reward"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ===========================
// Mock Repositories
// ===========================

type MockPurchaseRepository struct {
	purchases map[string]*purchase.Purchase
	// saveDuplicate 模擬「檢查後、寫入前」被並行請求搶先寫入
	saveDuplicate bool
}

func NewMockPurchaseRepository() *MockPurchaseRepository {
	return &MockPurchaseRepository{purchases: make(map[string]*purchase.Purchase)}
}

func (m *MockPurchaseRepository) Save(ctx shared.TransactionContext, p *purchase.Purchase) error {
	if m.saveDuplicate {
		return purchase.ErrDuplicateReceipt.WithContext("receipt_id", p.ReceiptID())
	}
	if _, ok := m.purchases[p.ReceiptID()]; ok {
		return purchase.ErrDuplicateReceipt
	}
	m.purchases[p.ReceiptID()] = p
	return nil
}

func (m *MockPurchaseRepository) ExistsByReceiptID(ctx shared.TransactionContext, receiptID string) (bool, error) {
	_, ok := m.purchases[receiptID]
	return ok, nil
}

func (m *MockPurchaseRepository) FindByReceiptID(ctx shared.TransactionContext, receiptID string) (*purchase.Purchase, error) {
	p, ok := m.purchases[receiptID]
	if !ok {
		return nil, purchase.ErrPurchaseNotFound
	}
	return p, nil
}

type MockCustomerRepository struct {
	byPOS map[string]*customer.Customer
}

func (m *MockCustomerRepository) Save(ctx shared.TransactionContext, c *customer.Customer) error {
	return nil
}

func (m *MockCustomerRepository) Update(ctx shared.TransactionContext, c *customer.Customer) error {
	return nil
}

func (m *MockCustomerRepository) FindByID(ctx shared.TransactionContext, id customer.CustomerID) (*customer.Customer, error) {
	for _, c := range m.byPOS {
		if c.ID().Equals(id) {
			return c, nil
		}
	}
	return nil, customer.ErrCustomerNotFound
}

func (m *MockCustomerRepository) FindByPOSCustomerID(ctx shared.TransactionContext, posCustomerID string) (*customer.Customer, error) {
	c, ok := m.byPOS[posCustomerID]
	if !ok {
		return nil, customer.ErrCustomerNotFound
	}
	return c, nil
}

// 帳本只記錄到記憶體，驗證入點結果用
type memoryBalances struct {
	balances map[string]*ledger.Balance
}

func (m *memoryBalances) FindByCustomerID(ctx shared.TransactionContext, id customer.CustomerID) (*ledger.Balance, error) {
	b, ok := m.balances[id.String()]
	if !ok {
		return nil, ledger.ErrBalanceNotFound
	}
	return b, nil
}

func (m *memoryBalances) FindForUpdate(ctx shared.TransactionContext, id customer.CustomerID) (*ledger.Balance, error) {
	return m.FindByCustomerID(ctx, id)
}

func (m *memoryBalances) FindOrCreateForUpdate(ctx shared.TransactionContext, id customer.CustomerID) (*ledger.Balance, error) {
	if b, ok := m.balances[id.String()]; ok {
		return b, nil
	}
	b, err := ledger.NewBalance(id)
	if err != nil {
		return nil, err
	}
	m.balances[id.String()] = b
	return b, nil
}

func (m *memoryBalances) Update(ctx shared.TransactionContext, b *ledger.Balance) error {
	return nil
}

type memoryEntries struct {
	entries []*ledger.LedgerEntry
}

func (m *memoryEntries) Append(ctx shared.TransactionContext, entries ...*ledger.LedgerEntry) error {
	m.entries = append(m.entries, entries...)
	return nil
}

func (m *memoryEntries) ListByCustomer(ctx shared.TransactionContext, id customer.CustomerID, limit, offset int) ([]*ledger.LedgerEntry, error) {
	return m.entries, nil
}

func (m *memoryEntries) ListAllByCustomerAsc(ctx shared.TransactionContext, id customer.CustomerID) ([]*ledger.LedgerEntry, error) {
	return m.entries, nil
}

func (m *memoryEntries) CountByCustomer(ctx shared.TransactionContext, id customer.CustomerID) (int64, error) {
	return int64(len(m.entries)), nil
}

// ===========================
// Mock Collaborators
// ===========================

type noRewards struct{}

func (noRewards) CheckAndIssue(ctx shared.TransactionContext, b *ledger.Balance) ([]*reward.Reward, error) {
	return nil, nil
}

type MockPointsCalculator struct {
	points     int
	LastAmount decimal.Decimal
	LastItems  int
	Calls      int
}

func (m *MockPointsCalculator) Calculate(ctx shared.TransactionContext, amount decimal.Decimal, items int) (int, error) {
	m.Calls++
	m.LastAmount = amount
	m.LastItems = items
	return m.points, nil
}

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

// ===========================
// Fixture
// ===========================

type intakeFixture struct {
	purchases  *MockPurchaseRepository
	customers  *MockCustomerRepository
	calculator *MockPointsCalculator
	balances   *memoryBalances
	entries    *memoryEntries
	publisher  *MockEventPublisher
	alice      *customer.Customer
	useCase    *ProcessReceiptUseCase
}

func newIntakeFixture(points int) *intakeFixture {
	alice, err := customer.ReconstructCustomer(customer.NewCustomerID(), "Alice", "pos-alice", time.Now(), time.Now())
	if err != nil {
		panic(err)
	}

	f := &intakeFixture{
		purchases:  NewMockPurchaseRepository(),
		customers:  &MockCustomerRepository{byPOS: map[string]*customer.Customer{"pos-alice": alice}},
		calculator: &MockPointsCalculator{points: points},
		balances:   &memoryBalances{balances: make(map[string]*ledger.Balance)},
		entries:    &memoryEntries{},
		publisher:  &MockEventPublisher{},
		alice:      alice,
	}
	tx := &MockTransactionManager{}
	earn := appledger.NewEarnPointsUseCase(f.balances, f.entries, noRewards{}, tx, f.publisher)
	f.useCase = NewProcessReceiptUseCase(f.purchases, f.customers, f.calculator, earn, tx, f.publisher)
	return f
}
