package ledger

import (
	"fmt"
	"strings"

	"github.com/jackyeh168/bar_loyalty/src/internal/application/events"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/customer"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/ledger"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
)

// AdjustPointsCommand 管理員調整命令
type AdjustPointsCommand struct {
	CustomerID  string
	Points      int // 正數增加，負數扣減，不可為 0
	Description string
	ActorID     string // 必填
}

// AdjustPointsUseCase 管理員手動調整積分
//
// 與賺取的差異：
// - 流水類型為 adjust
// - 不觸發自動發放獎勵（調整是更正，不是賺取事件）
// - 負數超過餘額 → ErrWouldUnderflow
type AdjustPointsUseCase struct {
	balanceRepo ledger.BalanceRepository
	entryRepo   ledger.LedgerEntryRepository
	txManager   shared.TransactionManager
	publisher   shared.EventPublisher
}

// NewAdjustPointsUseCase 創建 Use Case 實例
func NewAdjustPointsUseCase(
	balanceRepo ledger.BalanceRepository,
	entryRepo ledger.LedgerEntryRepository,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
) *AdjustPointsUseCase {
	return &AdjustPointsUseCase{
		balanceRepo: balanceRepo,
		entryRepo:   entryRepo,
		txManager:   txManager,
		publisher:   publisher,
	}
}

// Execute 執行調整
func (uc *AdjustPointsUseCase) Execute(cmd AdjustPointsCommand) (*EntryDTO, error) {
	customerID, err := customer.CustomerIDFromString(cmd.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse customer ID: %w", err)
	}
	actor, err := customer.StaffIDFromString(cmd.ActorID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse actor ID: %w", err)
	}
	description := strings.TrimSpace(cmd.Description)
	if description == "" {
		return nil, ledger.ErrDescriptionRequired
	}
	if cmd.Points == 0 {
		return nil, ledger.ErrInvalidPointsAmount.WithContext("operation", "adjust")
	}

	var (
		result  EntryDTO
		balance *ledger.Balance
	)
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		b, err := uc.balanceRepo.FindOrCreateForUpdate(ctx, customerID)
		if err != nil {
			return fmt.Errorf("failed to lock balance: %w", err)
		}
		balance = b

		entry, err := balance.Adjust(cmd.Points, description, actor)
		if err != nil {
			return err
		}
		if err := uc.balanceRepo.Update(ctx, balance); err != nil {
			return fmt.Errorf("failed to update balance: %w", err)
		}
		if err := uc.entryRepo.Append(ctx, entry); err != nil {
			return fmt.Errorf("failed to append ledger entry: %w", err)
		}

		result = toEntryDTO(entry)
		return nil
	})
	if err != nil {
		return nil, err
	}

	events.PublishAfterCommit(uc.publisher, events.Collect(balance))
	return &result, nil
}
