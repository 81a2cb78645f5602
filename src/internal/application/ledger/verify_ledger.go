package ledger

import (
	"errors"
	"fmt"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/customer"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/ledger"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
	log "github.com/sirupsen/logrus"
)

// VerifyLedgerResult 稽核結果
type VerifyLedgerResult struct {
	CustomerID    string
	CurrentPoints int
	EntryCount    int
	Consistent    bool
	Problem       string // 不一致時的錯誤說明
}

// VerifyLedgerUseCase 稽核：重播流水並與餘額比對
//
// 在事務中加鎖讀取，避免比對途中有新的變更寫入。
type VerifyLedgerUseCase struct {
	balanceRepo ledger.BalanceRepository
	entryRepo   ledger.LedgerEntryRepository
	txManager   shared.TransactionManager
}

// NewVerifyLedgerUseCase 創建 Use Case 實例
func NewVerifyLedgerUseCase(
	balanceRepo ledger.BalanceRepository,
	entryRepo ledger.LedgerEntryRepository,
	txManager shared.TransactionManager,
) *VerifyLedgerUseCase {
	return &VerifyLedgerUseCase{
		balanceRepo: balanceRepo,
		entryRepo:   entryRepo,
		txManager:   txManager,
	}
}

// Execute 執行稽核
func (uc *VerifyLedgerUseCase) Execute(customerIDStr string) (*VerifyLedgerResult, error) {
	customerID, err := customer.CustomerIDFromString(customerIDStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse customer ID: %w", err)
	}

	var result *VerifyLedgerResult
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		balance, err := uc.balanceRepo.FindForUpdate(ctx, customerID)
		if errors.Is(err, ledger.ErrBalanceNotFound) {
			balance, err = ledger.NewBalance(customerID)
		}
		if err != nil {
			return fmt.Errorf("failed to load balance: %w", err)
		}

		entries, err := uc.entryRepo.ListAllByCustomerAsc(ctx, customerID)
		if err != nil {
			return fmt.Errorf("failed to list ledger entries: %w", err)
		}

		result = &VerifyLedgerResult{
			CustomerID:    customerID.String(),
			CurrentPoints: balance.Current().Value(),
			EntryCount:    len(entries),
			Consistent:    true,
		}
		if verr := ledger.VerifyBalance(balance, entries); verr != nil {
			result.Consistent = false
			result.Problem = verr.Error()
			log.WithError(verr).WithField("customer_id", customerID.String()).Error("ledger verification failed")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
