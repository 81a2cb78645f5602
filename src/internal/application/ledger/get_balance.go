package ledger

import (
	"errors"
	"fmt"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/customer"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/ledger"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
)

// GetBalanceQuery 查詢積分餘額
type GetBalanceQuery struct {
	CustomerID string
}

// GetBalanceResult 積分餘額
type GetBalanceResult struct {
	CustomerID     string
	CurrentPoints  int
	LifetimePoints int
}

// GetBalanceUseCase 查詢積分餘額 Use Case
//
// 尚無餘額紀錄時回傳 0，不建立資料。
type GetBalanceUseCase struct {
	balanceRepo ledger.BalanceRepository
}

// NewGetBalanceUseCase 創建 Use Case 實例
func NewGetBalanceUseCase(repo ledger.BalanceRepository) *GetBalanceUseCase {
	return &GetBalanceUseCase{balanceRepo: repo}
}

// Execute 獨立查詢（auto-commit）
func (uc *GetBalanceUseCase) Execute(query GetBalanceQuery) (*GetBalanceResult, error) {
	return uc.ExecuteWithContext(nil, query)
}

// ExecuteWithContext 在事務上下文中查詢（ctx 可為 nil）
func (uc *GetBalanceUseCase) ExecuteWithContext(ctx shared.TransactionContext, query GetBalanceQuery) (*GetBalanceResult, error) {
	customerID, err := customer.CustomerIDFromString(query.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse customer ID: %w", err)
	}

	balance, err := uc.balanceRepo.FindByCustomerID(ctx, customerID)
	if errors.Is(err, ledger.ErrBalanceNotFound) {
		return &GetBalanceResult{CustomerID: customerID.String()}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find balance: %w", err)
	}

	return &GetBalanceResult{
		CustomerID:     customerID.String(),
		CurrentPoints:  balance.Current().Value(),
		LifetimePoints: balance.Lifetime().Value(),
	}, nil
}
