package ledger

import (
	"fmt"
	"strings"

	"github.com/jackyeh168/bar_loyalty/src/internal/application/events"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/customer"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/ledger"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// StaffEarnCommand 員工依消費內容替顧客累積積分
type StaffEarnCommand struct {
	CustomerID  string
	StaffID     string
	AmountSpent decimal.Decimal
	ItemCount   int
	Description string // 空字串時使用預設說明
	PurchaseID  string // 選填
}

// StaffEarnUseCase 員工入點 Use Case
//
// 業務規則：
// - 點數由目前生效的積分規則計算
// - 計算結果為 0 → ErrNoPointsEarned，不寫任何資料
// - 預設說明：有品項時 "Earned N points for K item(s)"，否則 "Earned N points for ₱X spend"
type StaffEarnUseCase struct {
	calculator PointsCalculator
	earn       *EarnPointsUseCase
	txManager  shared.TransactionManager
}

// NewStaffEarnUseCase 創建 Use Case 實例
func NewStaffEarnUseCase(calculator PointsCalculator, earn *EarnPointsUseCase, txManager shared.TransactionManager) *StaffEarnUseCase {
	return &StaffEarnUseCase{
		calculator: calculator,
		earn:       earn,
		txManager:  txManager,
	}
}

// Execute 計算並入點（規則查詢與入點在同一事務）
func (uc *StaffEarnUseCase) Execute(cmd StaffEarnCommand) (*EarnPointsResult, error) {
	if _, err := customer.StaffIDFromString(cmd.StaffID); err != nil {
		return nil, fmt.Errorf("failed to parse staff ID: %w", err)
	}

	var result *EarnPointsResult
	err := uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		points, err := uc.calculator.Calculate(ctx, cmd.AmountSpent, cmd.ItemCount)
		if err != nil {
			return fmt.Errorf("failed to calculate points: %w", err)
		}
		if points <= 0 {
			return ledger.ErrNoPointsEarned.WithContext(
				"amount_spent", cmd.AmountSpent.String(),
				"item_count", cmd.ItemCount,
			)
		}

		description := strings.TrimSpace(cmd.Description)
		if description == "" {
			description = DefaultEarnDescription(points, cmd.AmountSpent, cmd.ItemCount)
		}

		refKind := ""
		if cmd.PurchaseID != "" {
			refKind = string(ledger.ReferencePurchase)
		}

		r, err := uc.earn.ExecuteWithContext(ctx, EarnPointsCommand{
			CustomerID:    cmd.CustomerID,
			Points:        points,
			Description:   description,
			ActorID:       cmd.StaffID,
			ReferenceKind: refKind,
			ReferenceID:   cmd.PurchaseID,
		})
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	events.PublishAfterCommit(uc.earn.publisher, result.Events)
	result.Events = nil
	return result, nil
}

// DefaultEarnDescription 員工入點的預設說明
func DefaultEarnDescription(points int, amountSpent decimal.Decimal, itemCount int) string {
	if itemCount > 0 {
		return fmt.Sprintf("Earned %d points for %d item(s)", points, itemCount)
	}
	return fmt.Sprintf("Earned %d points for ₱%s spend", points, amountSpent.String())
}
