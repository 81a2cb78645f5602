package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackyeh168/bar_loyalty/src/internal/application/events"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/customer"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/ledger"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// RedeemPointsCommand 兌換積分命令
type RedeemPointsCommand struct {
	CustomerID string
	Points     int
	StaffID    string // 必填
	PurchaseID string // 選填
}

// RedeemPointsResult 兌換結果
type RedeemPointsResult struct {
	RedemptionID   string
	PointsUsed     int
	DiscountAmount decimal.Decimal
	CurrentPoints  int
	Entry          EntryDTO
	CreatedAt      time.Time
}

// RedeemPointsUseCase 兌換積分 Use Case
//
// 業務規則：
// - 餘額不足或顧客尚無餘額 → ErrInsufficientBalance，不寫任何資料
// - 只扣 current，不觸發自動發放獎勵
type RedeemPointsUseCase struct {
	balanceRepo    ledger.BalanceRepository
	entryRepo      ledger.LedgerEntryRepository
	redemptionRepo ledger.RedemptionRepository
	rate           ledger.DiscountRate
	txManager      shared.TransactionManager
	publisher      shared.EventPublisher
}

// NewRedeemPointsUseCase 創建 Use Case 實例
func NewRedeemPointsUseCase(
	balanceRepo ledger.BalanceRepository,
	entryRepo ledger.LedgerEntryRepository,
	redemptionRepo ledger.RedemptionRepository,
	rate ledger.DiscountRate,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
) *RedeemPointsUseCase {
	return &RedeemPointsUseCase{
		balanceRepo:    balanceRepo,
		entryRepo:      entryRepo,
		redemptionRepo: redemptionRepo,
		rate:           rate,
		txManager:      txManager,
		publisher:      publisher,
	}
}

// Execute 執行兌換
func (uc *RedeemPointsUseCase) Execute(cmd RedeemPointsCommand) (*RedeemPointsResult, error) {
	customerID, err := customer.CustomerIDFromString(cmd.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse customer ID: %w", err)
	}
	staffID, err := customer.StaffIDFromString(cmd.StaffID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse staff ID: %w", err)
	}
	points, err := ledger.NewPositivePointsAmount(cmd.Points)
	if err != nil {
		return nil, err
	}

	var (
		result  *RedeemPointsResult
		balance *ledger.Balance
	)
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		b, err := uc.balanceRepo.FindForUpdate(ctx, customerID)
		if errors.Is(err, ledger.ErrBalanceNotFound) {
			return ledger.ErrInsufficientBalance.WithContext(
				"customer_id", customerID.String(),
				"requested", points.Value(),
				"available", 0,
			)
		}
		if err != nil {
			return fmt.Errorf("failed to lock balance: %w", err)
		}
		balance = b

		redemption, entry, err := balance.Redeem(points, uc.rate, staffID, cmd.PurchaseID)
		if err != nil {
			return err
		}
		if err := uc.balanceRepo.Update(ctx, balance); err != nil {
			return fmt.Errorf("failed to update balance: %w", err)
		}
		if err := uc.redemptionRepo.Save(ctx, redemption); err != nil {
			return fmt.Errorf("failed to save redemption: %w", err)
		}
		if err := uc.entryRepo.Append(ctx, entry); err != nil {
			return fmt.Errorf("failed to append ledger entry: %w", err)
		}

		result = &RedeemPointsResult{
			RedemptionID:   redemption.ID().String(),
			PointsUsed:     redemption.PointsUsed().Value(),
			DiscountAmount: redemption.DiscountAmount(),
			CurrentPoints:  balance.Current().Value(),
			Entry:          toEntryDTO(entry),
			CreatedAt:      redemption.CreatedAt(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	events.PublishAfterCommit(uc.publisher, events.Collect(balance))
	return result, nil
}
