package intake

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackyeh168/bar_loyalty/src/internal/application/events"
	appledger "github.com/jackyeh168/bar_loyalty/src/internal/application/ledger"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/customer"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/ledger"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/purchase"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
	log "github.com/sirupsen/logrus"
)

// Outcome 單張收據的處理結果
type Outcome string

const (
	OutcomeProcessed Outcome = "processed" // 已建立購買紀錄（可能 0 點）
	OutcomeIgnored   Outcome = "ignored"   // 非銷售或缺收據編號
	OutcomeDuplicate Outcome = "duplicate" // 收據已處理過
)

// ProcessReceiptResult 處理結果
type ProcessReceiptResult struct {
	Outcome       Outcome
	ReceiptID     string
	PurchaseID    string
	CustomerID    string // 未對應到顧客時為空
	PointsEarned  int
	IssuedRewards int
}

// errDuplicateReceipt 在事務內遇到唯一約束衝突時用來觸發回滾
var errDuplicateReceipt = errors.New("duplicate receipt")

// ProcessReceiptUseCase 將一張 POS 收據轉成購買紀錄並入點
//
// 業務流程（同一事務）：
// 1. 非 SALE 或缺收據編號 → 忽略
// 2. 收據編號已存在 → 忽略（重送的唯一冪等保證）
// 3. 依外部顧客 ID 找本地顧客；找不到 → 0 點，仍保存購買紀錄
// 4. 有顧客才計算點數
// 5. 保存購買紀錄（含原始收據）
// 6. 有顧客且點數 > 0 → 入點（同一事務內自動發放獎勵）
type ProcessReceiptUseCase struct {
	purchaseRepo purchase.PurchaseRepository
	customerRepo customer.CustomerRepository
	calculator   appledger.PointsCalculator
	earn         *appledger.EarnPointsUseCase
	txManager    shared.TransactionManager
	publisher    shared.EventPublisher
}

// NewProcessReceiptUseCase 創建 Use Case 實例
func NewProcessReceiptUseCase(
	purchaseRepo purchase.PurchaseRepository,
	customerRepo customer.CustomerRepository,
	calculator appledger.PointsCalculator,
	earn *appledger.EarnPointsUseCase,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
) *ProcessReceiptUseCase {
	return &ProcessReceiptUseCase{
		purchaseRepo: purchaseRepo,
		customerRepo: customerRepo,
		calculator:   calculator,
		earn:         earn,
		txManager:    txManager,
		publisher:    publisher,
	}
}

// Execute 處理一張收據
func (uc *ProcessReceiptUseCase) Execute(receipt *Receipt) (*ProcessReceiptResult, error) {
	receiptID := ""
	if receipt != nil {
		receiptID = strings.TrimSpace(receipt.ReceiptNumber)
	}
	if receipt == nil || !receipt.IsSale() || receiptID == "" {
		return &ProcessReceiptResult{Outcome: OutcomeIgnored, ReceiptID: receiptID}, nil
	}

	result := &ProcessReceiptResult{ReceiptID: receiptID}
	var pending []shared.DomainEvent

	err := uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		exists, err := uc.purchaseRepo.ExistsByReceiptID(ctx, receiptID)
		if err != nil {
			return fmt.Errorf("failed to check receipt: %w", err)
		}
		if exists {
			return errDuplicateReceipt
		}

		posCustomerID := receipt.POSCustomerID()
		itemCount := receipt.ItemCount()

		var owner *customer.Customer
		if posCustomerID != "" {
			owner, err = uc.customerRepo.FindByPOSCustomerID(ctx, posCustomerID)
			if errors.Is(err, customer.ErrCustomerNotFound) {
				owner, err = nil, nil
			}
			if err != nil {
				return fmt.Errorf("failed to resolve customer: %w", err)
			}
		}

		points := 0
		var customerID customer.CustomerID
		if owner != nil {
			customerID = owner.ID()
			points, err = uc.calculator.Calculate(ctx, receipt.TotalMoney, itemCount)
			if err != nil {
				return fmt.Errorf("failed to calculate points: %w", err)
			}
		}

		p, err := purchase.NewPurchase(receiptID, customerID, posCustomerID, receipt.TotalMoney, itemCount, points, receipt.Raw)
		if err != nil {
			return err
		}
		if err := uc.purchaseRepo.Save(ctx, p); err != nil {
			if errors.Is(err, purchase.ErrDuplicateReceipt) {
				return errDuplicateReceipt
			}
			return fmt.Errorf("failed to save purchase: %w", err)
		}

		result.PurchaseID = p.ID().String()
		result.CustomerID = customerID.String()
		result.PointsEarned = points

		if owner == nil || points <= 0 {
			return nil
		}

		earned, err := uc.earn.ExecuteWithContext(ctx, appledger.EarnPointsCommand{
			CustomerID:    customerID.String(),
			Points:        points,
			Description:   ReceiptEarnDescription(points, receiptID, itemCount),
			ReferenceKind: string(ledger.ReferencePurchase),
			ReferenceID:   p.ID().String(),
		})
		if err != nil {
			return err
		}
		result.IssuedRewards = len(earned.IssuedRewards)
		pending = earned.Events
		return nil
	})

	if errors.Is(err, errDuplicateReceipt) {
		log.WithField("receipt_id", receiptID).Info("receipt already processed, skipping")
		return &ProcessReceiptResult{Outcome: OutcomeDuplicate, ReceiptID: receiptID}, nil
	}
	if err != nil {
		return nil, err
	}

	events.PublishAfterCommit(uc.publisher, pending)
	result.Outcome = OutcomeProcessed

	log.WithFields(log.Fields{
		"receipt_id":      receiptID,
		"pos_customer_id": receipt.POSCustomerID(),
		"points_earned":   result.PointsEarned,
	}).Info("receipt processed")
	return result, nil
}

// ReceiptEarnDescription 收據入點的流水說明
func ReceiptEarnDescription(points int, receiptID string, itemCount int) string {
	description := fmt.Sprintf("Earned %d points from purchase #%s", points, receiptID)
	if itemCount > 0 {
		description += fmt.Sprintf(" (%d items)", itemCount)
	}
	return description
}
