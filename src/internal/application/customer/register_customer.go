package customer

import (
	"errors"
	"strings"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/customer"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
)

// ===========================
// RegisterCustomer Use Case
// ===========================

// RegisterCustomerCommand 註冊顧客指令（Input DTO）
//
// 設計原則：
// - 只包含外部輸入數據
// - 使用原始類型（string），由 Use Case 轉換為領域對象
type RegisterCustomerCommand struct {
	Name          string // 顯示名稱（必填）
	POSCustomerID string // POS 系統的顧客 ID（選填）
}

// CustomerResult 顧客輸出（Output DTO）
type CustomerResult struct {
	CustomerID    string
	Name          string
	POSCustomerID string
}

// RegisterCustomerUseCase 註冊顧客 Use Case 接口
//
// 業務規則：
// 1. 名稱不能為空
// 2. POS 顧客 ID 不能重複（一個 POS 顧客只能對應一位顧客）
// 3. 註冊時不建立積分餘額（第一次入點時才建立）
//
// 使用場景：
// - 櫃台為新客人建檔
// - 管理後台匯入 POS 顧客
type RegisterCustomerUseCase interface {
	Execute(cmd RegisterCustomerCommand) (*CustomerResult, error)
}

// RegisterCustomerUseCaseImpl 註冊顧客 Use Case 實作
type RegisterCustomerUseCaseImpl struct {
	customerRepo customer.CustomerRepository
	txManager    shared.TransactionManager
}

// NewRegisterCustomerUseCase 創建 RegisterCustomerUseCase 實例
func NewRegisterCustomerUseCase(
	customerRepo customer.CustomerRepository,
	txManager shared.TransactionManager,
) RegisterCustomerUseCase {
	return &RegisterCustomerUseCaseImpl{
		customerRepo: customerRepo,
		txManager:    txManager,
	}
}

// Execute 執行註冊顧客 Use Case
//
// 業務流程：
// 1. 建立 Customer 聚合（驗證名稱）
// 2. 在事務中執行：
//    a. 檢查 POS 顧客 ID 是否已綁定
//    b. 綁定 POS 顧客 ID（如果提供）
//    c. 保存到資料庫
//
// 錯誤處理：
// - 名稱為空 → customer.ErrInvalidCustomerName
// - POS 顧客 ID 已綁定 → customer.ErrPOSCustomerIDTaken
func (uc *RegisterCustomerUseCaseImpl) Execute(cmd RegisterCustomerCommand) (*CustomerResult, error) {
	// Step 1: 建立聚合
	newCustomer, err := customer.NewCustomer(cmd.Name)
	if err != nil {
		return nil, err
	}
	posCustomerID := strings.TrimSpace(cmd.POSCustomerID)

	// Step 2: 在事務中執行業務邏輯
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		if posCustomerID != "" {
			if err := ensurePOSCustomerIDFree(ctx, uc.customerRepo, posCustomerID); err != nil {
				return err
			}
			if err := newCustomer.LinkPOSCustomer(posCustomerID); err != nil {
				return err
			}
		}
		return uc.customerRepo.Save(ctx, newCustomer)
	})
	if err != nil {
		return nil, err
	}

	// Step 3: 返回結果（DTO 轉換）
	return toCustomerResult(newCustomer), nil
}

// ensurePOSCustomerIDFree 確認 POS 顧客 ID 尚未被綁定
//
// 唯一索引仍是最終保證；此處檢查讓常見情況得到明確的錯誤。
func ensurePOSCustomerIDFree(ctx shared.TransactionContext, repo customer.CustomerRepository, posCustomerID string) error {
	_, err := repo.FindByPOSCustomerID(ctx, posCustomerID)
	if err == nil {
		return customer.ErrPOSCustomerIDTaken.WithContext("pos_customer_id", posCustomerID)
	}
	if errors.Is(err, customer.ErrCustomerNotFound) {
		return nil
	}
	return err
}

func toCustomerResult(c *customer.Customer) *CustomerResult {
	return &CustomerResult{
		CustomerID:    c.ID().String(),
		Name:          c.Name(),
		POSCustomerID: c.POSCustomerID(),
	}
}
