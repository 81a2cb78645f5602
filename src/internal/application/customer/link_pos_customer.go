package customer

import (
	"errors"
	"fmt"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/customer"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
)

// LinkPOSCustomerCommand 綁定 POS 顧客 ID
type LinkPOSCustomerCommand struct {
	CustomerID    string
	POSCustomerID string
}

// LinkPOSCustomerUseCase 為既有顧客綁定 POS 顧客 ID
//
// 綁定後，該 POS 顧客的收據才會自動入點；綁定前的收據不補點。
type LinkPOSCustomerUseCase struct {
	customerRepo customer.CustomerRepository
	txManager    shared.TransactionManager
}

// NewLinkPOSCustomerUseCase 創建 Use Case 實例
func NewLinkPOSCustomerUseCase(customerRepo customer.CustomerRepository, txManager shared.TransactionManager) *LinkPOSCustomerUseCase {
	return &LinkPOSCustomerUseCase{customerRepo: customerRepo, txManager: txManager}
}

// Execute 執行綁定
func (uc *LinkPOSCustomerUseCase) Execute(cmd LinkPOSCustomerCommand) (*CustomerResult, error) {
	customerID, err := customer.CustomerIDFromString(cmd.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse customer ID: %w", err)
	}

	var linked *customer.Customer
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		c, err := uc.customerRepo.FindByID(ctx, customerID)
		if err != nil {
			return err
		}
		if err := c.LinkPOSCustomer(cmd.POSCustomerID); err != nil {
			return err
		}
		if err := ensurePOSCustomerIDFreeFor(ctx, uc.customerRepo, c); err != nil {
			return err
		}
		if err := uc.customerRepo.Update(ctx, c); err != nil {
			return err
		}
		linked = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toCustomerResult(linked), nil
}

// ensurePOSCustomerIDFreeFor 允許重複綁定到同一位顧客
func ensurePOSCustomerIDFreeFor(ctx shared.TransactionContext, repo customer.CustomerRepository, c *customer.Customer) error {
	owner, err := repo.FindByPOSCustomerID(ctx, c.POSCustomerID())
	if errors.Is(err, customer.ErrCustomerNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if owner.ID().Equals(c.ID()) {
		return nil
	}
	return customer.ErrPOSCustomerIDTaken.WithContext("pos_customer_id", c.POSCustomerID())
}

// GetCustomerUseCase 查詢顧客
type GetCustomerUseCase struct {
	customerRepo customer.CustomerRepository
}

// NewGetCustomerUseCase 創建 Use Case 實例
func NewGetCustomerUseCase(customerRepo customer.CustomerRepository) *GetCustomerUseCase {
	return &GetCustomerUseCase{customerRepo: customerRepo}
}

// Execute 依 ID 查詢（auto-commit）
func (uc *GetCustomerUseCase) Execute(customerIDStr string) (*CustomerResult, error) {
	customerID, err := customer.CustomerIDFromString(customerIDStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse customer ID: %w", err)
	}
	c, err := uc.customerRepo.FindByID(nil, customerID)
	if err != nil {
		return nil, err
	}
	return toCustomerResult(c), nil
}
