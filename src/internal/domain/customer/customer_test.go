package customer_test

import (
	"testing"
	"time"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/customer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer_TrimsName(t *testing.T) {
	// Act
	c, err := customer.NewCustomer("  Juan dela Cruz ")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Juan dela Cruz", c.Name())
	assert.False(t, c.ID().IsEmpty())
	assert.False(t, c.HasPOSCustomerID())
}

func TestNewCustomer_EmptyName_Fails(t *testing.T) {
	_, err := customer.NewCustomer("   ")

	assert.ErrorIs(t, err, customer.ErrInvalidCustomerName)
}

func TestCustomer_LinkPOSCustomer(t *testing.T) {
	// Arrange
	c, _ := customer.NewCustomer("Ana")

	// Test 1: 空白 ID 被拒絕
	assert.ErrorIs(t, c.LinkPOSCustomer(" "), customer.ErrInvalidPOSCustomerID)
	assert.False(t, c.HasPOSCustomerID())

	// Test 2: 正常綁定
	require.NoError(t, c.LinkPOSCustomer(" lv-123 "))
	assert.Equal(t, "lv-123", c.POSCustomerID())
	assert.True(t, c.HasPOSCustomerID())
}

func TestReconstructCustomer_EmptyID_Fails(t *testing.T) {
	_, err := customer.ReconstructCustomer(customer.CustomerID{}, "Ana", "", time.Now(), time.Now())

	assert.ErrorIs(t, err, customer.ErrInvalidCustomerID)
}

func TestOptionalStaffIDFromString(t *testing.T) {
	// 空字串 → 無操作者
	id, err := customer.OptionalStaffIDFromString("")
	require.NoError(t, err)
	assert.True(t, id.IsEmpty())

	// 非法字串
	_, err = customer.OptionalStaffIDFromString("staff-1")
	assert.ErrorIs(t, err, customer.ErrInvalidStaffID)
}
