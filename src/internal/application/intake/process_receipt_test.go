package intake

import (
	"testing"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saleReceipt(t *testing.T, raw string) *Receipt {
	t.Helper()
	r, err := ParseReceipt([]byte(raw))
	require.NoError(t, err)
	return r
}

// Test 1: 已綁定顧客的銷售收據 → 購買紀錄 + 入點
func TestProcessReceiptUseCase_MappedCustomer_EarnsPoints(t *testing.T) {
	// Arrange
	f := newIntakeFixture(3)
	receipt := saleReceipt(t, `{"receipt_number":"R-001","receipt_type":"SALE","total_money":150,"customer_id":"pos-alice","line_items":[{"quantity":2},{"quantity":1}]}`)

	// Act
	result, err := f.useCase.Execute(receipt)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, OutcomeProcessed, result.Outcome)
	assert.Equal(t, 3, result.PointsEarned)
	assert.Equal(t, f.alice.ID().String(), result.CustomerID)

	assert.Equal(t, "150", f.calculator.LastAmount.String())
	assert.Equal(t, 3, f.calculator.LastItems)

	p := f.purchases.purchases["R-001"]
	require.NotNil(t, p)
	assert.Equal(t, 3, p.PointsEarned())
	assert.Equal(t, "pos-alice", p.POSCustomerID())
	assert.JSONEq(t, string(receipt.Raw), string(p.Payload()))

	require.Len(t, f.entries.entries, 1)
	entry := f.entries.entries[0]
	assert.Equal(t, "Earned 3 points from purchase #R-001 (3 items)", entry.Description())
	assert.Equal(t, ledger.ReferencePurchase, entry.Reference().Kind())
	assert.Equal(t, p.ID().String(), entry.Reference().ID())
	assert.Len(t, f.publisher.Published, 1, "事件在提交後發布")
}

// Test 2: 同一收據送兩次 → 只有一筆購買紀錄、只入點一次
func TestProcessReceiptUseCase_DuplicateReceipt_Idempotent(t *testing.T) {
	// Arrange
	f := newIntakeFixture(3)
	raw := `{"receipt_number":"R-001","receipt_type":"SALE","total_money":150,"customer_id":"pos-alice","line_items":[]}`

	// Act
	first, err1 := f.useCase.Execute(saleReceipt(t, raw))
	second, err2 := f.useCase.Execute(saleReceipt(t, raw))

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, OutcomeProcessed, first.Outcome)
	assert.Equal(t, OutcomeDuplicate, second.Outcome)
	assert.Len(t, f.purchases.purchases, 1)
	assert.Len(t, f.entries.entries, 1)
	assert.Equal(t, 3, f.balances.balances[f.alice.ID().String()].Current().Value())
}

// Test 3: 寫入時才發現重複（並行重送）→ 視為重複，不報錯
func TestProcessReceiptUseCase_DuplicateOnSave(t *testing.T) {
	f := newIntakeFixture(3)
	f.purchases.saveDuplicate = true

	result, err := f.useCase.Execute(saleReceipt(t, `{"receipt_number":"R-9","receipt_type":"SALE","total_money":10,"customer_id":"pos-alice"}`))

	require.NoError(t, err)
	assert.Equal(t, OutcomeDuplicate, result.Outcome)
	assert.Empty(t, f.entries.entries)
}

// Test 4: 未綁定的顧客 → 0 點，仍保存購買紀錄，不計算
func TestProcessReceiptUseCase_UnmappedCustomer_RecordedWithoutPoints(t *testing.T) {
	f := newIntakeFixture(3)

	result, err := f.useCase.Execute(saleReceipt(t, `{"receipt_number":"R-2","receipt_type":"SALE","total_money":500,"customer_id":"pos-stranger","line_items":[{"quantity":1}]}`))

	require.NoError(t, err)
	assert.Equal(t, OutcomeProcessed, result.Outcome)
	assert.Equal(t, 0, result.PointsEarned)
	assert.Empty(t, result.CustomerID)
	assert.Equal(t, 0, f.calculator.Calls)
	p := f.purchases.purchases["R-2"]
	require.NotNil(t, p)
	assert.False(t, p.HasCustomer())
	assert.Empty(t, f.entries.entries)
}

// Test 5: 沒有顧客 ID（null）
func TestProcessReceiptUseCase_NullCustomer(t *testing.T) {
	f := newIntakeFixture(3)

	result, err := f.useCase.Execute(saleReceipt(t, `{"receipt_number":"R-3","receipt_type":"SALE","total_money":"99.99","customer_id":null}`))

	require.NoError(t, err)
	assert.Equal(t, OutcomeProcessed, result.Outcome)
	assert.Equal(t, "99.99", f.purchases.purchases["R-3"].TotalAmount().String())
}

// Test 6: 計算為 0 點 → 有購買紀錄，沒有流水
func TestProcessReceiptUseCase_ZeroPoints_NoLedgerEntry(t *testing.T) {
	f := newIntakeFixture(0)

	result, err := f.useCase.Execute(saleReceipt(t, `{"receipt_number":"R-4","receipt_type":"SALE","total_money":5,"customer_id":"pos-alice"}`))

	require.NoError(t, err)
	assert.Equal(t, OutcomeProcessed, result.Outcome)
	assert.Equal(t, f.alice.ID().String(), result.CustomerID)
	assert.Len(t, f.purchases.purchases, 1)
	assert.Empty(t, f.entries.entries)
	assert.Empty(t, f.publisher.Published)
}

// Test 7: 非銷售收據或缺編號 → 忽略，不寫資料
func TestProcessReceiptUseCase_Ignored(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"退款", `{"receipt_number":"R-5","receipt_type":"REFUND","total_money":5,"customer_id":"pos-alice"}`},
		{"缺收據編號", `{"receipt_type":"SALE","total_money":5,"customer_id":"pos-alice"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newIntakeFixture(3)

			result, err := f.useCase.Execute(saleReceipt(t, tt.raw))

			require.NoError(t, err)
			assert.Equal(t, OutcomeIgnored, result.Outcome)
			assert.Empty(t, f.purchases.purchases)
		})
	}
}

func TestReceiptEarnDescription(t *testing.T) {
	assert.Equal(t, "Earned 5 points from purchase #R-1", ReceiptEarnDescription(5, "R-1", 0))
	assert.Equal(t, "Earned 5 points from purchase #R-1 (2 items)", ReceiptEarnDescription(5, "R-1", 2))
}
