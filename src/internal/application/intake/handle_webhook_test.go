package intake

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProcessor struct {
	outcomes map[string]Outcome
	failing  map[string]bool
	seen     []string
}

func (s *stubProcessor) Execute(r *Receipt) (*ProcessReceiptResult, error) {
	s.seen = append(s.seen, r.ReceiptNumber)
	if s.failing[r.ReceiptNumber] {
		return nil, errors.New("boom")
	}
	return &ProcessReceiptResult{Outcome: s.outcomes[r.ReceiptNumber], ReceiptID: r.ReceiptNumber}, nil
}

// Test 1: 每張收據獨立處理，一張失敗不影響其他
func TestHandleWebhookUseCase_ProcessesEachReceiptIndependently(t *testing.T) {
	// Arrange
	payload, err := ParseWebhook([]byte(`{
		"type": "receipts.update",
		"receipts": [
			{"receipt_number": "R-1", "receipt_type": "SALE", "total_money": 100},
			{"receipt_number": "R-2", "receipt_type": "SALE", "total_money": 200},
			{"receipt_number": "R-3", "receipt_type": "SALE", "total_money": 300},
			{"receipt_number": "R-4", "receipt_type": "REFUND", "total_money": 300}
		]
	}`))
	require.NoError(t, err)
	processor := &stubProcessor{
		outcomes: map[string]Outcome{"R-1": OutcomeProcessed, "R-3": OutcomeDuplicate, "R-4": OutcomeIgnored},
		failing:  map[string]bool{"R-2": true},
	}

	// Act
	result := NewHandleWebhookUseCase(processor).Execute(payload)

	// Assert
	assert.True(t, result.Handled)
	assert.Equal(t, []string{"R-1", "R-2", "R-3", "R-4"}, processor.seen)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.Duplicates)
	assert.Equal(t, 1, result.Ignored)
}

// Test 2: 其他事件類型 → 不處理
func TestHandleWebhookUseCase_UnhandledEventType(t *testing.T) {
	payload, err := ParseWebhook([]byte(`{"type":"items.update","receipts":[{"receipt_number":"R-1","receipt_type":"SALE"}]}`))
	require.NoError(t, err)
	processor := &stubProcessor{}

	result := NewHandleWebhookUseCase(processor).Execute(payload)

	assert.False(t, result.Handled)
	assert.Empty(t, processor.seen)
}

// Test 3: 只帶 event_type 的舊格式
func TestParseWebhook_EventTypeFallback(t *testing.T) {
	payload, err := ParseWebhook([]byte(`{"event_type":"receipts.update","receipts":[]}`))

	require.NoError(t, err)
	assert.Equal(t, EventReceiptsUpdate, payload.Kind())
	assert.True(t, NewHandleWebhookUseCase(&stubProcessor{}).Execute(payload).Handled)
}

// Test 4: 解析收據欄位
func TestParseReceipt_Fields(t *testing.T) {
	r, err := ParseReceipt([]byte(`{"receipt_number":"R-7","receipt_type":"SALE","total_money":"120.50","customer_id":"pos-1","line_items":[{"quantity":2,"item_name":"Beer"},{"quantity":1.5}]}`))

	require.NoError(t, err)
	assert.True(t, r.IsSale())
	assert.Equal(t, "120.5", r.TotalMoney.String())
	assert.Equal(t, "pos-1", r.POSCustomerID())
	assert.Equal(t, 3, r.ItemCount())
	assert.Contains(t, string(r.Raw), `"item_name":"Beer"`)
}

// Test 5: 信封格式錯誤
func TestParseWebhook_Malformed(t *testing.T) {
	_, err := ParseWebhook([]byte(`{"type":`))
	assert.Error(t, err)

	_, err = ParseWebhook([]byte(`{"type":"receipts.update","receipts":{}}`))
	assert.Error(t, err)
}

// Test 6: 單張收據無法解析 → 計為失敗，其餘收據照常處理
func TestHandleWebhookUseCase_UndecodableReceipt_DoesNotBlockOthers(t *testing.T) {
	// Arrange
	payload, err := ParseWebhook([]byte(`{
		"type": "receipts.update",
		"receipts": [
			{"receipt_number": "R-1", "receipt_type": "SALE", "total_money": 100, "customer_id": "pos-1", "line_items": [{"quantity": 2}]},
			{"receipt_number": "R-2", "receipt_type": "REFUND", "total_money": "n/a"},
			{"receipt_number": "R-3", "receipt_type": "SALE", "total_money": 50}
		]
	}`))
	require.NoError(t, err)
	require.Len(t, payload.Receipts, 3)
	processor := &stubProcessor{
		outcomes: map[string]Outcome{"R-1": OutcomeProcessed, "R-3": OutcomeProcessed},
	}

	// Act
	result := NewHandleWebhookUseCase(processor).Execute(payload)

	// Assert
	assert.True(t, result.Handled)
	assert.Equal(t, []string{"R-1", "R-3"}, processor.seen)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 1, result.Failed)
}
