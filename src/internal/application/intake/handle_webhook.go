package intake

import (
	log "github.com/sirupsen/logrus"
)

// ReceiptProcessor 處理單張收據
type ReceiptProcessor interface {
	Execute(receipt *Receipt) (*ProcessReceiptResult, error)
}

// WebhookResult webhook 處理摘要
type WebhookResult struct {
	Handled    bool // 事件類型是否為 receipts.update
	Processed  int
	Ignored    int
	Duplicates int
	Failed     int
}

// HandleWebhookUseCase 分派 webhook 內的每張收據
//
// 每張收據各自一個事務；一張失敗不影響其他收據，錯誤只記錄。
type HandleWebhookUseCase struct {
	processor ReceiptProcessor
}

// NewHandleWebhookUseCase 創建 Use Case 實例
func NewHandleWebhookUseCase(processor ReceiptProcessor) *HandleWebhookUseCase {
	return &HandleWebhookUseCase{processor: processor}
}

// Execute 處理整個 webhook
func (uc *HandleWebhookUseCase) Execute(payload *WebhookPayload) *WebhookResult {
	result := &WebhookResult{}
	if payload == nil || payload.Kind() != EventReceiptsUpdate {
		if payload != nil {
			log.WithField("type", payload.Kind()).Warn("webhook event type not handled")
		}
		return result
	}
	result.Handled = true

	for i, raw := range payload.Receipts {
		receipt, err := ParseReceipt(raw)
		if err != nil {
			result.Failed++
			log.WithError(err).WithField("index", i).Error("failed to decode receipt")
			continue
		}
		r, err := uc.processor.Execute(receipt)
		if err != nil {
			result.Failed++
			log.WithError(err).WithField("receipt_id", receipt.ReceiptNumber).Error("failed to process receipt")
			continue
		}
		switch r.Outcome {
		case OutcomeProcessed:
			result.Processed++
		case OutcomeDuplicate:
			result.Duplicates++
		default:
			result.Ignored++
		}
	}
	return result
}
