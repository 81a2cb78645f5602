package intake

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// EventReceiptsUpdate 唯一處理的 webhook 事件類型
	EventReceiptsUpdate = "receipts.update"

	// ReceiptTypeSale 唯一會入帳的收據類型（退款等其他類型忽略）
	ReceiptTypeSale = "SALE"
)

// WebhookPayload POS webhook 信封
//
// 事件類型欄位以 type 為準；舊版推送只帶 event_type 時退回使用。
// 收據保留原始 JSON，逐張在處理時才解析，單張格式錯誤不影響整包。
type WebhookPayload struct {
	Type      string            `json:"type"`
	EventType string            `json:"event_type"`
	Receipts  []json.RawMessage `json:"receipts"`
}

// Kind 事件類型
func (p *WebhookPayload) Kind() string {
	if p.Type != "" {
		return p.Type
	}
	return p.EventType
}

// Receipt POS 收據（只解析入帳需要的欄位，原始 JSON 另外保留）
type Receipt struct {
	ReceiptNumber string          `json:"receipt_number"`
	ReceiptType   string          `json:"receipt_type"`
	TotalMoney    decimal.Decimal `json:"total_money"`
	CustomerID    *string         `json:"customer_id"`
	LineItems     []LineItem      `json:"line_items"`

	Raw json.RawMessage `json:"-"`
}

// LineItem 收據品項
type LineItem struct {
	Quantity decimal.Decimal `json:"quantity"`
}

// IsSale 是否為銷售收據
func (r *Receipt) IsSale() bool {
	return r.ReceiptType == ReceiptTypeSale
}

// POSCustomerID 外部顧客 ID（未帶或空字串時返回 ""）
func (r *Receipt) POSCustomerID() string {
	if r.CustomerID == nil {
		return ""
	}
	return *r.CustomerID
}

// ItemCount 品項數量總和（取整數部分）
func (r *Receipt) ItemCount() int {
	total := decimal.Zero
	for _, item := range r.LineItems {
		total = total.Add(item.Quantity)
	}
	if total.IsNegative() {
		return 0
	}
	return int(total.IntPart())
}

// ParseWebhook 只解析 webhook 信封；收據內容留待 ParseReceipt
func ParseWebhook(body []byte) (*WebhookPayload, error) {
	var payload WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode webhook payload: %w", err)
	}
	return &payload, nil
}

// ParseReceipt 解析單張收據
func ParseReceipt(raw []byte) (*Receipt, error) {
	var r Receipt
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("failed to decode receipt: %w", err)
	}
	r.Raw = append(json.RawMessage(nil), raw...)
	return &r, nil
}
