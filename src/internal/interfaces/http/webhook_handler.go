package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackyeh168/bar_loyalty/src/internal/application/intake"
	log "github.com/sirupsen/logrus"
)

const (
	msgWebhookProcessed  = "Webhook processed successfully."
	msgWebhookNotHandled = "Event type not handled."
)

// WebhookHandler 接收 POS（Loyverse）收據推送
type WebhookHandler struct {
	processor WebhookProcessor
}

// NewWebhookHandler 創建 webhook handler
func NewWebhookHandler(processor WebhookProcessor) *WebhookHandler {
	return &WebhookHandler{processor: processor}
}

// Receive 解析整包 webhook 後同步處理每張收據
//
// 單張收據失敗只記錄日誌，整體仍回 200，避免 POS 重送整包。
func (h *WebhookHandler) Receive(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		badRequest(c, "failed to read body")
		return
	}
	payload, err := intake.ParseWebhook(body)
	if err != nil {
		log.WithError(err).Warn("rejected malformed webhook payload")
		badRequest(c, "invalid webhook payload")
		return
	}

	result := h.processor.Execute(payload)
	if !result.Handled {
		c.JSON(http.StatusOK, gin.H{"message": msgWebhookNotHandled})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    msgWebhookProcessed,
		"processed":  result.Processed,
		"ignored":    result.Ignored,
		"duplicates": result.Duplicates,
		"failed":     result.Failed,
	})
}
