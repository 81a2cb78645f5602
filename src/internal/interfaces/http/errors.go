// Package http 提供忠誠度服務的 gin HTTP 介面：POS webhook、員工、管理員與顧客端點。
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
	log "github.com/sirupsen/logrus"
)

// notFoundCodes 對應 404 的錯誤代碼
var notFoundCodes = map[shared.ErrorCode]bool{
	"CUSTOMER_NOT_FOUND": true,
	"REWARD_NOT_FOUND":   true,
	"RULE_NOT_FOUND":     true,
	"PURCHASE_NOT_FOUND": true,
	"BALANCE_NOT_FOUND":  true,
}

// internalCodes 一致性錯誤不是呼叫端能修正的問題，回 500
var internalCodes = map[shared.ErrorCode]bool{
	"LEDGER_INCONSISTENT": true,
	"BALANCE_CORRUPTED":   true,
}

// statusFor 依錯誤代碼決定 HTTP 狀態碼
//
// 映射規則：
// - 找不到資源 → 404
// - 一致性錯誤、非領域錯誤 → 500
// - 其他領域錯誤（驗證、餘額不足、狀態不符、已過期）→ 422
func statusFor(err error) int {
	var domainErr *shared.DomainError
	if !errors.As(err, &domainErr) {
		return http.StatusInternalServerError
	}
	switch {
	case notFoundCodes[domainErr.Code]:
		return http.StatusNotFound
	case internalCodes[domainErr.Code]:
		return http.StatusInternalServerError
	default:
		return http.StatusUnprocessableEntity
	}
}

// writeError 寫出錯誤回應；500 時不洩漏內部訊息
func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}

	var domainErr *shared.DomainError
	errors.As(err, &domainErr)
	c.JSON(status, gin.H{"error": domainErr.Message, "code": domainErr.Code})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
