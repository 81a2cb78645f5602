package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	appledger "github.com/jackyeh168/bar_loyalty/src/internal/application/ledger"
	appreward "github.com/jackyeh168/bar_loyalty/src/internal/application/reward"
)

// CustomerHandler 顧客查詢：餘額、流水、獎勵
type CustomerHandler struct {
	balance BalanceReader
	history HistoryReader
	rewards RewardLister
}

// NewCustomerHandler 創建顧客 handler
func NewCustomerHandler(balance BalanceReader, history HistoryReader, rewards RewardLister) *CustomerHandler {
	return &CustomerHandler{balance: balance, history: history, rewards: rewards}
}

// Balance 目前點數與累計點數；尚無紀錄時為 0
func (h *CustomerHandler) Balance(c *gin.Context) {
	result, err := h.balance.Execute(appledger.GetBalanceQuery{CustomerID: c.Param("id")})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"customer_id":     result.CustomerID,
		"total_points":    result.CurrentPoints,
		"lifetime_points": result.LifetimePoints,
	}})
}

// History 帳本流水（新到舊），支援 limit / offset
func (h *CustomerHandler) History(c *gin.Context) {
	limit, errLimit := queryInt(c, "limit")
	offset, errOffset := queryInt(c, "offset")
	if errLimit != nil || errOffset != nil || offset < 0 {
		badRequest(c, "invalid limit or offset")
		return
	}

	result, err := h.history.Execute(appledger.ListHistoryQuery{
		CustomerID: c.Param("id"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	entries := make([]entryResponse, 0, len(result.Entries))
	for _, e := range result.Entries {
		entries = append(entries, newEntryResponse(e))
	}
	c.JSON(http.StatusOK, gin.H{
		"data": entries,
		"meta": gin.H{"total": result.Total, "limit": result.Limit, "offset": result.Offset},
	})
}

// Rewards 顧客全部獎勵（可用 status 過濾）
func (h *CustomerHandler) Rewards(c *gin.Context) {
	rewards, err := h.rewards.Execute(appreward.ListRewardsQuery{
		CustomerID: c.Param("id"),
		Status:     c.Query("status"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": newRewardResponses(rewards)})
}

func queryInt(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
