package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	appledger "github.com/jackyeh168/bar_loyalty/src/internal/application/ledger"
	appreward "github.com/jackyeh168/bar_loyalty/src/internal/application/reward"
	"github.com/shopspring/decimal"
)

// StaffHandler 櫃台員工操作：入點、兌換、核銷獎勵
type StaffHandler struct {
	earn    StaffEarner
	redeem  PointsRedeemer
	claim   RewardClaimer
	rewards RewardLister
}

// NewStaffHandler 創建員工 handler
func NewStaffHandler(earn StaffEarner, redeem PointsRedeemer, claim RewardClaimer, rewards RewardLister) *StaffHandler {
	return &StaffHandler{earn: earn, redeem: redeem, claim: claim, rewards: rewards}
}

type earnRequest struct {
	CustomerID  string          `json:"customer_id"`
	AmountSpent decimal.Decimal `json:"amount_spent"`
	ItemCount   int             `json:"item_count"`
	Description string          `json:"description"`
	PurchaseID  string          `json:"purchase_id"`
}

// Earn 依消費金額 / 品項數計算點數後入點
func (h *StaffHandler) Earn(c *gin.Context) {
	var body earnRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid json")
		return
	}
	if strings.TrimSpace(body.CustomerID) == "" {
		badRequest(c, "missing customer_id")
		return
	}
	if body.AmountSpent.IsNegative() || body.ItemCount < 0 {
		badRequest(c, "amount_spent and item_count cannot be negative")
		return
	}

	result, err := h.earn.Execute(appledger.StaffEarnCommand{
		CustomerID:  body.CustomerID,
		StaffID:     actorID(c),
		AmountSpent: body.AmountSpent,
		ItemCount:   body.ItemCount,
		Description: body.Description,
		PurchaseID:  body.PurchaseID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	issued := make([]issuedRewardResponse, 0, len(result.IssuedRewards))
	for _, r := range result.IssuedRewards {
		issued = append(issued, issuedRewardResponse{
			ID:             r.RewardID,
			RuleID:         r.RuleID,
			Title:          r.Title,
			PointsDeducted: r.PointsDeducted,
			ExpiresAt:      r.ExpiresAt,
		})
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Successfully awarded %d points.", result.Entry.Delta),
		"data": gin.H{
			"entry":           newEntryResponse(result.Entry),
			"current_points":  result.CurrentPoints,
			"lifetime_points": result.LifetimePoints,
			"issued_rewards":  issued,
		},
	})
}

type redeemRequest struct {
	CustomerID     string `json:"customer_id"`
	PointsToRedeem int    `json:"points_to_redeem"`
	PurchaseID     string `json:"purchase_id"`
}

// Redeem 兌換積分換取折扣
func (h *StaffHandler) Redeem(c *gin.Context) {
	var body redeemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid json")
		return
	}
	if strings.TrimSpace(body.CustomerID) == "" {
		badRequest(c, "missing customer_id")
		return
	}
	if body.PointsToRedeem < 1 {
		badRequest(c, "points_to_redeem must be at least 1")
		return
	}

	result, err := h.redeem.Execute(appledger.RedeemPointsCommand{
		CustomerID: body.CustomerID,
		Points:     body.PointsToRedeem,
		StaffID:    actorID(c),
		PurchaseID: body.PurchaseID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Successfully redeemed %d points for ₱%s discount.",
			result.PointsUsed, result.DiscountAmount.StringFixed(2)),
		"data": gin.H{
			"redemption_id":   result.RedemptionID,
			"points_used":     result.PointsUsed,
			"discount_amount": result.DiscountAmount.StringFixed(2),
			"current_points":  result.CurrentPoints,
			"entry":           newEntryResponse(result.Entry),
		},
	})
}

// PendingRewards 顧客尚未核銷的獎勵（新到舊）
func (h *StaffHandler) PendingRewards(c *gin.Context) {
	rewards, err := h.rewards.ListPendingRewards(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": newRewardResponses(rewards)})
}

// Claim 核銷獎勵
func (h *StaffHandler) Claim(c *gin.Context) {
	result, err := h.claim.Execute(appreward.ClaimRewardCommand{
		RewardID: c.Param("id"),
		StaffID:  actorID(c),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Reward successfully claimed.",
		"data":    newRewardResponse(*result),
	})
}
