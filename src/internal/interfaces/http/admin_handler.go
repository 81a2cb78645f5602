package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	appcustomer "github.com/jackyeh168/bar_loyalty/src/internal/application/customer"
	appledger "github.com/jackyeh168/bar_loyalty/src/internal/application/ledger"
	apprules "github.com/jackyeh168/bar_loyalty/src/internal/application/rules"
	"github.com/shopspring/decimal"
)

// AdminHandler 管理員操作：調整積分、稽核帳本、規則與顧客管理
type AdminHandler struct {
	svc *Services
}

// NewAdminHandler 創建管理員 handler
func NewAdminHandler(svc *Services) *AdminHandler {
	return &AdminHandler{svc: svc}
}

type adjustRequest struct {
	Points      int    `json:"points"`
	Description string `json:"description"`
}

// Adjust 手動調整積分（正數增加、負數扣減）
func (h *AdminHandler) Adjust(c *gin.Context) {
	var body adjustRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid json")
		return
	}
	if body.Points == 0 {
		badRequest(c, "points cannot be zero")
		return
	}

	entry, err := h.svc.Adjust.Execute(appledger.AdjustPointsCommand{
		CustomerID:  c.Param("id"),
		Points:      body.Points,
		Description: body.Description,
		ActorID:     actorID(c),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": newEntryResponse(*entry)})
}

// VerifyLedger 重播流水並與餘額比對
func (h *AdminHandler) VerifyLedger(c *gin.Context) {
	result, err := h.svc.VerifyLedger.Execute(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"customer_id":    result.CustomerID,
		"current_points": result.CurrentPoints,
		"entry_count":    result.EntryCount,
		"consistent":     result.Consistent,
		"problem":        result.Problem,
	}})
}

type registerCustomerRequest struct {
	Name          string `json:"name"`
	POSCustomerID string `json:"loyverse_customer_id"`
}

// RegisterCustomer 建立顧客（可同時綁定 POS 顧客 ID）
func (h *AdminHandler) RegisterCustomer(c *gin.Context) {
	var body registerCustomerRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid json")
		return
	}
	result, err := h.svc.RegisterCustomer.Execute(appcustomer.RegisterCustomerCommand{
		Name:          body.Name,
		POSCustomerID: body.POSCustomerID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": newCustomerResponse(result)})
}

// GetCustomer 查詢顧客
func (h *AdminHandler) GetCustomer(c *gin.Context) {
	result, err := h.svc.GetCustomer.Execute(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": newCustomerResponse(result)})
}

type linkPOSRequest struct {
	POSCustomerID string `json:"loyverse_customer_id"`
}

// LinkPOSCustomer 為既有顧客綁定 POS 顧客 ID
func (h *AdminHandler) LinkPOSCustomer(c *gin.Context) {
	var body linkPOSRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid json")
		return
	}
	if strings.TrimSpace(body.POSCustomerID) == "" {
		badRequest(c, "missing loyverse_customer_id")
		return
	}
	result, err := h.svc.LinkPOSCustomer.Execute(appcustomer.LinkPOSCustomerCommand{
		CustomerID:    c.Param("id"),
		POSCustomerID: body.POSCustomerID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": newCustomerResponse(result)})
}

// ListRules 全部積分規則與獎勵規則
func (h *AdminHandler) ListRules(c *gin.Context) {
	result, err := h.svc.ListRules.Execute()
	if err != nil {
		writeError(c, err)
		return
	}
	earning := make([]earningRuleResponse, 0, len(result.EarningRules))
	for _, r := range result.EarningRules {
		earning = append(earning, newEarningRuleResponse(r))
	}
	reward := make([]rewardRuleResponse, 0, len(result.RewardRules))
	for _, r := range result.RewardRules {
		reward = append(reward, newRewardRuleResponse(r))
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"earning_rules": earning, "reward_rules": reward}})
}

type createEarningRuleRequest struct {
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	SpendUnitAmount decimal.Decimal `json:"spend_unit_amount"`
	MinimumSpend    decimal.Decimal `json:"minimum_spend"`
	PointsPerUnit   int             `json:"points_per_unit"`
	PointsPerItem   int             `json:"points_per_item"`
}

// CreateEarningRule 建立積分規則
func (h *AdminHandler) CreateEarningRule(c *gin.Context) {
	var body createEarningRuleRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid json")
		return
	}
	result, err := h.svc.CreateEarningRule.Execute(apprules.CreateEarningRuleCommand{
		Name:            body.Name,
		Type:            body.Type,
		SpendUnitAmount: body.SpendUnitAmount,
		MinimumSpend:    body.MinimumSpend,
		PointsPerUnit:   body.PointsPerUnit,
		PointsPerItem:   body.PointsPerItem,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": newEarningRuleResponse(*result)})
}

type createRewardRuleRequest struct {
	Name           string `json:"name"`
	RewardTitle    string `json:"reward_title"`
	Description    string `json:"description"`
	PointsRequired int    `json:"points_required"`
	ExpiresInDays  int    `json:"expires_in_days"`
}

// CreateRewardRule 建立獎勵規則
func (h *AdminHandler) CreateRewardRule(c *gin.Context) {
	var body createRewardRuleRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid json")
		return
	}
	result, err := h.svc.CreateRewardRule.Execute(apprules.CreateRewardRuleCommand{
		Name:           body.Name,
		RewardTitle:    body.RewardTitle,
		Description:    body.Description,
		PointsRequired: body.PointsRequired,
		ExpiresInDays:  body.ExpiresInDays,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": newRewardRuleResponse(*result)})
}

type setActiveRequest struct {
	Active *bool `json:"is_active"`
}

// SetEarningRuleActive 啟用 / 停用積分規則
func (h *AdminHandler) SetEarningRuleActive(c *gin.Context) {
	h.setActive(c, apprules.RuleKindEarning)
}

// SetRewardRuleActive 啟用 / 停用獎勵規則
func (h *AdminHandler) SetRewardRuleActive(c *gin.Context) {
	h.setActive(c, apprules.RuleKindReward)
}

func (h *AdminHandler) setActive(c *gin.Context, kind apprules.RuleKind) {
	var body setActiveRequest
	if err := c.ShouldBindJSON(&body); err != nil || body.Active == nil {
		badRequest(c, "missing is_active")
		return
	}
	err := h.svc.SetRuleActive.Execute(apprules.SetRuleActiveCommand{
		Kind:   kind,
		RuleID: c.Param("id"),
		Active: *body.Active,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"id": c.Param("id"), "is_active": *body.Active}})
}
