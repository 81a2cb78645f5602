package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// NewRouter 建立 gin engine 並註冊全部路由
func NewRouter(svc *Services) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	RegisterRoutes(r, svc)
	return r
}

// RegisterRoutes 註冊路由
//
// 路由分組：
// - /api/v1/loyverse/webhook  POS 推送（不需操作者）
// - /api/v1/staff/...         員工操作（需 X-Actor-ID）
// - /api/v1/admin/...         管理員操作（需 X-Actor-ID）
// - /api/v1/customers/...     顧客查詢
//
// 身分驗證與角色檢查由上游閘道負責。
func RegisterRoutes(r *gin.Engine, svc *Services) {
	if r == nil || svc == nil {
		return
	}

	r.GET("/healthz", healthz(svc))

	v1 := r.Group("/api/v1")

	webhook := NewWebhookHandler(svc.Webhook)
	v1.POST("/loyverse/webhook", webhook.Receive)

	staff := v1.Group("/staff")
	staff.Use(RequireActor())
	staffHandler := NewStaffHandler(svc.StaffEarn, svc.Redeem, svc.ClaimReward, svc.ListRewards)
	staff.POST("/earn", staffHandler.Earn)
	staff.POST("/redeem", staffHandler.Redeem)
	staff.GET("/customers/:id/rewards", staffHandler.PendingRewards)
	staff.POST("/rewards/:id/claim", staffHandler.Claim)

	admin := v1.Group("/admin")
	admin.Use(RequireActor())
	adminHandler := NewAdminHandler(svc)
	admin.POST("/customers", adminHandler.RegisterCustomer)
	admin.GET("/customers/:id", adminHandler.GetCustomer)
	admin.PUT("/customers/:id/pos-link", adminHandler.LinkPOSCustomer)
	admin.POST("/customers/:id/adjust", adminHandler.Adjust)
	admin.GET("/customers/:id/ledger/verify", adminHandler.VerifyLedger)
	admin.GET("/rules", adminHandler.ListRules)
	admin.POST("/earning-rules", adminHandler.CreateEarningRule)
	admin.PUT("/earning-rules/:id/active", adminHandler.SetEarningRuleActive)
	admin.POST("/reward-rules", adminHandler.CreateRewardRule)
	admin.PUT("/reward-rules/:id/active", adminHandler.SetRewardRuleActive)

	customerHandler := NewCustomerHandler(svc.Balance, svc.History, svc.ListRewards)
	customers := v1.Group("/customers/:id")
	customers.GET("/points", customerHandler.Balance)
	customers.GET("/points/history", customerHandler.History)
	customers.GET("/rewards", customerHandler.Rewards)
}

func healthz(svc *Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		if svc.Ping != nil {
			if err := svc.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// requestLogger 以 logrus 記錄每個請求
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		entry := log.WithFields(log.Fields{
			"method":  c.Request.Method,
			"path":    c.FullPath(),
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		})
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Warn("http request")
			return
		}
		entry.Debug("http request")
	}
}
