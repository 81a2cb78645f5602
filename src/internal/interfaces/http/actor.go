package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ActorHeader 上游閘道驗證身分後帶入的操作者 ID（員工或管理員）
const ActorHeader = "X-Actor-ID"

const actorKey = "actorID"

// RequireActor 要求請求帶有操作者 ID；缺少時回 401
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := strings.TrimSpace(c.GetHeader(ActorHeader))
		if actor == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing " + ActorHeader + " header"})
			return
		}
		c.Set(actorKey, actor)
		c.Next()
	}
}

func actorID(c *gin.Context) string {
	return c.GetString(actorKey)
}
