package middleware

import (
	"net/http"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	resp "gin-gorm-todolist/internal/transport/http/response"
)

// Recovery panic 记日志（带堆栈），对外只给统一的 500 文案
func Recovery(l *zap.Logger) gin.HandlerFunc {
	return ginzap.CustomRecoveryWithZap(l, true, func(c *gin.Context, _ any) {
		c.Abort()
		resp.Text(c, http.StatusInternalServerError, resp.MsgInternal)
	})
}
