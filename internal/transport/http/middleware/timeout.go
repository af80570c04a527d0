package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	resp "gin-gorm-todolist/internal/transport/http/response"
)

// Timeout 给请求 context 加超时，gorm 通过 WithContext 感知
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			c.Abort()
			resp.Text(c, http.StatusGatewayTimeout, "Request timed out.")
		}
	}
}
