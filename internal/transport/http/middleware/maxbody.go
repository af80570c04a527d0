package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "gin-gorm-todolist/internal/transport/http/response"
)

// MaxBodyBytes 限制请求体大小；超限时 JSON 绑定失败，这里兜底没写出的情况
func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > n {
			c.Abort()
			resp.Text(c, http.StatusRequestEntityTooLarge, "Request body too large.")
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}
