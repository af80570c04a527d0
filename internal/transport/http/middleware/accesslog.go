package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gin-gorm-todolist/internal/core/auth"
)

// respWriter 统计 body 字节数；状态码直接用 gin 记录的
type respWriter struct {
	gin.ResponseWriter
	size int
}

func (w *respWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
func (w *respWriter) WriteString(s string) (int, error) { return w.Write([]byte(s)) }

func AccessLog(l *zap.Logger) gin.HandlerFunc {
	// 敏感字段 key（query/form/body 中统一按 key）
	sensitiveKeys := map[string]struct{}{
		"password": {}, "pwd": {}, "token": {}, "authorization": {},
		"secret": {}, "client_secret": {}, "access_token": {},
	}

	mask := func(kv map[string][]string) map[string][]string {
		out := map[string][]string{}
		for k, v := range kv {
			lk := strings.ToLower(k)
			if _, ok := sensitiveKeys[lk]; ok {
				out[k] = []string{"****"}
			} else {
				out[k] = v
			}
		}
		return out
	}

	return func(c *gin.Context) {
		start := time.Now()
		w := &respWriter{ResponseWriter: c.Writer}
		c.Writer = w

		c.Next()

		q := mask(c.Request.URL.Query())
		fields := []zap.Field{
			zap.String("rid", c.GetString(KeyRequestID)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", w.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
			zap.String("ua", c.Request.UserAgent()),
			zap.Any("query", q),
			zap.Int("size", w.size),
		}
		if claims, ok := c.Get(KeyClaims); ok {
			if cl, ok := claims.(*auth.Claims); ok {
				fields = append(fields, zap.String("uid", cl.Subject))
			}
		}

		// handler 通过 resp.Fail 挂上来的原始错误；5xx 才是我们的问题
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("err", c.Errors.String()))
			if w.Status() >= http.StatusInternalServerError {
				l.Error("HTTP", fields...)
				return
			}
		}
		l.Info("HTTP", fields...)
	}
}
