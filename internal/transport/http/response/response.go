package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gin-gorm-todolist/internal/domain"
)

// Translate 错误 → (状态码, 文本)；唯一出口，handler 不自己拼错误
func Translate(err error) (int, string) {
	var uv *domain.UniqueViolation
	if errors.As(err, &uv) {
		if msg, ok := conflictMsg[uv.Column]; ok {
			return http.StatusConflict, msg
		}
		return http.StatusConflict, MsgConflict + uv.Cause.Error()
	}

	var de *domain.Error
	if errors.As(err, &de) {
		status, ok := KindStatus[de.Kind]
		if !ok {
			status = http.StatusInternalServerError
		}
		if status == http.StatusInternalServerError {
			return status, MsgInternal
		}
		return status, de.Error()
	}
	return http.StatusInternalServerError, MsgInternal
}

// Fail 写错误响应；原始 err 挂到 gin 上给访问日志
func Fail(c *gin.Context, err error) {
	status, msg := Translate(err)
	_ = c.Error(err)
	c.Abort()
	Text(c, status, msg)
}

func Text(c *gin.Context, status int, msg string) {
	c.String(status, msg)
}

// Write 成功响应：string 走 text/plain，204 不带 body，其余 JSON
func Write(c *gin.Context, status int, data any) {
	if status == http.StatusNoContent {
		c.Status(status)
		return
	}
	if s, ok := data.(string); ok {
		Text(c, status, s)
		return
	}
	c.JSON(status, data)
}
