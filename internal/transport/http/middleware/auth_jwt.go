package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"gin-gorm-todolist/internal/core/auth"
	"gin-gorm-todolist/internal/domain"
	resp "gin-gorm-todolist/internal/transport/http/response"
)

// KeyClaims 解析后的 *auth.Claims 在 gin.Context 里的 key
const KeyClaims = "claims"

// AuthJWT 校验 Bearer token；requireRole 非空时还要求该角色
func AuthJWT(j *auth.JWTer, requireRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.Fail(c, domain.Unauthenticated("Missing bearer token.", nil))
			return
		}
		claims, err := j.Parse(c.Request.Context(), strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			resp.Fail(c, domain.Unauthenticated("Invalid or expired token.", err))
			return
		}
		if requireRole != "" && !claims.HasRole(requireRole) {
			resp.Fail(c, domain.Forbidden(resp.MsgForbidden))
			return
		}
		c.Set(KeyClaims, claims)
		c.Next()
	}
}
