// Package handler 各业务模块的 HTTP 入口。
//
// 每个 handler 实现 router.APIModule / router.AdminModule 中的一个或两个，
// 由 router 在对应分组上挂载；鉴权中间件由分组负责，handler 只管解析入参、
// 取当前用户、调 service、写状态码。错误一律返回给 ez，由 response 统一翻译。
package handler

import (
	"github.com/gin-gonic/gin"

	"gin-gorm-todolist/internal/transport/http/ez"
)

// none 无入参 / 无出参
type none = struct{}

// currentUserID 当前登录用户 id（来自 token subject）
func currentUserID(c *gin.Context) (uint, error) { return ez.PrincipalID(c) }
