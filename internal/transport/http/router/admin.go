package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gin-gorm-todolist/internal/core/auth"
	"gin-gorm-todolist/internal/core/server"
	"gin-gorm-todolist/internal/domain"
	"gin-gorm-todolist/internal/transport/http/handler"
	mdw "gin-gorm-todolist/internal/transport/http/middleware"
)

func NewAdminEngine(l *zap.Logger, o server.Options, jwter *auth.JWTer, svc Services) *gin.Engine {
	r := server.NewRouter(l, o)

	// 管理端统一要求 admin 角色
	admin := r.Group("/admin", mdw.AuthJWT(jwter, domain.RoleAdmin))
	MountAdmin(admin,
		handler.NewUserHandler(svc.Users),
		handler.NewTaskHandler(svc.Tasks),
	)
	return r
}
