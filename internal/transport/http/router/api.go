package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gin-gorm-todolist/internal/core/auth"
	"gin-gorm-todolist/internal/core/server"
	"gin-gorm-todolist/internal/service"
	"gin-gorm-todolist/internal/transport/http/handler"
	mdw "gin-gorm-todolist/internal/transport/http/middleware"
)

// Services 两个引擎共用的业务层
type Services struct {
	Users *service.UserService
	Tasks *service.TaskService
	Auth  *service.AuthService
}

func NewAPIEngine(l *zap.Logger, o server.Options, jwter *auth.JWTer, svc Services) *gin.Engine {
	r := server.NewRouter(l, o)

	// 公共：/public、/auth（logout 自己挂鉴权）
	MountAPI(r.Group(""),
		handler.NewPublicHandler(),
		handler.NewAuthHandler(svc.Users, svc.Auth, jwter),
	)

	// 需要登录：/api/users、/api/tasks、/api/user
	api := r.Group("/api", mdw.AuthJWT(jwter, ""))
	MountAPI(api,
		handler.NewUserHandler(svc.Users),
		handler.NewTaskHandler(svc.Tasks),
		handler.NewMeHandler(svc.Users, svc.Tasks),
	)
	return r
}
