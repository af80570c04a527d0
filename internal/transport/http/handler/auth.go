package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gin-gorm-todolist/internal/core/auth"
	"gin-gorm-todolist/internal/dto"
	"gin-gorm-todolist/internal/service"
	"gin-gorm-todolist/internal/transport/http/ez"
	mdw "gin-gorm-todolist/internal/transport/http/middleware"
	"gin-gorm-todolist/internal/validate"
)

const RegisteredText = "User registered successfully"

// AuthHandler /auth：注册、登录、注销
type AuthHandler struct {
	users *service.UserService
	auth  *service.AuthService
	jwter *auth.JWTer
}

func NewAuthHandler(users *service.UserService, as *service.AuthService, jwter *auth.JWTer) *AuthHandler {
	return &AuthHandler{users: users, auth: as, jwter: jwter}
}

func (h *AuthHandler) Priority() int { return 10 }

func (h *AuthHandler) MountAPI(g *gin.RouterGroup) {
	pub := g.Group("/auth")

	ez.Register(pub, ez.Action[dto.UserRequest, string]{
		Method: http.MethodPost,
		Path:   "/register",
		Binder: ez.BindJSON,
		Status: http.StatusCreated,
		Handler: func(c *gin.Context, in *dto.UserRequest) (string, error) {
			if err := validate.Struct(in); err != nil {
				return "", err
			}
			if _, err := h.users.Create(c.Request.Context(), in); err != nil {
				return "", err
			}
			return RegisteredText, nil
		},
	})

	ez.Register(pub, ez.Action[dto.LoginRequest, *dto.TokenResponse]{
		Method: http.MethodPost,
		Path:   "/login",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *dto.LoginRequest) (*dto.TokenResponse, error) {
			return h.auth.Login(c.Request.Context(), in)
		},
	})

	// 注销要先认出 token
	authed := g.Group("/auth", mdw.AuthJWT(h.jwter, ""))
	ez.Register(authed, ez.Action[none, none]{
		Method: http.MethodPost,
		Path:   "/logout",
		Status: http.StatusNoContent,
		Handler: func(c *gin.Context, _ *none) (none, error) {
			claims, err := ez.Principal(c)
			if err != nil {
				return none{}, err
			}
			return none{}, h.auth.Logout(c.Request.Context(), claims)
		},
	})
}
