package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gin-gorm-todolist/internal/transport/http/ez"
)

const WelcomeText = "Welcome to the TodoList App."

// PublicHandler 无需登录的接口
type PublicHandler struct{}

func NewPublicHandler() *PublicHandler { return &PublicHandler{} }

func (h *PublicHandler) Priority() int { return 0 }

func (h *PublicHandler) MountAPI(g *gin.RouterGroup) {
	ez.Register(g, ez.Action[none, string]{
		Method: http.MethodGet,
		Path:   "/public/welcome",
		Handler: func(*gin.Context, *none) (string, error) {
			return WelcomeText, nil
		},
	})
}
