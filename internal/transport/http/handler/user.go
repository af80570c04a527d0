package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gin-gorm-todolist/internal/dto"
	"gin-gorm-todolist/internal/service"
	"gin-gorm-todolist/internal/transport/http/ez"
	"gin-gorm-todolist/internal/validate"
)

// UserHandler /api/users 和 /admin/users
type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) MountAPI(g *gin.RouterGroup) {
	users := g.Group("/users")
	h.mountCRUD(users)

	ez.Register(users, ez.Action[none, bool]{
		Method: http.MethodGet,
		Path:   "/exists/email/:email",
		Handler: func(c *gin.Context, _ *none) (bool, error) {
			return h.users.ExistsByEmail(c.Request.Context(), c.Param("email"))
		},
	})
	ez.Register(users, ez.Action[none, int64]{
		Method: http.MethodGet,
		Path:   "/count/email/:email",
		Handler: func(c *gin.Context, _ *none) (int64, error) {
			return h.users.CountByEmail(c.Request.Context(), c.Param("email"))
		},
	})
}

func (h *UserHandler) MountAdmin(g *gin.RouterGroup) {
	h.mountCRUD(g.Group("/users"))
}

func (h *UserHandler) mountCRUD(g *gin.RouterGroup) {
	ez.Register(g, ez.Action[none, []dto.UserResponse]{
		Method: http.MethodGet,
		Path:   "",
		Handler: func(c *gin.Context, _ *none) ([]dto.UserResponse, error) {
			return h.users.GetAll(c.Request.Context())
		},
	})

	ez.Register(g, ez.Action[none, *dto.UserResponse]{
		Method: http.MethodGet,
		Path:   "/:id",
		Handler: func(c *gin.Context, _ *none) (*dto.UserResponse, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return nil, err
			}
			return h.users.GetByID(c.Request.Context(), id)
		},
	})

	ez.Register(g, ez.Action[none, *dto.UserResponse]{
		Method: http.MethodGet,
		Path:   "/username/:username",
		Handler: func(c *gin.Context, _ *none) (*dto.UserResponse, error) {
			return h.users.GetByUsername(c.Request.Context(), c.Param("username"))
		},
	})

	ez.Register(g, ez.Action[dto.UserRequest, *dto.UserResponse]{
		Method: http.MethodPost,
		Path:   "",
		Binder: ez.BindJSON,
		Status: http.StatusCreated,
		Handler: func(c *gin.Context, in *dto.UserRequest) (*dto.UserResponse, error) {
			if err := validate.Struct(in); err != nil {
				return nil, err
			}
			return h.users.Create(c.Request.Context(), in)
		},
	})

	ez.Register(g, ez.Action[dto.UserRequest, *dto.UserResponse]{
		Method: http.MethodPut,
		Path:   "/:id",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *dto.UserRequest) (*dto.UserResponse, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return nil, err
			}
			return h.users.Update(c.Request.Context(), id, in)
		},
	})

	ez.Register(g, ez.Action[none, none]{
		Method: http.MethodDelete,
		Path:   "/:id",
		Status: http.StatusNoContent,
		Handler: func(c *gin.Context, _ *none) (none, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return none{}, err
			}
			return none{}, h.users.Delete(c.Request.Context(), id)
		},
	})
}
