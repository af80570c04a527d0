package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gin-gorm-todolist/internal/dto"
	"gin-gorm-todolist/internal/service"
	"gin-gorm-todolist/internal/transport/http/ez"
)

// MeHandler /api/user：一切以 token 里的用户为准，只能碰自己的任务
type MeHandler struct {
	users *service.UserService
	tasks *service.TaskService
}

func NewMeHandler(users *service.UserService, tasks *service.TaskService) *MeHandler {
	return &MeHandler{users: users, tasks: tasks}
}

func (h *MeHandler) MountAPI(g *gin.RouterGroup) {
	me := g.Group("/user")

	ez.Register(me, ez.Action[none, *dto.UserResponse]{
		Method: http.MethodGet,
		Path:   "",
		Handler: func(c *gin.Context, _ *none) (*dto.UserResponse, error) {
			uid, err := currentUserID(c)
			if err != nil {
				return nil, err
			}
			return h.users.GetByID(c.Request.Context(), uid)
		},
	})

	ez.Register(me, ez.Action[dto.UserRequest, *dto.UserResponse]{
		Method: http.MethodPut,
		Path:   "",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *dto.UserRequest) (*dto.UserResponse, error) {
			uid, err := currentUserID(c)
			if err != nil {
				return nil, err
			}
			return h.users.Update(c.Request.Context(), uid, in)
		},
	})

	// 请求体里的 userId 忽略，归属当前用户
	ez.Register(me, ez.Action[dto.TaskRequest, *dto.TaskResponse]{
		Method: http.MethodPost,
		Path:   "",
		Binder: ez.BindJSON,
		Status: http.StatusCreated,
		Handler: func(c *gin.Context, in *dto.TaskRequest) (*dto.TaskResponse, error) {
			uid, err := currentUserID(c)
			if err != nil {
				return nil, err
			}
			in.UserID = uid
			return h.tasks.Create(c.Request.Context(), in)
		},
	})

	ez.Register(me, ez.Action[none, *dto.TaskResponse]{
		Method: http.MethodGet,
		Path:   "/:id",
		Handler: func(c *gin.Context, _ *none) (*dto.TaskResponse, error) {
			uid, id, err := ownerAndID(c)
			if err != nil {
				return nil, err
			}
			return h.tasks.GetForOwner(c.Request.Context(), id, uid)
		},
	})

	ez.Register(me, ez.Action[dto.TaskRequest, *dto.TaskResponse]{
		Method: http.MethodPut,
		Path:   "/:id",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *dto.TaskRequest) (*dto.TaskResponse, error) {
			uid, id, err := ownerAndID(c)
			if err != nil {
				return nil, err
			}
			return h.tasks.UpdateForOwner(c.Request.Context(), id, uid, in)
		},
	})

	ez.Register(me, ez.Action[none, none]{
		Method: http.MethodDelete,
		Path:   "/:id",
		Status: http.StatusNoContent,
		Handler: func(c *gin.Context, _ *none) (none, error) {
			uid, id, err := ownerAndID(c)
			if err != nil {
				return none{}, err
			}
			return none{}, h.tasks.DeleteForOwner(c.Request.Context(), id, uid)
		},
	})

	ez.Register(me, ez.Action[none, []dto.TaskResponse]{
		Method: http.MethodGet,
		Path:   "/tasks",
		Handler: func(c *gin.Context, _ *none) ([]dto.TaskResponse, error) {
			uid, err := currentUserID(c)
			if err != nil {
				return nil, err
			}
			return h.tasks.GetByUserID(c.Request.Context(), uid)
		},
	})

	ez.Register(me, ez.Action[none, *dto.TaskResponse]{
		Method: http.MethodGet,
		Path:   "/tasks/title/:title",
		Handler: func(c *gin.Context, _ *none) (*dto.TaskResponse, error) {
			uid, err := currentUserID(c)
			if err != nil {
				return nil, err
			}
			return h.tasks.GetByTitleForOwner(c.Request.Context(), c.Param("title"), uid)
		},
	})

	// 按用户名 + 状态查，用户名从库里取，改过名的旧 token 也能查对
	ez.Register(me, ez.Action[none, []dto.TaskResponse]{
		Method: http.MethodGet,
		Path:   "/tasks/status/:status",
		Handler: func(c *gin.Context, _ *none) ([]dto.TaskResponse, error) {
			uid, err := currentUserID(c)
			if err != nil {
				return nil, err
			}
			st, err := ez.ParamStatus(c, "status")
			if err != nil {
				return nil, err
			}
			u, err := h.users.GetByID(c.Request.Context(), uid)
			if err != nil {
				return nil, err
			}
			return h.tasks.GetByUsernameAndStatus(c.Request.Context(), u.Username, st)
		},
	})
}

func ownerAndID(c *gin.Context) (uint, uint, error) {
	uid, err := currentUserID(c)
	if err != nil {
		return 0, 0, err
	}
	id, err := ez.ParamID(c, "id")
	if err != nil {
		return 0, 0, err
	}
	return uid, id, nil
}
