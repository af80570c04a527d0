package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gin-gorm-todolist/internal/dto"
	"gin-gorm-todolist/internal/service"
	"gin-gorm-todolist/internal/transport/http/ez"
)

// TaskHandler /api/tasks 和 /admin/tasks，不做归属校验
type TaskHandler struct {
	tasks *service.TaskService
}

func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

func (h *TaskHandler) MountAPI(g *gin.RouterGroup) {
	tasks := g.Group("/tasks")
	h.mountCRUD(tasks)

	ez.Register(tasks, ez.Action[none, bool]{
		Method: http.MethodGet,
		Path:   "/exists/title/:title",
		Handler: func(c *gin.Context, _ *none) (bool, error) {
			return h.tasks.ExistsByTitle(c.Request.Context(), c.Param("title"))
		},
	})
	ez.Register(tasks, ez.Action[none, int64]{
		Method: http.MethodGet,
		Path:   "/count/status/:status",
		Handler: func(c *gin.Context, _ *none) (int64, error) {
			st, err := ez.ParamStatus(c, "status")
			if err != nil {
				return 0, err
			}
			return h.tasks.CountByStatus(c.Request.Context(), st)
		},
	})
}

func (h *TaskHandler) MountAdmin(g *gin.RouterGroup) {
	tasks := g.Group("/tasks")
	h.mountCRUD(tasks)

	ez.Register(tasks, ez.Action[none, []dto.TaskResponse]{
		Method: http.MethodGet,
		Path:   "/username/:username",
		Handler: func(c *gin.Context, _ *none) ([]dto.TaskResponse, error) {
			return h.tasks.GetByUsername(c.Request.Context(), c.Param("username"))
		},
	})
	ez.Register(tasks, ez.Action[none, []dto.TaskResponse]{
		Method: http.MethodGet,
		Path:   "/username/:username/status/:status",
		Handler: func(c *gin.Context, _ *none) ([]dto.TaskResponse, error) {
			st, err := ez.ParamStatus(c, "status")
			if err != nil {
				return nil, err
			}
			return h.tasks.GetByUsernameAndStatus(c.Request.Context(), c.Param("username"), st)
		},
	})
}

func (h *TaskHandler) mountCRUD(g *gin.RouterGroup) {
	ez.Register(g, ez.Action[none, []dto.TaskResponse]{
		Method: http.MethodGet,
		Path:   "",
		Handler: func(c *gin.Context, _ *none) ([]dto.TaskResponse, error) {
			return h.tasks.GetAll(c.Request.Context())
		},
	})

	ez.Register(g, ez.Action[none, *dto.TaskResponse]{
		Method: http.MethodGet,
		Path:   "/:id",
		Handler: func(c *gin.Context, _ *none) (*dto.TaskResponse, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return nil, err
			}
			return h.tasks.GetByID(c.Request.Context(), id)
		},
	})

	ez.Register(g, ez.Action[none, *dto.TaskResponse]{
		Method: http.MethodGet,
		Path:   "/title/:title",
		Handler: func(c *gin.Context, _ *none) (*dto.TaskResponse, error) {
			return h.tasks.GetByTitle(c.Request.Context(), c.Param("title"))
		},
	})

	ez.Register(g, ez.Action[none, []dto.TaskResponse]{
		Method: http.MethodGet,
		Path:   "/user/:userId",
		Handler: func(c *gin.Context, _ *none) ([]dto.TaskResponse, error) {
			uid, err := ez.ParamID(c, "userId")
			if err != nil {
				return nil, err
			}
			return h.tasks.GetByUserID(c.Request.Context(), uid)
		},
	})

	ez.Register(g, ez.Action[dto.TaskRequest, *dto.TaskResponse]{
		Method: http.MethodPost,
		Path:   "",
		Binder: ez.BindJSON,
		Status: http.StatusCreated,
		Handler: func(c *gin.Context, in *dto.TaskRequest) (*dto.TaskResponse, error) {
			return h.tasks.Create(c.Request.Context(), in)
		},
	})

	ez.Register(g, ez.Action[dto.TaskRequest, *dto.TaskResponse]{
		Method: http.MethodPut,
		Path:   "/:id",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *dto.TaskRequest) (*dto.TaskResponse, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return nil, err
			}
			return h.tasks.Update(c.Request.Context(), id, in)
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
			return none{}, h.tasks.Delete(c.Request.Context(), id)
		},
	})
}
