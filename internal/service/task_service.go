package service

import (
	"context"
	"strings"

	"gin-gorm-todolist/internal/domain"
	"gin-gorm-todolist/internal/dto"
	"gin-gorm-todolist/internal/mapper"
)

type TaskService struct {
	tasks domain.TaskRepository
	users domain.UserRepository
}

func NewTaskService(tasks domain.TaskRepository, users domain.UserRepository) *TaskService {
	return &TaskService{tasks: tasks, users: users}
}

// normalize 标题必填，状态为空按 PENDING
func normalize(req *dto.TaskRequest) error {
	if req == nil {
		return domain.BadRequest("Invalid task data.")
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return domain.BadRequest("Task title is required.")
	}
	if req.Status == "" {
		req.Status = domain.StatusPending
		return nil
	}
	st, ok := domain.ParseTaskStatus(string(req.Status))
	if !ok {
		return domain.BadRequest("Invalid task status: %s", req.Status)
	}
	req.Status = st
	return nil
}

// Create owner 不存在时在插入前就返回 NotFound
func (s *TaskService) Create(ctx context.Context, req *dto.TaskRequest) (*dto.TaskResponse, error) {
	if err := normalize(req); err != nil {
		return nil, err
	}
	if req.UserID == 0 {
		return nil, domain.BadRequest("User id is required.")
	}
	ok, err := s.users.ExistsByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NotFound("%s%d", domain.UserNotFoundID, req.UserID)
	}
	if err := s.checkTitle(ctx, req.Title, 0); err != nil {
		return nil, err
	}
	t := mapper.ToTaskEntity(req)
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	return mapper.ToTaskResponse(t), nil
}

// checkTitle 标题全局唯一；selfID 为更新中的任务自己
func (s *TaskService) checkTitle(ctx context.Context, title string, selfID uint) error {
	existing, err := s.tasks.FindByTitle(ctx, title)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return domain.Conflict("%s%s", domain.TaskTitleExists, title)
	}
	return nil
}

func (s *TaskService) GetByID(ctx context.Context, id uint) (*dto.TaskResponse, error) {
	t, err := s.mustFind(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapper.ToTaskResponse(t), nil
}

func (s *TaskService) mustFind(ctx context.Context, id uint) (*domain.Task, error) {
	t, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.NotFound("%s%d", domain.TaskNotFoundID, id)
	}
	return t, nil
}

// mustFindOwned 别人的任务一律当作不存在
func (s *TaskService) mustFindOwned(ctx context.Context, id, ownerID uint) (*domain.Task, error) {
	t, err := s.mustFind(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.UserID != ownerID {
		return nil, domain.NotFound("%s%d", domain.TaskNotFoundID, id)
	}
	return t, nil
}

func (s *TaskService) GetForOwner(ctx context.Context, id, ownerID uint) (*dto.TaskResponse, error) {
	t, err := s.mustFindOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	return mapper.ToTaskResponse(t), nil
}

func (s *TaskService) GetAll(ctx context.Context) ([]dto.TaskResponse, error) {
	return list(s.tasks.FindAll(ctx))
}

// Update 全字段覆盖：title/description/status，没传的不保留旧值
func (s *TaskService) Update(ctx context.Context, id uint, req *dto.TaskRequest) (*dto.TaskResponse, error) {
	if err := normalize(req); err != nil {
		return nil, err
	}
	t, err := s.mustFind(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.overwrite(ctx, t, req)
}

func (s *TaskService) UpdateForOwner(ctx context.Context, id, ownerID uint, req *dto.TaskRequest) (*dto.TaskResponse, error) {
	if err := normalize(req); err != nil {
		return nil, err
	}
	t, err := s.mustFindOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	return s.overwrite(ctx, t, req)
}

func (s *TaskService) overwrite(ctx context.Context, t *domain.Task, req *dto.TaskRequest) (*dto.TaskResponse, error) {
	if err := s.checkTitle(ctx, req.Title, t.ID); err != nil {
		return nil, err
	}
	t.Title = req.Title
	t.Description = req.Description
	t.Status = req.Status
	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	return mapper.ToTaskResponse(t), nil
}

func (s *TaskService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.tasks.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.NotFound("%s%d", domain.TaskNotFoundID, id)
	}
	return nil
}

func (s *TaskService) DeleteForOwner(ctx context.Context, id, ownerID uint) error {
	deleted, err := s.tasks.DeleteOwned(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.NotFound("%s%d", domain.TaskNotFoundID, id)
	}
	return nil
}

func (s *TaskService) GetByTitle(ctx context.Context, title string) (*dto.TaskResponse, error) {
	t, err := s.mustFindByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	return mapper.ToTaskResponse(t), nil
}

func (s *TaskService) GetByTitleForOwner(ctx context.Context, title string, ownerID uint) (*dto.TaskResponse, error) {
	t, err := s.mustFindByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if t.UserID != ownerID {
		return nil, domain.NotFound("%s%s", domain.TaskNotFoundTitle, title)
	}
	return mapper.ToTaskResponse(t), nil
}

func (s *TaskService) mustFindByTitle(ctx context.Context, title string) (*domain.Task, error) {
	t, err := s.tasks.FindByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.NotFound("%s%s", domain.TaskNotFoundTitle, title)
	}
	return t, nil
}

func (s *TaskService) GetByUserID(ctx context.Context, userID uint) ([]dto.TaskResponse, error) {
	return list(s.tasks.FindByUserID(ctx, userID))
}

func (s *TaskService) GetByUsername(ctx context.Context, username string) ([]dto.TaskResponse, error) {
	return list(s.tasks.FindByUsername(ctx, username))
}

func (s *TaskService) GetByUsernameAndStatus(ctx context.Context, username string, status domain.TaskStatus) ([]dto.TaskResponse, error) {
	return list(s.tasks.FindByUsernameAndStatus(ctx, username, status))
}

func (s *TaskService) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	return s.tasks.ExistsByTitle(ctx, title)
}

func (s *TaskService) CountByStatus(ctx context.Context, status domain.TaskStatus) (int64, error) {
	return s.tasks.CountByStatus(ctx, status)
}

func list(ts []domain.Task, err error) ([]dto.TaskResponse, error) {
	if err != nil {
		return nil, err
	}
	return mapper.ToTaskResponses(ts), nil
}
