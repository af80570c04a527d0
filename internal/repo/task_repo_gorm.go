package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gin-gorm-todolist/internal/domain"
)

type TaskRepo struct{ db *gorm.DB }

func NewTaskRepo(db *gorm.DB) *TaskRepo { return &TaskRepo{db: db} }

func (r *TaskRepo) Create(ctx context.Context, t *domain.Task) error {
	return classify("tasks", r.db.WithContext(ctx).Create(t).Error, "title")
}

func (r *TaskRepo) FindByID(ctx context.Context, id uint) (*domain.Task, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *TaskRepo) FindByTitle(ctx context.Context, title string) (*domain.Task, error) {
	return r.first(ctx, "title = ?", title)
}

func (r *TaskRepo) first(ctx context.Context, query string, args ...any) (*domain.Task, error) {
	var t domain.Task
	err := r.db.WithContext(ctx).Where(query, args...).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepo) FindAll(ctx context.Context) ([]domain.Task, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *TaskRepo) FindByUserID(ctx context.Context, userID uint) ([]domain.Task, error) {
	return r.find(r.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (r *TaskRepo) FindByUsername(ctx context.Context, username string) ([]domain.Task, error) {
	return r.find(r.byUsername(ctx, username))
}

func (r *TaskRepo) FindByUsernameAndStatus(ctx context.Context, username string, status domain.TaskStatus) ([]domain.Task, error) {
	return r.find(r.byUsername(ctx, username).Where("tasks.status = ?", status))
}

func (r *TaskRepo) byUsername(ctx context.Context, username string) *gorm.DB {
	return r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = tasks.user_id").
		Where("users.username = ?", username)
}

func (r *TaskRepo) find(q *gorm.DB) ([]domain.Task, error) {
	tasks := make([]domain.Task, 0)
	if err := q.Order("tasks.id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepo) Update(ctx context.Context, t *domain.Task) error {
	return classify("tasks", r.db.WithContext(ctx).Save(t).Error, "title")
}

// Delete 单条条件删除，RowsAffected 为 0 即不存在
func (r *TaskRepo) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Task{})
	return res.RowsAffected > 0, res.Error
}

func (r *TaskRepo) DeleteOwned(ctx context.Context, id, userID uint) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Task{})
	return res.RowsAffected > 0, res.Error
}

func (r *TaskRepo) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	return exists(r.db.WithContext(ctx).Model(&domain.Task{}).Where("title = ?", title))
}

func (r *TaskRepo) CountByStatus(ctx context.Context, status domain.TaskStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Task{}).Where("status = ?", status).Count(&n).Error
	return n, err
}
