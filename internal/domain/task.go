package domain

import (
	"context"
	"strings"
	"time"
)

type TaskStatus string

const (
	StatusPending    TaskStatus = "PENDING"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// ParseTaskStatus 大小写不敏感；空串返回 false
func ParseTaskStatus(s string) (TaskStatus, bool) {
	st := TaskStatus(strings.ToUpper(strings.TrimSpace(s)))
	return st, st.Valid()
}

type Task struct {
	ID          uint       `gorm:"primaryKey"`
	Title       string     `gorm:"size:191;not null;uniqueIndex:uk_tasks_title"`
	Description string     `gorm:"type:text"`
	Status      TaskStatus `gorm:"size:16;not null;default:PENDING;index"`
	UserID      uint       `gorm:"not null;index"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
}

func (Task) TableName() string { return "tasks" }

type TaskRepository interface {
	Create(ctx context.Context, t *Task) error
	FindByID(ctx context.Context, id uint) (*Task, error)
	FindByTitle(ctx context.Context, title string) (*Task, error)
	FindAll(ctx context.Context) ([]Task, error)
	FindByUserID(ctx context.Context, userID uint) ([]Task, error)
	FindByUsername(ctx context.Context, username string) ([]Task, error)
	FindByUsernameAndStatus(ctx context.Context, username string, status TaskStatus) ([]Task, error)
	Update(ctx context.Context, t *Task) error
	Delete(ctx context.Context, id uint) (bool, error)
	DeleteOwned(ctx context.Context, id, userID uint) (bool, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	CountByStatus(ctx context.Context, status TaskStatus) (int64, error)
}
