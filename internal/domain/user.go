package domain

import (
	"context"
	"slices"
	"time"
)

const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

type User struct {
	ID        uint      `gorm:"primaryKey"`
	Username  string    `gorm:"size:50;not null;uniqueIndex:uk_users_username"`
	Email     string    `gorm:"size:191;not null;uniqueIndex:uk_users_email"`
	Password  string    `gorm:"size:100;not null"`
	Roles     []string  `gorm:"serializer:json;size:255"`
	Tasks     []Task    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string { return "users" }

func (u *User) HasRole(role string) bool { return slices.Contains(u.Roles, role) }

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindAll(ctx context.Context) ([]User, error)
	Update(ctx context.Context, u *User) error
	// Delete 连同任务一起删除，返回是否真的删到了
	Delete(ctx context.Context, id uint) (bool, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
}
