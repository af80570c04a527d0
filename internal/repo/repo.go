package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"gin-gorm-todolist/internal/core/database"
	"gin-gorm-todolist/internal/domain"
)

var errNothingDeleted = errors.New("nothing deleted")

// AutoMigrate users 必须先于 tasks
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.User{}, &domain.Task{})
}

func exists(q *gorm.DB) (bool, error) {
	var n int64
	if err := q.Limit(1).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// classify 唯一约束冲突转成 domain.UniqueViolation，并尽量认出是哪一列
func classify(table string, err error, columns ...string) error {
	if err == nil {
		return nil
	}
	detail, ok := database.UniqueViolation(err)
	if !ok {
		return err
	}
	uv := &domain.UniqueViolation{Table: table, Cause: err}
	for _, col := range columns {
		if strings.Contains(detail, col) {
			uv.Column = col
			break
		}
	}
	return uv
}
