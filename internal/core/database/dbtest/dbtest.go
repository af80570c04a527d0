// Package dbtest 测试用的内存 sqlite
package dbtest

import (
	"testing"

	"gorm.io/gorm"

	"gin-gorm-todolist/internal/core/database"
)

// New 单连接内存库，连接不关库就不丢；migrate 为空时不建表
func New(t testing.TB, migrate func(*gorm.DB) error) *gorm.DB {
	t.Helper()
	db, err := database.NewGorm(database.Opts{
		Driver:       "sqlite",
		DSN:          "file::memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "silent",
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if migrate != nil {
		if err := migrate(db); err != nil {
			t.Fatalf("migrate: %v", err)
		}
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
