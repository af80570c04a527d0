// Package app 两个进程（api / admin）共用的启动装配。
package app

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gin-gorm-todolist/internal/core/auth"
	"gin-gorm-todolist/internal/core/cache"
	"gin-gorm-todolist/internal/core/config"
	"gin-gorm-todolist/internal/core/database"
	"gin-gorm-todolist/internal/core/logger"
	"gin-gorm-todolist/internal/core/server"
	"gin-gorm-todolist/internal/domain"
	"gin-gorm-todolist/internal/repo"
	"gin-gorm-todolist/internal/service"
	"gin-gorm-todolist/internal/transport/http/router"
)

// App 装配好的依赖；Close 按相反顺序释放
type App struct {
	Cfg      *config.Config
	Log      *zap.Logger
	DB       *gorm.DB
	JWT      *auth.JWTer
	Services router.Services

	closers []func()
}

// NewLogger 配了 log.file 就同时写切割文件
func NewLogger(c config.Log) (*zap.Logger, func()) {
	if c.File != "" {
		return logger.NewWithRotate(c.Level, c.JSON, c.File, c.MaxSizeMB, c.MaxBackups, c.MaxAgeDays, c.Compress)
	}
	return logger.New(c.Level, c.JSON)
}

// New 打开 DB、迁移、建 admin、接 redis；任一步失败直接返回
func New(ctx context.Context, cfg *config.Config, l *zap.Logger) (*App, error) {
	a := &App{Cfg: cfg, Log: l}

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
		Logger:             l,
	})
	if err != nil {
		return nil, err
	}
	a.DB = db
	if sqlDB, err := db.DB(); err == nil {
		a.closers = append(a.closers, func() { _ = sqlDB.Close() })
	}
	l.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := repo.AutoMigrate(db); err != nil {
			a.Close()
			return nil, err
		}
		l.Info("automigrate done")
	}

	a.JWT = &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	// redis 可选：不配就不支持注销
	if cfg.Redis.Addr != "" {
		rc := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := rc.Ping(pctx)
		cancel()
		if err != nil {
			_ = rc.Close()
			a.Close()
			return nil, err
		}
		a.JWT.Revoker = rc
		a.closers = append(a.closers, func() { _ = rc.Close() })
		l.Info("redis connected", zap.String("addr", cfg.Redis.Addr))
	} else {
		l.Warn("redis not configured, logout will not revoke tokens")
	}

	users, tasks := repo.NewUserRepo(db), repo.NewTaskRepo(db)
	a.Services = router.Services{
		Users: service.NewUserService(users),
		Tasks: service.NewTaskService(tasks, users),
		Auth:  service.NewAuthService(users, a.JWT),
	}

	a.seed(ctx)
	return a, nil
}

// seed api 和 admin 可能同时启动，唯一冲突说明另一边已经建好
func (a *App) seed(ctx context.Context) {
	s := a.Cfg.Seed
	if s.Username == "" {
		return
	}
	created, err := a.Services.Users.EnsureAdmin(ctx, s.Username, s.Email, s.Password)
	var uv *domain.UniqueViolation
	switch {
	case errors.As(err, &uv):
		a.Log.Info("admin already seeded", zap.String("username", s.Username))
	case err != nil:
		a.Log.Error("seed admin", zap.String("username", s.Username), zap.Error(err))
	case created:
		a.Log.Info("admin seeded", zap.String("username", s.Username))
	}
}

// ServerOptions name 用作指标标签
func (a *App) ServerOptions(name string) server.Options {
	mode := gin.DebugMode
	if a.Cfg.App.Env == "prod" || a.Cfg.App.Env == "production" {
		mode = gin.ReleaseMode
	}
	return server.Options{Name: name, Mode: mode, Limit: a.Cfg.Limit}
}

func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
