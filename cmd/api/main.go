package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gin-gorm-todolist/internal/app"
	"gin-gorm-todolist/internal/core/config"
	"gin-gorm-todolist/internal/core/logger"
	"gin-gorm-todolist/internal/core/server"
	"gin-gorm-todolist/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.MustLoad(os.Getenv("CONFIG_PATH"))
	log, cleanup := app.NewLogger(cfg.Log)
	defer cleanup()
	defer logger.RedirectStdLog(log, zapcore.InfoLevel)()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// DB / redis / 种子账号（失败直接 Fatal）
	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal("bootstrap failed", zap.Error(err))
	}
	defer a.Close()

	// 路由（用户端）
	r := router.NewAPIEngine(log, a.ServerOptions("api"), a.JWT, a.Services)

	// HTTP Server
	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	// 启动日志
	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("todolist api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("welcome", baseURL+"/public/welcome"),
	)

	// 异步启动
	errc := make(chan error, 1)
	go func() { errc <- server.StartHTTP(srv, log) }()

	// 优雅关闭
	select {
	case err := <-errc:
		if err != nil {
			log.Error("todolist api start FAILED", zap.Error(err))
		}
	case <-ctx.Done():
		server.Shutdown(srv, log, 10*time.Second)
	}
	log.Info("todolist api stopped gracefully")
}
