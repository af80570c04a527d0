package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"gin-gorm-todolist/internal/core/config"
	mdw "gin-gorm-todolist/internal/transport/http/middleware"
)

type Options struct {
	Name  string // 指标里的 server 标签：api / admin
	Mode  string // gin mode，空则不改
	Limit config.Limit
}

// NewRouter 带统一中间件栈、/health、/metrics 的引擎；Limit 里为 0 的项不启用
func NewRouter(l *zap.Logger, o Options) *gin.Engine {
	if o.Mode != "" {
		gin.SetMode(o.Mode)
	}
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(mdw.RequestID(), mdw.Recovery(l), cors.New(corsConfig()))
	if o.Limit.RPS > 0 {
		r.Use(mdw.RateLimit(rate.Limit(o.Limit.RPS), max(1, o.Limit.Burst)))
	}
	if o.Limit.PerIPRPS > 0 {
		r.Use(mdw.RateLimitPerIP(rate.Limit(o.Limit.PerIPRPS), max(1, o.Limit.PerIPBurst)))
	}
	if o.Limit.MaxInFlight > 0 {
		r.Use(mdw.ConcurrencyLimit(o.Limit.MaxInFlight))
	}
	if o.Limit.MaxBodyMB > 0 {
		r.Use(mdw.MaxBodyBytes(o.Limit.MaxBodyMB << 20))
	}
	if o.Limit.TimeoutSec > 0 {
		r.Use(mdw.Timeout(time.Duration(o.Limit.TimeoutSec) * time.Second))
	}
	r.Use(mdw.Metrics(o.Name), mdw.AccessLog(l))

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", mdw.MetricsHandler())
	return r
}

// 前端要带 Authorization
func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AddAllowHeaders("Authorization", mdw.HeaderRequestID)
	cfg.AddExposeHeaders(mdw.HeaderRequestID)
	return cfg
}

// StartHTTP 阻塞到 Shutdown；正常关闭不算错误
func StartHTTP(srv *http.Server, l *zap.Logger) error {
	l.Info("http starting", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown 给在途请求留 d 的时间
func Shutdown(srv *http.Server, l *zap.Logger, d time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		l.Error("http shutdown", zap.String("addr", srv.Addr), zap.Error(err))
		return
	}
	l.Info("http stopped", zap.String("addr", srv.Addr))
}

func BuildServer(addr string, handler http.Handler, rt, wt, it time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       rt,
		ReadHeaderTimeout: rt,
		WriteTimeout:      wt,
		IdleTimeout:       it,
		MaxHeaderBytes:    1 << 20, // 1MB
	}
}

func Addr(host string, port int) string { return fmt.Sprintf("%s:%d", host, port) }
