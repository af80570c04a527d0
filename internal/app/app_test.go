package app

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gin-gorm-todolist/internal/core/config"
	"gin-gorm-todolist/internal/domain"
	"gin-gorm-todolist/internal/dto"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.App{Env: "local"},
		JWT: config.JWT{Secret: "s", Issuer: "todolist", AccessTokenTTLMin: 5},
		DB: config.DB{
			Driver:       "sqlite",
			DSN:          "file::memory:",
			MaxOpenConns: 1,
			MaxIdleConns: 1,
			AutoMigrate:  true,
			LogLevel:     "silent",
		},
		Seed: config.Seed{Username: "David", Email: "david@email.com", Password: "123456"},
	}
}

func TestNewSeedsAdmin(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, testConfig(), zap.NewNop())
	require.NoError(t, err)
	defer a.Close()

	u, err := a.Services.Users.GetByUsername(ctx, "David")
	require.NoError(t, err)
	assert.Equal(t, []string{domain.RoleAdmin}, u.Roles)
	assert.Nil(t, a.JWT.Revoker)

	// 再跑一次不报错也不重复建
	a.seed(ctx)
	all, err := a.Services.Users.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	tok, err := a.Services.Auth.Login(ctx, loginReq("David", "123456"))
	require.NoError(t, err)
	assert.NotEmpty(t, tok.Token)
}

func TestNewWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig()
	cfg.Redis.Addr = mr.Addr()

	a, err := New(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer a.Close()
	assert.NotNil(t, a.JWT.Revoker)
}

func TestNewRedisUnreachable(t *testing.T) {
	cfg := testConfig()
	cfg.Redis.Addr = "127.0.0.1:1"
	_, err := New(context.Background(), cfg, zap.NewNop())
	assert.Error(t, err)
}

func TestNewUnsupportedDriver(t *testing.T) {
	cfg := testConfig()
	cfg.DB.Driver = "oracle"
	_, err := New(context.Background(), cfg, zap.NewNop())
	assert.Error(t, err)
}

func TestServerOptions(t *testing.T) {
	cfg := testConfig()
	cfg.Limit.RPS = 5
	a := &App{Cfg: cfg}
	o := a.ServerOptions("api")
	assert.Equal(t, "api", o.Name)
	assert.Equal(t, gin.DebugMode, o.Mode)
	assert.EqualValues(t, 5, o.Limit.RPS)

	cfg.App.Env = "prod"
	assert.Equal(t, gin.ReleaseMode, a.ServerOptions("admin").Mode)
}

func loginReq(u, p string) *dto.LoginRequest { return &dto.LoginRequest{Username: u, Password: p} }
