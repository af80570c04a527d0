package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"gin-gorm-todolist/internal/core/auth"
	"gin-gorm-todolist/internal/domain"
	resp "gin-gorm-todolist/internal/transport/http/response"
)

func init() { gin.SetMode(gin.TestMode) }

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newJWTer() *auth.JWTer {
	return &auth.JWTer{Secret: []byte("test-secret"), Issuer: "todolist", TTL: time.Hour}
}

func protected(j *auth.JWTer, role string) *gin.Engine {
	r := gin.New()
	r.GET("/p", AuthJWT(j, role), func(c *gin.Context) {
		v, _ := c.Get(KeyClaims)
		c.String(http.StatusOK, v.(*auth.Claims).Username)
	})
	return r
}

func bearer(tok string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	return req
}

func TestAuthJWT(t *testing.T) {
	j := newJWTer()
	userTok, err := j.Issue(2, "alice", []string{domain.RoleUser})
	require.NoError(t, err)
	adminTok, err := j.Issue(1, "David", []string{domain.RoleAdmin})
	require.NoError(t, err)

	t.Run("missing", func(t *testing.T) {
		w := serve(protected(j, ""), bearer(""))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
	t.Run("garbage", func(t *testing.T) {
		w := serve(protected(j, ""), bearer("not-a-jwt"))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
	t.Run("other secret", func(t *testing.T) {
		other := &auth.JWTer{Secret: []byte("other"), Issuer: "todolist", TTL: time.Hour}
		tok, err := other.Issue(2, "alice", nil)
		require.NoError(t, err)
		w := serve(protected(j, ""), bearer(tok))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
	t.Run("ok", func(t *testing.T) {
		w := serve(protected(j, ""), bearer(userTok))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "alice", w.Body.String())
	})
	t.Run("role missing", func(t *testing.T) {
		w := serve(protected(j, domain.RoleAdmin), bearer(userTok))
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, resp.MsgForbidden, w.Body.String())
	})
	t.Run("role ok", func(t *testing.T) {
		w := serve(protected(j, domain.RoleAdmin), bearer(adminTok))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRateLimitPerIP(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitPerIP(0.001, 1))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := func(ip string) *http.Request {
		rq := httptest.NewRequest(http.MethodGet, "/", nil)
		rq.RemoteAddr = ip + ":1234"
		return rq
	}
	assert.Equal(t, http.StatusNoContent, serve(r, req("10.0.0.1")).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, req("10.0.0.1")).Code)
	assert.Equal(t, http.StatusNoContent, serve(r, req("10.0.0.2")).Code)
}

func TestMaxBodyBytes(t *testing.T) {
	r := gin.New()
	r.Use(MaxBodyBytes(8))
	r.POST("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := serve(r, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("0123456789")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("0123")))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestTimeout(t *testing.T) {
	r := gin.New()
	r.Use(Timeout(10 * time.Millisecond))
	r.GET("/", func(c *gin.Context) { <-c.Request.Context().Done() })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(zap.NewNop()))
	r.GET("/", func(*gin.Context) { panic("boom") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, resp.MsgInternal, w.Body.String())
}

func TestRequestIDAndAccessLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(RequestID(), AccessLog(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "hi") })
	r.GET("/fail", func(c *gin.Context) { resp.Fail(c, assert.AnError) })

	req := httptest.NewRequest(http.MethodGet, "/ok?password=secret&q=1", nil)
	req.Header.Set(HeaderRequestID, "rid-1")
	w := serve(r, req)
	assert.Equal(t, "rid-1", w.Header().Get(HeaderRequestID))

	w = serve(r, httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))

	entries := logs.All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	assert.Equal(t, "rid-1", first["rid"])
	assert.EqualValues(t, http.StatusOK, first["status"])
	assert.EqualValues(t, 2, first["size"])
	q, ok := first["query"].(map[string][]string)
	require.True(t, ok)
	assert.Equal(t, []string{"****"}, q["password"])
	assert.Equal(t, []string{"1"}, q["q"])

	assert.Equal(t, zap.ErrorLevel, entries[1].Level)
	assert.Contains(t, entries[1].ContextMap()["err"], assert.AnError.Error())
}

func TestMetricsLabelsRoutes(t *testing.T) {
	r := gin.New()
	r.Use(Metrics("test"))
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", MetricsHandler())

	serve(r, httptest.NewRequest(http.MethodGet, "/items/1", nil))
	w := serve(r, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `todolist_http_requests_total{method="GET",path="/items/:id",server="test",status="204"}`)
}
