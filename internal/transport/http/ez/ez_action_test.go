package ez

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"gin-gorm-todolist/internal/core/auth"
	"gin-gorm-todolist/internal/domain"
)

type echoIn struct {
	Name string `json:"name"`
}

func newEngine(claims *auth.Claims) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if claims != nil {
		r.Use(func(c *gin.Context) { c.Set(KeyClaims, claims); c.Next() })
	}
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterBindsAndWrites(t *testing.T) {
	r := newEngine(nil)
	Register(r, Action[echoIn, gin.H]{
		Method: http.MethodPost, Path: "/echo", Binder: BindJSON, Status: http.StatusCreated,
		Handler: func(c *gin.Context, in *echoIn) (gin.H, error) { return gin.H{"name": in.Name}, nil },
	})

	w := do(r, http.MethodPost, "/echo", `{"name":"x"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"name":"x"}`, w.Body.String())

	w = do(r, http.MethodPost, "/echo", `{bad`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body.", w.Body.String())
}

func TestRegisterMapsErrors(t *testing.T) {
	r := newEngine(nil)
	Register(r, Action[struct{}, string]{
		Method: http.MethodGet, Path: "/items/:id", Binder: BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (string, error) {
			id, err := ParamID(c, "id")
			if err != nil {
				return "", err
			}
			if id == 7 {
				return "", errors.New("db down")
			}
			return "", domain.NotFound("Task not found with Id: %d", id)
		},
	})

	w := do(r, http.MethodGet, "/items/3", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Task not found with Id: 3", w.Body.String())

	w = do(r, http.MethodGet, "/items/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid id: abc", w.Body.String())

	w = do(r, http.MethodGet, "/items/7", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRegisterRoles(t *testing.T) {
	handler := Action[struct{}, string]{
		Method: http.MethodGet, Path: "/admin", Roles: []string{domain.RoleAdmin},
		Handler: func(*gin.Context, *struct{}) (string, error) { return "ok", nil },
	}

	r := newEngine(nil)
	Register(r, handler)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/admin", "").Code)

	r = newEngine(&auth.Claims{Roles: []string{domain.RoleUser}})
	Register(r, handler)
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodGet, "/admin", "").Code)

	r = newEngine(&auth.Claims{Roles: []string{domain.RoleAdmin}})
	Register(r, handler)
	w := do(r, http.MethodGet, "/admin", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestParamStatus(t *testing.T) {
	r := newEngine(nil)
	Register(r, Action[struct{}, domain.TaskStatus]{
		Method: http.MethodGet, Path: "/s/:status",
		Handler: func(c *gin.Context, _ *struct{}) (domain.TaskStatus, error) { return ParamStatus(c, "status") },
	})
	w := do(r, http.MethodGet, "/s/done", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `"DONE"`, w.Body.String())

	w = do(r, http.MethodGet, "/s/nope", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid task status: nope", w.Body.String())
}
