package ez

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"gin-gorm-todolist/internal/core/auth"
	"gin-gorm-todolist/internal/domain"
	"gin-gorm-todolist/internal/transport/http/middleware"
	resp "gin-gorm-todolist/internal/transport/http/response"
)

// KeyClaims AuthJWT 放进 gin.Context 的 *auth.Claims
const KeyClaims = middleware.KeyClaims

// 绑定方式
type Binder string

const (
	BindJSON Binder = "json" // 从 JSON body 绑定
	BindNone Binder = "none" // 不绑定，自己从 c.Param 取
)

// Action 一个接口：I 入参，O 出参
type Action[I any, O any] struct {
	Method string // GET | POST | PUT | DELETE
	Path   string
	Binder Binder
	Status int      // 成功状态码，默认 200
	Roles  []string // 任一角色即可（需要分组已挂 AuthJWT）
	// O 为 string 时按纯文本返回；Status 为 204 时忽略 O
	Handler func(c *gin.Context, in *I) (O, error)
}

// Register 在分组上注册动作接口，错误统一走 resp.Fail
func Register[I any, O any](g gin.IRoutes, a Action[I, O]) {
	status := a.Status
	if status == 0 {
		status = http.StatusOK
	}
	h := func(c *gin.Context) {
		// 1) 角色
		if len(a.Roles) > 0 {
			claims, err := Principal(c)
			if err != nil {
				resp.Fail(c, err)
				return
			}
			if !slices.ContainsFunc(a.Roles, claims.HasRole) {
				resp.Fail(c, domain.Forbidden(resp.MsgForbidden))
				return
			}
		}

		// 2) 绑定入参
		var in I
		if a.Binder == BindJSON {
			if err := c.ShouldBindJSON(&in); err != nil {
				resp.Fail(c, domain.BadRequest("Invalid request body."))
				return
			}
		}

		// 3) 执行 + 统一错误映射
		out, err := a.Handler(c, &in)
		if err != nil {
			resp.Fail(c, err)
			return
		}
		resp.Write(c, status, out)
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		g.GET(a.Path, h)
	case http.MethodPut:
		g.PUT(a.Path, h)
	case http.MethodDelete:
		g.DELETE(a.Path, h)
	default: // 默认 POST
		g.POST(a.Path, h)
	}
}

// Principal 当前登录用户
func Principal(c *gin.Context) (*auth.Claims, error) {
	v, ok := c.Get(KeyClaims)
	if !ok {
		return nil, domain.Unauthenticated(resp.MsgUnauthorized, nil)
	}
	claims, ok := v.(*auth.Claims)
	if !ok || claims == nil {
		return nil, domain.Unauthenticated(resp.MsgUnauthorized, nil)
	}
	return claims, nil
}

// PrincipalID 当前登录用户 id
func PrincipalID(c *gin.Context) (uint, error) {
	claims, err := Principal(c)
	if err != nil {
		return 0, err
	}
	id, err := claims.UID()
	if err != nil {
		return 0, domain.Unauthenticated(resp.MsgUnauthorized, err)
	}
	return id, nil
}

// ParamID 路径上的数字 id
func ParamID(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, domain.BadRequest("Invalid %s: %s", name, raw)
	}
	return uint(n), nil
}

// ParamStatus 路径上的任务状态
func ParamStatus(c *gin.Context, name string) (domain.TaskStatus, error) {
	raw := c.Param(name)
	st, ok := domain.ParseTaskStatus(raw)
	if !ok {
		return "", domain.BadRequest("Invalid task status: %s", raw)
	}
	return st, nil
}
