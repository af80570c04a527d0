package response

import (
	"net/http"

	"gin-gorm-todolist/internal/domain"
)

const (
	MsgUsernameTaken = "Username is already taken."
	MsgEmailTaken    = "Someone else has already registered with that email."
	MsgTitleTaken    = "A task with that title already exists."
	MsgConflict      = "A conflict occurred: "
	MsgInternal      = "An error occurred while processing your request."
	MsgUnauthorized  = "Unauthorized."
	MsgForbidden     = "Access denied."
)

// KindStatus 业务错误类型 → HTTP 状态码
var KindStatus = map[domain.Kind]int{
	domain.KindNotFound:        http.StatusNotFound,
	domain.KindBadRequest:      http.StatusBadRequest,
	domain.KindValidation:      http.StatusBadRequest,
	domain.KindBadCredentials:  http.StatusBadRequest,
	domain.KindConflict:        http.StatusConflict,
	domain.KindUnauthenticated: http.StatusUnauthorized,
	domain.KindForbidden:       http.StatusForbidden,
	domain.KindInternal:        http.StatusInternalServerError,
}

// conflictMsg 按冲突列给固定文案
var conflictMsg = map[string]string{
	"username": MsgUsernameTaken,
	"email":    MsgEmailTaken,
	"title":    MsgTitleTaken,
}
