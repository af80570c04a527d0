package domain

import (
	"errors"
	"fmt"
)

const (
	TaskNotFoundID        = "Task not found with Id: "
	TaskNotFoundTitle     = "Task not found with title: "
	TaskTitleExists       = "Task already exists with title: "
	UserNotFoundID        = "User not found with Id: "
	UserNotFoundUsername  = "User not found with UserName: "
	UsernameAlreadyExists = "Someone else has already registered with that username."
	EmailAlreadyExists    = "There is a user already created with that email."
	InvalidCredentials    = "Invalid username or password."
)

type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindBadRequest
	KindValidation
	KindConflict
	KindBadCredentials
	KindUnauthenticated
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindBadRequest:
		return "bad_request"
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindBadCredentials:
		return "bad_credentials"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	}
	return "internal"
}

// Error 业务错误，Msg 原样返回给调用方
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func BadRequest(format string, args ...any) error {
	return &Error{Kind: KindBadRequest, Msg: fmt.Sprintf(format, args...)}
}

func Validation(msg string) error { return &Error{Kind: KindValidation, Msg: msg} }

func Conflict(format string, args ...any) error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

func BadCredentials() error {
	return &Error{Kind: KindBadCredentials, Msg: InvalidCredentials}
}

func Unauthenticated(msg string, err error) error {
	return &Error{Kind: KindUnauthenticated, Msg: msg, Err: err}
}

func Forbidden(msg string) error { return &Error{Kind: KindForbidden, Msg: msg} }

// KindOf 非 *Error 一律视为内部错误
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// UniqueViolation 存储层唯一约束冲突；Column 为空表示没认出是哪一列
type UniqueViolation struct {
	Table  string
	Column string
	Cause  error
}

func (e *UniqueViolation) Error() string {
	if e.Column == "" {
		return "unique violation: " + e.Cause.Error()
	}
	return fmt.Sprintf("unique violation on %s.%s", e.Table, e.Column)
}

func (e *UniqueViolation) Unwrap() error { return e.Cause }
