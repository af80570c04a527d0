package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("%s%d", TaskNotFoundID, 7)))
	assert.Equal(t, KindConflict, KindOf(fmt.Errorf("wrap: %w", Conflict(UsernameAlreadyExists))))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, KindInternal, KindOf(nil))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "Task not found with Id: 7", NotFound("%s%d", TaskNotFoundID, 7).Error())

	cause := errors.New("token expired")
	err := Unauthenticated("", cause)
	assert.Equal(t, "token expired", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "forbidden", (&Error{Kind: KindForbidden}).Error())
}

func TestUniqueViolation(t *testing.T) {
	cause := errors.New("UNIQUE constraint failed: users.username")
	uv := &UniqueViolation{Table: "users", Column: "username", Cause: cause}
	assert.Equal(t, "unique violation on users.username", uv.Error())
	assert.ErrorIs(t, uv, cause)

	var target *UniqueViolation
	assert.True(t, errors.As(fmt.Errorf("create: %w", uv), &target))
}

func TestParseTaskStatus(t *testing.T) {
	st, ok := ParseTaskStatus("in_progress")
	assert.True(t, ok)
	assert.Equal(t, StatusInProgress, st)

	_, ok = ParseTaskStatus("ARCHIVED")
	assert.False(t, ok)
	_, ok = ParseTaskStatus("")
	assert.False(t, ok)
}

func TestUserHasRole(t *testing.T) {
	u := &User{Roles: []string{RoleUser}}
	assert.True(t, u.HasRole(RoleUser))
	assert.False(t, u.HasRole(RoleAdmin))
}
