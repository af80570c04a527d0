package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMySQLDSN(t *testing.T) {
	cases := []struct {
		name, in, user, pass, want string
	}{
		{"native kept", "u:p@tcp(127.0.0.1:3306)/todo", "", "", "u:p@tcp(127.0.0.1:3306)/todo"},
		{"url", "mysql://u:p@db:3306/todo", "", "", "u:p@tcp(db:3306)/todo?charset=utf8mb4&parseTime=true"},
		{"jdbc with override", "jdbc:mysql://db:3306/todo?useSSL=false&serverTimezone=UTC", "root", "pw",
			"root:pw@tcp(db:3306)/todo?charset=utf8mb4&loc=UTC&parseTime=true&tls=false"},
		{"empty", "  ", "", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalizeMySQLDSN(tc.in, tc.user, tc.pass))
		})
	}
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "file::memory:?_foreign_keys=on", sqliteDSN(""))
	assert.Equal(t, "todo.db?_foreign_keys=on", sqliteDSN("todo.db"))
	assert.Equal(t, "todo.db?cache=shared&_foreign_keys=on", sqliteDSN("todo.db?cache=shared"))
	assert.Equal(t, "todo.db?_fk=1", sqliteDSN("todo.db?_fk=1"))
}

func TestMaskDSN(t *testing.T) {
	assert.Equal(t, "root:****@tcp(db:3306)/todo", maskDSN("root:secret@tcp(db:3306)/todo"))
}

func TestNewGormUnsupported(t *testing.T) {
	_, err := NewGorm(Opts{Driver: "oracle"})
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

type kv struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex:uk_kvs_name"`
}

func TestUniqueViolationSqlite(t *testing.T) {
	db, err := NewGorm(Opts{Driver: "sqlite", DSN: "file::memory:", MaxOpenConns: 1, MaxIdleConns: 1, LogLevel: "silent"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&kv{}))
	require.NoError(t, db.Create(&kv{Name: "a"}).Error)

	err = db.Create(&kv{Name: "a"}).Error
	require.Error(t, err)
	detail, ok := UniqueViolation(err)
	assert.True(t, ok)
	assert.Contains(t, detail, "kvs.name")
}

func TestUniqueViolationDrivers(t *testing.T) {
	detail, ok := UniqueViolation(fmt.Errorf("wrapped: %w", &pgconn.PgError{
		Code: "23505", ConstraintName: "uk_users_email", Detail: "Key (email)=(a@b.c) already exists.",
	}))
	assert.True(t, ok)
	assert.Contains(t, detail, "uk_users_email")

	_, ok = UniqueViolation(&pgconn.PgError{Code: "23503"})
	assert.False(t, ok)

	detail, ok = UniqueViolation(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'bob' for key 'users.uk_users_username'"})
	assert.True(t, ok)
	assert.Contains(t, detail, "uk_users_username")

	_, ok = UniqueViolation(errors.New("connection refused"))
	assert.False(t, ok)
	_, ok = UniqueViolation(nil)
	assert.False(t, ok)
}
