package database

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

const (
	pgUniqueViolation   = "23505"
	mysqlDuplicateEntry = 1062
)

// UniqueViolation 判断是否唯一约束冲突，返回驱动给出的约束/列描述（小写）
//
//	postgres: constraint name + detail, e.g. "uk_users_username key (username)=(bob) already exists."
//	mysql:    "duplicate entry 'bob' for key 'users.uk_users_username'"
//	sqlite:   "unique constraint failed: users.username"
func UniqueViolation(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != pgUniqueViolation {
			return "", false
		}
		return strings.ToLower(pgErr.ConstraintName + " " + pgErr.Detail), true
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		if myErr.Number != mysqlDuplicateEntry {
			return "", false
		}
		return strings.ToLower(myErr.Message), true
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		if liteErr.ExtendedCode != sqlite3.ErrConstraintUnique && liteErr.ExtendedCode != sqlite3.ErrConstraintPrimaryKey {
			return "", false
		}
		return strings.ToLower(liteErr.Error()), true
	}

	// 兜底：驱动错误被包装成字符串的情况
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique constraint") {
		return msg, true
	}
	return "", false
}
