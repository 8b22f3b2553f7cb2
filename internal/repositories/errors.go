package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Storage errors. Repositories wrap them with the offending entity.
var (
	ErrDuplicateKey = errors.New("duplicate key")
	ErrNotFound     = errors.New("not found")
	ErrReferenced   = errors.New("record is still referenced")
)

type violation int

const (
	violationNone violation = iota
	violationUnique
	violationForeignKey
)

// classify maps driver errors of PostgreSQL and SQLite to a constraint violation kind.
func classify(err error) violation {
	if err == nil {
		return violationNone
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return violationUnique
		case "23503":
			return violationForeignKey
		}
		return violationNone
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return violationUnique
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return violationForeignKey
		}
	}

	return violationNone
}
