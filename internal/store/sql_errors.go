package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	sqlite3 "github.com/mattn/go-sqlite3"
)

// isUniqueViolation reports whether err is a unique-constraint violation in
// either supported dialect. Used to map duplicate usernames to
// [ErrUsernameTaken] regardless of the backend.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	if postgresError(err) == pgerrcode.UniqueViolation {
		return true
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}
