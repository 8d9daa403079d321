package store

import (
	"database/sql"
	"strings"

	"github.com/MKhiriev/study-planner/internal/logger"
)

// Dialect identifies the SQL backend a DB handle talks to. The two backends
// differ only where the SQL standard leaves room: placeholder format, id
// retrieval on insert, and unique-violation error shapes.
type Dialect int

const (
	// DialectPostgres is the primary production backend (pgx stdlib driver).
	DialectPostgres Dialect = iota

	// DialectSQLite is the single-file backend for local and dev
	// deployments (mattn/go-sqlite3).
	DialectSQLite
)

// DB wraps a pooled database/sql connection together with its dialect.
// All repositories share one DB value; connection pooling, statement
// timeouts, and write serialisation are delegated to database/sql and the
// underlying engine.
type DB struct {
	*sql.DB
	dialect Dialect
	logger  *logger.Logger
}

// Dialect returns the SQL dialect of the underlying connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// isPostgresDSN reports whether the DSN targets PostgreSQL. Anything else
// (a bare file path, ":memory:") is treated as a SQLite database.
func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
