package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/study-planner/internal/config"
	"github.com/MKhiriev/study-planner/internal/logger"
)

// sqliteSchema bootstraps the SQLite backend at connect time. The goose
// migrations in migrations/ target PostgreSQL only; the file-backed dev
// database keeps its schema in these idempotent statements instead.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		token      TEXT NOT NULL UNIQUE,
		user_id    INTEGER NOT NULL,
		issued_at  TIMESTAMP NOT NULL,
		expires_at TIMESTAMP NOT NULL,
		revoked    BOOLEAN NOT NULL DEFAULT FALSE
	);`,
	`CREATE TABLE IF NOT EXISTS courses (
		id      INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		name    TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS topics (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id   INTEGER NOT NULL,
		course_id INTEGER NOT NULL,
		name      TEXT NOT NULL,
		details   TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS study_goals (
		id       INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id  INTEGER NOT NULL,
		topic_id INTEGER NOT NULL,
		deadline TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS exams (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id   INTEGER NOT NULL,
		course_id INTEGER NOT NULL,
		name      TEXT NOT NULL,
		date      TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS todos (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id   INTEGER NOT NULL,
		name      TEXT NOT NULL,
		deadline  TEXT NOT NULL,
		details   TEXT NOT NULL,
		completed BOOLEAN NOT NULL
	);`,
}

func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// db will be in file
	if cfg.DSN != ":memory:" {
		if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
			return nil, fmt.Errorf("error creating database file")
		}
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	for _, stmt := range sqliteSchema {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error bootstrapping schema")
			return nil, fmt.Errorf("error bootstrapping sqlite schema: %w", err)
		}
	}

	db := &DB{
		DB:      conn,
		dialect: DialectSQLite,
		logger:  log,
	}

	return db, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		return f.Close()
	}

	return nil
}
