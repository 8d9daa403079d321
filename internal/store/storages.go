package store

import (
	"context"

	"github.com/MKhiriev/study-planner/internal/config"
	"github.com/MKhiriev/study-planner/internal/logger"
)

// Storages aggregates every repository of the application over one shared
// database connection.
type Storages struct {
	UserRepository    UserRepository
	SessionRepository SessionRepository
	RecordRepository  RecordRepository
}

// NewStorages opens the database described by cfg — PostgreSQL for
// postgres:// DSNs (migrated via goose), a SQLite file otherwise — and wires
// all repositories on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	if isPostgresDSN(cfg.DB.DSN) {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		SessionRepository: NewSessionRepository(db, log),
		RecordRepository:  NewRecordRepository(db, log),
	}, nil
}
