package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/study-planner/internal/logger"
	"github.com/MKhiriev/study-planner/models"
)

// sessionRepository is the SQL-backed implementation of [SessionRepository].
// It owns the "sessions" table holding every issued bearer token.
//
// Token uniqueness is enforced by the table's unique index, not by
// application-level locking; concurrent issuance for the same user is safe.
type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession persists a freshly issued token record and returns it with
// the server-assigned SessionID.
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateSessionQuery(r.db.Dialect(), session)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error building query")
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if r.db.Dialect() == DialectPostgres {
		if err := r.db.QueryRowContext(ctx, query, args...).Scan(&session.SessionID); err != nil {
			log.Err(err).Str("func", "*sessionRepository.CreateSession").Int32("user_id", session.UserID).Msg("error inserting session")
			return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return session, nil
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Int32("user_id", session.UserID).Msg("error inserting session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	newID, err := result.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error reading inserted id")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	session.SessionID = newID

	return session, nil
}

// ResolveToken finds the usable session for the given token value as of now.
//
// The validity predicate (token match, not revoked, expires_at in the
// future) is evaluated inside the query: an unknown, revoked, or expired
// token all yield [ErrNoSessionWasFound] with nothing to distinguish them.
// Expired rows are never mutated here — expiry is purely lazy.
func (r *sessionRepository) ResolveToken(ctx context.Context, token string, now time.Time) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildResolveSessionQuery(r.db.Dialect(), token, now)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.ResolveToken").Msg("error building query")
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	session := models.Session{Token: token}
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&session.SessionID, &session.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrNoSessionWasFound
		}

		log.Err(err).Str("func", "*sessionRepository.ResolveToken").Msg("error: scanning error")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return session, nil
}

// RevokeToken marks the session revoked and returns how many rows were
// flipped. Revoking an unknown or already-revoked token affects zero rows
// and is not an error; the count is logged for observability.
func (r *sessionRepository) RevokeToken(ctx context.Context, token string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildRevokeSessionQuery(r.db.Dialect(), token)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.RevokeToken").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.RevokeToken").Msg("error revoking session")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.RevokeToken").Msg("error reading affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Int64("revoked_rows", affected).Msg("session revocation executed")

	return affected, nil
}
