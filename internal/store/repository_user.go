package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/study-planner/internal/logger"
	"github.com/MKhiriev/study-planner/models"
)

// userRepository is the SQL-backed implementation of [UserRepository]. It
// handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned UserID.
//
// Error handling:
//   - unique-constraint violation on username → [ErrUsernameTaken].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(r.db.Dialect(), user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if r.db.Dialect() == DialectPostgres {
		if err := r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

			if isUniqueViolation(err) {
				return models.User{}, ErrUsernameTaken
			}
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}

		return user, nil
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		if isUniqueViolation(err) {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	newID, err := result.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error reading inserted id")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	user.UserID = int32(newID)

	return user, nil
}

// FindUserByUsername retrieves the user record matching the given username
// exactly (usernames are case-sensitive).
//
// Error handling:
//   - no matching row → [ErrNoUserWasFound].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByUsernameQuery(r.db.Dialect(), username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&foundUser.UserID, &foundUser.Username, &foundUser.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}
