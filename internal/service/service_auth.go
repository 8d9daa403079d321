package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/study-planner/internal/config"
	"github.com/MKhiriev/study-planner/internal/crypto"
	"github.com/MKhiriev/study-planner/internal/logger"
	"github.com/MKhiriev/study-planner/internal/store"
	"github.com/MKhiriev/study-planner/models"
)

// authService is the concrete implementation of AuthService. It handles
// user registration, credential verification, and the session token
// lifecycle using the user and session repositories for persistence,
// Argon2id for password hashing, and the OS CSPRNG for token values.
type authService struct {
	userRepository    store.UserRepository
	sessionRepository store.SessionRepository

	// tokenTTL is the fixed duration after which an issued token becomes
	// unconditionally invalid.
	tokenTTL time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// repositories and populated with the token TTL from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, sessionRepository store.SessionRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		tokenTTL:          cfg.TokenTTL,
		logger:            logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that both Username and Password are non-empty, hashes the
// password with Argon2id (fresh random salt, parameters embedded in the
// stored hash), and delegates persistence to the UserRepository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if Username or Password is empty.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken — see store.ErrUsernameTaken).
func (a *authService) RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if creds.Username == "" || creds.Password == "" {
		log.Error().Str("username", creds.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := crypto.HashPassword(creds.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     creds.Username,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It validates that both Username and Password are non-empty, looks up the
// account by username, and verifies the password against the stored
// Argon2id hash in constant time.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if Username or Password is empty.
//   - A wrapped storage error if the repository lookup fails (e.g. user not
//     found — see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if creds.Username == "" || creds.Password == "" {
		log.Error().Str("username", creds.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	ok, err := crypto.VerifyPassword(creds.Password, foundUser.PasswordHash)
	if err != nil {
		log.Err(err).Int32("id", foundUser.UserID).Msg("stored password hash could not be verified")
		return models.User{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Warn().Int32("id", foundUser.UserID).Str("username", foundUser.Username).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// IssueToken generates a cryptographically random opaque token for the
// given user, valid for the configured TTL, and persists the session
// record. A user may hold any number of concurrent valid tokens.
func (a *authService) IssueToken(ctx context.Context, userID int32) (models.Session, error) {
	log := logger.FromContext(ctx)

	token, err := crypto.GenerateToken()
	if err != nil {
		log.Err(err).Int32("user_id", userID).Msg("token generation failed")
		return models.Session{}, fmt.Errorf("token generation failed: %w", err)
	}

	now := time.Now()
	session, err := a.sessionRepository.CreateSession(ctx, models.Session{
		Token:     token,
		UserID:    userID,
		IssuedAt:  now,
		ExpiresAt: now.Add(a.tokenTTL),
	})
	if err != nil {
		log.Err(err).Int32("user_id", userID).Msg("session creation ended with error")
		return models.Session{}, fmt.Errorf("session creation ended with error: %w", err)
	}

	return session, nil
}

// ResolveToken maps a bearer token value to the owning user id.
//
// Any failure — unknown token, revoked token, elapsed TTL — is normalised
// to ErrTokenInvalid so that callers cannot distinguish the cases.
func (a *authService) ResolveToken(ctx context.Context, token string) (int32, error) {
	session, err := a.sessionRepository.ResolveToken(ctx, token, time.Now())
	if err != nil {
		return 0, ErrTokenInvalid
	}

	return session.UserID, nil
}

// RevokeToken marks the session revoked. Revoking an already-revoked or
// unknown token is not an error from the caller's perspective; the
// repository reports the affected-row count for logging only.
func (a *authService) RevokeToken(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	affected, err := a.sessionRepository.RevokeToken(ctx, token)
	if err != nil {
		log.Err(err).Msg("session revocation ended with error")
		return fmt.Errorf("session revocation ended with error: %w", err)
	}

	if affected == 0 {
		log.Debug().Msg("revocation matched no active session")
	}

	return nil
}
