package store

import (
	"context"
	"time"

	"github.com/MKhiriev/study-planner/internal/entity"
	"github.com/MKhiriev/study-planner/models"
)

// UserRepository persists user accounts and verifies their existence by
// username. Password hashing happens above this layer; the repository only
// ever sees the PHC-formatted hash.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// SessionRepository persists bearer-token sessions. ResolveToken applies the
// validity predicate (not revoked, not expired as of now) inside the query,
// so every invalid token — unknown, revoked, or expired — surfaces as the
// same ErrNoSessionWasFound.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) (models.Session, error)
	ResolveToken(ctx context.Context, token string, now time.Time) (models.Session, error)

	// RevokeToken marks the session revoked and returns the number of rows
	// actually flipped. Zero is not an error: revocation is idempotent at
	// the caller's level, the count exists for logging and tests.
	RevokeToken(ctx context.Context, token string) (int64, error)
}

// RecordRepository is the storage half of the generic CRUD engine. Every
// method takes the owner id as a mandatory argument; an unscoped query is
// unrepresentable through this interface.
type RecordRepository interface {
	Insert(ctx context.Context, desc entity.Descriptor, ownerID int32, values map[string]any) (int32, error)

	// Update replaces all entity fields of the row matching (id, ownerID)
	// and returns the number of rows affected. Zero means the id did not
	// exist or belongs to another user; the caller decides what to make of
	// that.
	Update(ctx context.Context, desc entity.Descriptor, ownerID, id int32, values map[string]any) (int64, error)

	// Delete removes the row matching (id, ownerID) and returns the number
	// of rows removed.
	Delete(ctx context.Context, desc entity.Descriptor, ownerID, id int32) (int64, error)

	Select(ctx context.Context, desc entity.Descriptor, ownerID int32, filters map[string]any) ([]models.Record, error)
}
