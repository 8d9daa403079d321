package service

import (
	"context"

	"github.com/MKhiriev/study-planner/internal/entity"
	"github.com/MKhiriev/study-planner/models"
)

// AuthService covers the credential store and the token authority: account
// registration, credential verification, and the opaque bearer-token
// lifecycle (issue, resolve, revoke).
type AuthService interface {
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	IssueToken(ctx context.Context, userID int32) (models.Session, error)
	ResolveToken(ctx context.Context, token string) (int32, error)
	RevokeToken(ctx context.Context, token string) error
}

// PlannerService is the generic CRUD engine: one algorithm serves every
// entity type by parameterising over its [entity.Descriptor]. Every
// operation requires an already-resolved owner id and is owner-scoped by
// construction.
type PlannerService interface {
	// SaveRecord validates the payload and either inserts a new row (id
	// absent/null) or replaces the row matching (id, owner). An update that
	// matches no row is a silent no-op that still reports success with the
	// given id.
	SaveRecord(ctx context.Context, ownerID int32, desc entity.Descriptor, payload map[string]any) (int32, error)

	// DeleteRecord removes the row matching (id, owner) if present and
	// returns the same id whether or not a row was actually removed.
	DeleteRecord(ctx context.Context, ownerID int32, desc entity.Descriptor, id int32) (int32, error)

	// FindRecords returns every owned row matching all equality filters.
	FindRecords(ctx context.Context, ownerID int32, desc entity.Descriptor, filters map[string]any) ([]models.Record, error)
}
