package entity

import "errors"

// Sentinel validation errors returned by ParsePayload and ParseFilters.
// All of them map to a 400 Bad Request at the HTTP boundary; callers can
// match against them with [errors.Is].
var (
	// ErrMissingField is returned when a required entity field is absent
	// from the payload.
	ErrMissingField = errors.New("missing required field")

	// ErrNullField is returned when a required entity field is present but
	// explicitly null.
	ErrNullField = errors.New("null value for required field")

	// ErrUnknownField is returned when the payload carries a key outside
	// the descriptor's field set.
	ErrUnknownField = errors.New("unknown field")

	// ErrInvalidField is returned when a field value cannot be converted to
	// the field's declared kind.
	ErrInvalidField = errors.New("invalid field value")
)
