package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrTokenInvalid is the single error for every unusable token:
	// unknown, revoked, or expired. The cause is deliberately not exposed.
	ErrTokenInvalid = errors.New("token is invalid")

	// ErrValidation wraps payload and filter validation failures from the
	// entity package; it maps to 400 Bad Request at the HTTP boundary.
	ErrValidation = errors.New("payload validation failed")
)
