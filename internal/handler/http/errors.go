package http

import "errors"

// Sentinel errors produced while parsing the "Authorization" request header.
// Every one of them is answered with a bare 401; the distinction exists only
// for the logs.
var (
	// ErrEmptyAuthorizationHeader: the header is absent entirely.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader: the header cannot be split into a
	// scheme and a token value.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken: the scheme is present but the token value is empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
