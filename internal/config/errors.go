package config

import "errors"

var (
	// ErrNegativeTimeout is returned by validation when a negative request
	// timeout was configured.
	ErrNegativeTimeout = errors.New("request timeout must be positive")

	// ErrNegativeTokenTTL is returned by validation when a negative session
	// token TTL was configured.
	ErrNegativeTokenTTL = errors.New("token TTL must be positive")
)
