// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults applied by validate when a setting is absent from every source.
const (
	// DefaultHTTPAddress is the listen address used when none is configured.
	DefaultHTTPAddress = ":8080"

	// DefaultTokenTTL is the fixed session token lifetime: fourteen days.
	DefaultTokenTTL = 14 * 24 * time.Hour

	// DefaultRequestTimeout bounds request handling when no timeout is
	// configured.
	DefaultRequestTimeout = 30 * time.Second

	// DefaultSQLiteDSN is the fallback single-file database used when no
	// DSN is configured at all, keeping the server runnable out of the box.
	DefaultSQLiteDSN = "study-planner.db"
)

// validate applies defaults and rejects unusable values after the merge.
func (c *StructuredConfig) validate() error {
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = DefaultHTTPAddress
	}

	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = DefaultRequestTimeout
	} else if c.Server.RequestTimeout < 0 {
		return ErrNegativeTimeout
	}

	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = DefaultTokenTTL
	} else if c.Auth.TokenTTL < 0 {
		return ErrNegativeTokenTTL
	}

	if c.Storage.DB.DSN == "" {
		c.Storage.DB.DSN = DefaultSQLiteDSN
	}

	return nil
}
