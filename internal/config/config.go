// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// study-planner server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds token lifecycle settings.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds configuration for the relational store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Auth holds token lifecycle configuration.
type Auth struct {
	// TokenTTL is the fixed duration after issuance beyond which a session
	// token is unconditionally invalid. Defaults to fourteen days.
	// Env: AUTH_TOKEN_TTL
	TokenTTL time.Duration `env:"TOKEN_TTL"`
}

// Storage groups the configuration for the persistence layer.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the relational database connection settings.
type DB struct {
	// DSN selects the backend: a postgres:// URI connects to PostgreSQL,
	// anything else is treated as a SQLite file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds how long a single request may run before the
	// server gives up on it (read/write timeouts).
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig assembles the application configuration from all
// sources: environment variables first, then command-line flags, then an
// optional JSON file, earlier sources taking precedence. The merged result
// is validated and defaulted before being returned.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
