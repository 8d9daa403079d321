// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models defines the shared domain and wire types used across the
// study-planner server: user accounts, session tokens, and the JSON bodies
// exchanged with clients.
package models

// User is the persisted user account record.
//
// PasswordHash holds the Argon2id hash of the user's password in PHC string
// format (parameters and salt embedded). The plain-text password is never
// stored.
type User struct {
	UserID       int32  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// Credentials is the JSON body of the register and login endpoints.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
