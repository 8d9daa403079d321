// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is a persisted bearer-token record bound to one user.
//
// A session is usable iff it is not revoked and the current time is before
// ExpiresAt. Expiry is evaluated lazily at resolve time; expired rows may
// physically remain in the store but are treated as invalid everywhere.
type Session struct {
	SessionID int64
	Token     string
	UserID    int32
	IssuedAt  time.Time
	ExpiresAt time.Time
	Revoked   bool
}

// TokenResponse is the JSON body returned by register and login on success.
type TokenResponse struct {
	Token string `json:"token"`
}
