// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys and HTTP
// response writing.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated user identifier in
// the request context. Set by the auth middleware after the bearer token has
// been resolved; read by every data-path handler via GetUserIDFromContext.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user identifier from the
// context.
//
// Returns the user ID and an ok flag:
//   - ok == true  — value is found and has the correct int32 type
//   - ok == false — value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int32, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int32)
	return userID, ok
}
