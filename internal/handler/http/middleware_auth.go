// Package http implements the HTTP transport layer of the study-planner
// server. It provides middleware, route handlers, and request/response
// utilities for the REST API. Authentication, logging, and tracing concerns
// are all handled at this layer before requests are forwarded to the service
// layer.
package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/study-planner/internal/logger"
	"github.com/MKhiriev/study-planner/internal/utils"
)

// auth is the single authentication enforcement point for the data path and
// the logout route; no other component re-checks tokens.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token, resolves it via [service.AuthService.ResolveToken], and — on
// success — stores the authenticated user's ID in the request context under
// [utils.UserIDCtxKey] before delegating to the next handler.
//
// Rejections are HTTP 401 Unauthorized with an empty body in every case:
// absent header, malformed header, unknown token, revoked token, elapsed
// TTL. The reason is logged but never surfaced to the client.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		userID, err := h.services.AuthService.ResolveToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("token resolution failed")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		// Store the authenticated user's ID in the context so that
		// downstream handlers can retrieve it without re-resolving the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, userID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
