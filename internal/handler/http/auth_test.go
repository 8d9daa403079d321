// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/study-planner/internal/logger"
	"github.com/MKhiriev/study-planner/internal/service"
	"github.com/MKhiriev/study-planner/internal/store"
	"github.com/MKhiriev/study-planner/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, creds models.Credentials) (models.User, error)
	loginFn        func(ctx context.Context, creds models.Credentials) (models.User, error)
	issueTokenFn   func(ctx context.Context, userID int32) (models.Session, error)
	resolveTokenFn func(ctx context.Context, token string) (int32, error)
	revokeTokenFn  func(ctx context.Context, token string) error
}

func (m *mockAuthService) RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error) {
	return m.registerUserFn(ctx, creds)
}

func (m *mockAuthService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	return m.loginFn(ctx, creds)
}

func (m *mockAuthService) IssueToken(ctx context.Context, userID int32) (models.Session, error) {
	return m.issueTokenFn(ctx, userID)
}

func (m *mockAuthService) ResolveToken(ctx context.Context, token string) (int32, error) {
	return m.resolveTokenFn(ctx, token)
}

func (m *mockAuthService) RevokeToken(ctx context.Context, token string) error {
	return m.revokeTokenFn(ctx, token)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
	}
	return NewHandler(svcs, logger.Nop())
}

// credsBody serialises credentials to a JSON request body string.
func credsBody(t *testing.T, creds models.Credentials) string {
	t.Helper()
	b, err := json.Marshal(creds)
	require.NoError(t, err)
	return string(b)
}

// stubSession returns a models.Session carrying the given token value.
func stubSession(token string) models.Session {
	return models.Session{SessionID: 42, Token: token, UserID: 1}
}

// validCreds is a convenience fixture used across multiple tests.
var validCreds = models.Credentials{
	Username: "alice",
	Password: "correct horse battery staple",
}

// ─────────────────────────────────────────────
// register — success
// ─────────────────────────────────────────────

// TestRegister_Success verifies that a valid registration request results in
// 200 OK with the issued token in the JSON body.
func TestRegister_Success(t *testing.T) {
	const issuedToken = "opaque-token-value"

	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, creds models.Credentials) (models.User, error) {
			return models.User{UserID: 1, Username: creds.Username}, nil
		},
		issueTokenFn: func(_ context.Context, userID int32) (models.Session, error) {
			assert.Equal(t, int32(1), userID)
			return stubSession(issuedToken), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodGet, "/auth/register", strings.NewReader(credsBody(t, validCreds)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, issuedToken, resp.Token)
}

// ─────────────────────────────────────────────
// register — error paths
// ─────────────────────────────────────────────

// TestRegister_InvalidJSON verifies that a malformed request body results in
// 400 Bad Request.
func TestRegister_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/auth/register", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

func TestRegister_EmptyCredentials(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodGet, "/auth/register", strings.NewReader(`{"username":"","password":""}`))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestRegister_UsernameTaken verifies that a duplicate username results in
// 409 Conflict.
func TestRegister_UsernameTaken(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{}, store.ErrUsernameTaken
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodGet, "/auth/register", strings.NewReader(credsBody(t, validCreds)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "username already taken")
}

func TestRegister_UnexpectedError(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{}, errors.New("db is down")
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodGet, "/auth/register", strings.NewReader(credsBody(t, validCreds)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRegister_TokenIssueFails(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, creds models.Credentials) (models.User, error) {
			return models.User{UserID: 1, Username: creds.Username}, nil
		},
		issueTokenFn: func(_ context.Context, _ int32) (models.Session, error) {
			return models.Session{}, errors.New("session store unavailable")
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodGet, "/auth/register", strings.NewReader(credsBody(t, validCreds)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	const issuedToken = "fresh-opaque-token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, creds models.Credentials) (models.User, error) {
			assert.Equal(t, validCreds, creds)
			return models.User{UserID: 1, Username: creds.Username}, nil
		},
		issueTokenFn: func(_ context.Context, _ int32) (models.Session, error) {
			return stubSession(issuedToken), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodGet, "/auth/login", strings.NewReader(credsBody(t, validCreds)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, issuedToken, resp.Token)
}

// TestLogin_BadCredentials verifies that an unknown user and a wrong
// password both produce a bare 401 with no body, indistinguishable from
// each other.
func TestLogin_BadCredentials(t *testing.T) {
	tests := []struct {
		name     string
		loginErr error
	}{
		{name: "unknown user", loginErr: store.ErrNoUserWasFound},
		{name: "wrong password", loginErr: service.ErrWrongPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				loginFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
					return models.User{}, tt.loginErr
				},
			}

			h := newHandlerWithAuth(t, auth)
			req := httptest.NewRequest(http.MethodGet, "/auth/login", strings.NewReader(credsBody(t, validCreds)))
			rec := httptest.NewRecorder()

			h.login(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Empty(t, rec.Body.String())
		})
	}
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/auth/login", strings.NewReader("not json"))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_UnexpectedError(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{}, errors.New("db is down")
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodGet, "/auth/login", strings.NewReader(credsBody(t, validCreds)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

func TestLogout_Success(t *testing.T) {
	revoked := ""
	auth := &mockAuthService{
		revokeTokenFn: func(_ context.Context, token string) error {
			revoked = token
			return nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodGet, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer opaque-token-value")
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "opaque-token-value", revoked)
}

func TestLogout_MissingToken(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer")
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestLogout_RevocationError(t *testing.T) {
	auth := &mockAuthService{
		revokeTokenFn: func(_ context.Context, _ string) error {
			return errors.New("session store unavailable")
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodGet, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer opaque-token-value")
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
