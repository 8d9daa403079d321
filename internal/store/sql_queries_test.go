package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/study-planner/internal/entity"
	"github.com/MKhiriev/study-planner/models"
)

func descriptorByName(t *testing.T, name string) entity.Descriptor {
	t.Helper()

	desc, ok := entity.Lookup(name)
	require.True(t, ok)
	return desc
}

func TestBuildCreateUserQuery(t *testing.T) {
	user := models.User{Username: "john", PasswordHash: "$argon2id$..."}

	query, args, err := buildCreateUserQuery(DialectPostgres, user)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO users (username,password_hash) VALUES ($1,$2) RETURNING id", query)
	assert.Equal(t, []any{"john", "$argon2id$..."}, args)

	query, _, err = buildCreateUserQuery(DialectSQLite, user)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO users (username,password_hash) VALUES (?,?)", query)
}

func TestBuildFindUserByUsernameQuery(t *testing.T) {
	query, args, err := buildFindUserByUsernameQuery(DialectPostgres, "john")
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, username, password_hash FROM users WHERE username = $1", query)
	assert.Equal(t, []any{"john"}, args)
}

func TestBuildCreateSessionQuery(t *testing.T) {
	issued := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	session := models.Session{
		Token:     "token-value",
		UserID:    3,
		IssuedAt:  issued,
		ExpiresAt: issued.Add(14 * 24 * time.Hour),
	}

	query, args, err := buildCreateSessionQuery(DialectPostgres, session)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO sessions (token,user_id,issued_at,expires_at,revoked) VALUES ($1,$2,$3,$4,$5) RETURNING id",
		query)
	assert.Equal(t, []any{"token-value", int32(3), session.IssuedAt, session.ExpiresAt, false}, args)
}

func TestBuildResolveSessionQuery(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	query, args, err := buildResolveSessionQuery(DialectPostgres, "token-value", now)
	require.NoError(t, err)

	// unknown, revoked and expired tokens must be indistinguishable: the
	// whole validity predicate lives in the WHERE clause
	assert.Equal(t,
		"SELECT id, user_id FROM sessions WHERE token = $1 AND revoked = $2 AND expires_at > $3",
		query)
	assert.Equal(t, []any{"token-value", false, now}, args)
}

func TestBuildRevokeSessionQuery(t *testing.T) {
	query, args, err := buildRevokeSessionQuery(DialectPostgres, "token-value")
	require.NoError(t, err)

	assert.Equal(t, "UPDATE sessions SET revoked = $1 WHERE revoked = $2 AND token = $3", query)
	assert.Equal(t, []any{true, false, "token-value"}, args)
}

func TestBuildInsertRecordQuery(t *testing.T) {
	desc := descriptorByName(t, "exam")
	values := map[string]any{"course_id": int32(2), "name": "Midterm", "date": "2026-10-15"}

	query, args, err := buildInsertRecordQuery(DialectPostgres, desc, 1, values)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO exams (user_id,course_id,name,date) VALUES ($1,$2,$3,$4) RETURNING id",
		query)
	assert.Equal(t, []any{int32(1), int32(2), "Midterm", "2026-10-15"}, args)
}

func TestBuildInsertRecordQuery_SQLite(t *testing.T) {
	desc := descriptorByName(t, "course")

	query, _, err := buildInsertRecordQuery(DialectSQLite, desc, 1, map[string]any{"name": "Math"})
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO courses (user_id,name) VALUES (?,?)", query)
}

func TestBuildUpdateRecordQuery(t *testing.T) {
	desc := descriptorByName(t, "course")

	query, args, err := buildUpdateRecordQuery(DialectPostgres, desc, 1, 7, map[string]any{"name": "Advanced Math"})
	require.NoError(t, err)

	assert.Equal(t, "UPDATE courses SET name = $1 WHERE id = $2 AND user_id = $3", query)
	assert.Equal(t, []any{"Advanced Math", int32(7), int32(1)}, args)
}

func TestBuildDeleteRecordQuery(t *testing.T) {
	desc := descriptorByName(t, "todo")

	query, args, err := buildDeleteRecordQuery(DialectPostgres, desc, 1, 9)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM todos WHERE id = $1 AND user_id = $2", query)
	assert.Equal(t, []any{int32(9), int32(1)}, args)
}

func TestBuildSelectRecordsQuery_NoFilters(t *testing.T) {
	desc := descriptorByName(t, "course")

	query, args, err := buildSelectRecordsQuery(DialectPostgres, desc, 1, nil)
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, name FROM courses WHERE user_id = $1 ORDER BY id", query)
	assert.Equal(t, []any{int32(1)}, args)
}

func TestBuildSelectRecordsQuery_Filters(t *testing.T) {
	desc := descriptorByName(t, "todo")
	filters := map[string]any{"completed": false, "deadline": "2026-09-01"}

	query, args, err := buildSelectRecordsQuery(DialectPostgres, desc, 1, filters)
	require.NoError(t, err)

	// sq.Eq iterates its keys sorted, so the filter order is deterministic
	assert.Equal(t,
		"SELECT id, name, deadline, details, completed FROM todos "+
			"WHERE user_id = $1 AND completed = $2 AND deadline = $3 ORDER BY id",
		query)
	assert.Equal(t, []any{int32(1), false, "2026-09-01"}, args)
}
