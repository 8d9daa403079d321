// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/study-planner/internal/entity"
	"github.com/MKhiriev/study-planner/models"
)

// All SQL issued by the repositories is built here with squirrel so that the
// placeholder format follows the dialect and the dynamic parts (descriptor
// columns, equality filters) can never be assembled by string concatenation.

func placeholderFor(d Dialect) sq.PlaceholderFormat {
	if d == DialectPostgres {
		return sq.Dollar
	}
	return sq.Question
}

// buildCreateUserQuery inserts a new user row. On PostgreSQL the new id is
// returned via a RETURNING clause; on SQLite the caller reads LastInsertId.
func buildCreateUserQuery(d Dialect, user models.User) (string, []any, error) {
	builder := sq.Insert("users").
		Columns("username", "password_hash").
		Values(user.Username, user.PasswordHash).
		PlaceholderFormat(placeholderFor(d))

	if d == DialectPostgres {
		builder = builder.Suffix("RETURNING id")
	}

	return builder.ToSql()
}

func buildFindUserByUsernameQuery(d Dialect, username string) (string, []any, error) {
	return sq.Select("id", "username", "password_hash").
		From("users").
		Where(sq.Eq{"username": username}).
		PlaceholderFormat(placeholderFor(d)).
		ToSql()
}

// buildCreateSessionQuery persists a freshly issued token record.
func buildCreateSessionQuery(d Dialect, session models.Session) (string, []any, error) {
	builder := sq.Insert("sessions").
		Columns("token", "user_id", "issued_at", "expires_at", "revoked").
		Values(session.Token, session.UserID, session.IssuedAt, session.ExpiresAt, session.Revoked).
		PlaceholderFormat(placeholderFor(d))

	if d == DialectPostgres {
		builder = builder.Suffix("RETURNING id")
	}

	return builder.ToSql()
}

// buildResolveSessionQuery selects the usable session for a token value.
// The validity predicate lives in the WHERE clause, so an unknown, revoked,
// or expired token all produce the same empty result set — the caller cannot
// tell the cases apart, by contract.
func buildResolveSessionQuery(d Dialect, token string, now time.Time) (string, []any, error) {
	return sq.Select("id", "user_id").
		From("sessions").
		Where(sq.Eq{"token": token}).
		Where(sq.Eq{"revoked": false}).
		Where(sq.Gt{"expires_at": now}).
		PlaceholderFormat(placeholderFor(d)).
		ToSql()
}

// buildRevokeSessionQuery marks a token revoked. Revoking an already-revoked
// or unknown token affects zero rows, which the repository reports to the
// caller but never treats as an error.
func buildRevokeSessionQuery(d Dialect, token string) (string, []any, error) {
	return sq.Update("sessions").
		Set("revoked", true).
		Where(sq.Eq{"token": token, "revoked": false}).
		PlaceholderFormat(placeholderFor(d)).
		ToSql()
}

// buildInsertRecordQuery inserts one entity row with the descriptor's
// columns in declaration order, owner first.
func buildInsertRecordQuery(d Dialect, desc entity.Descriptor, ownerID int32, values map[string]any) (string, []any, error) {
	columns := make([]string, 0, len(desc.Fields)+1)
	args := make([]any, 0, len(desc.Fields)+1)

	columns = append(columns, desc.OwnerColumn)
	args = append(args, ownerID)

	for _, f := range desc.Fields {
		columns = append(columns, f.Name)
		args = append(args, values[f.Name])
	}

	builder := sq.Insert(desc.Table).
		Columns(columns...).
		Values(args...).
		PlaceholderFormat(placeholderFor(d))

	if d == DialectPostgres {
		builder = builder.Suffix("RETURNING " + desc.IDColumn)
	}

	return builder.ToSql()
}

// buildUpdateRecordQuery replaces every entity field of the row matching
// (id, owner). The owner predicate is mandatory: a record owned by another
// user is unreachable by construction.
func buildUpdateRecordQuery(d Dialect, desc entity.Descriptor, ownerID, id int32, values map[string]any) (string, []any, error) {
	builder := sq.Update(desc.Table).
		PlaceholderFormat(placeholderFor(d))

	for _, f := range desc.Fields {
		builder = builder.Set(f.Name, values[f.Name])
	}

	return builder.
		Where(sq.Eq{desc.IDColumn: id}).
		Where(sq.Eq{desc.OwnerColumn: ownerID}).
		ToSql()
}

func buildDeleteRecordQuery(d Dialect, desc entity.Descriptor, ownerID, id int32) (string, []any, error) {
	return sq.Delete(desc.Table).
		Where(sq.Eq{desc.IDColumn: id}).
		Where(sq.Eq{desc.OwnerColumn: ownerID}).
		PlaceholderFormat(placeholderFor(d)).
		ToSql()
}

// buildSelectRecordsQuery selects the id and entity fields of every row
// owned by ownerID that matches all given equality filters. An empty filter
// map imposes no constraint beyond ownership.
func buildSelectRecordsQuery(d Dialect, desc entity.Descriptor, ownerID int32, filters map[string]any) (string, []any, error) {
	columns := make([]string, 0, len(desc.Fields)+1)
	columns = append(columns, desc.IDColumn)
	for _, f := range desc.Fields {
		columns = append(columns, f.Name)
	}

	builder := sq.Select(columns...).
		From(desc.Table).
		Where(sq.Eq{desc.OwnerColumn: ownerID}).
		PlaceholderFormat(placeholderFor(d))

	if len(filters) > 0 {
		builder = builder.Where(sq.Eq(filters))
	}

	return builder.OrderBy(desc.IDColumn).ToSql()
}
