// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/study-planner/internal/logger"
	"github.com/MKhiriev/study-planner/models"
)

func newTestRecordRepo(t *testing.T) (*recordRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &recordRepository{
		db:     &DB{DB: db, dialect: DialectPostgres, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestRecordInsert_Success(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	ctx := context.Background()
	desc := descriptorByName(t, "course")

	rows := sqlmock.NewRows([]string{"id"}).AddRow(int32(7))

	mock.ExpectQuery("INSERT INTO courses").
		WithArgs(int32(1), "Math").
		WillReturnRows(rows)

	id, err := repo.Insert(ctx, desc, 1, map[string]any{"name": "Math"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 7 {
		t.Errorf("expected id=7, got %d", id)
	}
}

func TestRecordInsert_ExecError(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	ctx := context.Background()
	desc := descriptorByName(t, "course")

	mock.ExpectQuery("INSERT INTO courses").
		WillReturnError(errors.New("db network error"))

	_, err := repo.Insert(ctx, desc, 1, map[string]any{"name": "Math"})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestRecordUpdate_Affected(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	ctx := context.Background()
	desc := descriptorByName(t, "course")

	mock.ExpectExec("UPDATE courses SET name").
		WithArgs("Advanced Math", int32(7), int32(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.Update(ctx, desc, 1, 7, map[string]any{"name": "Advanced Math"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if affected != 1 {
		t.Errorf("expected 1 row affected, got %d", affected)
	}
}

// A missing id and a row owned by another user both match zero rows. The
// repository reports the count and leaves the decision to the caller.
func TestRecordUpdate_NoMatch(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	ctx := context.Background()
	desc := descriptorByName(t, "course")

	mock.ExpectExec("UPDATE courses SET name").
		WithArgs("Advanced Math", int32(404), int32(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err := repo.Update(ctx, desc, 1, 404, map[string]any{"name": "Advanced Math"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if affected != 0 {
		t.Errorf("expected 0 rows affected, got %d", affected)
	}
}

func TestRecordDelete_Idempotent(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	ctx := context.Background()
	desc := descriptorByName(t, "todo")

	mock.ExpectExec("DELETE FROM todos").
		WithArgs(int32(9), int32(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err := repo.Delete(ctx, desc, 1, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if affected != 0 {
		t.Errorf("expected 0 rows affected, got %d", affected)
	}
}

func TestRecordDelete_ExecError(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	ctx := context.Background()
	desc := descriptorByName(t, "todo")

	mock.ExpectExec("DELETE FROM todos").
		WillReturnError(errors.New("db failure"))

	_, err := repo.Delete(ctx, desc, 1, 9)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestRecordSelect_TypedScan(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	ctx := context.Background()
	desc := descriptorByName(t, "todo")

	rows := sqlmock.
		NewRows([]string{"id", "name", "deadline", "details", "completed"}).
		AddRow(int32(1), "revise", "2026-09-01", "chapters 1-3", false).
		AddRow(int32(2), "mock exam", "2026-09-10", "", true)

	mock.ExpectQuery("SELECT id, name, deadline, details, completed FROM todos").
		WithArgs(int32(1)).
		WillReturnRows(rows)

	records, err := repo.Select(ctx, desc, 1, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	want := models.Record{
		ID: 1,
		Fields: map[string]any{
			"name":      "revise",
			"deadline":  "2026-09-01",
			"details":   "chapters 1-3",
			"completed": false,
		},
	}
	if !reflect.DeepEqual(records[0], want) {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	if records[1].Fields["completed"] != true {
		t.Errorf("expected second todo completed, got %+v", records[1].Fields)
	}
}

func TestRecordSelect_Filtered(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	ctx := context.Background()
	desc := descriptorByName(t, "topic")

	rows := sqlmock.
		NewRows([]string{"id", "course_id", "name", "details"}).
		AddRow(int32(3), int32(2), "Algebra", "linear equations")

	mock.ExpectQuery("SELECT id, course_id, name, details FROM topics").
		WithArgs(int32(1), int32(2)).
		WillReturnRows(rows)

	records, err := repo.Select(ctx, desc, 1, map[string]any{"course_id": int32(2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Fields["course_id"] != int32(2) {
		t.Errorf("expected course_id=2, got %v", records[0].Fields["course_id"])
	}
}

func TestRecordSelect_Empty(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	ctx := context.Background()
	desc := descriptorByName(t, "exam")

	mock.ExpectQuery("SELECT id, course_id, name, date FROM exams").
		WithArgs(int32(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "course_id", "name", "date"}))

	records, err := repo.Select(ctx, desc, 1, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestRecordSelect_QueryError(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	ctx := context.Background()
	desc := descriptorByName(t, "exam")

	mock.ExpectQuery("SELECT id, course_id, name, date FROM exams").
		WillReturnError(errors.New("db failure"))

	_, err := repo.Select(ctx, desc, 1, nil)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
