// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/study-planner/internal/entity"
	"github.com/MKhiriev/study-planner/internal/logger"
	"github.com/MKhiriev/study-planner/models"
)

// recordRepository is the SQL-backed implementation of [RecordRepository]:
// one implementation serves every entity type by parameterising each query
// over an [entity.Descriptor].
//
// Every statement is a single, independently consistent operation; no
// cross-request transactions are held. Conflicting writes to the same row
// race at the engine's isolation level, last writer wins.
type recordRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewRecordRepository constructs a [RecordRepository] backed by the provided
// database connection and logger.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	logger.Debug().Msg("creating record repository")
	return &recordRepository{
		db:     db,
		logger: logger,
	}
}

// Insert creates a new entity row owned by ownerID and returns the
// store-assigned id. values must already be validated against the
// descriptor (see entity.Descriptor.ParsePayload).
func (r *recordRepository) Insert(ctx context.Context, desc entity.Descriptor, ownerID int32, values map[string]any) (int32, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertRecordQuery(r.db.Dialect(), desc, ownerID, values)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.Insert").Str("entity", desc.Name).Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if r.db.Dialect() == DialectPostgres {
		var id int32
		if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			log.Err(err).Str("func", "*recordRepository.Insert").Str("entity", desc.Name).Int32("user_id", ownerID).Msg("error inserting record")
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return id, nil
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.Insert").Str("entity", desc.Name).Int32("user_id", ownerID).Msg("error inserting record")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	newID, err := result.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.Insert").Str("entity", desc.Name).Msg("error reading inserted id")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return int32(newID), nil
}

// Update replaces every entity field of the row matching (id, ownerID) and
// returns the number of rows affected. Zero rows means the id does not exist
// or the row belongs to another user — indistinguishable on purpose, and
// never an error at this layer.
func (r *recordRepository) Update(ctx context.Context, desc entity.Descriptor, ownerID, id int32, values map[string]any) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateRecordQuery(r.db.Dialect(), desc, ownerID, id, values)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.Update").Str("entity", desc.Name).Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.Update").Str("entity", desc.Name).Int32("user_id", ownerID).Int32("id", id).Msg("error updating record")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.Update").Str("entity", desc.Name).Msg("error reading affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

// Delete removes the row matching (id, ownerID) and returns the number of
// rows removed. Deleting a missing or foreign-owned row removes nothing and
// is not an error.
func (r *recordRepository) Delete(ctx context.Context, desc entity.Descriptor, ownerID, id int32) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRecordQuery(r.db.Dialect(), desc, ownerID, id)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.Delete").Str("entity", desc.Name).Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.Delete").Str("entity", desc.Name).Int32("user_id", ownerID).Int32("id", id).Msg("error deleting record")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.Delete").Str("entity", desc.Name).Msg("error reading affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

// Select returns every row owned by ownerID matching all equality filters,
// ordered by id. An empty result is a valid outcome, never an error.
func (r *recordRepository) Select(ctx context.Context, desc entity.Descriptor, ownerID int32, filters map[string]any) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRecordsQuery(r.db.Dialect(), desc, ownerID, filters)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.Select").Str("entity", desc.Name).Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.Select").Str("entity", desc.Name).Int32("user_id", ownerID).Msg("error executing select")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0, 16)

	for rows.Next() {
		var id int32

		// one typed scan target per descriptor field, id first
		holders := make([]any, 0, len(desc.Fields)+1)
		holders = append(holders, &id)
		for _, f := range desc.Fields {
			switch f.Kind {
			case entity.KindInt:
				holders = append(holders, new(int32))
			case entity.KindBool:
				holders = append(holders, new(bool))
			default:
				holders = append(holders, new(string))
			}
		}

		if err := rows.Scan(holders...); err != nil {
			log.Err(err).Str("func", "*recordRepository.Select").Str("entity", desc.Name).Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		fields := make(map[string]any, len(desc.Fields))
		for i, f := range desc.Fields {
			switch v := holders[i+1].(type) {
			case *int32:
				fields[f.Name] = *v
			case *bool:
				fields[f.Name] = *v
			case *string:
				fields[f.Name] = *v
			}
		}

		records = append(records, models.Record{ID: id, Fields: fields})
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*recordRepository.Select").Str("entity", desc.Name).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}
