// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/study-planner/internal/entity"
	"github.com/MKhiriev/study-planner/internal/logger"
	"github.com/MKhiriev/study-planner/internal/store"
	"github.com/MKhiriev/study-planner/models"
)

// plannerService is the concrete implementation of PlannerService. All type
// awareness lives in the descriptor it is handed per call; the service
// itself is identical for every entity type.
type plannerService struct {
	recordRepository store.RecordRepository
	logger           *logger.Logger
}

// NewPlannerService constructs a PlannerService backed by the given record
// repository.
func NewPlannerService(recordRepository store.RecordRepository, logger *logger.Logger) PlannerService {
	return &plannerService{
		recordRepository: recordRepository,
		logger:           logger,
	}
}

// SaveRecord implements the create-or-update operation.
//
// The payload must contain exactly the descriptor's non-id fields, all
// non-null and of the right type; otherwise a validation error wrapping
// ErrValidation is returned. With no id the record is inserted and the new
// id returned. With an id the row matching (id, owner) is replaced; when no
// row matches — wrong id, or a row owned by another user — the operation is
// a silent no-op that still reports success with the given id. The caller
// is trusted to have obtained the id from a prior read; the response does
// not distinguish "updated" from "nothing matched".
//
// Referential fields (e.g. a topic's course_id) are not checked against the
// parent table; a dangling parent id is accepted.
func (p *plannerService) SaveRecord(ctx context.Context, ownerID int32, desc entity.Descriptor, payload map[string]any) (int32, error) {
	log := logger.FromContext(ctx)

	id, values, err := desc.ParsePayload(payload)
	if err != nil {
		log.Err(err).Str("entity", desc.Name).Int32("user_id", ownerID).Msg("payload validation failed")
		return 0, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if id == nil {
		newID, err := p.recordRepository.Insert(ctx, desc, ownerID, values)
		if err != nil {
			log.Err(err).Str("entity", desc.Name).Int32("user_id", ownerID).Msg("record insert ended with error")
			return 0, fmt.Errorf("record insert ended with error: %w", err)
		}

		return newID, nil
	}

	affected, err := p.recordRepository.Update(ctx, desc, ownerID, *id, values)
	if err != nil {
		log.Err(err).Str("entity", desc.Name).Int32("user_id", ownerID).Int32("id", *id).Msg("record update ended with error")
		return 0, fmt.Errorf("record update ended with error: %w", err)
	}

	if affected == 0 {
		// documented policy: success is reported anyway
		log.Debug().Str("entity", desc.Name).Int32("user_id", ownerID).Int32("id", *id).Msg("update matched no row")
	}

	return *id, nil
}

// DeleteRecord removes the row matching (id, owner) and returns the same id
// whether or not a row was actually removed — deletion is idempotent.
func (p *plannerService) DeleteRecord(ctx context.Context, ownerID int32, desc entity.Descriptor, id int32) (int32, error) {
	log := logger.FromContext(ctx)

	affected, err := p.recordRepository.Delete(ctx, desc, ownerID, id)
	if err != nil {
		log.Err(err).Str("entity", desc.Name).Int32("user_id", ownerID).Int32("id", id).Msg("record delete ended with error")
		return 0, fmt.Errorf("record delete ended with error: %w", err)
	}

	if affected == 0 {
		log.Debug().Str("entity", desc.Name).Int32("user_id", ownerID).Int32("id", id).Msg("delete matched no row")
	}

	return id, nil
}

// FindRecords returns every owned row matching all the given equality
// filters; an empty filter map returns every owned record. An empty result
// is a valid outcome, never an error.
func (p *plannerService) FindRecords(ctx context.Context, ownerID int32, desc entity.Descriptor, filters map[string]any) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	records, err := p.recordRepository.Select(ctx, desc, ownerID, filters)
	if err != nil {
		log.Err(err).Str("entity", desc.Name).Int32("user_id", ownerID).Msg("record search ended with error")
		return nil, fmt.Errorf("record search ended with error: %w", err)
	}

	return records, nil
}
