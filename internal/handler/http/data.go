package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/study-planner/internal/entity"
	"github.com/MKhiriev/study-planner/internal/logger"
	"github.com/MKhiriev/study-planner/internal/service"
	"github.com/MKhiriev/study-planner/internal/utils"
	"github.com/MKhiriev/study-planner/models"
)

// entityFromRequest resolves the {entity} URL parameter through the static
// registry. Unknown names are answered with 404 and a false flag.
func entityFromRequest(w http.ResponseWriter, r *http.Request) (entity.Descriptor, bool) {
	name := chi.URLParam(r, "entity")

	desc, ok := entity.Lookup(name)
	if !ok {
		log := logger.FromRequest(r)
		log.Warn().Str("entity", name).Msg("unknown entity name")
		http.Error(w, "unknown entity", http.StatusNotFound)
		return entity.Descriptor{}, false
	}

	return desc, true
}

// ownerFromRequest reads the user id bound by the auth middleware.
func ownerFromRequest(w http.ResponseWriter, r *http.Request) (int32, bool) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log := logger.FromRequest(r)
		log.Error().Msg("no user id in request context")
		w.WriteHeader(http.StatusUnauthorized)
		return 0, false
	}

	return ownerID, true
}

// saveRecord handles POST /data/{entity}: create when the payload id is
// absent or null, full-record replace otherwise. Always answers 200 {id} on
// success, including the documented silent no-op on a missing id.
func (h *Handler) saveRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	desc, ok := entityFromRequest(w, r)
	if !ok {
		return
	}

	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	// UseNumber keeps int32 fields intact; plain decoding would go through
	// float64
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()

	var payload map[string]any
	if err := decoder.Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	id, err := h.services.PlannerService.SaveRecord(ctx, ownerID, desc, payload)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			log.Err(err).Str("entity", desc.Name).Msg("invalid payload")
			http.Error(w, "invalid payload", http.StatusBadRequest)
			return
		}

		log.Err(err).Str("entity", desc.Name).Msg("unexpected error occurred during record save")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.IDResponse{ID: id}, http.StatusOK)
}

// deleteRecord handles DELETE /data/{entity}. Deletion is idempotent:
// the response is 200 {id} whether or not a row was removed.
func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	desc, ok := entityFromRequest(w, r)
	if !ok {
		return
	}

	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	var body struct {
		ID *int32 `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if body.ID == nil {
		log.Warn().Str("entity", desc.Name).Msg("delete request without id")
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	id, err := h.services.PlannerService.DeleteRecord(ctx, ownerID, desc, *body.ID)
	if err != nil {
		log.Err(err).Str("entity", desc.Name).Msg("unexpected error occurred during record delete")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.IDResponse{ID: id}, http.StatusOK)
}

// findRecords handles GET /data/{entity}. Query parameters matching
// descriptor fields become equality filters; everything else is ignored.
func (h *Handler) findRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	desc, ok := entityFromRequest(w, r)
	if !ok {
		return
	}

	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	filters, err := desc.ParseFilters(r.URL.Query())
	if err != nil {
		log.Err(err).Str("entity", desc.Name).Msg("invalid filter values")
		http.Error(w, "invalid filter values", http.StatusBadRequest)
		return
	}

	records, err := h.services.PlannerService.FindRecords(ctx, ownerID, desc, filters)
	if err != nil {
		log.Err(err).Str("entity", desc.Name).Msg("unexpected error occurred during record search")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if records == nil {
		records = []models.Record{}
	}

	utils.WriteJSON(w, records, http.StatusOK)
}
