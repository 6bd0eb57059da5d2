// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/collegematch/internal/database"
	"github.com/tomtom215/collegematch/internal/logging"
	"github.com/tomtom215/collegematch/internal/models"
	"github.com/tomtom215/collegematch/internal/validation"
)

// Float increments outside this range cannot be truncated to int64.
const maxIncrementFloat = 9.2e18

// ListColleges handles GET /api/v1/colleges
// Returns every college with its interest counter and the catalog-wide total.
func (h *Handler) ListColleges(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	colleges, err := h.store.ListColleges(r.Context())
	if err != nil {
		h.respondStoreError(w, err, "Failed to list colleges")
		return
	}

	var totalInterest int64
	for i := range colleges {
		totalInterest += colleges[i].InterestCount()
	}

	respondSuccess(w, http.StatusOK, models.CollegeListResponse{
		Data:          colleges,
		TotalInterest: totalInterest,
		Total:         len(colleges),
	}, start)
}

// GetCollege handles GET /api/v1/colleges/{collegeID}
func (h *Handler) GetCollege(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id := chi.URLParam(r, "collegeID")
	if verr := validation.ValidateVar("_id", id, "docid,max=256"); verr != nil {
		respondValidationError(w, verr)
		return
	}

	college, err := h.store.GetCollege(r.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "College not found", nil)
		return
	}
	if err != nil {
		h.respondStoreError(w, err, "Failed to get college")
		return
	}

	respondSuccess(w, http.StatusOK, college, start)
}

// CreateCollege handles POST /api/v1/colleges
// The body is stored as-is; _id is generated when absent and interest defaults to 0.
func (h *Handler) CreateCollege(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	body, err := readBody(w, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "Failed to read request body", err)
		return
	}

	var doc models.Document
	if err := json.Unmarshal(body, &doc); err != nil || doc == nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "Request body must be a JSON object", nil)
		return
	}

	id, err := h.store.InsertCollege(r.Context(), doc)
	switch {
	case errors.Is(err, database.ErrDuplicateID):
		respondError(w, http.StatusConflict, ErrCodeConflict, "A college with this _id already exists", nil)
		return
	case errors.Is(err, database.ErrInvalidDocument):
		respondError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "Invalid college document", err)
		return
	case err != nil:
		h.respondStoreError(w, err, "Failed to add college")
		return
	}

	logging.Ctx(r.Context()).Info().Str("college_id", sanitizeLogValue(id)).Msg("College added")
	respondSuccess(w, http.StatusCreated, models.CollegeCreatedResponse{
		Message: "College added successfully",
		ID:      id,
	}, start)
}

// InterestBatch handles POST /api/v1/colleges/interest-batch
// The raw body is parsed whatever its Content-Type, since navigator.sendBeacon
// posts text/plain. Unparseable bodies are treated as empty.
func (h *Handler) InterestBatch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	body, err := readBody(w, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "Failed to read request body", err)
		return
	}

	var req models.InterestBatchRequest
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			logging.Ctx(r.Context()).Debug().Err(err).Msg("Unparseable interest batch body")
			req = models.InterestBatchRequest{}
		}
	}
	if len(req.Interest) == 0 {
		respondError(w, http.StatusBadRequest, ErrCodeNoInterestData, "No interest data", nil)
		return
	}

	updated, err := h.store.IncrementInterest(r.Context(), interestIncrements(req.Interest))
	if err != nil {
		h.respondStoreError(w, err, "Failed to update interest")
		return
	}
	if updated == nil {
		updated = []string{}
	}

	logging.Ctx(r.Context()).Debug().Int("requested", len(req.Interest)).Int("updated", len(updated)).Msg("Interest batch applied")
	respondSuccess(w, http.StatusOK, models.InterestBatchResponse{Updated: updated}, start)
}

// UpdateMany handles PUT /api/v1/colleges/update-many
// Entries failing validation are skipped; the rest are applied in one transaction.
func (h *Handler) UpdateMany(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	body, err := readBody(w, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "Failed to read request body", err)
		return
	}

	var req models.BulkUpdateRequest
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			req = models.BulkUpdateRequest{}
		}
	}
	if len(req.Updates) == 0 {
		respondSuccess(w, http.StatusOK, models.BulkUpdateResponse{
			Message: "No updates provided",
			Updated: []string{},
			Count:   0,
		}, start)
		return
	}

	valid := make([]models.CollegeUpdate, 0, len(req.Updates))
	for i := range req.Updates {
		if verr := validation.ValidateStruct(&req.Updates[i]); verr != nil {
			logging.Ctx(r.Context()).Debug().Int("index", i).Str("reason", verr.Error()).Msg("Skipping invalid bulk update entry")
			continue
		}
		valid = append(valid, req.Updates[i])
	}

	updated, err := h.store.BulkUpdate(r.Context(), valid)
	if err != nil {
		h.respondStoreError(w, err, "Failed to update colleges")
		return
	}
	if updated == nil {
		updated = []string{}
	}

	respondSuccess(w, http.StatusOK, models.BulkUpdateResponse{
		Message: "Bulk update completed",
		Updated: updated,
		Count:   len(updated),
	}, start)
}

// respondStoreError maps a store failure to 503 when the breaker is open
// and 500 otherwise.
func (h *Handler) respondStoreError(w http.ResponseWriter, err error, message string) {
	if errors.Is(err, database.ErrUnavailable) {
		respondError(w, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Store temporarily unavailable", err)
		return
	}
	respondError(w, http.StatusInternalServerError, ErrCodeDatabase, message, err)
}

// interestIncrements coerces raw increments to integers: numbers are
// truncated toward zero and numeric strings parsed. Anything else, and any
// result <= 0, is dropped.
func interestIncrements(raw map[string]models.FlexValue) map[string]int64 {
	out := make(map[string]int64, len(raw))
	for id, v := range raw {
		n, ok := coerceIncrement(v)
		if !ok || n <= 0 {
			continue
		}
		out[id] = n
	}
	return out
}

func coerceIncrement(v models.FlexValue) (int64, bool) {
	if n, ok := v.Int(); ok {
		return n, true
	}
	if f, ok := v.Float(); ok {
		if f > maxIncrementFloat || f < -maxIncrementFloat {
			return 0, false
		}
		return int64(f), true
	}
	if s, ok := v.Str(); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
