// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/collegematch/internal/logging"
	"github.com/tomtom215/collegematch/internal/models"
	"github.com/tomtom215/collegematch/internal/validation"
)

// UpdateQuizResults handles PUT /api/v1/students/{userID}/quiz-results
// Creates the student profile if needed and replaces its quiz_results.
func (h *Handler) UpdateQuizResults(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID := chi.URLParam(r, "userID")
	if verr := validateUserID(userID); verr != nil {
		respondValidationError(w, verr)
		return
	}

	body, err := readBody(w, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "Failed to read request body", err)
		return
	}

	var req models.QuizResultsRequest
	if err := json.Unmarshal(body, &req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "Request body must be a JSON object", nil)
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, verr)
		return
	}

	if err := h.store.UpsertStudentQuizResults(r.Context(), userID, req.QuizResults()); err != nil {
		h.respondStoreError(w, err, "Failed to store quiz results")
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("user_id", sanitizeLogValue(userID)).
		Int("recommendations", len(req.Recommendations)).
		Msg("Quiz results stored")
	respondSuccess(w, http.StatusOK, models.QuizResultsResponse{UserID: userID}, start)
}
