// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/collegematch/internal/database"
	"github.com/tomtom215/collegematch/internal/logging"
	"github.com/tomtom215/collegematch/internal/metrics"
	"github.com/tomtom215/collegematch/internal/recommend"
)

// recommendFailure describes how an engine error is reported.
type recommendFailure struct {
	outcome string
	status  int
	code    string
	message string
	log     bool
}

// classifyRecommendError maps engine errors to outcomes and HTTP responses.
func classifyRecommendError(err error) recommendFailure {
	switch {
	case errors.Is(err, recommend.ErrStudentNotFound):
		return recommendFailure{"student_not_found", http.StatusNotFound, ErrCodeStudentNotFound, "Student not found", false}
	case errors.Is(err, recommend.ErrNoQuizResults):
		return recommendFailure{"no_quiz_results", http.StatusNotFound, ErrCodeNoQuizResults, "No quiz results available", false}
	case errors.Is(err, recommend.ErrNoMatchingDegrees):
		return recommendFailure{"no_matching_degrees", http.StatusBadRequest, ErrCodeNoMatchingDegrees, "No matching degrees found", false}
	case errors.Is(err, database.ErrUnavailable):
		return recommendFailure{"unavailable", http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Store temporarily unavailable", true}
	case errors.Is(err, context.DeadlineExceeded):
		return recommendFailure{"error", http.StatusServiceUnavailable, ErrCodeRecommendation, "Recommendation timed out", true}
	default:
		return recommendFailure{"error", http.StatusInternalServerError, ErrCodeRecommendation, "Failed to generate recommendations", true}
	}
}

// Recommend handles GET /api/v1/colleges/recommend/{userID}
// Returns up to LocalLimit local and OutsideLimit outside colleges matching
// the student's quiz degrees. An empty shortlist is a 200.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if verr := validateUserID(userID); verr != nil {
		respondValidationError(w, verr)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	start := time.Now()
	result, err := h.engine.Recommend(ctx, userID)
	duration := time.Since(start)

	if err != nil {
		failure := classifyRecommendError(err)
		metrics.RecordRecommendation(failure.outcome, duration, 0, 0)

		var logErr error
		if failure.log {
			logErr = err
		}
		respondError(w, failure.status, failure.code, failure.message, logErr)
		return
	}

	outcome := "success"
	if result.Empty() {
		outcome = "empty"
	}
	metrics.RecordRecommendation(outcome, duration, result.ReturnedLocal, result.ReturnedOutside)

	logging.Ctx(r.Context()).Debug().
		Str("user_id", sanitizeLogValue(userID)).
		Str("outcome", outcome).
		Int("total", result.Total).
		Dur("duration", duration).
		Msg("Recommendation served")

	respondSuccess(w, http.StatusOK, result, start)
}

// DegreeRules handles GET /api/v1/degrees
// Lists the degree rules in the priority order used to resolve quiz degree names.
func (h *Handler) DegreeRules(w http.ResponseWriter, _ *http.Request) {
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"rules":        recommend.DegreeRules(),
		"local_region": h.engine.Config().RegionLabel(),
	}, time.Time{})
}
