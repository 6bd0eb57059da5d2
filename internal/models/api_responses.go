// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

package models

import (
	"bytes"
	"time"

	"github.com/goccy/go-json"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
// It provides consistent structure for both successful and error responses, with metadata
// for observability.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"message": "Recommended 3 colleges: 2 in Nagpur, 1 outside", "colleges": [...]},
//	  "metadata": {
//	    "timestamp": "2026-03-28T12:00:00Z",
//	    "query_time_ms": 4
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "STUDENT_NOT_FOUND",
//	    "message": "Student not found"
//	  },
//	  "metadata": {"timestamp": "2026-03-28T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability and performance tracking.
//
// Fields:
//   - Timestamp: Server time when response was generated (RFC3339 format)
//   - QueryTimeMS: Store and pipeline execution time in milliseconds
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Common error codes:
//   - VALIDATION_ERROR: Invalid input parameters
//   - INVALID_REQUEST: Malformed request body
//   - DATABASE_ERROR: Store read or write failure
//   - STUDENT_NOT_FOUND: No student with the requested id
//   - NO_QUIZ_RESULTS: Student has not completed the career quiz
//   - NO_MATCHING_DEGREES: Quiz degrees map to no known degree code
//   - SERVICE_UNAVAILABLE: Store circuit breaker is open
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// CollegeListResponse is the payload of the college listing endpoint.
type CollegeListResponse struct {
	Data          []College `json:"data"`
	TotalInterest int64     `json:"totalInterest"`
	Total         int       `json:"total"`
}

// CollegeCreatedResponse is returned after a college is inserted.
type CollegeCreatedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// InterestBatchRequest carries per-college interest increments keyed by
// college id. Increments may arrive as numbers or numeric strings.
type InterestBatchRequest struct {
	Interest map[string]FlexValue `json:"interest"`
}

// InterestBatchResponse lists the colleges whose counters changed.
type InterestBatchResponse struct {
	Updated []string `json:"updated"`
}

// CollegeUpdate is one entry of a bulk update: the fields in Data are set
// on the college identified by ID.
type CollegeUpdate struct {
	ID   string   `json:"_id" validate:"required,docid,max=256"`
	Data Document `json:"data" validate:"required"`
}

// BulkUpdateRequest wraps a list of college updates.
type BulkUpdateRequest struct {
	Updates CollegeUpdateList `json:"updates"`
}

// CollegeUpdateList decodes tolerantly: entries without an _id or whose
// data is not an object are skipped, and a non-array value decodes as empty.
type CollegeUpdateList []CollegeUpdate

// UnmarshalJSON implements tolerant decoding for bulk update entries.
func (l *CollegeUpdateList) UnmarshalJSON(data []byte) error {
	*l = nil
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil
	}
	out := make(CollegeUpdateList, 0, len(elems))
	for _, elem := range elems {
		var entry struct {
			ID   FlexValue       `json:"_id"`
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(elem, &entry); err != nil {
			continue
		}
		id := IDString(entry.ID)
		trimmed := bytes.TrimSpace(entry.Data)
		if id == "" || len(trimmed) == 0 || trimmed[0] != '{' {
			continue
		}
		var doc Document
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			continue
		}
		out = append(out, CollegeUpdate{ID: id, Data: doc})
	}
	*l = out
	return nil
}

// BulkUpdateResponse reports which colleges a bulk update matched.
type BulkUpdateResponse struct {
	Message string   `json:"message"`
	Updated []string `json:"updated"`
	Count   int      `json:"count"`
}

// QuizResultsRequest replaces a student's stored quiz output. The body has
// the same shape as the stored quiz_results field.
type QuizResultsRequest struct {
	Recommendations CareerRecommendationList `json:"recommendations" validate:"required,min=1"`
}

// QuizResults returns the request as the stored quiz_results value.
func (r *QuizResultsRequest) QuizResults() *QuizResults {
	return &QuizResults{Recommendations: r.Recommendations}
}

// QuizResultsResponse confirms which student was updated.
type QuizResultsResponse struct {
	UserID string `json:"user_id"`
}

// HealthStatus is returned by the health endpoints.
type HealthStatus struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Database  bool      `json:"database_connected"`
	Uptime    float64   `json:"uptime"`
	Timestamp time.Time `json:"timestamp"`
}
