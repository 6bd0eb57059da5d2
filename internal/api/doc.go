// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

/*
Package api provides the HTTP interface for CollegeMatch.

Routing uses chi with middleware from the chi ecosystem (RealIP, Recoverer,
Compress, go-chi/cors, go-chi/httprate) plus the service's own request ID,
access log and Prometheus middleware.

# Endpoints

All routes live under /api/v1:

	GET  /colleges                        list colleges with totalInterest
	POST /colleges                        add a college document
	GET  /colleges/{collegeID}            one college document
	POST /colleges/interest-batch         add interest increments {interest: {id: n}}
	PUT  /colleges/update-many            $set-style updates {updates: [{_id, data}]}
	GET  /colleges/recommend/{userID}     recommendation shortlist for a student
	PUT  /students/{userID}/quiz-results  store quiz output {recommendations: [...]}
	GET  /degrees                         degree resolution rules in priority order
	GET  /health, /health/live, /health/ready

Prometheus metrics are served at /metrics.

# Response Format

Every JSON response uses models.APIResponse:

	{"status": "success", "data": {...}, "metadata": {"timestamp": "...", "query_time_ms": 3}}
	{"status": "error", "data": null, "error": {"code": "STUDENT_NOT_FOUND", "message": "Student not found"}, "metadata": {...}}

Recommendation failures map to 404 STUDENT_NOT_FOUND, 404 NO_QUIZ_RESULTS
and 400 NO_MATCHING_DEGREES. A shortlist with no colleges is a 200 whose
message is "No matching colleges found". When the store circuit breaker is
open, store-backed endpoints return 503 SERVICE_UNAVAILABLE.
*/
package api
