// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

package api

// API error codes returned in APIError.Code
const (
	ErrCodeInvalidRequest     = "INVALID_REQUEST"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeDatabase           = "DATABASE_ERROR"
	ErrCodeConflict           = "CONFLICT"
	ErrCodeNoInterestData     = "NO_INTEREST_DATA"
	ErrCodeStudentNotFound    = "STUDENT_NOT_FOUND"
	ErrCodeNoQuizResults      = "NO_QUIZ_RESULTS"
	ErrCodeNoMatchingDegrees  = "NO_MATCHING_DEGREES"
	ErrCodeRecommendation     = "RECOMMENDATION_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeRateLimited        = "RATE_LIMITED"
	ErrCodeNotFound           = "NOT_FOUND"
)
