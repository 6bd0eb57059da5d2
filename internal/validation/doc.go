// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared process-wide; it caches struct
// metadata and is safe for concurrent use. Errors are reported under the
// json field names of the request body and convert to the API's
// VALIDATION_ERROR shape through ToAPIError.
//
// Custom tags:
//   - docid: a non-blank identifier without control characters, used for
//     college _id values and student user ids
//
// Example:
//
//	var req models.QuizResultsRequest
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, verr)
//	    return
//	}
package validation
