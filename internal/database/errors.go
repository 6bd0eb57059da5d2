// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

package database

import (
	"errors"
	"io"

	"github.com/rs/zerolog"
)

var (
	// ErrNotFound is returned when a college or student key does not exist.
	ErrNotFound = errors.New("document not found")

	// ErrStoreClosed is returned for operations on a closed store.
	ErrStoreClosed = errors.New("store is closed")

	// ErrInvalidDocument is returned when a document cannot be stored as a
	// JSON object.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrDuplicateID is returned when inserting a college whose _id is taken.
	ErrDuplicateID = errors.New("duplicate document id")

	// ErrUnavailable is returned when the circuit breaker rejects a read.
	ErrUnavailable = errors.New("store temporarily unavailable")
)

// closeWithLog closes a resource and logs any error
// Use this for cleanup operations where errors should be acknowledged but not fail the operation
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func closeWithLog(closer io.Closer, logger zerolog.Logger, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logger.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}
