// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

package api

import (
	"context"
	"time"

	"github.com/tomtom215/collegematch/internal/models"
	"github.com/tomtom215/collegematch/internal/recommend"
)

// defaultRequestTimeout bounds a recommendation when no timeout is configured.
const defaultRequestTimeout = 10 * time.Second

// Store is the document store the handlers need. It is satisfied by both
// database.Store and database.BreakerStore.
type Store interface {
	ListColleges(ctx context.Context) ([]models.College, error)
	GetCollege(ctx context.Context, id string) (*models.College, error)
	InsertCollege(ctx context.Context, doc models.Document) (string, error)
	IncrementInterest(ctx context.Context, increments map[string]int64) ([]string, error)
	BulkUpdate(ctx context.Context, updates []models.CollegeUpdate) ([]string, error)
	UpsertStudentQuizResults(ctx context.Context, userID string, quiz *models.QuizResults) error
	Ping(ctx context.Context) error
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: Shared response and request helpers
//   - handlers_colleges.go: College listing, lookup, insert, interest and bulk update
//   - handlers_recommend.go: Recommendation and degree rule endpoints
//   - handlers_students.go: Student quiz result storage
//   - handlers_health.go: Health/monitoring endpoints
type Handler struct {
	store          Store
	engine         *recommend.Engine
	requestTimeout time.Duration
	version        string
	startTime      time.Time
}

// HandlerOptions configures optional Handler settings.
type HandlerOptions struct {
	// RequestTimeout bounds each recommendation. Zero uses 10s.
	RequestTimeout time.Duration

	// Version is reported by the health endpoint.
	Version string
}

// NewHandler creates a new API handler.
//
// Example:
//
//	engine, _ := recommend.NewEngine(database.NewRecommendProvider(reader), cfg.Recommend.Engine(), logger)
//	handler := api.NewHandler(reader, engine, api.HandlerOptions{RequestTimeout: cfg.Recommend.RequestTimeout})
//	router := api.NewRouter(handler, api.NewChiMiddleware(nil))
func NewHandler(store Store, engine *recommend.Engine, opts HandlerOptions) *Handler {
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	version := opts.Version
	if version == "" {
		version = "dev"
	}
	return &Handler{
		store:          store,
		engine:         engine,
		requestTimeout: timeout,
		version:        version,
		startTime:      time.Now(),
	}
}
