// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/collegematch/internal/models"
)

// Outcomes a recommendation request can fail with. None of them is fatal;
// callers map each to its own response.
var (
	// ErrStudentNotFound means no student profile exists for the id.
	ErrStudentNotFound = errors.New("student not found")

	// ErrNoQuizResults means the profile has no usable quiz recommendations.
	ErrNoQuizResults = errors.New("no quiz results available")

	// ErrNoMatchingDegrees means none of the quiz degree names resolved to a
	// known degree code.
	ErrNoMatchingDegrees = errors.New("no matching degrees found")
)

// DataProvider supplies the two reads a recommendation needs.
// This is typically implemented by the database layer.
type DataProvider interface {
	// FindStudent returns the student profile, or nil with no error when
	// the student does not exist.
	FindStudent(ctx context.Context, userID string) (*models.Student, error)

	// ListColleges returns the full college catalog in a stable order.
	ListColleges(ctx context.Context) ([]models.College, error)
}

// Result is a successful recommendation. An empty Colleges list is a valid
// outcome, distinct from the error conditions above.
type Result struct {
	Colleges []MatchedCollege `json:"colleges"`

	// Total, LocalCount and OutsideCount count qualifying colleges before
	// truncation.
	Total        int `json:"total"`
	LocalCount   int `json:"local_count"`
	OutsideCount int `json:"outside_count"`

	// ReturnedLocal and ReturnedOutside count the colleges in Colleges.
	ReturnedLocal   int `json:"returned_local"`
	ReturnedOutside int `json:"returned_outside"`

	Message string `json:"message"`
}

// Empty reports whether no college matched.
func (r *Result) Empty() bool {
	return len(r.Colleges) == 0
}

// Engine runs the recommendation pipeline: load the student, fold the quiz
// output into degree preferences, then rank the catalog.
// It holds no per-request state and is safe for concurrent use.
type Engine struct {
	config   *Config
	ranker   *Ranker
	provider DataProvider
	logger   zerolog.Logger
}

// NewEngine creates a new recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(provider DataProvider, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if provider == nil {
		return nil, fmt.Errorf("data provider is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config:   cfg,
		ranker:   NewRanker(cfg),
		provider: provider,
		logger:   logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() *Config {
	return e.config
}

// Recommend builds the college shortlist for a student.
func (e *Engine) Recommend(ctx context.Context, userID string) (*Result, error) {
	start := time.Now()
	logger := e.logger.With().Str("user_id", userID).Logger()
	logger.Debug().Msg("processing recommendation request")

	student, err := e.provider.FindStudent(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find student: %w", err)
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}
	if !student.HasRecommendations() {
		return nil, ErrNoQuizResults
	}

	prefs := BuildDegreePreferences(student.QuizResults)
	if len(prefs) == 0 {
		return nil, ErrNoMatchingDegrees
	}
	logger.Debug().
		Strs("degree_codes", prefs.Codes()).
		Msg("resolved degree preferences")

	colleges, err := e.provider.ListColleges(ctx)
	if err != nil {
		return nil, fmt.Errorf("list colleges: %w", err)
	}

	shortlist := e.ranker.Rank(prefs, colleges)
	result := e.buildResult(shortlist)

	logger.Info().
		Int("catalog_size", len(colleges)).
		Int("total", result.Total).
		Int("local", result.ReturnedLocal).
		Int("outside", result.ReturnedOutside).
		Dur("latency", time.Since(start)).
		Msg("recommendation complete")

	return result, nil
}

func (e *Engine) buildResult(s *Shortlist) *Result {
	result := &Result{
		Colleges:        s.Colleges(),
		Total:           s.Total(),
		LocalCount:      s.LocalTotal,
		OutsideCount:    s.OutsideTotal,
		ReturnedLocal:   len(s.Local),
		ReturnedOutside: len(s.Outside),
	}

	if result.Empty() {
		result.Message = "No matching colleges found"
		return result
	}
	result.Message = fmt.Sprintf("Recommended %d colleges: %d in %s, %d outside",
		len(result.Colleges), result.ReturnedLocal, e.config.RegionLabel(), result.ReturnedOutside)
	return result
}
