// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

package database

import (
	"context"
	"errors"

	"github.com/tomtom215/collegematch/internal/models"
)

// Reader is the read path shared by Store and BreakerStore.
type Reader interface {
	FindStudent(ctx context.Context, userID string) (*models.Student, error)
	ListColleges(ctx context.Context) ([]models.College, error)
}

// RecommendProvider adapts a Reader to recommend.DataProvider, which
// reports an absent student as a nil profile rather than an error.
type RecommendProvider struct {
	reader Reader
}

// NewRecommendProvider wraps reader for the recommendation engine.
func NewRecommendProvider(reader Reader) *RecommendProvider {
	return &RecommendProvider{reader: reader}
}

// FindStudent returns nil, nil when the student does not exist.
func (p *RecommendProvider) FindStudent(ctx context.Context, userID string) (*models.Student, error) {
	student, err := p.reader.FindStudent(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return student, err
}

// ListColleges returns the full catalog.
func (p *RecommendProvider) ListColleges(ctx context.Context) ([]models.College, error) {
	return p.reader.ListColleges(ctx)
}
