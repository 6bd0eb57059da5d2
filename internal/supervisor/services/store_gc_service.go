// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/collegematch/internal/database"
	"github.com/tomtom215/collegematch/internal/metrics"
)

// GarbageCollector is the store surface the GC service drives.
// Satisfied by *database.Store.
type GarbageCollector interface {
	RunGC(discardRatio float64) error
}

// StoreGCService periodically reclaims BadgerDB value log space.
type StoreGCService struct {
	store        GarbageCollector
	interval     time.Duration
	discardRatio float64
	logger       zerolog.Logger
	name         string
}

// NewStoreGCService creates the service. A non-positive interval disables
// collection; the service then idles until shutdown. A ratio outside (0, 1)
// uses database.DefaultGCDiscardRatio.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewStoreGCService(store GarbageCollector, interval time.Duration, discardRatio float64, logger zerolog.Logger) *StoreGCService {
	if discardRatio <= 0 || discardRatio >= 1 {
		discardRatio = database.DefaultGCDiscardRatio
	}
	return &StoreGCService{
		store:        store,
		interval:     interval,
		discardRatio: discardRatio,
		logger:       logger.With().Str("service", "store-gc").Logger(),
		name:         "store-gc",
	}
}

// Serve implements suture.Service. A closed store ends the service without
// a restart.
func (s *StoreGCService) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		s.logger.Info().Msg("store GC disabled")
		<-ctx.Done()
		return ctx.Err()
	}

	s.logger.Info().Dur("interval", s.interval).Float64("discard_ratio", s.discardRatio).Msg("store GC service starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			if err := s.collect(); err != nil {
				if errors.Is(err, database.ErrStoreClosed) {
					return fmt.Errorf("%w: %w", suture.ErrDoNotRestart, err)
				}
				s.logger.Warn().Err(err).Msg("store GC failed")
			}
		}
	}
}

func (s *StoreGCService) collect() error {
	start := time.Now()
	err := s.store.RunGC(s.discardRatio)
	metrics.RecordStoreGC(err)
	if err == nil {
		s.logger.Debug().Dur("duration", time.Since(start)).Msg("store GC pass complete")
	}
	return err
}

// String implements fmt.Stringer.
func (s *StoreGCService) String() string {
	return s.name
}
