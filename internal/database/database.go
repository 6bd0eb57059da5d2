// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

package database

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"github.com/tomtom215/collegematch/internal/config"
	"github.com/tomtom215/collegematch/internal/logging"
	"github.com/tomtom215/collegematch/internal/metrics"
)

// DefaultGCDiscardRatio is the value log discard ratio used by RunGC callers
// that have no better estimate.
const DefaultGCDiscardRatio = 0.5

// maxTxnRetries bounds retries of read-modify-write transactions that lose
// a conflict to a concurrent writer.
const maxTxnRetries = 3

// Store is the BadgerDB-backed document store holding the College and
// Students collections. All methods are safe for concurrent use.
type Store struct {
	db       *badger.DB
	inMemory bool
	logger   zerolog.Logger
	closed   atomic.Bool
}

// Open opens (or creates) the store described by cfg.
func Open(cfg *config.DatabaseConfig) (*Store, error) {
	if cfg == nil {
		return nil, fmt.Errorf("database config is required")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts.Logger = nil // Disable BadgerDB's internal logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	logger := logging.WithComponent("database")
	if cfg.InMemory {
		logger.Info().Msg("Opened in-memory document store")
	} else {
		logger.Info().Str("path", cfg.Path).Msg("Opened document store")
	}

	return &Store{db: db, inMemory: cfg.InMemory, logger: logger}, nil
}

// Close closes the underlying database. Calling Close more than once is a no-op.
func (s *Store) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close BadgerDB: %w", err)
	}
	s.logger.Info().Msg("Document store closed")
	return nil
}

// Ping verifies the store can serve a read transaction.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	start := time.Now()
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(pingKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
	metrics.RecordDBQuery("ping", "", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// RunGC reclaims value log space until BadgerDB reports nothing left to
// rewrite. In-memory stores have no value log and return immediately.
func (s *Store) RunGC(discardRatio float64) error {
	if s.closed.Load() {
		return ErrStoreClosed
	}
	if s.inMemory {
		return nil
	}

	runs := 0
	for {
		err := s.db.RunValueLogGC(discardRatio)
		if errors.Is(err, badger.ErrNoRewrite) {
			break
		}
		if err != nil {
			return fmt.Errorf("run GC: %w", err)
		}
		runs++
	}
	if runs > 0 {
		s.logger.Debug().Int("rewrites", runs).Msg("Value log GC completed")
	}
	return nil
}

// ready fails fast for closed stores and cancelled contexts.
func (s *Store) ready(ctx context.Context) error {
	if s.closed.Load() {
		return ErrStoreClosed
	}
	return ctx.Err()
}
