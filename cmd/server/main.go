// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/collegematch/internal/api"
	"github.com/tomtom215/collegematch/internal/config"
	"github.com/tomtom215/collegematch/internal/database"
	"github.com/tomtom215/collegematch/internal/logging"
	"github.com/tomtom215/collegematch/internal/metrics"
	"github.com/tomtom215/collegematch/internal/recommend"
	"github.com/tomtom215/collegematch/internal/supervisor"
	"github.com/tomtom215/collegematch/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const uptimeInterval = 15 * time.Second

// storeBackend is what the handlers and the recommendation provider need
// from the store, satisfied by both *database.Store and *database.BreakerStore.
type storeBackend interface {
	api.Store
	database.Reader
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("addr", cfg.Server.Addr()).
		Bool("in_memory", cfg.Database.InMemory).
		Str("local_region", cfg.Recommend.LocalRegion).
		Msg("Starting CollegeMatch")

	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	store, err := database.Open(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open document store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Err(err).Msg("Error closing document store")
		}
	}()

	if err := seedStore(context.Background(), store, cfg.Database.SeedPath); err != nil {
		_ = store.Close()
		logging.Fatal().Err(err).Str("path", cfg.Database.SeedPath).Msg("Failed to seed document store")
	}

	handler, err := buildHandler(cfg, store)
	if err != nil {
		_ = store.Close()
		logging.Fatal().Err(err).Msg("Failed to initialize recommendation engine")
	}

	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security)))
	server := newHTTPServer(cfg, router.SetupChi())

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		_ = store.Close()
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if cfg.Database.GCInterval > 0 && !cfg.Database.InMemory {
		tree.AddDataService(services.NewStoreGCService(store, cfg.Database.GCInterval, database.DefaultGCDiscardRatio, logging.Logger()))
		logging.Info().Dur("interval", cfg.Database.GCInterval).Msg("Store GC service added")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.Logger()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go trackUptime(ctx, time.Now())

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	// errCh receives exactly once, when the root supervisor returns.
	var treeErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal, waiting for supervisor to finish")
		treeErr = <-errCh
	case treeErr = <-errCh:
	}
	if treeErr != nil && !errors.Is(treeErr, context.Canceled) {
		logging.Err(treeErr).Msg("Supervisor tree error")
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	logging.Info().Msg("CollegeMatch stopped")
}

// seedStore loads the seed file when one is configured.
func seedStore(ctx context.Context, store *database.Store, path string) error {
	if path == "" {
		logging.Debug().Msg("No seed file configured")
		return nil
	}
	result, err := store.Seed(ctx, path)
	if err != nil {
		return err
	}
	logging.Info().
		Str("path", path).
		Int("colleges", result.Colleges).
		Int("students", result.Students).
		Msg("Seeded document store")
	return nil
}

// buildHandler wires the store, optional circuit breaker and recommendation
// engine into the API handler.
func buildHandler(cfg *config.Config, store *database.Store) (*api.Handler, error) {
	var backend storeBackend = store
	if cfg.Database.BreakerEnabled {
		backend = database.NewBreakerStore(store)
		logging.Info().Str("breaker", database.BreakerName).Msg("Store reads protected by circuit breaker")
	}

	engine, err := recommend.NewEngine(
		database.NewRecommendProvider(backend),
		cfg.Recommend.Engine(),
		logging.WithComponent("recommend"),
	)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}

	return api.NewHandler(backend, engine, api.HandlerOptions{
		RequestTimeout: cfg.Recommend.RequestTimeout,
		Version:        version,
	}), nil
}

func newHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
}

func trackUptime(ctx context.Context, start time.Time) {
	ticker := time.NewTicker(uptimeInterval)
	defer ticker.Stop()
	for {
		metrics.AppUptime.Set(time.Since(start).Seconds())
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
