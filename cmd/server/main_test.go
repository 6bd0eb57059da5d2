// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/collegematch/internal/api"
	"github.com/tomtom215/collegematch/internal/config"
	"github.com/tomtom215/collegematch/internal/database"
)

func testConfig(breaker bool) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 0, Timeout: 5 * time.Second, ShutdownTimeout: time.Second},
		Database: config.DatabaseConfig{
			InMemory:       true,
			BreakerEnabled: breaker,
		},
		Recommend: config.RecommendConfig{
			LocalRegion:    "nagpur",
			LocalLimit:     10,
			OutsideLimit:   5,
			RequestTimeout: time.Second,
		},
		Security: config.SecurityConfig{RateLimitDisabled: true},
	}
}

func openTestStore(t *testing.T, cfg *config.Config) *database.Store {
	t.Helper()
	store, err := database.Open(&cfg.Database)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSeedStore(t *testing.T) {
	cfg := testConfig(false)
	store := openTestStore(t, cfg)

	if err := seedStore(context.Background(), store, ""); err != nil {
		t.Errorf("empty seed path should be a no-op, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "seed.json")
	seed := `{"colleges":[{"_id":"c1","district":"Nagpur","courses":[{"short_name":"BTECH"}]}],
	          "students":[{"user_id":"u1","quiz_results":{"recommendations":[{"degrees":[{"degree":"B.Tech"}]}]}}]}`
	if err := os.WriteFile(path, []byte(seed), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	if err := seedStore(context.Background(), store, path); err != nil {
		t.Fatalf("seedStore() error = %v", err)
	}

	if err := seedStore(context.Background(), store, filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing seed file")
	}
}

func TestBuildHandler_EndToEnd(t *testing.T) {
	for _, breaker := range []bool{false, true} {
		cfg := testConfig(breaker)
		store := openTestStore(t, cfg)

		path := filepath.Join(t.TempDir(), "seed.json")
		seed := `{"colleges":[{"_id":"c1","district":"Nagpur","courses":[{"short_name":"BTECH"}]}],
		          "students":[{"user_id":"u1","quiz_results":{"recommendations":[{"degrees":[{"degree":"B.Tech"}]}]}}]}`
		if err := os.WriteFile(path, []byte(seed), 0o600); err != nil {
			t.Fatalf("write seed: %v", err)
		}
		if err := seedStore(context.Background(), store, path); err != nil {
			t.Fatalf("seedStore() error = %v", err)
		}

		handler, err := buildHandler(cfg, store)
		if err != nil {
			t.Fatalf("buildHandler(breaker=%v) error = %v", breaker, err)
		}
		router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security))).SetupChi()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/colleges/recommend/u1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("breaker=%v: status = %d, body %s", breaker, w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), "Recommended 1 colleges: 1 in Nagpur, 0 outside") {
			t.Errorf("breaker=%v: unexpected body %s", breaker, w.Body.String())
		}
	}
}

func TestBuildHandler_InvalidEngineConfig(t *testing.T) {
	cfg := testConfig(false)
	cfg.Recommend.LocalRegion = ""
	store := openTestStore(t, cfg)

	if _, err := buildHandler(cfg, store); err == nil {
		t.Error("expected error for empty local region")
	}
}

func TestNewHTTPServer(t *testing.T) {
	cfg := testConfig(false)
	cfg.Server.Port = 9191
	srv := newHTTPServer(cfg, http.NotFoundHandler())

	if srv.Addr != "127.0.0.1:9191" {
		t.Errorf("Addr = %q", srv.Addr)
	}
	if srv.ReadTimeout != 5*time.Second || srv.WriteTimeout != 5*time.Second {
		t.Errorf("timeouts = %v/%v, want 5s", srv.ReadTimeout, srv.WriteTimeout)
	}
	if srv.ReadHeaderTimeout == 0 || srv.IdleTimeout == 0 {
		t.Error("header and idle timeouts must be set")
	}
}

func TestTrackUptime(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		trackUptime(ctx, time.Now().Add(-time.Minute))
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("trackUptime did not return after cancellation")
	}
}
