// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tomtom215/collegematch/internal/config"
)

func TestChiMiddlewareConfigFromSecurity(t *testing.T) {
	t.Parallel()

	if got := ChiMiddlewareConfigFromSecurity(nil); got.RateLimitRequests != 100 || got.RateLimitWindow != time.Minute {
		t.Errorf("nil security config = %+v, want defaults", got)
	}

	sec := &config.SecurityConfig{
		CORSOrigins:       []string{"https://app.example"},
		RateLimitReqs:     5,
		RateLimitWindow:   time.Second,
		RateLimitDisabled: true,
	}
	got := ChiMiddlewareConfigFromSecurity(sec)
	if len(got.CORSAllowedOrigins) != 1 || got.CORSAllowedOrigins[0] != "https://app.example" {
		t.Errorf("CORSAllowedOrigins = %v", got.CORSAllowedOrigins)
	}
	if got.RateLimitRequests != 5 || got.RateLimitWindow != time.Second || !got.RateLimitDisabled {
		t.Errorf("rate limit settings = %d/%v/%v", got.RateLimitRequests, got.RateLimitWindow, got.RateLimitDisabled)
	}
	if got.CORSMaxAge != 86400 {
		t.Errorf("CORSMaxAge = %d, want default", got.CORSMaxAge)
	}
}

func TestRateLimit(t *testing.T) {
	t.Parallel()
	mw := DefaultChiMiddlewareConfig()
	mw.RateLimitRequests = 1
	mw.RateLimitWindow = time.Minute
	s := newTestServerWithMiddleware(t, mw)

	w, _ := s.do(t, http.MethodGet, "/api/v1/degrees", "")
	if w.Code != http.StatusOK {
		t.Fatalf("first request status = %d", w.Code)
	}

	w, env := s.do(t, http.MethodGet, "/api/v1/degrees", "")
	expectError(t, w, env, http.StatusTooManyRequests, ErrCodeRateLimited)

	// health probes sit outside the limited group
	w, _ = s.do(t, http.MethodGet, "/api/v1/health/live", "")
	if w.Code != http.StatusOK {
		t.Errorf("health after limit status = %d", w.Code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	t.Parallel()
	mw := DefaultChiMiddlewareConfig()
	mw.RateLimitRequests = 1
	mw.RateLimitDisabled = true
	s := newTestServerWithMiddleware(t, mw)

	for i := 0; i < 3; i++ {
		w, _ := s.do(t, http.MethodGet, "/api/v1/degrees", "")
		if w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d", i, w.Code)
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	t.Parallel()
	mw := DefaultChiMiddlewareConfig()
	mw.CORSAllowedOrigins = []string{"https://app.example"}
	mw.RateLimitDisabled = true
	s := newTestServerWithMiddleware(t, mw)

	tests := []struct {
		origin string
		want   string
	}{
		{"https://app.example", "https://app.example"},
		{"https://evil.example", ""},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/colleges", nil)
		req.Header.Set("Origin", tt.origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		s.handler.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
			t.Errorf("origin %s: Access-Control-Allow-Origin = %q, want %q", tt.origin, got, tt.want)
		}
	}
}

func TestAPISecurityHeaders(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	w, _ := s.do(t, http.MethodGet, "/api/v1/degrees", "")
	headers := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
		"Cache-Control":          "no-cache",
	}
	for name, want := range headers {
		if got := w.Header().Get(name); got != want {
			t.Errorf("%s = %q, want %q", name, got, want)
		}
	}
	if w.Header().Get("Strict-Transport-Security") != "" {
		t.Error("HSTS set on plain HTTP request")
	}
	if w.Header().Get("ETag") == "" {
		t.Error("ETag missing")
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID missing")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	if rec.Header().Get("Strict-Transport-Security") == "" {
		t.Error("HSTS missing behind TLS proxy")
	}
}

func TestRouting_NotFoundAndMethod(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	w, env := s.do(t, http.MethodGet, "/api/v1/nope", "")
	expectError(t, w, env, http.StatusNotFound, ErrCodeNotFound)

	w, env = s.do(t, http.MethodDelete, "/api/v1/colleges", "")
	expectError(t, w, env, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed)
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	s.do(t, http.MethodGet, "/api/v1/degrees", "")
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("/metrics status = %d", w.Code)
	}
	if w.Body.Len() == 0 {
		t.Error("/metrics body empty")
	}
}

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"line\nbreak", "line\\x0abreak"},
		{"tab\there", "tab\\x09here"},
		{"del\x7f", "del\\x7f"},
		{"ünïcode", "ünïcode"},
	}
	for _, tt := range tests {
		if got := sanitizeLogValue(tt.in); got != tt.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateETag(t *testing.T) {
	t.Parallel()
	a := generateETag([]byte(`{"a":1}`))
	if a != generateETag([]byte(`{"a":1}`)) {
		t.Error("ETag not deterministic")
	}
	if a == generateETag([]byte(`{"a":2}`)) {
		t.Error("ETag collision for different bodies")
	}
}
