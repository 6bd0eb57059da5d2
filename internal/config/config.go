// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/collegematch/internal/recommend"
)

// Config holds all application configuration loaded from defaults, an optional
// YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting via environment variables
//
// Example - Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	store, err := database.Open(&cfg.Database)
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds BadgerDB settings
type DatabaseConfig struct {
	Path           string `koanf:"path"`
	InMemory       bool   `koanf:"in_memory"`       // Run without a data directory (tests, demos)
	SeedPath       string `koanf:"seed_path"`       // JSON file with {colleges, students} loaded at startup
	BreakerEnabled bool   `koanf:"breaker_enabled"` // Wrap store reads in a circuit breaker

	// GCInterval is how often value log garbage collection runs (0 disables).
	// Ignored for in-memory stores.
	GCInterval time.Duration `koanf:"gc_interval"`
}

// RecommendConfig holds recommendation pipeline settings.
//
// Environment Variables:
//   - RECOMMEND_LOCAL_REGION: city/district treated as local (default: nagpur)
//   - RECOMMEND_LOCAL_LIMIT: max local colleges returned (default: 10)
//   - RECOMMEND_OUTSIDE_LIMIT: max outside colleges returned (default: 5)
//   - RECOMMEND_REQUEST_TIMEOUT: per-request deadline (default: 10s)
type RecommendConfig struct {
	LocalRegion    string        `koanf:"local_region"`
	LocalLimit     int           `koanf:"local_limit"`
	OutsideLimit   int           `koanf:"outside_limit"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// Engine converts the loaded settings into the recommend package's config.
func (r RecommendConfig) Engine() *recommend.Config {
	return &recommend.Config{
		LocalRegion:  r.LocalRegion,
		LocalLimit:   r.LocalLimit,
		OutsideLimit: r.OutsideLimit,
	}
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Load reads configuration from all sources in priority order:
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Environment variables
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
