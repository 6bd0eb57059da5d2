// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

/*
Package config provides centralized configuration management for CollegeMatch.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file, then environment variables. Only environment variables listed in
the mapping table are read; anything else in the process environment is
ignored.

# Configuration Structure

  - ServerConfig: HTTP listener (host, port, timeouts)
  - DatabaseConfig: BadgerDB path, in-memory mode, seed file, circuit breaker
  - RecommendConfig: local region and shortlist limits
  - SecurityConfig: CORS origins and per-IP rate limiting
  - LoggingConfig: zerolog level, format and caller info

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8080)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - SHUTDOWN_TIMEOUT: Graceful shutdown deadline (default: 10s)

Database:
  - BADGER_PATH: Data directory (default: /data/collegematch)
  - BADGER_IN_MEMORY: Run without a data directory (default: false)
  - SEED_PATH: JSON file loaded at startup (default: none)
  - DB_BREAKER_ENABLED: Circuit breaker around store reads (default: true)
  - BADGER_GC_INTERVAL: Value log GC interval, 0 disables (default: 10m)

Recommendation:
  - RECOMMEND_LOCAL_REGION, RECOMMEND_LOCAL_LIMIT, RECOMMEND_OUTSIDE_LIMIT,
    RECOMMEND_REQUEST_TIMEOUT

Security:
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

A config file path can be forced with CONFIG_PATH. Otherwise config.yaml,
config.yml and /etc/collegematch/config.yaml are tried in order.

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	engine, err := recommend.NewEngine(provider, cfg.Recommend.Engine(), logger)
*/
package config
