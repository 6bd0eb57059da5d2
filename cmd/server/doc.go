// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

/*
Package main is the entry point for the CollegeMatch server.

CollegeMatch turns a student's career quiz output into a ranked college
shortlist split into local and outside colleges, and serves the college
catalog and its interest counters over a REST API.

# Application Architecture

	RootSupervisor ("collegematch")
	├── DataSupervisor ("data-layer")
	│   └── StoreGCService (BadgerDB value log GC, on-disk stores only)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService (chi router)

Startup order:

 1. Configuration: koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog, JSON or console
 3. Store: BadgerDB, optionally seeded from SEED_PATH
 4. Circuit breaker around store reads (DB_BREAKER_ENABLED)
 5. Recommendation engine
 6. Supervisor tree and HTTP server

# Configuration

	HTTP_HOST=0.0.0.0
	HTTP_PORT=8080
	HTTP_TIMEOUT=30s
	SHUTDOWN_TIMEOUT=10s

	BADGER_PATH=/data/collegematch
	BADGER_IN_MEMORY=false
	BADGER_GC_INTERVAL=10m       # 0 disables value log GC
	SEED_PATH=/data/seed.json    # {"colleges": [...], "students": [...]}
	DB_BREAKER_ENABLED=true

	RECOMMEND_LOCAL_REGION=nagpur
	RECOMMEND_LOCAL_LIMIT=10
	RECOMMEND_OUTSIDE_LIMIT=5
	RECOMMEND_REQUEST_TIMEOUT=10s

	CORS_ORIGINS=*
	RATE_LIMIT_REQUESTS=100
	RATE_LIMIT_WINDOW=1m
	DISABLE_RATE_LIMIT=false

	LOG_LEVEL=info
	LOG_FORMAT=json
	LOG_CALLER=false

A YAML file with the same keys is read from CONFIG_PATH, or else the first
of config.yaml in the working directory or /etc/collegematch/config.yaml.
Environment variables win over the file.

# Example Usage

Local development with an in-memory store:

	export BADGER_IN_MEMORY=true
	export SEED_PATH=./testdata/seed.json
	export LOG_FORMAT=console
	./collegematch

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains
in-flight requests for up to SHUTDOWN_TIMEOUT, then the store is closed.
*/
package main
