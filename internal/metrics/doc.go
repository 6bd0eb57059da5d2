// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto at
package initialization, so importing the package is enough to expose them.

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

HTTP Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)

Store Metrics:
  - store_operation_duration_seconds: BadgerDB operation time (histogram)
    Labels: operation, collection
  - store_operation_errors_total: Failed operations (counter)
    Labels: operation, collection, error_type
  - store_documents: Documents seen by the last full scan (gauge)
    Labels: collection

Recommendation Metrics:
  - recommendations_total: Requests by outcome (counter)
    Labels: outcome
  - recommendation_duration_seconds: Pipeline latency (histogram)
  - recommendation_shortlist_size: Returned colleges per bucket (histogram)
    Labels: bucket (local, outside)
  - college_interest_increments_total: Interest added by batch updates (counter)

Circuit Breaker Metrics:
  - circuit_breaker_state: Current state (gauge)
    Labels: name
    Values: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total: Requests by result (counter)
    Labels: name, result
  - circuit_breaker_consecutive_failures: Current failure streak (gauge)
  - circuit_breaker_state_transitions_total: Transitions (counter)
    Labels: name, from, to

# Usage

	start := time.Now()
	colleges, err := store.ListColleges(ctx)
	metrics.RecordDBQuery("scan", "colleges", time.Since(start), err)
*/
package metrics
