// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

/*
Package middleware provides HTTP middleware for the CollegeMatch API.

Middleware uses the http.HandlerFunc wrapping style; the api package adapts
each one to chi's func(http.Handler) http.Handler with a small shim.

  - RequestID: X-Request-ID propagation plus request/correlation IDs in the
    logging context
  - PrometheusMetrics: request count, latency and in-flight gauge keyed by
    chi route pattern
  - AccessLog: one zerolog line per completed request

Order matters: RequestID must run before AccessLog so log lines carry the IDs.

	r.Use(adapt(middleware.RequestID))
	r.Use(adapt(middleware.AccessLog))
	r.Use(adapt(middleware.PrometheusMetrics))
*/
package middleware
