// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

// Package logging provides centralized zerolog-based logging for CollegeMatch.
//
// A global logger is configured once from LoggingConfig and used everywhere:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("addr", addr).Msg("HTTP server listening")
//
// Request-scoped logging picks up the request and correlation IDs that the
// HTTP middleware stores in the context:
//
//	logging.Ctx(ctx).Warn().Str("user_id", id).Msg("Student not found")
//
// Components that take a zerolog.Logger (the recommendation engine, the
// store) receive a child logger from WithComponent. SlogHandler bridges the
// supervisor tree's slog output into zerolog.
//
// Always terminate log chains with .Msg() or .Send(); an unterminated
// event is never written.
package logging
