// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

/*
Package services provides suture.Service wrappers for CollegeMatch components.

Each wrapper implements Serve(ctx) error and fmt.Stringer, translating a
component's own lifecycle into suture's context-aware pattern.

# Available Services

HTTPServerService (api layer):
  - Runs ListenAndServe in a goroutine
  - Drains connections with Shutdown when the context is cancelled
  - http.ErrServerClosed is treated as a clean exit

StoreGCService (data layer):
  - Runs BadgerDB value log GC every BADGER_GC_INTERVAL
  - A zero interval disables collection
  - A closed store returns suture.ErrDoNotRestart

# Usage

	tree.AddDataService(services.NewStoreGCService(store, cfg.Database.GCInterval, 0, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Timeout, logger))
*/
package services
