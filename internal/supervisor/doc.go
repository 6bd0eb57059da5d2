// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

/*
Package supervisor provides process supervision for CollegeMatch using suture v4.

# Tree Layout

	RootSupervisor ("collegematch")
	├── DataSupervisor ("data-layer")
	│   └── StoreGCService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Each layer restarts its own services with exponential backoff. A GC loop
that keeps failing never restarts the HTTP server.

# Events

Supervisor events (service failures, backoff, terminations) are written
through sutureslog to the slog logger passed to NewSupervisorTree, which in
the server is logging.NewSlogLogger() so they end up in the zerolog stream.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.Timeout,
	})
	tree.AddDataService(services.NewStoreGCService(store, cfg.Database.GCInterval, 0, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Timeout, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	errCh := tree.ServeBackground(ctx)
	<-errCh

See package services for the wrappers.
*/
package supervisor
