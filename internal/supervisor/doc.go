// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

/*
Package supervisor runs the long-lived services of the visit counter under a
suture v4 supervisor tree.

# Tree

	RootSupervisor ("visitcounter")
	├── DataSupervisor ("data-layer")
	│   └── StorageGCService (badger backend only)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Each layer counts failures on its own, so a value-log GC that keeps failing
backs off without restarting the HTTP server.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

Supervisor events are logged through the sutureslog adapter, which in turn
writes to the zerolog backend via logging.NewSlogLogger.

See also: internal/supervisor/services for the service implementations.
*/
package supervisor
