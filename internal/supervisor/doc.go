// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package supervisor provides process supervision for Reelmatch using suture v4.

Long-running services are organized into two layers for failure isolation:

	RootSupervisor ("reelmatch")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── MaintenanceService (cache purge, gauge refresh)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crashing maintenance loop is restarted without affecting the HTTP server,
and the reverse. Crashed services restart with suture's backoff; context
cancellation shuts the whole tree down within ShutdownTimeout.

Supervisor events (service start failures, panics, backoff) are logged
through sutureslog into the zerolog global logger:

	tree, err := supervisor.NewSupervisorTree(
	    logging.NewSlogLogger("supervisor"),
	    supervisor.DefaultTreeConfig(),
	)
	tree.AddMaintenanceService(services.NewMaintenanceService(system, time.Minute, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, 15*time.Second, logger))
	err = tree.Serve(ctx)
*/
package supervisor
