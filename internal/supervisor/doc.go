// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

/*
Package supervisor provides process supervision for Wanderlust using suture v4.

Every long-running component runs as a suture.Service inside a three-layer
tree:

	RootSupervisor ("wanderlust")
	├── BrokerSupervisor ("broker-layer")
	│   └── EmbeddedBrokerService (EVENTS_BACKEND=nats with NATS_EMBEDDED)
	├── MessagingSupervisor ("messaging-layer")
	│   ├── WebSocketHubService (EVENTS_ENABLED)
	│   ├── EventConsumerService (EVENTS_ENABLED)
	│   ├── result cache sweeper (RECOMMEND_CACHE_ENABLED)
	│   └── StatsReporterService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services restart with suture's backoff. Supervisor events are logged
through sutureslog into the zerolog-backed slog handler.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    FailureThreshold: cfg.Supervisor.FailureThreshold,
	    ShutdownTimeout:  cfg.Supervisor.ShutdownTimeout,
	})
	tree.Add(supervisor.LayerAPI, services.NewHTTPServerService(srv, 10*time.Second, logger))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	err = tree.Serve(ctx)

# Return Values

Services return ctx.Err() on shutdown, an error to request a restart, or
suture.ErrDoNotRestart when they finish for good.
*/
package supervisor
