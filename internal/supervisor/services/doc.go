// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

/*
Package services provides suture.Service wrappers for Wanderlust components.

Each wrapper translates a component lifecycle (ListenAndServe, Run, a
started server handle) into suture's context-aware Serve method:

	type Service interface {
	    Serve(ctx context.Context) error
	}

# Available Services

HTTPServerService:
  - Wraps *http.Server and drains it with Shutdown on cancellation

EmbeddedBrokerService:
  - Supervises the in-process NATS server and starts a replacement when it dies

EventConsumerService:
  - Runs events.Consumer; unexpected exits trigger a resubscribe

WebSocketHubService:
  - Runs the feedback stream hub and closes its clients on cancellation

StatsReporterService:
  - Refreshes engine gauges and logs activity on an interval

Every service returns ctx.Err() on graceful shutdown and implements
fmt.Stringer so suture can name it in log events.
*/
package services
