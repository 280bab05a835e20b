// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

/*
Package main is the entry point for the Wanderlust server.

Wanderlust recommends travel destinations two ways: by cosine similarity
between a preference vector and each destination's attributes, and by
borrowing favourites from the reference traveller profiles whose liked
destinations overlap most with the user's.

# Application Architecture

Services run under a Suture v4 supervisor tree:

	RootSupervisor ("wanderlust")
	├── BrokerSupervisor ("broker-layer")
	│   └── Embedded NATS server (events.backend=nats, events.embedded_nats=true)
	├── MessagingSupervisor ("messaging-layer")
	│   ├── Feedback stream hub (websocket)
	│   ├── Feedback event consumer
	│   ├── Result cache sweeper
	│   └── Stats reporter
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with defaults, an optional YAML file and environment variables
 2. Logging: zerolog with JSON/console output modes
 3. Supervisor tree: Suture v4, logging through sutureslog
 4. Recommendation engine: catalog CSV and profile YAML, embedded when no path is set
 5. Event bus: Watermill over gochannel or NATS, with publish circuit breaker
 6. HTTP Server: Chi router with CORS, rate limiting and Prometheus middleware

# Configuration

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	HTTP_PORT=8000               # HTTP server port
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console
	CATALOG_PATH=                # destination CSV; empty uses the embedded dataset
	PROFILES_PATH=               # reference profile YAML; empty uses the embedded set
	CORS_ORIGINS=*               # comma-separated allowed origins
	EVENTS_BACKEND=memory        # memory or nats
	NATS_URL=nats://127.0.0.1:4222
	NATS_EMBEDDED=false          # run a NATS server in-process

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains in-flight
requests within server.shutdown_timeout, the consumer unsubscribes and the
event bus is closed.

# Example Usage

	curl -s localhost:8000/api/v1/recommendations/content \
	  -d '{"vector":[9,2,3,1,8,9,2,9,1,2]}'

	curl -s localhost:8000/api/v1/recommendations/collaborative \
	  -d '{"user_id":"u1","liked_items":["Queenstown","Interlaken"]}'
*/
package main
