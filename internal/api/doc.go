// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

/*
Package api provides the HTTP interface for Wanderlust.

Routes are served by a chi router with production middleware from the chi
ecosystem (go-chi/cors, go-chi/httprate) plus the internal middleware for
request IDs and Prometheus metrics.

# Endpoints

Original interface:
  - GET  /                                   liveness message
  - POST /api/recommendations                named-field content query

Versioned API (APIResponse envelope):
  - POST /api/v1/recommendations/content       ten-value preference vector
  - POST /api/v1/recommendations/collaborative liked items against reference profiles
  - GET  /api/v1/recommendations/status        engine counters
  - POST /api/v1/feedback                      like or dislike a destination
  - GET  /api/v1/destinations                  catalog listing
  - GET  /api/v1/profiles                      reference profile listing
  - GET  /api/v1/health[/live|/ready]          health probes

Operational:
  - GET /metrics     Prometheus exposition
  - GET /swagger/*   Swagger UI

# Response Format

Versioned endpoints wrap payloads in models.APIResponse:

	{
	    "status": "success",
	    "data": {...},
	    "metadata": {"timestamp": "...", "query_time_ms": 1, "request_id": "..."}
	}

Errors use the same envelope with status "error" and an error object whose
code is one of VALIDATION_ERROR, INVALID_REQUEST, METHOD_NOT_ALLOWED,
NOT_FOUND, RATE_LIMIT_EXCEEDED, RECOMMENDATION_ERROR or FEEDBACK_ERROR.

The original endpoints keep their bare response shapes.
*/
package api
