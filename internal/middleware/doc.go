// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

// Package middleware provides net/http middleware shared by the API router.
//
// Middleware here uses the http.HandlerFunc shape; the api package adapts it
// to chi's func(http.Handler) http.Handler with chiMiddleware.
//
//   - RequestID: assigns X-Request-ID and seeds the logging context
//   - PrometheusMetrics: records api_requests_total and latency per route
package middleware
