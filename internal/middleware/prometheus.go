// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/wanderlust/internal/metrics"
)

const unmatchedEndpoint = "unmatched"

// PrometheusMetrics feeds the wanderlust_api_* collectors. Requests are
// labelled by chi route pattern, so /api/v1/destinations/Paris and
// /api/v1/destinations/Rome count as one endpoint.
func PrometheusMetrics(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics.TrackActiveRequest(true)
		defer metrics.TrackActiveRequest(false)

		rec := &statusRecorder{ResponseWriter: w}
		began := time.Now()
		next(rec, r)

		metrics.RecordAPIRequest(r.Method, endpointLabel(r), strconv.Itoa(rec.Status()), time.Since(began))
	}
}

// endpointLabel reads the route pattern, which chi completes only once
// routing has finished.
func endpointLabel(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	switch {
	case rctx == nil:
		return r.URL.Path
	case rctx.RoutePattern() == "":
		return unmatchedEndpoint
	default:
		return rctx.RoutePattern()
	}
}

// statusRecorder remembers the first status written. Zero means the
// handler never called WriteHeader, which net/http treats as 200.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Status() int {
	if s.status == 0 {
		return http.StatusOK
	}
	return s.status
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}
