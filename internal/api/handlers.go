// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/wanderlust/internal/middleware"
	"github.com/tomtom215/wanderlust/internal/models"
	"github.com/tomtom215/wanderlust/internal/recommend"
	ws "github.com/tomtom215/wanderlust/internal/websocket"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct, constructor, fallbacks (this file)
//   - handlers_helpers.go: response and decoding helpers
//   - handlers_health.go: root and health probes
//   - handlers_recommend.go: content, collaborative, legacy and status
//   - handlers_feedback.go: feedback recording
//   - handlers_catalog.go: destination and profile listings
//   - handlers_stream.go: websocket feedback stream
type Handler struct {
	engine         *recommend.Engine
	version        string
	eventsActive   func() bool
	hub            *ws.Hub
	allowedOrigins []string
	attachTimeout  time.Duration
	startTime      time.Time
}

// HandlerOptions holds optional handler settings.
type HandlerOptions struct {
	// Version is reported by the health endpoint.
	Version string

	// EventsActive reports whether the feedback consumer is running.
	// Nil means events are disabled.
	EventsActive func() bool

	// Hub serves GET /api/v1/feedback/stream. Nil answers 503.
	Hub *ws.Hub

	// AllowedOrigins gates websocket handshakes. Empty allows any origin.
	AllowedOrigins []string
}

// NewHandler creates the API handler around a ready engine.
//
//	handler := api.NewHandler(engine, api.HandlerOptions{Version: version})
//	router := api.NewRouter(handler, api.NewChiMiddleware(mwCfg))
//	srv := &http.Server{Addr: ":8000", Handler: router.SetupChi()}
func NewHandler(engine *recommend.Engine, opts HandlerOptions) *Handler {
	if opts.Version == "" {
		opts.Version = "dev"
	}
	return &Handler{
		engine:         engine,
		version:        opts.Version,
		eventsActive:   opts.EventsActive,
		hub:            opts.Hub,
		allowedOrigins: opts.AllowedOrigins,
		attachTimeout:  defaultStreamAttachTimeout,
		startTime:      time.Now(),
	}
}

// NotFound answers unknown routes with the error envelope.
func (h *Handler) NotFound(w http.ResponseWriter, _ *http.Request) {
	respondError(w, http.StatusNotFound, "NOT_FOUND", "Resource not found", nil)
}

// MethodNotAllowed answers known routes hit with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
}

// metadata builds response metadata for a request that started at start.
func (h *Handler) metadata(r *http.Request, start time.Time, count int) models.Metadata {
	return models.Metadata{
		Timestamp:   time.Now(),
		QueryTimeMS: time.Since(start).Milliseconds(),
		Count:       count,
		RequestID:   middleware.GetRequestID(r.Context()),
	}
}

func (h *Handler) uptime() float64 {
	return time.Since(h.startTime).Seconds()
}
