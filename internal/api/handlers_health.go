// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/wanderlust/internal/models"
)

// rootMessage is the original liveness text.
const rootMessage = "Travel Destination Recommender API is running"

// Root handles GET /.
//
// @Summary API liveness message
// @Description Returns a fixed message confirming the service is running.
// @Tags Core
// @Produce json
// @Success 200 {object} models.RootMessage
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, models.RootMessage{Message: rootMessage})
}

// Health handles health check requests.
//
// @Summary Get service health
// @Description Returns readiness, catalog and profile sizes, event consumer state and uptime.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus}
// @Router /api/v1/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	engineHealth := h.engine.Health()

	status := "healthy"
	if !engineHealth.Ready {
		status = "unavailable"
	}

	health := models.HealthStatus{
		Status:       status,
		Version:      h.version,
		Ready:        engineHealth.Ready,
		CatalogSize:  engineHealth.CatalogSize,
		ProfileCount: engineHealth.ProfileCount,
		EventsActive: h.eventsActive != nil && h.eventsActive(),
		Uptime:       h.uptime(),
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   models.StatusSuccess,
		Data:     health,
		Metadata: h.metadata(r, start, 0),
	})
}

// HealthLive handles liveness probes. It answers 200 whenever the process
// can serve HTTP.
//
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /api/v1/health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data: map[string]any{
			"alive":          true,
			"uptime_seconds": h.uptime(),
		},
		Metadata: h.metadata(r, time.Now(), 0),
	})
}

// HealthReady handles readiness probes. It answers 503 until the catalog
// holds at least one destination.
//
// @Summary Readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse
// @Failure 503 {object} models.APIResponse
// @Router /api/v1/health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	engineHealth := h.engine.Health()
	if !engineHealth.Ready {
		respondError(w, http.StatusServiceUnavailable, "NOT_READY", "Catalog is empty", nil)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data: map[string]any{
			"ready":         true,
			"catalog_size":  engineHealth.CatalogSize,
			"profile_count": engineHealth.ProfileCount,
		},
		Metadata: h.metadata(r, time.Now(), 0),
	})
}
