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

// Destinations handles GET /api/v1/destinations.
//
// @Summary List destinations
// @Description Returns every catalog destination in load order.
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.DestinationList}
// @Router /api/v1/destinations [get]
func (h *Handler) Destinations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	items := h.engine.Catalog().Items()

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   models.StatusSuccess,
		Data:     models.DestinationList{Destinations: items},
		Metadata: h.metadata(r, start, len(items)),
	})
}

// Profiles handles GET /api/v1/profiles.
//
// @Summary List reference profiles
// @Description Returns the reference profiles used for collaborative recommendations, in declared order.
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.ProfileList}
// @Router /api/v1/profiles [get]
func (h *Handler) Profiles(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	profiles := h.engine.Profiles().Profiles()

	summaries := make([]models.ProfileSummary, 0, len(profiles))
	for _, p := range profiles {
		summaries = append(summaries, models.ProfileSummary{
			ID:         p.ID,
			LikedItems: p.Liked,
			Weights:    p.Weights,
		})
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   models.StatusSuccess,
		Data:     models.ProfileList{Profiles: summaries},
		Metadata: h.metadata(r, start, len(summaries)),
	})
}
