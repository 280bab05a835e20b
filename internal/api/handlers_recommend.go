// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/wanderlust/internal/metrics"
	"github.com/tomtom215/wanderlust/internal/models"
	"github.com/tomtom215/wanderlust/internal/recommend"
	"github.com/tomtom215/wanderlust/internal/validation"
)

// ContentRecommendations handles POST /api/v1/recommendations/content.
//
// @Summary Content-based recommendations
// @Description Ranks the catalog by cosine similarity to a ten-value preference vector (culture, adventure, nature, beaches, nightlife, cuisine, wellness, urban, seclusion, budget).
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body ContentRequest true "Preference vector"
// @Success 200 {object} models.APIResponse{data=models.ContentRecommendations}
// @Failure 400 {object} models.APIResponse
// @Router /api/v1/recommendations/content [post]
func (h *Handler) ContentRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req ContentRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		metrics.RecordRecommendation(metrics.KindContent, metrics.OutcomeInvalid, time.Since(start), 0)
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		metrics.RecordRecommendation(metrics.KindContent, metrics.OutcomeInvalid, time.Since(start), 0)
		respondAPIError(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	recs, ok := h.rankContent(w, r, req.Vector, start)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   models.StatusSuccess,
		Data:     models.ContentRecommendations{Recommendations: recs},
		Metadata: h.metadata(r, start, len(recs)),
	})
}

// LegacyRecommendations handles POST /api/recommendations, the original
// named-field interface. Invalid bodies answer 422.
//
// @Summary Content recommendations (original interface)
// @Description Accepts nine attribute scores plus budget_level_preference and returns the top five destinations without the response envelope.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body LegacyRecommendationRequest true "Preferences"
// @Success 200 {object} models.LegacyRecommendationsResponse
// @Failure 422 {object} models.APIResponse
// @Router /api/recommendations [post]
func (h *Handler) LegacyRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req LegacyRecommendationRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		metrics.RecordRecommendation(metrics.KindContent, metrics.OutcomeInvalid, time.Since(start), 0)
		respondError(w, http.StatusUnprocessableEntity, "INVALID_REQUEST", err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		metrics.RecordRecommendation(metrics.KindContent, metrics.OutcomeInvalid, time.Since(start), 0)
		respondAPIError(w, http.StatusUnprocessableEntity, apiErr, nil)
		return
	}

	recs, ok := h.rankContent(w, r, req.Vector(), start)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, models.LegacyRecommendationsResponse{Recommendations: recs})
}

// rankContent runs the content engine and records the outcome. On failure
// it writes the error response and returns false.
func (h *Handler) rankContent(w http.ResponseWriter, r *http.Request, vector []float64, start time.Time) ([]recommend.Recommendation, bool) {
	recs, err := h.engine.ContentRecommendations(r.Context(), vector)
	if err != nil {
		h.respondEngineError(w, metrics.KindContent, start, err)
		return nil, false
	}
	metrics.RecordRecommendation(metrics.KindContent, metrics.OutcomeSuccess, time.Since(start), len(recs))
	return recs, true
}

// CollaborativeRecommendations handles POST /api/v1/recommendations/collaborative.
//
// @Summary Collaborative recommendations
// @Description Compares liked destinations to reference profiles by Jaccard similarity and suggests up to five of the closest profiles' favourites.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body CollaborativeRequest true "Liked destinations"
// @Success 200 {object} models.APIResponse{data=models.CollaborativeRecommendations}
// @Failure 400 {object} models.APIResponse
// @Router /api/v1/recommendations/collaborative [post]
func (h *Handler) CollaborativeRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req CollaborativeRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		metrics.RecordRecommendation(metrics.KindCollaborative, metrics.OutcomeInvalid, time.Since(start), 0)
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		return
	}
	apiErr := validateRequest(&req)
	if apiErr == nil {
		apiErr = h.checkLikedLimit(len(req.LikedItems))
	}
	if apiErr != nil {
		metrics.RecordRecommendation(metrics.KindCollaborative, metrics.OutcomeInvalid, time.Since(start), 0)
		respondAPIError(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	result, err := h.engine.CollaborativeRecommendations(r.Context(), req.UserID, req.LikedItems)
	if err != nil {
		h.respondEngineError(w, metrics.KindCollaborative, start, err)
		return
	}
	metrics.RecordRecommendation(metrics.KindCollaborative, metrics.OutcomeSuccess, time.Since(start), len(result.Recommendations))

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data: models.CollaborativeRecommendations{
			UserID:          req.UserID,
			Recommendations: result.Recommendations,
			Neighbors:       result.Neighbors,
		},
		Metadata: h.metadata(r, start, len(result.Recommendations)),
	})
}

func (h *Handler) checkLikedLimit(n int) *models.APIError {
	limit := h.engine.Config().Limits.MaxLikedItems
	if n <= limit {
		return nil
	}
	return &models.APIError{
		Code:    validation.ErrorCode,
		Message: fmt.Sprintf("liked_items must contain at most %d items", limit),
		Details: map[string]any{"field": "liked_items", "tag": "max"},
	}
}

// RecommendationStatus handles GET /api/v1/recommendations/status.
//
// @Summary Engine status
// @Description Returns request counters, cache hits, catalog and profile sizes and the number of users with feedback.
// @Tags Recommendations
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.EngineStatus}
// @Router /api/v1/recommendations/status [get]
func (h *Handler) RecommendationStatus(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data: models.EngineStatus{
			Stats:  h.engine.Stats(),
			Uptime: h.uptime(),
		},
		Metadata: h.metadata(r, start, 0),
	})
}

// respondEngineError maps engine errors: validation errors become 400,
// anything else 500.
func (h *Handler) respondEngineError(w http.ResponseWriter, kind string, start time.Time, err error) {
	if recommend.IsValidationError(err) {
		metrics.RecordRecommendation(kind, metrics.OutcomeInvalid, time.Since(start), 0)
		respondAPIError(w, http.StatusBadRequest, engineValidationError(err), nil)
		return
	}
	metrics.RecordRecommendation(kind, metrics.OutcomeError, time.Since(start), 0)
	respondError(w, http.StatusInternalServerError, "RECOMMENDATION_ERROR", "Failed to generate recommendations", err)
}
