// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/wanderlust/internal/metrics"
	"github.com/tomtom215/wanderlust/internal/models"
	"github.com/tomtom215/wanderlust/internal/recommend"
)

// RecordFeedback handles POST /api/v1/feedback.
//
// @Summary Record a like or dislike
// @Description Moves the destination into the user's liked or disliked set and returns the liked set. Catalog membership is not checked.
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body FeedbackRequest true "Feedback"
// @Success 200 {object} models.APIResponse{data=models.FeedbackRecorded}
// @Failure 400 {object} models.APIResponse
// @Router /api/v1/feedback [post]
func (h *Handler) RecordFeedback(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req FeedbackRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	event := recommend.FeedbackEvent{
		UserID: req.UserID,
		ItemID: req.ItemID,
		Liked:  *req.Liked,
	}
	liked, err := h.engine.RecordFeedback(r.Context(), event)
	if err != nil {
		if recommend.IsValidationError(err) {
			respondAPIError(w, http.StatusBadRequest, engineValidationError(err), nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "FEEDBACK_ERROR", "Failed to record feedback", err)
		return
	}
	metrics.RecordFeedback(event.Liked, h.engine.Feedback().Users())

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data: models.FeedbackRecorded{
			UserID:     event.UserID,
			ItemID:     event.ItemID,
			Liked:      event.Liked,
			LikedItems: liked,
		},
		Metadata: h.metadata(r, start, len(liked)),
	})
}
