// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package api

import "github.com/tomtom215/wanderlust/internal/recommend"

// Request bodies validated with go-playground/validator tags. Field names in
// validation messages come from the json tags.

// ContentRequest is the body of POST /api/v1/recommendations/content.
// Vector order: culture, adventure, nature, beaches, nightlife, cuisine,
// wellness, urban, seclusion, budget.
type ContentRequest struct {
	Vector []float64 `json:"vector" validate:"required,len=10,dive,finite"`
}

// CollaborativeRequest is the body of POST /api/v1/recommendations/collaborative.
type CollaborativeRequest struct {
	UserID     string   `json:"user_id" validate:"omitempty,max=256"`
	LikedItems []string `json:"liked_items" validate:"dive,required,max=256"`
}

// FeedbackRequest is the body of POST /api/v1/feedback.
type FeedbackRequest struct {
	UserID string `json:"user_id" validate:"required,max=256"`
	ItemID string `json:"item_id" validate:"required,max=256"`
	Liked  *bool  `json:"liked" validate:"required"`
}

// LegacyRecommendationRequest is the body of POST /api/recommendations.
// Every field is required; pointers tell a missing field from a zero.
type LegacyRecommendationRequest struct {
	Culture               *float64 `json:"culture" validate:"required,finite"`
	Adventure             *float64 `json:"adventure" validate:"required,finite"`
	Nature                *float64 `json:"nature" validate:"required,finite"`
	Beaches               *float64 `json:"beaches" validate:"required,finite"`
	Nightlife             *float64 `json:"nightlife" validate:"required,finite"`
	Cuisine               *float64 `json:"cuisine" validate:"required,finite"`
	Wellness              *float64 `json:"wellness" validate:"required,finite"`
	Urban                 *float64 `json:"urban" validate:"required,finite"`
	Seclusion             *float64 `json:"seclusion" validate:"required,finite"`
	BudgetLevelPreference *int     `json:"budget_level_preference" validate:"required"`
}

// Vector assembles the query vector. Call only after validation.
func (req *LegacyRecommendationRequest) Vector() []float64 {
	attrs := recommend.Attributes{
		Culture:   *req.Culture,
		Adventure: *req.Adventure,
		Nature:    *req.Nature,
		Beaches:   *req.Beaches,
		Nightlife: *req.Nightlife,
		Cuisine:   *req.Cuisine,
		Wellness:  *req.Wellness,
		Urban:     *req.Urban,
		Seclusion: *req.Seclusion,
	}
	v := attrs.Vector(recommend.BudgetLevel(*req.BudgetLevelPreference))
	return v.Slice()
}
