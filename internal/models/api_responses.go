// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

// Package models holds the JSON shapes written by the HTTP API.
package models

import (
	"time"

	"github.com/tomtom215/wanderlust/internal/recommend"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse represents a standardized API response wrapper used by the
// versioned endpoints.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"recommendations": [...]},
//	  "metadata": {
//	    "timestamp": "2026-03-01T12:00:00Z",
//	    "query_time_ms": 1,
//	    "count": 5
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "VALIDATION_ERROR",
//	    "message": "vector must contain exactly 10 items",
//	    "details": {"field": "vector", "tag": "len"}
//	  },
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string    `json:"status"`
	Data     any       `json:"data"`
	Metadata Metadata  `json:"metadata"`
	Error    *APIError `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Count       int       `json:"count,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Error codes:
//   - VALIDATION_ERROR: malformed vector, unknown budget label, missing user
//   - INVALID_REQUEST: body is not valid JSON
//   - METHOD_NOT_ALLOWED: wrong HTTP method
//   - RECOMMENDATION_ERROR: ranking failed or was cancelled
//   - FEEDBACK_ERROR: feedback could not be recorded
type APIError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// HealthStatus is returned by the health endpoints.
type HealthStatus struct {
	Status       string  `json:"status"` // "healthy" or "unavailable"
	Version      string  `json:"version"`
	Ready        bool    `json:"ready"`
	CatalogSize  int     `json:"catalog_size"`
	ProfileCount int     `json:"profile_count"`
	EventsActive bool    `json:"events_active"`
	Uptime       float64 `json:"uptime_seconds"`
}

// ContentRecommendations is the data of a content recommendation response.
type ContentRecommendations struct {
	Recommendations []recommend.Recommendation `json:"recommendations"`
}

// CollaborativeRecommendations is the data of a collaborative recommendation
// response. Neighbors lists the reference profiles that were consulted.
type CollaborativeRecommendations struct {
	UserID          string                     `json:"user_id"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
	Neighbors       []recommend.Neighbor       `json:"neighbors"`
}

// FeedbackRecorded is the data of a feedback response.
type FeedbackRecorded struct {
	UserID     string   `json:"user_id"`
	ItemID     string   `json:"item_id"`
	Liked      bool     `json:"liked"`
	LikedItems []string `json:"liked_items"`
}

// DestinationList is the data of the catalog listing.
type DestinationList struct {
	Destinations []recommend.Item `json:"destinations"`
}

// ProfileSummary describes one reference profile.
type ProfileSummary struct {
	ID         string             `json:"id"`
	LikedItems []string           `json:"liked_items"`
	Weights    map[string]float64 `json:"weights,omitempty"`
}

// ProfileList is the data of the reference profile listing.
type ProfileList struct {
	Profiles []ProfileSummary `json:"profiles"`
}

// EngineStatus is the data of the recommendation status endpoint.
type EngineStatus struct {
	recommend.Stats
	Uptime float64 `json:"uptime_seconds"`
}

// LegacyRecommendationsResponse is the unwrapped body of
// POST /api/recommendations.
type LegacyRecommendationsResponse struct {
	Recommendations []recommend.Recommendation `json:"recommendations"`
}

// RootMessage is the body of GET /.
type RootMessage struct {
	Message string `json:"message"`
}
