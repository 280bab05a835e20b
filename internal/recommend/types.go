// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package recommend

import "time"

// Dimensions is the length of every feature and query vector.
const Dimensions = 10

// DimensionNames lists vector dimensions in their fixed order.
var DimensionNames = [Dimensions]string{
	"culture", "adventure", "nature", "beaches", "nightlife",
	"cuisine", "wellness", "urban", "seclusion", "budget",
}

// Attributes are the nine numeric scores describing a destination.
type Attributes struct {
	Culture   float64 `json:"culture" koanf:"culture"`
	Adventure float64 `json:"adventure" koanf:"adventure"`
	Nature    float64 `json:"nature" koanf:"nature"`
	Beaches   float64 `json:"beaches" koanf:"beaches"`
	Nightlife float64 `json:"nightlife" koanf:"nightlife"`
	Cuisine   float64 `json:"cuisine" koanf:"cuisine"`
	Wellness  float64 `json:"wellness" koanf:"wellness"`
	Urban     float64 `json:"urban" koanf:"urban"`
	Seclusion float64 `json:"seclusion" koanf:"seclusion"`
}

// FeatureVector is the ten-dimensional representation of a destination or a
// preference query.
type FeatureVector [Dimensions]float64

// Vector returns the feature vector for the attributes with the given budget
// ordinal as the tenth dimension.
func (a Attributes) Vector(budget BudgetLevel) FeatureVector {
	return FeatureVector{
		a.Culture, a.Adventure, a.Nature, a.Beaches, a.Nightlife,
		a.Cuisine, a.Wellness, a.Urban, a.Seclusion, float64(budget),
	}
}

// Slice returns the vector as a new slice.
func (v FeatureVector) Slice() []float64 {
	out := make([]float64, Dimensions)
	copy(out, v[:])
	return out
}

// CatalogRow is one raw destination record as read from a data source.
type CatalogRow struct {
	City             string
	Country          string
	ShortDescription string
	BudgetLabel      string
	Attributes       Attributes
}

// Item is a catalog destination.
type Item struct {
	// Name is the city name and serves as the item id.
	Name string `json:"city"`

	Country     string `json:"country"`
	Description string `json:"short_description"`

	// Budget is the parsed budget ordinal.
	Budget BudgetLevel `json:"-"`

	// BudgetLabel is the original label.
	BudgetLabel string `json:"budget_level"`

	Attributes Attributes `json:"attributes"`
}

// Vector returns the item's feature vector.
func (i Item) Vector() FeatureVector {
	return i.Attributes.Vector(i.Budget)
}

// Recommendation is a destination with its similarity score.
//
// Content results carry a cosine similarity. Collaborative results carry the
// Jaccard similarity of the neighbor that contributed the item. The two scales
// are not comparable.
type Recommendation struct {
	City             string  `json:"city"`
	Country          string  `json:"country"`
	ShortDescription string  `json:"short_description"`
	BudgetLevel      string  `json:"budget_level"`
	SimilarityScore  float64 `json:"similarity_score"`

	// NeighborID is set on collaborative results.
	NeighborID string `json:"neighbor_id,omitempty"`
}

// Neighbor is a reference profile ranked against a collaborative query.
type Neighbor struct {
	ProfileID string  `json:"profile_id"`
	Score     float64 `json:"similarity_score"`
}

// CollaborativeResult is the output of a collaborative query.
type CollaborativeResult struct {
	Recommendations []Recommendation `json:"recommendations"`
	Neighbors       []Neighbor       `json:"neighbors"`
}

// FeedbackEvent is a single like or dislike.
type FeedbackEvent struct {
	UserID string `json:"user_id"`
	ItemID string `json:"item_id"`
	Liked  bool   `json:"liked"`
}

// Health summarizes engine readiness.
type Health struct {
	Ready        bool `json:"ready"`
	CatalogSize  int  `json:"catalog_size"`
	ProfileCount int  `json:"profile_count"`
}

// Stats holds engine counters since start.
type Stats struct {
	ContentRequests       int64     `json:"content_requests"`
	CollaborativeRequests int64     `json:"collaborative_requests"`
	FeedbackEvents        int64     `json:"feedback_events"`
	ValidationErrors      int64     `json:"validation_errors"`
	CacheHits             int64     `json:"cache_hits"`
	CacheMisses           int64     `json:"cache_misses"`
	PublishFailures       int64     `json:"publish_failures"`
	FeedbackUsers         int       `json:"feedback_users"`
	CatalogSize           int       `json:"catalog_size"`
	ProfileCount          int       `json:"profile_count"`
	StartedAt             time.Time `json:"started_at"`
}
