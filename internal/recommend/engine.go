// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wanderlust/internal/recommend/algorithms"
	"github.com/tomtom215/wanderlust/internal/recommend/feedback"
)

// Note: This package has no dependencies on other internal packages outside
// recommend/. Caching and event publication are attached through the
// ResultCache and FeedbackPublisher interfaces.

// ResultCache stores content rankings keyed by query.
type ResultCache interface {
	Get(key string) ([]Recommendation, bool)
	Set(key string, recs []Recommendation)
	Len() int
}

// FeedbackPublisher announces recorded feedback to other components.
type FeedbackPublisher interface {
	PublishFeedback(ctx context.Context, event FeedbackEvent, likedCount int) error
}

// Engine answers content and collaborative queries over an immutable catalog
// and records user feedback. It is safe for concurrent use.
type Engine struct {
	config   *Config
	logger   zerolog.Logger
	catalog  *Catalog
	profiles *ProfileSet
	feedback *feedback.Store

	// Optional collaborators; attach before serving.
	cache     ResultCache
	publisher FeedbackPublisher

	// Metrics
	contentCount    atomic.Int64
	collabCount     atomic.Int64
	feedbackCount   atomic.Int64
	validationCount atomic.Int64
	cacheHits       atomic.Int64
	cacheMisses     atomic.Int64
	publishFailures atomic.Int64

	startedAt time.Time
}

// NewEngine creates an engine over catalog and profiles.
//
//nolint:gocritic // hugeParam: logger is passed by value to match zerolog conventions
func NewEngine(cfg *Config, catalog *Catalog, profiles *ProfileSet, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if catalog == nil {
		return nil, errors.New("catalog is required")
	}
	if profiles == nil {
		return nil, errors.New("profile set is required")
	}

	return &Engine{
		config:    cfg,
		logger:    logger.With().Str("component", "recommend").Logger(),
		catalog:   catalog,
		profiles:  profiles,
		feedback:  feedback.NewStore(),
		startedAt: time.Now(),
	}, nil
}

// SetResultCache attaches a content result cache.
func (e *Engine) SetResultCache(c ResultCache) {
	e.cache = c
}

// SetFeedbackPublisher attaches a feedback event publisher.
func (e *Engine) SetFeedbackPublisher(p FeedbackPublisher) {
	e.publisher = p
}

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Profiles returns the engine's reference profile set.
func (e *Engine) Profiles() *ProfileSet {
	return e.profiles
}

// Feedback returns the feedback store.
func (e *Engine) Feedback() *feedback.Store {
	return e.feedback
}

// Config returns the engine configuration.
func (e *Engine) Config() *Config {
	return e.config
}

// ContentRecommendations ranks the catalog against a ten-dimensional
// preference vector and returns up to Limits.TopK destinations.
func (e *Engine) ContentRecommendations(ctx context.Context, vector []float64) ([]Recommendation, error) {
	e.contentCount.Add(1)

	if err := validateQueryVector(vector); err != nil {
		e.validationCount.Add(1)
		return nil, err
	}

	topK := e.config.Limits.TopK
	key := contentCacheKey(vector, topK)
	if e.cache != nil {
		if recs, ok := e.cache.Get(key); ok {
			e.cacheHits.Add(1)
			return cloneRecommendations(recs), nil
		}
		e.cacheMisses.Add(1)
	}

	matches, err := algorithms.RankContent(ctx, vector, e.catalog.matrix, topK)
	if err != nil {
		return nil, fmt.Errorf("rank content: %w", err)
	}

	recs := make([]Recommendation, 0, len(matches))
	for _, m := range matches {
		item := e.catalog.items[m.Index]
		recs = append(recs, newRecommendation(item, m.Score, ""))
	}

	if e.cache != nil {
		e.cache.Set(key, cloneRecommendations(recs))
	}

	e.logger.Debug().
		Int("results", len(recs)).
		Int("top_k", topK).
		Msg("Content recommendations computed")

	return recs, nil
}

// CollaborativeRecommendations finds the reference profiles closest to liked
// and returns up to Limits.CollaborativeCap of their favourites that the user
// has not liked. Items missing from the catalog are skipped.
func (e *Engine) CollaborativeRecommendations(ctx context.Context, userID string, liked []string) (*CollaborativeResult, error) {
	e.collabCount.Add(1)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	neighbors := algorithms.FindSimilarProfiles(liked, e.profiles.view)
	matches := algorithms.RecommendCollaborative(liked, neighbors, algorithms.CollaborativeOptions{
		Cap:    e.config.Limits.CollaborativeCap,
		Accept: e.catalog.Contains,
	})

	result := &CollaborativeResult{
		Recommendations: make([]Recommendation, 0, len(matches)),
		Neighbors:       make([]Neighbor, 0, len(neighbors)),
	}
	for _, n := range neighbors {
		result.Neighbors = append(result.Neighbors, Neighbor{ProfileID: n.ProfileID, Score: n.Score})
	}
	for _, m := range matches {
		item, _ := e.catalog.FindByName(m.ItemID)
		result.Recommendations = append(result.Recommendations, newRecommendation(item, m.Score, m.ProfileID))
	}

	e.logger.Debug().
		Str("user_id", userID).
		Int("liked", len(liked)).
		Int("neighbors", len(neighbors)).
		Int("results", len(result.Recommendations)).
		Msg("Collaborative recommendations computed")

	return result, nil
}

// RecordFeedback applies a like or dislike and returns the user's liked
// items. Publication failures are logged and counted but never returned.
func (e *Engine) RecordFeedback(ctx context.Context, event FeedbackEvent) ([]string, error) {
	if event.UserID == "" {
		e.validationCount.Add(1)
		return nil, &ValidationError{Field: "user_id", Value: event.UserID, Err: ErrEmptyUserID}
	}

	e.feedbackCount.Add(1)
	liked := e.feedback.Record(event.UserID, event.ItemID, event.Liked)

	if e.publisher != nil {
		if err := e.publisher.PublishFeedback(ctx, event, len(liked)); err != nil {
			e.publishFailures.Add(1)
			e.logger.Warn().Err(err).
				Str("user_id", event.UserID).
				Str("item_id", event.ItemID).
				Msg("Failed to publish feedback event")
		}
	}

	return liked, nil
}

// Health reports whether the engine can serve queries.
func (e *Engine) Health() Health {
	return Health{
		Ready:        e.catalog.Len() > 0,
		CatalogSize:  e.catalog.Len(),
		ProfileCount: e.profiles.Len(),
	}
}

// Stats returns a snapshot of the engine counters.
func (e *Engine) Stats() Stats {
	return Stats{
		ContentRequests:       e.contentCount.Load(),
		CollaborativeRequests: e.collabCount.Load(),
		FeedbackEvents:        e.feedbackCount.Load(),
		ValidationErrors:      e.validationCount.Load(),
		CacheHits:             e.cacheHits.Load(),
		CacheMisses:           e.cacheMisses.Load(),
		PublishFailures:       e.publishFailures.Load(),
		FeedbackUsers:         e.feedback.Users(),
		CatalogSize:           e.catalog.Len(),
		ProfileCount:          e.profiles.Len(),
		StartedAt:             e.startedAt,
	}
}

func validateQueryVector(vector []float64) error {
	if len(vector) != Dimensions {
		return &ValidationError{Field: "vector", Value: len(vector), Err: ErrInvalidDimension}
	}
	for i, v := range vector {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ValidationError{Field: DimensionNames[i], Value: v, Err: ErrInvalidAttribute}
		}
	}
	return nil
}

func contentCacheKey(vector []float64, topK int) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(topK))
	for _, v := range vector {
		b.WriteByte('|')
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return b.String()
}

func newRecommendation(item Item, score float64, neighborID string) Recommendation {
	return Recommendation{
		City:             item.Name,
		Country:          item.Country,
		ShortDescription: item.Description,
		BudgetLevel:      item.BudgetLabel,
		SimilarityScore:  score,
		NeighborID:       neighborID,
	}
}

func cloneRecommendations(recs []Recommendation) []Recommendation {
	out := make([]Recommendation, len(recs))
	copy(out, recs)
	return out
}
