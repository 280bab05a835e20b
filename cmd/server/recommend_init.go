// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wanderlust/internal/cache"
	"github.com/tomtom215/wanderlust/internal/config"
	"github.com/tomtom215/wanderlust/internal/metrics"
	"github.com/tomtom215/wanderlust/internal/recommend"
	"github.com/tomtom215/wanderlust/internal/recommend/storage"
)

// cacheSweepInterval is how often expired rankings are dropped.
const cacheSweepInterval = time.Minute

// initRecommend loads the catalog and reference profiles and builds the
// engine. When caching is enabled the returned cache must be supervised so
// expired entries are swept.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(cfg *config.Config, logger zerolog.Logger) (*recommend.Engine, *resultCache, error) {
	catalog, err := storage.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}
	profiles, err := storage.LoadProfiles(cfg.Catalog.ProfilesPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load profiles: %w", err)
	}

	engineCfg := cfg.EngineConfig()
	engine, err := recommend.NewEngine(engineCfg, catalog, profiles, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("create engine: %w", err)
	}

	source := func(path string) string {
		if path == "" {
			return "embedded"
		}
		return path
	}
	logger.Info().
		Int("destinations", catalog.Len()).
		Int("profiles", profiles.Len()).
		Str("catalog", source(cfg.Catalog.Path)).
		Str("profiles_source", source(cfg.Catalog.ProfilesPath)).
		Msg("Recommendation engine initialized")

	metrics.SetDatasetSizes(catalog.Len(), profiles.Len())

	if !engineCfg.Cache.Enabled {
		logger.Info().Msg("Result cache disabled (RECOMMEND_CACHE_ENABLED=false)")
		return engine, nil, nil
	}

	rc := newResultCache(engineCfg.Cache.MaxEntries, engineCfg.Cache.TTL, cacheSweepInterval, logger)
	engine.SetResultCache(rc)
	logger.Info().
		Int("max_entries", engineCfg.Cache.MaxEntries).
		Dur("ttl", engineCfg.Cache.TTL).
		Msg("Result cache enabled")

	return engine, rc, nil
}

// resultCache is the engine's content ranking cache. It records lookups in
// Prometheus and, when served by the supervisor, sweeps expired entries.
type resultCache struct {
	lru      *cache.LRU[[]recommend.Recommendation]
	interval time.Duration
	logger   zerolog.Logger
}

var _ recommend.ResultCache = (*resultCache)(nil)

//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func newResultCache(capacity int, ttl, interval time.Duration, logger zerolog.Logger) *resultCache {
	return &resultCache{
		lru:      cache.NewLRU[[]recommend.Recommendation](capacity, ttl),
		interval: interval,
		logger:   logger.With().Str("component", "result-cache").Logger(),
	}
}

func (c *resultCache) Get(key string) ([]recommend.Recommendation, bool) {
	recs, ok := c.lru.Get(key)
	metrics.RecordCacheLookup(ok)
	return recs, ok
}

func (c *resultCache) Set(key string, recs []recommend.Recommendation) {
	c.lru.Set(key, recs)
}

func (c *resultCache) Len() int {
	return c.lru.Len()
}

// Serve implements suture.Service.
func (c *resultCache) Serve(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.sweep()
		}
	}
}

func (c *resultCache) sweep() int {
	removed := c.lru.CleanupExpired()
	if removed > 0 {
		stats := c.lru.Stats()
		c.logger.Debug().
			Int("removed", removed).
			Int("size", stats.Size).
			Int64("evictions", stats.Evictions).
			Msg("Swept expired rankings")
	}
	return removed
}

// String implements fmt.Stringer for supervisor logging.
func (c *resultCache) String() string {
	return "result-cache"
}
