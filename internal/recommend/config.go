// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package recommend

import (
	"fmt"
	"time"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Limits contains result size limits.
	Limits LimitsConfig `json:"limits"`

	// Cache contains content result caching parameters.
	Cache CacheConfig `json:"cache"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// TopK is the number of content recommendations returned.
	TopK int `json:"top_k"`

	// CollaborativeCap is the maximum number of collaborative recommendations.
	CollaborativeCap int `json:"collaborative_cap"`

	// MaxLikedItems bounds the liked list accepted by a collaborative query.
	MaxLikedItems int `json:"max_liked_items"`
}

// CacheConfig contains caching parameters.
type CacheConfig struct {
	// Enabled turns content result caching on.
	Enabled bool `json:"enabled"`

	// TTL is how long a cached ranking stays valid.
	TTL time.Duration `json:"ttl"`

	// MaxEntries bounds the number of cached rankings.
	MaxEntries int `json:"max_entries"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			TopK:             5,
			CollaborativeCap: 5,
			MaxLikedItems:    100,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        5 * time.Minute,
			MaxEntries: 1024,
		},
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Limits.TopK <= 0 {
		return fmt.Errorf("limits.top_k must be positive, got %d", c.Limits.TopK)
	}
	if c.Limits.CollaborativeCap <= 0 {
		return fmt.Errorf("limits.collaborative_cap must be positive, got %d", c.Limits.CollaborativeCap)
	}
	if c.Limits.MaxLikedItems <= 0 {
		return fmt.Errorf("limits.max_liked_items must be positive, got %d", c.Limits.MaxLikedItems)
	}
	if c.Cache.Enabled {
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive when cache is enabled, got %v", c.Cache.TTL)
		}
		if c.Cache.MaxEntries <= 0 {
			return fmt.Errorf("cache.max_entries must be positive when cache is enabled, got %d", c.Cache.MaxEntries)
		}
	}
	return nil
}
