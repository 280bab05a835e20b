// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

// Package config loads Wanderlust configuration.
//
// Values are layered with koanf, later layers winning:
//
//  1. Struct defaults (defaultConfig)
//  2. An optional YAML file (CONFIG_PATH, ./config.yaml, /etc/wanderlust/config.yaml)
//  3. Environment variables with explicit names (HTTP_PORT, LOG_LEVEL, ...)
//
// Only environment variables listed in envTransformFunc are read, so stray
// variables never leak into configuration.
package config

import (
	"time"

	"github.com/tomtom215/wanderlust/internal/recommend"
)

// Config is the complete service configuration.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Logging    LoggingConfig    `koanf:"logging"`
	Security   SecurityConfig   `koanf:"security"`
	Catalog    CatalogConfig    `koanf:"catalog"`
	Recommend  RecommendConfig  `koanf:"recommend"`
	Events     EventsConfig     `koanf:"events"`
	Supervisor SupervisorConfig `koanf:"supervisor"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	RequestTimeout  time.Duration `koanf:"request_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// CatalogConfig locates the destination catalog and reference profiles.
// Empty paths select the embedded datasets.
type CatalogConfig struct {
	Path         string `koanf:"path"`
	ProfilesPath string `koanf:"profiles_path"`
}

// RecommendConfig holds engine limits and result caching.
type RecommendConfig struct {
	TopK             int           `koanf:"top_k"`
	CollaborativeCap int           `koanf:"collaborative_cap"`
	MaxLikedItems    int           `koanf:"max_liked_items"`
	CacheEnabled     bool          `koanf:"cache_enabled"`
	CacheTTL         time.Duration `koanf:"cache_ttl"`
	CacheMaxEntries  int           `koanf:"cache_max_entries"`
}

// EventsConfig holds feedback event bus settings.
type EventsConfig struct {
	Enabled bool `koanf:"enabled"`

	// Backend is "memory" (watermill gochannel) or "nats".
	Backend string `koanf:"backend"`
	Topic   string `koanf:"topic"`

	NATSURL          string `koanf:"nats_url"`
	EmbeddedNATS     bool   `koanf:"embedded_nats"`
	EmbeddedNATSHost string `koanf:"embedded_nats_host"`
	EmbeddedNATSPort int    `koanf:"embedded_nats_port"`

	// PublishRate limits publishes per second. Zero disables limiting.
	PublishRate  float64 `koanf:"publish_rate"`
	PublishBurst int     `koanf:"publish_burst"`

	BreakerFailureThreshold uint32        `koanf:"breaker_failure_threshold"`
	BreakerTimeout          time.Duration `koanf:"breaker_timeout"`
}

// Event bus backends.
const (
	EventsBackendMemory = "memory"
	EventsBackendNATS   = "nats"
)

// SupervisorConfig tunes the suture restart policy.
type SupervisorConfig struct {
	FailureThreshold float64       `koanf:"failure_threshold"`
	FailureDecay     float64       `koanf:"failure_decay"`
	FailureBackoff   time.Duration `koanf:"failure_backoff"`
	ShutdownTimeout  time.Duration `koanf:"shutdown_timeout"`
}

// EngineConfig converts the recommend section into engine configuration.
func (c *Config) EngineConfig() *recommend.Config {
	return &recommend.Config{
		Limits: recommend.LimitsConfig{
			TopK:             c.Recommend.TopK,
			CollaborativeCap: c.Recommend.CollaborativeCap,
			MaxLikedItems:    c.Recommend.MaxLikedItems,
		},
		Cache: recommend.CacheConfig{
			Enabled:    c.Recommend.CacheEnabled,
			TTL:        c.Recommend.CacheTTL,
			MaxEntries: c.Recommend.CacheMaxEntries,
		},
	}
}

// defaultConfig returns the values applied before file and environment.
func defaultConfig() *Config {
	engine := recommend.DefaultConfig()
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8000,
			Timeout:         30 * time.Second,
			RequestTimeout:  10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "production",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
		Recommend: RecommendConfig{
			TopK:             engine.Limits.TopK,
			CollaborativeCap: engine.Limits.CollaborativeCap,
			MaxLikedItems:    engine.Limits.MaxLikedItems,
			CacheEnabled:     engine.Cache.Enabled,
			CacheTTL:         engine.Cache.TTL,
			CacheMaxEntries:  engine.Cache.MaxEntries,
		},
		Events: EventsConfig{
			Enabled:                 true,
			Backend:                 EventsBackendMemory,
			Topic:                   "feedback.recorded",
			NATSURL:                 "nats://127.0.0.1:4222",
			EmbeddedNATSHost:        "127.0.0.1",
			EmbeddedNATSPort:        4222,
			PublishBurst:            10,
			BreakerFailureThreshold: 5,
			BreakerTimeout:          30 * time.Second,
		},
		Supervisor: SupervisorConfig{
			FailureThreshold: 5,
			FailureDecay:     30,
			FailureBackoff:   15 * time.Second,
			ShutdownTimeout:  10 * time.Second,
		},
	}
}
