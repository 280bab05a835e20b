// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Server.RequestTimeout != 10*time.Second {
		t.Errorf("Server.RequestTimeout = %v, want 10s", cfg.Server.RequestTimeout)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if cfg.Recommend.TopK != 5 || cfg.Recommend.CollaborativeCap != 5 {
		t.Errorf("Recommend limits = %d/%d, want 5/5", cfg.Recommend.TopK, cfg.Recommend.CollaborativeCap)
	}
	if cfg.Events.Backend != EventsBackendMemory {
		t.Errorf("Events.Backend = %q, want memory", cfg.Events.Backend)
	}
	if cfg.Catalog.Path != "" {
		t.Errorf("Catalog.Path = %q, want empty (embedded)", cfg.Catalog.Path)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("RECOMMEND_TOP_K", "3")
	t.Setenv("RECOMMEND_CACHE_TTL", "90s")
	t.Setenv("EVENTS_BACKEND", "nats")
	t.Setenv("NATS_URL", "nats://broker:4222")
	t.Setenv("UNRELATED_VARIABLE", "ignored")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	want := []string{"https://a.example", "https://b.example"}
	if strings.Join(cfg.Security.CORSOrigins, ",") != strings.Join(want, ",") {
		t.Errorf("Security.CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	if cfg.Recommend.TopK != 3 {
		t.Errorf("Recommend.TopK = %d, want 3", cfg.Recommend.TopK)
	}
	if cfg.Recommend.CacheTTL != 90*time.Second {
		t.Errorf("Recommend.CacheTTL = %v, want 90s", cfg.Recommend.CacheTTL)
	}
	if cfg.Events.Backend != EventsBackendNATS || cfg.Events.NATSURL != "nats://broker:4222" {
		t.Errorf("Events = %+v, want nats backend at broker", cfg.Events)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `server:
  port: 8123
catalog:
  path: /data/cities.csv
  profiles_path: /data/profiles.yaml
events:
  enabled: false
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8123 {
		t.Errorf("Server.Port = %d, want 8123", cfg.Server.Port)
	}
	if cfg.Catalog.Path != "/data/cities.csv" || cfg.Catalog.ProfilesPath != "/data/profiles.yaml" {
		t.Errorf("Catalog = %+v", cfg.Catalog)
	}
	if cfg.Events.Enabled {
		t.Error("Events.Enabled = true, want false from file")
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console from env", cfg.Logging.Format)
	}
	// Untouched values keep their defaults.
	if cfg.Recommend.TopK != 5 {
		t.Errorf("Recommend.TopK = %d, want 5", cfg.Recommend.TopK)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("HTTP_PORT", "70000")

	if _, err := Load(); err == nil {
		t.Error("Load() error = nil, want validation error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
		{"no cors", func(c *Config) { c.Security.CORSOrigins = nil }, "CORS_ORIGINS"},
		{"rate limit zero", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQS"},
		{"rate limit disabled skips bounds", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, ""},
		{"top k zero", func(c *Config) { c.Recommend.TopK = 0 }, "top_k"},
		{"unknown backend", func(c *Config) { c.Events.Backend = "kafka" }, "EVENTS_BACKEND"},
		{"nats without url", func(c *Config) {
			c.Events.Backend = EventsBackendNATS
			c.Events.NATSURL = ""
		}, "NATS_URL"},
		{"nats embedded without url", func(c *Config) {
			c.Events.Backend = EventsBackendNATS
			c.Events.NATSURL = ""
			c.Events.EmbeddedNATS = true
		}, ""},
		{"negative publish rate", func(c *Config) { c.Events.PublishRate = -1 }, "EVENTS_PUBLISH_RATE"},
		{"events disabled skips checks", func(c *Config) {
			c.Events.Enabled = false
			c.Events.Backend = "kafka"
		}, ""},
		{"supervisor threshold", func(c *Config) { c.Supervisor.FailureThreshold = 0 }, "SUPERVISOR_FAILURE_THRESHOLD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestEngineConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.Recommend.TopK = 7
	cfg.Recommend.CacheEnabled = false

	ec := cfg.EngineConfig()
	if ec.Limits.TopK != 7 {
		t.Errorf("EngineConfig().Limits.TopK = %d, want 7", ec.Limits.TopK)
	}
	if ec.Cache.Enabled {
		t.Error("EngineConfig().Cache.Enabled = true, want false")
	}
	if err := ec.Validate(); err != nil {
		t.Errorf("EngineConfig().Validate() error = %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := map[string]string{
		"HTTP_PORT":     "server.port",
		"nats_url":      "events.nats_url",
		"CATALOG_PATH":  "catalog.path",
		"PATH":          "",
		"HOME":          "",
		"PROFILES_PATH": "catalog.profiles_path",
	}
	for in, want := range tests {
		if got := envTransformFunc(in); got != want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", in, got, want)
		}
	}
}
