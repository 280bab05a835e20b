// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package recommend

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v", err)
	}
	if cfg.Limits.TopK != 5 {
		t.Errorf("Limits.TopK = %d, want 5", cfg.Limits.TopK)
	}
	if cfg.Limits.CollaborativeCap != 5 {
		t.Errorf("Limits.CollaborativeCap = %d, want 5", cfg.Limits.CollaborativeCap)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid default", func(*Config) {}, false},
		{"zero top_k", func(c *Config) { c.Limits.TopK = 0 }, true},
		{"negative cap", func(c *Config) { c.Limits.CollaborativeCap = -1 }, true},
		{"zero max liked", func(c *Config) { c.Limits.MaxLikedItems = 0 }, true},
		{"zero ttl with cache", func(c *Config) { c.Cache.TTL = 0 }, true},
		{"zero entries with cache", func(c *Config) { c.Cache.MaxEntries = 0 }, true},
		{"zero ttl without cache", func(c *Config) {
			c.Cache.Enabled = false
			c.Cache.TTL = 0
		}, false},
		{"custom ttl", func(c *Config) { c.Cache.TTL = time.Second }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
