// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package config

import (
	"fmt"
	"strings"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateLogging,
		c.validateSecurity,
		c.validateRecommend,
		c.validateEvents,
		c.validateSupervisor,
	}
	for _, v := range validators {
		if err := v(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %v", c.Server.RequestTimeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %v", c.Server.ShutdownTimeout)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, fatal, panic, disabled; got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must not be empty")
	}
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 || c.Security.RateLimitReqs > 100000 {
		return fmt.Errorf("RATE_LIMIT_REQS must be between 1 and 100000, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %v", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateRecommend() error {
	if err := c.EngineConfig().Validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}
	return nil
}

func (c *Config) validateEvents() error {
	if !c.Events.Enabled {
		return nil
	}
	if c.Events.Topic == "" {
		return fmt.Errorf("EVENTS_TOPIC is required when events are enabled")
	}
	switch c.Events.Backend {
	case EventsBackendMemory:
	case EventsBackendNATS:
		if c.Events.NATSURL == "" && !c.Events.EmbeddedNATS {
			return fmt.Errorf("NATS_URL is required when EVENTS_BACKEND=nats without NATS_EMBEDDED")
		}
		if c.Events.EmbeddedNATS && (c.Events.EmbeddedNATSPort < 1 || c.Events.EmbeddedNATSPort > 65535) {
			return fmt.Errorf("NATS_EMBEDDED_PORT must be between 1 and 65535, got %d", c.Events.EmbeddedNATSPort)
		}
	default:
		return fmt.Errorf("EVENTS_BACKEND must be %q or %q, got %q", EventsBackendMemory, EventsBackendNATS, c.Events.Backend)
	}
	if c.Events.PublishRate < 0 {
		return fmt.Errorf("EVENTS_PUBLISH_RATE must not be negative, got %v", c.Events.PublishRate)
	}
	if c.Events.PublishRate > 0 && c.Events.PublishBurst < 1 {
		return fmt.Errorf("EVENTS_PUBLISH_BURST must be positive when rate limiting, got %d", c.Events.PublishBurst)
	}
	if c.Events.BreakerFailureThreshold == 0 {
		return fmt.Errorf("EVENTS_BREAKER_FAILURES must be positive")
	}
	return nil
}

func (c *Config) validateSupervisor() error {
	if c.Supervisor.FailureThreshold <= 0 {
		return fmt.Errorf("SUPERVISOR_FAILURE_THRESHOLD must be positive, got %v", c.Supervisor.FailureThreshold)
	}
	if c.Supervisor.FailureDecay <= 0 {
		return fmt.Errorf("SUPERVISOR_FAILURE_DECAY must be positive, got %v", c.Supervisor.FailureDecay)
	}
	return nil
}
