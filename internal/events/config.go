// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package events

import "time"

// DefaultTopic carries FeedbackRecorded events.
const DefaultTopic = "feedback.recorded"

// PublisherConfig configures Publisher.
type PublisherConfig struct {
	Topic string

	// Rate is the sustained publish rate per second. Zero disables limiting.
	Rate  float64
	Burst int

	Breaker CircuitBreakerConfig
}

// DefaultPublisherConfig returns an unlimited publisher on DefaultTopic.
func DefaultPublisherConfig() PublisherConfig {
	return PublisherConfig{
		Topic:   DefaultTopic,
		Burst:   10,
		Breaker: DefaultCircuitBreakerConfig("feedback-publisher"),
	}
}

// CircuitBreakerConfig configures the publish circuit breaker.
type CircuitBreakerConfig struct {
	Name             string
	MaxRequests      uint32        // requests allowed while half-open
	Interval         time.Duration // closed-state count reset; zero never resets
	Timeout          time.Duration // open duration before half-open
	FailureThreshold uint32        // consecutive failures that trip the breaker
}

// DefaultCircuitBreakerConfig returns the breaker defaults.
func DefaultCircuitBreakerConfig(name string) CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:             name,
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}

// NATSConfig configures the NATS transport.
type NATSConfig struct {
	URL              string
	QueueGroup       string
	SubscribersCount int
	MaxReconnects    int
	ReconnectWait    time.Duration
	CloseTimeout     time.Duration
	AckWaitTimeout   time.Duration
}

// DefaultNATSConfig returns NATS defaults for url.
func DefaultNATSConfig(url string) NATSConfig {
	return NATSConfig{
		URL:              url,
		QueueGroup:       "wanderlust",
		SubscribersCount: 1,
		MaxReconnects:    -1,
		ReconnectWait:    2 * time.Second,
		CloseTimeout:     10 * time.Second,
		AckWaitTimeout:   30 * time.Second,
	}
}

// ServerConfig configures the embedded NATS server.
type ServerConfig struct {
	Host       string
	Port       int
	MaxPayload int32
}

// DefaultServerConfig returns embedded server defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host:       "127.0.0.1",
		Port:       4222,
		MaxPayload: 1024 * 1024,
	}
}
