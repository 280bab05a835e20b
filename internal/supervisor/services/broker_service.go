// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ErrBrokerStopped is returned when the broker exits while supervised.
var ErrBrokerStopped = errors.New("embedded broker stopped unexpectedly")

// Broker is the lifecycle subset of *events.EmbeddedServer.
type Broker interface {
	IsRunning() bool
	Shutdown(ctx context.Context) error
}

// BrokerFactory starts a new broker instance.
type BrokerFactory func() (Broker, error)

// EmbeddedBrokerService supervises an in-process NATS server.
//
// The broker is usually started before the tree so publishers can connect
// during wiring; pass it as initial. Serve adopts a running broker, starts
// a new one through the factory when it has died, and polls liveness until
// shutdown.
type EmbeddedBrokerService struct {
	factory         BrokerFactory
	checkInterval   time.Duration
	shutdownTimeout time.Duration
	logger          zerolog.Logger
	name            string

	mu      sync.Mutex
	current Broker
}

// NewEmbeddedBrokerService creates the service. initial may be nil.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEmbeddedBrokerService(initial Broker, factory BrokerFactory, shutdownTimeout time.Duration, logger zerolog.Logger) *EmbeddedBrokerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	return &EmbeddedBrokerService{
		factory:         factory,
		checkInterval:   time.Second,
		shutdownTimeout: shutdownTimeout,
		logger:          logger.With().Str("service", "embedded-nats").Logger(),
		name:            "embedded-nats",
		current:         initial,
	}
}

// Serve implements suture.Service.
func (s *EmbeddedBrokerService) Serve(ctx context.Context) error {
	broker, err := s.ensureRunning()
	if err != nil {
		return err
	}

	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
			defer cancel()

			s.mu.Lock()
			s.current = nil
			s.mu.Unlock()

			if err := broker.Shutdown(shutdownCtx); err != nil {
				s.logger.Warn().Err(err).Msg("embedded NATS shutdown incomplete")
			}
			return ctx.Err()

		case <-ticker.C:
			if !broker.IsRunning() {
				s.logger.Error().Msg("embedded NATS server is no longer running")
				return ErrBrokerStopped
			}
		}
	}
}

func (s *EmbeddedBrokerService) ensureRunning() (Broker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil && s.current.IsRunning() {
		return s.current, nil
	}
	if s.factory == nil {
		return nil, fmt.Errorf("%w: no factory to restart it", ErrBrokerStopped)
	}

	broker, err := s.factory()
	if err != nil {
		return nil, fmt.Errorf("start embedded broker: %w", err)
	}
	s.logger.Info().Msg("embedded NATS server started")
	s.current = broker
	return broker, nil
}

// String implements fmt.Stringer for suture log messages.
func (s *EmbeddedBrokerService) String() string {
	return s.name
}
