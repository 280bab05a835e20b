// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// ErrConsumerStopped is returned when a consumer exits without error while
// its context is still live.
var ErrConsumerStopped = errors.New("event consumer stopped")

// ConsumerRunner matches *events.Consumer.
type ConsumerRunner interface {
	Run(ctx context.Context) error
	Topic() string
}

// EventConsumerService runs a feedback event consumer under supervision.
// Any exit other than cancellation is reported as a failure so suture
// resubscribes with backoff.
type EventConsumerService struct {
	consumer ConsumerRunner
	logger   zerolog.Logger
	name     string
}

// NewEventConsumerService wraps consumer.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEventConsumerService(consumer ConsumerRunner, logger zerolog.Logger) *EventConsumerService {
	return &EventConsumerService{
		consumer: consumer,
		logger:   logger.With().Str("service", "event-consumer").Str("topic", consumer.Topic()).Logger(),
		name:     "event-consumer",
	}
}

// Serve implements suture.Service.
func (s *EventConsumerService) Serve(ctx context.Context) error {
	err := s.consumer.Run(ctx)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err == nil {
		err = ErrConsumerStopped
	}
	s.logger.Warn().Err(err).Msg("event consumer exited")
	return fmt.Errorf("consume %s: %w", s.consumer.Topic(), err)
}

// String implements fmt.Stringer for suture log messages.
func (s *EventConsumerService) String() string {
	return s.name
}
