// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// EventLogger writes the lifecycle of feedback events on the event bus with
// consistent field names.
type EventLogger struct {
	logger zerolog.Logger
}

// NewEventLogger creates an event logger on top of the global logger.
func NewEventLogger() *EventLogger {
	return NewEventLoggerWithLogger(Logger())
}

// NewEventLoggerWithLogger creates an event logger on top of logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewEventLoggerWithLogger(logger zerolog.Logger) *EventLogger {
	return &EventLogger{logger: logger.With().Str("component", "events").Logger()}
}

func (e *EventLogger) withContext(ctx context.Context) *zerolog.Logger {
	lc := e.logger.With()
	if id := CorrelationIDFromContext(ctx); id != "" {
		lc = lc.Str("correlation_id", id)
	}
	if id := RequestIDFromContext(ctx); id != "" {
		lc = lc.Str("request_id", id)
	}
	l := lc.Logger()
	return &l
}

// LogEventPublished records a successful publish.
func (e *EventLogger) LogEventPublished(ctx context.Context, eventID, topic string) {
	e.withContext(ctx).Debug().
		Str("event_id", eventID).
		Str("topic", topic).
		Msg("Event published")
}

// LogPublishFailed records a failed publish.
func (e *EventLogger) LogPublishFailed(ctx context.Context, eventID, topic string, err error) {
	e.withContext(ctx).Warn().
		Err(err).
		Str("event_id", eventID).
		Str("topic", topic).
		Msg("Event publish failed")
}

// LogFeedbackConsumed records a consumed feedback event.
func (e *EventLogger) LogFeedbackConsumed(ctx context.Context, eventID, userID, itemID string, liked bool) {
	e.withContext(ctx).Debug().
		Str("event_id", eventID).
		Str("user_id", SanitizeValue(userID)).
		Str("item_id", SanitizeValue(itemID)).
		Bool("liked", liked).
		Msg("Feedback event consumed")
}

// LogEventFailed records an event that could not be processed.
func (e *EventLogger) LogEventFailed(ctx context.Context, eventID string, err error) {
	e.withContext(ctx).Error().
		Err(err).
		Str("event_id", eventID).
		Msg("Event processing failed")
}

// LogSubscriptionStarted records a new subscription.
func (e *EventLogger) LogSubscriptionStarted(topic string) {
	e.logger.Info().Str("topic", topic).Msg("Subscription started")
}

// LogSubscriptionStopped records the end of a subscription.
func (e *EventLogger) LogSubscriptionStopped(topic string) {
	e.logger.Info().Str("topic", topic).Msg("Subscription stopped")
}
