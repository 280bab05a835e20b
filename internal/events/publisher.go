// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package events

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/wanderlust/internal/logging"
	"github.com/tomtom215/wanderlust/internal/metrics"
	"github.com/tomtom215/wanderlust/internal/recommend"
)

// Publisher errors.
var (
	ErrPublisherClosed = errors.New("publisher is closed")
	ErrRateLimited     = errors.New("publish rate limit exceeded")
)

// Publish failure reasons used as metric labels.
const (
	reasonBreakerOpen = "breaker_open"
	reasonRateLimited = "rate_limited"
	reasonEncode      = "encode"
	reasonPublish     = "publish"
)

// Metadata keys set on published messages.
const (
	MetadataUserID        = "user_id"
	MetadataCorrelationID = "correlation_id"
	MetadataSchema        = "schema_version"
)

// Publisher publishes FeedbackRecorded events and satisfies
// recommend.FeedbackPublisher.
type Publisher struct {
	publisher message.Publisher
	topic     string
	breaker   *gobreaker.CircuitBreaker[any]
	limiter   *rate.Limiter
	events    *logging.EventLogger
	now       func() time.Time

	mu     sync.RWMutex
	closed bool
}

var _ recommend.FeedbackPublisher = (*Publisher)(nil)

// NewPublisher wraps pub with a circuit breaker and, when cfg.Rate is
// positive, a token bucket limiter.
func NewPublisher(pub message.Publisher, cfg PublisherConfig) *Publisher {
	if cfg.Topic == "" {
		cfg.Topic = DefaultTopic
	}
	p := &Publisher{
		publisher: pub,
		topic:     cfg.Topic,
		breaker:   NewCircuitBreaker(cfg.Breaker),
		events:    logging.NewEventLogger(),
		now:       time.Now,
	}
	if cfg.Rate > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		p.limiter = rate.NewLimiter(rate.Limit(cfg.Rate), burst)
	}
	return p
}

// Topic returns the topic events are published to.
func (p *Publisher) Topic() string {
	return p.topic
}

// BreakerState returns the circuit breaker state name.
func (p *Publisher) BreakerState() string {
	return p.breaker.State().String()
}

// PublishFeedback publishes one FeedbackRecorded event.
func (p *Publisher) PublishFeedback(ctx context.Context, event recommend.FeedbackEvent, likedCount int) error {
	p.mu.RLock()
	closed := p.closed
	p.mu.RUnlock()
	if closed {
		return ErrPublisherClosed
	}

	evt := NewFeedbackRecorded(event, likedCount, p.now())

	if p.limiter != nil && !p.limiter.Allow() {
		return p.fail(ctx, evt.EventID, reasonRateLimited, ErrRateLimited)
	}

	data, err := evt.Marshal()
	if err != nil {
		return p.fail(ctx, evt.EventID, reasonEncode, err)
	}

	msg := message.NewMessage(evt.EventID, data)
	msg.Metadata.Set(MetadataUserID, evt.UserID)
	msg.Metadata.Set(MetadataSchema, strconv.Itoa(evt.SchemaVersion))
	if id := logging.CorrelationIDFromContext(ctx); id != "" {
		msg.Metadata.Set(MetadataCorrelationID, id)
	}
	msg.SetContext(ctx)

	_, err = p.breaker.Execute(func() (any, error) {
		return nil, p.publisher.Publish(p.topic, msg)
	})
	if err != nil {
		reason := reasonPublish
		if IsBreakerRejection(err) {
			reason = reasonBreakerOpen
		}
		return p.fail(ctx, evt.EventID, reason, fmt.Errorf("publish %s: %w", p.topic, err))
	}

	metrics.RecordEventPublished()
	p.events.LogEventPublished(ctx, evt.EventID, p.topic)
	return nil
}

func (p *Publisher) fail(ctx context.Context, eventID, reason string, err error) error {
	metrics.RecordEventPublishFailure(reason)
	p.events.LogPublishFailed(ctx, eventID, p.topic, err)
	return err
}

// Close stops further publishes, which then fail with ErrPublisherClosed.
// The transport is closed by its owner.
func (p *Publisher) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
}
