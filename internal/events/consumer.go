// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package events

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/tomtom215/wanderlust/internal/logging"
	"github.com/tomtom215/wanderlust/internal/metrics"
)

// Consume results used as metric labels.
const (
	resultProcessed = "processed"
	resultMalformed = "malformed"
	resultFailed    = "failed"
)

// HandlerFunc processes one decoded event. Returning an error nacks the
// message.
type HandlerFunc func(ctx context.Context, event *FeedbackRecorded) error

// Consumer reads FeedbackRecorded events from a topic.
type Consumer struct {
	subscriber message.Subscriber
	topic      string
	handler    HandlerFunc
	events     *logging.EventLogger

	running   atomic.Bool
	processed atomic.Int64
	malformed atomic.Int64
	failed    atomic.Int64
}

// ConsumerStats reports consumer counters.
type ConsumerStats struct {
	Running   bool  `json:"running"`
	Processed int64 `json:"processed"`
	Malformed int64 `json:"malformed"`
	Failed    int64 `json:"failed"`
}

// NewConsumer creates a consumer for topic. handler may be nil, in which
// case events are only logged and counted.
func NewConsumer(sub message.Subscriber, topic string, handler HandlerFunc) *Consumer {
	if topic == "" {
		topic = DefaultTopic
	}
	return &Consumer{
		subscriber: sub,
		topic:      topic,
		handler:    handler,
		events:     logging.NewEventLogger(),
	}
}

// Topic returns the consumed topic.
func (c *Consumer) Topic() string {
	return c.topic
}

// Run subscribes and processes messages until ctx is cancelled or the
// subscription channel closes. It returns ctx.Err() on cancellation.
func (c *Consumer) Run(ctx context.Context) error {
	messages, err := c.subscriber.Subscribe(ctx, c.topic)
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", c.topic, err)
	}

	c.running.Store(true)
	defer c.running.Store(false)
	c.events.LogSubscriptionStarted(c.topic)
	defer c.events.LogSubscriptionStopped(c.topic)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return fmt.Errorf("subscription to %s closed", c.topic)
			}
			c.handle(ctx, msg)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, msg *message.Message) {
	msgCtx := ctx
	if id := msg.Metadata.Get(MetadataCorrelationID); id != "" {
		msgCtx = logging.ContextWithCorrelationID(ctx, id)
	}

	event, err := UnmarshalFeedbackRecorded(msg.Payload)
	if err != nil {
		// Redelivery cannot fix a bad payload.
		c.malformed.Add(1)
		metrics.RecordEventConsumed(resultMalformed)
		c.events.LogEventFailed(msgCtx, msg.UUID, err)
		msg.Ack()
		return
	}

	if c.handler != nil {
		if err := c.handler(msgCtx, event); err != nil {
			c.failed.Add(1)
			metrics.RecordEventConsumed(resultFailed)
			c.events.LogEventFailed(msgCtx, event.EventID, err)
			msg.Nack()
			return
		}
	}

	c.processed.Add(1)
	metrics.RecordEventConsumed(resultProcessed)
	c.events.LogFeedbackConsumed(msgCtx, event.EventID, event.UserID, event.ItemID, event.Liked)
	msg.Ack()
}

// Stats returns a snapshot of consumer counters.
func (c *Consumer) Stats() ConsumerStats {
	return ConsumerStats{
		Running:   c.running.Load(),
		Processed: c.processed.Load(),
		Malformed: c.malformed.Load(),
		Failed:    c.failed.Load(),
	}
}
