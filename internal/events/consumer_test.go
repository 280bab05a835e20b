// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package events

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/tomtom215/wanderlust/internal/recommend"
)

// waitFor polls cond until it holds or timeout passes.
func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("condition not met within %v", timeout)
}

// startConsumer runs c in the background and returns a stop function that
// cancels it and returns Run's error.
func startConsumer(t *testing.T, c *Consumer) func() error {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- c.Run(ctx) }()
	waitFor(t, 2*time.Second, func() bool { return c.Stats().Running })

	return func() error {
		cancel()
		select {
		case err := <-errCh:
			return err
		case <-time.After(5 * time.Second):
			t.Fatal("consumer did not stop")
			return nil
		}
	}
}

func TestConsumer_MemoryRoundTrip(t *testing.T) {
	t.Parallel()

	ps := NewMemoryPubSub(watermill.NopLogger{})
	defer ps.Close()

	received := make(chan *FeedbackRecorded, 1)
	consumer := NewConsumer(ps.Subscriber, DefaultTopic, func(_ context.Context, evt *FeedbackRecorded) error {
		received <- evt
		return nil
	})
	stop := startConsumer(t, consumer)

	pub := NewPublisher(ps.Publisher, DefaultPublisherConfig())
	event := recommend.FeedbackEvent{UserID: "u1", ItemID: "Queenstown", Liked: true}
	if err := pub.PublishFeedback(context.Background(), event, 1); err != nil {
		t.Fatalf("PublishFeedback() error = %v", err)
	}

	select {
	case got := <-received:
		if got.UserID != "u1" || got.ItemID != "Queenstown" || !got.Liked || got.LikedCount != 1 {
			t.Errorf("received %+v", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("event not received")
	}

	waitFor(t, time.Second, func() bool { return consumer.Stats().Processed == 1 })

	if err := stop(); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if consumer.Stats().Running {
		t.Error("Stats().Running = true after stop")
	}
}

func TestConsumer_MalformedAcked(t *testing.T) {
	t.Parallel()

	ps := NewMemoryPubSub(nil)
	defer ps.Close()

	var calls atomic.Int32
	consumer := NewConsumer(ps.Subscriber, "", func(context.Context, *FeedbackRecorded) error {
		calls.Add(1)
		return nil
	})
	stop := startConsumer(t, consumer)
	defer stop() //nolint:errcheck

	if consumer.Topic() != DefaultTopic {
		t.Errorf("Topic() = %q, want %q", consumer.Topic(), DefaultTopic)
	}

	if err := ps.Publisher.Publish(DefaultTopic, message.NewMessage(watermill.NewUUID(), []byte("{broken"))); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	waitFor(t, 2*time.Second, func() bool { return consumer.Stats().Malformed == 1 })
	if calls.Load() != 0 {
		t.Errorf("handler called %d times for malformed payload, want 0", calls.Load())
	}
}

func TestConsumer_HandlerErrorNacks(t *testing.T) {
	t.Parallel()

	ps := NewMemoryPubSub(nil)
	defer ps.Close()

	var attempts atomic.Int32
	consumer := NewConsumer(ps.Subscriber, DefaultTopic, func(context.Context, *FeedbackRecorded) error {
		if attempts.Add(1) == 1 {
			return errors.New("transient")
		}
		return nil
	})
	stop := startConsumer(t, consumer)
	defer stop() //nolint:errcheck

	pub := NewPublisher(ps.Publisher, DefaultPublisherConfig())
	if err := pub.PublishFeedback(context.Background(), recommend.FeedbackEvent{UserID: "u", ItemID: "Bali"}, 0); err != nil {
		t.Fatalf("PublishFeedback() error = %v", err)
	}

	// gochannel redelivers a nacked message.
	waitFor(t, 2*time.Second, func() bool { return consumer.Stats().Processed == 1 })
	if got := consumer.Stats().Failed; got != 1 {
		t.Errorf("Stats().Failed = %d, want 1", got)
	}
}

func TestConsumer_EmbeddedNATSRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping embedded NATS test in short mode")
	}

	cfg := DefaultServerConfig()
	cfg.Port = -1
	srv, err := NewEmbeddedServer(cfg)
	if err != nil {
		t.Fatalf("NewEmbeddedServer() error = %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			t.Errorf("Shutdown() error = %v", err)
		}
	}()
	if !srv.IsRunning() {
		t.Fatal("IsRunning() = false after start")
	}

	ps, err := NewNATSPubSub(DefaultNATSConfig(srv.ClientURL()), nil)
	if err != nil {
		t.Fatalf("NewNATSPubSub() error = %v", err)
	}
	defer ps.Close()

	received := make(chan *FeedbackRecorded, 16)
	consumer := NewConsumer(ps.Subscriber, DefaultTopic, func(_ context.Context, evt *FeedbackRecorded) error {
		received <- evt
		return nil
	})
	stop := startConsumer(t, consumer)
	defer stop() //nolint:errcheck

	pub := NewPublisher(ps.Publisher, DefaultPublisherConfig())
	event := recommend.FeedbackEvent{UserID: "u7", ItemID: "Reykjavik", Liked: true}

	// Core NATS drops messages published before the subscription reaches
	// the server, so publish until one arrives.
	deadline := time.After(5 * time.Second)
	for {
		if err := pub.PublishFeedback(context.Background(), event, 1); err != nil {
			t.Fatalf("PublishFeedback() error = %v", err)
		}
		select {
		case got := <-received:
			if got.ItemID != "Reykjavik" || got.UserID != "u7" {
				t.Errorf("received %+v", got)
			}
			return
		case <-time.After(100 * time.Millisecond):
		case <-deadline:
			t.Fatal("event not received over NATS")
		}
	}
}
