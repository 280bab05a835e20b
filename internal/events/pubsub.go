// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package events

import (
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	wmNats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	natsgo "github.com/nats-io/nats.go"
)

// PubSub pairs a Watermill publisher and subscriber on one transport.
type PubSub struct {
	Publisher  message.Publisher
	Subscriber message.Subscriber

	// shared is set when Publisher and Subscriber are the same object.
	shared bool
}

// NewMemoryPubSub returns an in-process gochannel transport. Messages
// published with no subscriber attached are dropped.
func NewMemoryPubSub(logger watermill.LoggerAdapter) *PubSub {
	if logger == nil {
		logger = watermill.NopLogger{}
	}
	ch := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 256,
	}, logger)
	return &PubSub{Publisher: ch, Subscriber: ch, shared: true}
}

// NewNATSPubSub connects a publisher and a queue-group subscriber to NATS.
// JetStream is disabled; delivery is at-most-once.
func NewNATSPubSub(cfg NATSConfig, logger watermill.LoggerAdapter) (*PubSub, error) {
	if logger == nil {
		logger = watermill.NopLogger{}
	}

	natsOpts := []natsgo.Option{
		natsgo.Name("wanderlust"),
		natsgo.RetryOnFailedConnect(true),
		natsgo.MaxReconnects(cfg.MaxReconnects),
		natsgo.ReconnectWait(cfg.ReconnectWait),
		natsgo.DisconnectErrHandler(func(_ *natsgo.Conn, err error) {
			if err != nil {
				logger.Error("NATS disconnected", err, nil)
			}
		}),
		natsgo.ReconnectHandler(func(nc *natsgo.Conn) {
			logger.Info("NATS reconnected", watermill.LogFields{
				"url": nc.ConnectedUrl(),
			})
		}),
	}

	marshaler := &wmNats.NATSMarshaler{}
	jsConfig := wmNats.JetStreamConfig{Disabled: true}

	pub, err := wmNats.NewPublisher(wmNats.PublisherConfig{
		URL:         cfg.URL,
		NatsOptions: natsOpts,
		Marshaler:   marshaler,
		JetStream:   jsConfig,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create nats publisher: %w", err)
	}

	sub, err := wmNats.NewSubscriber(wmNats.SubscriberConfig{
		URL:              cfg.URL,
		QueueGroupPrefix: cfg.QueueGroup,
		SubscribersCount: cfg.SubscribersCount,
		CloseTimeout:     cfg.CloseTimeout,
		AckWaitTimeout:   cfg.AckWaitTimeout,
		NatsOptions:      natsOpts,
		Unmarshaler:      marshaler,
		JetStream:        jsConfig,
	}, logger)
	if err != nil {
		_ = pub.Close()
		return nil, fmt.Errorf("create nats subscriber: %w", err)
	}

	return &PubSub{Publisher: pub, Subscriber: sub}, nil
}

// Close closes both sides of the transport.
func (p *PubSub) Close() error {
	if p.shared {
		return p.Publisher.Close()
	}
	return errors.Join(p.Publisher.Close(), p.Subscriber.Close())
}
