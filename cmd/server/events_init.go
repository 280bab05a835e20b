// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package main

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/rs/zerolog"

	"github.com/tomtom215/wanderlust/internal/config"
	"github.com/tomtom215/wanderlust/internal/events"
	"github.com/tomtom215/wanderlust/internal/recommend"
	"github.com/tomtom215/wanderlust/internal/supervisor"
	"github.com/tomtom215/wanderlust/internal/supervisor/services"
	"github.com/tomtom215/wanderlust/internal/websocket"
)

// EventComponents holds the feedback event bus for lifecycle management.
type EventComponents struct {
	pubsub    *events.PubSub
	publisher *events.Publisher
	consumer  *events.Consumer
	hub       *websocket.Hub
}

// Active reports whether the consumer is subscribed.
func (c *EventComponents) Active() bool {
	return c != nil && c.consumer.Stats().Running
}

// Hub returns the feedback stream hub, or nil when events are disabled.
func (c *EventComponents) Hub() *websocket.Hub {
	if c == nil {
		return nil
	}
	return c.hub
}

// Close stops publishing and closes the transport. The embedded broker is
// shut down by its supervisor service.
func (c *EventComponents) Close() error {
	if c == nil {
		return nil
	}
	c.publisher.Close()
	return c.pubsub.Close()
}

// initEvents wires feedback publication, the consumer and the websocket
// stream it feeds. It returns nil when the event bus is disabled.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initEvents(cfg *config.Config, engine *recommend.Engine, tree *supervisor.SupervisorTree, wmLogger watermill.LoggerAdapter, logger zerolog.Logger) (*EventComponents, error) {
	if !cfg.Events.Enabled {
		logger.Info().Msg("Feedback events disabled (EVENTS_ENABLED=false)")
		return nil, nil
	}

	components := &EventComponents{}

	switch cfg.Events.Backend {
	case config.EventsBackendMemory:
		components.pubsub = events.NewMemoryPubSub(wmLogger)
		logger.Info().Msg("Using in-process event bus")

	case config.EventsBackendNATS:
		natsURL := cfg.Events.NATSURL
		if cfg.Events.EmbeddedNATS {
			broker, err := startEmbeddedBroker(cfg, tree, logger)
			if err != nil {
				return nil, err
			}
			natsURL = broker.ClientURL()
		}

		pubsub, err := events.NewNATSPubSub(events.DefaultNATSConfig(natsURL), wmLogger)
		if err != nil {
			return nil, fmt.Errorf("connect event bus: %w", err)
		}
		components.pubsub = pubsub
		logger.Info().
			Str("url", natsURL).
			Bool("embedded", cfg.Events.EmbeddedNATS).
			Msg("Using NATS event bus")

	default:
		return nil, fmt.Errorf("unknown events backend %q", cfg.Events.Backend)
	}

	pubCfg := events.DefaultPublisherConfig()
	pubCfg.Topic = cfg.Events.Topic
	pubCfg.Rate = cfg.Events.PublishRate
	pubCfg.Burst = cfg.Events.PublishBurst
	pubCfg.Breaker.FailureThreshold = cfg.Events.BreakerFailureThreshold
	pubCfg.Breaker.Timeout = cfg.Events.BreakerTimeout

	components.publisher = events.NewPublisher(components.pubsub.Publisher, pubCfg)
	engine.SetFeedbackPublisher(components.publisher)

	components.hub = websocket.NewHub()
	tree.AddMessagingService(services.NewWebSocketHubService(components.hub))

	components.consumer = events.NewConsumer(components.pubsub.Subscriber, pubCfg.Topic, components.hub.HandleFeedback)
	tree.AddMessagingService(services.NewEventConsumerService(components.consumer, logger))

	logger.Info().
		Str("topic", pubCfg.Topic).
		Float64("publish_rate", pubCfg.Rate).
		Uint32("breaker_threshold", pubCfg.Breaker.FailureThreshold).
		Msg("Feedback events enabled")

	return components, nil
}

// startEmbeddedBroker starts the in-process NATS server before any client
// connects and hands it to the broker layer, which restarts it if it dies.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func startEmbeddedBroker(cfg *config.Config, tree *supervisor.SupervisorTree, logger zerolog.Logger) (*events.EmbeddedServer, error) {
	serverCfg := events.DefaultServerConfig()
	serverCfg.Host = cfg.Events.EmbeddedNATSHost
	serverCfg.Port = cfg.Events.EmbeddedNATSPort

	broker, err := events.NewEmbeddedServer(serverCfg)
	if err != nil {
		return nil, fmt.Errorf("start embedded NATS: %w", err)
	}

	factory := func() (services.Broker, error) {
		srv, err := events.NewEmbeddedServer(serverCfg)
		if err != nil {
			return nil, err
		}
		return srv, nil
	}
	tree.AddBrokerService(services.NewEmbeddedBrokerService(broker, factory, cfg.Supervisor.ShutdownTimeout, logger))

	logger.Info().Str("url", broker.ClientURL()).Msg("Embedded NATS server started")
	return broker, nil
}
