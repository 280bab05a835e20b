// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package supervisor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/thejerf/suture/v4"
	"github.com/thejerf/sutureslog"
)

// Layer selects one of the child supervisors under the root.
type Layer int

const (
	// LayerBroker runs the embedded NATS server.
	LayerBroker Layer = iota
	// LayerMessaging runs the feedback consumer, the stream hub and
	// background reporters.
	LayerMessaging
	// LayerAPI runs the HTTP server.
	LayerAPI

	layerCount
)

var layerNames = [layerCount]string{
	LayerBroker:    "broker-layer",
	LayerMessaging: "messaging-layer",
	LayerAPI:       "api-layer",
}

func (l Layer) String() string {
	if l < 0 || l >= layerCount {
		return fmt.Sprintf("layer(%d)", int(l))
	}
	return layerNames[l]
}

// TreeConfig tunes restart behaviour. Zero fields take the defaults from
// DefaultTreeConfig.
type TreeConfig struct {
	FailureThreshold float64
	FailureDecay     float64 // seconds
	FailureBackoff   time.Duration
	ShutdownTimeout  time.Duration
}

// DefaultTreeConfig mirrors suture's own defaults.
func DefaultTreeConfig() TreeConfig {
	return TreeConfig{
		FailureThreshold: 5,
		FailureDecay:     30,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	}
}

func (c TreeConfig) withDefaults() TreeConfig {
	d := DefaultTreeConfig()
	if c.FailureThreshold == 0 {
		c.FailureThreshold = d.FailureThreshold
	}
	if c.FailureDecay == 0 {
		c.FailureDecay = d.FailureDecay
	}
	if c.FailureBackoff == 0 {
		c.FailureBackoff = d.FailureBackoff
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	return c
}

func (c TreeConfig) spec(hook suture.EventHook) suture.Spec {
	return suture.Spec{
		EventHook:        hook,
		FailureThreshold: c.FailureThreshold,
		FailureDecay:     c.FailureDecay,
		FailureBackoff:   c.FailureBackoff,
		Timeout:          c.ShutdownTimeout,
	}
}

// SupervisorTree is the process-wide supervisor: a root with one child
// supervisor per Layer. A consumer that keeps failing is restarted inside
// the messaging layer while the API layer keeps answering requests.
type SupervisorTree struct {
	root   *suture.Supervisor
	layers [layerCount]*suture.Supervisor
	config TreeConfig
}

// NewSupervisorTree builds the root and its layers. Supervisor events are
// logged through logger, or slog.Default() when nil.
func NewSupervisorTree(logger *slog.Logger, config TreeConfig) (*SupervisorTree, error) {
	if logger == nil {
		logger = slog.Default()
	}
	config = config.withDefaults()

	hook := (&sutureslog.Handler{Logger: logger}).MustHook()
	t := &SupervisorTree{
		root:   suture.New("wanderlust", config.spec(hook)),
		config: config,
	}
	for l := Layer(0); l < layerCount; l++ {
		// Layers inherit the root's event hook once added.
		t.layers[l] = suture.New(l.String(), config.spec(nil))
		t.root.Add(t.layers[l])
	}
	return t, nil
}

// Root returns the root supervisor.
func (t *SupervisorTree) Root() *suture.Supervisor { return t.root }

// Config returns the configuration after defaults were applied.
func (t *SupervisorTree) Config() TreeConfig { return t.config }

// Add places svc under the given layer.
func (t *SupervisorTree) Add(layer Layer, svc suture.Service) suture.ServiceToken {
	return t.layers[layer].Add(svc)
}

// Remove stops a service previously returned by Add for the same layer.
func (t *SupervisorTree) Remove(layer Layer, token suture.ServiceToken) error {
	return t.layers[layer].Remove(token)
}

// AddBrokerService is Add(LayerBroker, svc).
func (t *SupervisorTree) AddBrokerService(svc suture.Service) suture.ServiceToken {
	return t.Add(LayerBroker, svc)
}

// AddMessagingService is Add(LayerMessaging, svc).
func (t *SupervisorTree) AddMessagingService(svc suture.Service) suture.ServiceToken {
	return t.Add(LayerMessaging, svc)
}

// AddAPIService is Add(LayerAPI, svc).
func (t *SupervisorTree) AddAPIService(svc suture.Service) suture.ServiceToken {
	return t.Add(LayerAPI, svc)
}

// Serve runs the tree until ctx ends.
func (t *SupervisorTree) Serve(ctx context.Context) error {
	return t.root.Serve(ctx)
}

// ServeBackground runs the tree in a goroutine. The channel yields the
// root's exit error once.
func (t *SupervisorTree) ServeBackground(ctx context.Context) <-chan error {
	return t.root.ServeBackground(ctx)
}

// UnstoppedServiceReport lists services still running after the shutdown
// timeout expired.
func (t *SupervisorTree) UnstoppedServiceReport() ([]suture.UnstoppedService, error) {
	return t.root.UnstoppedServiceReport()
}
