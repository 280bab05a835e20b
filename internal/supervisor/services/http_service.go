// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const defaultDrainTimeout = 10 * time.Second

// HTTPServer is the part of *http.Server the service drives.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService serves the recommendation API inside the api layer.
// Cancelling its context drains in-flight requests for at most
// shutdownTimeout before Serve returns.
type HTTPServerService struct {
	server          HTTPServer
	shutdownTimeout time.Duration
	logger          zerolog.Logger
}

// NewHTTPServerService wraps server. A non-positive shutdownTimeout means 10s.
//
//nolint:gocritic // zerolog loggers are passed by value
func NewHTTPServerService(server HTTPServer, shutdownTimeout time.Duration, logger zerolog.Logger) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultDrainTimeout
	}
	return &HTTPServerService{
		server:          server,
		shutdownTimeout: shutdownTimeout,
		logger:          logger.With().Str("service", "http-server").Logger(),
	}
}

// Serve implements suture.Service.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	exited := make(chan error, 1)
	go func() { exited <- h.server.ListenAndServe() }()

	if srv, ok := h.server.(*http.Server); ok {
		h.logger.Info().Str("addr", srv.Addr).Msg("serving recommendations API")
	}

	select {
	case err := <-exited:
		return listenError(err)
	case <-ctx.Done():
	}

	if err := h.drain(); err != nil {
		return fmt.Errorf("drain http server: %w", err)
	}
	if err := listenError(<-exited); err != nil {
		return err
	}
	return ctx.Err()
}

// drain runs Shutdown on a fresh context since the service context is done.
func (h *HTTPServerService) drain() error {
	ctx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
	defer cancel()

	h.logger.Info().Dur("timeout", h.shutdownTimeout).Msg("draining in-flight requests")
	return h.server.Shutdown(ctx)
}

// listenError drops http.ErrServerClosed, which only signals Shutdown.
func listenError(err error) error {
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("http server: %w", err)
}

func (h *HTTPServerService) String() string {
	return "http-server"
}
