// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wanderlust/internal/metrics"
	"github.com/tomtom215/wanderlust/internal/recommend"
)

// StatsSource defines the engine view used by the reporter.
// Satisfied by *recommend.Engine.
type StatsSource interface {
	Stats() recommend.Stats
}

// StatsReporterService periodically refreshes engine gauges and logs
// request activity since the previous report.
type StatsReporterService struct {
	source   StatsSource
	interval time.Duration
	logger   zerolog.Logger
	name     string

	last recommend.Stats
}

// NewStatsReporterService creates a reporter. Non-positive intervals
// default to one minute.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewStatsReporterService(source StatsSource, interval time.Duration, logger zerolog.Logger) *StatsReporterService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &StatsReporterService{
		source:   source,
		interval: interval,
		logger:   logger.With().Str("service", "stats-reporter").Logger(),
		name:     "stats-reporter",
	}
}

// Serve implements suture.Service.
func (s *StatsReporterService) Serve(ctx context.Context) error {
	s.report()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.report()
		}
	}
}

func (s *StatsReporterService) report() {
	stats := s.source.Stats()
	metrics.SetDatasetSizes(stats.CatalogSize, stats.ProfileCount)
	metrics.SetFeedbackUsers(stats.FeedbackUsers)

	s.logger.Debug().
		Int64("content_requests", stats.ContentRequests-s.last.ContentRequests).
		Int64("collaborative_requests", stats.CollaborativeRequests-s.last.CollaborativeRequests).
		Int64("feedback_events", stats.FeedbackEvents-s.last.FeedbackEvents).
		Int64("publish_failures", stats.PublishFailures-s.last.PublishFailures).
		Int("feedback_users", stats.FeedbackUsers).
		Msg("engine activity")

	s.last = stats
}

// String implements fmt.Stringer for suture log messages.
func (s *StatsReporterService) String() string {
	return s.name
}
