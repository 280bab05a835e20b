// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

// Package events publishes and consumes feedback events over Watermill.
//
// Every recorded like or dislike becomes a FeedbackRecorded message on a
// single topic. Two transports are supported:
//
//   - memory: Watermill's gochannel pub/sub, in-process only
//   - nats: watermill-nats over core NATS (no JetStream), optionally served
//     by an embedded nats-server
//
// Publishing is guarded by a gobreaker circuit breaker and an optional
// token bucket limiter. Publish failures are reported to the caller, which
// logs and counts them; they never fail the feedback request.
//
// Consumer reads the topic and acknowledges each event after handing it to
// an optional handler. Malformed payloads are acknowledged and counted so
// they are not redelivered.
package events
