// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package supervisor

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

var errSimulated = errors.New("simulated failure")

// stubService counts Serve calls and fails a configurable number of times
// before running until its context ends.
type stubService struct {
	name     string
	starts   atomic.Int32
	failures atomic.Int32
	failFor  int32
	err      error

	once    sync.Once
	started chan struct{}
}

func newStubService(name string) *stubService {
	return &stubService{name: name, started: make(chan struct{})}
}

func (s *stubService) Serve(ctx context.Context) error {
	s.starts.Add(1)
	s.once.Do(func() { close(s.started) })

	if s.failFor > 0 && s.failures.Add(1) <= s.failFor {
		return errSimulated
	}
	if s.err != nil {
		return s.err
	}
	<-ctx.Done()
	return ctx.Err()
}

func (s *stubService) String() string {
	return s.name
}
