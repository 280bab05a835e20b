// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package feedback

import (
	"fmt"
	"sync"
	"testing"
)

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestStore_Record(t *testing.T) {
	t.Parallel()

	type step struct {
		item  string
		liked bool
	}

	tests := []struct {
		name         string
		steps        []step
		wantLiked    []string
		wantDisliked []string
	}{
		{
			name:         "like then dislike moves item",
			steps:        []step{{"Rome", true}, {"Rome", false}},
			wantLiked:    []string{},
			wantDisliked: []string{"Rome"},
		},
		{
			name:         "dislike then like moves item back",
			steps:        []step{{"Rome", false}, {"Rome", true}},
			wantLiked:    []string{"Rome"},
			wantDisliked: []string{},
		},
		{
			name:         "repeated like is idempotent",
			steps:        []step{{"Rome", true}, {"Rome", true}, {"Paris", true}},
			wantLiked:    []string{"Rome", "Paris"},
			wantDisliked: []string{},
		},
		{
			name:         "insertion order preserved after removal",
			steps:        []step{{"A", true}, {"B", true}, {"C", true}, {"B", false}, {"D", true}},
			wantLiked:    []string{"A", "C", "D"},
			wantDisliked: []string{"B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := NewStore()
			var last []string
			for _, st := range tt.steps {
				last = s.Record("u1", st.item, st.liked)
			}
			if !equalStrings(last, tt.wantLiked) {
				t.Errorf("Record() = %v, want %v", last, tt.wantLiked)
			}
			snap := s.Snapshot("u1")
			if !equalStrings(snap.Liked, tt.wantLiked) {
				t.Errorf("Snapshot().Liked = %v, want %v", snap.Liked, tt.wantLiked)
			}
			if !equalStrings(snap.Disliked, tt.wantDisliked) {
				t.Errorf("Snapshot().Disliked = %v, want %v", snap.Disliked, tt.wantDisliked)
			}
		})
	}
}

func TestStore_UsersIsolated(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Record("u1", "Rome", true)
	got := s.Record("u2", "Paris", true)

	if !equalStrings(got, []string{"Paris"}) {
		t.Errorf("Record(u2) = %v, want [Paris]", got)
	}
	if !equalStrings(s.Liked("u1"), []string{"Rome"}) {
		t.Errorf("Liked(u1) = %v, want [Rome]", s.Liked("u1"))
	}
	if s.Users() != 2 {
		t.Errorf("Users() = %d, want 2", s.Users())
	}
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	t.Parallel()

	s := NewStore()
	liked := s.Record("u1", "Rome", true)
	liked[0] = "mutated"

	if got := s.Liked("u1"); !equalStrings(got, []string{"Rome"}) {
		t.Errorf("Liked(u1) = %v after mutating the returned slice, want [Rome]", got)
	}
}

func TestStore_UnknownUser(t *testing.T) {
	t.Parallel()

	s := NewStore()
	if got := s.Liked("nobody"); got != nil {
		t.Errorf("Liked(nobody) = %v, want nil", got)
	}
	if snap := s.Snapshot("nobody"); snap.Liked != nil || snap.Disliked != nil {
		t.Errorf("Snapshot(nobody) = %+v, want empty", snap)
	}
	if s.Users() != 0 {
		t.Errorf("Users() = %d, want 0", s.Users())
	}
}

func TestStore_ConcurrentSameUser(t *testing.T) {
	t.Parallel()

	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			s.Record("u1", fmt.Sprintf("item-%d", i%10), true)
		}(i)
		go func(i int) {
			defer wg.Done()
			s.Record("u1", fmt.Sprintf("item-%d", i%10), false)
		}(i)
	}
	wg.Wait()

	snap := s.Snapshot("u1")
	disliked := make(map[string]bool, len(snap.Disliked))
	for _, d := range snap.Disliked {
		disliked[d] = true
	}
	for _, l := range snap.Liked {
		if disliked[l] {
			t.Errorf("item %q is both liked and disliked", l)
		}
	}
	if len(snap.Liked)+len(snap.Disliked) != 10 {
		t.Errorf("liked+disliked = %d, want 10", len(snap.Liked)+len(snap.Disliked))
	}
}

func TestStore_ConcurrentUsers(t *testing.T) {
	t.Parallel()

	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := fmt.Sprintf("user-%d", i)
			for j := 0; j < 5; j++ {
				s.Record(user, fmt.Sprintf("item-%d", j), true)
			}
		}(i)
	}
	wg.Wait()

	if s.Users() != 20 {
		t.Errorf("Users() = %d, want 20", s.Users())
	}
	for i := 0; i < 20; i++ {
		if n := len(s.Liked(fmt.Sprintf("user-%d", i))); n != 5 {
			t.Errorf("len(Liked(user-%d)) = %d, want 5", i, n)
		}
	}
}
