// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

// Package feedback keeps per-user like and dislike bookkeeping in memory.
//
// Each user has a liked set and a disliked set that never share an item.
// Recording a like moves the item into the liked set and out of the disliked
// set, and the reverse for a dislike. Both sets remember first-insertion
// order so snapshots are deterministic.
//
// Writes for one user are serialized by that user's record lock. The
// store-level lock is only held to look up or create a record, so different
// users never block each other on a write.
package feedback

import "sync"

// orderedSet is an insertion-ordered set of item ids.
type orderedSet struct {
	order []string
	pos   map[string]int
}

func newOrderedSet() *orderedSet {
	return &orderedSet{pos: make(map[string]int)}
}

func (s *orderedSet) add(id string) {
	if _, ok := s.pos[id]; ok {
		return
	}
	s.pos[id] = len(s.order)
	s.order = append(s.order, id)
}

func (s *orderedSet) remove(id string) {
	i, ok := s.pos[id]
	if !ok {
		return
	}
	delete(s.pos, id)
	s.order = append(s.order[:i], s.order[i+1:]...)
	for j := i; j < len(s.order); j++ {
		s.pos[s.order[j]] = j
	}
}

func (s *orderedSet) snapshot() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

type record struct {
	mu       sync.Mutex
	liked    *orderedSet
	disliked *orderedSet
}

// Snapshot is a point-in-time copy of one user's feedback.
type Snapshot struct {
	Liked    []string `json:"liked"`
	Disliked []string `json:"disliked"`
}

// Store holds feedback records for all users. The zero value is not usable;
// call NewStore.
type Store struct {
	mu      sync.RWMutex
	records map[string]*record
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{records: make(map[string]*record)}
}

func (s *Store) lookup(userID string) (*record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[userID]
	return r, ok
}

func (s *Store) getOrCreate(userID string) *record {
	if r, ok := s.lookup(userID); ok {
		return r
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.records[userID]; ok {
		return r
	}
	r := &record{liked: newOrderedSet(), disliked: newOrderedSet()}
	s.records[userID] = r
	return r
}

// Record applies a like (liked=true) or dislike (liked=false) of itemID for
// userID and returns a snapshot of the user's liked items. It always
// succeeds and is idempotent for repeated identical events.
func (s *Store) Record(userID, itemID string, liked bool) []string {
	r := s.getOrCreate(userID)

	r.mu.Lock()
	defer r.mu.Unlock()

	if liked {
		r.liked.add(itemID)
		r.disliked.remove(itemID)
	} else {
		r.disliked.add(itemID)
		r.liked.remove(itemID)
	}
	return r.liked.snapshot()
}

// Liked returns the user's liked items, or nil for an unknown user.
func (s *Store) Liked(userID string) []string {
	return s.Snapshot(userID).Liked
}

// Disliked returns the user's disliked items, or nil for an unknown user.
func (s *Store) Disliked(userID string) []string {
	return s.Snapshot(userID).Disliked
}

// Snapshot returns both sets for userID. Unknown users yield an empty
// snapshot.
func (s *Store) Snapshot(userID string) Snapshot {
	r, ok := s.lookup(userID)
	if !ok {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot{Liked: r.liked.snapshot(), Disliked: r.disliked.snapshot()}
}

// Users returns the number of users with a record.
func (s *Store) Users() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
