// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package recommend

import (
	"errors"
	"testing"
)

func testProfiles() []ReferenceProfile {
	return []ReferenceProfile{
		{ID: "culture_lover_001", Liked: []string{"Paris", "Rome", "Kyoto", "Vienna"}},
		{ID: "adventure_enthusiast_001", Liked: []string{"Queenstown", "Interlaken", "Reykjavik", "Banff", "Patagonia"},
			Weights: map[string]float64{"adventure": 0.9, "nature": 0.8}},
		{ID: "beach_bum_001", Liked: []string{"Bali", "Maldives", "Phuket"}},
	}
}

func mustProfiles(t *testing.T) *ProfileSet {
	t.Helper()
	ps, err := NewProfileSet(testProfiles())
	if err != nil {
		t.Fatalf("NewProfileSet() error = %v", err)
	}
	return ps
}

func TestNewProfileSet(t *testing.T) {
	t.Parallel()

	ps := mustProfiles(t)
	if ps.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", ps.Len())
	}
	got := ps.Profiles()
	if got[1].ID != "adventure_enthusiast_001" {
		t.Errorf("Profiles()[1].ID = %q, want adventure_enthusiast_001", got[1].ID)
	}
	if got[1].Weights["adventure"] != 0.9 {
		t.Errorf("Profiles()[1].Weights[adventure] = %v, want 0.9", got[1].Weights["adventure"])
	}

	got[0].Liked[0] = "mutated"
	if again := ps.Profiles(); again[0].Liked[0] != "Paris" {
		t.Errorf("Profiles()[0].Liked[0] = %q after mutation, want Paris", again[0].Liked[0])
	}
}

func TestNewProfileSet_Errors(t *testing.T) {
	t.Parallel()

	t.Run("duplicate id", func(t *testing.T) {
		t.Parallel()
		profiles := append(testProfiles(), ReferenceProfile{ID: "beach_bum_001"})
		if _, err := NewProfileSet(profiles); !errors.Is(err, ErrDuplicateProfile) {
			t.Errorf("NewProfileSet() error = %v, want ErrDuplicateProfile", err)
		}
	})

	t.Run("empty id", func(t *testing.T) {
		t.Parallel()
		if _, err := NewProfileSet([]ReferenceProfile{{Liked: []string{"Rome"}}}); err == nil {
			t.Error("NewProfileSet() error = nil, want error")
		}
	})
}
