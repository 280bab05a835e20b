// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package recommend

import (
	"fmt"

	"github.com/tomtom215/wanderlust/internal/recommend/algorithms"
)

// ReferenceProfile is a synthetic user whose favourites seed collaborative
// recommendations. Liked names are not checked against the catalog.
type ReferenceProfile struct {
	ID    string   `json:"id" koanf:"id"`
	Liked []string `json:"liked" koanf:"liked"`

	// Weights are optional per-attribute preferences. They are carried for
	// display and are not used in scoring.
	Weights map[string]float64 `json:"weights,omitempty" koanf:"weights"`
}

// ProfileSet is the fixed, ordered collection of reference profiles.
// Declaration order is the tie-break for equally similar profiles.
type ProfileSet struct {
	profiles []ReferenceProfile
	view     []algorithms.Profile
}

// NewProfileSet validates and freezes profiles. Ids must be non-empty and
// unique.
func NewProfileSet(profiles []ReferenceProfile) (*ProfileSet, error) {
	seen := make(map[string]struct{}, len(profiles))
	ps := &ProfileSet{
		profiles: make([]ReferenceProfile, 0, len(profiles)),
		view:     make([]algorithms.Profile, 0, len(profiles)),
	}

	for i, p := range profiles {
		if p.ID == "" {
			return nil, fmt.Errorf("profile %d: id is required", i)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("profile %d: %w: %s", i, ErrDuplicateProfile, p.ID)
		}
		seen[p.ID] = struct{}{}

		liked := append([]string(nil), p.Liked...)
		var weights map[string]float64
		if len(p.Weights) > 0 {
			weights = make(map[string]float64, len(p.Weights))
			for k, v := range p.Weights {
				weights[k] = v
			}
		}

		ps.profiles = append(ps.profiles, ReferenceProfile{ID: p.ID, Liked: liked, Weights: weights})
		ps.view = append(ps.view, algorithms.Profile{ID: p.ID, Liked: liked})
	}

	return ps, nil
}

// Len returns the number of profiles.
func (ps *ProfileSet) Len() int {
	return len(ps.profiles)
}

// Profiles returns a copy of the profiles in declaration order.
func (ps *ProfileSet) Profiles() []ReferenceProfile {
	out := make([]ReferenceProfile, len(ps.profiles))
	for i, p := range ps.profiles {
		out[i] = ReferenceProfile{
			ID:      p.ID,
			Liked:   append([]string(nil), p.Liked...),
			Weights: p.Weights,
		}
	}
	return out
}
