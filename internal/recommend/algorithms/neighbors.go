// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package algorithms

import "sort"

// Profile is the minimal view of a reference profile needed for neighbor
// finding.
type Profile struct {
	ID    string
	Liked []string
}

// Neighbor is a reference profile scored against a set of liked items.
type Neighbor struct {
	// ProfileID identifies the reference profile.
	ProfileID string

	// Score is the Jaccard similarity in [0, 1].
	Score float64

	// Liked is the profile's liked items in declaration order.
	Liked []string
}

// FindSimilarProfiles scores every profile against liked by Jaccard
// similarity and returns them in descending score order. Profiles whose union
// with liked is empty are omitted. Ties keep the order of profiles.
func FindSimilarProfiles(liked []string, profiles []Profile) []Neighbor {
	neighbors := make([]Neighbor, 0, len(profiles))
	for _, p := range profiles {
		score, ok := JaccardSimilarity(liked, p.Liked)
		if !ok {
			continue
		}
		neighbors = append(neighbors, Neighbor{
			ProfileID: p.ID,
			Score:     score,
			Liked:     p.Liked,
		})
	}

	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].Score > neighbors[j].Score
	})
	return neighbors
}
