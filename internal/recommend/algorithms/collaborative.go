// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package algorithms

// DefaultCollaborativeCap is the maximum number of collaborative matches
// returned when CollaborativeOptions.Cap is not set.
const DefaultCollaborativeCap = 5

// CollaborativeOptions tunes RecommendCollaborative.
type CollaborativeOptions struct {
	// Cap bounds the number of matches. Zero or negative means
	// DefaultCollaborativeCap.
	Cap int

	// Accept, when set, filters candidate items. Rejected items are skipped
	// without consuming a slot.
	Accept func(itemID string) bool
}

// CollaborativeMatch is an item contributed by a neighbor.
type CollaborativeMatch struct {
	ItemID string

	// Score is the Jaccard similarity of the contributing neighbor.
	Score float64

	// ProfileID is the neighbor that contributed the item.
	ProfileID string
}

// RecommendCollaborative walks neighbors in order and collects their liked
// items that are not in liked. The first neighbor to contribute an item sets
// its score; later neighbors never change it. Collection stops as soon as the
// cap is reached.
func RecommendCollaborative(liked []string, neighbors []Neighbor, opts CollaborativeOptions) []CollaborativeMatch {
	limit := opts.Cap
	if limit <= 0 {
		limit = DefaultCollaborativeCap
	}

	exclude := toSet(liked)
	seen := make(map[string]struct{}, limit)
	matches := make([]CollaborativeMatch, 0, limit)

	for _, n := range neighbors {
		for _, item := range n.Liked {
			if _, ok := exclude[item]; ok {
				continue
			}
			if _, ok := seen[item]; ok {
				continue
			}
			if opts.Accept != nil && !opts.Accept(item) {
				continue
			}

			seen[item] = struct{}{}
			matches = append(matches, CollaborativeMatch{
				ItemID:    item,
				Score:     n.Score,
				ProfileID: n.ProfileID,
			})
			if len(matches) == limit {
				return matches
			}
		}
	}
	return matches
}
