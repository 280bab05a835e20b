// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package algorithms

import (
	"context"
	"math"
)

// CosineSimilarity computes the cosine of the angle between a and b,
// clamped to [-1, 1]. Returns 0 when the lengths differ, either vector is
// empty, or either vector has zero magnitude. Magnitudes are taken on
// rescaled copies, so finite inputs near the float64 limits neither
// overflow nor underflow.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	return math.Max(-1, math.Min(1, dot(Normalize(a), Normalize(b))))
}

// Normalize returns a unit-length copy of v. A zero vector is returned as a
// zero vector of the same length.
func Normalize(v []float64) []float64 {
	out := make([]float64, len(v))

	// Divide by the largest magnitude first so the squares stay in range.
	var peak float64
	for _, x := range v {
		peak = math.Max(peak, math.Abs(x))
	}
	if peak == 0 {
		return out
	}

	var sum float64
	for i, x := range v {
		out[i] = x / peak
		sum += out[i] * out[i]
	}
	norm := math.Sqrt(sum)
	for i := range out {
		out[i] /= norm
	}
	return out
}

// JaccardSimilarity computes |A ∩ B| / |A ∪ B| over the distinct members of
// a and b. The second return value is false when the union is empty, in
// which case the similarity is undefined.
func JaccardSimilarity(a, b []string) (float64, bool) {
	setA := toSet(a)
	setB := toSet(b)

	intersection := 0
	for s := range setA {
		if _, ok := setB[s]; ok {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0, false
	}

	return float64(intersection) / float64(union), true
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, s := range items {
		set[s] = struct{}{}
	}
	return set
}

// ContextCancelled checks if the context has been cancelled.
func ContextCancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
