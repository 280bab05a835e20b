// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package algorithms

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// ErrDimensionMismatch is returned when a query vector and the feature
// matrix rows have different lengths.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// cancelCheckInterval is how many rows are scored between context checks.
const cancelCheckInterval = 256

// ContentMatch is a scored row of the feature matrix.
type ContentMatch struct {
	// Index is the row index in the matrix passed to RankContent.
	Index int

	// Score is the cosine similarity in [-1, 1].
	Score float64
}

// RankContent scores every row of matrix against query by cosine similarity
// and returns at most topK matches ordered by descending score. Rows with
// equal scores keep their matrix order.
//
// Every row must have len(query) columns. A zero query or a zero row scores 0.
// A non-positive topK returns an empty result.
func RankContent(ctx context.Context, query []float64, matrix [][]float64, topK int) ([]ContentMatch, error) {
	for i, row := range matrix {
		if len(row) != len(query) {
			return nil, fmt.Errorf("%w: query has %d dimensions, row %d has %d",
				ErrDimensionMismatch, len(query), i, len(row))
		}
	}

	if topK <= 0 || len(matrix) == 0 {
		return []ContentMatch{}, nil
	}

	matches := make([]ContentMatch, len(matrix))
	for i, row := range matrix {
		if i%cancelCheckInterval == 0 && ContextCancelled(ctx) {
			return nil, ctx.Err()
		}
		matches[i] = ContentMatch{Index: i, Score: CosineSimilarity(query, row)}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches, nil
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
