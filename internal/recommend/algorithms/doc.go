// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

// Package algorithms implements the similarity kernels behind destination
// recommendations.
//
// The package works on plain slices and strings so it can be tested in
// isolation and has no dependency on the recommend package types.
//
// # Content-Based Ranking
//
// RankContent scores every row of a feature matrix against a query vector
// using cosine similarity and returns the best rows in descending order.
// Vectors with zero magnitude score 0 rather than producing NaN.
//
// # Neighbor Finding
//
// FindSimilarProfiles compares a set of liked items against each reference
// profile using Jaccard similarity. Profiles whose union with the query is
// empty are skipped.
//
// # Collaborative Recommendation
//
// RecommendCollaborative walks neighbors from most to least similar and
// collects items the caller has not liked yet. Each item carries the score of
// the first neighbor that contributed it. There is no aggregation across
// neighbors.
//
// # Determinism
//
// All sorts are stable. Ties keep the input order of the catalog rows or the
// reference profiles, so identical inputs always produce identical output.
//
// # Thread Safety
//
// Every function in this package is pure and safe for concurrent use.
package algorithms
