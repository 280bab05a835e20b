// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

// Package recommend implements the destination recommendation engine.
//
// # Architecture
//
// The engine answers two kinds of queries against an immutable catalog:
//
//   - Content-based: a ten-dimensional preference vector is ranked against
//     every destination's feature vector by cosine similarity.
//   - Collaborative: a list of liked destinations is compared against a fixed
//     set of reference profiles by Jaccard similarity, and the unseen
//     favourites of the closest profiles are recommended.
//
// It also keeps per-user like and dislike bookkeeping through the feedback
// subpackage. Feedback is recorded and published but is not consulted when
// ranking.
//
// # Feature Vectors
//
// Each destination carries nine attribute scores and a budget label. The
// label maps to an ordinal (Budget=1, Mid-range=2, Luxury=3) that becomes the
// tenth dimension. The dimension order is fixed:
//
//	culture, adventure, nature, beaches, nightlife,
//	cuisine, wellness, urban, seclusion, budget
//
// # Usage
//
//	catalog, err := recommend.LoadCatalog(rows)
//	profiles, err := recommend.NewProfileSet(refs)
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), catalog, profiles, logger)
//
//	recs, err := engine.ContentRecommendations(ctx, vector)
//	result, err := engine.CollaborativeRecommendations(ctx, "u1", []string{"Rome"})
//	liked, err := engine.RecordFeedback(ctx, recommend.FeedbackEvent{UserID: "u1", ItemID: "Rome", Liked: true})
//
// # Thread Safety
//
// The catalog and profile set are read-only after construction. Ranking is
// pure. Feedback writes are serialized per user. The engine is safe for
// concurrent use once its optional collaborators have been attached.
package recommend
