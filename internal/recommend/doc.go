// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package recommend implements neighborhood-based collaborative filtering
// over a graph of users, movies and ratings.
//
// # Architecture
//
// Data flows through four layers:
//
//   - Graph: users and movies keyed by id, linked by shared *Rating values
//   - Rating vectors: FeatureMatrix and SharedVectors align two entities
//   - Similarity: pluggable algorithms from the similarity subpackage
//   - Ranker: selects the K nearest peers and ranks candidate movies
//
// System composes them, adds request defaults, a response cache keyed by
// graph version, structured logging and Prometheus metrics.
//
// # Modes
//
// Recommending for a user (KindUser) is user-based filtering: the movies
// rated by the most similar users, minus those the user already rated.
// Recommending for a movie (KindMovie) is item-based filtering: the most
// similar movies themselves. Both rank candidates by their mean rating over
// all raters.
//
// # Usage
//
//	g := recommend.NewGraph(recommend.RatingScale{Min: 1, Max: 5})
//	_ = g.AddUser(recommend.NewUser(1, 24, "M", "technician", "85711"))
//	_ = g.AddMovie(recommend.NewMovie(1, "Toy Story (1995)", release, "Animation"))
//	_, _ = g.Classify(1, 1, 5)
//
//	sys, err := recommend.NewSystem(g, recommend.DefaultConfig(), logger)
//	recs, err := sys.RecommendByUser(ctx, 1, 20, 10)
//
// # Thread Safety
//
// Graph and System are safe for concurrent use. Classify takes an exclusive
// lock; queries share a read lock for the whole computation.
package recommend
