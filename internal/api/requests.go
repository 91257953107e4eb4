// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"github.com/tomtom215/reelmatch/internal/middleware"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// RecommendationQuery holds the query parameters of the recommendation routes.
// Zero K or N selects the configured default.
type RecommendationQuery struct {
	K         int    `json:"k" validate:"min=0"`
	N         int    `json:"n" validate:"min=0"`
	Algorithm string `json:"algorithm" validate:"omitempty,similarity"`
}

// SimilarityQuery holds the query parameters of GET /api/v1/similarity.
type SimilarityQuery struct {
	Kind      string `json:"kind" validate:"required,kind"`
	A         int    `json:"a" validate:"required,min=1"`
	B         int    `json:"b" validate:"required,min=1"`
	Algorithm string `json:"algorithm" validate:"omitempty,similarity"`
}

// RatingRequest is the body of POST /api/v1/ratings.
type RatingRequest struct {
	UserID  int     `json:"user_id" validate:"required,min=1"`
	MovieID int     `json:"movie_id" validate:"required,min=1"`
	Rate    float64 `json:"rate" validate:"required,gt=0"`
}

// RatingResult is returned after a rating is recorded.
type RatingResult struct {
	UserID       int     `json:"user_id"`
	MovieID      int     `json:"movie_id"`
	Rate         float64 `json:"rate"`
	Created      bool    `json:"created"`
	GraphVersion uint64  `json:"graph_version"`
}

// MeanResult is returned by the mean rating routes.
type MeanResult struct {
	Kind    string  `json:"kind"`
	ID      int     `json:"id"`
	Mean    float64 `json:"mean"`
	Ratings int     `json:"ratings"`
}

// SimilarityResult is returned by GET /api/v1/similarity.
type SimilarityResult struct {
	Kind       string  `json:"kind"`
	A          int     `json:"a"`
	B          int     `json:"b"`
	Algorithm  string  `json:"algorithm"`
	Similarity float64 `json:"similarity"`
}

// StatsResult is the body of GET /api/v1/stats: system counters plus
// per-endpoint latencies over the recent request window.
type StatsResult struct {
	recommend.Stats
	Endpoints []middleware.EndpointStats `json:"endpoints"`
}
