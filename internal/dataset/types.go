// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package dataset

import (
	"time"
)

// File names, as used in log fields and metric labels.
const (
	FileGenres  = "genres"
	FileUsers   = "users"
	FileItems   = "items"
	FileRatings = "ratings"
)

// LoadStats holds statistics about a load operation.
type LoadStats struct {
	// Genres is the number of genre names known to the loader.
	Genres int `json:"genres"`

	// Users is the number of users added to the graph.
	Users int `json:"users"`

	// Movies is the number of movies added to the graph.
	Movies int `json:"movies"`

	// Ratings is the number of distinct (user, movie) ratings created.
	Ratings int `json:"ratings"`

	// Updated counts rating lines that overwrote an earlier rating of the same pair.
	Updated int `json:"updated"`

	// Skipped counts malformed or dangling records per file.
	Skipped map[string]int `json:"skipped"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// Duration returns the duration of the load operation.
func (s *LoadStats) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}

// TotalSkipped returns the number of skipped records across all files.
func (s *LoadStats) TotalSkipped() int {
	total := 0
	for _, n := range s.Skipped {
		total += n
	}
	return total
}

// defaultGenres is the genre index of the MovieLens-100k release.
var defaultGenres = []string{
	"unknown", "Action", "Adventure", "Animation", "Children's",
	"Comedy", "Crime", "Documentary", "Drama", "Fantasy",
	"Film-Noir", "Horror", "Musical", "Mystery", "Romance",
	"Sci-Fi", "Thriller", "War", "Western",
}
