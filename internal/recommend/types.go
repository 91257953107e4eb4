// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"
)

// Kind distinguishes the two entity families of the rating graph.
type Kind int

const (
	// KindUser identifies users. Recommending for a user is user-based filtering.
	KindUser Kind = iota
	// KindMovie identifies movies. Recommending for a movie is item-based filtering.
	KindMovie
)

// String returns the lowercase kind name used in logs, metrics and the API.
func (k Kind) String() string {
	switch k {
	case KindUser:
		return "user"
	case KindMovie:
		return "movie"
	default:
		return "unknown"
	}
}

// ParseKind parses a kind name. Plural forms and "item" are accepted.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "user", "users":
		return KindUser, nil
	case "movie", "movies", "item", "items":
		return KindMovie, nil
	default:
		return 0, fmt.Errorf("%w: unknown kind %q", ErrInvalidArgument, s)
	}
}

// Rating is a single user's rate for a single movie.
//
// The same *Rating is referenced from both the user's and the movie's rating
// map; the ids are plain back-references into the graph.
type Rating struct {
	UserID  int       `json:"user_id"`
	MovieID int       `json:"movie_id"`
	Rate    float64   `json:"rate"`
	RatedAt time.Time `json:"rated_at,omitempty"`
}

// Entity is a node of the rating graph: a User or a Movie.
//
// The interface is sealed; only this package's User and Movie implement it.
type Entity interface {
	// Kind reports whether the entity is a user or a movie.
	Kind() Kind

	// Key returns the entity id, unique within its kind.
	Key() int

	// RatingCount returns the number of ratings attached to the entity.
	RatingCount() int

	// MeanRating returns the arithmetic mean of the entity's ratings.
	MeanRating() (float64, error)

	// ratings returns the rating map keyed by counterpart id.
	ratings() map[int]*Rating
}

// User is a person who rates movies.
type User struct {
	ID         int    `json:"id"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	Occupation string `json:"occupation"`
	ZipCode    string `json:"zip_code"`

	// keyed by movie id
	rated map[int]*Rating
}

// NewUser creates a user with no ratings.
func NewUser(id, age int, gender, occupation, zipCode string) *User {
	return &User{
		ID:         id,
		Age:        age,
		Gender:     gender,
		Occupation: occupation,
		ZipCode:    zipCode,
		rated:      make(map[int]*Rating),
	}
}

// Kind implements Entity.
func (u *User) Kind() Kind { return KindUser }

// Key implements Entity.
func (u *User) Key() int { return u.ID }

// RatingCount implements Entity.
func (u *User) RatingCount() int { return len(u.rated) }

// MeanRating implements Entity.
func (u *User) MeanRating() (float64, error) {
	return meanRating(u.rated, KindUser, u.ID)
}

// Rated returns the user's rate for a movie, if any.
func (u *User) Rated(movieID int) (float64, bool) {
	r, ok := u.rated[movieID]
	if !ok {
		return 0, false
	}
	return r.Rate, true
}

// RatedMovies returns the ids of the movies the user rated, ascending.
func (u *User) RatedMovies() []int {
	return sortedKeys(u.rated)
}

func (u *User) ratings() map[int]*Rating { return u.rated }

// Movie is a rated title.
type Movie struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	ReleaseDate time.Time `json:"release_date,omitempty"`
	IMDbURL     string    `json:"imdb_url,omitempty"`
	Genres      []string  `json:"genres,omitempty"`

	// keyed by user id
	raters map[int]*Rating
}

// NewMovie creates a movie with no ratings.
func NewMovie(id int, name string, releaseDate time.Time, genres ...string) *Movie {
	return &Movie{
		ID:          id,
		Name:        name,
		ReleaseDate: releaseDate,
		Genres:      genres,
		raters:      make(map[int]*Rating),
	}
}

// Kind implements Entity.
func (m *Movie) Kind() Kind { return KindMovie }

// Key implements Entity.
func (m *Movie) Key() int { return m.ID }

// RatingCount implements Entity.
func (m *Movie) RatingCount() int { return len(m.raters) }

// MeanRating implements Entity.
func (m *Movie) MeanRating() (float64, error) {
	return meanRating(m.raters, KindMovie, m.ID)
}

// RatedBy returns the rate a user gave this movie, if any.
func (m *Movie) RatedBy(userID int) (float64, bool) {
	r, ok := m.raters[userID]
	if !ok {
		return 0, false
	}
	return r.Rate, true
}

// Raters returns the ids of the users who rated the movie, ascending.
func (m *Movie) Raters() []int {
	return sortedKeys(m.raters)
}

func (m *Movie) ratings() map[int]*Rating { return m.raters }

func meanRating(ratings map[int]*Rating, kind Kind, id int) (float64, error) {
	if len(ratings) == 0 {
		return 0, fmt.Errorf("%s %d: %w", kind, id, ErrEmptyRatings)
	}
	var sum float64
	for _, r := range ratings {
		sum += r.Rate
	}
	return sum / float64(len(ratings)), nil
}

func sortedKeys(ratings map[int]*Rating) []int {
	keys := make([]int, 0, len(ratings))
	for k := range ratings {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Neighbor is a peer entity selected by the ranking engine.
type Neighbor struct {
	// ID is the peer's id (same kind as the target).
	ID int `json:"id"`

	// Similarity is the peer's score against the target; higher is more similar.
	Similarity float64 `json:"similarity"`

	// Shared is the number of counterparts both entities rated.
	Shared int `json:"shared"`
}

// Recommendation is a single recommended movie.
type Recommendation struct {
	MovieID int     `json:"movie_id"`
	Title   string  `json:"title"`
	Score   float64 `json:"score"`

	// Raters is the number of ratings the score averages.
	Raters int `json:"raters"`
}

// Request contains all parameters for a recommendation request.
type Request struct {
	// Kind selects user-based (KindUser) or item-based (KindMovie) filtering.
	Kind Kind `json:"kind"`

	// TargetID is the user or movie to recommend for.
	TargetID int `json:"target_id"`

	// K is the number of neighbors to keep. Zero means the configured default.
	K int `json:"k,omitempty"`

	// N is the number of recommendations to return. Zero means the configured default.
	N int `json:"n,omitempty"`

	// Algorithm overrides the configured similarity algorithm.
	Algorithm string `json:"algorithm,omitempty"`

	// RequestID is a unique identifier for tracing.
	RequestID string `json:"request_id,omitempty"`
}

// Response contains recommendation results and metadata.
type Response struct {
	// Items is the ordered list of recommended movies.
	Items []Recommendation `json:"items"`

	// Neighbors lists the peers the recommendations were derived from.
	Neighbors []Neighbor `json:"neighbors"`

	// TotalCandidates is the number of candidate movies that were scored.
	TotalCandidates int `json:"total_candidates"`

	// Metadata contains timing and diagnostic information.
	Metadata ResponseMetadata `json:"metadata"`
}

// clone returns a copy that shares no slices with r.
func (r *Response) clone() *Response {
	c := *r
	c.Items = slices.Clone(r.Items)
	c.Neighbors = slices.Clone(r.Neighbors)
	return &c
}

// ResponseMetadata contains timing and diagnostic information.
type ResponseMetadata struct {
	RequestID    string    `json:"request_id"`
	TargetID     int       `json:"target_id"`
	Mode         string    `json:"mode"`
	Algorithm    string    `json:"algorithm"`
	K            int       `json:"k"`
	N            int       `json:"n"`
	LatencyMS    int64     `json:"latency_ms"`
	CacheHit     bool      `json:"cache_hit"`
	GraphVersion uint64    `json:"graph_version"`
	Timestamp    time.Time `json:"timestamp"`
}
