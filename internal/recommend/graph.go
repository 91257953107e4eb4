// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/recommend/similarity"
)

// Graph is the canonical store of users, movies and the ratings linking them.
//
// Classify takes the write lock. Queries hold the read lock for the whole
// computation so they observe a consistent snapshot. Every mutation bumps a
// monotonic version that callers use to key derived results.
//
// Entities returned by User and Movie share state with the graph. Reading
// their ratings while Classify may run concurrently must go through Graph
// methods.
type Graph struct {
	mu      sync.RWMutex
	users   map[int]*User
	movies  map[int]*Movie
	ratings int
	scale   RatingScale

	version atomic.Uint64
}

// GraphStats summarizes the size of a Graph.
type GraphStats struct {
	Users   int    `json:"users"`
	Movies  int    `json:"movies"`
	Ratings int    `json:"ratings"`
	Version uint64 `json:"version"`
}

// NewGraph creates an empty graph accepting rates within scale.
func NewGraph(scale RatingScale) *Graph {
	return &Graph{
		users:  make(map[int]*User),
		movies: make(map[int]*Movie),
		scale:  scale,
	}
}

// AddUser registers a user. Any ratings already attached to u are discarded.
func (g *Graph) AddUser(u *User) error {
	if u == nil {
		return fmt.Errorf("%w: nil user", ErrInvalidArgument)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.users[u.ID]; exists {
		return fmt.Errorf("user %d: %w", u.ID, ErrDuplicateEntity)
	}
	u.rated = make(map[int]*Rating)
	g.users[u.ID] = u
	g.version.Add(1)
	return nil
}

// AddMovie registers a movie. Any ratings already attached to m are discarded.
func (g *Graph) AddMovie(m *Movie) error {
	if m == nil {
		return fmt.Errorf("%w: nil movie", ErrInvalidArgument)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.movies[m.ID]; exists {
		return fmt.Errorf("movie %d: %w", m.ID, ErrDuplicateEntity)
	}
	m.raters = make(map[int]*Rating)
	g.movies[m.ID] = m
	g.version.Add(1)
	return nil
}

// User returns the user with the given id.
func (g *Graph) User(id int) (*User, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	u, ok := g.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return u, nil
}

// Movie returns the movie with the given id.
func (g *Graph) Movie(id int) (*Movie, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	m, ok := g.movies[id]
	if !ok {
		return nil, fmt.Errorf("movie %d: %w", id, ErrNotFound)
	}
	return m, nil
}

// Classify records that a user rated a movie with the current time.
// See ClassifyAt.
func (g *Graph) Classify(userID, movieID int, rate float64) (bool, error) {
	return g.ClassifyAt(userID, movieID, rate, time.Now())
}

// ClassifyAt records that a user rated a movie at the given time.
//
// The rating is attached to both the user and the movie under a single write
// lock, so it is visible from both sides or from neither. Rating a pair a
// second time updates the existing rating in place. The returned bool is true
// when a new rating was created.
func (g *Graph) ClassifyAt(userID, movieID int, rate float64, at time.Time) (bool, error) {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 || !g.scale.Contains(rate) {
		return false, fmt.Errorf("%w: %v outside [%v, %v]", ErrInvalidRating, rate, g.scale.Min, g.scale.Max)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	u, ok := g.users[userID]
	if !ok {
		return false, fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}
	m, ok := g.movies[movieID]
	if !ok {
		return false, fmt.Errorf("movie %d: %w", movieID, ErrNotFound)
	}

	if r, exists := u.rated[movieID]; exists {
		r.Rate = rate
		r.RatedAt = at
		g.version.Add(1)
		metrics.RecordClassify(false)
		return false, nil
	}

	r := &Rating{UserID: userID, MovieID: movieID, Rate: rate, RatedAt: at}
	u.rated[movieID] = r
	m.raters[userID] = r
	g.ratings++
	g.version.Add(1)
	metrics.RecordClassify(true)
	return true, nil
}

// MeanRating returns the mean rating of a user or a movie.
func (g *Graph) MeanRating(kind Kind, id int) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, err := g.entity(kind, id)
	if err != nil {
		return 0, err
	}
	return e.MeanRating()
}

// Similarity scores two entities of the same kind with alg over their full
// feature matrix (the union of their counterparts, unrated positions as 0).
func (g *Graph) Similarity(alg similarity.Algorithm, kind Kind, a, b int) (float64, error) {
	if alg == nil {
		return 0, fmt.Errorf("%w: nil algorithm", ErrInvalidArgument)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	ea, err := g.entity(kind, a)
	if err != nil {
		return 0, err
	}
	eb, err := g.entity(kind, b)
	if err != nil {
		return 0, err
	}

	va, vb, err := FeatureMatrix(ea, eb)
	if err != nil {
		return 0, err
	}
	score, err := alg.Compute(va, vb)
	if err != nil {
		metrics.RecordSimilarity(alg.Name(), similarityOutcome(err))
		return 0, fmt.Errorf("%s similarity of %s %d and %d: %w", alg.Name(), kind, a, b, err)
	}
	metrics.RecordSimilarity(alg.Name(), metrics.OutcomeSuccess)
	return score, nil
}

// Stats returns the current graph size.
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return GraphStats{
		Users:   len(g.users),
		Movies:  len(g.movies),
		Ratings: g.ratings,
		Version: g.version.Load(),
	}
}

// Version returns the mutation counter of the graph.
func (g *Graph) Version() uint64 {
	return g.version.Load()
}

// entity resolves an id of the given kind. Must be called with the lock held.
func (g *Graph) entity(kind Kind, id int) (Entity, error) {
	switch kind {
	case KindUser:
		if u, ok := g.users[id]; ok {
			return u, nil
		}
	case KindMovie:
		if m, ok := g.movies[id]; ok {
			return m, nil
		}
	default:
		return nil, fmt.Errorf("%w: unknown kind %d", ErrInvalidArgument, int(kind))
	}
	return nil, fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
}

// peers returns every entity of the given kind ordered by id.
// Must be called with the lock held.
func (g *Graph) peers(kind Kind) []Entity {
	var out []Entity
	switch kind {
	case KindUser:
		out = make([]Entity, 0, len(g.users))
		for _, u := range g.users {
			out = append(out, u)
		}
	case KindMovie:
		out = make([]Entity, 0, len(g.movies))
		for _, m := range g.movies {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}

func similarityOutcome(err error) string {
	if err == nil {
		return metrics.OutcomeSuccess
	}
	if errors.Is(err, similarity.ErrDegenerateVector) {
		return metrics.OutcomeDegenerate
	}
	return metrics.OutcomeError
}
