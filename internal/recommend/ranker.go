// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/recommend/similarity"
)

// Ranking is the outcome of one neighbor ranking pass.
type Ranking struct {
	// Recommendations is the top-N list, best first.
	Recommendations []Recommendation

	// Neighbors is the top-K peer list, most similar first.
	Neighbors []Neighbor

	// Candidates is the number of movies that were scored.
	Candidates int

	// GraphVersion is the graph version the ranking was computed against.
	GraphVersion uint64
}

// Ranker turns pairwise similarities into a recommendation list.
//
// For a target entity it scores every other entity of the same kind on the
// counterparts both rated, keeps the K most similar, collects candidate
// movies from them and ranks those by their mean rating.
type Ranker struct {
	minShared int
	logger    zerolog.Logger
}

// NewRanker creates a ranker. Peers sharing fewer than minShared counterparts
// with the target carry no signal and are ignored; minShared is never below 2.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRanker(minShared int, logger zerolog.Logger) *Ranker {
	if minShared < 2 {
		minShared = 2
	}
	return &Ranker{
		minShared: minShared,
		logger:    logger.With().Str("component", "ranker").Logger(),
	}
}

// Rank computes recommendations for the entity of the given kind and id.
//
// For a user, candidates are the movies rated by the neighbors and not by the
// user. For a movie, candidates are the neighbor movies themselves. An entity
// without usable neighbors yields an empty list, not an error.
func (r *Ranker) Rank(ctx context.Context, g *Graph, kind Kind, targetID int, alg similarity.Algorithm, k, n int) (*Ranking, error) {
	if alg == nil {
		return nil, fmt.Errorf("%w: nil algorithm", ErrInvalidArgument)
	}
	if k < 1 || n < 1 {
		return nil, fmt.Errorf("%w: k and n must be positive, got k=%d n=%d", ErrInvalidArgument, k, n)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	target, err := g.entity(kind, targetID)
	if err != nil {
		return nil, err
	}

	neighbors, err := r.selectNeighbors(ctx, g, target, alg, k)
	if err != nil {
		return nil, err
	}

	var candidates []int
	switch kind {
	case KindUser:
		candidates = unratedByTarget(g, target, neighbors)
	case KindMovie:
		candidates = make([]int, 0, len(neighbors))
		for _, nb := range neighbors {
			candidates = append(candidates, nb.ID)
		}
	}

	recs, err := scoreCandidates(g, candidates)
	if err != nil {
		return nil, err
	}
	if len(recs) > n {
		recs = recs[:n]
	}

	metrics.RecordRanking(kind.String(), len(neighbors), len(recs))
	r.logger.Debug().
		Str("kind", kind.String()).
		Int("target_id", targetID).
		Str("algorithm", alg.Name()).
		Int("neighbors", len(neighbors)).
		Int("candidates", len(candidates)).
		Int("returned", len(recs)).
		Msg("ranking complete")

	return &Ranking{
		Recommendations: recs,
		Neighbors:       neighbors,
		Candidates:      len(candidates),
		GraphVersion:    g.version.Load(),
	}, nil
}

// selectNeighbors returns the k peers most similar to target.
// Must be called with the graph read lock held.
func (r *Ranker) selectNeighbors(ctx context.Context, g *Graph, target Entity, alg similarity.Algorithm, k int) ([]Neighbor, error) {
	peers := g.peers(target.Kind())
	neighbors := make([]Neighbor, 0, len(peers))

	for _, peer := range peers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if peer.Key() == target.Key() {
			continue
		}

		va, vb, shared, err := SharedVectors(target, peer)
		if err != nil {
			return nil, err
		}
		if shared < r.minShared {
			continue
		}

		score, err := alg.Compute(va, vb)
		if err != nil {
			if errors.Is(err, similarity.ErrDegenerateVector) {
				metrics.RecordSimilarity(alg.Name(), metrics.OutcomeDegenerate)
				r.logger.Debug().
					Str("kind", target.Kind().String()).
					Int("target_id", target.Key()).
					Int("peer_id", peer.Key()).
					Int("shared", shared).
					Msg("skipping peer with degenerate rating vector")
				continue
			}
			metrics.RecordSimilarity(alg.Name(), metrics.OutcomeError)
			return nil, fmt.Errorf("%s similarity of %s %d and %d: %w",
				alg.Name(), target.Kind(), target.Key(), peer.Key(), err)
		}
		metrics.RecordSimilarity(alg.Name(), metrics.OutcomeSuccess)

		neighbors = append(neighbors, Neighbor{ID: peer.Key(), Similarity: score, Shared: shared})
	}

	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].Similarity != neighbors[j].Similarity {
			return neighbors[i].Similarity > neighbors[j].Similarity
		}
		return neighbors[i].ID < neighbors[j].ID
	})

	if len(neighbors) > k {
		neighbors = neighbors[:k]
	}
	return neighbors, nil
}

// unratedByTarget collects the movies rated by any neighbor and not by the
// target user. Must be called with the graph read lock held.
func unratedByTarget(g *Graph, target Entity, neighbors []Neighbor) []int {
	seen := make(map[int]struct{})
	own := target.ratings()
	for _, nb := range neighbors {
		u, ok := g.users[nb.ID]
		if !ok {
			continue
		}
		for movieID := range u.rated {
			if _, rated := own[movieID]; rated {
				continue
			}
			seen[movieID] = struct{}{}
		}
	}

	out := make([]int, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// scoreCandidates ranks movies by their mean rating over all raters, best
// first, ties broken by ascending id. Must be called with the graph read lock held.
func scoreCandidates(g *Graph, movieIDs []int) ([]Recommendation, error) {
	recs := make([]Recommendation, 0, len(movieIDs))
	for _, id := range movieIDs {
		m, ok := g.movies[id]
		if !ok {
			return nil, fmt.Errorf("movie %d: %w", id, ErrNotFound)
		}
		mean, err := m.MeanRating()
		if err != nil {
			// unrated movies have no score
			if errors.Is(err, ErrEmptyRatings) {
				continue
			}
			return nil, err
		}
		recs = append(recs, Recommendation{
			MovieID: id,
			Title:   m.Name,
			Score:   mean,
			Raters:  len(m.raters),
		})
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].MovieID < recs[j].MovieID
	})
	return recs, nil
}
