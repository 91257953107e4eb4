// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/recommend/similarity"
)

// System is the recommendation system: it owns the rating graph and answers
// recommendation, mean and similarity queries against it.
// It is safe for concurrent use.
type System struct {
	config *Config
	logger zerolog.Logger

	graph  *Graph
	ranker *Ranker

	// nil when caching is disabled
	cache *cache.LRUCache[*Response]

	requestCount atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
	errorCount   atomic.Int64
}

// Stats reports request counters alongside the graph and cache sizes.
type Stats struct {
	Graph       GraphStats   `json:"graph"`
	Requests    int64        `json:"requests"`
	CacheHits   int64        `json:"cache_hits"`
	CacheMisses int64        `json:"cache_misses"`
	Errors      int64        `json:"errors"`
	Cache       *cache.Stats `json:"cache,omitempty"`
}

// NewSystem creates a recommendation system over g.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewSystem(g *Graph, cfg *Config, logger zerolog.Logger) (*System, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil graph", ErrInvalidArgument)
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger = logger.With().Str("component", "recommend").Logger()
	s := &System{
		config: cfg.Clone(),
		logger: logger,
		graph:  g,
		ranker: NewRanker(cfg.minShared(), logger),
	}
	if cfg.Cache.Enabled {
		s.cache = cache.NewLRUCache[*Response](cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}
	return s, nil
}

// Graph returns the rating graph owned by the system.
func (s *System) Graph() *Graph {
	return s.graph
}

// Config returns a copy of the active configuration.
func (s *System) Config() *Config {
	return s.config.Clone()
}

// RecommendByUser returns up to n movies for a user, derived from the k most
// similar users under the configured algorithm.
func (s *System) RecommendByUser(ctx context.Context, userID, k, n int) ([]Recommendation, error) {
	return s.recommendBy(ctx, KindUser, userID, k, n)
}

// RecommendByMovie returns up to n movies similar to a movie, taken from its
// k most similar movies under the configured algorithm.
func (s *System) RecommendByMovie(ctx context.Context, movieID, k, n int) ([]Recommendation, error) {
	return s.recommendBy(ctx, KindMovie, movieID, k, n)
}

func (s *System) recommendBy(ctx context.Context, kind Kind, id, k, n int) ([]Recommendation, error) {
	if k < 1 || n < 1 {
		return nil, fmt.Errorf("%w: k and n must be positive, got k=%d n=%d", ErrInvalidArgument, k, n)
	}
	alg, err := similarity.ByName(s.config.Algorithm)
	if err != nil {
		return nil, err
	}
	req := Request{Kind: kind, TargetID: id, K: k, N: n, Algorithm: alg.Name()}
	resp, err := s.run(ctx, req, alg)
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// Recommend is the general entry point. Zero K or N select the configured
// defaults and values above the configured maxima are clamped.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (s *System) Recommend(ctx context.Context, req Request) (*Response, error) {
	req, err := s.prepareRequest(ctx, req)
	if err != nil {
		s.errorCount.Add(1)
		return nil, err
	}
	alg, err := similarity.ByName(req.Algorithm)
	if err != nil {
		s.errorCount.Add(1)
		return nil, err
	}
	return s.run(ctx, req, alg)
}

// prepareRequest applies defaults and generates request ID if needed.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (s *System) prepareRequest(ctx context.Context, req Request) (Request, error) {
	if req.Kind != KindUser && req.Kind != KindMovie {
		return req, fmt.Errorf("%w: unknown kind %d", ErrInvalidArgument, int(req.Kind))
	}
	if req.K < 0 || req.N < 0 {
		return req, fmt.Errorf("%w: k and n must not be negative, got k=%d n=%d", ErrInvalidArgument, req.K, req.N)
	}

	if req.RequestID == "" {
		req.RequestID = logging.RequestIDFromContext(ctx)
	}
	if req.RequestID == "" {
		req.RequestID = logging.GenerateRequestID()
	}

	limits := s.config.Limits
	if req.K == 0 {
		req.K = limits.DefaultK
	}
	if req.K > limits.MaxK {
		req.K = limits.MaxK
	}
	if req.N == 0 {
		req.N = limits.DefaultN
	}
	if req.N > limits.MaxN {
		req.N = limits.MaxN
	}

	if strings.TrimSpace(req.Algorithm) == "" {
		req.Algorithm = s.config.Algorithm
	}
	return req, nil
}

// run serves a normalized request from the cache or the ranker.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (s *System) run(ctx context.Context, req Request, alg similarity.Algorithm) (*Response, error) {
	start := time.Now()
	s.requestCount.Add(1)
	mode := req.Kind.String()

	logger := s.logger.With().
		Str("request_id", req.RequestID).
		Str("mode", mode).
		Int("target_id", req.TargetID).
		Str("algorithm", alg.Name()).
		Logger()
	logger.Debug().Int("k", req.K).Int("n", req.N).Msg("processing recommendation request")

	if resp := s.tryGetCachedResponse(req, alg, start); resp != nil {
		metrics.RecordRecommendation(mode, alg.Name(), metrics.OutcomeCached, time.Since(start))
		logger.Debug().Msg("cache hit")
		return resp, nil
	}

	ranking, err := s.ranker.Rank(ctx, s.graph, req.Kind, req.TargetID, alg, req.K, req.N)
	if err != nil {
		s.errorCount.Add(1)
		metrics.RecordRecommendation(mode, alg.Name(), metrics.OutcomeError, time.Since(start))
		if !errors.Is(err, ErrNotFound) {
			logger.Warn().Err(err).Msg("recommendation failed")
		}
		return nil, fmt.Errorf("recommend for %s %d: %w", mode, req.TargetID, err)
	}

	resp := &Response{
		Items:           ranking.Recommendations,
		Neighbors:       ranking.Neighbors,
		TotalCandidates: ranking.Candidates,
		Metadata: ResponseMetadata{
			RequestID:    req.RequestID,
			TargetID:     req.TargetID,
			Mode:         mode,
			Algorithm:    alg.Name(),
			K:            req.K,
			N:            req.N,
			LatencyMS:    time.Since(start).Milliseconds(),
			GraphVersion: ranking.GraphVersion,
			Timestamp:    time.Now(),
		},
	}
	if s.cache != nil {
		s.cache.Add(cacheKey(req, alg.Name(), ranking.GraphVersion), resp.clone())
	}

	metrics.RecordRecommendation(mode, alg.Name(), metrics.OutcomeSuccess, time.Since(start))
	logger.Debug().
		Int("neighbors", len(resp.Neighbors)).
		Int("candidates", resp.TotalCandidates).
		Int("returned", len(resp.Items)).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// tryGetCachedResponse returns a copy of a cached response for the current
// graph version, or nil.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (s *System) tryGetCachedResponse(req Request, alg similarity.Algorithm, start time.Time) *Response {
	if s.cache == nil {
		return nil
	}

	cached, ok := s.cache.Get(cacheKey(req, alg.Name(), s.graph.Version()))
	metrics.RecordCacheLookup(ok)
	if !ok {
		s.cacheMisses.Add(1)
		return nil
	}
	s.cacheHits.Add(1)

	resp := cached.clone()
	resp.Metadata.RequestID = req.RequestID
	resp.Metadata.CacheHit = true
	resp.Metadata.LatencyMS = time.Since(start).Milliseconds()
	resp.Metadata.Timestamp = time.Now()
	return resp
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func cacheKey(req Request, algorithm string, version uint64) string {
	return fmt.Sprintf("%s:%d:%d:%d:%s:%d", req.Kind, req.TargetID, req.K, req.N, algorithm, version)
}

// Classify records a rating. It returns true when a new rating was created
// and false when an existing one was updated in place.
func (s *System) Classify(ctx context.Context, userID, movieID int, rate float64) (bool, error) {
	created, err := s.graph.Classify(userID, movieID, rate)
	if err != nil {
		return false, err
	}
	logging.Ctx(ctx).Debug().
		Int("user_id", userID).
		Int("movie_id", movieID).
		Float64("rate", rate).
		Bool("created", created).
		Msg("rating classified")
	return created, nil
}

// MeanRating returns the mean rating of a user or a movie.
func (s *System) MeanRating(kind Kind, id int) (float64, error) {
	return s.graph.MeanRating(kind, id)
}

// Similarity scores two entities of the same kind. An empty algorithm name
// selects the configured default. The canonical algorithm name is returned
// alongside the score.
func (s *System) Similarity(kind Kind, a, b int, algorithm string) (float64, string, error) {
	if strings.TrimSpace(algorithm) == "" {
		algorithm = s.config.Algorithm
	}
	alg, err := similarity.ByName(algorithm)
	if err != nil {
		return 0, "", err
	}
	score, err := s.graph.Similarity(alg, kind, a, b)
	if err != nil {
		return 0, alg.Name(), err
	}
	return score, alg.Name(), nil
}

// PurgeCache removes expired cache entries and returns how many were removed.
func (s *System) PurgeCache() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.CleanupExpired()
}

// ClearCache drops every cached response.
func (s *System) ClearCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// Stats returns a snapshot of request counters, graph size and cache usage.
func (s *System) Stats() Stats {
	st := Stats{
		Graph:       s.graph.Stats(),
		Requests:    s.requestCount.Load(),
		CacheHits:   s.cacheHits.Load(),
		CacheMisses: s.cacheMisses.Load(),
		Errors:      s.errorCount.Load(),
	}
	if s.cache != nil {
		cs := s.cache.Stats()
		st.Cache = &cs
	}
	return st
}
