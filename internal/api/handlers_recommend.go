// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/recommend/similarity"
)

// maxRatingBodyBytes bounds the body of POST /api/v1/ratings.
const maxRatingBodyBytes = 4 << 10

// algorithmDescriptions documents the supported similarity algorithms.
var algorithmDescriptions = map[string]string{
	similarity.NameCosine:   "Cosine of the angle between rating vectors",
	similarity.NamePearson:  "Pearson correlation of rating vectors",
	similarity.NameSpearman: "Pearson correlation of the rating ranks",
}

// AlgorithmInfo describes a similarity algorithm.
type AlgorithmInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Default     bool   `json:"default"`
}

// UserRecommendations handles GET /api/v1/users/{userID}/recommendations.
// Movies are recommended from the ratings of the most similar users.
func (h *Handler) UserRecommendations(w http.ResponseWriter, r *http.Request) {
	h.recommend(w, r, recommend.KindUser, "userID")
}

// MovieRecommendations handles GET /api/v1/movies/{movieID}/recommendations.
// The most similar movies are returned, ranked by mean rating.
func (h *Handler) MovieRecommendations(w http.ResponseWriter, r *http.Request) {
	h.recommend(w, r, recommend.KindMovie, "movieID")
}

func (h *Handler) recommend(w http.ResponseWriter, r *http.Request, kind recommend.Kind, param string) {
	start := time.Now()

	id, err := pathID(r, param)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidID, err.Error(), nil)
		return
	}

	q, err := parseRecommendationQuery(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&q); apiErr != nil {
		respondErrorWithDetails(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	resp, err := h.system.Recommend(ctx, recommend.Request{
		Kind:      kind,
		TargetID:  id,
		K:         q.K,
		N:         q.N,
		Algorithm: q.Algorithm,
		RequestID: logging.RequestIDFromContext(ctx),
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondSuccessStatus(w, r, http.StatusOK, resp, start, resp.Metadata.CacheHit)
}

// UserMean handles GET /api/v1/users/{userID}/mean.
func (h *Handler) UserMean(w http.ResponseWriter, r *http.Request) {
	h.mean(w, r, recommend.KindUser, "userID")
}

// MovieMean handles GET /api/v1/movies/{movieID}/mean.
func (h *Handler) MovieMean(w http.ResponseWriter, r *http.Request) {
	h.mean(w, r, recommend.KindMovie, "movieID")
}

func (h *Handler) mean(w http.ResponseWriter, r *http.Request, kind recommend.Kind, param string) {
	start := time.Now()

	id, err := pathID(r, param)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidID, err.Error(), nil)
		return
	}

	entity, err := h.entity(kind, id)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	mean, err := h.system.MeanRating(kind, id)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondSuccess(w, r, MeanResult{
		Kind:    kind.String(),
		ID:      id,
		Mean:    mean,
		Ratings: entity.RatingCount(),
	}, start)
}

func (h *Handler) entity(kind recommend.Kind, id int) (recommend.Entity, error) {
	if kind == recommend.KindUser {
		return h.system.Graph().User(id)
	}
	return h.system.Graph().Movie(id)
}

// Similarity handles GET /api/v1/similarity?kind=user|movie&a=&b=&algorithm=.
func (h *Handler) Similarity(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	query := r.URL.Query()

	q := SimilarityQuery{
		Kind:      query.Get("kind"),
		Algorithm: query.Get("algorithm"),
	}
	var err error
	if q.A, err = queryInt(r, "a", 0); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}
	if q.B, err = queryInt(r, "b", 0); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&q); apiErr != nil {
		respondErrorWithDetails(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	kind, err := recommend.ParseKind(q.Kind)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	score, algorithm, err := h.system.Similarity(kind, q.A, q.B, q.Algorithm)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondSuccess(w, r, SimilarityResult{
		Kind:       kind.String(),
		A:          q.A,
		B:          q.B,
		Algorithm:  algorithm,
		Similarity: score,
	}, start)
}

// Classify handles POST /api/v1/ratings. A new rating answers 201, an
// update of an existing (user, movie) rating answers 200.
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req RatingRequest
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxRatingBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		msg := "Invalid JSON body"
		if errors.Is(err, io.EOF) {
			msg = "Request body is empty"
		}
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, msg, err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorWithDetails(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	created, err := h.system.Classify(r.Context(), req.UserID, req.MovieID, req.Rate)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	respondSuccessStatus(w, r, status, RatingResult{
		UserID:       req.UserID,
		MovieID:      req.MovieID,
		Rate:         req.Rate,
		Created:      created,
		GraphVersion: h.system.Graph().Version(),
	}, start, false)
}

// Algorithms handles GET /api/v1/algorithms.
func (h *Handler) Algorithms(w http.ResponseWriter, r *http.Request) {
	names := similarity.Names()
	defaultName := h.system.Config().Algorithm
	if alg, err := similarity.ByName(defaultName); err == nil {
		defaultName = alg.Name()
	}

	infos := make([]AlgorithmInfo, 0, len(names))
	for _, name := range names {
		infos = append(infos, AlgorithmInfo{
			Name:        name,
			Description: algorithmDescriptions[name],
			Default:     name == defaultName,
		})
	}
	respondSuccess(w, r, infos, time.Time{})
}

// Stats handles GET /api/v1/stats.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, StatsResult{
		Stats:     h.system.Stats(),
		Endpoints: h.perf.GetStats(),
	}, time.Time{})
}
