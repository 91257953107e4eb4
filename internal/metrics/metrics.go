// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values shared by the recommendation and similarity metrics.
const (
	OutcomeSuccess    = "success"
	OutcomeError      = "error"
	OutcomeDegenerate = "degenerate"
	OutcomeCached     = "cached"
)

var (
	// Recommendation Metrics
	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_recommendation_requests_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"mode", "algorithm", "outcome"},
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reelmatch_recommendation_duration_seconds",
			Help:    "Time spent computing a recommendation list",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"mode", "algorithm"},
	)

	NeighborsSelected = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reelmatch_neighbors_selected",
			Help:    "Number of neighbors kept after ranking",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
		},
		[]string{"mode"},
	)

	RecommendationsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reelmatch_recommendations_returned",
			Help:    "Number of movies returned per recommendation request",
			Buckets: []float64{0, 1, 5, 10, 20, 50, 100},
		},
	)

	// Similarity Metrics
	SimilarityComputations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_similarity_computations_total",
			Help: "Total number of pairwise similarity computations",
		},
		[]string{"algorithm", "outcome"},
	)

	// Graph Metrics
	RatingsClassified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_ratings_classified_total",
			Help: "Total number of ratings classified into the graph",
		},
		[]string{"result"}, // "created", "updated"
	)

	GraphUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelmatch_graph_users",
			Help: "Current number of users in the rating graph",
		},
	)

	GraphMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelmatch_graph_movies",
			Help: "Current number of movies in the rating graph",
		},
	)

	GraphRatings = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelmatch_graph_ratings",
			Help: "Current number of ratings in the rating graph",
		},
	)

	GraphVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelmatch_graph_version",
			Help: "Monotonic version of the rating graph, bumped on every mutation",
		},
	)

	// Dataset Metrics
	DatasetLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reelmatch_dataset_load_duration_seconds",
			Help:    "Time spent loading the rating dataset",
			Buckets: prometheus.DefBuckets,
		},
	)

	DatasetRecordsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_dataset_records_skipped_total",
			Help: "Dataset records skipped because they could not be applied",
		},
		[]string{"file"},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reelmatch_cache_hits_total",
			Help: "Total number of recommendation cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reelmatch_cache_misses_total",
			Help: "Total number of recommendation cache misses",
		},
	)

	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelmatch_cache_entries",
			Help: "Current number of cached recommendation responses",
		},
	)

	CacheExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reelmatch_cache_expired_total",
			Help: "Total number of expired cache entries purged by maintenance",
		},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}, // Optimized for API latency
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)
)

// RecordRecommendation records a finished recommendation request.
func RecordRecommendation(mode, algorithm, outcome string, duration time.Duration) {
	RecommendationRequests.WithLabelValues(mode, algorithm, outcome).Inc()
	if outcome != OutcomeCached {
		RecommendationDuration.WithLabelValues(mode, algorithm).Observe(duration.Seconds())
	}
}

// RecordRanking records the sizes produced by one ranking pass.
func RecordRanking(mode string, neighbors, returned int) {
	NeighborsSelected.WithLabelValues(mode).Observe(float64(neighbors))
	RecommendationsReturned.Observe(float64(returned))
}

// RecordSimilarity records a single pairwise similarity computation.
func RecordSimilarity(algorithm, outcome string) {
	SimilarityComputations.WithLabelValues(algorithm, outcome).Inc()
}

// RecordClassify records a rating insertion or in-place update.
func RecordClassify(created bool) {
	if created {
		RatingsClassified.WithLabelValues("created").Inc()
		return
	}
	RatingsClassified.WithLabelValues("updated").Inc()
}

// UpdateGraphGauges publishes the current size of the rating graph.
func UpdateGraphGauges(users, movies, ratings int, version uint64) {
	GraphUsers.Set(float64(users))
	GraphMovies.Set(float64(movies))
	GraphRatings.Set(float64(ratings))
	GraphVersion.Set(float64(version))
}

// RecordDatasetLoad records the duration of a dataset load.
func RecordDatasetLoad(duration time.Duration) {
	DatasetLoadDuration.Observe(duration.Seconds())
}

// RecordDatasetSkip records a dataset record that was skipped.
func RecordDatasetSkip(file string) {
	DatasetRecordsSkipped.WithLabelValues(file).Inc()
}

// RecordCacheLookup records a recommendation cache lookup.
func RecordCacheLookup(hit bool) {
	if hit {
		CacheHits.Inc()
	} else {
		CacheMisses.Inc()
	}
}

// UpdateCacheGauges publishes cache size and the number of entries purged.
func UpdateCacheGauges(entries, purged int) {
	CacheEntries.Set(float64(entries))
	if purged > 0 {
		CacheExpired.Add(float64(purged))
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
