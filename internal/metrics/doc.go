// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package metrics provides Prometheus metrics collection and export for observability.

Collectors are registered on the default registry through promauto at package
initialization, so any package can record a metric without wiring a registry.

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

Recommendation Metrics:
  - reelmatch_recommendation_requests_total: Requests by outcome (counter)
    Labels: mode, algorithm, outcome
  - reelmatch_recommendation_duration_seconds: Computation time (histogram)
    Labels: mode, algorithm
  - reelmatch_neighbors_selected: Neighbors kept per request (histogram)
  - reelmatch_recommendations_returned: Movies returned per request (histogram)
  - reelmatch_similarity_computations_total: Pairwise similarities (counter)
    Labels: algorithm, outcome

Graph Metrics:
  - reelmatch_ratings_classified_total: Ratings applied (counter)
    Labels: result (created, updated)
  - reelmatch_graph_users, reelmatch_graph_movies, reelmatch_graph_ratings (gauges)
  - reelmatch_graph_version: Mutation counter of the graph (gauge)

Cache Metrics:
  - reelmatch_cache_hits_total, reelmatch_cache_misses_total (counters)
  - reelmatch_cache_entries (gauge)
  - reelmatch_cache_expired_total (counter)

API Metrics:
  - api_requests_total: Labels method, endpoint, status_code
  - api_request_duration_seconds: Labels method, endpoint
  - api_active_requests (gauge)
*/
package metrics
