// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package middleware provides in-process HTTP latency tracking.

PerformanceMonitor keeps a sliding window of recent requests and reports
per-route latency percentiles. Requests are grouped by their chi route
pattern, so /api/v1/users/1/recommendations and
/api/v1/users/2/recommendations aggregate under one endpoint.

Usage:

	perf := middleware.NewPerformanceMonitor(middleware.DefaultWindowSize)
	r := chi.NewRouter()
	r.Use(perf.Middleware)

	stats := perf.GetStats() // busiest endpoint first

The window complements the Prometheus histograms in internal/metrics: it
needs no scraper and is served by GET /api/v1/stats.

Thread Safety:

All methods are safe for concurrent use.
*/
package middleware
