// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"time"

	"github.com/tomtom215/reelmatch/internal/middleware"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// DefaultRequestTimeout bounds a single recommendation computation.
const DefaultRequestTimeout = 10 * time.Second

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: request parsing and validation helpers
//   - handlers_health.go: health, liveness and readiness endpoints
//   - handlers_recommend.go: recommendation, mean, similarity and rating endpoints
type Handler struct {
	system         *recommend.System
	version        string
	startTime      time.Time
	requestTimeout time.Duration
	perf           *middleware.PerformanceMonitor
}

// NewHandler creates a handler serving system. version is reported by the
// health endpoint.
//
// Example:
//
//	handler := api.NewHandler(system, "1.0.0")
//	router := api.NewRouter(handler, api.NewChiMiddleware(nil))
//	http.ListenAndServe(":8080", router.SetupChi())
func NewHandler(system *recommend.System, version string) *Handler {
	if version == "" {
		version = "dev"
	}
	return &Handler{
		system:         system,
		version:        version,
		startTime:      time.Now(),
		requestTimeout: DefaultRequestTimeout,
		perf:           middleware.NewPerformanceMonitor(middleware.DefaultWindowSize),
	}
}

// SetRequestTimeout overrides DefaultRequestTimeout. Non-positive values are ignored.
func (h *Handler) SetRequestTimeout(d time.Duration) {
	if d > 0 {
		h.requestTimeout = d
	}
}

// PerformanceMonitor returns the latency window reported by the stats endpoint.
func (h *Handler) PerformanceMonitor() *middleware.PerformanceMonitor {
	return h.perf
}
