// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// HealthStatus is the payload of GET /api/v1/health.
type HealthStatus struct {
	Status  string               `json:"status"`
	Version string               `json:"version"`
	Uptime  float64              `json:"uptime_seconds"`
	Graph   recommend.GraphStats `json:"graph"`
	Cache   *cache.Stats         `json:"cache,omitempty"`
}

// Health reports overall status. The service is degraded while the graph
// holds no users or no movies.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	stats := h.system.Stats()

	status := "healthy"
	if !graphReady(stats.Graph) {
		status = "degraded"
	}

	respondSuccess(w, r, HealthStatus{
		Status:  status,
		Version: h.version,
		Uptime:  time.Since(h.startTime).Seconds(),
		Graph:   stats.Graph,
		Cache:   stats.Cache,
	}, time.Time{})
}

// HealthLive handles liveness check requests.
// Returns 200 OK if the process is alive, regardless of data.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, time.Time{})
}

// HealthReady handles readiness check requests.
// Returns 503 until the graph holds users and movies.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	gs := h.system.Graph().Stats()
	if !graphReady(gs) {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeNotReady, "Rating graph is empty", nil)
		return
	}
	respondSuccess(w, r, map[string]interface{}{
		"ready": true,
		"graph": gs,
	}, time.Time{})
}

func graphReady(gs recommend.GraphStats) bool {
	return gs.Users > 0 && gs.Movies > 0
}
