// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package middleware

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tomtom215/reelmatch/internal/logging"
)

const (
	// DefaultWindowSize is the number of recent requests kept for percentiles.
	DefaultWindowSize = 1000

	// DefaultSlowThreshold is the latency above which a request is logged.
	DefaultSlowThreshold = time.Second
)

// RequestMetrics is one observed request.
type RequestMetrics struct {
	Endpoint   string        `json:"endpoint"`
	Method     string        `json:"method"`
	Duration   time.Duration `json:"duration_ns"`
	StatusCode int           `json:"status_code"`
	Timestamp  time.Time     `json:"timestamp"`
}

// EndpointStats aggregates the window for one method and route pattern.
// Durations are in milliseconds.
type EndpointStats struct {
	Endpoint     string  `json:"endpoint"`
	RequestCount int64   `json:"request_count"`
	ErrorCount   int64   `json:"error_count"`
	AvgMS        float64 `json:"avg_ms"`
	P50MS        float64 `json:"p50_ms"`
	P95MS        float64 `json:"p95_ms"`
	P99MS        float64 `json:"p99_ms"`
	MinMS        float64 `json:"min_ms"`
	MaxMS        float64 `json:"max_ms"`
}

// PerformanceMonitor tracks recent request latencies per endpoint.
type PerformanceMonitor struct {
	mu            sync.RWMutex
	metrics       []RequestMetrics
	maxMetrics    int
	slowThreshold time.Duration
}

// NewPerformanceMonitor creates a monitor keeping the last maxMetrics
// requests. Non-positive sizes use DefaultWindowSize.
func NewPerformanceMonitor(maxMetrics int) *PerformanceMonitor {
	if maxMetrics <= 0 {
		maxMetrics = DefaultWindowSize
	}
	return &PerformanceMonitor{
		metrics:       make([]RequestMetrics, 0, maxMetrics),
		maxMetrics:    maxMetrics,
		slowThreshold: DefaultSlowThreshold,
	}
}

// SetSlowThreshold changes the slow request log threshold. Zero disables it.
func (pm *PerformanceMonitor) SetSlowThreshold(d time.Duration) {
	pm.mu.Lock()
	pm.slowThreshold = d
	pm.mu.Unlock()
}

// RecordRequest adds a request to the window, evicting the oldest when full.
func (pm *PerformanceMonitor) RecordRequest(metric *RequestMetrics) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	if len(pm.metrics) == pm.maxMetrics {
		copy(pm.metrics, pm.metrics[1:])
		pm.metrics = pm.metrics[:len(pm.metrics)-1]
	}
	pm.metrics = append(pm.metrics, *metric)
}

// GetStats returns per-endpoint statistics, busiest first. Ties are ordered
// by endpoint key.
func (pm *PerformanceMonitor) GetStats() []EndpointStats {
	pm.mu.RLock()
	grouped := make(map[string][]time.Duration)
	errs := make(map[string]int64)
	for _, m := range pm.metrics {
		key := m.Method + " " + m.Endpoint
		grouped[key] = append(grouped[key], m.Duration)
		if m.StatusCode >= http.StatusInternalServerError {
			errs[key]++
		}
	}
	pm.mu.RUnlock()

	stats := make([]EndpointStats, 0, len(grouped))
	for endpoint, durations := range grouped {
		sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })

		var sum time.Duration
		for _, d := range durations {
			sum += d
		}

		stats = append(stats, EndpointStats{
			Endpoint:     endpoint,
			RequestCount: int64(len(durations)),
			ErrorCount:   errs[endpoint],
			AvgMS:        millis(sum) / float64(len(durations)),
			P50MS:        millis(percentile(durations, 0.50)),
			P95MS:        millis(percentile(durations, 0.95)),
			P99MS:        millis(percentile(durations, 0.99)),
			MinMS:        millis(durations[0]),
			MaxMS:        millis(durations[len(durations)-1]),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].RequestCount != stats[j].RequestCount {
			return stats[i].RequestCount > stats[j].RequestCount
		}
		return stats[i].Endpoint < stats[j].Endpoint
	})
	return stats
}

// GetRecentMetrics returns up to n of the most recent requests, oldest first.
func (pm *PerformanceMonitor) GetRecentMetrics(n int) []RequestMetrics {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	if n > len(pm.metrics) {
		n = len(pm.metrics)
	}
	if n < 0 {
		n = 0
	}
	recent := make([]RequestMetrics, n)
	copy(recent, pm.metrics[len(pm.metrics)-n:])
	return recent
}

// Middleware records every request passing through it. It must run inside
// a chi router for the route pattern to be known.
func (pm *PerformanceMonitor) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		endpoint := routePattern(r)

		pm.RecordRequest(&RequestMetrics{
			Endpoint:   endpoint,
			Method:     r.Method,
			Duration:   duration,
			StatusCode: status,
			Timestamp:  start,
		})

		pm.mu.RLock()
		threshold := pm.slowThreshold
		pm.mu.RUnlock()
		if threshold > 0 && duration > threshold {
			logging.Ctx(r.Context()).Warn().
				Str("method", r.Method).
				Str("endpoint", endpoint).
				Dur("duration", duration).
				Dur("threshold", threshold).
				Msg("Slow request detected")
		}
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

// percentile returns the nearest-rank value of a sorted slice.
func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[int(float64(len(sorted)-1)*p)]
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
