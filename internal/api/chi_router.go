// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router wires handlers and middleware into a chi.Router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil middleware factory uses the defaults.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: mw,
	}
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied in order
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered
	r.Use(chimiddleware.Compress(5, "application/json"))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", nil)
	})

	// Health checks are not rate limited
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(PrometheusMetrics)
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(PrometheusMetrics)
		r.Use(router.handler.PerformanceMonitor().Middleware)

		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/recommendations", router.handler.UserRecommendations)
			r.Get("/mean", router.handler.UserMean)
		})
		r.Route("/movies/{movieID}", func(r chi.Router) {
			r.Get("/recommendations", router.handler.MovieRecommendations)
			r.Get("/mean", router.handler.MovieMean)
		})

		r.Get("/similarity", router.handler.Similarity)
		r.Get("/algorithms", router.handler.Algorithms)
		r.Get("/stats", router.handler.Stats)
		r.Post("/ratings", router.handler.Classify)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
