// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package api exposes the recommendation system over HTTP using the Chi router.
//
// Routes:
//
//	GET  /api/v1/health                              health with graph and cache stats
//	GET  /api/v1/health/live                         liveness check
//	GET  /api/v1/health/ready                        readiness check (graph loaded)
//	GET  /api/v1/users/{userID}/recommendations      user-based recommendations
//	GET  /api/v1/movies/{movieID}/recommendations    item-based recommendations
//	GET  /api/v1/users/{userID}/mean                 mean rating given by a user
//	GET  /api/v1/movies/{movieID}/mean               mean rating of a movie
//	GET  /api/v1/similarity?kind=&a=&b=&algorithm=   similarity of two entities
//	GET  /api/v1/algorithms                          supported similarity algorithms
//	GET  /api/v1/stats                               system counters
//	POST /api/v1/ratings                             record a rating
//	GET  /metrics                                    Prometheus metrics
//
// Every JSON response uses the same envelope:
//
//	{
//	  "status": "success" | "error",
//	  "data": ...,
//	  "metadata": {"timestamp": ..., "query_time_ms": ..., "cached": ...},
//	  "error": {"code": ..., "message": ..., "details": ...}
//	}
//
// Middleware: request IDs with logging context, RealIP, Recoverer, go-chi/cors,
// go-chi/httprate and Prometheus request instrumentation.
package api
