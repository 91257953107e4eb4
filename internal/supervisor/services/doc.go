// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package services provides suture.Service wrappers for Reelmatch components:
// the HTTP server and the recommendation cache maintenance loop.
package services
