// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmatch/internal/logging"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error codes for API responses
const (
	ErrCodeBadRequest       = "BAD_REQUEST"
	ErrCodeInvalidID        = "INVALID_ID"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyRequests  = "TOO_MANY_REQUESTS"
	ErrCodeUnprocessable    = "UNPROCESSABLE"
	ErrCodeInternalError    = "INTERNAL_ERROR"
	ErrCodeNotReady         = "SERVICE_UNAVAILABLE"
	ErrCodeTimeout          = "TIMEOUT"
)

// APIResponse is the envelope of every JSON response.
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
//
// Fields:
//   - Timestamp: Server time when the response was generated
//   - QueryTimeMS: Time spent computing the answer (0 if cached)
//   - Cached: Whether the answer was served from the recommendation cache
//   - RequestID: The X-Request-ID of the request
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError represents an error response with structured error details.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, response *APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondSuccess sends a 200 envelope around data.
func respondSuccess(w http.ResponseWriter, r *http.Request, data interface{}, start time.Time) {
	respondSuccessStatus(w, r, http.StatusOK, data, start, false)
}

func respondSuccessStatus(w http.ResponseWriter, r *http.Request, status int, data interface{}, start time.Time, cached bool) {
	meta := Metadata{
		Timestamp: time.Now(),
		Cached:    cached,
		RequestID: logging.RequestIDFromContext(r.Context()),
	}
	if !cached && !start.IsZero() {
		meta.QueryTimeMS = time.Since(start).Milliseconds()
	}
	respondJSON(w, status, &APIResponse{
		Status:   StatusSuccess,
		Data:     data,
		Metadata: meta,
	})
}

// respondError sends an error response
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	respondErrorWithDetails(w, r, status, code, message, nil, err)
}

func respondErrorWithDetails(w http.ResponseWriter, r *http.Request, status int, code, message string, details map[string]interface{}, err error) {
	if err != nil {
		event := logging.Ctx(r.Context()).Warn()
		if status >= http.StatusInternalServerError {
			event = logging.Ctx(r.Context()).Error()
		}
		// Sanitize error output to prevent log injection attacks
		event.Str("code", sanitizeLogValue(code)).
			Str("error", sanitizeLogValue(err.Error())).
			Str("path", sanitizeLogValue(r.URL.Path)).
			Msg("API error")
	}

	respondJSON(w, status, &APIResponse{
		Status: StatusError,
		Data:   nil,
		Metadata: Metadata{
			Timestamp: time.Now(),
			RequestID: logging.RequestIDFromContext(r.Context()),
		},
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}
