// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/reelmatch/internal/validation"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes.
func validateRequest(v interface{}) *APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}
	apiErr := validationErr.ToAPIError()
	return &APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// pathID parses a positive integer URL parameter.
func pathID(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", name)
	}
	return id, nil
}

// queryInt parses an integer query parameter. An absent parameter yields
// defaultValue; a malformed one is an error.
func queryInt(r *http.Request, key string, defaultValue int) (int, error) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: not an integer", key, value)
	}
	return n, nil
}

// parseRecommendationQuery reads k, n and algorithm from the query string.
func parseRecommendationQuery(r *http.Request) (RecommendationQuery, error) {
	var q RecommendationQuery
	var err error
	if q.K, err = queryInt(r, "k", 0); err != nil {
		return q, err
	}
	if q.N, err = queryInt(r, "n", 0); err != nil {
		return q, err
	}
	q.Algorithm = strings.TrimSpace(r.URL.Query().Get("algorithm"))
	return q, nil
}
