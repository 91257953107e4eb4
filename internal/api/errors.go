// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/recommend/similarity"
)

// errorMapping pairs a domain sentinel with its HTTP status and error code.
type errorMapping struct {
	target error
	status int
	code   string
}

// domainErrors is checked in order; the first errors.Is match wins.
var domainErrors = []errorMapping{
	{recommend.ErrNotFound, http.StatusNotFound, ErrCodeNotFound},
	{recommend.ErrInvalidArgument, http.StatusBadRequest, ErrCodeBadRequest},
	{recommend.ErrInvalidRating, http.StatusBadRequest, ErrCodeBadRequest},
	{recommend.ErrTypeMismatch, http.StatusBadRequest, ErrCodeBadRequest},
	{similarity.ErrLengthMismatch, http.StatusBadRequest, ErrCodeBadRequest},
	{similarity.ErrUnknownAlgorithm, http.StatusBadRequest, ErrCodeBadRequest},
	{recommend.ErrEmptyRatings, http.StatusUnprocessableEntity, ErrCodeUnprocessable},
	{similarity.ErrDegenerateVector, http.StatusUnprocessableEntity, ErrCodeUnprocessable},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, ErrCodeTimeout},
}

// classifyError maps err to an HTTP status and error code.
func classifyError(err error) (status int, code string) {
	for _, m := range domainErrors {
		if errors.Is(err, m.target) {
			return m.status, m.code
		}
	}
	return http.StatusInternalServerError, ErrCodeInternalError
}

// respondDomainError writes the envelope for an error returned by the
// recommendation system. Internal errors are not echoed to the client.
func respondDomainError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classifyError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}
	respondError(w, r, status, code, message, err)
}
