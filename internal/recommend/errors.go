// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import "errors"

// Sentinel errors returned by the rating graph and the recommendation system.
// Callers match them with errors.Is; returned errors wrap them with context.
var (
	// ErrTypeMismatch is returned when two entities of different kinds are compared.
	ErrTypeMismatch = errors.New("entities are of different kinds")

	// ErrEmptyRatings is returned when a mean is requested for an entity with no ratings.
	ErrEmptyRatings = errors.New("entity has no ratings")

	// ErrNotFound is returned when a user or movie id is unknown.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidRating is returned for a rate that is not finite, not positive,
	// or outside the configured rating scale.
	ErrInvalidRating = errors.New("invalid rating")

	// ErrInvalidArgument is returned for out-of-range request parameters.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDuplicateEntity is returned when a user or movie id is registered twice.
	ErrDuplicateEntity = errors.New("entity already exists")
)
