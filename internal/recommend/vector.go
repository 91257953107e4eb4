// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"fmt"
	"sort"
)

// FeatureMatrix builds the aligned rating vectors of two entities of the
// same kind.
//
// Positions follow the ascending union of counterpart ids from both rating
// maps. A counterpart rated by only one side contributes 0 on the other, so
// both vectors always have the same length.
func FeatureMatrix(a, b Entity) ([]float64, []float64, error) {
	if err := sameKind(a, b); err != nil {
		return nil, nil, err
	}

	ra, rb := a.ratings(), b.ratings()
	keys := make([]int, 0, len(ra)+len(rb))
	for id := range ra {
		keys = append(keys, id)
	}
	for id := range rb {
		if _, dup := ra[id]; !dup {
			keys = append(keys, id)
		}
	}
	sort.Ints(keys)

	va := make([]float64, len(keys))
	vb := make([]float64, len(keys))
	for i, id := range keys {
		if r, ok := ra[id]; ok {
			va[i] = r.Rate
		}
		if r, ok := rb[id]; ok {
			vb[i] = r.Rate
		}
	}
	return va, vb, nil
}

// SharedVectors returns the rating vectors restricted to the counterparts
// both entities rated, in ascending id order, together with their count.
func SharedVectors(a, b Entity) ([]float64, []float64, int, error) {
	if err := sameKind(a, b); err != nil {
		return nil, nil, 0, err
	}

	ra, rb := a.ratings(), b.ratings()
	// iterate the smaller map
	small, large := ra, rb
	if len(rb) < len(ra) {
		small, large = rb, ra
	}
	keys := make([]int, 0, len(small))
	for id := range small {
		if _, ok := large[id]; ok {
			keys = append(keys, id)
		}
	}
	sort.Ints(keys)

	va := make([]float64, len(keys))
	vb := make([]float64, len(keys))
	for i, id := range keys {
		va[i] = ra[id].Rate
		vb[i] = rb[id].Rate
	}
	return va, vb, len(keys), nil
}

func sameKind(a, b Entity) error {
	if a == nil || b == nil {
		return fmt.Errorf("%w: nil entity", ErrInvalidArgument)
	}
	if a.Kind() != b.Kind() {
		return fmt.Errorf("%s %d vs %s %d: %w", a.Kind(), a.Key(), b.Kind(), b.Key(), ErrTypeMismatch)
	}
	return nil
}
