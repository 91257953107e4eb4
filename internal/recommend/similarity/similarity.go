// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package similarity implements the similarity metrics used to compare rating
// vectors of two users or two movies.
//
// Every Algorithm consumes two equal-length dense vectors and returns a scalar
// where a higher value always means "more alike". Cosine and Pearson fall in
// [-1, 1]; Spearman is Pearson applied to average ranks and shares that range.
//
// # Errors
//
// Algorithms never return NaN. Inputs of unequal or zero length fail with
// ErrLengthMismatch and inputs with zero norm (cosine) or zero variance
// (Pearson, Spearman) fail with ErrDegenerateVector.
package similarity

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrLengthMismatch is returned when the vectors differ in length or are empty.
	ErrLengthMismatch = errors.New("similarity: vectors must have equal, positive length")

	// ErrDegenerateVector is returned when a vector has zero norm or zero variance.
	ErrDegenerateVector = errors.New("similarity: degenerate vector")

	// ErrUnknownAlgorithm is returned by ByName for unsupported names.
	ErrUnknownAlgorithm = errors.New("similarity: unknown algorithm")
)

// Algorithm names accepted by ByName.
const (
	NameCosine   = "cosine"
	NamePearson  = "pearson"
	NameSpearman = "spearman"
)

// Algorithm computes a similarity score between two rating vectors.
type Algorithm interface {
	// Name returns the algorithm identifier (e.g., "cosine").
	Name() string

	// Compute returns the similarity of a and b. Higher is more similar.
	Compute(a, b []float64) (float64, error)
}

// Cosine is the cosine of the angle between two vectors.
type Cosine struct{}

// Pearson is the Pearson correlation coefficient, computed as the cosine of
// the mean-centered vectors.
type Pearson struct{}

// Spearman is the Spearman rank correlation: Pearson over average ranks.
type Spearman struct{}

// Name returns "cosine".
func (Cosine) Name() string { return NameCosine }

// Compute returns dot(a, b) / (|a| * |b|).
func (Cosine) Compute(a, b []float64) (float64, error) {
	if err := checkLengths(a, b); err != nil {
		return 0, err
	}
	return cosine(a, b)
}

// Name returns "pearson".
func (Pearson) Name() string { return NamePearson }

// Compute returns the Pearson correlation of a and b.
func (Pearson) Compute(a, b []float64) (float64, error) {
	if err := checkLengths(a, b); err != nil {
		return 0, err
	}
	if constant(a) || constant(b) {
		return 0, ErrDegenerateVector
	}
	return cosine(center(a), center(b))
}

// Name returns "spearman".
func (Spearman) Name() string { return NameSpearman }

// Compute returns the Spearman rank correlation of a and b.
func (Spearman) Compute(a, b []float64) (float64, error) {
	if err := checkLengths(a, b); err != nil {
		return 0, err
	}
	// all-tied input ranks to a constant vector
	if constant(a) || constant(b) {
		return 0, ErrDegenerateVector
	}
	return cosine(center(Ranks(a)), center(Ranks(b)))
}

// ByName returns the algorithm registered under name (case-insensitive).
// The aliases "cos" and "correlation" map to cosine and Pearson.
func ByName(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameCosine, "cos":
		return Cosine{}, nil
	case NamePearson, "correlation":
		return Pearson{}, nil
	case NameSpearman:
		return Spearman{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Names returns the canonical names of all supported algorithms.
func Names() []string {
	return []string{NameCosine, NamePearson, NameSpearman}
}

// Ranks returns the 1-based average ranks of v. Tied values share the mean
// of the ranks they span, so Ranks([]float64{10, 20, 20}) is [1, 2.5, 2.5].
func Ranks(v []float64) []float64 {
	idx := make([]int, len(v))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return v[idx[i]] < v[idx[j]]
	})

	ranks := make([]float64, len(v))
	for i := 0; i < len(idx); {
		j := i
		for j+1 < len(idx) && v[idx[j+1]] == v[idx[i]] {
			j++
		}
		// positions i..j (0-based) hold ranks i+1..j+1
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[idx[k]] = avg
		}
		i = j + 1
	}
	return ranks
}

func checkLengths(a, b []float64) error {
	if len(a) == 0 || len(a) != len(b) {
		return fmt.Errorf("%w: got %d and %d", ErrLengthMismatch, len(a), len(b))
	}
	return nil
}

// center returns a copy of v with its mean subtracted.
func center(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	floats.AddConst(-stat.Mean(v, nil), out)
	return out
}

// constant reports whether every element of v is equal. Such a vector has
// zero variance whatever its magnitude.
func constant(v []float64) bool {
	for _, x := range v[1:] {
		if x != v[0] {
			return false
		}
	}
	return true
}

// cosine rejects only an exactly zero norm. Each vector is scaled to unit
// length before the dot product so tiny magnitudes do not underflow.
func cosine(a, b []float64) (float64, error) {
	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)
	if normA == 0 || normB == 0 {
		return 0, ErrDegenerateVector
	}

	ua := make([]float64, len(a))
	ub := make([]float64, len(b))
	floats.ScaleTo(ua, 1/normA, a)
	floats.ScaleTo(ub, 1/normB, b)

	sim := floats.Dot(ua, ub)
	if math.IsNaN(sim) || math.IsInf(sim, 0) {
		return 0, ErrDegenerateVector
	}

	// Clamp rounding drift so identical vectors report exactly 1.
	return math.Max(-1, math.Min(1, sim)), nil
}

// Ensure interface compliance.
var (
	_ Algorithm = Cosine{}
	_ Algorithm = Pearson{}
	_ Algorithm = Spearman{}
)
