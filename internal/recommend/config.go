// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"fmt"
	"math"
	"time"

	"github.com/tomtom215/reelmatch/internal/recommend/similarity"
)

// Config contains all configuration for the recommendation system.
type Config struct {
	// Algorithm is the default similarity algorithm name.
	// Default: "cosine".
	Algorithm string `json:"algorithm"`

	// MinShared is the minimum number of shared counterparts two entities
	// need before their similarity is considered. Values below 2 are raised to 2.
	// Default: 2.
	MinShared int `json:"min_shared"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits"`

	// RatingScale bounds the rates accepted by Classify.
	RatingScale RatingScale `json:"rating_scale"`

	// Cache contains caching parameters.
	Cache CacheConfig `json:"cache"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultK is the default number of neighbors.
	// Default: 20.
	DefaultK int `json:"default_k"`

	// MaxK is the maximum allowed K value.
	// Default: 200.
	MaxK int `json:"max_k"`

	// DefaultN is the default number of recommendations to return.
	// Default: 10.
	DefaultN int `json:"default_n"`

	// MaxN is the maximum allowed N value.
	// Default: 100.
	MaxN int `json:"max_n"`
}

// RatingScale is the closed interval of accepted rates.
type RatingScale struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether rate lies within the scale.
func (s RatingScale) Contains(rate float64) bool {
	return rate >= s.Min && rate <= s.Max
}

// CacheConfig contains caching parameters.
type CacheConfig struct {
	// Enabled controls whether caching is active.
	// Default: true.
	Enabled bool `json:"enabled"`

	// TTL is the cache entry time-to-live.
	// Default: 5m.
	TTL time.Duration `json:"ttl"`

	// MaxEntries is the maximum number of cached entries.
	// Default: 10000.
	MaxEntries int `json:"max_entries"`
}

// DefaultConfig returns a Config with sensible production defaults.
func DefaultConfig() *Config {
	return &Config{
		Algorithm: similarity.NameCosine,
		MinShared: 2,
		Limits: LimitsConfig{
			DefaultK: 20,
			MaxK:     200,
			DefaultN: 10,
			MaxN:     100,
		},
		RatingScale: RatingScale{
			Min: 1,
			Max: 5,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        5 * time.Minute,
			MaxEntries: 10000,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if _, err := similarity.ByName(c.Algorithm); err != nil {
		return fmt.Errorf("algorithm: %w", err)
	}
	if c.MinShared < 0 {
		return fmt.Errorf("min_shared must be non-negative, got %d", c.MinShared)
	}

	if c.Limits.DefaultK < 1 {
		return fmt.Errorf("limits.default_k must be positive, got %d", c.Limits.DefaultK)
	}
	if c.Limits.MaxK < c.Limits.DefaultK {
		return fmt.Errorf("limits.max_k (%d) must be >= limits.default_k (%d)", c.Limits.MaxK, c.Limits.DefaultK)
	}
	if c.Limits.DefaultN < 1 {
		return fmt.Errorf("limits.default_n must be positive, got %d", c.Limits.DefaultN)
	}
	if c.Limits.MaxN < c.Limits.DefaultN {
		return fmt.Errorf("limits.max_n (%d) must be >= limits.default_n (%d)", c.Limits.MaxN, c.Limits.DefaultN)
	}

	s := c.RatingScale
	if math.IsNaN(s.Min) || math.IsInf(s.Min, 0) || math.IsNaN(s.Max) || math.IsInf(s.Max, 0) {
		return fmt.Errorf("rating_scale bounds must be finite")
	}
	if s.Min <= 0 {
		return fmt.Errorf("rating_scale.min must be positive, got %f", s.Min)
	}
	if s.Max < s.Min {
		return fmt.Errorf("rating_scale.max (%f) must be >= rating_scale.min (%f)", s.Max, s.Min)
	}

	if c.Cache.Enabled {
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
		}
		if c.Cache.MaxEntries < 1 {
			return fmt.Errorf("cache.max_entries must be positive, got %d", c.Cache.MaxEntries)
		}
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// Direct field copy - all nested structs contain only value types
	clone := *c
	return &clone
}

// minShared returns the effective shared-counterpart threshold.
func (c *Config) minShared() int {
	if c.MinShared < 2 {
		return 2
	}
	return c.MinShared
}
