// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"

	"github.com/tomtom215/reelmatch/internal/validation"
)

// Validate checks struct tags first, then the rules that span fields.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	return c.validateSecurity()
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if !r.CacheEnabled {
		return nil
	}
	if r.CacheTTL <= 0 {
		return fmt.Errorf("recommend.cache_ttl must be positive when the cache is enabled, got %v", r.CacheTTL)
	}
	if r.CacheMaxEntries < 1 {
		return fmt.Errorf("recommend.cache_max_entries must be positive when the cache is enabled, got %d", r.CacheMaxEntries)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	s := c.Security
	if s.RateLimitDisabled {
		return nil
	}
	if s.RateLimitReqs < 1 {
		return fmt.Errorf("security.rate_limit_reqs must be positive unless rate limiting is disabled, got %d", s.RateLimitReqs)
	}
	if s.RateLimitWindow <= 0 {
		return fmt.Errorf("security.rate_limit_window must be positive unless rate limiting is disabled, got %v", s.RateLimitWindow)
	}
	return nil
}
