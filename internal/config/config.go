// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// Config holds all application configuration.
//
// Config is immutable after Load and safe for concurrent read access.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Dataset   DatasetConfig   `koanf:"dataset"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `koanf:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level" validate:"oneof=trace debug info warn error"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format" validate:"oneof=json console"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// DatasetConfig locates the MovieLens files loaded at startup.
type DatasetConfig struct {
	// Dir is the directory holding the MovieLens-100k files.
	Dir string `koanf:"dir" validate:"required"`

	Users   string `koanf:"users" validate:"required"`
	Items   string `koanf:"items" validate:"required"`
	Genres  string `koanf:"genres"`
	Ratings string `koanf:"ratings" validate:"required"`

	// Encoding of the pipe-delimited files: latin1 or utf-8.
	// Default: latin1 (the MovieLens-100k release is ISO-8859-1)
	Encoding string `koanf:"encoding" validate:"oneof=latin1 iso-8859-1 utf-8 utf8"`
}

// RecommendConfig holds recommendation system settings.
//
// Environment Variables:
//   - RECOMMEND_ALGORITHM: cosine, pearson or spearman (default: cosine)
//   - RECOMMEND_MIN_SHARED: minimum shared counterparts (default: 2)
//   - RECOMMEND_DEFAULT_K / RECOMMEND_MAX_K: neighbor limits (default: 20 / 200)
//   - RECOMMEND_DEFAULT_N / RECOMMEND_MAX_N: result limits (default: 10 / 100)
//   - RECOMMEND_CACHE_ENABLED, RECOMMEND_CACHE_TTL, RECOMMEND_CACHE_MAX_ENTRIES
//   - RECOMMEND_MAINTENANCE_INTERVAL: cache purge period (default: 1m)
type RecommendConfig struct {
	Algorithm string `koanf:"algorithm" validate:"required,similarity"`
	MinShared int    `koanf:"min_shared" validate:"min=0"`

	DefaultK int `koanf:"default_k" validate:"min=1"`
	MaxK     int `koanf:"max_k" validate:"gtefield=DefaultK"`
	DefaultN int `koanf:"default_n" validate:"min=1"`
	MaxN     int `koanf:"max_n" validate:"gtefield=DefaultN"`

	RatingMin float64 `koanf:"rating_min" validate:"gt=0"`
	RatingMax float64 `koanf:"rating_max" validate:"gtefield=RatingMin"`

	CacheEnabled    bool          `koanf:"cache_enabled"`
	CacheTTL        time.Duration `koanf:"cache_ttl"`
	CacheMaxEntries int           `koanf:"cache_max_entries"`

	MaintenanceInterval time.Duration `koanf:"maintenance_interval" validate:"gt=0"`
}

// SecurityConfig holds HTTP hardening settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"min=0"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// RecommendSettings converts the loaded settings into the recommendation
// system configuration.
func (c *Config) RecommendSettings() *recommend.Config {
	r := c.Recommend
	return &recommend.Config{
		Algorithm: r.Algorithm,
		MinShared: r.MinShared,
		Limits: recommend.LimitsConfig{
			DefaultK: r.DefaultK,
			MaxK:     r.MaxK,
			DefaultN: r.DefaultN,
			MaxN:     r.MaxN,
		},
		RatingScale: recommend.RatingScale{
			Min: r.RatingMin,
			Max: r.RatingMax,
		},
		Cache: recommend.CacheConfig{
			Enabled:    r.CacheEnabled,
			TTL:        r.CacheTTL,
			MaxEntries: r.CacheMaxEntries,
		},
	}
}

// LoggingSettings converts the loaded settings into a logging configuration.
func (c *Config) LoggingSettings() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Logging.Level
	cfg.Format = c.Logging.Format
	cfg.Caller = c.Logging.Caller
	return cfg
}

// String returns a one-line summary suitable for startup logs.
func (c *Config) String() string {
	return fmt.Sprintf("addr=%s dataset=%s algorithm=%s cache=%t",
		c.Server.Addr(), c.Dataset.Dir, c.Recommend.Algorithm, c.Recommend.CacheEnabled)
}
