// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/reelmatch/config.yaml",
	"/etc/reelmatch/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Dataset: DatasetConfig{
			Dir:      "data/ml-100k",
			Users:    "u.user",
			Items:    "u.item",
			Genres:   "u.genre",
			Ratings:  "u.data",
			Encoding: "latin1",
		},
		Recommend: RecommendConfig{
			Algorithm:           "cosine",
			MinShared:           2,
			DefaultK:            20,
			MaxK:                200,
			DefaultN:            10,
			MaxN:                100,
			RatingMin:           1,
			RatingMax:           5,
			CacheEnabled:        true,
			CacheTTL:            5 * time.Minute,
			CacheMaxEntries:     10000,
			MaintenanceInterval: time.Minute,
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// environment variables, in increasing order of precedence, and validates it.
func Load() (*Config, error) {
	return load(findConfigFile())
}

// LoadFile is Load with an explicit config file path. An empty path skips
// the file layer.
func LoadFile(path string) (*Config, error) {
	return load(path)
}

func load(configPath string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: config file (optional)
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables (highest priority)
	// RECOMMEND_ALGORITHM -> recommend.algorithm
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars always arrive as strings; YAML lists are left untouched.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lowercased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_host":             "server.host",
	"http_port":             "server.port",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_idle_timeout":     "server.idle_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Dataset
	"dataset_dir":      "dataset.dir",
	"dataset_users":    "dataset.users",
	"dataset_items":    "dataset.items",
	"dataset_genres":   "dataset.genres",
	"dataset_ratings":  "dataset.ratings",
	"dataset_encoding": "dataset.encoding",

	// Recommendation system
	"recommend_algorithm":            "recommend.algorithm",
	"recommend_min_shared":           "recommend.min_shared",
	"recommend_default_k":            "recommend.default_k",
	"recommend_max_k":                "recommend.max_k",
	"recommend_default_n":            "recommend.default_n",
	"recommend_max_n":                "recommend.max_n",
	"recommend_rating_min":           "recommend.rating_min",
	"recommend_rating_max":           "recommend.rating_max",
	"recommend_cache_enabled":        "recommend.cache_enabled",
	"recommend_cache_ttl":            "recommend.cache_ttl",
	"recommend_cache_max_entries":    "recommend.cache_max_entries",
	"recommend_maintenance_interval": "recommend.maintenance_interval",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_reqs":     "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"rate_limit_disabled": "security.rate_limit_disabled",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - DATASET_DIR -> dataset.dir
//   - RECOMMEND_CACHE_TTL -> recommend.cache_ttl
//
// Unmapped variables return an empty string and are skipped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
