// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// chdirTemp moves into an empty directory so DefaultConfigPaths never match.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv(ConfigPathEnvVar, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := defaultConfig()
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, want)
	}
	if got := cfg.Server.Addr(); got != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q, want 0.0.0.0:8080", got)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "custom.yaml")
	content := `
server:
  port: 9090
dataset:
  dir: /data/ml-100k
recommend:
  algorithm: pearson
  default_k: 30
  cache_ttl: 10m
security:
  cors_origins:
    - https://a.example
    - https://b.example
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Dataset.Dir != "/data/ml-100k" {
		t.Errorf("Dataset.Dir = %q", cfg.Dataset.Dir)
	}
	if cfg.Recommend.Algorithm != "pearson" {
		t.Errorf("Recommend.Algorithm = %q, want pearson", cfg.Recommend.Algorithm)
	}
	if cfg.Recommend.DefaultK != 30 {
		t.Errorf("Recommend.DefaultK = %d, want 30", cfg.Recommend.DefaultK)
	}
	if cfg.Recommend.CacheTTL != 10*time.Minute {
		t.Errorf("Recommend.CacheTTL = %v, want 10m", cfg.Recommend.CacheTTL)
	}
	wantOrigins := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, wantOrigins) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, wantOrigins)
	}
	// Untouched keys keep their defaults.
	if cfg.Recommend.MaxK != 200 {
		t.Errorf("Recommend.MaxK = %d, want default 200", cfg.Recommend.MaxK)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("recommend:\n  algorithm: pearson\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("RECOMMEND_ALGORITHM", "spearman")
	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RECOMMEND_CACHE_TTL", "90s")
	t.Setenv("CORS_ORIGINS", "https://x.example, https://y.example ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Recommend.Algorithm != "spearman" {
		t.Errorf("Algorithm = %q, want spearman", cfg.Recommend.Algorithm)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Recommend.CacheTTL != 90*time.Second {
		t.Errorf("CacheTTL = %v, want 90s", cfg.Recommend.CacheTTL)
	}
	wantOrigins := []string{"https://x.example", "https://y.example"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, wantOrigins) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, wantOrigins)
	}
}

func TestLoad_UnmappedEnvIgnored(t *testing.T) {
	chdirTemp(t)
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("SERVER_PORT", "1234")
	t.Setenv("PATH_LIKE_THING", "x")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want default 8080", cfg.Server.Port)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "unknown algorithm",
			env:     map[string]string{"RECOMMEND_ALGORITHM": "jaccard"},
			wantErr: "algorithm",
		},
		{
			name:    "port out of range",
			env:     map[string]string{"HTTP_PORT": "70000"},
			wantErr: "port",
		},
		{
			name:    "max k below default",
			env:     map[string]string{"RECOMMEND_MAX_K": "5"},
			wantErr: "max_k",
		},
		{
			name:    "bad log level",
			env:     map[string]string{"LOG_LEVEL": "verbose"},
			wantErr: "level",
		},
		{
			name:    "cache enabled without ttl",
			env:     map[string]string{"RECOMMEND_CACHE_TTL": "0s"},
			wantErr: "cache_ttl",
		},
		{
			name:    "rate limit without requests",
			env:     map[string]string{"RATE_LIMIT_REQS": "0"},
			wantErr: "rate_limit_reqs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirTemp(t)
			t.Setenv(ConfigPathEnvVar, "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			if err == nil {
				t.Fatal("Load() error = nil, want validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_DisabledFeaturesSkipCrossChecks(t *testing.T) {
	chdirTemp(t)
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("RECOMMEND_CACHE_ENABLED", "false")
	t.Setenv("RECOMMEND_CACHE_TTL", "0s")
	t.Setenv("RATE_LIMIT_DISABLED", "true")
	t.Setenv("RATE_LIMIT_REQS", "0")

	if _, err := Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	chdirTemp(t)
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("LoadFile() error = nil for missing file")
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv(ConfigPathEnvVar, "")

	if got := findConfigFile(); got != "" {
		t.Errorf("findConfigFile() = %q in empty dir, want empty", got)
	}

	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}
	if got := findConfigFile(); got != "config.yml" {
		t.Errorf("findConfigFile() = %q, want config.yml", got)
	}

	explicit := filepath.Join(dir, "explicit.yaml")
	if err := os.WriteFile(explicit, []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, explicit)
	if got := findConfigFile(); got != explicit {
		t.Errorf("findConfigFile() = %q, want %q", got, explicit)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"HTTP_PORT", "server.port"},
		{"LOG_FORMAT", "logging.format"},
		{"DATASET_DIR", "dataset.dir"},
		{"RECOMMEND_MAX_N", "recommend.max_n"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"HOME", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := envTransformFunc(tt.key); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
