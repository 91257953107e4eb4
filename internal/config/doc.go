// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package config loads Reelmatch configuration with Koanf v2.
//
// Configuration is layered, later layers overriding earlier ones:
//
//  1. Built-in defaults (defaultConfig)
//  2. Optional YAML file: $CONFIG_PATH, then config.yaml / config.yml,
//     then /etc/reelmatch/config.yaml
//  3. Environment variables, through an explicit mapping table so that
//     unrelated variables never leak into the configuration
//
// The result is validated with go-playground/validator struct tags and a
// few cross-field checks before it is returned.
//
// Example config.yaml:
//
//	server:
//	  port: 8080
//	dataset:
//	  dir: /data/ml-100k
//	recommend:
//	  algorithm: pearson
//	  default_k: 30
//	  cache_ttl: 10m
package config
