// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/dataset"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// initRecommend loads the dataset and builds the recommendation system.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*recommend.System, error) {
	rcfg := cfg.RecommendSettings()

	logger.Info().
		Str("algorithm", rcfg.Algorithm).
		Int("min_shared", rcfg.MinShared).
		Int("default_k", rcfg.Limits.DefaultK).
		Int("default_n", rcfg.Limits.DefaultN).
		Bool("cache_enabled", rcfg.Cache.Enabled).
		Msg("initializing recommendation system")

	g, stats, err := dataset.LoadGraph(ctx, &cfg.Dataset, rcfg.RatingScale, logging.Logger())
	if err != nil {
		return nil, fmt.Errorf("load dataset from %s: %w", cfg.Dataset.Dir, err)
	}
	logger.Info().
		Int("users", stats.Users).
		Int("movies", stats.Movies).
		Int("ratings", stats.Ratings).
		Int("skipped", stats.TotalSkipped()).
		Dur("duration", stats.Duration()).
		Msg("dataset ready")

	system, err := recommend.NewSystem(g, rcfg, logging.Logger())
	if err != nil {
		return nil, fmt.Errorf("create recommendation system: %w", err)
	}
	return system, nil
}
