// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// DefaultMaintenanceInterval is used when a non-positive interval is given.
const DefaultMaintenanceInterval = time.Minute

// Maintainer is the part of recommend.System the maintenance loop drives.
type Maintainer interface {
	// PurgeCache drops expired cached responses and returns how many were removed.
	PurgeCache() int

	// Stats reports graph and cache sizes.
	Stats() recommend.Stats
}

// MaintenanceService periodically purges expired recommendation responses
// and refreshes the graph and cache gauges.
type MaintenanceService struct {
	system   Maintainer
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewMaintenanceService creates a maintenance service ticking every interval.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewMaintenanceService(system Maintainer, interval time.Duration, logger zerolog.Logger) *MaintenanceService {
	if interval <= 0 {
		interval = DefaultMaintenanceInterval
	}
	return &MaintenanceService{
		system:   system,
		interval: interval,
		logger:   logger.With().Str("service", "maintenance").Logger(),
		name:     "maintenance-service",
	}
}

// Serve implements suture.Service. Gauges are refreshed once on start and
// then on every tick until ctx is canceled.
func (s *MaintenanceService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("maintenance service starting")
	s.RunOnce()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("maintenance service shutting down")
			return ctx.Err()

		case <-ticker.C:
			s.RunOnce()
		}
	}
}

// RunOnce performs a single maintenance pass and returns the number of
// purged cache entries.
func (s *MaintenanceService) RunOnce() int {
	purged := s.system.PurgeCache()
	st := s.system.Stats()

	entries := 0
	if st.Cache != nil {
		entries = st.Cache.Size
	}
	metrics.UpdateCacheGauges(entries, purged)
	metrics.UpdateGraphGauges(st.Graph.Users, st.Graph.Movies, st.Graph.Ratings, st.Graph.Version)

	s.logger.Debug().
		Int("purged", purged).
		Int("cache_entries", entries).
		Int("ratings", st.Graph.Ratings).
		Uint64("graph_version", st.Graph.Version).
		Msg("maintenance pass complete")
	return purged
}

// String returns the service name for logging.
func (s *MaintenanceService) String() string {
	return s.name
}
