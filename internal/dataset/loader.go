// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package dataset

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/charmap"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// maxLineBytes bounds a single record. u.item lines are well under 1 KiB.
const maxLineBytes = 64 * 1024

// Loader reads MovieLens-100k files into a recommend.Graph.
type Loader struct {
	cfg    *config.DatasetConfig
	logger zerolog.Logger
}

// NewLoader creates a loader for the files described by cfg.
//
//nolint:gocritic // zerolog.Logger is passed by value by convention
func NewLoader(cfg *config.DatasetConfig, logger zerolog.Logger) *Loader {
	return &Loader{
		cfg:    cfg,
		logger: logger.With().Str("component", "dataset").Logger(),
	}
}

// Load populates g with genres, users, movies and ratings, in that order.
// Records that fail to parse or reference unknown entities are skipped.
func (l *Loader) Load(ctx context.Context, g *recommend.Graph) (*LoadStats, error) {
	stats := &LoadStats{
		Skipped:   make(map[string]int),
		StartTime: time.Now(),
	}
	defer func() {
		stats.EndTime = time.Now()
		metrics.RecordDatasetLoad(stats.Duration())
	}()

	l.logger.Info().Str("dir", l.cfg.Dir).Str("encoding", l.cfg.Encoding).Msg("Loading dataset")

	genres, err := l.loadGenres(ctx, stats)
	if err != nil {
		return stats, err
	}
	stats.Genres = len(genres)

	if err := l.loadUsers(ctx, g, stats); err != nil {
		return stats, err
	}
	if err := l.loadItems(ctx, g, genres, stats); err != nil {
		return stats, err
	}
	if err := l.loadRatings(ctx, g, stats); err != nil {
		return stats, err
	}

	gs := g.Stats()
	metrics.UpdateGraphGauges(gs.Users, gs.Movies, gs.Ratings, gs.Version)

	l.logger.Info().
		Int("users", stats.Users).
		Int("movies", stats.Movies).
		Int("ratings", stats.Ratings).
		Int("updated", stats.Updated).
		Int("skipped", stats.TotalSkipped()).
		Dur("duration", time.Since(stats.StartTime)).
		Msg("Dataset loaded")

	return stats, nil
}

// loadGenres returns the genre names indexed by flag position. A missing
// genre file falls back to the built-in MovieLens list.
func (l *Loader) loadGenres(ctx context.Context, stats *LoadStats) ([]string, error) {
	if l.cfg.Genres == "" {
		return defaultGenres, nil
	}
	path := l.path(l.cfg.Genres)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		l.logger.Warn().Str("path", path).Msg("Genre file not found, using built-in genre list")
		return defaultGenres, nil
	}

	var genres []string
	err := l.scan(ctx, path, FileGenres, splitPipe, stats, func(fields []string) error {
		name, index, err := parseGenre(fields)
		if err != nil {
			return err
		}
		for len(genres) <= index {
			genres = append(genres, "")
		}
		genres[index] = name
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(genres) == 0 {
		return defaultGenres, nil
	}
	return genres, nil
}

func (l *Loader) loadUsers(ctx context.Context, g *recommend.Graph, stats *LoadStats) error {
	return l.scan(ctx, l.path(l.cfg.Users), FileUsers, splitPipe, stats, func(fields []string) error {
		u, err := parseUser(fields)
		if err != nil {
			return err
		}
		if err := g.AddUser(u); err != nil {
			return err
		}
		stats.Users++
		return nil
	})
}

func (l *Loader) loadItems(ctx context.Context, g *recommend.Graph, genres []string, stats *LoadStats) error {
	return l.scan(ctx, l.path(l.cfg.Items), FileItems, splitPipe, stats, func(fields []string) error {
		m, err := parseItem(fields, genres)
		if err != nil {
			return err
		}
		if err := g.AddMovie(m); err != nil {
			return err
		}
		stats.Movies++
		return nil
	})
}

func (l *Loader) loadRatings(ctx context.Context, g *recommend.Graph, stats *LoadStats) error {
	return l.scan(ctx, l.path(l.cfg.Ratings), FileRatings, strings.Fields, stats, func(fields []string) error {
		rec, err := parseRating(fields)
		if err != nil {
			return err
		}
		created, err := g.ClassifyAt(rec.UserID, rec.MovieID, rec.Rate, rec.RatedAt)
		if err != nil {
			return err
		}
		if created {
			stats.Ratings++
		} else {
			stats.Updated++
		}
		return nil
	})
}

// scan reads path line by line, splitting each non-blank line with split and
// handing the fields to visit. An error from visit skips that record only.
// Open, read and context errors abort the scan.
func (l *Loader) scan(
	ctx context.Context,
	path, file string,
	split func(string) []string,
	stats *LoadStats,
	visit func(fields []string) error,
) error {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return fmt.Errorf("open %s file: %w", file, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			l.logger.Warn().Err(closeErr).Str("path", path).Msg("Error closing dataset file")
		}
	}()

	scanner := bufio.NewScanner(l.decode(f))
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("load %s: %w", file, err)
			}
		}

		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := visit(split(line)); err != nil {
			stats.Skipped[file]++
			metrics.RecordDatasetSkip(file)
			l.logger.Debug().Err(err).Str("file", file).Int("line", lineNo).Msg("Skipping record")
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s file: %w", file, err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("load %s: %w", file, err)
	}

	if n := stats.Skipped[file]; n > 0 {
		l.logger.Warn().Str("file", file).Int("skipped", n).Msg("Skipped malformed records")
	}
	return nil
}

// decode wraps r with an ISO-8859-1 decoder unless the dataset is UTF-8.
func (l *Loader) decode(r io.Reader) io.Reader {
	switch strings.ToLower(l.cfg.Encoding) {
	case "utf-8", "utf8":
		return r
	default:
		return charmap.ISO8859_1.NewDecoder().Reader(r)
	}
}

func (l *Loader) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(l.cfg.Dir, name)
}

func splitPipe(line string) []string {
	return strings.Split(line, "|")
}

// LoadGraph builds a new graph over scale and loads the dataset into it.
//
//nolint:gocritic // zerolog.Logger is passed by value by convention
func LoadGraph(ctx context.Context, cfg *config.DatasetConfig, scale recommend.RatingScale, logger zerolog.Logger) (*recommend.Graph, *LoadStats, error) {
	g := recommend.NewGraph(scale)
	stats, err := NewLoader(cfg, logger).Load(ctx, g)
	if err != nil {
		return nil, stats, err
	}
	return g, stats, nil
}
