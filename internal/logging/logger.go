// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package logging

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum level: trace, debug, info, warn, error or disabled.
	Level string

	// Format is json or console.
	Format string

	// Caller adds file:line to every entry.
	Caller bool

	// Service is attached to every entry as the "service" field when set.
	Service string

	// Output defaults to os.Stderr.
	Output io.Writer
}

// DefaultConfig returns JSON logging at info level to stderr.
func DefaultConfig() Config {
	return Config{
		Level:   "info",
		Format:  "json",
		Service: "reelmatch",
		Output:  os.Stderr,
	}
}

var global atomic.Pointer[zerolog.Logger]

//nolint:gochecknoinits // logging must work before Init is called
func init() {
	Init(DefaultConfig())
}

// Init builds the global logger from cfg. Later calls replace it, so tests
// may point Output at a buffer and restore DefaultConfig afterwards.
func Init(cfg Config) {
	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFieldName = "time"

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	logCtx := zerolog.New(out).With().Timestamp()
	if cfg.Caller {
		logCtx = logCtx.Caller()
	}
	if cfg.Service != "" {
		logCtx = logCtx.Str("service", cfg.Service)
	}
	logger := logCtx.Logger()
	global.Store(&logger)
}

// parseLevel maps a level name to zerolog. Unknown names select info.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Logger returns the global logger.
func Logger() zerolog.Logger {
	return *global.Load()
}

// With creates a child context of the global logger.
func With() zerolog.Context {
	return global.Load().With()
}

// Info starts a message at info level on the global logger.
//
//	logging.Info().Str("addr", addr).Msg("HTTP server service added")
func Info() *zerolog.Event { return global.Load().Info() }

// Warn starts a message at warn level on the global logger.
func Warn() *zerolog.Event { return global.Load().Warn() }

// Error starts a message at error level on the global logger.
func Error() *zerolog.Event { return global.Load().Error() }

// Fatal starts a message that exits the process with status 1 once sent.
func Fatal() *zerolog.Event { return global.Load().Fatal() }

// NewTestLogger creates a timestamped logger writing to w.
func NewTestLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}
