// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package logging provides centralized zerolog-based structured logging for Reelmatch.
//
// # Overview
//
// The package provides:
//   - A global zerolog logger configured once by Init
//   - JSON output for production, console output for development
//   - Request and correlation IDs carried through context.Context
//   - An slog.Handler adapter so suture's event hook logs through zerolog
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int("users", 943).Msg("dataset loaded")
//	logging.Ctx(ctx).Debug().Int("user_id", id).Msg("recommending")
//
// Components take a zerolog.Logger and add their own component field:
//
//	logger := logging.WithComponent("api")
//
// # Configuration
//
// Environment Variables (mapped by the config package):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller info (default: false)
package logging
