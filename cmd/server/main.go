// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package main is the entry point for the Reelmatch server.
//
// Reelmatch serves collaborative-filtering movie recommendations over HTTP.
// The server initializes components in the following order:
//
//  1. Configuration: defaults, config.yaml, environment (Koanf v2)
//  2. Logging: zerolog with the configured level and format
//  3. Dataset: MovieLens-100k files loaded into the rating graph
//  4. Recommendation system: similarity, ranking and the response cache
//  5. Supervisor tree: HTTP server and cache maintenance services
//
// # Example Usage
//
//	export DATASET_DIR=/data/ml-100k
//	export RECOMMEND_ALGORITHM=pearson
//	./reelmatch
//
//	curl localhost:8080/api/v1/users/1/recommendations?k=30&n=5
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the supervisor tree. The HTTP server stops
// accepting connections and drains in-flight requests within
// HTTP_SHUTDOWN_TIMEOUT.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/reelmatch/internal/api"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/supervisor"
	"github.com/tomtom215/reelmatch/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		// config not yet available, the default logger is used
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.LoggingSettings())
	logging.Info().Str("version", version).Str("config", cfg.String()).Msg("Starting Reelmatch")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	system, err := initRecommend(ctx, cfg, logging.WithComponent("startup"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize recommendation system")
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		FailureThreshold: 5,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	handler := api.NewHandler(system, version)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security)))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	tree.AddMaintenanceService(services.NewMaintenanceService(
		system,
		cfg.Recommend.MaintenanceInterval,
		logging.WithComponent("maintenance"),
	))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.WithComponent("http")))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Reelmatch stopped")
}
