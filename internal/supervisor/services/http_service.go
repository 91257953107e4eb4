// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// DefaultShutdownTimeout bounds connection draining when none is configured.
const DefaultShutdownTimeout = 10 * time.Second

// HTTPServer is the part of *http.Server the service drives.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService runs the recommendation API under the supervisor.
//
// When draining exceeds the shutdown timeout and the server also implements
// io.Closer (as *http.Server does), remaining connections are closed.
//
//	server := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
//	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger))
type HTTPServerService struct {
	server          HTTPServer
	addr            string
	shutdownTimeout time.Duration
	logger          zerolog.Logger
}

// NewHTTPServerService wraps server. A non-positive shutdownTimeout selects
// DefaultShutdownTimeout.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func NewHTTPServerService(server HTTPServer, shutdownTimeout time.Duration, logger zerolog.Logger) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = DefaultShutdownTimeout
	}
	var addr string
	if s, ok := server.(*http.Server); ok {
		addr = s.Addr
	}
	return &HTTPServerService{
		server:          server,
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
		logger:          logger.With().Str("service", "http-server").Logger(),
	}
}

// Serve implements suture.Service. It returns ctx.Err() after a clean
// shutdown and a wrapped error when listening or draining fails.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	h.logger.Info().Str("addr", h.addr).Msg("HTTP server listening")

	select {
	case err, ok := <-errCh:
		if ok && err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil

	case <-ctx.Done():
		return h.drain(ctx, errCh)
	}
}

// drain shuts the server down with a deadline of its own, since ctx is
// already done.
func (h *HTTPServerService) drain(ctx context.Context, errCh <-chan error) error {
	start := time.Now()
	h.logger.Info().Dur("timeout", h.shutdownTimeout).Msg("draining HTTP connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(shutdownCtx); err != nil {
		if closer, ok := h.server.(io.Closer); ok && errors.Is(err, context.DeadlineExceeded) {
			h.logger.Warn().Dur("timeout", h.shutdownTimeout).Msg("drain timed out, closing connections")
			if cerr := closer.Close(); cerr != nil {
				h.logger.Error().Err(cerr).Msg("closing HTTP server")
			}
		}
		return fmt.Errorf("http server shutdown failed: %w", err)
	}

	<-errCh
	h.logger.Info().Dur("took", time.Since(start)).Msg("HTTP server stopped")
	return ctx.Err()
}

// String names the service in suture events.
func (h *HTTPServerService) String() string {
	return "http-server"
}
