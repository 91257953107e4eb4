// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package services

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

// mockHTTPServer is a test double for the HTTPServer interface.
type mockHTTPServer struct {
	listenErr     error
	shutdownErr   error
	listenCount   atomic.Int32
	shutdownCount atomic.Int32
	closeCount    atomic.Int32
	started       chan struct{}
	stopCh        chan struct{}
}

func newMockHTTPServer() *mockHTTPServer {
	return &mockHTTPServer{
		started: make(chan struct{}, 1),
		stopCh:  make(chan struct{}),
	}
}

func (m *mockHTTPServer) ListenAndServe() error {
	m.listenCount.Add(1)
	select {
	case m.started <- struct{}{}:
	default:
	}
	if m.listenErr != nil {
		return m.listenErr
	}
	<-m.stopCh
	return http.ErrServerClosed
}

func (m *mockHTTPServer) Shutdown(context.Context) error {
	if m.shutdownCount.Add(1) == 1 {
		close(m.stopCh)
	}
	return m.shutdownErr
}

func (m *mockHTTPServer) Close() error {
	m.closeCount.Add(1)
	return nil
}

var _ suture.Service = (*HTTPServerService)(nil)

func TestHTTPServerService_GracefulShutdown(t *testing.T) {
	server := newMockHTTPServer()
	svc := NewHTTPServerService(server, time.Second, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	select {
	case <-server.started:
	case <-time.After(time.Second):
		t.Fatal("ListenAndServe not called")
	}
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
	if server.shutdownCount.Load() != 1 {
		t.Errorf("Shutdown called %d times, want 1", server.shutdownCount.Load())
	}
}

func TestHTTPServerService_ListenError(t *testing.T) {
	server := newMockHTTPServer()
	server.listenErr = errors.New("address already in use")
	svc := NewHTTPServerService(server, time.Second, zerolog.Nop())

	err := svc.Serve(context.Background())
	if err == nil || !errors.Is(err, server.listenErr) {
		t.Errorf("Serve() = %v, want wrapped listen error", err)
	}
}

func TestHTTPServerService_ShutdownError(t *testing.T) {
	server := newMockHTTPServer()
	server.shutdownErr = errors.New("connections did not drain")
	svc := NewHTTPServerService(server, 0, zerolog.Nop())

	if svc.shutdownTimeout != DefaultShutdownTimeout {
		t.Errorf("default shutdownTimeout = %v, want 10s", svc.shutdownTimeout)
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()
	<-server.started
	cancel()

	if err := <-errCh; !errors.Is(err, server.shutdownErr) {
		t.Errorf("Serve() = %v, want wrapped shutdown error", err)
	}
}

func TestHTTPServerService_DrainTimeoutClosesConnections(t *testing.T) {
	server := newMockHTTPServer()
	server.shutdownErr = context.DeadlineExceeded
	svc := NewHTTPServerService(server, time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()
	<-server.started
	cancel()

	if err := <-errCh; !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v, want wrapped deadline error", err)
	}
	if got := server.closeCount.Load(); got != 1 {
		t.Errorf("Close called %d times, want 1", got)
	}
}

func TestHTTPServerService_ShutdownErrorDoesNotClose(t *testing.T) {
	server := newMockHTTPServer()
	server.shutdownErr = errors.New("listener already closed")
	svc := NewHTTPServerService(server, time.Second, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()
	<-server.started
	cancel()
	<-errCh

	if got := server.closeCount.Load(); got != 0 {
		t.Errorf("Close called %d times, want 0", got)
	}
}

func TestHTTPServerService_RealServer(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("cannot listen: %v", err)
	}
	addr := ln.Addr().String()
	if err := ln.Close(); err != nil {
		t.Fatal(err)
	}

	server := &http.Server{
		Addr:              addr,
		ReadHeaderTimeout: time.Second,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}),
	}
	svc := NewHTTPServerService(server, time.Second, zerolog.Nop())
	if svc.String() != "http-server" {
		t.Errorf("String() = %q", svc.String())
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	var resp *http.Response
	for i := 0; i < 50; i++ {
		resp, err = http.Get("http://" + addr + "/")
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("server never became reachable: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, want 204", resp.StatusCode)
	}

	cancel()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
}
