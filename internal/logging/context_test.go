// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestGenerateIDs(t *testing.T) {
	t.Parallel()

	if id := GenerateCorrelationID(); len(id) != 8 {
		t.Errorf("correlation id %q has length %d, want 8", id, len(id))
	}

	id := GenerateRequestID()
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("request id %q is not a UUID: %v", id, err)
	}
	if id == GenerateRequestID() {
		t.Error("request ids should be unique")
	}
}

func TestContextIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if RequestIDFromContext(ctx) != "" || CorrelationIDFromContext(ctx) != "" {
		t.Fatal("empty context should carry no ids")
	}

	ctx = ContextWithRequestID(ctx, "req-1")
	ctx = ContextWithCorrelationID(ctx, "corr-1")

	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("RequestIDFromContext = %q, want req-1", got)
	}
	if got := CorrelationIDFromContext(ctx); got != "corr-1" {
		t.Errorf("CorrelationIDFromContext = %q, want corr-1", got)
	}
}

func TestCtx(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))
	ctx = ContextWithRequestID(ctx, "req-42")
	ctx = ContextWithCorrelationID(ctx, "abcd1234")

	Ctx(ctx).Info().Msg("rating classified")

	output := buf.String()
	for _, want := range []string{`"request_id":"req-42"`, `"correlation_id":"abcd1234"`, "rating classified"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output: %s", want, output)
		}
	}
}

func TestLoggerFromContext_Fallback(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Output: &buf})
	defer Init(DefaultConfig())

	logger := LoggerFromContext(context.Background())
	logger.Info().Msg("from global")
	if !strings.Contains(buf.String(), "from global") {
		t.Errorf("expected the global logger, got: %s", buf.String())
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Output: &buf})
	defer Init(DefaultConfig())

	logger := WithComponent("dataset")
	logger.Info().Msg("loaded")

	if !strings.Contains(buf.String(), `"component":"dataset"`) {
		t.Errorf("expected component field, got: %s", buf.String())
	}
}
