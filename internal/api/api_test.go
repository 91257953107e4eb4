// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// newTestSystem builds the graph used across handler tests:
//
//	user 1: movie 10=5, 11=3
//	user 2: movie 10=4, 11=3, 12=5
//	user 3: movie 10=1, 11=5, 13=2
//	user 4: movie 10=5
//	user 5: no ratings
func newTestSystem(t *testing.T) *recommend.System {
	t.Helper()

	cfg := recommend.DefaultConfig()
	g := recommend.NewGraph(cfg.RatingScale)
	for id := 1; id <= 5; id++ {
		if err := g.AddUser(recommend.NewUser(id, 20+id, "M", "engineer", fmt.Sprintf("%05d", id))); err != nil {
			t.Fatal(err)
		}
	}
	for id := 10; id <= 14; id++ {
		if err := g.AddMovie(recommend.NewMovie(id, fmt.Sprintf("Movie %d", id), time.Time{})); err != nil {
			t.Fatal(err)
		}
	}
	for _, r := range []struct {
		user, movie int
		rate        float64
	}{
		{1, 10, 5}, {1, 11, 3},
		{2, 10, 4}, {2, 11, 3}, {2, 12, 5},
		{3, 10, 1}, {3, 11, 5}, {3, 13, 2},
		{4, 10, 5},
	} {
		if _, err := g.Classify(r.user, r.movie, r.rate); err != nil {
			t.Fatal(err)
		}
	}

	sys, err := recommend.NewSystem(g, cfg, logging.NewTestLogger(io.Discard))
	if err != nil {
		t.Fatal(err)
	}
	return sys
}

func newTestServer(t *testing.T, sys *recommend.System, mwCfg *ChiMiddlewareConfig) http.Handler {
	t.Helper()
	if mwCfg == nil {
		mwCfg = DefaultChiMiddlewareConfig()
		mwCfg.RateLimitDisabled = true
	}
	return NewRouter(NewHandler(sys, "test"), NewChiMiddleware(mwCfg)).SetupChi()
}

// envelope mirrors APIResponse with raw data for per-test decoding.
type envelope struct {
	Status   string          `json:"status"`
	Data     json.RawMessage `json:"data"`
	Metadata Metadata        `json:"metadata"`
	Error    *APIError       `json:"error"`
}

func do(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %s %s: %v (body %q)", method, target, err, rec.Body.String())
		}
	}
	return rec, env
}

func TestUserRecommendations(t *testing.T) {
	h := newTestServer(t, newTestSystem(t), nil)

	rec, env := do(t, h, http.MethodGet, "/api/v1/users/1/recommendations?k=10&n=10", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if env.Status != StatusSuccess {
		t.Errorf("status = %q", env.Status)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header missing")
	}

	var resp recommend.Response
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatal(err)
	}
	if got := recommendedIDs(resp.Items); got != "12,13" {
		t.Errorf("recommended movies = %s, want 12,13", got)
	}
	if len(resp.Neighbors) != 2 || resp.Neighbors[0].ID != 2 || resp.Neighbors[1].ID != 3 {
		t.Errorf("neighbors = %+v, want users 2 then 3", resp.Neighbors)
	}
	if resp.Metadata.Algorithm != "cosine" || resp.Metadata.Mode != "user" {
		t.Errorf("metadata = %+v", resp.Metadata)
	}
	if env.Metadata.Cached {
		t.Error("first request reported cached")
	}

	// Same request again is served from the cache.
	_, env = do(t, h, http.MethodGet, "/api/v1/users/1/recommendations?k=10&n=10", "")
	if !env.Metadata.Cached {
		t.Error("second request not served from cache")
	}
}

func TestMovieRecommendations(t *testing.T) {
	h := newTestServer(t, newTestSystem(t), nil)

	rec, env := do(t, h, http.MethodGet, "/api/v1/movies/10/recommendations", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp recommend.Response
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Items) != 1 || resp.Items[0].MovieID != 11 {
		t.Fatalf("items = %+v, want movie 11", resp.Items)
	}
	if diff := resp.Items[0].Score - 11.0/3.0; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("score = %v, want 11/3", resp.Items[0].Score)
	}
}

func TestRecommendations_Errors(t *testing.T) {
	h := newTestServer(t, newTestSystem(t), nil)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantCode   string
	}{
		{"non-numeric id", "/api/v1/users/abc/recommendations", http.StatusBadRequest, ErrCodeInvalidID},
		{"zero id", "/api/v1/users/0/recommendations", http.StatusBadRequest, ErrCodeInvalidID},
		{"unknown user", "/api/v1/users/404/recommendations", http.StatusNotFound, ErrCodeNotFound},
		{"unknown movie", "/api/v1/movies/404/recommendations", http.StatusNotFound, ErrCodeNotFound},
		{"malformed k", "/api/v1/users/1/recommendations?k=ten", http.StatusBadRequest, ErrCodeBadRequest},
		{"negative n", "/api/v1/users/1/recommendations?n=-1", http.StatusBadRequest, "VALIDATION_ERROR"},
		{"unknown algorithm", "/api/v1/users/1/recommendations?algorithm=jaccard", http.StatusBadRequest, "VALIDATION_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, h, http.MethodGet, tt.target, "")
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if env.Status != StatusError || env.Error == nil {
				t.Fatalf("envelope = %+v, want error", env)
			}
			if env.Error.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", env.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestUserRecommendations_EmptyUser(t *testing.T) {
	h := newTestServer(t, newTestSystem(t), nil)

	rec, env := do(t, h, http.MethodGet, "/api/v1/users/5/recommendations", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp recommend.Response
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Items) != 0 {
		t.Errorf("items = %+v, want none", resp.Items)
	}
}

func TestMean(t *testing.T) {
	h := newTestServer(t, newTestSystem(t), nil)

	tests := []struct {
		name        string
		target      string
		wantStatus  int
		wantMean    float64
		wantRatings int
	}{
		{"user mean", "/api/v1/users/1/mean", http.StatusOK, 4, 2},
		{"movie mean", "/api/v1/movies/11/mean", http.StatusOK, 11.0 / 3.0, 3},
		{"user without ratings", "/api/v1/users/5/mean", http.StatusUnprocessableEntity, 0, 0},
		{"movie without ratings", "/api/v1/movies/14/mean", http.StatusUnprocessableEntity, 0, 0},
		{"unknown movie", "/api/v1/movies/99/mean", http.StatusNotFound, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, h, http.MethodGet, tt.target, "")
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			var got MeanResult
			if err := json.Unmarshal(env.Data, &got); err != nil {
				t.Fatal(err)
			}
			if diff := got.Mean - tt.wantMean; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("mean = %v, want %v", got.Mean, tt.wantMean)
			}
			if got.Ratings != tt.wantRatings {
				t.Errorf("ratings = %d, want %d", got.Ratings, tt.wantRatings)
			}
		})
	}
}

func TestSimilarity(t *testing.T) {
	h := newTestServer(t, newTestSystem(t), nil)

	rec, env := do(t, h, http.MethodGet, "/api/v1/similarity?kind=user&a=1&b=2&algorithm=Cosine", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var got SimilarityResult
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatal(err)
	}
	if got.Algorithm != "cosine" || got.Kind != "user" {
		t.Errorf("result = %+v", got)
	}
	if got.Similarity <= 0 || got.Similarity > 1 {
		t.Errorf("similarity = %v, want in (0, 1]", got.Similarity)
	}

	tests := []struct {
		name       string
		target     string
		wantStatus int
	}{
		{"missing kind", "/api/v1/similarity?a=1&b=2", http.StatusBadRequest},
		{"bad kind", "/api/v1/similarity?kind=genre&a=1&b=2", http.StatusBadRequest},
		{"missing b", "/api/v1/similarity?kind=user&a=1", http.StatusBadRequest},
		{"malformed a", "/api/v1/similarity?kind=user&a=x&b=2", http.StatusBadRequest},
		{"unknown entity", "/api/v1/similarity?kind=movie&a=10&b=99", http.StatusNotFound},
		{"empty ratings", "/api/v1/similarity?kind=user&a=1&b=5", http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := do(t, h, http.MethodGet, tt.target, "")
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestClassify(t *testing.T) {
	sys := newTestSystem(t)
	h := newTestServer(t, sys, nil)
	versionBefore := sys.Graph().Version()

	rec, env := do(t, h, http.MethodPost, "/api/v1/ratings", `{"user_id":5,"movie_id":14,"rate":4}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var got RatingResult
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatal(err)
	}
	if !got.Created || got.GraphVersion <= versionBefore {
		t.Errorf("result = %+v, version before %d", got, versionBefore)
	}

	// Rating the same pair again updates in place.
	rec, env = do(t, h, http.MethodPost, "/api/v1/ratings", `{"user_id":5,"movie_id":14,"rate":2}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatal(err)
	}
	if got.Created {
		t.Error("update reported as created")
	}
	mean, err := sys.MeanRating(recommend.KindMovie, 14)
	if err != nil || mean != 2 {
		t.Errorf("movie 14 mean = %v, %v; want 2", mean, err)
	}
}

func TestClassify_Errors(t *testing.T) {
	h := newTestServer(t, newTestSystem(t), nil)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"empty body", "", http.StatusBadRequest, ErrCodeBadRequest},
		{"malformed json", `{"user_id":`, http.StatusBadRequest, ErrCodeBadRequest},
		{"unknown field", `{"user_id":1,"movie_id":10,"rate":3,"extra":true}`, http.StatusBadRequest, ErrCodeBadRequest},
		{"missing movie", `{"user_id":1,"rate":3}`, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"zero rate", `{"user_id":1,"movie_id":10,"rate":0}`, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"rate above scale", `{"user_id":1,"movie_id":10,"rate":9}`, http.StatusBadRequest, ErrCodeBadRequest},
		{"unknown user", `{"user_id":99,"movie_id":10,"rate":3}`, http.StatusNotFound, ErrCodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, h, http.MethodPost, "/api/v1/ratings", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if env.Error == nil || env.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %q", env.Error, tt.wantCode)
			}
		})
	}
}

func TestClassify_InvalidatesCachedRecommendations(t *testing.T) {
	h := newTestServer(t, newTestSystem(t), nil)

	do(t, h, http.MethodGet, "/api/v1/users/1/recommendations", "")
	do(t, h, http.MethodPost, "/api/v1/ratings", `{"user_id":1,"movie_id":12,"rate":1}`)

	_, env := do(t, h, http.MethodGet, "/api/v1/users/1/recommendations", "")
	if env.Metadata.Cached {
		t.Fatal("recommendations served from cache after a rating changed the graph")
	}
	var resp recommend.Response
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatal(err)
	}
	for _, item := range resp.Items {
		if item.MovieID == 12 {
			t.Error("movie 12 still recommended after user 1 rated it")
		}
	}
}

func TestHealth(t *testing.T) {
	h := newTestServer(t, newTestSystem(t), nil)

	rec, env := do(t, h, http.MethodGet, "/api/v1/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var hs HealthStatus
	if err := json.Unmarshal(env.Data, &hs); err != nil {
		t.Fatal(err)
	}
	if hs.Status != "healthy" || hs.Version != "test" {
		t.Errorf("health = %+v", hs)
	}
	if hs.Graph.Users != 5 || hs.Graph.Movies != 5 || hs.Graph.Ratings != 9 {
		t.Errorf("graph = %+v", hs.Graph)
	}
	if hs.Cache == nil {
		t.Error("cache stats missing")
	}

	if rec, _ := do(t, h, http.MethodGet, "/api/v1/health/live", ""); rec.Code != http.StatusOK {
		t.Errorf("live status = %d", rec.Code)
	}
	if rec, _ := do(t, h, http.MethodGet, "/api/v1/health/ready", ""); rec.Code != http.StatusOK {
		t.Errorf("ready status = %d", rec.Code)
	}
}

func TestHealth_EmptyGraph(t *testing.T) {
	sys, err := recommend.NewSystem(recommend.NewGraph(recommend.RatingScale{Min: 1, Max: 5}), nil, logging.NewTestLogger(io.Discard))
	if err != nil {
		t.Fatal(err)
	}
	h := newTestServer(t, sys, nil)

	rec, env := do(t, h, http.MethodGet, "/api/v1/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var hs HealthStatus
	if err := json.Unmarshal(env.Data, &hs); err != nil {
		t.Fatal(err)
	}
	if hs.Status != "degraded" {
		t.Errorf("status = %q, want degraded", hs.Status)
	}

	rec, env = do(t, h, http.MethodGet, "/api/v1/health/ready", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("ready status = %d, want 503", rec.Code)
	}
	if env.Error == nil || env.Error.Code != ErrCodeNotReady {
		t.Errorf("error = %+v", env.Error)
	}
}

func TestAlgorithmsAndStats(t *testing.T) {
	h := newTestServer(t, newTestSystem(t), nil)

	_, env := do(t, h, http.MethodGet, "/api/v1/algorithms", "")
	var infos []AlgorithmInfo
	if err := json.Unmarshal(env.Data, &infos); err != nil {
		t.Fatal(err)
	}
	if len(infos) != 3 {
		t.Fatalf("algorithms = %+v, want 3", infos)
	}
	defaults := 0
	for _, info := range infos {
		if info.Description == "" {
			t.Errorf("%s has no description", info.Name)
		}
		if info.Default {
			defaults++
			if info.Name != "cosine" {
				t.Errorf("default = %s, want cosine", info.Name)
			}
		}
	}
	if defaults != 1 {
		t.Errorf("%d default algorithms, want 1", defaults)
	}

	do(t, h, http.MethodGet, "/api/v1/users/1/recommendations", "")
	_, env = do(t, h, http.MethodGet, "/api/v1/stats", "")
	var st StatsResult
	if err := json.Unmarshal(env.Data, &st); err != nil {
		t.Fatal(err)
	}
	if st.Requests != 1 {
		t.Errorf("requests = %d, want 1", st.Requests)
	}
	found := false
	for _, ep := range st.Endpoints {
		if ep.Endpoint == "GET /api/v1/users/{userID}/recommendations" {
			found = ep.RequestCount == 1
		}
	}
	if !found {
		t.Errorf("endpoints = %+v, want one recommendation request by route pattern", st.Endpoints)
	}
}

func TestCompression(t *testing.T) {
	h := newTestServer(t, newTestSystem(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/algorithms", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("Content-Encoding = %q, want gzip", got)
	}
	zr, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatal(err)
	}
	defer zr.Close()
	var env envelope
	if err := json.NewDecoder(zr).Decode(&env); err != nil {
		t.Fatal(err)
	}
	if env.Status != StatusSuccess {
		t.Errorf("status = %q", env.Status)
	}
}

func TestRouting(t *testing.T) {
	h := newTestServer(t, newTestSystem(t), nil)

	rec, env := do(t, h, http.MethodGet, "/api/v1/nope", "")
	if rec.Code != http.StatusNotFound || env.Error == nil || env.Error.Code != ErrCodeNotFound {
		t.Errorf("unknown route: status %d, error %+v", rec.Code, env.Error)
	}

	rec, env = do(t, h, http.MethodDelete, "/api/v1/ratings", "")
	if rec.Code != http.StatusMethodNotAllowed || env.Error == nil || env.Error.Code != ErrCodeMethodNotAllowed {
		t.Errorf("wrong method: status %d, error %+v", rec.Code, env.Error)
	}

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	mrec := httptest.NewRecorder()
	h.ServeHTTP(mrec, req)
	if mrec.Code != http.StatusOK || !strings.Contains(mrec.Body.String(), "reelmatch_") {
		t.Errorf("/metrics status %d, reelmatch series present %v", mrec.Code, strings.Contains(mrec.Body.String(), "reelmatch_"))
	}
}

func TestRequestIDPropagation(t *testing.T) {
	h := newTestServer(t, newTestSystem(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/1/recommendations", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "req-123" {
		t.Errorf("X-Request-ID = %q, want req-123", got)
	}
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if env.Metadata.RequestID != "req-123" {
		t.Errorf("metadata.request_id = %q", env.Metadata.RequestID)
	}
	var resp recommend.Response
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Metadata.RequestID != "req-123" {
		t.Errorf("response request_id = %q", resp.Metadata.RequestID)
	}
}

func TestRequestIDWithLogging_ScopedLogger(t *testing.T) {
	var buf bytes.Buffer
	logging.Init(logging.Config{Level: "info", Output: &buf})
	t.Cleanup(func() { logging.Init(logging.DefaultConfig()) })

	h := RequestIDWithLogging()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logging.Ctx(r.Context()).Info().Msg("handled")
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ratings", nil)
	req.Header.Set("X-Request-ID", "req-log")
	h.ServeHTTP(httptest.NewRecorder(), req)

	output := buf.String()
	for _, want := range []string{
		`"request_id":"req-log"`,
		`"method":"POST"`,
		`"path":"/api/v1/ratings"`,
		`"component":"api"`,
		`"correlation_id":`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in log output: %s", want, output)
		}
	}
}

func TestRateLimit(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Minute
	h := newTestServer(t, newTestSystem(t), cfg)

	for i := 0; i < 2; i++ {
		if rec, _ := do(t, h, http.MethodGet, "/api/v1/algorithms", ""); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d", i, rec.Code)
		}
	}
	rec, env := do(t, h, http.MethodGet, "/api/v1/algorithms", "")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if env.Error == nil || env.Error.Code != ErrCodeTooManyRequests {
		t.Errorf("error = %+v", env.Error)
	}

	// Health checks are exempt.
	if rec, _ := do(t, h, http.MethodGet, "/api/v1/health/live", ""); rec.Code != http.StatusOK {
		t.Errorf("health status = %d while rate limited", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"https://app.example"}
	cfg.RateLimitDisabled = true
	h := newTestServer(t, newTestSystem(t), cfg)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/ratings", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func recommendedIDs(items []recommend.Recommendation) string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = fmt.Sprint(it.MovieID)
	}
	return strings.Join(ids, ",")
}
