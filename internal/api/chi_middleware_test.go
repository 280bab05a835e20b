// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package api

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestDefaultChiMiddlewareConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	if cfg.RateLimitRequests != 100 {
		t.Errorf("RateLimitRequests = %d, want 100", cfg.RateLimitRequests)
	}
	if cfg.RateLimitWindow != time.Minute {
		t.Errorf("RateLimitWindow = %v, want 1m", cfg.RateLimitWindow)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Errorf("CORSAllowedOrigins = %v, want [*]", cfg.CORSAllowedOrigins)
	}
	if cfg.RateLimitDisabled {
		t.Error("RateLimitDisabled = true, want false")
	}
}

func TestNewChiMiddlewareConfig(t *testing.T) {
	t.Parallel()

	cfg := NewChiMiddlewareConfig([]string{"https://example.com"}, 7, time.Second, true)
	if cfg.RateLimitRequests != 7 || cfg.RateLimitWindow != time.Second || !cfg.RateLimitDisabled {
		t.Errorf("rate limit = %d/%v disabled=%v", cfg.RateLimitRequests, cfg.RateLimitWindow, cfg.RateLimitDisabled)
	}
	if cfg.CORSAllowedOrigins[0] != "https://example.com" {
		t.Errorf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
	if len(cfg.CORSAllowedMethods) == 0 {
		t.Error("CORSAllowedMethods lost defaults")
	}
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	srv := newTestServerWith(t, NewChiMiddlewareConfig([]string{"*"}, 2, time.Minute, false))

	for i := 0; i < 2; i++ {
		w := do(t, srv, http.MethodGet, "/api/v1/destinations", "")
		if w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, w.Code)
		}
	}

	w := do(t, srv, http.MethodGet, "/api/v1/destinations", "")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("third request status = %d, want 429", w.Code)
	}
	env := decodeEnvelope(t, w, nil)
	if env.Error == nil || env.Error.Code != "RATE_LIMIT_EXCEEDED" {
		t.Errorf("error = %+v, want RATE_LIMIT_EXCEEDED", env.Error)
	}

	// Health probes get a larger budget.
	if w := do(t, srv, http.MethodGet, "/api/v1/health/live", ""); w.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", w.Code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	t.Parallel()

	srv := newTestServerWith(t, NewChiMiddlewareConfig([]string{"*"}, 1, time.Minute, true))
	for i := 0; i < 5; i++ {
		if w := do(t, srv, http.MethodGet, "/api/v1/profiles", ""); w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, w.Code)
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	t.Parallel()

	srv := newTestServerWith(t, NewChiMiddlewareConfig([]string{"https://app.example.com"}, 100, time.Minute, true))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/recommendations/content", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("Access-Control-Allow-Origin = %q, want https://app.example.com", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, http.MethodPost) {
		t.Errorf("Access-Control-Allow-Methods = %q, want POST", got)
	}
}

func TestCORSDisallowedOrigin(t *testing.T) {
	t.Parallel()

	srv := newTestServerWith(t, NewChiMiddlewareConfig([]string{"https://app.example.com"}, 100, time.Minute, true))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/destinations", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Access-Control-Allow-Origin = %q, want empty", got)
	}
}

func TestAPISecurityHeaders(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := APISecurityHeaders()(next)

	tests := []struct {
		name     string
		setup    func(r *http.Request)
		wantHSTS bool
	}{
		{"plain http", func(*http.Request) {}, false},
		{"tls", func(r *http.Request) { r.TLS = &tls.ConnectionState{} }, true},
		{"forwarded https", func(r *http.Request) { r.Header.Set("X-Forwarded-Proto", "https") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/api/v1/destinations", nil)
			tt.setup(req)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
				t.Errorf("X-Content-Type-Options = %q, want nosniff", got)
			}
			hasHSTS := w.Header().Get("Strict-Transport-Security") != ""
			if hasHSTS != tt.wantHSTS {
				t.Errorf("HSTS present = %v, want %v", hasHSTS, tt.wantHSTS)
			}
		})
	}
}

func TestRequestIDEchoed(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles", nil)
	req.Header.Set("X-Request-Id", "trace-123")
	w := httptest.NewRecorder()
	newTestServer(t).ServeHTTP(w, req)

	env := decodeEnvelope(t, w, nil)
	if env.Metadata.RequestID != "trace-123" {
		t.Errorf("request_id = %q, want trace-123", env.Metadata.RequestID)
	}
}

func TestMetricsRoute(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	w := do(t, srv, http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK {
		t.Errorf("GET /metrics status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "go_goroutines") {
		t.Error("GET /metrics missing runtime collectors")
	}
}

func TestTimeout(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.RequestTimeout = 50 * time.Millisecond

	var hasDeadline bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
		w.WriteHeader(http.StatusOK)
	})

	NewChiMiddleware(cfg).Timeout()(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if !hasDeadline {
		t.Error("request context has no deadline with RequestTimeout set")
	}

	NewChiMiddleware(DefaultChiMiddlewareConfig()).Timeout()(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if hasDeadline {
		t.Error("request context has a deadline with RequestTimeout unset")
	}
}
