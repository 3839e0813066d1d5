package app

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	healthcheck "github.com/vladislavdragonenkov/checkout/internal/health"
	"github.com/vladislavdragonenkov/checkout/internal/version"
)

func TestHTTPMux_Endpoints(t *testing.T) {
	healthHandler := healthcheck.NewHandler(version.Version())
	server := httptest.NewServer(newHTTPMux(healthHandler))
	defer server.Close()

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/livez", http.StatusOK, "ok"},
		{"/readyz", http.StatusOK, "ready"},
		{"/healthz", http.StatusOK, `"status":"healthy"`},
		{"/metrics", http.StatusOK, "go_goroutines"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(server.URL + tt.path)
			if err != nil {
				t.Fatalf("failed to get %s: %v", tt.path, err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.status {
				t.Errorf("expected status %d for %s, got %d", tt.status, tt.path, resp.StatusCode)
			}
			buf := new(strings.Builder)
			if _, err := io.Copy(buf, resp.Body); err != nil {
				t.Fatalf("read body: %v", err)
			}
			if !strings.Contains(buf.String(), tt.body) {
				t.Errorf("expected %s body to contain %q, got %q", tt.path, tt.body, buf.String())
			}
		})
	}
}

func TestHTTPMux_ReadinessFollowsCriticalChecks(t *testing.T) {
	healthHandler := healthcheck.NewHandler(version.Version())
	healthHandler.RegisterChecker("postgres", healthcheck.NewSimpleChecker("postgres", func(context.Context) error {
		return errors.New("connection refused")
	}))
	mux := newHTTPMux(healthHandler)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/livez", nil))
	if w.Code != http.StatusOK {
		t.Errorf("liveness must not depend on checks, got %d", w.Code)
	}
}

func TestStartMetricsServer_Disabled(t *testing.T) {
	if srv := startMetricsServer(context.Background(), "", nil, healthcheck.NewHandler("test")); srv != nil {
		t.Fatal("expected nil server for empty address")
	}
	shutdownHTTP(nil, nil)
}
