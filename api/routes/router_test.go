package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tetraedu/desempenho-backend/pkg/config"
	"github.com/tetraedu/desempenho-backend/pkg/logger"
	"github.com/tetraedu/desempenho-backend/pkg/metrics"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{App: config.AppConfig{Env: "test", Port: "0"}}
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	registry := prometheus.NewRegistry()
	metrics.NewAggregationMetrics(registry)

	return NewRouter(Deps{
		Config:   cfg,
		Logger:   logg,
		Registry: registry,
	})
}

func TestRouterHealthLive(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data map[string]string `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data["status"] != "live" {
		t.Fatalf("unexpected payload %+v", envelope.Data)
	}
	if got := resp.Header().Get("X-Desempenho-Env"); got != "test" {
		t.Fatalf("expected env header, got %q", got)
	}
}

func TestRouterProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	for _, target := range []string{
		"/api/v1/funnel",
		"/api/v1/sales",
		"/api/v1/sales/stats",
		"/api/v1/reports/daily",
		"/api/v1/calls",
		"/api/v1/filters/options",
		"/api/v1/traffic",
		"/api/v1/sellers",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401 got %d", target, resp.Code)
		}
	}
}

func TestRouterServesMetrics(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}
