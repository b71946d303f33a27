package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/tetraedu/desempenho-backend/api/responses"
	"github.com/tetraedu/desempenho-backend/pkg/config"
	"github.com/tetraedu/desempenho-backend/pkg/logger"
)

type pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Desempenho-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the backing stores; a nil pinger is reported as
// skipped so partial deployments still get a readable response.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP, redisP pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		checks := map[string]string{}
		healthy := true
		for name, p := range map[string]pinger{"postgres": dbP, "redis": redisP} {
			if p == nil {
				checks[name] = "skipped"
				continue
			}
			if err := p.Ping(ctx); err != nil {
				checks[name] = "down"
				healthy = false
				if logg != nil {
					logg.Error(logg.WithField(ctx, "dependency", name), "health.ready.check_failed", err)
				}
				continue
			}
			checks[name] = "ok"
		}

		w.Header().Set("X-Desempenho-Env", cfg.App.Env)
		status, label := http.StatusOK, "ready"
		if !healthy {
			status, label = http.StatusServiceUnavailable, "degraded"
		}
		responses.WriteSuccessStatus(w, status, map[string]any{
			"status": label,
			"checks": checks,
		})
	}
}
