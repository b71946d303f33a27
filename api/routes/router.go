package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tetraedu/desempenho-backend/api/controllers"
	"github.com/tetraedu/desempenho-backend/api/middleware"
	"github.com/tetraedu/desempenho-backend/internal/auth"
	"github.com/tetraedu/desempenho-backend/internal/calls"
	"github.com/tetraedu/desempenho-backend/internal/filters"
	"github.com/tetraedu/desempenho-backend/internal/funnel"
	"github.com/tetraedu/desempenho-backend/internal/reports"
	"github.com/tetraedu/desempenho-backend/internal/sales"
	"github.com/tetraedu/desempenho-backend/internal/sellers"
	"github.com/tetraedu/desempenho-backend/internal/traffic"
	"github.com/tetraedu/desempenho-backend/pkg/config"
	"github.com/tetraedu/desempenho-backend/pkg/db"
	"github.com/tetraedu/desempenho-backend/pkg/logger"
	"github.com/tetraedu/desempenho-backend/pkg/redis"
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	DB       db.Pinger
	Redis    *redis.Client
	Registry *prometheus.Registry

	AuthService    auth.Service
	FunnelService  funnel.Service
	SalesService   sales.Service
	ReportsService reports.Service
	TrafficService *traffic.Service
	CallsRepo      *calls.Repository
	SellersRepo    *sellers.Repository
	FilterStore    *filters.Store
	FilterOptions  *filters.OptionsRepository
}

// redisPinger avoids handing a typed nil client to the readiness check.
func redisPinger(client *redis.Client) interface {
	Ping(ctx context.Context) error
} {
	if client == nil {
		return nil
	}
	return client
}

func NewRouter(deps Deps) http.Handler {
	cfg, logg := deps.Config, deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins...),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, redisPinger(deps.Redis)))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)

	r.Route("/api/v1", func(r chi.Router) {
		login := controllers.AuthLogin(deps.AuthService, logg)
		if deps.Redis != nil {
			r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).Post("/auth/login", login)
		} else {
			r.Post("/auth/login", login)
		}

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))

			r.Get("/funnel", controllers.FunnelSummary(deps.FunnelService, logg))

			r.Route("/sales", func(r chi.Router) {
				r.Get("/", controllers.SalesList(deps.SalesService, logg))
				r.Get("/stats", controllers.SalesStats(deps.SalesService, logg))
				r.Get("/me/stats", controllers.SellerOwnStats(deps.SalesService, logg))
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/daily", controllers.DailyReport(deps.ReportsService, logg))
				r.Get("/monthly", controllers.MonthlyReport(deps.ReportsService, logg))
			})

			r.Route("/calls", func(r chi.Router) {
				r.Get("/", controllers.CallsList(deps.CallsRepo, logg))
				r.With(middleware.RequireAdmin(logg)).
					Post("/", controllers.CallsUpsert(deps.CallsRepo, logg))
			})

			r.Route("/filters", func(r chi.Router) {
				r.Get("/options", controllers.FilterOptions(deps.FilterOptions, logg))
				r.Get("/{key}", controllers.FiltersGet(deps.FilterStore, logg))
				r.Put("/{key}", controllers.FiltersPut(deps.FilterStore, logg))
				r.Delete("/{key}", controllers.FiltersDelete(deps.FilterStore, logg))
			})

			r.Get("/traffic", controllers.TrafficReport(deps.TrafficService, logg))
			r.Get("/sellers", controllers.SellersList(deps.SellersRepo, logg))
		})
	})

	return r
}
