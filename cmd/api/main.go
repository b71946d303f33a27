package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tetraedu/desempenho-backend/api/routes"
	authsvc "github.com/tetraedu/desempenho-backend/internal/auth"
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
	"github.com/tetraedu/desempenho-backend/pkg/metrics"
	"github.com/tetraedu/desempenho-backend/pkg/migrate"
	"github.com/tetraedu/desempenho-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	loc, err := time.LoadLocation(cfg.App.ReportTimezone)
	if err != nil {
		logg.Error(context.Background(), "invalid report timezone", err)
		os.Exit(1)
	}

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	registry := prometheus.NewRegistry()
	aggMetrics := metrics.NewAggregationMetrics(registry)

	authService, err := authsvc.NewService(authsvc.ServiceParams{
		UserRepo:  authsvc.NewRepository(dbClient.DB()),
		JWTConfig: cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	funnelRepo := funnel.NewRepository(dbClient.DB())
	funnelService, err := funnel.NewService(funnel.ServiceParams{
		Repo:    funnelRepo,
		Metrics: aggMetrics,
		Logger:  logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create funnel service", err)
		os.Exit(1)
	}

	salesService, err := sales.NewService(sales.ServiceParams{
		Repo:     sales.NewRepository(dbClient.DB()),
		Leads:    funnelRepo,
		Logger:   logg,
		Location: loc,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create sales service", err)
		os.Exit(1)
	}

	callsRepo := calls.NewRepository(dbClient.DB())
	reportsService, err := reports.NewService(reports.ServiceParams{
		Sales:    salesService,
		Calls:    callsRepo,
		Location: loc,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create reports service", err)
		os.Exit(1)
	}

	var trafficService *traffic.Service
	if cfg.Traffic.WebhookURL != "" {
		trafficClient, err := traffic.NewClient(cfg.Traffic)
		if err != nil {
			logg.Error(context.Background(), "failed to create traffic client", err)
			os.Exit(1)
		}
		trafficService = traffic.NewService(trafficClient, logg)
	} else {
		logg.Warn(context.Background(), "traffic webhook url not set, traffic endpoint disabled")
	}

	filterStore, err := filters.NewStore(redisClient, cfg.Filters.TTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create filter store", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:         cfg,
			Logger:         logg,
			DB:             dbClient,
			Redis:          redisClient,
			Registry:       registry,
			AuthService:    authService,
			FunnelService:  funnelService,
			SalesService:   salesService,
			ReportsService: reportsService,
			TrafficService: trafficService,
			CallsRepo:      callsRepo,
			SellersRepo:    sellers.NewRepository(dbClient.DB()),
			FilterStore:    filterStore,
			FilterOptions:  filters.NewOptionsRepository(dbClient.DB()),
		}),
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-runCtx.Done():
		logg.Info(ctx, "shutdown signal received, draining connections")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}
}
