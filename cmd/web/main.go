package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"mkt-dashboard/internal/config"
	"mkt-dashboard/internal/middleware"
	"mkt-dashboard/internal/observability"
	"mkt-dashboard/internal/server"
	"mkt-dashboard/internal/services"
	"mkt-dashboard/internal/source"
)

const version = "1.0.0"

// newFetcher picks the HTTP source when a URL is configured and the local
// file otherwise.
func newFetcher(cfg config.SourceConfig) source.Fetcher {
	if cfg.URL != "" {
		return source.NewHTTPFetcher(source.NewHTTPClient(cfg.FetchTimeout), cfg.URL)
	}
	return source.NewFileFetcher(cfg.File)
}

func newWeekly(cfg config.SourceConfig) source.WeeklyProvider {
	if !cfg.WeeklyFallback {
		return nil
	}
	return source.DefaultWeekly()
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// newHandler builds the route table wrapped in the middleware stack.
// Metrics sits innermost so it sees the matched route pattern.
func newHandler(cfg *config.Config, logger *slog.Logger, reg *prometheus.Registry) http.Handler {
	metrics := observability.NewMetrics(reg)
	dashboard := services.NewDashboard(newFetcher(cfg.Source), newWeekly(cfg.Source), metrics, logger)
	srv := server.NewServer(dashboard, logger, reg)

	rateLimiter := middleware.NewRateLimiter(cfg.Security)

	middlewareChain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Tracing(logger),
		middleware.SecurityHeaders(),
		middleware.CORS(cfg.Security),
		middleware.TrustedProxy(cfg.Security),
		middleware.RateLimit(rateLimiter, logger),
		middleware.Metrics(metrics),
	)

	return middlewareChain(srv)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.Logger)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"version", version,
		"source_url", cfg.Source.URL,
		"source_file", cfg.Source.File,
		"weekly_fallback", cfg.Source.WeeklyFallback,
	)

	httpServer := &http.Server{
		Addr:         cfg.Address(),
		Handler:      newHandler(cfg, logger, newRegistry()),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	gracefulServer := server.NewGracefulServer(httpServer, logger, cfg.Server)

	gracefulServer.RegisterShutdownHook(func(ctx context.Context) error {
		logger.Info("shutting down dashboard service")
		return nil
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := gracefulServer.ListenAndServe(ctx); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}

	logger.Info("application stopped gracefully")
}
