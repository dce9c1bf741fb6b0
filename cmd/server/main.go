package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"leadgen/internal/config"
	"leadgen/internal/dashboard"
	"leadgen/internal/jobs"
	"leadgen/internal/metrics"
	"leadgen/internal/query"
	"leadgen/internal/server"
	"leadgen/internal/webhook"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	catalog, err := config.LoadCatalog()
	if err != nil {
		slog.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}
	cfg.Catalog = catalog

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.New(reg)

	// Webhook client and command service
	if !cfg.IsWebhookConfigured() {
		slog.Warn("WEBHOOK_URL is not set; searches are disabled")
	}
	client := webhook.NewClient(cfg.WebhookURL, webhook.Options{
		Timeout:       cfg.WebhookTimeout,
		RatePerMinute: cfg.WebhookRatePerMinute,
		Metrics:       recorder,
	})
	svc := dashboard.NewService(query.NewBuilder(catalog), client, recorder)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	deps := server.Deps{Service: svc, Gatherer: reg}

	// Background webhook monitor
	if cfg.IsWebhookConfigured() && cfg.WebhookHealthInterval > 0 {
		monitor := jobs.NewWebhookMonitor(cfg.WebhookURL, cfg.WebhookHealthInterval, recorder)
		g.Go(func() error {
			monitor.Start(gctx)
			return nil
		})
		deps.Monitor = monitor
	}

	srv := server.New(cfg)
	srv.RegisterRoutes(deps)

	g.Go(srv.Start)

	// Graceful shutdown on signal or when the listener fails
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server")
		return srv.Shutdown()
	})

	if err := g.Wait(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	slog.Info("server exited")
}

// setupLogger installs the default slog logger: colored, human readable
// output in development, JSON everywhere else.
func setupLogger(cfg *config.Config) {
	if cfg.IsDev() {
		handler := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.TimeOnly,
			Level:           log.DebugLevel,
			Prefix:          "leadgen",
		})
		slog.SetDefault(slog.New(handler))
		return
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))
}
