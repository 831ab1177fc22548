package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"receipt-ledger/internal/config"
	"receipt-ledger/internal/database"
	"receipt-ledger/internal/events"
	"receipt-ledger/internal/repositories"
	"receipt-ledger/internal/server"
	"receipt-ledger/internal/services"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	audit := services.NewAuditLogger(logger)

	publisher := events.NewPublisher(cfg.Events.AMQPURL, cfg.Events.Exchange, logger)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("Failed to close event publisher", "error", err)
		}
	}()

	verifier, err := services.NewIdentityVerifier(&cfg.Auth, logger)
	if err != nil {
		logger.Error("Failed to initialize identity verifier", "error", err, "mode", cfg.Auth.Mode)
		os.Exit(1)
	}

	expenseRepo := repositories.NewExpenseRepository(db.DB)
	visionClient := services.NewVisionClient(&cfg.Vision, metrics, logger)
	extractor := services.NewReceiptExtractor(visionClient, &cfg.Vision, audit, metrics, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	e := server.NewRouter(ctx, server.Dependencies{
		Config:    cfg,
		DB:        db.DB,
		Gatherer:  prometheus.DefaultGatherer,
		Verifier:  verifier,
		Audit:     audit,
		Metrics:   metrics,
		Receipts:  services.NewReceiptService(extractor, expenseRepo, publisher, audit, metrics, logger),
		Expenses:  services.NewExpenseService(expenseRepo, publisher, audit, metrics, logger),
		Dashboard: services.NewDashboardService(expenseRepo, metrics, logger),
	})

	srv := &http.Server{
		Addr:           cfg.Server.Address(),
		Handler:        e,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting receipt ledger server",
		"address", srv.Addr,
		"environment", cfg.Server.Environment,
		"auth_mode", cfg.Auth.Mode,
		"api_prefix", cfg.Server.APIPrefix,
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server error", "error", err, "address", srv.Addr)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}

func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.IsDevelopment() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
