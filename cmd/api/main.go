package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskibarqy/sports-league/internal/app"
	"github.com/riskibarqy/sports-league/internal/config"
	"github.com/riskibarqy/sports-league/internal/observability"
	"github.com/riskibarqy/sports-league/internal/platform/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(logging.Options{
		Level: cfg.LogLevel,
		Fields: []any{
			"service", cfg.ServiceName,
			"version", cfg.ServiceVersion,
			"env", cfg.AppEnv,
		},
	})
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	telemetry, err := observability.Start(cfg, logger)
	if err != nil {
		return fmt.Errorf("start telemetry: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := telemetry.Shutdown(ctx); err != nil {
			logger.Error("telemetry shutdown failed", "error", err)
		}
	}()

	srv, err := app.NewHTTPServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("build server: %w", err)
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr, "graphql_path", "/graphql")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serve http: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	logger.Info("http server stopped")
	return nil
}
