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

	"github.com/osse101/TradeUp_Go/internal/bootstrap"
	"github.com/osse101/TradeUp_Go/internal/config"
	"github.com/osse101/TradeUp_Go/internal/server"
	"github.com/osse101/TradeUp_Go/internal/tradeup"
)

const (
	catalogLoadTimeout = 30 * time.Second
	shutdownTimeout    = 15 * time.Second
)

// @title TradeUp API
// @version 1.0
// @description Catalog lookups and trade-up outcome analysis for CS:GO skins.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	warnings, err := cfg.ValidateWithWarnings()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), catalogLoadTimeout)
	catalog, err := bootstrap.LoadCatalog(loadCtx, cfg)
	cancelLoad()
	if err != nil {
		slog.Error("Failed to load catalog", "source", cfg.CatalogSource, "error", err)
		os.Exit(1)
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		TrustedProxies: cfg.TrustedProxies,
	}, catalog, tradeup.NewEngine(catalog))

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-stop:
		slog.Info("Received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(ctx, srv)
}
