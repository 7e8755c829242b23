// Command server runs the watcher control plane.
package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/gswatch/watcher-control/internal/api"
	"github.com/gswatch/watcher-control/internal/server"
	"github.com/gswatch/watcher-control/internal/watcher"
	"github.com/gswatch/watcher-control/pkg/config"
	"github.com/gswatch/watcher-control/pkg/logging"
)

var configFile = flag.String("config", "configs/config.yaml", "Path to configuration file")

func main() {
	flag.Parse()

	// Optional .env for local development; ignored when absent.
	_ = godotenv.Load()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Auth.Debug && cfg.Logging.Level != "debug" {
		cfg.Logging.Level = "debug"
	}

	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting watcher control plane",
		zap.String("version", api.Version),
		zap.Bool("debug", cfg.Auth.Debug),
	)
	if cfg.Auth.Secret == "" {
		logger.Warn("No SECRET configured; web UI and protected API are disabled")
	}

	w, err := watcher.New(cfg.Watcher, logger)
	if err != nil {
		logger.Fatal("Failed to initialize watcher", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := w.Start(ctx); err != nil {
		logger.Fatal("Failed to start watcher", zap.Error(err))
	}

	srv := server.New(cfg, w, clockwork.NewRealClock(), logger)
	if err := srv.Run(ctx); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}

	logger.Info("Shutdown complete")
}
