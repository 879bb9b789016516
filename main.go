package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"placesync/internal/api"
	"placesync/internal/config"
	"placesync/internal/ingest"
	"placesync/internal/ingest/store"
	http "placesync/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})).
		With("service", "placesync")
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := store.Migrate(ctx, cfg.DatabaseURL, logger); err != nil {
		logger.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	pg, err := store.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("postgres init failed", "error", err)
		os.Exit(1)
	}
	defer pg.Close()

	src := ingest.NewHTTPCollector(cfg.SourceBaseURL, cfg.HTTPTimeout)
	svc := ingest.New(pg, src, logger, time.Now)
	app := api.New(svc)

	if cfg.ImportOnStart {
		runCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
		runConsole(runCtx, app, logger)
		cancel()
	}

	s := http.New(app)
	logger.Info("listening", "addr", cfg.ListenAddr)
	if err := s.ListenAndServe(ctx, cfg.ListenAddr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
