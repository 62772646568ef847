package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"moped-route-service/internal/adapters/repositories"
	"moped-route-service/internal/api"
	"moped-route-service/internal/config"
	"moped-route-service/internal/platform/db"
	"moped-route-service/internal/platform/obs"
	"moped-route-service/internal/ports"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// main is the application composition root.
// It wires the preset store (SQLite or PostgreSQL) behind ports and starts the HTTP server.
func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := obs.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if envErr != nil {
		logger.Info("no .env file found (using environment variables)")
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	dsn, err := cfg.DSN()
	if err != nil {
		return err
	}

	conn, err := db.Open(cfg.DBDriver, dsn)
	if err != nil {
		return err
	}
	defer conn.Close()

	store := newPresetStore(cfg.DBDriver, conn, logger)

	// Initialize schema and seed demo presets on startup for local runs.
	if err := initAndSeed(conn, store, cfg.SeedPath, logger); err != nil {
		return err
	}

	router := api.NewRouter(store, logger, api.RouterConfig{
		DefaultLang:    cfg.DefaultLang,
		AllowedOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr), zap.String("db_driver", cfg.DBDriver))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func newPresetStore(driver string, conn *sql.DB, logger *zap.Logger) ports.PresetStore {
	if driver == db.DriverPostgres {
		return repositories.NewSQLPresetRepository(conn, logger)
	}
	return repositories.NewSqlitePresetRepository(conn)
}

func initAndSeed(conn *sql.DB, store ports.PresetWriter, seedPath string, logger *zap.Logger) error {
	if err := repositories.InitSchema(conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if seedPath == "" {
		return nil
	}
	if _, err := os.Stat(seedPath); errors.Is(err, os.ErrNotExist) {
		logger.Warn("seed file not found, skipping", zap.String("path", seedPath))
		return nil
	}

	if err := repositories.SeedFromFile(context.Background(), store, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	logger.Info("presets seeded", zap.String("path", seedPath))

	return nil
}
