package main

import (
	"fmt"
	"log"
	"moped-route-service/internal/adapters/repositories"
	"moped-route-service/internal/config"
	"moped-route-service/internal/platform/db"
	"moped-route-service/internal/platform/obs"
	"moped-route-service/internal/ports"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

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

	if err := newRootCmd(cfg, logger).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config, logger *zap.Logger) *cobra.Command {
	var seedPath string

	cmd := &cobra.Command{
		Use:          "dbtool",
		Short:        "Initialize the preset schema and seed route presets",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dsn, err := cfg.DSN()
			if err != nil {
				return err
			}

			conn, err := db.Open(cfg.DBDriver, dsn)
			if err != nil {
				return err
			}
			defer conn.Close()

			logger.Info("initializing database schema", zap.String("db_driver", cfg.DBDriver))
			if err := repositories.InitSchema(conn); err != nil {
				return fmt.Errorf("schema initialization failed: %w", err)
			}
			logger.Info("schema ready")

			var store ports.PresetWriter = repositories.NewSqlitePresetRepository(conn)
			if cfg.DBDriver == db.DriverPostgres {
				store = repositories.NewSQLPresetRepository(conn, logger)
			}

			logger.Info("seeding presets", zap.String("path", seedPath))
			if err := repositories.SeedFromFile(cmd.Context(), store, seedPath); err != nil {
				return fmt.Errorf("seeding failed: %w", err)
			}
			logger.Info("seeding complete")

			return nil
		},
	}

	cmd.Flags().StringVar(&seedPath, "seed", cfg.SeedPath, "Preset seed file (.json, .yaml or .yml)")
	return cmd
}
