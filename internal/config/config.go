package config

import (
	"fmt"
	"moped-route-service/internal/platform/db"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Process configuration, read from the environment (after an optional .env).
type Config struct {
	Port        string   `envconfig:"PORT" default:"8080"`
	DBDriver    string   `envconfig:"DB_DRIVER" default:"sqlite"`
	DBPath      string   `envconfig:"DB_PATH" default:"data/app.db"`
	DatabaseURL string   `envconfig:"DATABASE_URL"`
	SeedPath    string   `envconfig:"SEED_PATH" default:"data/seeds/presets.json"`
	LogLevel    string   `envconfig:"LOG_LEVEL" default:"info"`
	DefaultLang string   `envconfig:"DEFAULT_LANG" default:"en"`
	CORSOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	if cfg.DBDriver == "postgres" {
		cfg.DBDriver = db.DriverPostgres
	}

	if _, err := cfg.DSN(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// DSN returns the data source for the configured driver.
func (c *Config) DSN() (string, error) {
	switch c.DBDriver {
	case db.DriverSQLite:
		if strings.TrimSpace(c.DBPath) == "" {
			return "", fmt.Errorf("DB_PATH is required for driver %q", c.DBDriver)
		}
		return c.DBPath, nil
	case db.DriverPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return "", fmt.Errorf("DATABASE_URL is required for driver %q", c.DBDriver)
		}
		return c.DatabaseURL, nil
	}
	return "", fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
}
