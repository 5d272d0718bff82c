// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // EZPAY_TIMEZONE must resolve on hosts without a zoneinfo database

	"github.com/damon-houk/ezpay-transaction-manager/internal/infrastructure/logger"
	"github.com/joho/godotenv"
)

// Seed sources
const (
	SeedSourceCSV      = "csv"
	SeedSourceSnapshot = "snapshot"
)

const (
	defaultTransactionsFile = "data/transactions.csv"
	defaultStatusesFile     = "data/transaction_statuses.csv"
	defaultSnapshotDir      = "data/snapshot"
	defaultTimezone         = "UTC"
)

// Config aggregates application configuration values
type Config struct {
	Seed    SeedConfig
	Logging LoggingConfig
}

// SeedConfig describes where the stores are populated from at startup
type SeedConfig struct {
	Source           string
	TransactionsFile string
	StatusesFile     string
	SnapshotDir      string
	Location         *time.Location
}

// LoggingConfig controls structured logging settings
type LoggingConfig struct {
	Level logger.Level
}

// Load reads configuration from environment variables, applying defaults.
// Values from envFile are applied first when the file exists; real environment variables win.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
	}

	cfg := Config{
		Seed: SeedConfig{
			Source:           strings.ToLower(valueOrDefault("EZPAY_SEED_SOURCE", SeedSourceCSV)),
			TransactionsFile: valueOrDefault("EZPAY_TRANSACTIONS_FILE", defaultTransactionsFile),
			StatusesFile:     valueOrDefault("EZPAY_STATUSES_FILE", defaultStatusesFile),
			SnapshotDir:      valueOrDefault("EZPAY_SNAPSHOT_DIR", defaultSnapshotDir),
		},
	}

	switch cfg.Seed.Source {
	case SeedSourceCSV, SeedSourceSnapshot:
	default:
		return Config{}, fmt.Errorf("invalid EZPAY_SEED_SOURCE %q: want %s or %s", cfg.Seed.Source, SeedSourceCSV, SeedSourceSnapshot)
	}

	loc, err := time.LoadLocation(valueOrDefault("EZPAY_TIMEZONE", defaultTimezone))
	if err != nil {
		return Config{}, fmt.Errorf("invalid EZPAY_TIMEZONE: %w", err)
	}
	cfg.Seed.Location = loc

	level, err := logger.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	cfg.Logging.Level = level

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
