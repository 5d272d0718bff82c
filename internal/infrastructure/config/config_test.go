package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/damon-houk/ezpay-transaction-manager/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"EZPAY_SEED_SOURCE",
	"EZPAY_TRANSACTIONS_FILE",
	"EZPAY_STATUSES_FILE",
	"EZPAY_SNAPSHOT_DIR",
	"EZPAY_TIMEZONE",
	"LOG_LEVEL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, SeedSourceCSV, cfg.Seed.Source)
	assert.Equal(t, "data/transactions.csv", cfg.Seed.TransactionsFile)
	assert.Equal(t, "data/transaction_statuses.csv", cfg.Seed.StatusesFile)
	assert.Equal(t, "data/snapshot", cfg.Seed.SnapshotDir)
	assert.Equal(t, "UTC", cfg.Seed.Location.String())
	assert.Equal(t, logger.InfoLevel, cfg.Logging.Level)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("EZPAY_SEED_SOURCE", "Snapshot")
	t.Setenv("EZPAY_TRANSACTIONS_FILE", "/tmp/tx.csv")
	t.Setenv("EZPAY_TIMEZONE", "Asia/Kolkata")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, SeedSourceSnapshot, cfg.Seed.Source)
	assert.Equal(t, "/tmp/tx.csv", cfg.Seed.TransactionsFile)
	assert.Equal(t, "Asia/Kolkata", cfg.Seed.Location.String())
	assert.Equal(t, logger.DebugLevel, cfg.Logging.Level)
}

func TestLoadInvalid(t *testing.T) {
	cases := map[string][2]string{
		"Seed source": {"EZPAY_SEED_SOURCE", "postgres"},
		"Timezone":    {"EZPAY_TIMEZONE", "Mars/Olympus"},
		"Log level":   {"LOG_LEVEL", "verbose"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])

			_, err := Load("")
			assert.ErrorContains(t, err, kv[0])
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv only fills variables that are unset
	require.NoError(t, os.Unsetenv("EZPAY_STATUSES_FILE"))
	t.Setenv("EZPAY_SNAPSHOT_DIR", "/from/env")

	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("EZPAY_STATUSES_FILE=/from/file.csv\nEZPAY_SNAPSHOT_DIR=/from/file\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("EZPAY_STATUSES_FILE") })

	cfg, err := Load(envFile)

	require.NoError(t, err)
	assert.Equal(t, "/from/file.csv", cfg.Seed.StatusesFile)
	assert.Equal(t, "/from/env", cfg.Seed.SnapshotDir)

	_, err = Load(filepath.Join(dir, "missing.env"))
	assert.NoError(t, err)
}
