package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/damon-houk/ezpay-transaction-manager/internal/application/service"
	"github.com/damon-houk/ezpay-transaction-manager/internal/domain/entity"
	"github.com/damon-houk/ezpay-transaction-manager/internal/infrastructure/config"
	"github.com/damon-houk/ezpay-transaction-manager/internal/infrastructure/db"
	"github.com/damon-houk/ezpay-transaction-manager/internal/infrastructure/logger"
	"github.com/damon-houk/ezpay-transaction-manager/internal/infrastructure/seed"
	"github.com/dgraph-io/badger/v3"
)

func main() {
	envFile := flag.String("env", ".env", "Optional dotenv file read before the environment")
	persist := flag.Bool("persist", false, "Write both stores to the snapshot directory after a successful change")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <command> [args]\n\n%s\nFlags:\n", os.Args[0], usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewJSONLogger(os.Stderr, cfg.Logging.Level).WithField("app", "ezpay")
	logger.SetDefaultLogger(log)

	transactions, statuses, err := loadSeed(cfg.Seed, log)
	if err != nil {
		log.Fatal("Failed to seed stores", logger.Fields{"source": cfg.Seed.Source, "error": err})
	}

	txStore := db.NewTransactionStore(transactions)
	statusStore := db.NewTransactionStatusStore(statuses)

	a := &app{
		transactions: service.NewTransactionService(txStore, log),
		statuses:     service.NewTransactionStatusService(statusStore, log),
		location:     cfg.Seed.Location,
		out:          os.Stdout,
	}

	args := flag.Args()
	if len(args) > 0 && args[0] == "snapshot" {
		if err := saveSnapshot(cfg.Seed.SnapshotDir, a); err != nil {
			log.Fatal("Failed to write snapshot", logger.Fields{"dir": cfg.Seed.SnapshotDir, "error": err})
		}
		log.Info("Snapshot written", logger.Fields{"dir": cfg.Seed.SnapshotDir})
		return
	}

	changed, err := a.run(args)
	if err != nil {
		log.Error("Command failed", logger.Fields{"args": args, "error": err})
		os.Exit(1)
	}

	if changed && *persist {
		if err := saveSnapshot(cfg.Seed.SnapshotDir, a); err != nil {
			log.Fatal("Failed to write snapshot", logger.Fields{"dir": cfg.Seed.SnapshotDir, "error": err})
		}
	}
}

// loadSeed reads both record kinds from the configured source. Any failure stops startup.
func loadSeed(cfg config.SeedConfig, log logger.Logger) ([]entity.Transaction, []entity.TransactionStatus, error) {
	if cfg.Source == config.SeedSourceSnapshot {
		info, err := os.Stat(cfg.SnapshotDir)
		if err != nil {
			return nil, nil, fmt.Errorf("snapshot directory: %w", err)
		}
		if !info.IsDir() {
			return nil, nil, fmt.Errorf("snapshot directory %s is not a directory", cfg.SnapshotDir)
		}

		bdb, err := openBadger(cfg.SnapshotDir)
		if err != nil {
			return nil, nil, err
		}
		defer closeBadger(bdb, log)

		snapshot := db.NewBadgerSnapshot(bdb)
		has, err := snapshot.HasSnapshot()
		if err != nil {
			return nil, nil, err
		}
		if !has {
			return nil, nil, fmt.Errorf("%w in %s", db.ErrNoSnapshot, cfg.SnapshotDir)
		}

		transactions, err := snapshot.LoadTransactions()
		if err != nil {
			return nil, nil, err
		}
		statuses, err := snapshot.LoadStatuses()
		if err != nil {
			return nil, nil, err
		}
		log.Info("Seeded from snapshot", logger.Fields{"transactions": len(transactions), "statuses": len(statuses)})
		return transactions, statuses, nil
	}

	importer := seed.NewImporter(cfg.Location, log)
	transactions, err := importer.LoadTransactions(cfg.TransactionsFile)
	if err != nil {
		return nil, nil, err
	}
	statuses, err := importer.LoadStatuses(cfg.StatusesFile)
	if err != nil {
		return nil, nil, err
	}
	return transactions, statuses, nil
}

func saveSnapshot(dir string, a *app) error {
	if err := os.MkdirAll(filepath.Clean(dir), 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	bdb, err := openBadger(dir)
	if err != nil {
		return err
	}
	defer closeBadger(bdb, logger.GetDefaultLogger())

	snapshot := db.NewBadgerSnapshot(bdb)
	if err := snapshot.SaveTransactions(a.transactions.List()); err != nil {
		return err
	}
	return snapshot.SaveStatuses(a.statuses.List())
}

func openBadger(dir string) (*badger.DB, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable Badger's default logger

	bdb, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	return bdb, nil
}

func closeBadger(bdb *badger.DB, log logger.Logger) {
	if err := bdb.Close(); err != nil {
		log.Warn("Error closing BadgerDB", logger.Fields{"error": err})
	}
}
