package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/damon-houk/ezpay-transaction-manager/internal/domain/entity"
	"github.com/dgraph-io/badger/v3"
)

// Key prefixes for each record kind held in a snapshot
const (
	TransactionPrefix       = "tx:"
	TransactionStatusPrefix = "ts:"
)

// generationPrefix marks the key naming the live generation of a record kind
const generationPrefix = "gen:"

// ErrNoSnapshot is returned when a directory holds no saved snapshot
var ErrNoSnapshot = errors.New("no snapshot stored")

// BadgerSnapshot stores point-in-time copies of the in-memory stores in BadgerDB.
// Nothing writes through to it; a snapshot changes only when Save is called.
//
// Each save writes a new generation of keys and switches the generation pointer
// once the batch is flushed, so a failed save leaves the previous snapshot readable.
type BadgerSnapshot struct {
	db *badger.DB
}

// NewBadgerSnapshot creates a snapshot backed by an open BadgerDB
func NewBadgerSnapshot(db *badger.DB) *BadgerSnapshot {
	return &BadgerSnapshot{db: db}
}

// SaveTransactions replaces the stored transactions with the given records
func (s *BadgerSnapshot) SaveTransactions(records []entity.Transaction) error {
	return saveRecords(s.db, TransactionPrefix, records)
}

// LoadTransactions returns the stored transactions in insertion order
func (s *BadgerSnapshot) LoadTransactions() ([]entity.Transaction, error) {
	return loadRecords[entity.Transaction](s.db, TransactionPrefix)
}

// SaveStatuses replaces the stored transaction statuses with the given records
func (s *BadgerSnapshot) SaveStatuses(records []entity.TransactionStatus) error {
	return saveRecords(s.db, TransactionStatusPrefix, records)
}

// LoadStatuses returns the stored transaction statuses in insertion order
func (s *BadgerSnapshot) LoadStatuses() ([]entity.TransactionStatus, error) {
	return loadRecords[entity.TransactionStatus](s.db, TransactionStatusPrefix)
}

// HasSnapshot reports whether any record kind has been saved
func (s *BadgerSnapshot) HasSnapshot() (bool, error) {
	for _, prefix := range []string{TransactionPrefix, TransactionStatusPrefix} {
		gen, err := currentGeneration(s.db, prefix)
		if err != nil {
			return false, err
		}
		if gen > 0 {
			return true, nil
		}
	}
	return false, nil
}

// generationKeyPrefix scopes the records of one generation
func generationKeyPrefix(prefix string, gen uint64) []byte {
	return []byte(fmt.Sprintf("%s%010d:", prefix, gen))
}

// sequenceKey keeps lexical key order equal to insertion order
func sequenceKey(prefix string, gen uint64, seq int) []byte {
	return append(generationKeyPrefix(prefix, gen), fmt.Sprintf("%010d", seq)...)
}

// currentGeneration returns 0 when the kind has never been saved
func currentGeneration(db *badger.DB, prefix string) (uint64, error) {
	var gen uint64
	err := db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(generationPrefix + prefix))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			gen, err = strconv.ParseUint(string(val), 10, 64)
			return err
		})
	})
	if err != nil {
		return 0, fmt.Errorf("failed to read snapshot generation %q: %w", prefix, err)
	}
	return gen, nil
}

func saveRecords[T entity.Record](db *badger.DB, prefix string, records []T) error {
	values := make([][]byte, len(records))
	for i, record := range records {
		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal record %s: %w", record.RecordID(), err)
		}
		values[i] = data
	}

	current, err := currentGeneration(db, prefix)
	if err != nil {
		return err
	}
	next := current + 1

	// Leftovers of an earlier failed save under the same generation
	if err := db.DropPrefix(generationKeyPrefix(prefix, next)); err != nil {
		return fmt.Errorf("failed to clear snapshot %q: %w", prefix, err)
	}

	wb := db.NewWriteBatch()
	defer wb.Cancel()

	for i, data := range values {
		if err := wb.Set(sequenceKey(prefix, next, i), data); err != nil {
			return fmt.Errorf("failed to stage record %s: %w", records[i].RecordID(), err)
		}
	}
	if err := wb.Flush(); err != nil {
		return fmt.Errorf("failed to store snapshot %q: %w", prefix, err)
	}

	err = db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(generationPrefix+prefix), []byte(strconv.FormatUint(next, 10)))
	})
	if err != nil {
		return fmt.Errorf("failed to switch snapshot %q: %w", prefix, err)
	}

	if current > 0 {
		if err := db.DropPrefix(generationKeyPrefix(prefix, current)); err != nil {
			return fmt.Errorf("failed to drop previous snapshot %q: %w", prefix, err)
		}
	}
	return nil
}

func loadRecords[T entity.Record](db *badger.DB, prefix string) ([]T, error) {
	records := []T{}

	gen, err := currentGeneration(db, prefix)
	if err != nil {
		return nil, err
	}
	if gen == 0 {
		return records, nil
	}

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		p := generationKeyPrefix(prefix, gen)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			item := it.Item()
			var record T
			err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &record)
			})
			if err != nil {
				return fmt.Errorf("failed to decode %s: %w", item.Key(), err)
			}
			records = append(records, record)
		}
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %q: %w", prefix, err)
	}
	return records, nil
}
