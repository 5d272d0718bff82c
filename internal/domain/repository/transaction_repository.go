package repository

import (
	"time"

	"github.com/damon-houk/ezpay-transaction-manager/internal/domain/entity"
)

// RecordRepository defines mechanical access to one kind of record.
// Misses are reported as false or an empty slice, never as an error.
type RecordRepository[T entity.Record] interface {
	// FindByID retrieves a record by its exact identifier
	FindByID(id string) (T, bool)

	// FindByField returns records whose named field equals value
	FindByField(field, value string) []T

	// FindByDate returns records whose timestamp falls on the given date
	FindByDate(date time.Time) []T

	// FindByDateRange returns records dated within [start, end]
	FindByDateRange(start, end time.Time) []T

	// List returns every record in insertion order
	List() []T

	// Create appends a record; false means the identifier is already taken
	Create(record T) (T, bool)

	// Update replaces the record with the same identifier; false means it was absent
	Update(record T) (T, bool)

	// Delete removes the record with the given identifier
	Delete(id string) bool
}

// TransactionRepository defines the interface for transaction storage
type TransactionRepository interface {
	RecordRepository[entity.Transaction]

	// FindByAmountRange returns transactions with start <= amount <= end.
	// A nil start matches nothing; a nil end means no upper limit.
	FindByAmountRange(start, end *float64) []entity.Transaction
}

// TransactionStatusRepository defines the interface for transaction status storage
type TransactionStatusRepository interface {
	RecordRepository[entity.TransactionStatus]
}
