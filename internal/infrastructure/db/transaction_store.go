package db

import (
	"math"

	"github.com/damon-houk/ezpay-transaction-manager/internal/domain/entity"
)

// TransactionStore implements the transaction repository interface in memory
type TransactionStore struct {
	*MemoryStore[entity.Transaction]
}

// NewTransactionStore creates a transaction store seeded with the given records
func NewTransactionStore(seed []entity.Transaction) *TransactionStore {
	return &TransactionStore{MemoryStore: NewMemoryStore(seed)}
}

// FindByAmountRange returns transactions whose amount lies in [start, end].
// A nil start yields no records; a nil end places no upper limit.
func (s *TransactionStore) FindByAmountRange(start, end *float64) []entity.Transaction {
	if start == nil {
		return []entity.Transaction{}
	}
	upper := math.MaxFloat64
	if end != nil {
		upper = *end
	}
	lower := *start
	return s.filter(func(t entity.Transaction) bool {
		return lower <= t.Amount && t.Amount <= upper
	})
}

// TransactionStatusStore implements the transaction status repository interface in memory
type TransactionStatusStore struct {
	*MemoryStore[entity.TransactionStatus]
}

// NewTransactionStatusStore creates a status store seeded with the given records
func NewTransactionStatusStore(seed []entity.TransactionStatus) *TransactionStatusStore {
	return &TransactionStatusStore{MemoryStore: NewMemoryStore(seed)}
}
