package db

import (
	"testing"
	"time"

	"github.com/damon-houk/ezpay-transaction-manager/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 30, 0, 0, time.UTC)
}

func seedTransactions() []entity.Transaction {
	return []entity.Transaction{
		{ID: "T1", Kind: entity.KindUPI, Amount: 100.00, State: entity.StateCompleted, OccurredAt: day(2024, 7, 20, 9)},
		{ID: "T2", Kind: entity.KindBank, Amount: 250.00, State: entity.StatePending, OccurredAt: day(2024, 7, 20, 18)},
		{ID: "T3", Kind: entity.KindUPI, Amount: 50.00, State: entity.StateInitiated, OccurredAt: day(2024, 7, 21, 0)},
	}
}

func ids[T entity.Record](records []T) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.RecordID())
	}
	return out
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestMemoryStoreFindByID(t *testing.T) {
	store := NewTransactionStore(seedTransactions())

	t.Run("Existing id", func(t *testing.T) {
		tx, ok := store.FindByID("T2")
		assert.True(t, ok)
		assert.Equal(t, 250.00, tx.Amount)
	})

	t.Run("Missing id", func(t *testing.T) {
		_, ok := store.FindByID("T9")
		assert.False(t, ok)
	})

	t.Run("Empty id is a miss", func(t *testing.T) {
		_, ok := store.FindByID("")
		assert.False(t, ok)
	})
}

func TestMemoryStoreFindByField(t *testing.T) {
	store := NewTransactionStore(seedTransactions())

	assert.Equal(t, []string{"T1", "T3"}, ids(store.FindByField(entity.FieldKind, entity.KindUPI)))
	assert.Equal(t, []string{"T2"}, ids(store.FindByField(entity.FieldState, entity.StatePending)))
	assert.Empty(t, store.FindByField(entity.FieldState, entity.StateFailed))
	assert.Empty(t, store.FindByField(entity.FieldKind, ""))
	assert.Empty(t, store.FindByField("colour", "upi"))

	// Exact match only
	assert.Empty(t, store.FindByField(entity.FieldKind, "UPI"))
}

func TestMemoryStoreFindByDate(t *testing.T) {
	store := NewTransactionStore(seedTransactions())

	assert.Equal(t, []string{"T1", "T2"}, ids(store.FindByDate(time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC))))
	assert.Equal(t, []string{"T3"}, ids(store.FindByDate(day(2024, 7, 21, 23))))
	assert.Empty(t, store.FindByDate(time.Time{}))
}

func TestMemoryStoreFindByDateRange(t *testing.T) {
	store := NewTransactionStore(seedTransactions())
	d20 := time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC)
	d21 := time.Date(2024, 7, 21, 0, 0, 0, 0, time.UTC)

	t.Run("Inclusive on both ends", func(t *testing.T) {
		assert.Equal(t, []string{"T1", "T2", "T3"}, ids(store.FindByDateRange(d20, d21)))
	})

	t.Run("Single day range", func(t *testing.T) {
		assert.Equal(t, []string{"T1", "T2"}, ids(store.FindByDateRange(d20, d20)))
	})

	t.Run("Time of day on bounds is ignored", func(t *testing.T) {
		assert.Equal(t, []string{"T3"}, ids(store.FindByDateRange(day(2024, 7, 21, 23), day(2024, 7, 21, 1))))
	})

	t.Run("Inverted range is empty", func(t *testing.T) {
		assert.Empty(t, store.FindByDateRange(d21, d20))
	})
}

func TestTransactionStoreFindByAmountRange(t *testing.T) {
	store := NewTransactionStore(seedTransactions())

	assert.Equal(t, []string{"T1", "T3"}, ids(store.FindByAmountRange(floatPtr(50), floatPtr(150))))
	assert.Equal(t, []string{"T1"}, ids(store.FindByAmountRange(floatPtr(100), floatPtr(100))))
	assert.Equal(t, []string{"T1", "T2"}, ids(store.FindByAmountRange(floatPtr(100), nil)))
	assert.Empty(t, store.FindByAmountRange(nil, floatPtr(1000)))
	assert.Empty(t, store.FindByAmountRange(floatPtr(300), floatPtr(200)))
}

func TestMemoryStoreCreate(t *testing.T) {
	store := NewTransactionStore(seedTransactions())
	tx := entity.Transaction{ID: "T4", Kind: entity.KindBank, Amount: 10, State: entity.StateFailed, OccurredAt: day(2024, 7, 22, 8)}

	created, ok := store.Create(tx)
	require.True(t, ok)
	assert.Equal(t, tx, created)
	assert.Equal(t, []string{"T1", "T2", "T3", "T4"}, ids(store.List()))

	// Duplicates are refused every time and never stored
	for i := 0; i < 2; i++ {
		_, ok = store.Create(entity.Transaction{ID: "T4", Kind: entity.KindUPI})
		assert.False(t, ok)
	}
	assert.Equal(t, 4, store.Len())
	got, _ := store.FindByID("T4")
	assert.Equal(t, entity.KindBank, got.Kind)
}

func TestMemoryStoreUpdate(t *testing.T) {
	store := NewTransactionStore(seedTransactions())

	t.Run("Replaces the whole record", func(t *testing.T) {
		updated, ok := store.Update(entity.Transaction{ID: "T2", Kind: entity.KindUPI})
		require.True(t, ok)
		assert.Equal(t, "T2", updated.ID)

		got, _ := store.FindByID("T2")
		assert.Equal(t, entity.KindUPI, got.Kind)
		assert.Equal(t, 0.0, got.Amount)
		assert.Equal(t, "", got.State)
		assert.True(t, got.OccurredAt.IsZero())
		assert.Equal(t, []string{"T1", "T2", "T3"}, ids(store.List()))
	})

	t.Run("Missing id", func(t *testing.T) {
		_, ok := store.Update(entity.Transaction{ID: "missing"})
		assert.False(t, ok)
		assert.Equal(t, 3, store.Len())
	})
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewTransactionStore(seedTransactions())

	assert.True(t, store.Delete("T1"))
	assert.False(t, store.Delete("T1"))
	assert.False(t, store.Delete(""))

	_, ok := store.FindByID("T1")
	assert.False(t, ok)
	assert.Equal(t, []string{"T2", "T3"}, ids(store.List()))
}

func TestMemoryStoreIsolation(t *testing.T) {
	seed := seedTransactions()
	store := NewTransactionStore(seed)

	// Mutating the seed slice or a listed copy must not reach the store
	seed[0].Amount = 999
	listed := store.List()
	listed[1].Amount = 999

	got, _ := store.FindByID("T1")
	assert.Equal(t, 100.00, got.Amount)
	got, _ = store.FindByID("T2")
	assert.Equal(t, 250.00, got.Amount)
}

func TestTransactionStatusStore(t *testing.T) {
	store := NewTransactionStatusStore([]entity.TransactionStatus{
		{ID: "S1", StatusType: "failed", Reason: "insufficient funds", Timestamp: day(2024, 7, 20, 10)},
		{ID: "S2", StatusType: "completed", Reason: "settled", Timestamp: day(2024, 7, 21, 11)},
	})

	assert.Equal(t, []string{"S1"}, ids(store.FindByField(entity.FieldReason, "insufficient funds")))
	assert.Equal(t, []string{"S2"}, ids(store.FindByField(entity.FieldStatusType, "completed")))
	assert.Equal(t, []string{"S2"}, ids(store.FindByDate(day(2024, 7, 21, 0))))
	assert.True(t, store.Delete("S2"))
	assert.Equal(t, []string{"S1"}, ids(store.List()))
}
