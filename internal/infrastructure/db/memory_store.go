package db

import (
	"time"

	"github.com/damon-houk/ezpay-transaction-manager/internal/domain/entity"
)

// MemoryStore keeps records of one kind in insertion order.
// It performs existence checks only; input validation belongs to the service layer.
// MemoryStore is not safe for concurrent use; callers sharing a store must serialise access.
type MemoryStore[T entity.Record] struct {
	records []T
}

// NewMemoryStore creates a store holding a copy of the given records.
// Seed records must already carry unique identifiers.
func NewMemoryStore[T entity.Record](seed []T) *MemoryStore[T] {
	records := make([]T, len(seed))
	copy(records, seed)
	return &MemoryStore[T]{records: records}
}

// FindByID retrieves a record by its exact identifier
func (s *MemoryStore[T]) FindByID(id string) (T, bool) {
	var zero T
	if id == "" {
		return zero, false
	}
	i := s.indexOf(id)
	if i < 0 {
		return zero, false
	}
	return s.records[i], true
}

// FindByField returns records whose named field equals value exactly
func (s *MemoryStore[T]) FindByField(field, value string) []T {
	if value == "" {
		return []T{}
	}
	return s.filter(func(r T) bool {
		v, ok := r.Field(field)
		return ok && v == value
	})
}

// FindByDate returns records whose timestamp falls on the same calendar date
func (s *MemoryStore[T]) FindByDate(date time.Time) []T {
	if date.IsZero() {
		return []T{}
	}
	return s.filter(func(r T) bool {
		return entity.SameDate(r.RecordTime(), date)
	})
}

// FindByDateRange returns records dated within [start, end], both ends inclusive.
// An inverted range yields no records.
func (s *MemoryStore[T]) FindByDateRange(start, end time.Time) []T {
	if start.IsZero() || end.IsZero() || entity.DateOnly(start).After(entity.DateOnly(end)) {
		return []T{}
	}
	return s.filter(func(r T) bool {
		return entity.DateWithin(r.RecordTime(), start, end)
	})
}

// List returns every record in insertion order
func (s *MemoryStore[T]) List() []T {
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of stored records
func (s *MemoryStore[T]) Len() int {
	return len(s.records)
}

// Create appends a record. It returns false without storing anything when the id is already present.
func (s *MemoryStore[T]) Create(record T) (T, bool) {
	if s.indexOf(record.RecordID()) >= 0 {
		var zero T
		return zero, false
	}
	s.records = append(s.records, record)
	return record, true
}

// Update replaces the record that has the same identifier
func (s *MemoryStore[T]) Update(record T) (T, bool) {
	i := s.indexOf(record.RecordID())
	if i < 0 {
		var zero T
		return zero, false
	}
	s.records[i] = record
	return record, true
}

// Delete removes the record with the given identifier and reports whether one was removed
func (s *MemoryStore[T]) Delete(id string) bool {
	if id == "" {
		return false
	}
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	return true
}

func (s *MemoryStore[T]) indexOf(id string) int {
	for i, r := range s.records {
		if r.RecordID() == id {
			return i
		}
	}
	return -1
}

func (s *MemoryStore[T]) filter(match func(T) bool) []T {
	out := []T{}
	for _, r := range s.records {
		if match(r) {
			out = append(out, r)
		}
	}
	return out
}
