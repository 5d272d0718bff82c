package service

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/damon-houk/ezpay-transaction-manager/internal/domain/entity"
	"github.com/damon-houk/ezpay-transaction-manager/internal/domain/repository"
	"github.com/damon-houk/ezpay-transaction-manager/internal/infrastructure/logger"
	"github.com/google/uuid"
)

// Category describes a field that can be queried by exact value
type Category struct {
	// Field is the record field name passed to the repository
	Field string
	// Allowed restricts accepted values; empty means any non-empty value
	Allowed []string
}

// RecordService validates input before delegating to a record repository.
// A lookup miss is an ordinary result; only malformed input produces an error.
type RecordService[T entity.Record] struct {
	repo       repository.RecordRepository[T]
	logger     logger.Logger
	categories map[string]Category
	withID     func(T, string) T
}

func newRecordService[T entity.Record](
	repo repository.RecordRepository[T],
	log logger.Logger,
	name string,
	categories map[string]Category,
	withID func(T, string) T,
) *RecordService[T] {
	return &RecordService[T]{
		repo:       repo,
		logger:     logger.OrDefault(log).WithField("record", name),
		categories: categories,
		withID:     withID,
	}
}

// GetByID retrieves a record by identifier. The bool is false when no record matches.
func (s *RecordService[T]) GetByID(id string) (T, bool, error) {
	var zero T
	if strings.TrimSpace(id) == "" {
		return zero, false, s.reject("get_by_id", fmt.Errorf("%w: id must not be empty", ErrInvalidIdentifier))
	}

	record, ok := s.repo.FindByID(id)
	s.logger.Debug("Lookup by id", logger.Fields{"id": id, "found": ok})
	return record, ok, nil
}

// GetByCategory returns records whose field equals value.
// The field name must be a known category and value must be one of its allowed values.
func (s *RecordService[T]) GetByCategory(field, value string) ([]T, error) {
	category, ok := s.categories[field]
	if !ok {
		return nil, s.reject("get_by_category", fmt.Errorf("%w: unknown field %q", ErrInvalidCategory, field))
	}
	if strings.TrimSpace(value) == "" {
		return nil, s.reject("get_by_category", fmt.Errorf("%w: %s must not be empty", ErrInvalidCategory, category.Field))
	}
	if len(category.Allowed) > 0 && !slices.Contains(category.Allowed, value) {
		return nil, s.reject("get_by_category", fmt.Errorf("%w: %s %q must be one of %s",
			ErrInvalidCategory, category.Field, value, strings.Join(category.Allowed, ", ")))
	}

	records := s.repo.FindByField(category.Field, value)
	s.logger.Debug("Lookup by category", logger.Fields{"field": category.Field, "value": value, "matches": len(records)})
	return records, nil
}

// GetByDate returns records timestamped on the given calendar date
func (s *RecordService[T]) GetByDate(date time.Time) ([]T, error) {
	if date.IsZero() {
		return nil, s.reject("get_by_date", fmt.Errorf("%w: date is required", ErrInvalidDate))
	}

	records := s.repo.FindByDate(date)
	s.logger.Debug("Lookup by date", logger.Fields{"date": date.Format(entity.DateLayout), "matches": len(records)})
	return records, nil
}

// GetByDateRange returns records dated within [start, end], both inclusive
func (s *RecordService[T]) GetByDateRange(start, end time.Time) ([]T, error) {
	if start.IsZero() || end.IsZero() {
		return nil, s.reject("get_by_date_range", fmt.Errorf("%w: start and end dates are required", ErrInvalidDate))
	}
	if entity.DateOnly(start).After(entity.DateOnly(end)) {
		return nil, s.reject("get_by_date_range", fmt.Errorf("%w: start %s is after end %s",
			ErrInvalidRange, start.Format(entity.DateLayout), end.Format(entity.DateLayout)))
	}

	records := s.repo.FindByDateRange(start, end)
	s.logger.Debug("Lookup by date range", logger.Fields{
		"start":   start.Format(entity.DateLayout),
		"end":     end.Format(entity.DateLayout),
		"matches": len(records),
	})
	return records, nil
}

// List returns every record in insertion order
func (s *RecordService[T]) List() []T {
	return s.repo.List()
}

// Create stores a new record and returns the stored value.
// A record without an identifier is assigned a random UUID; a taken identifier is refused.
func (s *RecordService[T]) Create(record *T) (T, error) {
	var zero T
	if record == nil {
		return zero, s.reject("create", fmt.Errorf("%w: record is required", ErrInvalidRecord))
	}

	r := *record
	if r.RecordID() == "" {
		r = s.withID(r, uuid.New().String())
	}

	created, ok := s.repo.Create(r)
	if !ok {
		return zero, s.reject("create", fmt.Errorf("%w: %q already exists", ErrDuplicateIdentifier, r.RecordID()))
	}

	s.logger.Info("Record created", logger.Fields{"id": created.RecordID()})
	return created, nil
}

// Update replaces the stored record that has the same identifier
func (s *RecordService[T]) Update(record *T) (T, error) {
	var zero T
	if record == nil {
		return zero, s.reject("update", fmt.Errorf("%w: record is required", ErrInvalidRecord))
	}

	updated, ok := s.repo.Update(*record)
	if !ok {
		return zero, s.reject("update", fmt.Errorf("%w: %q", ErrNotFound, (*record).RecordID()))
	}

	s.logger.Info("Record updated", logger.Fields{"id": updated.RecordID()})
	return updated, nil
}

// Delete removes a record and reports whether one existed
func (s *RecordService[T]) Delete(id string) (bool, error) {
	if strings.TrimSpace(id) == "" {
		return false, s.reject("delete", fmt.Errorf("%w: id must not be empty", ErrInvalidIdentifier))
	}

	deleted := s.repo.Delete(id)
	s.logger.Info("Delete requested", logger.Fields{"id": id, "deleted": deleted})
	return deleted, nil
}

func (s *RecordService[T]) reject(operation string, err error) error {
	s.logger.Warn("Request rejected", logger.Fields{"operation": operation, "error": err})
	return err
}
