package service

import (
	"fmt"

	"github.com/damon-houk/ezpay-transaction-manager/internal/domain/entity"
	"github.com/damon-houk/ezpay-transaction-manager/internal/domain/repository"
	"github.com/damon-houk/ezpay-transaction-manager/internal/infrastructure/logger"
)

// TransactionService handles validation and queries for transactions
type TransactionService struct {
	*RecordService[entity.Transaction]
	repo repository.TransactionRepository
}

// NewTransactionService creates a new transaction service
func NewTransactionService(repo repository.TransactionRepository, log logger.Logger) *TransactionService {
	kind := Category{Field: entity.FieldKind, Allowed: entity.TransactionKinds}
	state := Category{Field: entity.FieldState, Allowed: entity.TransactionStates}

	categories := map[string]Category{
		entity.FieldKind:  kind,
		"type":            kind,
		entity.FieldState: state,
		"status":          state,
	}

	withID := func(t entity.Transaction, id string) entity.Transaction {
		t.ID = id
		return t
	}

	return &TransactionService{
		RecordService: newRecordService[entity.Transaction](repo, log, "transaction", categories, withID),
		repo:          repo,
	}
}

// GetByType returns transactions of the given kind (upi or bank)
func (s *TransactionService) GetByType(kind string) ([]entity.Transaction, error) {
	return s.GetByCategory(entity.FieldKind, kind)
}

// GetByState returns transactions in the given state
func (s *TransactionService) GetByState(state string) ([]entity.Transaction, error) {
	return s.GetByCategory(entity.FieldState, state)
}

// GetByAmountRange returns transactions with start <= amount <= end. Both bounds are required.
func (s *TransactionService) GetByAmountRange(start, end *float64) ([]entity.Transaction, error) {
	if start == nil || end == nil {
		return nil, s.reject("get_by_amount_range", fmt.Errorf("%w: start and end amounts are required", ErrInvalidRange))
	}
	// Negated so NaN bounds are rejected too
	if !(*start <= *end) {
		return nil, s.reject("get_by_amount_range", fmt.Errorf("%w: start %.2f is greater than end %.2f", ErrInvalidRange, *start, *end))
	}

	records := s.repo.FindByAmountRange(start, end)
	s.logger.Debug("Lookup by amount range", logger.Fields{"start": *start, "end": *end, "matches": len(records)})
	return records, nil
}
