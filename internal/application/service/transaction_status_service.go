package service

import (
	"github.com/damon-houk/ezpay-transaction-manager/internal/domain/entity"
	"github.com/damon-houk/ezpay-transaction-manager/internal/domain/repository"
	"github.com/damon-houk/ezpay-transaction-manager/internal/infrastructure/logger"
)

// TransactionStatusService handles validation and queries for transaction statuses.
// Status types and reasons are free-form; they only need to be non-empty.
type TransactionStatusService struct {
	*RecordService[entity.TransactionStatus]
}

// NewTransactionStatusService creates a new transaction status service
func NewTransactionStatusService(repo repository.TransactionStatusRepository, log logger.Logger) *TransactionStatusService {
	categories := map[string]Category{
		entity.FieldStatusType: {Field: entity.FieldStatusType},
		entity.FieldReason:     {Field: entity.FieldReason},
	}

	withID := func(s entity.TransactionStatus, id string) entity.TransactionStatus {
		s.ID = id
		return s
	}

	return &TransactionStatusService{
		RecordService: newRecordService[entity.TransactionStatus](repo, log, "transaction_status", categories, withID),
	}
}

// GetByStatusType returns statuses with the given status type
func (s *TransactionStatusService) GetByStatusType(statusType string) ([]entity.TransactionStatus, error) {
	return s.GetByCategory(entity.FieldStatusType, statusType)
}

// GetByReason returns statuses recorded for the given reason
func (s *TransactionStatusService) GetByReason(reason string) ([]entity.TransactionStatus, error) {
	return s.GetByCategory(entity.FieldReason, reason)
}
