// Package mocks provides testify mocks of the repository and logger interfaces.
package mocks

import (
	"time"

	"github.com/damon-houk/ezpay-transaction-manager/internal/domain/entity"
	"github.com/damon-houk/ezpay-transaction-manager/internal/infrastructure/logger"
	"github.com/stretchr/testify/mock"
)

// MockRecordRepository mocks the generic RecordRepository interface
type MockRecordRepository[T entity.Record] struct {
	mock.Mock
}

func (m *MockRecordRepository[T]) FindByID(id string) (T, bool) {
	args := m.MethodCalled("FindByID", id)
	return recordArg[T](args, 0), args.Bool(1)
}

func (m *MockRecordRepository[T]) FindByField(field, value string) []T {
	args := m.MethodCalled("FindByField", field, value)
	return recordsArg[T](args, 0)
}

func (m *MockRecordRepository[T]) FindByDate(date time.Time) []T {
	args := m.MethodCalled("FindByDate", date)
	return recordsArg[T](args, 0)
}

func (m *MockRecordRepository[T]) FindByDateRange(start, end time.Time) []T {
	args := m.MethodCalled("FindByDateRange", start, end)
	return recordsArg[T](args, 0)
}

func (m *MockRecordRepository[T]) List() []T {
	args := m.MethodCalled("List")
	return recordsArg[T](args, 0)
}

func (m *MockRecordRepository[T]) Create(record T) (T, bool) {
	args := m.MethodCalled("Create", record)
	return recordArg[T](args, 0), args.Bool(1)
}

func (m *MockRecordRepository[T]) Update(record T) (T, bool) {
	args := m.MethodCalled("Update", record)
	return recordArg[T](args, 0), args.Bool(1)
}

func (m *MockRecordRepository[T]) Delete(id string) bool {
	args := m.MethodCalled("Delete", id)
	return args.Bool(0)
}

// MockTransactionRepository mocks the TransactionRepository interface
type MockTransactionRepository struct {
	MockRecordRepository[entity.Transaction]
}

func (m *MockTransactionRepository) FindByAmountRange(start, end *float64) []entity.Transaction {
	args := m.MethodCalled("FindByAmountRange", start, end)
	return recordsArg[entity.Transaction](args, 0)
}

// MockTransactionStatusRepository mocks the TransactionStatusRepository interface
type MockTransactionStatusRepository struct {
	MockRecordRepository[entity.TransactionStatus]
}

func recordArg[T any](args mock.Arguments, i int) T {
	var zero T
	if args.Get(i) == nil {
		return zero
	}
	return args.Get(i).(T)
}

func recordsArg[T any](args mock.Arguments, i int) []T {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).([]T)
}

// MockLogger mocks the logger interface
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(msg string, fields logger.Fields) {
	m.Called(msg, fields)
}

func (m *MockLogger) Info(msg string, fields logger.Fields) {
	m.Called(msg, fields)
}

func (m *MockLogger) Warn(msg string, fields logger.Fields) {
	m.Called(msg, fields)
}

func (m *MockLogger) Error(msg string, fields logger.Fields) {
	m.Called(msg, fields)
}

func (m *MockLogger) Fatal(msg string, fields logger.Fields) {
	m.Called(msg, fields)
}

func (m *MockLogger) WithField(key string, value interface{}) logger.Logger {
	args := m.Called(key, value)
	return args.Get(0).(logger.Logger)
}

func (m *MockLogger) WithFields(fields logger.Fields) logger.Logger {
	args := m.Called(fields)
	return args.Get(0).(logger.Logger)
}
