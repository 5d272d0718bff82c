package entity

import (
	"fmt"
	"time"
)

// Transaction kinds accepted by the service
const (
	KindUPI  = "upi"
	KindBank = "bank"
)

// Transaction states accepted by the service
const (
	StateInitiated = "initiated"
	StatePending   = "pending"
	StateCompleted = "completed"
	StateFailed    = "failed"
)

// Field names understood by Transaction.Field
const (
	FieldID    = "id"
	FieldKind  = "kind"
	FieldState = "state"
)

// TransactionKinds lists every valid Transaction.Kind
var TransactionKinds = []string{KindUPI, KindBank}

// TransactionStates lists every valid Transaction.State
var TransactionStates = []string{StateInitiated, StatePending, StateCompleted, StateFailed}

// Transaction represents a payment made over UPI or a bank transfer
type Transaction struct {
	ID         string    `json:"id" validate:"required"`
	Kind       string    `json:"kind" validate:"required,oneof=upi bank"`
	Amount     float64   `json:"amount"`
	State      string    `json:"state" validate:"required,oneof=initiated pending completed failed"`
	OccurredAt time.Time `json:"occurredAt" validate:"required"`
}

// RecordID returns the transaction identifier
func (t Transaction) RecordID() string {
	return t.ID
}

// RecordTime returns the moment the transaction occurred
func (t Transaction) RecordTime() time.Time {
	return t.OccurredAt
}

// Field returns the string value of a named categorical field
func (t Transaction) Field(name string) (string, bool) {
	switch name {
	case FieldID:
		return t.ID, true
	case FieldKind:
		return t.Kind, true
	case FieldState:
		return t.State, true
	default:
		return "", false
	}
}

// String renders the transaction in seed-file column order
func (t Transaction) String() string {
	return fmt.Sprintf("%s, %s, %.2f, %s, %s", t.ID, t.Kind, t.Amount, t.State, t.OccurredAt.Format(TimestampLayout))
}
