package entity

import (
	"fmt"
	"time"
)

// Field names understood by TransactionStatus.Field
const (
	FieldStatusType = "statusType"
	FieldReason     = "reason"
)

// TransactionStatus records a status change and why it happened
type TransactionStatus struct {
	ID         string    `json:"id" validate:"required"`
	StatusType string    `json:"statusType" validate:"required"`
	Reason     string    `json:"reason" validate:"required"`
	Timestamp  time.Time `json:"timestamp" validate:"required"`
}

// RecordID returns the status identifier
func (s TransactionStatus) RecordID() string {
	return s.ID
}

// RecordTime returns when the status was recorded
func (s TransactionStatus) RecordTime() time.Time {
	return s.Timestamp
}

// Field returns the string value of a named categorical field
func (s TransactionStatus) Field(name string) (string, bool) {
	switch name {
	case FieldID:
		return s.ID, true
	case FieldStatusType:
		return s.StatusType, true
	case FieldReason:
		return s.Reason, true
	default:
		return "", false
	}
}

// String renders the status in seed-file column order
func (s TransactionStatus) String() string {
	return fmt.Sprintf("%s, %s, %s, %s", s.ID, s.StatusType, s.Reason, s.Timestamp.Format(TimestampLayout))
}
