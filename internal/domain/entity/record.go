package entity

import "time"

// Layouts used when reading and printing record times
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)

// Record is the contract shared by every stored record kind
type Record interface {
	// RecordID returns the unique identifier of the record
	RecordID() string

	// RecordTime returns the timestamp used by date filters
	RecordTime() time.Time

	// Field returns the value of a named string field and whether the name is known
	Field(name string) (string, bool)
}

// DateOnly drops the time of day, keeping the calendar date as seen in t's own location.
// The result is midnight UTC so dates from different locations compare by calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether a and b fall on the same calendar date
func SameDate(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}

// DateWithin reports whether t's date lies in [start, end], comparing dates only
func DateWithin(t, start, end time.Time) bool {
	d := DateOnly(t)
	return !d.Before(DateOnly(start)) && !d.After(DateOnly(end))
}
