package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOnly(t *testing.T) {
	morning := time.Date(2024, 7, 20, 0, 0, 1, 0, time.UTC)
	night := time.Date(2024, 7, 20, 23, 59, 59, 999, time.UTC)

	assert.Equal(t, time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC), DateOnly(morning))
	assert.True(t, SameDate(morning, night))
	assert.False(t, SameDate(night, night.Add(time.Second)))

	// Calendar date is taken in the timestamp's own location
	ist := time.FixedZone("IST", 5*3600+1800)
	lateIST := time.Date(2024, 7, 21, 1, 0, 0, 0, ist)
	assert.Equal(t, time.Date(2024, 7, 21, 0, 0, 0, 0, time.UTC), DateOnly(lateIST))
}

func TestDateWithin(t *testing.T) {
	start := time.Date(2024, 7, 20, 18, 0, 0, 0, time.UTC)
	end := time.Date(2024, 7, 21, 6, 0, 0, 0, time.UTC)

	assert.True(t, DateWithin(time.Date(2024, 7, 20, 1, 0, 0, 0, time.UTC), start, end))
	assert.True(t, DateWithin(time.Date(2024, 7, 21, 23, 0, 0, 0, time.UTC), start, end))
	assert.False(t, DateWithin(time.Date(2024, 7, 22, 0, 0, 0, 0, time.UTC), start, end))
	assert.False(t, DateWithin(time.Date(2024, 7, 20, 1, 0, 0, 0, time.UTC), end, start))
}

func TestRecordFields(t *testing.T) {
	tx := Transaction{ID: "T1", Kind: KindUPI, State: StateCompleted}
	v, ok := tx.Field(FieldKind)
	assert.True(t, ok)
	assert.Equal(t, KindUPI, v)
	_, ok = tx.Field(FieldReason)
	assert.False(t, ok)

	st := TransactionStatus{ID: "S1", StatusType: "failed", Reason: "timeout"}
	v, ok = st.Field(FieldReason)
	assert.True(t, ok)
	assert.Equal(t, "timeout", v)
	_, ok = st.Field(FieldKind)
	assert.False(t, ok)
}
