package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validTurnaround() Turnaround {
	arrival := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	return Turnaround{
		ID:                 "11111111-2222-3333-4444-555555555555",
		FlightNumber:       "LH1829",
		ScheduledArrival:   arrival,
		ScheduledDeparture: arrival.Add(50 * time.Minute),
	}
}

func TestTurnaround_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Turnaround)
		wantErr string
	}{
		{"valid", func(*Turnaround) {}, ""},
		{"valid with suffix letter", func(t *Turnaround) { t.FlightNumber = "EW501A" }, ""},
		{"valid three-letter designator", func(t *Turnaround) { t.FlightNumber = "DLH4" }, ""},
		{"lowercase flight number", func(t *Turnaround) { t.FlightNumber = "lh1829" }, "flight number"},
		{"digits only", func(t *Turnaround) { t.FlightNumber = "1829" }, "flight number"},
		{"empty flight number", func(t *Turnaround) { t.FlightNumber = "" }, "flight number"},
		{"missing arrival", func(t *Turnaround) { t.ScheduledArrival = time.Time{} }, "arrival is required"},
		{"missing departure", func(t *Turnaround) { t.ScheduledDeparture = time.Time{} }, "departure is required"},
		{"departure equals arrival", func(t *Turnaround) { t.ScheduledDeparture = t.ScheduledArrival }, "after scheduled arrival"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := validTurnaround()
			tc.mutate(&tr)
			err := tr.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tc.wantErr)
			}
		})
	}
}

func TestTurnaround_DisplayID(t *testing.T) {
	tr := validTurnaround()
	assert.Equal(t, "LH1829", tr.DisplayID())

	tr.FlightNumber = ""
	assert.Equal(t, "11111111", tr.DisplayID())

	tr.ID = "short"
	assert.Equal(t, "short", tr.DisplayID())
}

func TestTurnaround_Cancelled(t *testing.T) {
	tr := validTurnaround()
	assert.False(t, tr.Cancelled())

	tr.Status = TurnaroundCancelled
	assert.True(t, tr.Cancelled())
}
