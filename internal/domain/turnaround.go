package domain

import (
	"fmt"
	"regexp"
	"time"
)

var flightNumberPattern = regexp.MustCompile(`^[A-Z]{2,3}[0-9]{1,4}[A-Z]?$`)

// Turnaround is one ground-operations cycle for an aircraft between arrival
// and the next departure.
type Turnaround struct {
	ID           string
	FlightNumber string
	Stand        string
	// ScheduledArrival anchors every root task's planned start.
	ScheduledArrival time.Time
	// ScheduledDeparture is an SLA reference only, never a scheduling input,
	// except for the backward anchoring of tasks outside the dependency graph.
	ScheduledDeparture time.Time
	Status             TurnaroundStatus
	CancelledAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Validate checks the fields a turnaround needs before it can be stored.
func (t *Turnaround) Validate() error {
	if !flightNumberPattern.MatchString(t.FlightNumber) {
		return fmt.Errorf("flight number %q must be an IATA/ICAO designator followed by digits (e.g. LH1829)", t.FlightNumber)
	}
	if t.ScheduledArrival.IsZero() {
		return fmt.Errorf("scheduled arrival is required")
	}
	if t.ScheduledDeparture.IsZero() {
		return fmt.Errorf("scheduled departure is required")
	}
	if !t.ScheduledDeparture.After(t.ScheduledArrival) {
		return fmt.Errorf("scheduled departure must be after scheduled arrival")
	}
	return nil
}

// Cancelled reports whether the turnaround has been externally cancelled.
// Cancelled is terminal; the projection core never computes it.
func (t *Turnaround) Cancelled() bool {
	return t.Status == TurnaroundCancelled
}

// DisplayID returns the best short identifier for display: the flight number
// when set, else the ID truncated to 8 characters.
func (t *Turnaround) DisplayID() string {
	if t.FlightNumber != "" {
		return t.FlightNumber
	}
	if len(t.ID) > 8 {
		return t.ID[:8]
	}
	return t.ID
}
