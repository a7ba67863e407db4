// Package app defines the request and response types exchanged between the
// service layer and its consumers. These are the presentation adapter's input
// contract: whatever renders the timeline only ever sees these shapes.
package app

import (
	"time"

	"github.com/alexanderramin/tarmac/internal/domain"
)

type BoardRequest struct {
	// TurnaroundID accepts a turnaround UUID, a UUID prefix, or a flight
	// number.
	TurnaroundID string
	// Now overrides the projection clock; nil means time.Now.
	Now *time.Time
	// SLAMin overrides the delay threshold; zero means the default.
	SLAMin int
}

func NewBoardRequest(turnaroundID string) BoardRequest {
	return BoardRequest{TurnaroundID: turnaroundID}
}

// TaskView is one row of the projected schedule.
type TaskView struct {
	TaskID           int
	Key              string
	Title            string
	Team             domain.Team
	PlannedStart     time.Time
	PlannedEnd       time.Time
	ActualCompletion *time.Time
	Status           domain.TaskStatus
	Delay            domain.DelayBucket
	DelayMin         int
}

type TurnaroundView struct {
	ID                 string
	FlightNumber       string
	Stand              string
	ScheduledArrival   time.Time
	ScheduledDeparture time.Time
	Status             domain.TurnaroundStatus
	CancelledAt        *time.Time
}

type BoardResponse struct {
	Turnaround TurnaroundView
	Tasks      []TaskView
	// ProgressPct counts completed tasks against the catalog size.
	ProgressPct int
	// Status is the SLA classification, or cancelled when the turnaround
	// was cancelled externally.
	Status domain.TurnaroundStatus
	// DurationMin is the projected turnaround duration in minutes.
	DurationMin int
	GeneratedAt time.Time
	Warnings    []string
}

// BoardSummaryView is one line of the fleet-wide status overview.
type BoardSummaryView struct {
	Turnaround  TurnaroundView
	ProgressPct int
	Status      domain.TurnaroundStatus
	DurationMin int
}

type StatusResponse struct {
	GeneratedAt    time.Time
	Boards         []BoardSummaryView
	CountOnTime    int
	CountDelayed   int
	CountCancelled int
}
