package testutil

import (
	"time"

	"github.com/alexanderramin/tarmac/internal/domain"
	"github.com/google/uuid"
)

// Turnaround options
type TurnaroundOption func(*domain.Turnaround)

func WithFlightNumber(fn string) TurnaroundOption {
	return func(t *domain.Turnaround) {
		t.FlightNumber = fn
	}
}

func WithStand(stand string) TurnaroundOption {
	return func(t *domain.Turnaround) {
		t.Stand = stand
	}
}

func WithSchedule(arrival, departure time.Time) TurnaroundOption {
	return func(t *domain.Turnaround) {
		t.ScheduledArrival = arrival
		t.ScheduledDeparture = departure
	}
}

func WithTurnaroundStatus(s domain.TurnaroundStatus) TurnaroundOption {
	return func(t *domain.Turnaround) {
		t.Status = s
	}
}

// NewTurnaround builds a valid turnaround with sensible defaults: arrival at
// 2025-01-01T10:00Z, a 50-minute ground time, status on_time.
func NewTurnaround(opts ...TurnaroundOption) *domain.Turnaround {
	arrival := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	now := time.Now().UTC()
	t := &domain.Turnaround{
		ID:                 uuid.New().String(),
		FlightNumber:       "LH1829",
		ScheduledArrival:   arrival,
		ScheduledDeparture: arrival.Add(50 * time.Minute),
		Status:             domain.TurnaroundOnTime,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewCompletion builds a completion record for the given turnaround and task.
func NewCompletion(turnaroundID string, taskID int, completedAt time.Time) *domain.TaskCompletion {
	return &domain.TaskCompletion{
		TurnaroundID: turnaroundID,
		TaskID:       taskID,
		CompletedAt:  completedAt,
		SubmittedAt:  completedAt.Add(30 * time.Second),
	}
}
