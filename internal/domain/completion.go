package domain

import "time"

// TaskCompletion records that a task was marked done for one turnaround.
// At most one completion per task is retained: when several records exist for
// the same task the earliest CompletedAt is authoritative.
type TaskCompletion struct {
	TurnaroundID string
	TaskID       int
	// CompletedAt is the authoritative "happened" time.
	CompletedAt time.Time
	// SubmittedAt is when the record was submitted. Display and audit only;
	// never an input to scheduling math.
	SubmittedAt time.Time
}

// Valid reports whether the record carries a usable completion timestamp.
// Malformed records are skipped individually; the task simply stays pending.
func (c TaskCompletion) Valid() bool {
	return !c.CompletedAt.IsZero()
}
