package domain

// TaskDefinition is one node of the static turnaround task graph. Definitions
// are loaded once at process start and never mutated.
type TaskDefinition struct {
	// ID is the stable integer identifier, contiguous from 0.
	ID int
	// Key is the mnemonic identifier used for dependency references.
	Key   string
	Title string
	Team  Team
	// TimeoutMin is the maximum number of minutes allowed between "all
	// predecessors satisfied" and "this task completed". A task with no
	// predecessors measures it from the scheduled arrival. Zero means the
	// task is an instantaneous milestone.
	TimeoutMin int
	// Dependencies holds the keys of predecessor tasks. Must form a DAG
	// across the whole catalog; validated at catalog construction.
	Dependencies []string
}

// IsMilestone reports whether the task is an instantaneous event rather than
// a duration. Milestones can slip by start time but are never duration-late.
func (t TaskDefinition) IsMilestone() bool {
	return t.TimeoutMin == 0
}
