package domain

// Team identifies the party responsible for executing a turnaround task.
type Team string

const (
	TeamGroundHandling Team = "GROUND_HANDLING_PROVIDER"
	TeamGateBoarding   Team = "GATE_BOARDING_AGENTS"
	TeamFuel           Team = "FUEL_CLH"
	TeamCleaning       Team = "CLEANING"
	TeamCatering       Team = "CATERING"
	TeamFlightCrew     Team = "FLIGHT_CREW"
)

// ValidTeams is the canonical set of accepted team strings.
var ValidTeams = map[string]bool{
	"GROUND_HANDLING_PROVIDER": true,
	"GATE_BOARDING_AGENTS":     true,
	"FUEL_CLH":                 true,
	"CLEANING":                 true,
	"CATERING":                 true,
	"FLIGHT_CREW":              true,
}

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

// DelayBucket is the three-way severity of a completed task against its
// dependency-driven planned end: on time, exactly one minute over (grace),
// or more than one minute over.
type DelayBucket string

const (
	DelayOnTime DelayBucket = "on_time"
	DelayGrace  DelayBucket = "grace"
	DelayLate   DelayBucket = "late"
)

type TurnaroundStatus string

const (
	TurnaroundOnTime    TurnaroundStatus = "on_time"
	TurnaroundDelayed   TurnaroundStatus = "delayed"
	TurnaroundCancelled TurnaroundStatus = "cancelled"
)
