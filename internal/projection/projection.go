// Package projection computes the live turnaround schedule: planned start and
// end times for every task, blended with known actual completions, plus the
// aggregate delay signal. Every pass is a pure function of its input; nothing
// is retained between calls.
package projection

import (
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/tarmac/internal/catalog"
	"github.com/alexanderramin/tarmac/internal/domain"
)

// DefaultSLAMin is the maximum turnaround duration in minutes before the
// turnaround is classified delayed.
const DefaultSLAMin = 40

// Input carries everything one projection pass needs. Completions must
// already be deduplicated to one record per task (see DedupCompletions).
type Input struct {
	Catalog            *catalog.Catalog
	ScheduledArrival   time.Time
	ScheduledDeparture time.Time
	// Now drives the pending/in-progress heuristic only.
	Now         time.Time
	Completions map[int]domain.TaskCompletion
}

// TaskProjection is the computed schedule for a single task.
type TaskProjection struct {
	TaskID int
	Key    string
	Title  string
	Team   domain.Team
	// PlannedStart is the earliest the task could start given known
	// completions and worst-case estimates for pending predecessors.
	PlannedStart time.Time
	// PlannedEnd is PlannedStart plus the task timeout. It deliberately
	// ignores the task's own completion so that a completed task can be
	// judged against the dependency-driven estimate.
	PlannedEnd       time.Time
	ActualCompletion *time.Time
	Status           domain.TaskStatus
	// Delay classifies a completed task against PlannedEnd. Pending and
	// in-progress tasks are always DelayOnTime.
	Delay domain.DelayBucket
	// DelayMin is the rounded number of minutes the completion overran
	// PlannedEnd. Zero unless the task is completed and late.
	DelayMin int
}

// Result is the output of one projection pass.
type Result struct {
	Tasks []TaskProjection
	// MaxProjectedCompletion is the latest effective end across all tasks:
	// actual completion where known, worst-case estimate otherwise.
	MaxProjectedCompletion time.Time
	// DurationMin is the projected turnaround duration in minutes, from
	// scheduled arrival to MaxProjectedCompletion.
	DurationMin int
	// Warnings reports data-integrity fallbacks taken during the pass.
	// A non-empty slice means some planned time is an anchor-time guess.
	Warnings []string
}

// pass holds the per-call memo. Discarded when Project returns.
type pass struct {
	in        Input
	endMemo   map[int]time.Time
	resolving map[int]bool
	warnings  []string
}

// Project runs a single forward dependency-resolved projection. It is
// deterministic and side-effect-free: identical inputs produce identical
// results, and concurrent calls never share state.
func Project(in Input) Result {
	p := &pass{
		in:        in,
		endMemo:   make(map[int]time.Time, in.Catalog.Size()),
		resolving: make(map[int]bool),
	}

	defs := in.Catalog.All()
	res := Result{
		Tasks:                  make([]TaskProjection, 0, len(defs)),
		MaxProjectedCompletion: in.ScheduledArrival,
	}

	for _, def := range defs {
		start := p.plannedStart(def)
		end := start.Add(minutes(def.TimeoutMin))

		tp := TaskProjection{
			TaskID:       def.ID,
			Key:          def.Key,
			Title:        def.Title,
			Team:         def.Team,
			PlannedStart: start,
			PlannedEnd:   end,
			Status:       domain.TaskPending,
			Delay:        domain.DelayOnTime,
		}

		if c, ok := in.Completions[def.ID]; ok && c.Valid() {
			completed := c.CompletedAt
			tp.ActualCompletion = &completed
			tp.Status = domain.TaskCompleted
			tp.Delay, tp.DelayMin = classifyDelay(completed, end)
		} else if end.Before(in.Now) {
			// Overdue against its own projected window: a heuristic
			// "should be running" signal, not ground truth.
			tp.Status = domain.TaskInProgress
		}

		res.Tasks = append(res.Tasks, tp)

		if eff := p.effectiveEnd(def); eff.After(res.MaxProjectedCompletion) {
			res.MaxProjectedCompletion = eff
		}
	}

	res.DurationMin = roundMinutes(res.MaxProjectedCompletion.Sub(in.ScheduledArrival))
	res.Warnings = p.warnings
	return res
}

// plannedStart resolves when the task could start: the scheduled arrival for
// root tasks, otherwise the latest effective end among its dependencies. The
// task's own completion is never consulted here.
func (p *pass) plannedStart(def domain.TaskDefinition) time.Time {
	if len(def.Dependencies) == 0 {
		// Preserved heuristic: a task outside the dependency graph
		// entirely (nothing depends on it either) anchors backward from
		// scheduled departure, assuming it must finish by then.
		// TODO: revisit; an isolated task may deserve independent
		// scheduling instead of departure-relative anchoring.
		if len(p.in.Catalog.Dependents(def.Key)) == 0 {
			return p.in.ScheduledDeparture.Add(-minutes(def.TimeoutMin))
		}
		return p.in.ScheduledArrival
	}

	start := p.in.ScheduledArrival
	for _, depKey := range def.Dependencies {
		dep, ok := p.in.Catalog.ByKey(depKey)
		if !ok {
			// Impossible after catalog validation; recover locally so the
			// rest of the timeline still renders.
			p.warnf("task %q: dependency %q not in catalog, treating as satisfied at arrival", def.Key, depKey)
			continue
		}
		if end := p.effectiveEnd(dep); end.After(start) {
			start = end
		}
	}
	return start
}

// effectiveEnd is the time a dependency is satisfied: the actual completion
// when one is known, else the projected planned end. Memoized per task for
// the duration of the pass.
func (p *pass) effectiveEnd(def domain.TaskDefinition) time.Time {
	if end, ok := p.endMemo[def.ID]; ok {
		return end
	}
	if c, ok := p.in.Completions[def.ID]; ok && c.Valid() {
		p.endMemo[def.ID] = c.CompletedAt
		return c.CompletedAt
	}

	// The catalog is validated acyclic, so re-entering a task mid-resolution
	// cannot happen; guard anyway so a broken catalog degrades to a warning
	// instead of overflowing the stack.
	if p.resolving[def.ID] {
		p.warnf("task %q: dependency resolution re-entered (cycle?), anchoring at arrival", def.Key)
		return p.in.ScheduledArrival
	}
	p.resolving[def.ID] = true
	end := p.plannedStart(def).Add(minutes(def.TimeoutMin))
	delete(p.resolving, def.ID)

	p.endMemo[def.ID] = end
	return end
}

func (p *pass) warnf(format string, args ...any) {
	p.warnings = append(p.warnings, fmt.Sprintf(format, args...))
}

// classifyDelay buckets a completion against the dependency-driven planned
// end: on time at or under zero minutes over, grace at exactly one, late
// beyond that. The one-minute tier is a deliberate severity design; keep the
// boundary exact.
func classifyDelay(completedAt, plannedEnd time.Time) (domain.DelayBucket, int) {
	over := roundMinutes(completedAt.Sub(plannedEnd))
	switch {
	case over <= 0:
		return domain.DelayOnTime, 0
	case over == 1:
		return domain.DelayGrace, 1
	default:
		return domain.DelayLate, over
	}
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}

func roundMinutes(d time.Duration) int {
	return int(math.Round(d.Minutes()))
}
