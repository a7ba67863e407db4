package projection

import (
	"math"

	"github.com/alexanderramin/tarmac/internal/domain"
)

// ComputeProgress returns the completion percentage, rounded and clamped to
// [0,100]. Every task counts equally regardless of its timeout magnitude:
// progress reflects the count of milestones reached, not time elapsed.
func ComputeProgress(completed, total int) int {
	if total <= 0 {
		return 0
	}
	pct := int(math.Round(float64(completed) / float64(total) * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// ClassifyTurnaround derives the turnaround-level status from a projection
// pass: delayed when the projected duration exceeds the SLA threshold.
// Because the duration comes from the maximum effective end across all tasks,
// a single pending task with a long enough dependency chain can flip the
// turnaround to delayed before its deadline formally passes; the signal is
// predictive, not reactive. Cancelled is an external terminal state and is
// never produced here.
func ClassifyTurnaround(res Result, slaMin int) domain.TurnaroundStatus {
	if slaMin <= 0 {
		slaMin = DefaultSLAMin
	}
	if res.DurationMin > slaMin {
		return domain.TurnaroundDelayed
	}
	return domain.TurnaroundOnTime
}
