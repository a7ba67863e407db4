package projection

import "github.com/alexanderramin/tarmac/internal/domain"

// DedupCompletions collapses raw completion records to at most one per task:
// the earliest CompletedAt wins regardless of input order. Records without a
// usable completion timestamp are dropped so a single malformed record only
// degrades its own task.
func DedupCompletions(records []domain.TaskCompletion) map[int]domain.TaskCompletion {
	out := make(map[int]domain.TaskCompletion, len(records))
	for _, r := range records {
		if !r.Valid() {
			continue
		}
		existing, ok := out[r.TaskID]
		if !ok || r.CompletedAt.Before(existing.CompletedAt) {
			out[r.TaskID] = r
		}
	}
	return out
}
