package projection

import (
	"testing"
	"time"

	"github.com/alexanderramin/tarmac/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupCompletions_EarliestWins(t *testing.T) {
	early := anchor.Add(5 * time.Minute)
	late := anchor.Add(12 * time.Minute)

	records := []domain.TaskCompletion{
		{TaskID: 3, CompletedAt: late, SubmittedAt: late},
		{TaskID: 3, CompletedAt: early, SubmittedAt: late.Add(time.Hour)},
		{TaskID: 7, CompletedAt: late, SubmittedAt: late},
	}

	out := DedupCompletions(records)
	require.Len(t, out, 2)
	assert.Equal(t, early, out[3].CompletedAt)
	assert.Equal(t, late, out[7].CompletedAt)
}

func TestDedupCompletions_OrderIndependent(t *testing.T) {
	a := domain.TaskCompletion{TaskID: 1, CompletedAt: anchor.Add(3 * time.Minute)}
	b := domain.TaskCompletion{TaskID: 1, CompletedAt: anchor.Add(9 * time.Minute)}
	c := domain.TaskCompletion{TaskID: 1, CompletedAt: anchor.Add(6 * time.Minute)}

	forward := DedupCompletions([]domain.TaskCompletion{a, b, c})
	reversed := DedupCompletions([]domain.TaskCompletion{c, b, a})

	assert.Equal(t, forward, reversed)
	assert.Equal(t, a.CompletedAt, forward[1].CompletedAt)
}

func TestDedupCompletions_DropsInvalidRecords(t *testing.T) {
	records := []domain.TaskCompletion{
		{TaskID: 2}, // no timestamp
		{TaskID: 5, CompletedAt: anchor},
	}

	out := DedupCompletions(records)
	require.Len(t, out, 1)
	_, ok := out[2]
	assert.False(t, ok)
}

func TestDedupCompletions_Empty(t *testing.T) {
	assert.Empty(t, DedupCompletions(nil))
}
