package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/tarmac/internal/catalog"
	"github.com/alexanderramin/tarmac/internal/domain"
	"github.com/alexanderramin/tarmac/internal/repository"
	"github.com/alexanderramin/tarmac/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type completionFixture struct {
	svc         CompletionService
	turnarounds repository.TurnaroundRepo
}

func newCompletionFixture(t *testing.T) completionFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	turnarounds := repository.NewSQLiteTurnaroundRepo(database)
	completions := repository.NewSQLiteCompletionRepo(database)
	return completionFixture{
		svc:         NewCompletionService(completions, turnarounds, catalog.Reference()),
		turnarounds: turnarounds,
	}
}

func TestCompletionService_Record(t *testing.T) {
	f := newCompletionFixture(t)
	ctx := context.Background()

	tr := testutil.NewTurnaround()
	require.NoError(t, f.turnarounds.Create(ctx, tr))

	c := &domain.TaskCompletion{
		TurnaroundID: tr.ID,
		TaskID:       0,
		CompletedAt:  tr.ScheduledArrival.Add(2 * time.Minute),
	}
	require.NoError(t, f.svc.Record(ctx, c))

	// SubmittedAt is defaulted when the caller leaves it empty.
	assert.False(t, c.SubmittedAt.IsZero())

	got, err := f.svc.ListByTurnaround(ctx, tr.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].TaskID)
}

func TestCompletionService_Record_UnknownTask(t *testing.T) {
	f := newCompletionFixture(t)
	ctx := context.Background()

	tr := testutil.NewTurnaround()
	require.NoError(t, f.turnarounds.Create(ctx, tr))

	err := f.svc.Record(ctx, &domain.TaskCompletion{
		TurnaroundID: tr.ID,
		TaskID:       99,
		CompletedAt:  tr.ScheduledArrival,
	})
	assert.ErrorContains(t, err, "not in the catalog")
}

func TestCompletionService_Record_MissingTimestamp(t *testing.T) {
	f := newCompletionFixture(t)
	ctx := context.Background()

	tr := testutil.NewTurnaround()
	require.NoError(t, f.turnarounds.Create(ctx, tr))

	err := f.svc.Record(ctx, &domain.TaskCompletion{TurnaroundID: tr.ID, TaskID: 0})
	assert.ErrorContains(t, err, "timestamp is required")
}

func TestCompletionService_Record_CancelledTurnaround(t *testing.T) {
	f := newCompletionFixture(t)
	ctx := context.Background()

	tr := testutil.NewTurnaround()
	require.NoError(t, f.turnarounds.Create(ctx, tr))
	require.NoError(t, f.turnarounds.Cancel(ctx, tr.ID))

	err := f.svc.Record(ctx, &domain.TaskCompletion{
		TurnaroundID: tr.ID,
		TaskID:       0,
		CompletedAt:  tr.ScheduledArrival,
	})
	assert.ErrorContains(t, err, "cancelled")
}

func TestCompletionService_Record_UnknownTurnaround(t *testing.T) {
	f := newCompletionFixture(t)

	err := f.svc.Record(context.Background(), &domain.TaskCompletion{
		TurnaroundID: "nonexistent",
		TaskID:       0,
		CompletedAt:  time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
