package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/tarmac/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionRepo_RecordAndList(t *testing.T) {
	database := testutil.NewTestDB(t)
	turnarounds := NewSQLiteTurnaroundRepo(database)
	repo := NewSQLiteCompletionRepo(database)
	ctx := context.Background()

	tr := testutil.NewTurnaround()
	require.NoError(t, turnarounds.Create(ctx, tr))

	at := time.Date(2025, 1, 1, 10, 5, 0, 0, time.UTC)
	require.NoError(t, repo.Record(ctx, testutil.NewCompletion(tr.ID, 0, at)))

	got, err := repo.ListByTurnaround(ctx, tr.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, tr.ID, got[0].TurnaroundID)
	assert.Equal(t, 0, got[0].TaskID)
	assert.True(t, got[0].CompletedAt.Equal(at))
}

func TestCompletionRepo_ListByTurnaround_DedupsToEarliest(t *testing.T) {
	database := testutil.NewTestDB(t)
	turnarounds := NewSQLiteTurnaroundRepo(database)
	repo := NewSQLiteCompletionRepo(database)
	ctx := context.Background()

	tr := testutil.NewTurnaround()
	require.NoError(t, turnarounds.Create(ctx, tr))

	early := time.Date(2025, 1, 1, 10, 5, 0, 0, time.UTC)
	late := early.Add(9 * time.Minute)

	// Later record submitted first: submission order must not matter.
	require.NoError(t, repo.Record(ctx, testutil.NewCompletion(tr.ID, 3, late)))
	require.NoError(t, repo.Record(ctx, testutil.NewCompletion(tr.ID, 3, early)))
	require.NoError(t, repo.Record(ctx, testutil.NewCompletion(tr.ID, 5, late)))

	got, err := repo.ListByTurnaround(ctx, tr.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0].TaskID)
	assert.True(t, got[0].CompletedAt.Equal(early))
	assert.Equal(t, 5, got[1].TaskID)

	// The raw listing keeps every record for audit.
	raw, err := repo.ListRawByTurnaround(ctx, tr.ID)
	require.NoError(t, err)
	assert.Len(t, raw, 3)
}

func TestCompletionRepo_DuplicateTimestampRejected(t *testing.T) {
	database := testutil.NewTestDB(t)
	turnarounds := NewSQLiteTurnaroundRepo(database)
	repo := NewSQLiteCompletionRepo(database)
	ctx := context.Background()

	tr := testutil.NewTurnaround()
	require.NoError(t, turnarounds.Create(ctx, tr))

	at := time.Date(2025, 1, 1, 10, 5, 0, 0, time.UTC)
	require.NoError(t, repo.Record(ctx, testutil.NewCompletion(tr.ID, 1, at)))
	// Exact (turnaround, task, completed_at) duplicates hit the unique index.
	assert.Error(t, repo.Record(ctx, testutil.NewCompletion(tr.ID, 1, at)))
}

func TestCompletionRepo_SkipsMalformedTimestamp(t *testing.T) {
	database := testutil.NewTestDB(t)
	turnarounds := NewSQLiteTurnaroundRepo(database)
	repo := NewSQLiteCompletionRepo(database)
	ctx := context.Background()

	tr := testutil.NewTurnaround()
	require.NoError(t, turnarounds.Create(ctx, tr))

	at := time.Date(2025, 1, 1, 10, 5, 0, 0, time.UTC)
	require.NoError(t, repo.Record(ctx, testutil.NewCompletion(tr.ID, 0, at)))

	// Corrupt one row directly; the repo must skip it, not fail the list.
	_, err := database.ExecContext(ctx,
		`INSERT INTO task_completions (id, turnaround_id, task_id, completed_at, submitted_at)
		 VALUES ('corrupt', ?, 4, 'not-a-time', 'not-a-time')`, tr.ID)
	require.NoError(t, err)

	got, err := repo.ListByTurnaround(ctx, tr.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].TaskID)
}

func TestCompletionRepo_DeleteByTurnaround(t *testing.T) {
	database := testutil.NewTestDB(t)
	turnarounds := NewSQLiteTurnaroundRepo(database)
	repo := NewSQLiteCompletionRepo(database)
	ctx := context.Background()

	tr := testutil.NewTurnaround()
	require.NoError(t, turnarounds.Create(ctx, tr))
	require.NoError(t, repo.Record(ctx, testutil.NewCompletion(tr.ID, 0, tr.ScheduledArrival)))
	require.NoError(t, repo.Record(ctx, testutil.NewCompletion(tr.ID, 1, tr.ScheduledArrival.Add(7*time.Minute))))

	require.NoError(t, repo.DeleteByTurnaround(ctx, tr.ID))

	got, err := repo.ListRawByTurnaround(ctx, tr.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}
