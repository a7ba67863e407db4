package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/tarmac/internal/app"
	"github.com/alexanderramin/tarmac/internal/catalog"
	"github.com/alexanderramin/tarmac/internal/domain"
	"github.com/alexanderramin/tarmac/internal/repository"
	"github.com/alexanderramin/tarmac/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type boardFixture struct {
	board       BoardService
	turnarounds TurnaroundService
	completions CompletionService
	observer    *recordingObserver
}

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func newBoardFixture(t *testing.T) boardFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	turnaroundRepo := repository.NewSQLiteTurnaroundRepo(database)
	completionRepo := repository.NewSQLiteCompletionRepo(database)
	cat := catalog.Reference()

	turnarounds := NewTurnaroundService(turnaroundRepo)
	observer := &recordingObserver{}
	return boardFixture{
		board:       NewBoardService(turnarounds, completionRepo, cat, observer),
		turnarounds: turnarounds,
		completions: NewCompletionService(completionRepo, turnaroundRepo, cat),
		observer:    observer,
	}
}

func TestBoardService_GetBoard(t *testing.T) {
	f := newBoardFixture(t)
	ctx := context.Background()

	tr := testutil.NewTurnaround()
	require.NoError(t, f.turnarounds.Create(ctx, tr))

	arrival := tr.ScheduledArrival
	for taskID, offset := range map[int]time.Duration{
		0: 0,               // chocks-on, right on arrival
		1: 6 * time.Minute, // gpu-connected
		2: 7 * time.Minute, // open-pax-door
	} {
		require.NoError(t, f.completions.Record(ctx, &domain.TaskCompletion{
			TurnaroundID: tr.ID,
			TaskID:       taskID,
			CompletedAt:  arrival.Add(offset),
		}))
	}

	now := arrival.Add(10 * time.Minute)
	req := app.NewBoardRequest(tr.FlightNumber)
	req.Now = &now

	resp, err := f.board.GetBoard(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, tr.ID, resp.Turnaround.ID)
	require.Len(t, resp.Tasks, 27)

	// 3 of 27 tasks completed: round(100*3/27) = 11.
	assert.Equal(t, 11, resp.ProgressPct)

	// The check-in chain alone projects far past the default 40-minute SLA.
	assert.Equal(t, domain.TurnaroundDelayed, resp.Status)
	assert.Equal(t, 290, resp.DurationMin)
	assert.True(t, resp.GeneratedAt.Equal(now))
	assert.Empty(t, resp.Warnings)

	chocks := resp.Tasks[0]
	assert.Equal(t, domain.TaskCompleted, chocks.Status)
	assert.Equal(t, domain.DelayOnTime, chocks.Delay)

	require.Len(t, f.observer.events, 1)
	assert.Equal(t, "board.get", f.observer.events[0].Name)
	assert.True(t, f.observer.events[0].Success)
}

func TestBoardService_GetBoard_UnknownTurnaround(t *testing.T) {
	f := newBoardFixture(t)

	_, err := f.board.GetBoard(context.Background(), app.NewBoardRequest("XX999"))
	require.Error(t, err)

	// The failure is still observed.
	require.Len(t, f.observer.events, 1)
	assert.False(t, f.observer.events[0].Success)
}

func TestBoardService_GetBoard_CancelledStaysCancelled(t *testing.T) {
	f := newBoardFixture(t)
	ctx := context.Background()

	tr := testutil.NewTurnaround()
	require.NoError(t, f.turnarounds.Create(ctx, tr))
	require.NoError(t, f.turnarounds.Cancel(ctx, tr.ID))

	resp, err := f.board.GetBoard(ctx, app.NewBoardRequest(tr.ID))
	require.NoError(t, err)
	assert.Equal(t, domain.TurnaroundCancelled, resp.Status)
}

func TestBoardService_GetBoard_SLAOverride(t *testing.T) {
	f := newBoardFixture(t)
	ctx := context.Background()

	tr := testutil.NewTurnaround()
	require.NoError(t, f.turnarounds.Create(ctx, tr))

	req := app.NewBoardRequest(tr.ID)
	req.SLAMin = 300 // generous enough for the full untouched projection

	resp, err := f.board.GetBoard(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, domain.TurnaroundOnTime, resp.Status)
}

func TestBoardService_GetStatus(t *testing.T) {
	f := newBoardFixture(t)
	ctx := context.Background()

	onTime := testutil.NewTurnaround(testutil.WithFlightNumber("LH100"))
	cancelled := testutil.NewTurnaround(testutil.WithFlightNumber("LH200"))
	require.NoError(t, f.turnarounds.Create(ctx, onTime))
	require.NoError(t, f.turnarounds.Create(ctx, cancelled))
	require.NoError(t, f.turnarounds.Cancel(ctx, cancelled.ID))

	resp, err := f.board.GetStatus(ctx)
	require.NoError(t, err)
	require.Len(t, resp.Boards, 2)

	// With no completions every active turnaround projects past the SLA.
	assert.Equal(t, 0, resp.CountOnTime)
	assert.Equal(t, 1, resp.CountDelayed)
	assert.Equal(t, 1, resp.CountCancelled)
}
