package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/tarmac/internal/domain"
	"github.com/alexanderramin/tarmac/internal/repository"
	"github.com/alexanderramin/tarmac/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTurnaroundService(t *testing.T) (TurnaroundService, repository.TurnaroundRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTurnaroundRepo(database)
	return NewTurnaroundService(repo), repo
}

func TestTurnaroundService_Create(t *testing.T) {
	svc, _ := newTurnaroundService(t)
	ctx := context.Background()

	arrival := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	tr := &domain.Turnaround{
		FlightNumber:       " lh1829 ",
		Stand:              "A23",
		ScheduledArrival:   arrival,
		ScheduledDeparture: arrival.Add(50 * time.Minute),
	}
	require.NoError(t, svc.Create(ctx, tr))

	// Normalization and defaults are applied before the insert.
	assert.Equal(t, "LH1829", tr.FlightNumber)
	assert.NotEmpty(t, tr.ID)
	assert.Equal(t, domain.TurnaroundOnTime, tr.Status)

	got, err := svc.GetByID(ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, "LH1829", got.FlightNumber)
}

func TestTurnaroundService_Create_Invalid(t *testing.T) {
	svc, _ := newTurnaroundService(t)
	ctx := context.Background()
	arrival := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    *domain.Turnaround
	}{
		{"bad flight number", &domain.Turnaround{
			FlightNumber:       "12345",
			ScheduledArrival:   arrival,
			ScheduledDeparture: arrival.Add(time.Hour),
		}},
		{"missing arrival", &domain.Turnaround{
			FlightNumber:       "LH1829",
			ScheduledDeparture: arrival,
		}},
		{"departure before arrival", &domain.Turnaround{
			FlightNumber:       "LH1829",
			ScheduledArrival:   arrival,
			ScheduledDeparture: arrival.Add(-time.Minute),
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, svc.Create(ctx, tc.t))
		})
	}
}

func TestTurnaroundService_Resolve(t *testing.T) {
	svc, _ := newTurnaroundService(t)
	ctx := context.Background()

	day1 := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)

	older := testutil.NewTurnaround(testutil.WithSchedule(day1, day1.Add(50*time.Minute)))
	newer := testutil.NewTurnaround(testutil.WithSchedule(day2, day2.Add(50*time.Minute)))
	other := testutil.NewTurnaround(testutil.WithFlightNumber("EW501"))
	require.NoError(t, svc.Create(ctx, older))
	require.NoError(t, svc.Create(ctx, newer))
	require.NoError(t, svc.Create(ctx, other))

	t.Run("exact id", func(t *testing.T) {
		got, err := svc.Resolve(ctx, older.ID)
		require.NoError(t, err)
		assert.Equal(t, older.ID, got.ID)
	})

	t.Run("flight number takes the latest cycle", func(t *testing.T) {
		got, err := svc.Resolve(ctx, "lh1829")
		require.NoError(t, err)
		assert.Equal(t, newer.ID, got.ID)
	})

	t.Run("id prefix", func(t *testing.T) {
		got, err := svc.Resolve(ctx, other.ID[:8])
		require.NoError(t, err)
		assert.Equal(t, other.ID, got.ID)
	})

	t.Run("unknown reference", func(t *testing.T) {
		_, err := svc.Resolve(ctx, "XX999")
		assert.ErrorContains(t, err, "not found")
	})

	t.Run("empty reference", func(t *testing.T) {
		_, err := svc.Resolve(ctx, "  ")
		assert.Error(t, err)
	})
}

func TestTurnaroundService_Delete(t *testing.T) {
	svc, _ := newTurnaroundService(t)
	ctx := context.Background()

	tr := testutil.NewTurnaround()
	require.NoError(t, svc.Create(ctx, tr))

	// Active turnarounds are protected.
	err := svc.Delete(ctx, tr.ID, false)
	assert.ErrorContains(t, err, "must be cancelled")

	require.NoError(t, svc.Cancel(ctx, tr.ID))
	require.NoError(t, svc.Delete(ctx, tr.ID, false))

	_, err = svc.GetByID(ctx, tr.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTurnaroundService_Delete_Force(t *testing.T) {
	svc, _ := newTurnaroundService(t)
	ctx := context.Background()

	tr := testutil.NewTurnaround()
	require.NoError(t, svc.Create(ctx, tr))
	require.NoError(t, svc.Delete(ctx, tr.ID, true))

	_, err := svc.GetByID(ctx, tr.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
