package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tarmac/internal/app"
	"github.com/alexanderramin/tarmac/internal/catalog"
	"github.com/alexanderramin/tarmac/internal/domain"
	"github.com/alexanderramin/tarmac/internal/projection"
	"github.com/alexanderramin/tarmac/internal/repository"
)

type boardService struct {
	turnarounds TurnaroundService
	completions repository.CompletionRepo
	catalog     *catalog.Catalog
	observer    UseCaseObserver
}

func NewBoardService(
	turnarounds TurnaroundService,
	completions repository.CompletionRepo,
	cat *catalog.Catalog,
	observer UseCaseObserver,
) BoardService {
	if observer == nil {
		observer = NoopUseCaseObserver{}
	}
	return &boardService{
		turnarounds: turnarounds,
		completions: completions,
		catalog:     cat,
		observer:    observer,
	}
}

func (s *boardService) GetBoard(ctx context.Context, req app.BoardRequest) (resp *app.BoardResponse, err error) {
	started := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "board.get",
			Duration:  time.Since(started),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"turnaround": req.TurnaroundID},
			StartedAt: started,
		})
	}()

	t, err := s.turnarounds.Resolve(ctx, req.TurnaroundID)
	if err != nil {
		return nil, err
	}
	return s.buildBoard(ctx, t, req.Now, req.SLAMin)
}

func (s *boardService) GetStatus(ctx context.Context) (*app.StatusResponse, error) {
	all, err := s.turnarounds.List(ctx, true)
	if err != nil {
		return nil, err
	}

	resp := &app.StatusResponse{GeneratedAt: time.Now().UTC()}
	for _, t := range all {
		board, err := s.buildBoard(ctx, t, nil, 0)
		if err != nil {
			return nil, fmt.Errorf("building board for %s: %w", t.DisplayID(), err)
		}
		resp.Boards = append(resp.Boards, app.BoardSummaryView{
			Turnaround:  board.Turnaround,
			ProgressPct: board.ProgressPct,
			Status:      board.Status,
			DurationMin: board.DurationMin,
		})
		switch board.Status {
		case domain.TurnaroundCancelled:
			resp.CountCancelled++
		case domain.TurnaroundDelayed:
			resp.CountDelayed++
		default:
			resp.CountOnTime++
		}
	}
	return resp, nil
}

// buildBoard does the actual assembly: one bulk completion read, dedup, one
// projection pass, then progress and SLA classification.
func (s *boardService) buildBoard(ctx context.Context, t *domain.Turnaround, nowOverride *time.Time, slaMin int) (*app.BoardResponse, error) {
	records, err := s.completions.ListByTurnaround(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("loading completions: %w", err)
	}

	now := time.Now().UTC()
	if nowOverride != nil {
		now = *nowOverride
	}

	res := projection.Project(projection.Input{
		Catalog:            s.catalog,
		ScheduledArrival:   t.ScheduledArrival,
		ScheduledDeparture: t.ScheduledDeparture,
		Now:                now,
		Completions:        projection.DedupCompletions(records),
	})

	completed := 0
	tasks := make([]app.TaskView, 0, len(res.Tasks))
	for _, tp := range res.Tasks {
		if tp.Status == domain.TaskCompleted {
			completed++
		}
		tasks = append(tasks, app.TaskView{
			TaskID:           tp.TaskID,
			Key:              tp.Key,
			Title:            tp.Title,
			Team:             tp.Team,
			PlannedStart:     tp.PlannedStart,
			PlannedEnd:       tp.PlannedEnd,
			ActualCompletion: tp.ActualCompletion,
			Status:           tp.Status,
			Delay:            tp.Delay,
			DelayMin:         tp.DelayMin,
		})
	}

	// Cancelled is terminal and externally signalled; never reclassify it.
	status := domain.TurnaroundCancelled
	if !t.Cancelled() {
		status = projection.ClassifyTurnaround(res, slaMin)
	}

	return &app.BoardResponse{
		Turnaround: app.TurnaroundView{
			ID:                 t.ID,
			FlightNumber:       t.FlightNumber,
			Stand:              t.Stand,
			ScheduledArrival:   t.ScheduledArrival,
			ScheduledDeparture: t.ScheduledDeparture,
			Status:             t.Status,
			CancelledAt:        t.CancelledAt,
		},
		Tasks:       tasks,
		ProgressPct: projection.ComputeProgress(completed, s.catalog.Size()),
		Status:      status,
		DurationMin: res.DurationMin,
		GeneratedAt: now,
		Warnings:    res.Warnings,
	}, nil
}
