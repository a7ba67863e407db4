package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tarmac/internal/catalog"
	"github.com/alexanderramin/tarmac/internal/domain"
	"github.com/alexanderramin/tarmac/internal/repository"
)

type completionService struct {
	completions repository.CompletionRepo
	turnarounds repository.TurnaroundRepo
	catalog     *catalog.Catalog
}

func NewCompletionService(
	completions repository.CompletionRepo,
	turnarounds repository.TurnaroundRepo,
	cat *catalog.Catalog,
) CompletionService {
	return &completionService{
		completions: completions,
		turnarounds: turnarounds,
		catalog:     cat,
	}
}

// Record stores a completion event. Completions are append-only: recording
// the same task twice is allowed, and the earliest completion stays
// authoritative at read time.
func (s *completionService) Record(ctx context.Context, c *domain.TaskCompletion) error {
	if _, ok := s.catalog.ByID(c.TaskID); !ok {
		return fmt.Errorf("task id %d is not in the catalog (0..%d)", c.TaskID, s.catalog.Size()-1)
	}
	if c.CompletedAt.IsZero() {
		return fmt.Errorf("completion timestamp is required")
	}

	t, err := s.turnarounds.GetByID(ctx, c.TurnaroundID)
	if err != nil {
		return fmt.Errorf("loading turnaround: %w", err)
	}
	if t.Cancelled() {
		return fmt.Errorf("turnaround %s is cancelled; completions are no longer accepted", t.DisplayID())
	}

	if c.SubmittedAt.IsZero() {
		c.SubmittedAt = time.Now().UTC()
	}
	return s.completions.Record(ctx, c)
}

func (s *completionService) ListByTurnaround(ctx context.Context, turnaroundID string) ([]domain.TaskCompletion, error) {
	return s.completions.ListByTurnaround(ctx, turnaroundID)
}
