package repository

import (
	"context"

	"github.com/alexanderramin/tarmac/internal/domain"
)

type TurnaroundRepo interface {
	Create(ctx context.Context, t *domain.Turnaround) error
	GetByID(ctx context.Context, id string) (*domain.Turnaround, error)
	GetByFlightNumber(ctx context.Context, flightNumber string) (*domain.Turnaround, error)
	List(ctx context.Context, includeCancelled bool) ([]*domain.Turnaround, error)
	Update(ctx context.Context, t *domain.Turnaround) error
	Cancel(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// CompletionRepo is the completion store adapter. ListByTurnaround applies
// the dedup-to-earliest policy, so callers receive at most one record per
// task id.
type CompletionRepo interface {
	Record(ctx context.Context, c *domain.TaskCompletion) error
	ListByTurnaround(ctx context.Context, turnaroundID string) ([]domain.TaskCompletion, error)
	// ListRawByTurnaround returns every stored record, duplicates included.
	// Audit/display use only.
	ListRawByTurnaround(ctx context.Context, turnaroundID string) ([]domain.TaskCompletion, error)
	DeleteByTurnaround(ctx context.Context, turnaroundID string) error
}
