package service

import (
	"context"

	"github.com/alexanderramin/tarmac/internal/app"
	"github.com/alexanderramin/tarmac/internal/domain"
)

type TurnaroundService interface {
	Create(ctx context.Context, t *domain.Turnaround) error
	GetByID(ctx context.Context, id string) (*domain.Turnaround, error)
	Resolve(ctx context.Context, ref string) (*domain.Turnaround, error)
	List(ctx context.Context, includeCancelled bool) ([]*domain.Turnaround, error)
	Cancel(ctx context.Context, id string) error
	Delete(ctx context.Context, id string, force bool) error
}

type CompletionService interface {
	Record(ctx context.Context, c *domain.TaskCompletion) error
	ListByTurnaround(ctx context.Context, turnaroundID string) ([]domain.TaskCompletion, error)
}

// BoardService assembles the projected schedule for consumers: one bulk
// completion read, one projection pass, progress and SLA classification.
type BoardService interface {
	GetBoard(ctx context.Context, req app.BoardRequest) (*app.BoardResponse, error)
	GetStatus(ctx context.Context) (*app.StatusResponse, error)
}
