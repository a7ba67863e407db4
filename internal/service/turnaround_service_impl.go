package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tarmac/internal/domain"
	"github.com/alexanderramin/tarmac/internal/repository"
	"github.com/google/uuid"
)

type turnaroundService struct {
	turnarounds repository.TurnaroundRepo
}

func NewTurnaroundService(turnarounds repository.TurnaroundRepo) TurnaroundService {
	return &turnaroundService{turnarounds: turnarounds}
}

func (s *turnaroundService) Create(ctx context.Context, t *domain.Turnaround) error {
	t.FlightNumber = strings.ToUpper(strings.TrimSpace(t.FlightNumber))
	if err := t.Validate(); err != nil {
		return err
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Status == "" {
		t.Status = domain.TurnaroundOnTime
	}
	return s.turnarounds.Create(ctx, t)
}

func (s *turnaroundService) GetByID(ctx context.Context, id string) (*domain.Turnaround, error) {
	return s.turnarounds.GetByID(ctx, id)
}

// Resolve accepts an exact UUID, a UUID prefix, or a flight number
// (case-insensitive) and returns the matching turnaround.
func (s *turnaroundService) Resolve(ctx context.Context, ref string) (*domain.Turnaround, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("turnaround reference is required")
	}

	all, err := s.turnarounds.List(ctx, true)
	if err != nil {
		return nil, err
	}

	// 1. Exact UUID match
	for _, t := range all {
		if t.ID == ref {
			return t, nil
		}
	}

	// 2. Flight number match (newest cycle wins; List is arrival-ordered)
	var byFlight *domain.Turnaround
	for _, t := range all {
		if strings.EqualFold(t.FlightNumber, ref) {
			byFlight = t
		}
	}
	if byFlight != nil {
		return byFlight, nil
	}

	// 3. UUID prefix match
	var matches []*domain.Turnaround
	for _, t := range all {
		if strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("turnaround not found: %q", ref)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("turnaround reference %q is ambiguous (%d matches)", ref, len(matches))
	}
}

func (s *turnaroundService) List(ctx context.Context, includeCancelled bool) ([]*domain.Turnaround, error) {
	return s.turnarounds.List(ctx, includeCancelled)
}

func (s *turnaroundService) Cancel(ctx context.Context, id string) error {
	return s.turnarounds.Cancel(ctx, id)
}

func (s *turnaroundService) Delete(ctx context.Context, id string, force bool) error {
	if !force {
		t, err := s.turnarounds.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !t.Cancelled() {
			return fmt.Errorf("turnaround must be cancelled before deletion (use --force to override)")
		}
	}
	return s.turnarounds.Delete(ctx, id)
}
