package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/tarmac/internal/domain"
)

// SQLiteTurnaroundRepo implements TurnaroundRepo using a SQLite database.
type SQLiteTurnaroundRepo struct {
	db *sql.DB
}

// NewSQLiteTurnaroundRepo creates a new SQLiteTurnaroundRepo.
func NewSQLiteTurnaroundRepo(db *sql.DB) *SQLiteTurnaroundRepo {
	return &SQLiteTurnaroundRepo{db: db}
}

const turnaroundColumns = `id, flight_number, stand, scheduled_arrival, scheduled_departure, status, cancelled_at, created_at, updated_at`

func (r *SQLiteTurnaroundRepo) Create(ctx context.Context, t *domain.Turnaround) error {
	query := `INSERT INTO turnarounds (` + turnaroundColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.FlightNumber,
		t.Stand,
		t.ScheduledArrival.UTC().Format(time.RFC3339),
		t.ScheduledDeparture.UTC().Format(time.RFC3339),
		string(t.Status),
		nullableTimeToString(t.CancelledAt),
		t.CreatedAt.UTC().Format(time.RFC3339),
		t.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting turnaround: %w", err)
	}
	return nil
}

func (r *SQLiteTurnaroundRepo) GetByID(ctx context.Context, id string) (*domain.Turnaround, error) {
	query := `SELECT ` + turnaroundColumns + ` FROM turnarounds WHERE id = ?`
	return r.scanTurnaround(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteTurnaroundRepo) GetByFlightNumber(ctx context.Context, flightNumber string) (*domain.Turnaround, error) {
	// Newest first: a flight number recurs daily, the latest cycle wins.
	query := `SELECT ` + turnaroundColumns + ` FROM turnarounds
		WHERE flight_number = ? ORDER BY scheduled_arrival DESC LIMIT 1`
	return r.scanTurnaround(r.db.QueryRowContext(ctx, query, flightNumber))
}

func (r *SQLiteTurnaroundRepo) List(ctx context.Context, includeCancelled bool) ([]*domain.Turnaround, error) {
	query := `SELECT ` + turnaroundColumns + ` FROM turnarounds ORDER BY scheduled_arrival`
	if !includeCancelled {
		query = `SELECT ` + turnaroundColumns + ` FROM turnarounds
			WHERE status != 'cancelled' ORDER BY scheduled_arrival`
	}
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing turnarounds: %w", err)
	}
	defer rows.Close()

	var out []*domain.Turnaround
	for rows.Next() {
		t, err := r.scanTurnaroundRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating turnarounds: %w", err)
	}
	return out, nil
}

func (r *SQLiteTurnaroundRepo) Update(ctx context.Context, t *domain.Turnaround) error {
	query := `UPDATE turnarounds
		SET flight_number = ?, stand = ?, scheduled_arrival = ?, scheduled_departure = ?,
		    status = ?, cancelled_at = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.FlightNumber,
		t.Stand,
		t.ScheduledArrival.UTC().Format(time.RFC3339),
		t.ScheduledDeparture.UTC().Format(time.RFC3339),
		string(t.Status),
		nullableTimeToString(t.CancelledAt),
		t.UpdatedAt.UTC().Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating turnaround: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating turnaround: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("turnaround %s: %w", t.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteTurnaroundRepo) Cancel(ctx context.Context, id string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	query := `UPDATE turnarounds
		SET status = 'cancelled', cancelled_at = ?, updated_at = ?
		WHERE id = ? AND status != 'cancelled'`
	res, err := r.db.ExecContext(ctx, query, now, now, id)
	if err != nil {
		return fmt.Errorf("cancelling turnaround: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("cancelling turnaround: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("turnaround %s not found or already cancelled", id)
	}
	return nil
}

func (r *SQLiteTurnaroundRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM turnarounds WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting turnaround: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteTurnaroundRepo) scanTurnaround(row *sql.Row) (*domain.Turnaround, error) {
	t, err := r.scanTurnaroundRow(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("turnaround: %w", ErrNotFound)
	}
	return t, err
}

func (r *SQLiteTurnaroundRepo) scanTurnaroundRow(row rowScanner) (*domain.Turnaround, error) {
	var t domain.Turnaround
	var arrivalStr, departureStr, statusStr, createdAtStr, updatedAtStr string
	var cancelledAtStr sql.NullString

	err := row.Scan(
		&t.ID, &t.FlightNumber, &t.Stand,
		&arrivalStr, &departureStr,
		&statusStr, &cancelledAtStr,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning turnaround: %w", err)
	}

	t.Status = domain.TurnaroundStatus(statusStr)
	t.CancelledAt = parseNullableTime(cancelledAtStr)

	var parseErr error
	t.ScheduledArrival, parseErr = time.Parse(time.RFC3339, arrivalStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing scheduled_arrival: %w", parseErr)
	}
	t.ScheduledDeparture, parseErr = time.Parse(time.RFC3339, departureStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing scheduled_departure: %w", parseErr)
	}
	t.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	t.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &t, nil
}
