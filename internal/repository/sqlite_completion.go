package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/tarmac/internal/domain"
	"github.com/google/uuid"
)

// SQLiteCompletionRepo implements CompletionRepo using a SQLite database.
type SQLiteCompletionRepo struct {
	db *sql.DB
}

// NewSQLiteCompletionRepo creates a new SQLiteCompletionRepo.
func NewSQLiteCompletionRepo(db *sql.DB) *SQLiteCompletionRepo {
	return &SQLiteCompletionRepo{db: db}
}

func (r *SQLiteCompletionRepo) Record(ctx context.Context, c *domain.TaskCompletion) error {
	query := `INSERT INTO task_completions (id, turnaround_id, task_id, completed_at, submitted_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		uuid.New().String(),
		c.TurnaroundID,
		c.TaskID,
		c.CompletedAt.UTC().Format(time.RFC3339),
		c.SubmittedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task completion: %w", err)
	}
	return nil
}

// ListByTurnaround returns at most one completion per task: ordering by
// completed_at with a first-wins scan applies the earliest-completion-wins
// policy here, so the projection layer receives an already-deduplicated
// snapshot.
func (r *SQLiteCompletionRepo) ListByTurnaround(ctx context.Context, turnaroundID string) ([]domain.TaskCompletion, error) {
	all, err := r.list(ctx, turnaroundID, `ORDER BY task_id, completed_at`)
	if err != nil {
		return nil, err
	}

	var out []domain.TaskCompletion
	seen := make(map[int]bool, len(all))
	for _, c := range all {
		if seen[c.TaskID] {
			continue
		}
		seen[c.TaskID] = true
		out = append(out, c)
	}
	return out, nil
}

func (r *SQLiteCompletionRepo) ListRawByTurnaround(ctx context.Context, turnaroundID string) ([]domain.TaskCompletion, error) {
	return r.list(ctx, turnaroundID, `ORDER BY submitted_at`)
}

func (r *SQLiteCompletionRepo) DeleteByTurnaround(ctx context.Context, turnaroundID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM task_completions WHERE turnaround_id = ?`, turnaroundID); err != nil {
		return fmt.Errorf("deleting task completions: %w", err)
	}
	return nil
}

func (r *SQLiteCompletionRepo) list(ctx context.Context, turnaroundID, order string) ([]domain.TaskCompletion, error) {
	query := `SELECT turnaround_id, task_id, completed_at, submitted_at
		FROM task_completions WHERE turnaround_id = ? ` + order
	rows, err := r.db.QueryContext(ctx, query, turnaroundID)
	if err != nil {
		return nil, fmt.Errorf("listing task completions: %w", err)
	}
	defer rows.Close()

	var out []domain.TaskCompletion
	for rows.Next() {
		var c domain.TaskCompletion
		var completedStr, submittedStr string
		if err := rows.Scan(&c.TurnaroundID, &c.TaskID, &completedStr, &submittedStr); err != nil {
			return nil, fmt.Errorf("scanning task completion: %w", err)
		}
		// A record with an unparseable completed_at degrades only its own
		// task: skip it rather than failing the whole snapshot.
		c.CompletedAt, err = time.Parse(time.RFC3339, completedStr)
		if err != nil {
			continue
		}
		if sub, err := time.Parse(time.RFC3339, submittedStr); err == nil {
			c.SubmittedAt = sub
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task completions: %w", err)
	}
	return out, nil
}
