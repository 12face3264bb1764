package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/fitbuddy/internal/db"
	"github.com/alexanderramin/fitbuddy/internal/domain"
)

// SQLiteScheduleRepo implements ScheduleRepo using a SQLite database.
type SQLiteScheduleRepo struct {
	db db.DBTX
}

// NewSQLiteScheduleRepo creates a new SQLiteScheduleRepo.
func NewSQLiteScheduleRepo(conn db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: conn}
}

func (r *SQLiteScheduleRepo) Create(ctx context.Context, e *domain.ScheduleEntry) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO schedule_entries
		(id, plan_id, plan_title, day, start_at, time_label, source, status, event_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID,
		e.PlanID,
		e.PlanTitle,
		e.Day,
		e.StartAt.UTC().Format(time.RFC3339),
		e.TimeLabel,
		string(e.Source),
		string(e.Status),
		e.EventID,
		e.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting schedule entry: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) ListUpcoming(ctx context.Context, from time.Time, limit int) ([]*domain.ScheduleEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `SELECT id, plan_id, plan_title, day,
		start_at, time_label, source, status, event_id, created_at
		FROM schedule_entries WHERE start_at >= ?
		ORDER BY start_at LIMIT ?`,
		from.UTC().Format(time.RFC3339), limit)
	if err != nil {
		return nil, fmt.Errorf("listing schedule entries: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

func (r *SQLiteScheduleRepo) ListByPlan(ctx context.Context, planID string) ([]*domain.ScheduleEntry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, plan_id, plan_title, day,
		start_at, time_label, source, status, event_id, created_at
		FROM schedule_entries WHERE plan_id = ? ORDER BY start_at`, planID)
	if err != nil {
		return nil, fmt.Errorf("listing schedule entries by plan: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

func (r *SQLiteScheduleRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM schedule_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting schedule entry: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("schedule entry %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanEntries(rows rowScanner) ([]*domain.ScheduleEntry, error) {
	var entries []*domain.ScheduleEntry
	for rows.Next() {
		var e domain.ScheduleEntry
		var source, status, startAt, createdAt string
		err := rows.Scan(&e.ID, &e.PlanID, &e.PlanTitle, &e.Day, &startAt,
			&e.TimeLabel, &source, &status, &e.EventID, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scanning schedule entry: %w", err)
		}
		if e.StartAt, err = time.Parse(time.RFC3339, startAt); err != nil {
			return nil, fmt.Errorf("parsing start_at: %w", err)
		}
		if e.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		e.Source = domain.ScheduleSource(source)
		e.Status = domain.ScheduleStatus(status)
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule entries: %w", err)
	}
	return entries, nil
}
