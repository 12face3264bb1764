package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/fitbuddy/internal/db"
	"github.com/alexanderramin/fitbuddy/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

func (r *SQLiteSessionRepo) Get(ctx context.Context, sessionID string) (*SessionRecord, error) {
	row := r.db.QueryRowContext(ctx, `SELECT session_id, stage, question_index,
		last_plan_id, awaiting_confirmation, pending_date, pending_time_label
		FROM dialogue_sessions WHERE session_id = ?`, sessionID)

	var rec SessionRecord
	var stage, pendingDate string
	var awaiting int
	err := row.Scan(
		&rec.State.SessionID,
		&stage,
		&rec.State.QuestionIndex,
		&rec.LastPlanID,
		&awaiting,
		&pendingDate,
		&rec.State.PendingTimeLabel,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}

	rec.State.Stage = domain.Stage(stage)
	rec.State.AwaitingSchedulingConfirmation = awaiting != 0
	if pendingDate != "" {
		if rec.State.PendingDate, err = time.Parse(time.RFC3339, pendingDate); err != nil {
			return nil, fmt.Errorf("parsing pending date: %w", err)
		}
	}
	return &rec, nil
}

func (r *SQLiteSessionRepo) Save(ctx context.Context, rec *SessionRecord) error {
	awaiting := 0
	if rec.State.AwaitingSchedulingConfirmation {
		awaiting = 1
	}
	pendingDate := ""
	if !rec.State.PendingDate.IsZero() {
		pendingDate = rec.State.PendingDate.UTC().Format(time.RFC3339)
	}

	_, err := r.db.ExecContext(ctx, `INSERT OR REPLACE INTO dialogue_sessions
		(session_id, stage, question_index, last_plan_id, awaiting_confirmation,
		 pending_date, pending_time_label, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.State.SessionID,
		string(rec.State.Stage),
		rec.State.QuestionIndex,
		rec.LastPlanID,
		awaiting,
		pendingDate,
		rec.State.PendingTimeLabel,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, sessionID string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM dialogue_sessions WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}
