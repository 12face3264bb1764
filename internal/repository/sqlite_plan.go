package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/fitbuddy/internal/db"
	"github.com/alexanderramin/fitbuddy/internal/domain"
)

// SQLitePlanRepo implements PlanRepo using a SQLite database. Exercises
// live in a child table keyed by (plan_id, position) so the ordered list
// round-trips losslessly.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

func (r *SQLitePlanRepo) Create(ctx context.Context, p *domain.Plan) error {
	equipment, err := json.Marshal(sliceOrEmpty(p.Equipment))
	if err != nil {
		return fmt.Errorf("encoding equipment: %w", err)
	}
	targets, err := json.Marshal(sliceOrEmpty(p.TargetMuscleGroups))
	if err != nil {
		return fmt.Errorf("encoding target muscle groups: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `INSERT OR REPLACE INTO plans
		(id, title, description, duration_min, difficulty, equipment, target_muscle_groups, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID,
		p.Title,
		p.Description,
		p.DurationMin,
		p.Difficulty,
		string(equipment),
		string(targets),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}

	// Replacing a plan replaces its exercise list wholesale.
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM plan_exercises WHERE plan_id = ?`, p.ID); err != nil {
		return fmt.Errorf("clearing plan exercises: %w", err)
	}

	for i, ex := range p.Exercises {
		_, err := r.db.ExecContext(ctx, `INSERT INTO plan_exercises
			(plan_id, position, name, day, sets, reps, weight_kg, duration_sec,
			 rest_sec, instructions, muscle_group, equipment)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID,
			i,
			ex.Name,
			ex.Day,
			ex.Sets,
			ex.Reps,
			ex.WeightKg,
			ex.DurationSec,
			ex.RestSec,
			ex.Instructions,
			ex.MuscleGroup,
			ex.Equipment,
		)
		if err != nil {
			return fmt.Errorf("inserting exercise %d: %w", i, err)
		}
	}
	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, title, description, duration_min,
		difficulty, equipment, target_muscle_groups FROM plans WHERE id = ?`, id)
	return r.scanPlan(ctx, row)
}

func (r *SQLitePlanRepo) GetLatest(ctx context.Context) (*domain.Plan, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, title, description, duration_min,
		difficulty, equipment, target_muscle_groups FROM plans
		ORDER BY created_at DESC, id DESC LIMIT 1`)
	return r.scanPlan(ctx, row)
}

func (r *SQLitePlanRepo) List(ctx context.Context, limit int) ([]*domain.Plan, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM plans
		ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning plan id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plans: %w", err)
	}

	plans := make([]*domain.Plan, 0, len(ids))
	for _, id := range ids {
		p, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, nil
}

func (r *SQLitePlanRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("plan %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLitePlanRepo) scanPlan(ctx context.Context, row *sql.Row) (*domain.Plan, error) {
	var p domain.Plan
	var equipment, targets string
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.DurationMin,
		&p.Difficulty, &equipment, &targets)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("plan: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}

	if err := json.Unmarshal([]byte(equipment), &p.Equipment); err != nil {
		return nil, fmt.Errorf("decoding equipment: %w", err)
	}
	if err := json.Unmarshal([]byte(targets), &p.TargetMuscleGroups); err != nil {
		return nil, fmt.Errorf("decoding target muscle groups: %w", err)
	}

	exercises, err := r.loadExercises(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Exercises = exercises
	return &p, nil
}

func (r *SQLitePlanRepo) loadExercises(ctx context.Context, planID string) ([]domain.Exercise, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, day, sets, reps, weight_kg,
		duration_sec, rest_sec, instructions, muscle_group, equipment
		FROM plan_exercises WHERE plan_id = ? ORDER BY position`, planID)
	if err != nil {
		return nil, fmt.Errorf("loading exercises: %w", err)
	}
	defer rows.Close()

	var exercises []domain.Exercise
	for rows.Next() {
		var ex domain.Exercise
		var weight sql.NullFloat64
		var duration sql.NullInt64
		err := rows.Scan(&ex.Name, &ex.Day, &ex.Sets, &ex.Reps, &weight,
			&duration, &ex.RestSec, &ex.Instructions, &ex.MuscleGroup, &ex.Equipment)
		if err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		if weight.Valid {
			w := weight.Float64
			ex.WeightKg = &w
		}
		if duration.Valid {
			d := int(duration.Int64)
			ex.DurationSec = &d
		}
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating exercises: %w", err)
	}
	return exercises, nil
}
