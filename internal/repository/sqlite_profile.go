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

// SQLiteProfileRepo implements ProfileRepo using a SQLite database. The
// profile is a singleton row keyed by domain.DefaultProfileID.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.Profile, error) {
	query := `SELECT id, name, age, weight_kg, height_cm, goals, equipment, fitness_level
		FROM profiles WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, domain.DefaultProfileID)

	var p domain.Profile
	var goals, equipment string
	var level string
	err := row.Scan(&p.ID, &p.Name, &p.Age, &p.WeightKg, &p.HeightCm, &goals, &equipment, &level)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}

	if err := json.Unmarshal([]byte(goals), &p.Goals); err != nil {
		return nil, fmt.Errorf("decoding goals: %w", err)
	}
	if err := json.Unmarshal([]byte(equipment), &p.Equipment); err != nil {
		return nil, fmt.Errorf("decoding equipment: %w", err)
	}
	p.FitnessLevel = domain.FitnessLevel(level)
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	goals, err := json.Marshal(sliceOrEmpty(p.Goals))
	if err != nil {
		return fmt.Errorf("encoding goals: %w", err)
	}
	equipment, err := json.Marshal(sliceOrEmpty(p.Equipment))
	if err != nil {
		return fmt.Errorf("encoding equipment: %w", err)
	}

	id := p.ID
	if id == "" {
		id = domain.DefaultProfileID
	}

	query := `INSERT OR REPLACE INTO profiles
		(id, name, age, weight_kg, height_cm, goals, equipment, fitness_level, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		id,
		p.Name,
		p.Age,
		p.WeightKg,
		p.HeightCm,
		string(goals),
		string(equipment),
		string(p.FitnessLevel),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}

func sliceOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
