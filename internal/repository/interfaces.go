// Package repository provides SQLite-backed persistence for profiles,
// plans, schedule entries, and per-session dialogue state.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/fitbuddy/internal/domain"
)

// ErrNotFound indicates the requested row does not exist.
var ErrNotFound = errors.New("not found")

type ProfileRepo interface {
	Get(ctx context.Context) (*domain.Profile, error)
	Upsert(ctx context.Context, p *domain.Profile) error
}

type PlanRepo interface {
	Create(ctx context.Context, p *domain.Plan) error
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	GetLatest(ctx context.Context) (*domain.Plan, error)
	List(ctx context.Context, limit int) ([]*domain.Plan, error)
	Delete(ctx context.Context, id string) error
}

type ScheduleRepo interface {
	Create(ctx context.Context, e *domain.ScheduleEntry) error
	ListUpcoming(ctx context.Context, from time.Time, limit int) ([]*domain.ScheduleEntry, error)
	ListByPlan(ctx context.Context, planID string) ([]*domain.ScheduleEntry, error)
	Delete(ctx context.Context, id string) error
}

// SessionRecord is the persisted form of a dialogue session. The scratch
// plan is stored by reference; callers rehydrate it through PlanRepo.
type SessionRecord struct {
	State      domain.DialogueState
	LastPlanID string
}

type SessionRepo interface {
	Get(ctx context.Context, sessionID string) (*SessionRecord, error)
	Save(ctx context.Context, rec *SessionRecord) error
	Delete(ctx context.Context, sessionID string) error
}
