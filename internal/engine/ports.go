package engine

import (
	"context"
	"time"

	"github.com/alexanderramin/fitbuddy/internal/advice"
	"github.com/alexanderramin/fitbuddy/internal/domain"
)

// ProfileStore loads and saves the user profile. The engine saves after
// every onboarding answer and profile update.
type ProfileStore interface {
	Load(ctx context.Context) (*domain.Profile, error)
	Save(ctx context.Context, profile *domain.Profile) error
}

// PlanStore persists generated plans. Edits save the replacement plan.
type PlanStore interface {
	SavePlan(ctx context.Context, plan *domain.Plan) error
}

// Scheduler books a confirmed plan, one entry per plan day.
type Scheduler interface {
	Schedule(ctx context.Context, plan *domain.Plan, date time.Time, timeLabel string) ([]domain.ScheduleEntry, error)
}

// Advisor answers open-ended coaching questions. Implementations never
// fail; they degrade to fixed texts.
type Advisor interface {
	Advise(ctx context.Context, topic advice.Topic, prompt string) string
}
