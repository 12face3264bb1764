package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/fitbuddy/internal/domain"
	"github.com/alexanderramin/fitbuddy/internal/engine"
	"github.com/alexanderramin/fitbuddy/internal/repository"
)

// SessionManager wraps the engine with per-session persistence. Each turn
// loads the dialogue state, rehydrates the scratch plan by id, runs the
// engine, and saves the state that comes back.
type SessionManager struct {
	sessions repository.SessionRepo
	plans    repository.PlanRepo
	engine   *engine.Engine
}

func NewSessionManager(sessions repository.SessionRepo, plans repository.PlanRepo, eng *engine.Engine) *SessionManager {
	return &SessionManager{sessions: sessions, plans: plans, engine: eng}
}

// HandleTurn runs one turn for the given session. Unknown session ids
// start a fresh conversation.
func (m *SessionManager) HandleTurn(ctx context.Context, sessionID, text string) (engine.Reply, domain.DialogueState, error) {
	state, err := m.loadState(ctx, sessionID)
	if err != nil {
		return engine.Reply{}, domain.DialogueState{}, err
	}

	reply, next, _ := m.engine.Handle(ctx, state, text)

	rec := &repository.SessionRecord{State: next}
	if next.LastCreatedPlan != nil {
		rec.LastPlanID = next.LastCreatedPlan.ID
	}
	if err := m.sessions.Save(ctx, rec); err != nil {
		return reply, next, fmt.Errorf("saving session %s: %w", sessionID, err)
	}
	return reply, next, nil
}

// Reset discards the stored state for the session. The next turn starts
// from idle.
func (m *SessionManager) Reset(ctx context.Context, sessionID string) error {
	if err := m.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("resetting session %s: %w", sessionID, err)
	}
	return nil
}

func (m *SessionManager) loadState(ctx context.Context, sessionID string) (domain.DialogueState, error) {
	rec, err := m.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return *domain.NewDialogueState(sessionID), nil
		}
		return domain.DialogueState{}, fmt.Errorf("loading session %s: %w", sessionID, err)
	}

	state := rec.State
	if rec.LastPlanID != "" {
		plan, perr := m.plans.GetByID(ctx, rec.LastPlanID)
		if perr == nil {
			state.LastCreatedPlan = plan
		} else if !errors.Is(perr, repository.ErrNotFound) {
			return domain.DialogueState{}, fmt.Errorf("rehydrating plan %s: %w", rec.LastPlanID, perr)
		}
	}
	return state, nil
}
