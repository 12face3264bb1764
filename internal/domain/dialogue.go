package domain

import "time"

// DialogueState is the per-session conversation state. It is passed into
// every engine call and returned updated; the engine never keeps hidden
// session state, so one server can host many sessions safely.
type DialogueState struct {
	SessionID string
	Stage     Stage
	// QuestionIndex is meaningful only while Stage == StageOnboarding.
	QuestionIndex int
	// LastCreatedPlan is replaced wholesale on plan creation or edit.
	LastCreatedPlan *Plan
	// AwaitingSchedulingConfirmation set implies LastCreatedPlan != nil.
	AwaitingSchedulingConfirmation bool
	// PendingDate and PendingTimeLabel hold a date preference captured
	// during editing ("move it to friday"), consumed at scheduling time.
	PendingDate      time.Time
	PendingTimeLabel string
}

// NewDialogueState returns the initial state for a fresh session.
func NewDialogueState(sessionID string) *DialogueState {
	return &DialogueState{
		SessionID: sessionID,
		Stage:     StageIdle,
	}
}

// PendingConfirmationValid reports whether the cross-turn confirmation
// invariant holds: a pending confirmation always references a plan.
func (s *DialogueState) PendingConfirmationValid() bool {
	return !s.AwaitingSchedulingConfirmation || s.LastCreatedPlan != nil
}

// ClearPlan drops the scratch plan and any pending confirmation on it.
func (s *DialogueState) ClearPlan() {
	s.LastCreatedPlan = nil
	s.AwaitingSchedulingConfirmation = false
	s.PendingDate = time.Time{}
	s.PendingTimeLabel = ""
}
