// Package engine implements the dialogue state machine. Each turn is
// classified, dispatched to the handler for the current stage, and answered
// with a response plus the explicit side effects performed. State goes in
// and comes out; the engine keeps nothing between calls.
package engine

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/fitbuddy/internal/advice"
	"github.com/alexanderramin/fitbuddy/internal/domain"
	"github.com/alexanderramin/fitbuddy/internal/intent"
	"github.com/alexanderramin/fitbuddy/internal/onboarding"
	"github.com/alexanderramin/fitbuddy/internal/patch"
	"github.com/alexanderramin/fitbuddy/internal/plangen"
	"github.com/alexanderramin/fitbuddy/internal/timeparse"
)

// DefaultWorkoutTime is used when a plan is confirmed without an explicit
// time of day.
const DefaultWorkoutTime = "7:00 AM"

// ActionKind names a side effect an engine turn performed.
type ActionKind string

const (
	ActionProfileSaved  ActionKind = "profile_saved"
	ActionPlanCreated   ActionKind = "plan_created"
	ActionPlanUpdated   ActionKind = "plan_updated"
	ActionPlanScheduled ActionKind = "plan_scheduled"
)

// Action records one side effect of a turn, with the value it produced.
type Action struct {
	Kind    ActionKind
	Plan    *domain.Plan
	Profile *domain.Profile
	Entries []domain.ScheduleEntry
}

// Reply is the engine's answer for one turn.
type Reply struct {
	Text   string
	Intent intent.Intent
}

// Engine drives the conversation. All collaborators are optional: a nil
// store skips persistence, a nil scheduler answers without booking, and a
// nil advisor falls back to the fixed templates.
type Engine struct {
	profiles    ProfileStore
	plans       PlanStore
	scheduler   Scheduler
	advisor     Advisor
	observer    TurnObserver
	now         func() time.Time
	defaultTime string
}

func New(profiles ProfileStore, plans PlanStore, scheduler Scheduler, advisor Advisor, observer TurnObserver) *Engine {
	if observer == nil {
		observer = NoopTurnObserver{}
	}
	return &Engine{
		profiles:    profiles,
		plans:       plans,
		scheduler:   scheduler,
		advisor:     advisor,
		observer:    observer,
		now:         time.Now,
		defaultTime: DefaultWorkoutTime,
	}
}

// SetDefaultWorkoutTime overrides the time label used when a plan is
// confirmed without an explicit time of day. Labels must be in the
// canonical "H:MM AM/PM" form.
func (e *Engine) SetDefaultWorkoutTime(label string) {
	if label != "" {
		e.defaultTime = label
	}
}

type result struct {
	text    string
	state   domain.DialogueState
	actions []Action
}

// Handle runs one turn to completion. It never fails: every input gets a
// response text, an updated state, and the side effects that were taken.
func (e *Engine) Handle(ctx context.Context, state domain.DialogueState, text string) (Reply, domain.DialogueState, []Action) {
	start := time.Now()
	stageIn := state.Stage
	trimmed := strings.TrimSpace(text)
	it := intent.Classify(trimmed, &state)

	var r result
	if it == intent.IntentSchedulingConfirmation {
		r = e.confirmScheduling(ctx, state, trimmed)
	} else {
		switch state.Stage {
		case domain.StageOnboarding:
			r = e.onboardingTurn(ctx, state, trimmed)
		case domain.StagePlanning:
			r = e.planningTurn(ctx, state, trimmed)
		case domain.StageEditing:
			r = e.editingTurn(ctx, state, trimmed)
		case domain.StageQA:
			r = e.qaTurn(ctx, state, trimmed, it)
		default:
			r = e.idleTurn(ctx, state, trimmed, it)
		}
	}

	e.observer.ObserveTurn(ctx, TurnEvent{
		SessionID: state.SessionID,
		Intent:    it,
		StageIn:   stageIn,
		StageOut:  r.state.Stage,
		Actions:   len(r.actions),
		Duration:  time.Since(start),
	})
	return Reply{Text: r.text, Intent: it}, r.state, r.actions
}

// confirmScheduling handles the cross-turn confirmation, regardless of the
// stage it arrives in. A pending confirmation without a plan means the
// invariant was broken upstream; answer with a fresh-start fallback.
func (e *Engine) confirmScheduling(ctx context.Context, state domain.DialogueState, text string) result {
	if state.LastCreatedPlan == nil {
		state.ClearPlan()
		state.Stage = domain.StageIdle
		return result{text: noPlanFallbackText, state: state}
	}

	res := timeparse.Resolve(text, e.now())
	date := state.PendingDate
	if res.DateFound {
		date = res.Date
	}
	if date.IsZero() {
		date = e.tomorrow()
	}
	label := state.PendingTimeLabel
	if res.TimeFound {
		label = res.TimeOfDay
	}
	if label == "" {
		label = timeparse.DefaultTimeOfDay
	}

	return e.scheduleAndRespond(ctx, state, date, label)
}

func (e *Engine) onboardingTurn(ctx context.Context, state domain.DialogueState, text string) result {
	idx := state.QuestionIndex
	if !onboarding.Validate(idx, text) {
		return result{
			text:  onboarding.RetryPrompt(idx) + "\n" + onboarding.Question(idx),
			state: state,
		}
	}

	profile := e.loadProfile(ctx)
	onboarding.Apply(idx, text, profile)
	actions, warn := e.saveProfile(ctx, profile, nil)

	next := onboarding.Advance(idx)
	if next != onboarding.Done {
		state.QuestionIndex = next
		return result{text: warn + onboarding.Question(next), state: state, actions: actions}
	}

	// Interview complete: build the default full-body plan for the
	// equipment the user reported.
	signals := plangen.Signals{}.MergeEquipment(profile.Equipment)
	plan := plangen.Generate(signals)

	state.Stage = domain.StagePlanning
	state.QuestionIndex = 0
	state.LastCreatedPlan = plan
	state.AwaitingSchedulingConfirmation = false

	actions, warn = e.savePlan(ctx, plan, ActionPlanCreated, actions, warn)
	return result{text: warn + planSummary(plan, profile.Name), state: state, actions: actions}
}

func (e *Engine) planningTurn(ctx context.Context, state domain.DialogueState, text string) result {
	msg := strings.ToLower(text)
	switch {
	case containsAny(msg, "yes", "ok", "schedule"):
		date := state.PendingDate
		if date.IsZero() {
			date = e.tomorrow()
		}
		label := state.PendingTimeLabel
		if label == "" {
			label = e.defaultTime
		}
		return e.scheduleAndRespond(ctx, state, date, label)

	case containsAny(msg, "edit", "change", "modify"):
		state.Stage = domain.StageEditing
		return result{text: editMenuText, state: state}

	case containsAny(msg, "discard", "no", "cancel"):
		state.ClearPlan()
		state.Stage = domain.StageIdle
		return result{text: discardText, state: state}

	default:
		return result{text: planningPromptText, state: state}
	}
}

func (e *Engine) editingTurn(ctx context.Context, state domain.DialogueState, text string) result {
	if state.LastCreatedPlan == nil {
		state.ClearPlan()
		state.Stage = domain.StageIdle
		return result{text: noPlanFallbackText, state: state}
	}

	msg := strings.ToLower(text)
	if containsAny(msg, "done", "good", "looks good") {
		state.Stage = domain.StagePlanning
		return result{text: editDoneText, state: state}
	}

	req, ok := patch.Parse(text)
	if !ok {
		return result{text: editHintText, state: state}
	}

	switch req.Kind {
	case domain.PatchChangeDate:
		res := timeparse.Resolve(text, e.now())
		if !res.DateFound && !res.TimeFound {
			return result{text: editHintText, state: state}
		}
		if res.DateFound {
			state.PendingDate = res.Date
		}
		if res.TimeFound {
			state.PendingTimeLabel = res.TimeOfDay
		}
		date := state.PendingDate
		if date.IsZero() {
			date = e.tomorrow()
		}
		label := state.PendingTimeLabel
		if label == "" {
			label = e.defaultTime
		}
		return result{text: pendingDateText(date, label), state: state}

	case domain.PatchChangeEquipment:
		profile := e.loadProfile(ctx)
		signals := plangen.ScanSignals(text).MergeEquipment(profile.Equipment)
		plan := plangen.Generate(signals)
		state.LastCreatedPlan = plan
		actions, warn := e.savePlan(ctx, plan, ActionPlanCreated, nil, "")
		return result{
			text:    warn + planSummary(plan, "") + "\n\nAnything else to change? Say 'done' when you're happy.",
			state:   state,
			actions: actions,
		}

	default:
		updated, summary, err := patch.Apply(state.LastCreatedPlan, req)
		if err != nil {
			return result{
				text:  "I couldn't find that exercise in your plan. " + editHintText,
				state: state,
			}
		}
		state.LastCreatedPlan = updated
		actions, warn := e.savePlan(ctx, updated, ActionPlanUpdated, nil, "")
		return result{
			text:    warn + summary + " Anything else? Say 'done' when you're happy.",
			state:   state,
			actions: actions,
		}
	}
}

func (e *Engine) idleTurn(ctx context.Context, state domain.DialogueState, text string, it intent.Intent) result {
	msg := strings.ToLower(text)

	// A plan/workout/routine mention starts the interview even when the
	// classifier filed the turn under another label.
	if it == intent.IntentWorkoutRequest || containsAny(msg, "plan", "routine") {
		state.Stage = domain.StageOnboarding
		state.QuestionIndex = 0
		return result{text: onboardingIntro() + onboarding.Question(0), state: state}
	}

	switch it {
	case intent.IntentScheduleRequest:
		if state.LastCreatedPlan == nil {
			return result{text: noPlanToScheduleText, state: state}
		}
		state.AwaitingSchedulingConfirmation = true
		return result{text: askWhenText, state: state}

	case intent.IntentProfileUpdate:
		profile := e.loadProfile(ctx)
		confirmed, changed := applyProfileUpdate(text, profile)
		if !changed {
			return result{text: profileAskWhatText, state: state}
		}
		actions, warn := e.saveProfile(ctx, profile, nil)
		return result{
			text:    warn + "Updated: " + strings.Join(confirmed, ", ") + ".",
			state:   state,
			actions: actions,
		}

	case intent.IntentGreeting:
		return result{text: greetingText, state: state}

	case intent.IntentOffTopic:
		return result{text: offTopicText, state: state}

	case intent.IntentQuestion, intent.IntentFallback:
		state.Stage = domain.StageQA
		return result{text: e.advise(ctx, advice.TopicGeneral, text), state: state}

	default:
		if topic, ok := adviceTopic(it); ok {
			return result{text: e.advise(ctx, topic, text), state: state}
		}
		state.Stage = domain.StageQA
		return result{text: e.advise(ctx, advice.TopicGeneral, text), state: state}
	}
}

// qaTurn answers every turn through the advice collaborator and stays in
// QA; only a scheduling confirmation leaves this stage.
func (e *Engine) qaTurn(ctx context.Context, state domain.DialogueState, text string, it intent.Intent) result {
	topic := advice.TopicGeneral
	if t, ok := adviceTopic(it); ok {
		topic = t
	}
	return result{text: e.advise(ctx, topic, text), state: state}
}

func (e *Engine) scheduleAndRespond(ctx context.Context, state domain.DialogueState, date time.Time, label string) result {
	plan := state.LastCreatedPlan
	if plan == nil {
		state.ClearPlan()
		state.Stage = domain.StageIdle
		return result{text: noPlanFallbackText, state: state}
	}
	if e.scheduler == nil {
		state.AwaitingSchedulingConfirmation = false
		state.Stage = domain.StageIdle
		return result{text: scheduledText(plan, nil), state: state}
	}

	entries, err := e.scheduler.Schedule(ctx, plan, date, label)
	if err != nil {
		// Keep the stage and pending flag so the user can retry the
		// confirmation without starting over.
		return result{text: degradedSchedulingText, state: state}
	}

	state.AwaitingSchedulingConfirmation = false
	state.Stage = domain.StageIdle
	state.PendingDate = time.Time{}
	state.PendingTimeLabel = ""
	return result{
		text:    scheduledText(plan, entries),
		state:   state,
		actions: []Action{{Kind: ActionPlanScheduled, Plan: plan, Entries: entries}},
	}
}

func (e *Engine) advise(ctx context.Context, topic advice.Topic, prompt string) string {
	if e.advisor == nil {
		return advice.Template(topic)
	}
	return e.advisor.Advise(ctx, topic, prompt)
}

func (e *Engine) loadProfile(ctx context.Context) *domain.Profile {
	if e.profiles == nil {
		return domain.NewDefaultProfile()
	}
	profile, err := e.profiles.Load(ctx)
	if err != nil || profile == nil {
		return domain.NewDefaultProfile()
	}
	return profile
}

// saveProfile persists the profile and returns the accumulated actions plus
// a warning prefix for the reply when the store failed.
func (e *Engine) saveProfile(ctx context.Context, profile *domain.Profile, actions []Action) ([]Action, string) {
	if e.profiles == nil {
		return actions, ""
	}
	if err := e.profiles.Save(ctx, profile); err != nil {
		return actions, "Heads up, I couldn't save your profile just now. "
	}
	return append(actions, Action{Kind: ActionProfileSaved, Profile: profile}), ""
}

func (e *Engine) savePlan(ctx context.Context, plan *domain.Plan, kind ActionKind, actions []Action, warn string) ([]Action, string) {
	if e.plans == nil {
		return append(actions, Action{Kind: kind, Plan: plan}), warn
	}
	if err := e.plans.SavePlan(ctx, plan); err != nil {
		return append(actions, Action{Kind: kind, Plan: plan}),
			warn + "Heads up, I couldn't save the plan just now. "
	}
	return append(actions, Action{Kind: kind, Plan: plan}), warn
}

func (e *Engine) tomorrow() time.Time {
	now := e.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
}

func adviceTopic(it intent.Intent) (advice.Topic, bool) {
	switch it {
	case intent.IntentNutritionRequest:
		return advice.TopicNutrition, true
	case intent.IntentMotivationRequest:
		return advice.TopicMotivation, true
	case intent.IntentStressRequest:
		return advice.TopicStress, true
	case intent.IntentRecoveryRequest:
		return advice.TopicRecovery, true
	case intent.IntentEmotionalSupport:
		return advice.TopicEmotional, true
	}
	return "", false
}

func containsAny(msg string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(msg, n) {
			return true
		}
	}
	return false
}
