package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/fitbuddy/internal/advice"
	"github.com/alexanderramin/fitbuddy/internal/domain"
	"github.com/alexanderramin/fitbuddy/internal/intent"
	"github.com/alexanderramin/fitbuddy/internal/onboarding"
	"github.com/alexanderramin/fitbuddy/internal/timeparse"
)

// Wednesday afternoon, so "tomorrow" is Thursday June 5.
var testNow = time.Date(2025, 6, 4, 15, 0, 0, 0, time.UTC)

type memProfileStore struct {
	profile *domain.Profile
	saveErr error
}

func (s *memProfileStore) Load(context.Context) (*domain.Profile, error) {
	return s.profile, nil
}

func (s *memProfileStore) Save(_ context.Context, p *domain.Profile) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	cp := *p
	s.profile = &cp
	return nil
}

type memPlanStore struct {
	saved []*domain.Plan
}

func (s *memPlanStore) SavePlan(_ context.Context, p *domain.Plan) error {
	s.saved = append(s.saved, p)
	return nil
}

type fakeScheduler struct {
	calls int
	plan  *domain.Plan
	date  time.Time
	label string
	err   error
}

func (s *fakeScheduler) Schedule(_ context.Context, plan *domain.Plan, date time.Time, label string) ([]domain.ScheduleEntry, error) {
	s.calls++
	s.plan, s.date, s.label = plan, date, label
	if s.err != nil {
		return nil, s.err
	}
	entries := make([]domain.ScheduleEntry, 0, plan.Days())
	for d := 1; d <= plan.Days(); d++ {
		entries = append(entries, domain.ScheduleEntry{
			PlanTitle: plan.Title,
			Day:       d,
			StartAt:   timeparse.Combine(date.AddDate(0, 0, d-1), label),
			TimeLabel: label,
		})
	}
	return entries, nil
}

type fakeAdvisor struct{}

func (fakeAdvisor) Advise(_ context.Context, topic advice.Topic, _ string) string {
	return "advice[" + string(topic) + "]"
}

type testRig struct {
	engine    *Engine
	profiles  *memProfileStore
	plans     *memPlanStore
	scheduler *fakeScheduler
}

func newTestRig() *testRig {
	rig := &testRig{
		profiles:  &memProfileStore{},
		plans:     &memPlanStore{},
		scheduler: &fakeScheduler{},
	}
	rig.engine = New(rig.profiles, rig.plans, rig.scheduler, fakeAdvisor{}, nil)
	rig.engine.now = func() time.Time { return testNow }
	return rig
}

func TestWorkoutRequestStartsOnboarding(t *testing.T) {
	rig := newTestRig()
	state := *domain.NewDialogueState("s1")

	reply, next, actions := rig.engine.Handle(context.Background(), state, "I want a workout plan")

	assert.Equal(t, intent.IntentWorkoutRequest, reply.Intent)
	assert.Equal(t, domain.StageOnboarding, next.Stage)
	assert.Equal(t, 0, next.QuestionIndex)
	assert.Contains(t, reply.Text, onboarding.Question(0))
	assert.Empty(t, actions)
}

func TestFullOnboardingJourney(t *testing.T) {
	rig := newTestRig()
	ctx := context.Background()
	state := *domain.NewDialogueState("s1")

	_, state, _ = rig.engine.Handle(ctx, state, "I need a workout plan")

	answers := []string{"alex", "30", "75", "180", "lose weight", "dumbbells"}
	for _, answer := range answers {
		var reply Reply
		reply, state, _ = rig.engine.Handle(ctx, state, answer)
		require.Equal(t, domain.StageOnboarding, state.Stage, "answer %q: %s", answer, reply.Text)
	}
	require.Equal(t, onboarding.FieldFitnessLevel, state.QuestionIndex)

	reply, state, actions := rig.engine.Handle(ctx, state, "intermediate")
	assert.Equal(t, domain.StagePlanning, state.Stage)
	require.NotNil(t, state.LastCreatedPlan)
	assert.Equal(t, "Full Body Strength", state.LastCreatedPlan.Title)
	assert.Contains(t, reply.Text, "Day 1")
	assert.Contains(t, reply.Text, "Alex")

	// Profile was saved per answer, plan once at the end.
	require.NotNil(t, rig.profiles.profile)
	assert.Equal(t, "Alex", rig.profiles.profile.Name)
	assert.Equal(t, 30, rig.profiles.profile.Age)
	assert.Len(t, rig.plans.saved, 1)

	var kinds []ActionKind
	for _, a := range actions {
		kinds = append(kinds, a.Kind)
	}
	assert.Contains(t, kinds, ActionPlanCreated)
}

func TestOnboardingInvalidAnswerRepeatsQuestion(t *testing.T) {
	rig := newTestRig()
	state := domain.DialogueState{
		SessionID:     "s1",
		Stage:         domain.StageOnboarding,
		QuestionIndex: onboarding.FieldAge,
	}

	reply, next, _ := rig.engine.Handle(context.Background(), state, "banana")

	assert.Equal(t, onboarding.FieldAge, next.QuestionIndex)
	assert.Equal(t, domain.StageOnboarding, next.Stage)
	assert.Contains(t, reply.Text, onboarding.Question(onboarding.FieldAge))
}

func TestGoalAnswerAdvancesToEquipment(t *testing.T) {
	rig := newTestRig()
	state := domain.DialogueState{
		SessionID:     "s1",
		Stage:         domain.StageOnboarding,
		QuestionIndex: onboarding.FieldGoal,
	}

	reply, next, _ := rig.engine.Handle(context.Background(), state, "lose weight")

	assert.Equal(t, onboarding.FieldEquipment, next.QuestionIndex)
	assert.Equal(t, onboarding.Question(onboarding.FieldEquipment), reply.Text)
	require.NotNil(t, rig.profiles.profile)
	assert.Equal(t, []string{"lose weight"}, rig.profiles.profile.Goals)
}

func threeDayPlanState() domain.DialogueState {
	return domain.DialogueState{
		SessionID: "s1",
		Stage:     domain.StagePlanning,
		LastCreatedPlan: &domain.Plan{
			ID:    "plan-1",
			Title: "Full Body Strength",
			Exercises: []domain.Exercise{
				{Name: "Squats", Day: 1, Sets: 3, Reps: 12},
				{Name: "Burpees", Day: 2, Sets: 3, Reps: 15},
				{Name: "Rows", Day: 3, Sets: 3, Reps: 10},
			},
		},
	}
}

func TestPlanningYesSchedulesTomorrowSeven(t *testing.T) {
	rig := newTestRig()

	reply, next, actions := rig.engine.Handle(context.Background(), threeDayPlanState(), "yes")

	require.Equal(t, 1, rig.scheduler.calls)
	assert.Equal(t, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), rig.scheduler.date)
	assert.Equal(t, "7:00 AM", rig.scheduler.label)
	assert.Equal(t, domain.StageIdle, next.Stage)
	assert.False(t, next.AwaitingSchedulingConfirmation)
	assert.Contains(t, reply.Text, "booked")

	require.Len(t, actions, 1)
	assert.Equal(t, ActionPlanScheduled, actions[0].Kind)
	assert.Len(t, actions[0].Entries, 3)
}

func TestPlanningEditThenPatchThenDone(t *testing.T) {
	rig := newTestRig()
	ctx := context.Background()

	reply, state, _ := rig.engine.Handle(ctx, threeDayPlanState(), "edit it please")
	assert.Equal(t, domain.StageEditing, state.Stage)
	assert.Equal(t, editMenuText, reply.Text)

	reply, state, actions := rig.engine.Handle(ctx, state, "increase burpees to 25 reps")
	assert.Equal(t, domain.StageEditing, state.Stage)
	require.NotNil(t, state.LastCreatedPlan)
	assert.Equal(t, 25, state.LastCreatedPlan.Exercises[1].Reps)
	require.Len(t, actions, 1)
	assert.Equal(t, ActionPlanUpdated, actions[0].Kind)

	// Unparseable edits keep the stage and re-emit the hint.
	reply, state, actions = rig.engine.Handle(ctx, state, "make it cooler")
	assert.Equal(t, domain.StageEditing, state.Stage)
	assert.Equal(t, editHintText, reply.Text)
	assert.Empty(t, actions)
	assert.Equal(t, 25, state.LastCreatedPlan.Exercises[1].Reps)

	reply, state, _ = rig.engine.Handle(ctx, state, "done")
	assert.Equal(t, domain.StagePlanning, state.Stage)
	assert.Contains(t, reply.Text, "schedule")
}

func TestEditingMoveSetsPendingDate(t *testing.T) {
	rig := newTestRig()
	state := threeDayPlanState()
	state.Stage = domain.StageEditing

	reply, state, _ := rig.engine.Handle(context.Background(), state, "move it to friday")

	// June 4 2025 is a Wednesday, so Friday is June 6.
	assert.Equal(t, time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC), state.PendingDate)
	assert.Contains(t, reply.Text, "Friday")

	// Confirming now uses the pending date.
	_, state, _ = rig.engine.Handle(context.Background(), state, "done")
	_, state, _ = rig.engine.Handle(context.Background(), state, "yes")
	assert.Equal(t, time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC), rig.scheduler.date)
	assert.True(t, state.PendingDate.IsZero())
}

func TestPlanningDiscard(t *testing.T) {
	rig := newTestRig()

	reply, next, _ := rig.engine.Handle(context.Background(), threeDayPlanState(), "no thanks")

	assert.Equal(t, domain.StageIdle, next.Stage)
	assert.Nil(t, next.LastCreatedPlan)
	assert.Equal(t, discardText, reply.Text)
	assert.Zero(t, rig.scheduler.calls)
}

func TestCrossCuttingConfirmationResolvesDateTime(t *testing.T) {
	rig := newTestRig()
	state := threeDayPlanState()
	state.Stage = domain.StageIdle
	state.AwaitingSchedulingConfirmation = true

	reply, next, _ := rig.engine.Handle(context.Background(), state, "tomorrow morning")

	assert.Equal(t, intent.IntentSchedulingConfirmation, reply.Intent)
	require.Equal(t, 1, rig.scheduler.calls)
	assert.Equal(t, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), rig.scheduler.date)
	assert.Equal(t, "9:00 AM", rig.scheduler.label)
	assert.Equal(t, domain.StageIdle, next.Stage)
	assert.False(t, next.AwaitingSchedulingConfirmation)
}

func TestConfirmationWithoutPlanFallsBack(t *testing.T) {
	rig := newTestRig()
	state := domain.DialogueState{
		SessionID:                      "s1",
		Stage:                          domain.StagePlanning,
		AwaitingSchedulingConfirmation: true, // broken invariant: no plan
	}

	reply, next, actions := rig.engine.Handle(context.Background(), state, "yes")

	assert.Equal(t, noPlanFallbackText, reply.Text)
	assert.Equal(t, domain.StageIdle, next.Stage)
	assert.False(t, next.AwaitingSchedulingConfirmation)
	assert.Empty(t, actions)
	assert.Zero(t, rig.scheduler.calls)
}

func TestSchedulerFailureDegradesAndKeepsState(t *testing.T) {
	rig := newTestRig()
	rig.scheduler.err = errors.New("calendar down")
	state := threeDayPlanState()
	state.AwaitingSchedulingConfirmation = true

	reply, next, actions := rig.engine.Handle(context.Background(), state, "yes")

	assert.Equal(t, degradedSchedulingText, reply.Text)
	// Stage is not rolled back; the user can retry the confirmation.
	assert.Equal(t, domain.StagePlanning, next.Stage)
	assert.True(t, next.AwaitingSchedulingConfirmation)
	assert.NotNil(t, next.LastCreatedPlan)
	assert.Empty(t, actions)
}

func TestScheduleRequestAsksWhen(t *testing.T) {
	rig := newTestRig()
	state := threeDayPlanState()
	state.Stage = domain.StageIdle

	reply, next, _ := rig.engine.Handle(context.Background(), state, "put it on my calendar")

	assert.Equal(t, askWhenText, reply.Text)
	assert.True(t, next.AwaitingSchedulingConfirmation)
	assert.Equal(t, domain.StageIdle, next.Stage)
}

func TestScheduleRequestWithoutPlan(t *testing.T) {
	rig := newTestRig()
	state := *domain.NewDialogueState("s1")

	reply, next, _ := rig.engine.Handle(context.Background(), state, "book a session")

	assert.Equal(t, noPlanToScheduleText, reply.Text)
	assert.False(t, next.AwaitingSchedulingConfirmation)
}

func TestProfileUpdateFromFreeText(t *testing.T) {
	rig := newTestRig()
	state := *domain.NewDialogueState("s1")

	reply, next, actions := rig.engine.Handle(context.Background(), state, "my weight is 80 kg now")

	assert.Equal(t, domain.StageIdle, next.Stage)
	assert.Contains(t, reply.Text, "80.0 kg")
	require.NotNil(t, rig.profiles.profile)
	assert.Equal(t, 80.0, rig.profiles.profile.WeightKg)
	require.Len(t, actions, 1)
	assert.Equal(t, ActionProfileSaved, actions[0].Kind)
}

func TestProfileUpdateWithoutValues(t *testing.T) {
	rig := newTestRig()
	state := *domain.NewDialogueState("s1")

	reply, _, actions := rig.engine.Handle(context.Background(), state, "update my profile")

	assert.Equal(t, profileAskWhatText, reply.Text)
	assert.Empty(t, actions)
}

func TestGreeting(t *testing.T) {
	rig := newTestRig()
	state := *domain.NewDialogueState("s1")

	reply, next, _ := rig.engine.Handle(context.Background(), state, "hello")

	assert.Equal(t, greetingText, reply.Text)
	assert.Equal(t, domain.StageIdle, next.Stage)
}

func TestQuestionEntersQAAndStays(t *testing.T) {
	rig := newTestRig()
	ctx := context.Background()
	state := *domain.NewDialogueState("s1")

	reply, state, _ := rig.engine.Handle(ctx, state, "can you help me?")
	assert.Equal(t, domain.StageQA, state.Stage)
	assert.Equal(t, "advice[general]", reply.Text)

	reply, state, _ = rig.engine.Handle(ctx, state, "what about my diet?")
	assert.Equal(t, domain.StageQA, state.Stage)
	assert.Equal(t, "advice[nutrition]", reply.Text)
}

func TestAdviceIntentsRouteToTopics(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"I feel so lazy today", "advice[motivation]"},
		{"work stress is getting to me", "advice[stress]"},
		{"how much sleep do I need", "advice[recovery]"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			rig := newTestRig()
			state := *domain.NewDialogueState("s1")
			reply, next, _ := rig.engine.Handle(context.Background(), state, tt.input)
			assert.Equal(t, tt.want, reply.Text)
			assert.Equal(t, domain.StageIdle, next.Stage)
		})
	}
}

func TestEveryTurnGetsAResponse(t *testing.T) {
	rig := newTestRig()
	ctx := context.Background()
	inputs := []string{"", "yes", "asdfgh", "no", "schedule", "done", "???"}

	for _, stage := range []domain.Stage{domain.StageIdle, domain.StageOnboarding, domain.StagePlanning, domain.StageEditing, domain.StageQA} {
		for _, input := range inputs {
			state := domain.DialogueState{SessionID: "s1", Stage: stage}
			reply, _, _ := rig.engine.Handle(ctx, state, input)
			assert.NotEmpty(t, reply.Text, "stage %s input %q", stage, input)
		}
	}
}
