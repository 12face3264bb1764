package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/fitbuddy/internal/domain"
)

func testPlan() *domain.Plan {
	burpeeDur := 45
	plankDur := 60
	return &domain.Plan{
		ID:    "plan-1",
		Title: "Full Body Strength",
		Exercises: []domain.Exercise{
			{Name: "Squats", Day: 1, Sets: 3, Reps: 12},
			{Name: "Burpees", Day: 2, Sets: 3, DurationSec: &burpeeDur},
			{Name: "Plank", Day: 3, Sets: 3, DurationSec: &plankDur},
		},
	}
}

func TestApplyAdd(t *testing.T) {
	plan := testPlan()
	req := domain.PatchRequest{
		Kind:         domain.PatchAddExercise,
		Day:          2,
		ExerciseName: "jumping jacks",
		RawText:      "add jumping jacks to day 2",
	}

	got, summary, err := Apply(plan, req)
	require.NoError(t, err)
	require.Len(t, got.Exercises, 4)

	added := got.Exercises[3]
	assert.Equal(t, "Jumping Jacks", added.Name)
	assert.Equal(t, 2, added.Day)
	assert.Equal(t, addedSets, added.Sets)
	assert.Equal(t, addedReps, added.Reps)
	assert.Contains(t, summary, "Jumping Jacks")

	// Input plan is untouched.
	assert.Len(t, plan.Exercises, 3)
}

func TestApplyAddClampsDay(t *testing.T) {
	got, _, err := Apply(testPlan(), domain.PatchRequest{
		Kind:         domain.PatchAddExercise,
		Day:          9,
		ExerciseName: "rows",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, got.Exercises[3].Day)
}

func TestApplyRemove(t *testing.T) {
	plan := testPlan()
	got, summary, err := Apply(plan, domain.PatchRequest{
		Kind:         domain.PatchRemoveExercise,
		ExerciseName: "burpees",
	})
	require.NoError(t, err)
	require.Len(t, got.Exercises, 2)
	assert.Equal(t, "Squats", got.Exercises[0].Name)
	assert.Equal(t, "Plank", got.Exercises[1].Name)
	assert.Contains(t, summary, "Burpees")
	assert.Len(t, plan.Exercises, 3)
}

func TestApplyRemoveUnknownExercise(t *testing.T) {
	_, _, err := Apply(testPlan(), domain.PatchRequest{
		Kind:         domain.PatchRemoveExercise,
		ExerciseName: "deadlifts",
	})
	assert.ErrorIs(t, err, ErrExerciseNotFound)
}

func TestApplyIntensityWithRepTarget(t *testing.T) {
	plan := testPlan()
	got, _, err := Apply(plan, domain.PatchRequest{
		Kind:    domain.PatchChangeIntensity,
		RawText: "increase burpees to 25 reps",
	})
	require.NoError(t, err)

	// Named exercise converts to the requested rep count.
	assert.Equal(t, 25, got.Exercises[1].Reps)
	assert.Nil(t, got.Exercises[1].DurationSec)

	// The rest of the plan is left alone.
	assert.Equal(t, 12, got.Exercises[0].Reps)
	require.NotNil(t, got.Exercises[2].DurationSec)
	assert.Equal(t, 60, *got.Exercises[2].DurationSec)

	// Copy on write: the source plan keeps its duration exercise.
	require.NotNil(t, plan.Exercises[1].DurationSec)
	assert.Equal(t, 45, *plan.Exercises[1].DurationSec)
}

func TestApplyIntensityWholePlan(t *testing.T) {
	got, _, err := Apply(testPlan(), domain.PatchRequest{
		Kind:    domain.PatchChangeIntensity,
		RawText: "increase the intensity",
	})
	require.NoError(t, err)

	assert.Equal(t, 14, got.Exercises[0].Reps)
	assert.Equal(t, 60, *got.Exercises[1].DurationSec)
	assert.Equal(t, 75, *got.Exercises[2].DurationSec)
}

func TestApplyIntensityDecrease(t *testing.T) {
	got, _, err := Apply(testPlan(), domain.PatchRequest{
		Kind:    domain.PatchChangeIntensity,
		RawText: "decrease everything a little",
	})
	require.NoError(t, err)

	assert.Equal(t, 10, got.Exercises[0].Reps)
	assert.Equal(t, 30, *got.Exercises[1].DurationSec)
}

func TestApplyDateAndEquipmentAreNotApplicable(t *testing.T) {
	for _, kind := range []domain.PatchKind{domain.PatchChangeDate, domain.PatchChangeEquipment} {
		_, _, err := Apply(testPlan(), domain.PatchRequest{Kind: kind})
		assert.ErrorIs(t, err, ErrNotApplicable)
	}
}
