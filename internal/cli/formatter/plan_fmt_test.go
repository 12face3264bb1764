package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/fitbuddy/internal/domain"
)

func TestFormatPlanListsEveryDay(t *testing.T) {
	dur := 45
	p := &domain.Plan{
		ID:          "p1",
		Title:       "Full Body Strength",
		Description: "Three days of compound work.",
		DurationMin: 40,
		Difficulty:  "Intermediate",
		Equipment:   []string{"dumbbells"},
		Exercises: []domain.Exercise{
			{Name: "Squats", Day: 1, Sets: 3, Reps: 12, RestSec: 60, MuscleGroup: "Legs"},
			{Name: "Burpees", Day: 2, Sets: 3, DurationSec: &dur},
		},
	}

	out := FormatPlan(p)
	assert.Contains(t, out, "FULL BODY STRENGTH")
	assert.Contains(t, out, "Day 1")
	assert.Contains(t, out, "Day 2")
	assert.Contains(t, out, "Squats")
	assert.Contains(t, out, "3 x 12, rest 60s")
	assert.Contains(t, out, "3 x 45s")
	assert.Contains(t, out, "dumbbells")
}

func TestFormatPlanSkipsEmptyDays(t *testing.T) {
	p := &domain.Plan{
		Title: "Sparse",
		Exercises: []domain.Exercise{
			{Name: "Plank", Day: 3, Sets: 3, Reps: 10},
		},
	}

	out := FormatPlan(p)
	assert.Contains(t, out, "Day 3")
	assert.NotContains(t, out, "Day 1")
}

func TestFormatExerciseLineWithWeight(t *testing.T) {
	w := 22.5
	line := FormatExerciseLine(domain.Exercise{
		Name: "Goblet Squat", Sets: 4, Reps: 8, WeightKg: &w,
	})
	assert.Contains(t, line, "Goblet Squat")
	assert.Contains(t, line, "4 x 8")
	assert.Contains(t, line, "22.5 kg")
}
