package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/fitbuddy/internal/domain"
)

func TestFormatScheduleEmpty(t *testing.T) {
	out := FormatSchedule(nil, time.Now())
	assert.Contains(t, out, "Nothing scheduled")
}

func TestFormatScheduleListsEntries(t *testing.T) {
	now := time.Date(2025, 6, 4, 15, 0, 0, 0, time.UTC)
	entries := []*domain.ScheduleEntry{
		{
			PlanTitle: "Full Body Strength",
			Day:       1,
			StartAt:   time.Date(2025, 6, 5, 7, 0, 0, 0, time.UTC),
			TimeLabel: "7:00 AM",
			Status:    domain.ScheduleConfirmed,
		},
		{
			PlanTitle: "Full Body Strength",
			Day:       2,
			StartAt:   time.Date(2025, 6, 6, 7, 0, 0, 0, time.UTC),
			TimeLabel: "7:00 AM",
			Status:    domain.SchedulePending,
		},
	}

	out := FormatSchedule(entries, now)
	assert.Contains(t, out, "UPCOMING WORKOUTS")
	assert.Contains(t, out, "Tomorrow")
	assert.Contains(t, out, "CONFIRMED")
	assert.Contains(t, out, "PENDING")
	assert.Contains(t, out, "Day 2")
	assert.Contains(t, out, "7:00 AM")
}

func TestFormatProfile(t *testing.T) {
	p := &domain.Profile{
		Name:         "Alex",
		Age:          30,
		WeightKg:     75,
		HeightCm:     180,
		FitnessLevel: domain.LevelIntermediate,
		Goals:        []string{"lose weight"},
		Equipment:    []string{"dumbbells", "mat"},
	}

	out := FormatProfile(p)
	assert.Contains(t, out, "Alex")
	assert.Contains(t, out, "75.0 kg")
	assert.Contains(t, out, "180 cm")
	assert.Contains(t, out, "Intermediate")
	assert.Contains(t, out, "dumbbells, mat")
}

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		t    time.Time
		want string
	}{
		{now, "Today"},
		{now.AddDate(0, 0, 1), "Tomorrow"},
		{now.AddDate(0, 0, -1), "Yesterday"},
		{now.AddDate(0, 0, 5), "In 5d"},
		{now.AddDate(0, 0, 21), "In 3w"},
		{now.AddDate(0, 0, -3), "3d ago"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, RelativeDateFrom(tc.t, now))
	}
}
