package timeparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolve_NextWeekdayIsStrictlyFuture(t *testing.T) {
	// One reference per weekday, including a Monday, so "next monday" on a
	// Monday must land a full week out.
	for offset := 0; offset < 7; offset++ {
		now := time.Date(2025, 6, 2, 15, 30, 0, 0, time.UTC).AddDate(0, 0, offset) // 2025-06-02 is a Monday
		res := Resolve("next monday", now)

		assert.True(t, res.DateFound)
		assert.Equal(t, time.Monday, res.Date.Weekday())
		assert.True(t, res.Date.After(now.Truncate(24*time.Hour)), "now=%s got=%s", now, res.Date)
		assert.NotEqual(t, now.Year()*10000+int(now.Month())*100+now.Day(),
			res.Date.Year()*10000+int(res.Date.Month())*100+res.Date.Day(),
			"next monday must never resolve to today")
	}
}

func TestResolve_DateRules(t *testing.T) {
	now := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC) // Wednesday

	tests := []struct {
		name  string
		text  string
		want  time.Time
		found bool
	}{
		{"in N days", "in 3 days", time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC), true},
		{"in 1 day", "in 1 day", time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), true},
		{"next friday", "next friday", time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC), true},
		{"next wednesday rolls a week", "next wednesday", time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), true},
		{"month day upcoming", "june 20", time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), true},
		{"month day passed rolls year", "january 15", time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), true},
		{"bare weekday", "friday works", time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC), true},
		{"bare same weekday rolls a week", "wednesday", time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), true},
		{"tomorrow", "tomorrow", time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), true},
		{"today", "today please", time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), true},
		{"next week", "sometime next week", time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), true},
		{"no date", "sounds good", time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(tt.text, now)
			assert.Equal(t, tt.found, res.DateFound)
			assert.Equal(t, tt.want, res.Date)
		})
	}
}

func TestResolve_TimeRules(t *testing.T) {
	now := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{"compact pm", "6pm", "6:00 PM", true},
		{"spoken pm", "at 6 pm", "6:00 PM", true},
		{"compact colon", "6:00pm", "6:00 PM", true},
		{"morning hour", "7am sharp", "7:00 AM", true},
		{"double digit am", "11am", "11:00 AM", true},
		{"double digit pm", "10 pm", "10:00 PM", true},
		{"twelve pm", "12pm", "12:00 PM", true},
		{"noon", "at noon", "12:00 PM", true},
		{"morning word", "in the morning", "9:00 AM", true},
		{"afternoon word", "this afternoon", "2:00 PM", true},
		{"evening word", "in the evening", "6:00 PM", true},
		{"night word", "tonight", "6:00 PM", true},
		{"no time", "next friday", "", false},
		{"eleven pm off grid", "11pm", "", false},
		{"eleven pm spoken off grid", "at 11 pm", "", false},
		{"twelve am off grid", "12am", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(tt.text, now)
			assert.Equal(t, tt.found, res.TimeFound)
			assert.Equal(t, tt.want, res.TimeOfDay)
		})
	}
}

func TestResolve_SixPMForAnyReference(t *testing.T) {
	for day := 1; day <= 28; day++ {
		now := time.Date(2025, 3, day, 8, 15, 0, 0, time.UTC)
		assert.Equal(t, "6:00 PM", Resolve("6pm", now).TimeOfDay)
	}
}

func TestResolve_DateAndTimeIndependent(t *testing.T) {
	now := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)

	res := Resolve("next friday", now)
	assert.True(t, res.DateFound)
	assert.False(t, res.TimeFound)
	assert.Equal(t, DefaultTimeOfDay, res.TimeOrDefault())

	res = Resolve("6pm", now)
	assert.False(t, res.DateFound)
	assert.True(t, res.TimeFound)
}

func TestCombine(t *testing.T) {
	date := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 5, 18, 0, 0, 0, time.UTC), Combine(date, "6:00 PM"))
	assert.Equal(t, time.Date(2025, 6, 5, 7, 0, 0, 0, time.UTC), Combine(date, "7:00 AM"))
	// Malformed labels fall back to 9:00.
	assert.Equal(t, time.Date(2025, 6, 5, 9, 0, 0, 0, time.UTC), Combine(date, "whenever"))
}
