package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/fitbuddy/internal/domain"
)

type bookedCall struct {
	title    string
	start    time.Time
	duration int
}

type fakeCalendar struct {
	calls   []bookedCall
	failDay map[int]error // 1-based call index to fail
}

func (c *fakeCalendar) BookEvent(_ context.Context, title string, start time.Time, durationMin int) (string, error) {
	c.calls = append(c.calls, bookedCall{title, start, durationMin})
	if err := c.failDay[len(c.calls)]; err != nil {
		return "", err
	}
	return "evt-" + start.Format("2006-01-02"), nil
}

type memEntryStore struct {
	entries []domain.ScheduleEntry
	err     error
}

func (s *memEntryStore) CreateEntry(_ context.Context, entry *domain.ScheduleEntry) error {
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, *entry)
	return nil
}

func threeDayPlan() *domain.Plan {
	return &domain.Plan{
		ID:          "plan-1",
		Title:       "Full Body Strength",
		DurationMin: 40,
		Exercises: []domain.Exercise{
			{Name: "Squats", Day: 1, Sets: 3, Reps: 12},
			{Name: "Push-ups", Day: 2, Sets: 3, Reps: 10},
			{Name: "Rows", Day: 3, Sets: 3, Reps: 10},
		},
	}
}

func TestScheduleOneEntryPerDay(t *testing.T) {
	cal := &fakeCalendar{}
	store := &memEntryStore{}
	p := NewPipeline(cal, store, nil)

	date := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC) // tomorrow relative to the scenario
	entries, err := p.Schedule(context.Background(), threeDayPlan(), date, "7:00 AM")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Len(t, cal.calls, 3)

	for k, entry := range entries {
		want := time.Date(2025, 6, 5+k, 7, 0, 0, 0, time.UTC)
		assert.Equal(t, want, entry.StartAt)
		assert.Equal(t, k+1, entry.Day)
		assert.Equal(t, "7:00 AM", entry.TimeLabel)
		assert.Equal(t, domain.SourceCalendar, entry.Source)
		assert.Equal(t, domain.ScheduleConfirmed, entry.Status)
		assert.NotEmpty(t, entry.EventID)
		assert.Equal(t, 40, cal.calls[k].duration)
	}
	assert.Len(t, store.entries, 3)
}

func TestScheduleFailedDayDoesNotRollBack(t *testing.T) {
	cal := &fakeCalendar{failDay: map[int]error{2: ErrCalendarUnavailable}}
	p := NewPipeline(cal, nil, NoopObserver{})

	date := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	entries, err := p.Schedule(context.Background(), threeDayPlan(), date, "7:00 AM")
	require.ErrorIs(t, err, ErrCalendarUnavailable)
	require.Len(t, entries, 3)

	assert.Equal(t, domain.ScheduleConfirmed, entries[0].Status)
	assert.Equal(t, domain.SchedulePending, entries[1].Status)
	assert.Equal(t, domain.SourceLocal, entries[1].Source)
	assert.Empty(t, entries[1].EventID)
	// Day 3 is still attempted after day 2 failed.
	assert.Equal(t, domain.ScheduleConfirmed, entries[2].Status)
	assert.Len(t, cal.calls, 3)
}

func TestScheduleIsNotIdempotent(t *testing.T) {
	cal := &fakeCalendar{}
	store := &memEntryStore{}
	p := NewPipeline(cal, store, nil)

	date := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	first, err := p.Schedule(context.Background(), threeDayPlan(), date, "7:00 AM")
	require.NoError(t, err)
	second, err := p.Schedule(context.Background(), threeDayPlan(), date, "7:00 AM")
	require.NoError(t, err)

	assert.Len(t, store.entries, 6)
	assert.NotEqual(t, first[0].ID, second[0].ID)
}

func TestSchedulePersistFailureIsReported(t *testing.T) {
	storeErr := errors.New("disk full")
	p := NewPipeline(&fakeCalendar{}, &memEntryStore{err: storeErr}, nil)

	date := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	entries, err := p.Schedule(context.Background(), threeDayPlan(), date, "7:00 AM")
	require.ErrorIs(t, err, storeErr)
	// Bookings themselves still happened for every day.
	require.Len(t, entries, 3)
	for _, entry := range entries {
		assert.Equal(t, domain.ScheduleConfirmed, entry.Status)
	}
}

func TestScheduleNilPlan(t *testing.T) {
	p := NewPipeline(&fakeCalendar{}, nil, nil)
	_, err := p.Schedule(context.Background(), nil, time.Now(), "7:00 AM")
	assert.Error(t, err)
}

func TestLocalCalendarAlwaysBooks(t *testing.T) {
	cal := NewLocalCalendar(nil)
	id, err := cal.BookEvent(context.Background(), "Yoga (Day 1)", time.Now(), 30)
	require.NoError(t, err)
	assert.Contains(t, id, "local-")
}
