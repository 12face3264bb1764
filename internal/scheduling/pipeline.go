package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/fitbuddy/internal/domain"
	"github.com/alexanderramin/fitbuddy/internal/timeparse"
)

// Fallback session length when a plan carries no duration of its own.
const defaultDurationMin = 45

// EntryStore persists schedule entries. The pipeline tolerates a nil store.
type EntryStore interface {
	CreateEntry(ctx context.Context, entry *domain.ScheduleEntry) error
}

// Pipeline turns a confirmed plan into one schedule entry per plan day
// and books each with the calendar. Bookings are independent calls: a
// failed day does not roll back earlier days, and re-running the same
// plan and date books duplicate entries. Callers that need idempotency
// must de-duplicate before invoking Schedule.
type Pipeline struct {
	calendar Calendar
	store    EntryStore
	observer Observer
	now      func() time.Time
}

func NewPipeline(calendar Calendar, store EntryStore, observer Observer) *Pipeline {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Pipeline{
		calendar: calendar,
		store:    store,
		observer: observer,
		now:      time.Now,
	}
}

// Schedule books plan day k at date+k, all at the given time label.
// It always returns one entry per plan day; entries whose booking or
// persistence failed come back with source "local" and status "pending",
// and the joined error reports what went wrong.
func (p *Pipeline) Schedule(ctx context.Context, plan *domain.Plan, date time.Time, timeLabel string) ([]domain.ScheduleEntry, error) {
	if plan == nil {
		return nil, errors.New("schedule: nil plan")
	}

	duration := plan.DurationMin
	if duration <= 0 {
		duration = defaultDurationMin
	}

	var errs []error
	entries := make([]domain.ScheduleEntry, 0, plan.Days())
	for day := 1; day <= plan.Days(); day++ {
		start := timeparse.Combine(date.AddDate(0, 0, day-1), timeLabel)
		entry := domain.ScheduleEntry{
			ID:        uuid.New().String(),
			PlanID:    plan.ID,
			PlanTitle: plan.Title,
			Day:       day,
			StartAt:   start,
			TimeLabel: timeLabel,
			Source:    domain.SourceLocal,
			Status:    domain.SchedulePending,
			CreatedAt: p.now().UTC(),
		}

		title := fmt.Sprintf("%s (Day %d)", plan.Title, day)
		eventID, err := p.calendar.BookEvent(ctx, title, start, duration)
		if err != nil {
			errs = append(errs, fmt.Errorf("book day %d: %w", day, err))
			p.observer.OnBookingComplete(BookingEvent{
				PlanID: plan.ID, Day: day, Start: start, ErrorText: err.Error(),
			})
		} else {
			entry.EventID = eventID
			entry.Source = domain.SourceCalendar
			entry.Status = domain.ScheduleConfirmed
			p.observer.OnBookingComplete(BookingEvent{
				PlanID: plan.ID, Day: day, Start: start, Booked: true,
			})
		}

		if p.store != nil {
			if err := p.store.CreateEntry(ctx, &entry); err != nil {
				errs = append(errs, fmt.Errorf("persist day %d: %w", day, err))
			}
		}
		entries = append(entries, entry)
	}

	return entries, errors.Join(errs...)
}
