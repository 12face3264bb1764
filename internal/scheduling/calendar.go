// Package scheduling books a confirmed plan into schedule entries, one
// per plan day, against a Calendar collaborator.
package scheduling

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// ErrCalendarUnavailable wraps booking failures from the external provider.
var ErrCalendarUnavailable = errors.New("calendar unavailable")

// Calendar books a single event with an external provider. Implementations
// must honor ctx deadlines; the pipeline does not retry.
type Calendar interface {
	BookEvent(ctx context.Context, title string, start time.Time, durationMin int) (eventID string, err error)
}

// LocalCalendar is the in-process provider used when no external calendar
// is configured. Bookings always succeed and are assigned local event IDs.
type LocalCalendar struct {
	logger *slog.Logger
}

func NewLocalCalendar(logger *slog.Logger) *LocalCalendar {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &LocalCalendar{logger: logger}
}

func (c *LocalCalendar) BookEvent(ctx context.Context, title string, start time.Time, durationMin int) (string, error) {
	id := "local-" + uuid.New().String()
	c.logger.InfoContext(ctx, "calendar_booking",
		"event_id", id,
		"title", title,
		"start", start.Format(time.RFC3339),
		"duration_min", durationMin,
	)
	return id, nil
}
