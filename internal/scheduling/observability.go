package scheduling

import (
	"fmt"
	"io"
	"time"
)

// BookingEvent records metadata about one calendar booking attempt.
type BookingEvent struct {
	PlanID    string
	Day       int
	Start     time.Time
	Booked    bool
	ErrorText string
}

// Observer receives events about booking attempts for logging and metrics.
type Observer interface {
	OnBookingComplete(event BookingEvent)
}

// LogObserver writes booking events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnBookingComplete(event BookingEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Booked {
		status = "err:" + event.ErrorText
	}
	fmt.Fprintf(o.w, "[%s] calendar_booking plan=%s day=%d start=%s status=%s\n",
		ts, event.PlanID, event.Day, event.Start.Format(time.RFC3339), status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnBookingComplete(BookingEvent) {}
