package advice

import (
	"fmt"
	"io"
	"time"
)

// CallEvent records metadata about a single advice backend invocation.
type CallEvent struct {
	Topic     Topic
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about advice calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes advice call events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] advice_call topic=%s latency_ms=%d status=%s\n",
		ts, event.Topic, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
