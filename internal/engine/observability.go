package engine

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/fitbuddy/internal/domain"
	"github.com/alexanderramin/fitbuddy/internal/intent"
)

// TurnEvent captures lightweight execution telemetry for one dialogue turn.
type TurnEvent struct {
	SessionID string
	Intent    intent.Intent
	StageIn   domain.Stage
	StageOut  domain.Stage
	Actions   int
	Duration  time.Duration
}

// TurnObserver receives turn execution events.
type TurnObserver interface {
	ObserveTurn(ctx context.Context, event TurnEvent)
}

// NoopTurnObserver ignores all events.
type NoopTurnObserver struct{}

func (NoopTurnObserver) ObserveTurn(context.Context, TurnEvent) {}

type logTurnObserver struct {
	logger *slog.Logger
}

// NewLogTurnObserver writes turn events to the provided writer.
func NewLogTurnObserver(w io.Writer) TurnObserver {
	if w == nil {
		return NoopTurnObserver{}
	}
	return &logTurnObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logTurnObserver) ObserveTurn(ctx context.Context, event TurnEvent) {
	o.logger.InfoContext(ctx, "dialogue_turn",
		"session", event.SessionID,
		"intent", string(event.Intent),
		"stage_in", string(event.StageIn),
		"stage_out", string(event.StageOut),
		"actions", event.Actions,
		"duration_ms", event.Duration.Milliseconds(),
	)
}
