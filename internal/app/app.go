// Package app assembles the application: it opens the database, wires
// repositories, the advice backend, the scheduling pipeline, and the
// dialogue engine, and exposes them to the CLI and HTTP entrypoints.
package app

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/alexanderramin/fitbuddy/internal/advice"
	"github.com/alexanderramin/fitbuddy/internal/config"
	"github.com/alexanderramin/fitbuddy/internal/db"
	"github.com/alexanderramin/fitbuddy/internal/engine"
	"github.com/alexanderramin/fitbuddy/internal/repository"
	"github.com/alexanderramin/fitbuddy/internal/scheduling"
)

// App holds the wired application graph.
type App struct {
	Config   config.Config
	Engine   *engine.Engine
	Sessions *SessionManager

	Profiles repository.ProfileRepo
	Plans    repository.PlanRepo
	Schedule repository.ScheduleRepo

	database *sql.DB
}

// New opens the database at cfg.Database.Path and wires every component.
// The caller owns the returned App and must Close it.
func New(cfg config.Config) (*App, error) {
	database, err := db.OpenDB(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	a, err := build(cfg, database)
	if err != nil {
		database.Close()
		return nil, err
	}
	a.database = database
	return a, nil
}

// NewWithDB wires the application against an already-open database. The
// caller keeps ownership of the connection.
func NewWithDB(cfg config.Config, database *sql.DB) (*App, error) {
	return build(cfg, database)
}

func build(cfg config.Config, database *sql.DB) (*App, error) {
	profileRepo := repository.NewSQLiteProfileRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)
	scheduleRepo := repository.NewSQLiteScheduleRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)

	adviceCfg := advice.Config{
		Enabled:    cfg.Advice.Enabled,
		LogCalls:   cfg.Advice.LogCalls,
		Endpoint:   cfg.Advice.Endpoint,
		TimeoutMs:  cfg.Advice.TimeoutMs,
		MaxRetries: cfg.Advice.MaxRetries,
	}
	var adviceObserver advice.Observer = advice.NoopObserver{}
	if cfg.Advice.LogCalls {
		adviceObserver = advice.NewLogObserver(os.Stderr)
	}
	var adviceClient advice.Client
	if cfg.Advice.Enabled {
		adviceClient = advice.NewHTTPClient(adviceCfg, adviceObserver)
	}
	advisor := advice.NewService(adviceCfg, adviceClient)

	var bookingObserver scheduling.Observer = scheduling.NoopObserver{}
	if cfg.Verbose {
		bookingObserver = scheduling.NewLogObserver(os.Stderr)
	}
	pipeline := scheduling.NewPipeline(
		scheduling.NewLocalCalendar(nil),
		&scheduleEntryStore{repo: scheduleRepo},
		bookingObserver,
	)

	var turnObserver engine.TurnObserver = engine.NoopTurnObserver{}
	if cfg.Verbose {
		turnObserver = engine.NewLogTurnObserver(os.Stderr)
	}
	uow := db.NewSQLiteUnitOfWork(database)
	eng := engine.New(
		&profileStore{repo: profileRepo},
		&planStore{uow: uow},
		pipeline,
		advisor,
		turnObserver,
	)
	eng.SetDefaultWorkoutTime(cfg.Schedule.DefaultTime)

	return &App{
		Config:   cfg,
		Engine:   eng,
		Sessions: NewSessionManager(sessionRepo, planRepo, eng),
		Profiles: profileRepo,
		Plans:    planRepo,
		Schedule: scheduleRepo,
	}, nil
}

// Close releases the database if this App opened it.
func (a *App) Close() error {
	if a.database == nil {
		return nil
	}
	return a.database.Close()
}
