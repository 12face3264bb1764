package domain

type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "Beginner"
	LevelIntermediate FitnessLevel = "Intermediate"
	LevelAdvanced     FitnessLevel = "Advanced"
)

// ValidFitnessLevels maps lowercase input to the canonical fitness level.
var ValidFitnessLevels = map[string]FitnessLevel{
	"beginner":     LevelBeginner,
	"intermediate": LevelIntermediate,
	"advanced":     LevelAdvanced,
}

type Stage string

const (
	StageIdle       Stage = "idle"
	StageOnboarding Stage = "onboarding"
	StagePlanning   Stage = "planning"
	StageEditing    Stage = "editing"
	StageQA         Stage = "qa"
)

type ScheduleSource string

const (
	SourceLocal    ScheduleSource = "local"
	SourceCalendar ScheduleSource = "calendar"
)

type ScheduleStatus string

const (
	SchedulePending   ScheduleStatus = "pending"
	ScheduleConfirmed ScheduleStatus = "confirmed"
)
