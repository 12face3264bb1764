package domain

// Exercise is a single prescribed movement inside a plan. Immutable once
// the plan is built; edits produce a new plan with a new exercise list.
type Exercise struct {
	Name         string
	Day          int // 1-based day within the plan
	Sets         int
	Reps         int // 0 means duration-based
	WeightKg     *float64
	DurationSec  *int
	RestSec      int
	Instructions string
	MuscleGroup  string
	Equipment    string // "None" when no equipment is needed
}

// Plan is a complete generated workout program. Plans are values: the
// generator builds them fresh and edits replace the whole value rather
// than mutating shared state.
type Plan struct {
	ID                 string
	Title              string
	Description        string
	Exercises          []Exercise
	DurationMin        int
	Difficulty         string
	Equipment          []string
	TargetMuscleGroups []string
}

// Days returns the number of conceptual days the plan spans.
func (p *Plan) Days() int {
	max := 0
	for _, ex := range p.Exercises {
		if ex.Day > max {
			max = ex.Day
		}
	}
	if max == 0 && len(p.Exercises) > 0 {
		return 1
	}
	return max
}

// ExercisesForDay returns the subset of exercises assigned to the given
// 1-based day, preserving order.
func (p *Plan) ExercisesForDay(day int) []Exercise {
	var out []Exercise
	for _, ex := range p.Exercises {
		d := ex.Day
		if d == 0 {
			d = 1
		}
		if d == day {
			out = append(out, ex)
		}
	}
	return out
}

// WithExercises returns a copy of the plan carrying the given exercise
// list. The receiver is left untouched.
func (p *Plan) WithExercises(exercises []Exercise) *Plan {
	clone := *p
	clone.Exercises = make([]Exercise, len(exercises))
	copy(clone.Exercises, exercises)
	clone.Equipment = append([]string(nil), p.Equipment...)
	clone.TargetMuscleGroups = append([]string(nil), p.TargetMuscleGroups...)
	return &clone
}
