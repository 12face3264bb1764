package patch

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexanderramin/fitbuddy/internal/domain"
)

var (
	// ErrExerciseNotFound indicates an intensity or removal patch named an
	// exercise the plan does not contain.
	ErrExerciseNotFound = errors.New("exercise not found in plan")

	// ErrNotApplicable indicates the patch kind must be handled by the
	// dialogue engine (date and equipment changes), not by Apply.
	ErrNotApplicable = errors.New("patch not applicable to exercise list")
)

// Defaults for exercises added by name only.
const (
	addedSets    = 3
	addedReps    = 10
	addedRestSec = 60
)

var toRepsPattern = regexp.MustCompile(`to (\d+)`)

// Apply produces a new plan with the patch applied; the input plan is
// never mutated. A summary string describes the change for the user.
func Apply(plan *domain.Plan, req domain.PatchRequest) (*domain.Plan, string, error) {
	switch req.Kind {
	case domain.PatchAddExercise:
		return applyAdd(plan, req)
	case domain.PatchRemoveExercise:
		return applyRemove(plan, req)
	case domain.PatchChangeIntensity:
		return applyIntensity(plan, req)
	default:
		return nil, "", ErrNotApplicable
	}
}

func applyAdd(plan *domain.Plan, req domain.PatchRequest) (*domain.Plan, string, error) {
	name := titleCase(req.ExerciseName)
	if name == "" {
		return nil, "", fmt.Errorf("add patch: %w", ErrExerciseNotFound)
	}
	day := req.Day
	if day < 1 {
		day = 1
	}
	if days := plan.Days(); day > days {
		day = days
	}

	exercises := append(append([]domain.Exercise(nil), plan.Exercises...), domain.Exercise{
		Name:         name,
		Day:          day,
		Sets:         addedSets,
		Reps:         addedReps,
		RestSec:      addedRestSec,
		Instructions: "Added on request",
		MuscleGroup:  "Full Body",
		Equipment:    "None",
	})
	return plan.WithExercises(exercises),
		fmt.Sprintf("Added %s to day %d.", name, day), nil
}

func applyRemove(plan *domain.Plan, req domain.PatchRequest) (*domain.Plan, string, error) {
	target := strings.ToLower(strings.TrimSpace(req.ExerciseName))
	if target == "" {
		return nil, "", fmt.Errorf("remove patch: %w", ErrExerciseNotFound)
	}

	var kept []domain.Exercise
	removed := 0
	for _, ex := range plan.Exercises {
		if nameMatches(ex.Name, target) {
			removed++
			continue
		}
		kept = append(kept, ex)
	}
	if removed == 0 {
		return nil, "", fmt.Errorf("remove %q: %w", req.ExerciseName, ErrExerciseNotFound)
	}
	return plan.WithExercises(kept),
		fmt.Sprintf("Removed %s from the plan.", titleCase(target)), nil
}

// applyIntensity adjusts reps (or duration for timed exercises) on the
// exercises the raw text names, or on every exercise when none is named.
func applyIntensity(plan *domain.Plan, req domain.PatchRequest) (*domain.Plan, string, error) {
	msg := strings.ToLower(req.RawText)
	increase := strings.Contains(msg, "increase")

	targetReps := 0
	if m := toRepsPattern.FindStringSubmatch(msg); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			targetReps = n
		}
	}

	matchesName := func(ex domain.Exercise) bool {
		return strings.Contains(msg, strings.ToLower(ex.Name))
	}
	anyNamed := false
	for _, ex := range plan.Exercises {
		if matchesName(ex) {
			anyNamed = true
			break
		}
	}

	exercises := append([]domain.Exercise(nil), plan.Exercises...)
	changed := 0
	for i := range exercises {
		if anyNamed && !matchesName(exercises[i]) {
			continue
		}
		adjustIntensity(&exercises[i], increase, targetReps)
		changed++
	}
	if changed == 0 {
		return nil, "", fmt.Errorf("intensity patch: %w", ErrExerciseNotFound)
	}

	direction := "Decreased"
	if increase {
		direction = "Increased"
	}
	scope := "the whole plan"
	if anyNamed {
		scope = "the matching exercises"
	}
	return plan.WithExercises(exercises),
		fmt.Sprintf("%s intensity for %s.", direction, scope), nil
}

func adjustIntensity(ex *domain.Exercise, increase bool, targetReps int) {
	if ex.Reps > 0 || targetReps > 0 {
		switch {
		case targetReps > 0:
			ex.Reps = targetReps
			ex.DurationSec = nil
		case increase:
			ex.Reps += 2
		case ex.Reps > 2:
			ex.Reps -= 2
		}
		return
	}
	if ex.DurationSec != nil {
		d := *ex.DurationSec
		if increase {
			d += 15
		} else if d > 15 {
			d -= 15
		}
		ex.DurationSec = &d
	}
}

func nameMatches(name, target string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, target) || strings.Contains(target, lower)
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
