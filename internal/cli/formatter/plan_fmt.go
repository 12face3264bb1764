package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fitbuddy/internal/domain"
)

// FormatPlan renders a workout plan day by day.
func FormatPlan(p *domain.Plan) string {
	var b strings.Builder

	b.WriteString(Header(p.Title))
	b.WriteString("\n")
	if p.Description != "" {
		b.WriteString(Dim(p.Description))
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("%s  %s · %d min/session · equipment: %s\n",
		DifficultyColor(p.Difficulty).Render("● "+p.Difficulty),
		Dim(fmt.Sprintf("%d days", p.Days())),
		p.DurationMin,
		JoinOrNone(p.Equipment),
	))

	for day := 1; day <= p.Days(); day++ {
		exercises := p.ExercisesForDay(day)
		if len(exercises) == 0 {
			continue
		}
		b.WriteString("\n")
		b.WriteString(Bold(fmt.Sprintf("Day %d", day)))
		b.WriteString("\n")
		for _, ex := range exercises {
			b.WriteString("  " + FormatExerciseLine(ex) + "\n")
		}
	}

	return b.String()
}

// FormatExerciseLine renders one exercise as a single line.
func FormatExerciseLine(ex domain.Exercise) string {
	var dose string
	switch {
	case ex.Reps > 0 && ex.RestSec > 0:
		dose = fmt.Sprintf("%d x %d, rest %ds", ex.Sets, ex.Reps, ex.RestSec)
	case ex.Reps > 0:
		dose = fmt.Sprintf("%d x %d", ex.Sets, ex.Reps)
	case ex.DurationSec != nil:
		dose = fmt.Sprintf("%d x %ds", ex.Sets, *ex.DurationSec)
	default:
		dose = fmt.Sprintf("%d sets", ex.Sets)
	}
	line := fmt.Sprintf("%s  %s", StyleFg.Render(ex.Name), Dim(dose))
	if ex.WeightKg != nil {
		line += Dim(fmt.Sprintf(" @ %.1f kg", *ex.WeightKg))
	}
	if ex.MuscleGroup != "" {
		line += "  " + StyleBlue.Render(ex.MuscleGroup)
	}
	return line
}
