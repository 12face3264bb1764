package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/fitbuddy/internal/domain"
)

const (
	greetingText = "Hey! I'm FitBuddy, your training companion. Ask me for a " +
		"workout plan, schedule a session, or ask any fitness question."

	offTopicText = "That's a bit outside my lane, I'm all about training, " +
		"nutrition and recovery. Want a workout plan or some fitness advice?"

	planningPromptText = "Say 'yes' to schedule it, 'edit' to make changes, " +
		"or 'no' to discard it."

	editMenuText = "What would you like to change? You can say things like " +
		"'add burpees to day 2', 'move it to friday', or 'increase squats " +
		"to 15 reps'. Say 'done' when you're happy."

	editHintText = "I didn't catch that edit. Try 'add burpees to day 2', " +
		"'move it to friday', or 'increase the intensity'. Say 'done' to " +
		"finish editing."

	editDoneText = "Great, the plan is locked in. " + planningPromptText

	discardText = "No problem, I've discarded that plan. Ask me for a new " +
		"workout whenever you're ready."

	askWhenText = "When would you like your first session? You can say " +
		"'tomorrow morning' or 'next monday at 6pm'."

	noPlanToScheduleText = "I don't have a plan to schedule yet. Ask me for " +
		"a workout plan first and I'll put one together."

	noPlanFallbackText = "Hmm, I lost track of the plan we were scheduling. " +
		"Let's start fresh, ask me for a workout plan."

	degradedSchedulingText = "Sorry, I couldn't reach your calendar just " +
		"now. Your plan is safe, say 'yes' again in a moment and I'll retry."

	profileAskWhatText = "What would you like to update? You can tell me " +
		"things like 'I weigh 75 kg', 'I'm 180 cm', or 'my goal is to " +
		"build muscle'."
)

func onboardingIntro() string {
	return "Let's build a plan that fits you. A few quick questions first.\n\n"
}

// planSummary renders a plan day by day with a scheduling offer.
func planSummary(p *domain.Plan, name string) string {
	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s, here's your plan: %s (%s, about %d min per session).\n",
			name, p.Title, strings.ToLower(p.Difficulty), p.DurationMin)
	} else {
		fmt.Fprintf(&b, "Here's your plan: %s (%s, about %d min per session).\n",
			p.Title, strings.ToLower(p.Difficulty), p.DurationMin)
	}
	if len(p.Equipment) > 0 {
		fmt.Fprintf(&b, "Equipment: %s.\n", strings.Join(p.Equipment, ", "))
	}
	for day := 1; day <= p.Days(); day++ {
		fmt.Fprintf(&b, "\nDay %d:\n", day)
		for _, ex := range p.ExercisesForDay(day) {
			b.WriteString("  - " + formatExercise(ex) + "\n")
		}
	}
	b.WriteString("\n" + planningPromptText)
	return b.String()
}

func formatExercise(ex domain.Exercise) string {
	switch {
	case ex.Reps > 0:
		return fmt.Sprintf("%s: %d x %d, rest %ds", ex.Name, ex.Sets, ex.Reps, ex.RestSec)
	case ex.DurationSec != nil:
		return fmt.Sprintf("%s: %d x %ds, rest %ds", ex.Name, ex.Sets, *ex.DurationSec, ex.RestSec)
	default:
		return ex.Name
	}
}

func scheduledText(plan *domain.Plan, entries []domain.ScheduleEntry) string {
	if len(entries) == 0 {
		return degradedSchedulingText
	}
	first := entries[0]
	day := first.StartAt.Format("Monday, January 2")
	if len(entries) == 1 {
		return fmt.Sprintf("Done! %s is booked for %s at %s. See you there!",
			plan.Title, day, first.TimeLabel)
	}
	return fmt.Sprintf("Done! %s is booked: %d sessions starting %s at %s. See you there!",
		plan.Title, len(entries), day, first.TimeLabel)
}

func pendingDateText(date time.Time, label string) string {
	return fmt.Sprintf("Noted, I'll aim for %s at %s. Say 'done' when you're "+
		"finished editing, then 'yes' to confirm.",
		date.Format("Monday, January 2"), label)
}
