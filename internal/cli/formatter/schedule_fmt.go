package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/fitbuddy/internal/domain"
)

// FormatSchedule renders upcoming schedule entries relative to now.
func FormatSchedule(entries []*domain.ScheduleEntry, now time.Time) string {
	if len(entries) == 0 {
		return Dim("Nothing scheduled. Chat with the coach to book a plan.") + "\n"
	}

	var b strings.Builder
	b.WriteString(Header("Upcoming workouts"))
	b.WriteString("\n")

	for _, e := range entries {
		when := fmt.Sprintf("%s (%s) at %s",
			e.StartAt.Format("Mon Jan 2"),
			RelativeDateFrom(e.StartAt, now),
			e.TimeLabel,
		)
		title := e.PlanTitle
		if e.Day > 0 {
			title = fmt.Sprintf("%s · Day %d", title, e.Day)
		}
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			StatusIndicator(e.Status),
			Bold(when),
			StyleFg.Render(title),
		))
	}

	return b.String()
}

// FormatProfile renders the stored user profile.
func FormatProfile(p *domain.Profile) string {
	var b strings.Builder
	b.WriteString(Header("Profile"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Name:"), p.Name))
	b.WriteString(fmt.Sprintf("%s %d\n", Dim("Age:"), p.Age))
	b.WriteString(fmt.Sprintf("%s %.1f kg\n", Dim("Weight:"), p.WeightKg))
	b.WriteString(fmt.Sprintf("%s %d cm\n", Dim("Height:"), p.HeightCm))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Level:"), string(p.FitnessLevel)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Goals:"), JoinOrNone(p.Goals)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Equipment:"), JoinOrNone(p.Equipment)))
	return b.String()
}
