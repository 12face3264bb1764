// Package patch turns free-text edit commands ("add burpees to day 2") into
// structured patch requests and applies them copy-on-write to a plan.
package patch

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/fitbuddy/internal/domain"
)

// Parse maps an edit command to a patch request. Rules run in a fixed
// order; the first that matches wins. The second return value is false
// when no rule matched, and the caller must ask the user to rephrase
// rather than dropping the turn.
func Parse(text string) (domain.PatchRequest, bool) {
	raw := strings.TrimSpace(text)
	msg := strings.ToLower(raw)

	switch {
	case strings.Contains(msg, "add") && strings.Contains(msg, "day"):
		return parseAdd(raw, msg), true
	case strings.Contains(msg, "move") && strings.Contains(msg, "to"):
		return domain.PatchRequest{Kind: domain.PatchChangeDate, RawText: raw}, true
	case strings.Contains(msg, "increase") || strings.Contains(msg, "decrease"):
		return domain.PatchRequest{Kind: domain.PatchChangeIntensity, RawText: raw}, true
	case strings.Contains(msg, "remove") || strings.Contains(msg, "drop"):
		return parseRemove(raw, msg), true
	case strings.Contains(msg, "equipment") || strings.Contains(msg, "bodyweight") || strings.Contains(msg, "dumbbell"):
		return domain.PatchRequest{Kind: domain.PatchChangeEquipment, RawText: raw}, true
	}
	return domain.PatchRequest{}, false
}

// parseAdd extracts the day number (digits, optionally glued to "day") and
// the exercise name (the words left after skipping the leading command
// tokens and day references).
func parseAdd(raw, msg string) domain.PatchRequest {
	tokens := strings.Fields(msg)

	day := 1
	for _, tok := range tokens {
		trimmed := strings.TrimPrefix(tok, "day")
		if trimmed == "" {
			continue
		}
		if n, err := strconv.Atoi(trimmed); err == nil && n >= 1 {
			day = n
			break
		}
	}

	var nameWords []string
	for _, tok := range tokens {
		if tok == "add" || tok == "to" || tok == "on" || tok == "day" {
			continue
		}
		if _, err := strconv.Atoi(strings.TrimPrefix(tok, "day")); err == nil {
			continue
		}
		nameWords = append(nameWords, tok)
	}

	return domain.PatchRequest{
		Kind:         domain.PatchAddExercise,
		Day:          day,
		ExerciseName: strings.Join(nameWords, " "),
		RawText:      raw,
	}
}

func parseRemove(raw, msg string) domain.PatchRequest {
	var nameWords []string
	for _, tok := range strings.Fields(msg) {
		switch tok {
		case "remove", "drop", "the", "please", "from", "plan", "my", "workout":
			continue
		}
		nameWords = append(nameWords, tok)
	}
	return domain.PatchRequest{
		Kind:         domain.PatchRemoveExercise,
		ExerciseName: strings.Join(nameWords, " "),
		RawText:      raw,
	}
}
