// Package onboarding implements the sequential slot-filling interview that
// collects the user profile one question per turn. Invalid answers re-emit
// the same question; the flow itself never fails.
package onboarding

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/fitbuddy/internal/domain"
)

// Field indices in interview order.
const (
	FieldName = iota
	FieldAge
	FieldWeight
	FieldHeight
	FieldGoal
	FieldEquipment
	FieldFitnessLevel

	fieldCount
)

// Validation bounds for numeric answers.
const (
	MinAge      = 18
	MaxAge      = 100
	MinWeightKg = 30
	MaxWeightKg = 300
	MinHeightCm = 100
	MaxHeightCm = 250
)

var questions = [fieldCount]string{
	"Welcome to FitBuddy! Let's set up your profile. What's your name?",
	"Great! How old are you?",
	"Perfect! What's your weight in kg?",
	"Got it! What's your height in cm?",
	"What's your main fitness goal? (e.g., lose weight, build muscle, improve endurance)",
	"What equipment do you have access to? (e.g., dumbbells, resistance bands, none)",
	"Almost done! What's your fitness level? (Beginner, Intermediate, or Advanced)",
}

var retryPrompts = [fieldCount]string{
	"Please tell me your name (at least 2 characters).",
	"Please enter a valid age between 18 and 100.",
	"Please enter a valid weight between 30 and 300 kg.",
	"Please enter a valid height between 100 and 250 cm.",
	"Please describe your fitness goal in a few words.",
	"Please tell me what equipment you have (or say \"none\").",
	"Please choose: Beginner, Intermediate, or Advanced.",
}

// Done marks the index returned by Advance after the final question.
const Done = fieldCount

// Question returns the prompt for the given field index.
func Question(index int) string {
	if index < 0 || index >= fieldCount {
		return ""
	}
	return questions[index]
}

// RetryPrompt returns the re-prompt emitted when validation fails.
func RetryPrompt(index int) string {
	if index < 0 || index >= fieldCount {
		return ""
	}
	return retryPrompts[index]
}

// Validate reports whether input is an acceptable answer for the field.
func Validate(index int, input string) bool {
	answer := strings.TrimSpace(input)
	switch index {
	case FieldName:
		return len(answer) >= 2
	case FieldAge:
		age, err := strconv.Atoi(answer)
		return err == nil && age >= MinAge && age <= MaxAge
	case FieldWeight:
		w, err := strconv.ParseFloat(answer, 64)
		return err == nil && w >= MinWeightKg && w <= MaxWeightKg
	case FieldHeight:
		h, err := strconv.Atoi(answer)
		return err == nil && h >= MinHeightCm && h <= MaxHeightCm
	case FieldGoal, FieldEquipment, FieldFitnessLevel:
		return len(answer) >= 3
	default:
		return false
	}
}

// Apply writes a validated answer into the profile. Parse failures cannot
// occur for input that passed Validate, but each numeric field still falls
// back to the profile default rather than writing garbage.
func Apply(index int, input string, profile *domain.Profile) {
	answer := strings.TrimSpace(input)
	switch index {
	case FieldName:
		profile.Name = capitalize(answer)
	case FieldAge:
		if age, err := strconv.Atoi(answer); err == nil {
			profile.Age = age
		}
	case FieldWeight:
		if w, err := strconv.ParseFloat(answer, 64); err == nil {
			profile.WeightKg = w
		}
	case FieldHeight:
		if h, err := strconv.Atoi(answer); err == nil {
			profile.HeightCm = h
		}
	case FieldGoal:
		profile.Goals = []string{strings.ToLower(answer)}
	case FieldEquipment:
		profile.Equipment = splitList(answer)
	case FieldFitnessLevel:
		if level, ok := domain.ValidFitnessLevels[strings.ToLower(answer)]; ok {
			profile.FitnessLevel = level
		} else {
			profile.FitnessLevel = domain.LevelBeginner
		}
	}
}

// Advance returns the next field index, or Done past the last field.
func Advance(index int) int {
	next := index + 1
	if next >= fieldCount {
		return Done
	}
	return next
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		item := strings.TrimSpace(part)
		if item != "" {
			out = append(out, strings.ToLower(item))
		}
	}
	return out
}
