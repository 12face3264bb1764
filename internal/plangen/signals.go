// Package plangen builds complete workout plans from a fixed, hand-authored
// template catalog. Template selection is a deterministic lookup driven by
// keyword signals scanned from user text; no search or optimization happens
// here, so the same signals always yield the same plan.
package plangen

import "strings"

// Signals captures the equipment, target and style cues scanned from one
// workout request.
type Signals struct {
	HasDumbbells   bool
	HasBands       bool
	HasPullUpBar   bool
	BodyweightOnly bool

	TargetLegs   bool
	TargetArms   bool
	TargetChest  bool
	TargetBack   bool
	TargetCore   bool
	TargetCardio bool

	StyleStrength    bool
	StyleCardio      bool
	StyleFlexibility bool
	StyleHIIT        bool
}

// ScanSignals extracts signals from free text by keyword containment.
func ScanSignals(text string) Signals {
	msg := strings.ToLower(text)
	var s Signals

	s.HasDumbbells = strings.Contains(msg, "dumbbell")
	s.HasBands = strings.Contains(msg, "band")
	s.HasPullUpBar = strings.Contains(msg, "pull-up bar") || strings.Contains(msg, "pull up bar") || strings.Contains(msg, "pullup bar")
	s.BodyweightOnly = strings.Contains(msg, "bodyweight") || strings.Contains(msg, "no equipment") || strings.Contains(msg, "without equipment")

	s.TargetLegs = strings.Contains(msg, "leg") || strings.Contains(msg, "glute")
	s.TargetArms = strings.Contains(msg, "arm") || strings.Contains(msg, "bicep") || strings.Contains(msg, "shoulder")
	s.TargetChest = strings.Contains(msg, "chest")
	s.TargetBack = strings.Contains(msg, "back")
	s.TargetCore = strings.Contains(msg, "core") || strings.Contains(msg, "abs")
	s.TargetCardio = strings.Contains(msg, "cardio") || strings.Contains(msg, "endurance")

	s.StyleStrength = strings.Contains(msg, "strength")
	s.StyleCardio = strings.Contains(msg, "cardio") || strings.Contains(msg, "running")
	s.StyleFlexibility = strings.Contains(msg, "flexibility") || strings.Contains(msg, "yoga") || strings.Contains(msg, "stretch")
	s.StyleHIIT = strings.Contains(msg, "hiit") || strings.Contains(msg, "interval")

	return s
}

// MergeEquipment folds profile equipment into the scanned signals so a bare
// "give me a workout" still respects what the user said they own during
// onboarding. Explicit bodyweight-only requests are not overridden.
func (s Signals) MergeEquipment(items []string) Signals {
	if s.BodyweightOnly {
		return s
	}
	for _, item := range items {
		lower := strings.ToLower(item)
		switch {
		case strings.Contains(lower, "dumbbell"):
			s.HasDumbbells = true
		case strings.Contains(lower, "band"):
			s.HasBands = true
		case strings.Contains(lower, "pull"):
			s.HasPullUpBar = true
		}
	}
	return s
}

// hasTarget reports whether any specific body part was requested.
func (s Signals) hasTarget() bool {
	return s.TargetLegs || s.TargetArms || s.TargetChest || s.TargetBack || s.TargetCore || s.TargetCardio
}
