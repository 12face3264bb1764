package plangen

import (
	"github.com/alexanderramin/fitbuddy/internal/domain"
	"github.com/google/uuid"
)

// Generate selects the catalog template matching the given signals and
// returns a fresh plan value. Selection rules, in order: flexibility style,
// cardio style, HIIT style, a specific body-part target, then full body.
// Equipment-aware variants prefer dumbbells when available, then the
// pull-up bar where applicable, then bodyweight.
func Generate(signals Signals) *domain.Plan {
	var plan *domain.Plan
	switch {
	case signals.StyleFlexibility:
		plan = yogaTemplate()
	case signals.StyleCardio:
		plan = cardioTemplate(signals)
	case signals.StyleHIIT:
		plan = hiitTemplate(signals)
	case signals.hasTarget():
		plan = bodyPartTemplate(signals)
	default:
		plan = fullBodyTemplate(signals)
	}
	plan.ID = uuid.New().String()
	return plan
}

// dumbbellsUsable reports whether a dumbbell variant may be selected.
func dumbbellsUsable(s Signals) bool {
	return s.HasDumbbells && !s.BodyweightOnly
}

func pullUpBarUsable(s Signals) bool {
	return s.HasPullUpBar && !s.BodyweightOnly
}

func cardioTemplate(s Signals) *domain.Plan {
	if dumbbellsUsable(s) {
		return cardioDumbbellTemplate()
	}
	return cardioBodyweightTemplate()
}

func hiitTemplate(s Signals) *domain.Plan {
	if dumbbellsUsable(s) {
		return hiitDumbbellTemplate()
	}
	return hiitBodyweightTemplate()
}

// bodyPartTemplate picks the template for the first targeted body part,
// checked in a fixed order so multi-target requests stay deterministic.
func bodyPartTemplate(s Signals) *domain.Plan {
	switch {
	case s.TargetLegs:
		if dumbbellsUsable(s) {
			return legsDumbbellTemplate()
		}
		return legsBodyweightTemplate()
	case s.TargetArms:
		if dumbbellsUsable(s) {
			return armsDumbbellTemplate()
		}
		if pullUpBarUsable(s) {
			return armsPullUpBarTemplate()
		}
		return armsBodyweightTemplate()
	case s.TargetChest:
		if dumbbellsUsable(s) {
			return chestDumbbellTemplate()
		}
		return chestBodyweightTemplate()
	case s.TargetBack:
		if dumbbellsUsable(s) {
			return backDumbbellTemplate()
		}
		if pullUpBarUsable(s) {
			return backPullUpBarTemplate()
		}
		return backBodyweightTemplate()
	case s.TargetCore:
		if dumbbellsUsable(s) {
			return coreDumbbellTemplate()
		}
		return coreBodyweightTemplate()
	default: // TargetCardio
		return cardioTemplate(s)
	}
}

func fullBodyTemplate(s Signals) *domain.Plan {
	if dumbbellsUsable(s) {
		return fullBodyDumbbellTemplate()
	}
	return fullBodyBodyweightTemplate()
}
