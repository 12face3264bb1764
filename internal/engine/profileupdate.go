package engine

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexanderramin/fitbuddy/internal/domain"
	"github.com/alexanderramin/fitbuddy/internal/onboarding"
)

const (
	lbsPerKg = 2.20462
	cmPerIn  = 2.54
)

var (
	weightPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(kg|kilograms?|kilos?|lbs|pounds?)`)
	heightPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(cm|centimeters?|inches|in\b)`)
	agePattern    = regexp.MustCompile(`(\d+)\s*(?:years?\s*old|yrs?\s*old)`)
	goalPattern   = regexp.MustCompile(`goal\s+is\s+(?:to\s+)?(.+)$`)
)

// applyProfileUpdate extracts weight, height, age and goal mentions from
// free text and writes them into the profile. It reports the confirmations
// to echo back and whether anything changed. Imperial units are normalized
// to kg and cm; out-of-range values are ignored rather than rejected.
func applyProfileUpdate(text string, profile *domain.Profile) ([]string, bool) {
	msg := strings.ToLower(text)
	var confirmed []string

	if m := weightPattern.FindStringSubmatch(msg); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			kg := v
			if strings.HasPrefix(m[2], "lb") || strings.HasPrefix(m[2], "pound") {
				kg = math.Round(v/lbsPerKg*10) / 10
			}
			if kg >= onboarding.MinWeightKg && kg <= onboarding.MaxWeightKg {
				profile.WeightKg = kg
				confirmed = append(confirmed, fmt.Sprintf("weight %.1f kg", kg))
			}
		}
	}

	if m := heightPattern.FindStringSubmatch(msg); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			cm := v
			if strings.HasPrefix(m[2], "in") {
				cm = math.Round(v * cmPerIn)
			}
			h := int(math.Round(cm))
			if h >= onboarding.MinHeightCm && h <= onboarding.MaxHeightCm {
				profile.HeightCm = h
				confirmed = append(confirmed, fmt.Sprintf("height %d cm", h))
			}
		}
	}

	if m := agePattern.FindStringSubmatch(msg); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil &&
			n >= onboarding.MinAge && n <= onboarding.MaxAge {
			profile.Age = n
			confirmed = append(confirmed, fmt.Sprintf("age %d", n))
		}
	}

	if m := goalPattern.FindStringSubmatch(msg); m != nil {
		goal := strings.TrimSpace(strings.Trim(m[1], ".!"))
		if len(goal) >= 3 {
			profile.Goals = []string{goal}
			confirmed = append(confirmed, fmt.Sprintf("goal %q", goal))
		}
	}

	return confirmed, len(confirmed) > 0
}
