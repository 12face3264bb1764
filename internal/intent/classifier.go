package intent

import (
	"strings"

	"github.com/alexanderramin/fitbuddy/internal/domain"
)

// Classify maps one user turn to an intent. The input is lowercased and
// whitespace-trimmed; keywords match by substring containment. Rules are
// evaluated in a fixed total order and the first match wins, so ambiguous
// turns ("I'm stressed about scheduling") resolve deterministically.
func Classify(text string, state *domain.DialogueState) Intent {
	msg := strings.ToLower(strings.TrimSpace(text))

	if state != nil && state.AwaitingSchedulingConfirmation && containsAny(msg, confirmationVocabulary) {
		return IntentSchedulingConfirmation
	}
	if containsAny(msg, emotionalSupportKeywords) {
		return IntentEmotionalSupport
	}
	if containsAny(msg, offTopicKeywords) {
		return IntentOffTopic
	}
	if containsAny(msg, workoutKeywords) {
		return IntentWorkoutRequest
	}
	if containsAny(msg, scheduleKeywords) {
		return IntentScheduleRequest
	}
	if containsAny(msg, profileKeywords) {
		return IntentProfileUpdate
	}
	if containsAny(msg, nutritionKeywords) {
		return IntentNutritionRequest
	}
	if containsAny(msg, motivationKeywords) {
		return IntentMotivationRequest
	}
	if containsAny(msg, stressKeywords) {
		return IntentStressRequest
	}
	if containsAny(msg, recoveryKeywords) {
		return IntentRecoveryRequest
	}
	if containsAny(msg, greetingKeywords) {
		return IntentGreeting
	}
	if containsAny(msg, questionKeywords) {
		return IntentQuestion
	}
	return IntentFallback
}

func containsAny(msg string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}
