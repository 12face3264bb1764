// Package intent maps free-form user text to one of a closed set of
// conversational intents using fixed keyword lists checked in a fixed
// precedence order. Classification is fully deterministic: the same text
// and dialogue state always produce the same intent.
package intent

// Intent is the classified purpose of one user turn.
type Intent string

const (
	IntentSchedulingConfirmation Intent = "scheduling_confirmation"
	IntentEmotionalSupport       Intent = "emotional_support"
	IntentOffTopic               Intent = "off_topic"
	IntentWorkoutRequest         Intent = "workout_request"
	IntentScheduleRequest        Intent = "schedule_request"
	IntentProfileUpdate          Intent = "profile_update"
	IntentNutritionRequest       Intent = "nutrition_request"
	IntentMotivationRequest      Intent = "motivation_request"
	IntentStressRequest          Intent = "stress_request"
	IntentRecoveryRequest        Intent = "recovery_request"
	IntentGreeting               Intent = "greeting"
	IntentQuestion               Intent = "question"
	IntentFallback               Intent = "fallback"
)

// IsValidIntent reports whether s names a known intent.
func IsValidIntent(s Intent) bool {
	switch s {
	case IntentSchedulingConfirmation, IntentEmotionalSupport, IntentOffTopic,
		IntentWorkoutRequest, IntentScheduleRequest, IntentProfileUpdate,
		IntentNutritionRequest, IntentMotivationRequest, IntentStressRequest,
		IntentRecoveryRequest, IntentGreeting, IntentQuestion, IntentFallback:
		return true
	}
	return false
}
