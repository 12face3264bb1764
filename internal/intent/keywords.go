package intent

// The keyword lists below define classification behavior together with the
// precedence order in Classify. Both the lists and the order are part of
// the contract; changing either changes which intent wins an ambiguous turn.

// confirmationVocabulary triggers SchedulingConfirmation, but only while a
// scheduling confirmation is pending on the dialogue state.
var confirmationVocabulary = []string{
	"yes", "yeah", "sure", "ok", "okay", "schedule", "book", "calendar",
	"when", "today", "tomorrow", "morning", "afternoon", "evening", "night",
}

var emotionalSupportKeywords = []string{
	"sad", "depressed", "anxious", "stressed", "overwhelmed", "tired",
	"exhausted", "frustrated", "angry", "lonely", "hopeless", "worthless",
	"guilty", "ashamed", "afraid", "scared", "worried", "nervous", "panic",
	"crying", "tears", "don't want to", "can't do this", "give up", "quit",
	"failure", "failed", "not good enough", "hate myself", "no energy",
	"no motivation", "feel like",
}

var offTopicKeywords = []string{
	"weather", "politics", "news", "sports", "music", "movies", "books",
	"travel", "cooking", "recipes", "shopping", "technology", "programming",
	"math", "science", "history", "geography", "art", "literature",
	"philosophy", "religion", "jokes", "riddles", "games", "puzzles",
	"trivia", "random", "funny", "entertainment",
}

var workoutKeywords = []string{"workout", "exercise", "training", "train"}

var scheduleKeywords = []string{"schedule", "calendar", "book"}

var profileKeywords = []string{"weight", "height", "age", "goal", "profile"}

var nutritionKeywords = []string{"nutrition", "diet", "food", "meal"}

var motivationKeywords = []string{
	"motivation", "tired", "lazy", "don't feel like", "can't", "hard",
}

var stressKeywords = []string{
	"stress", "anxiety", "overwhelmed", "depressed", "sad", "down",
}

var recoveryKeywords = []string{"sleep", "rest", "recovery"}

var greetingKeywords = []string{"hello", "hi", "hey"}

var questionKeywords = []string{"?", "why", "how", "what", "question", "help", "advice"}
