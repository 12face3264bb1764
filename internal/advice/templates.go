package advice

// Fixed fallback texts per topic. These answer deterministically when the
// remote backend is disabled or fails mid-turn.
var templates = map[Topic]string{
	TopicGeneral: "Good question! Consistency beats perfection: pick a plan " +
		"you can actually stick to, train 3-4 times a week, and progress a " +
		"little each session. Ask me for a workout plan any time.",
	TopicNutrition: "For most training goals, build meals around a protein " +
		"source (aim for roughly 1.6-2.2 g per kg of body weight per day), " +
		"plenty of vegetables, and enough carbs to fuel your sessions. " +
		"Drink water through the day and keep ultra-processed snacks occasional.",
	TopicMotivation: "Totally normal to feel that way. Shrink the task: " +
		"commit to just 10 minutes, and give yourself permission to stop " +
		"after that. Most days you'll keep going once you've started. " +
		"Showing up at all is the win today.",
	TopicStress: "Sorry you're feeling the pressure. Try a short reset: " +
		"4 seconds in, 4 seconds hold, 6 seconds out, for a couple of " +
		"minutes. A brisk walk or an easy mobility session also does more " +
		"for a stressed mind than a punishing workout would.",
	TopicRecovery: "Recovery is where the progress happens. Aim for 7-9 " +
		"hours of sleep, keep at least one full rest day per week, and " +
		"treat persistent soreness as a signal to go lighter, not harder.",
	TopicEmotional: "That sounds hard, and it's okay to not be okay. Be " +
		"kind to yourself today. If you'd like, we can do something gentle " +
		"like a short walk or some easy stretching, or just talk through " +
		"what's on your mind.",
}

// Template returns the fixed fallback text for a topic.
func Template(topic Topic) string {
	if text, ok := templates[topic]; ok {
		return text
	}
	return templates[TopicGeneral]
}
