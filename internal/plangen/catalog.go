package plangen

import "github.com/alexanderramin/fitbuddy/internal/domain"

// Equipment labels used by catalog entries.
const (
	equipNone      = "None"
	equipDumbbells = "Dumbbells"
	equipPullUpBar = "Pull-up Bar"
	equipYogaMat   = "Yoga Mat"
)

// ex builds one catalog exercise. A durationSec of 0 means rep-based;
// reps of 0 means duration-based.
func ex(name string, day, sets, reps, durationSec, restSec int, instructions, muscle, equipment string) domain.Exercise {
	e := domain.Exercise{
		Name:         name,
		Day:          day,
		Sets:         sets,
		Reps:         reps,
		RestSec:      restSec,
		Instructions: instructions,
		MuscleGroup:  muscle,
		Equipment:    equipment,
	}
	if durationSec > 0 {
		d := durationSec
		e.DurationSec = &d
	}
	return e
}

func fullBodyDumbbellTemplate() *domain.Plan {
	return &domain.Plan{
		Title:       "Full Body Strength",
		Description: "Three-day full body program mixing dumbbell and bodyweight work.",
		Exercises: []domain.Exercise{
			ex("Push-ups", 1, 3, 12, 0, 60, "Standard push-ups, chest to floor", "Chest", equipNone),
			ex("Dumbbell Rows", 1, 3, 10, 0, 60, "Single-arm rows, flat back", "Back", equipDumbbells),
			ex("Shoulder Press", 1, 3, 8, 0, 90, "Press dumbbells overhead, core braced", "Shoulders", equipDumbbells),
			ex("Goblet Squats", 2, 3, 15, 0, 60, "Hold one dumbbell at chest, squat deep", "Legs", equipDumbbells),
			ex("Lunges", 2, 3, 10, 0, 60, "Alternating lunges, knee over ankle", "Legs", equipNone),
			ex("Glute Bridges", 2, 3, 12, 0, 45, "Squeeze glutes at the top", "Glutes", equipNone),
			ex("Burpees", 3, 3, 8, 0, 90, "Squat, push-up, jump sequence", "Full Body", equipNone),
			ex("Plank", 3, 3, 0, 30, 45, "Hold plank position, hips level", "Core", equipNone),
			ex("Mountain Climbers", 3, 3, 20, 0, 60, "Drive knees fast, hands under shoulders", "Full Body", equipNone),
		},
		DurationMin:        40,
		Difficulty:         "Intermediate",
		Equipment:          []string{equipDumbbells},
		TargetMuscleGroups: []string{"Full Body", "Upper Body", "Lower Body", "Core"},
	}
}

func fullBodyBodyweightTemplate() *domain.Plan {
	return &domain.Plan{
		Title:       "Full Body Bodyweight",
		Description: "Three-day full body program with no equipment required.",
		Exercises: []domain.Exercise{
			ex("Push-ups", 1, 3, 12, 0, 60, "Standard push-ups, chest to floor", "Chest", equipNone),
			ex("Pike Push-ups", 1, 3, 8, 0, 60, "Hips high, lower head toward floor", "Shoulders", equipNone),
			ex("Tricep Dips", 1, 3, 10, 0, 60, "Dips off a chair or bench edge", "Arms", equipNone),
			ex("Squats", 2, 3, 15, 0, 60, "Bodyweight squats, full depth", "Legs", equipNone),
			ex("Lunges", 2, 3, 10, 0, 60, "Alternating lunges, knee over ankle", "Legs", equipNone),
			ex("Glute Bridges", 2, 3, 12, 0, 45, "Squeeze glutes at the top", "Glutes", equipNone),
			ex("Burpees", 3, 3, 8, 0, 90, "Squat, push-up, jump sequence", "Full Body", equipNone),
			ex("Plank", 3, 3, 0, 30, 45, "Hold plank position, hips level", "Core", equipNone),
			ex("Jumping Jacks", 3, 3, 20, 0, 45, "Jump while raising arms overhead", "Full Body", equipNone),
		},
		DurationMin:        35,
		Difficulty:         "Beginner",
		Equipment:          []string{equipNone},
		TargetMuscleGroups: []string{"Full Body", "Upper Body", "Lower Body", "Core"},
	}
}

func legsDumbbellTemplate() *domain.Plan {
	return &domain.Plan{
		Title:       "Legs & Glutes",
		Description: "Lower body session built around loaded squat and hinge patterns.",
		Exercises: []domain.Exercise{
			ex("Goblet Squats", 1, 4, 12, 0, 60, "Hold one dumbbell at chest, squat deep", "Legs", equipDumbbells),
			ex("Dumbbell Lunges", 1, 3, 10, 0, 60, "Alternating lunges holding dumbbells at sides", "Legs", equipDumbbells),
			ex("Romanian Deadlifts", 1, 3, 12, 0, 90, "Hinge at the hips, dumbbells close to legs", "Hamstrings", equipDumbbells),
			ex("Calf Raises", 1, 3, 15, 0, 45, "Rise onto toes, pause at the top", "Calves", equipDumbbells),
			ex("Glute Bridges", 1, 3, 12, 0, 45, "Squeeze glutes at the top", "Glutes", equipNone),
		},
		DurationMin:        35,
		Difficulty:         "Intermediate",
		Equipment:          []string{equipDumbbells},
		TargetMuscleGroups: []string{"Legs", "Glutes"},
	}
}

func legsBodyweightTemplate() *domain.Plan {
	return &domain.Plan{
		Title:       "Legs & Glutes",
		Description: "Lower body session using bodyweight only.",
		Exercises: []domain.Exercise{
			ex("Squats", 1, 4, 15, 0, 60, "Bodyweight squats, full depth", "Legs", equipNone),
			ex("Lunges", 1, 3, 12, 0, 60, "Alternating lunges, knee over ankle", "Legs", equipNone),
			ex("Single-Leg Glute Bridges", 1, 3, 10, 0, 45, "One leg extended, drive through the heel", "Glutes", equipNone),
			ex("Wall Sit", 1, 3, 0, 45, 60, "Back flat against the wall, thighs parallel", "Legs", equipNone),
			ex("Calf Raises", 1, 3, 20, 0, 30, "Rise onto toes, pause at the top", "Calves", equipNone),
		},
		DurationMin:        30,
		Difficulty:         "Beginner",
		Equipment:          []string{equipNone},
		TargetMuscleGroups: []string{"Legs", "Glutes"},
	}
}

func armsDumbbellTemplate() *domain.Plan {
	return &domain.Plan{
		Title:       "Arms & Shoulders",
		Description: "Upper body pressing and curling session with dumbbells.",
		Exercises: []domain.Exercise{
			ex("Shoulder Press", 1, 3, 10, 0, 60, "Press dumbbells overhead, core braced", "Shoulders", equipDumbbells),
			ex("Bicep Curls", 1, 3, 12, 0, 45, "Curl with elbows pinned to sides", "Biceps", equipDumbbells),
			ex("Tricep Extensions", 1, 3, 12, 0, 45, "One dumbbell overhead, lower behind head", "Triceps", equipDumbbells),
			ex("Lateral Raises", 1, 3, 12, 0, 45, "Raise to shoulder height, slight elbow bend", "Shoulders", equipDumbbells),
			ex("Hammer Curls", 1, 3, 10, 0, 45, "Neutral grip curls", "Biceps", equipDumbbells),
		},
		DurationMin:        30,
		Difficulty:         "Intermediate",
		Equipment:          []string{equipDumbbells},
		TargetMuscleGroups: []string{"Arms", "Shoulders"},
	}
}

func armsPullUpBarTemplate() *domain.Plan {
	return &domain.Plan{
		Title:       "Arms & Shoulders",
		Description: "Upper body pulling session built around the pull-up bar.",
		Exercises: []domain.Exercise{
			ex("Chin-ups", 1, 4, 6, 0, 90, "Underhand grip, chin over the bar", "Biceps", equipPullUpBar),
			ex("Hanging Knee Raises", 1, 3, 10, 0, 60, "Hang from the bar, raise knees to chest", "Core", equipPullUpBar),
			ex("Pike Push-ups", 1, 3, 8, 0, 60, "Hips high, lower head toward floor", "Shoulders", equipNone),
			ex("Tricep Dips", 1, 3, 10, 0, 60, "Dips off a chair or bench edge", "Triceps", equipNone),
		},
		DurationMin:        30,
		Difficulty:         "Intermediate",
		Equipment:          []string{equipPullUpBar},
		TargetMuscleGroups: []string{"Arms", "Shoulders"},
	}
}

func armsBodyweightTemplate() *domain.Plan {
	return &domain.Plan{
		Title:       "Arms & Shoulders",
		Description: "Upper body session using bodyweight only.",
		Exercises: []domain.Exercise{
			ex("Pike Push-ups", 1, 3, 8, 0, 60, "Hips high, lower head toward floor", "Shoulders", equipNone),
			ex("Tricep Dips", 1, 3, 12, 0, 60, "Dips off a chair or bench edge", "Triceps", equipNone),
			ex("Diamond Push-ups", 1, 3, 8, 0, 60, "Hands form a diamond under the chest", "Triceps", equipNone),
			ex("Arm Circles", 1, 3, 0, 45, 30, "Small controlled circles, both directions", "Shoulders", equipNone),
		},
		DurationMin:        25,
		Difficulty:         "Beginner",
		Equipment:          []string{equipNone},
		TargetMuscleGroups: []string{"Arms", "Shoulders"},
	}
}

func chestDumbbellTemplate() *domain.Plan {
	return &domain.Plan{
		Title:       "Chest & Triceps",
		Description: "Pressing-focused upper body session with dumbbells.",
		Exercises: []domain.Exercise{
			ex("Dumbbell Floor Press", 1, 4, 10, 0, 90, "Press from the floor, elbows at 45 degrees", "Chest", equipDumbbells),
			ex("Dumbbell Flyes", 1, 3, 12, 0, 60, "Wide arc, slight elbow bend", "Chest", equipDumbbells),
			ex("Push-ups", 1, 3, 12, 0, 60, "Standard push-ups, chest to floor", "Chest", equipNone),
			ex("Tricep Extensions", 1, 3, 12, 0, 45, "One dumbbell overhead, lower behind head", "Triceps", equipDumbbells),
		},
		DurationMin:        30,
		Difficulty:         "Intermediate",
		Equipment:          []string{equipDumbbells},
		TargetMuscleGroups: []string{"Chest", "Triceps"},
	}
}

func chestBodyweightTemplate() *domain.Plan {
	return &domain.Plan{
		Title:       "Chest & Triceps",
		Description: "Push-up variations for chest and triceps, no equipment.",
		Exercises: []domain.Exercise{
			ex("Push-ups", 1, 4, 12, 0, 60, "Standard push-ups, chest to floor", "Chest", equipNone),
			ex("Wide Push-ups", 1, 3, 10, 0, 60, "Hands wider than shoulders", "Chest", equipNone),
			ex("Diamond Push-ups", 1, 3, 8, 0, 60, "Hands form a diamond under the chest", "Triceps", equipNone),
			ex("Tricep Dips", 1, 3, 10, 0, 60, "Dips off a chair or bench edge", "Triceps", equipNone),
		},
		DurationMin:        25,
		Difficulty:         "Beginner",
		Equipment:          []string{equipNone},
		TargetMuscleGroups: []string{"Chest", "Triceps"},
	}
}

func backDumbbellTemplate() *domain.Plan {
	return &domain.Plan{
		Title:       "Back & Biceps",
		Description: "Rowing-focused pulling session with dumbbells.",
		Exercises: []domain.Exercise{
			ex("Dumbbell Rows", 1, 4, 10, 0, 90, "Single-arm rows, flat back", "Back", equipDumbbells),
			ex("Reverse Flyes", 1, 3, 12, 0, 60, "Hinge forward, raise dumbbells out wide", "Back", equipDumbbells),
			ex("Bicep Curls", 1, 3, 12, 0, 45, "Curl with elbows pinned to sides", "Biceps", equipDumbbells),
			ex("Supermans", 1, 3, 12, 0, 45, "Lift arms and legs off the floor, hold briefly", "Lower Back", equipNone),
		},
		DurationMin:        30,
		Difficulty:         "Intermediate",
		Equipment:          []string{equipDumbbells},
		TargetMuscleGroups: []string{"Back", "Biceps"},
	}
}

func backPullUpBarTemplate() *domain.Plan {
	return &domain.Plan{
		Title:       "Back & Biceps",
		Description: "Pull-up progression session on the bar.",
		Exercises: []domain.Exercise{
			ex("Pull-ups", 1, 4, 6, 0, 90, "Overhand grip, chin over the bar", "Back", equipPullUpBar),
			ex("Chin-ups", 1, 3, 6, 0, 90, "Underhand grip, chin over the bar", "Biceps", equipPullUpBar),
			ex("Dead Hangs", 1, 3, 0, 30, 60, "Hang with straight arms, shoulders packed", "Back", equipPullUpBar),
			ex("Supermans", 1, 3, 12, 0, 45, "Lift arms and legs off the floor, hold briefly", "Lower Back", equipNone),
		},
		DurationMin:        30,
		Difficulty:         "Advanced",
		Equipment:          []string{equipPullUpBar},
		TargetMuscleGroups: []string{"Back", "Biceps"},
	}
}

func backBodyweightTemplate() *domain.Plan {
	return &domain.Plan{
		Title:       "Back & Biceps",
		Description: "Floor-based back session, no equipment.",
		Exercises: []domain.Exercise{
			ex("Supermans", 1, 4, 12, 0, 45, "Lift arms and legs off the floor, hold briefly", "Lower Back", equipNone),
			ex("Reverse Snow Angels", 1, 3, 10, 0, 45, "Face down, sweep arms overhead and back", "Back", equipNone),
			ex("Doorway Rows", 1, 3, 10, 0, 60, "Lean back holding a door frame, row upright", "Back", equipNone),
			ex("Plank", 1, 3, 0, 30, 45, "Hold plank position, hips level", "Core", equipNone),
		},
		DurationMin:        25,
		Difficulty:         "Beginner",
		Equipment:          []string{equipNone},
		TargetMuscleGroups: []string{"Back", "Biceps"},
	}
}

func coreDumbbellTemplate() *domain.Plan {
	return &domain.Plan{
		Title:       "Core Strength",
		Description: "Weighted core circuit with dumbbells.",
		Exercises: []domain.Exercise{
			ex("Russian Twists", 1, 3, 20, 0, 45, "Hold one dumbbell, rotate side to side", "Core", equipDumbbells),
			ex("Weighted Sit-ups", 1, 3, 12, 0, 60, "Hold a dumbbell at the chest", "Core", equipDumbbells),
			ex("Plank", 1, 3, 0, 45, 45, "Hold plank position, hips level", "Core", equipNone),
			ex("Side Plank", 1, 3, 0, 30, 45, "Stacked feet, hips high, both sides", "Obliques", equipNone),
		},
		DurationMin:        25,
		Difficulty:         "Intermediate",
		Equipment:          []string{equipDumbbells},
		TargetMuscleGroups: []string{"Core", "Obliques"},
	}
}

func coreBodyweightTemplate() *domain.Plan {
	return &domain.Plan{
		Title:       "Core Strength",
		Description: "Bodyweight core circuit.",
		Exercises: []domain.Exercise{
			ex("Plank", 1, 3, 0, 45, 45, "Hold plank position, hips level", "Core", equipNone),
			ex("Bicycle Crunches", 1, 3, 20, 0, 45, "Opposite elbow to knee, slow and controlled", "Core", equipNone),
			ex("Leg Raises", 1, 3, 12, 0, 60, "Lower legs slowly without arching the back", "Core", equipNone),
			ex("Side Plank", 1, 3, 0, 30, 45, "Stacked feet, hips high, both sides", "Obliques", equipNone),
			ex("Mountain Climbers", 1, 3, 20, 0, 45, "Drive knees fast, hands under shoulders", "Core", equipNone),
		},
		DurationMin:        25,
		Difficulty:         "Beginner",
		Equipment:          []string{equipNone},
		TargetMuscleGroups: []string{"Core", "Obliques"},
	}
}

func cardioDumbbellTemplate() *domain.Plan {
	return &domain.Plan{
		Title:       "Cardio Blast",
		Description: "Conditioning circuit with light dumbbells.",
		Exercises: []domain.Exercise{
			ex("Jumping Jacks", 1, 3, 0, 60, 30, "Jump while raising arms overhead", "Full Body", equipNone),
			ex("Dumbbell Thrusters", 1, 3, 12, 0, 60, "Squat and press the dumbbells overhead", "Full Body", equipDumbbells),
			ex("Burpees", 1, 3, 0, 45, 60, "Squat, push-up, jump sequence", "Full Body", equipNone),
			ex("Dumbbell Swings", 1, 3, 15, 0, 60, "Hinge and swing one dumbbell to chest height", "Full Body", equipDumbbells),
			ex("High Knees", 1, 3, 0, 45, 30, "Run in place, knees to hip height", "Cardiovascular", equipNone),
		},
		DurationMin:        30,
		Difficulty:         "Intermediate",
		Equipment:          []string{equipDumbbells},
		TargetMuscleGroups: []string{"Cardiovascular", "Full Body"},
	}
}

func cardioBodyweightTemplate() *domain.Plan {
	return &domain.Plan{
		Title:       "Cardio Blast",
		Description: "Equipment-free conditioning circuit.",
		Exercises: []domain.Exercise{
			ex("Jumping Jacks", 1, 3, 0, 60, 30, "Jump while raising arms overhead", "Full Body", equipNone),
			ex("High Knees", 1, 3, 0, 45, 30, "Run in place, knees to hip height", "Cardiovascular", equipNone),
			ex("Burpees", 1, 3, 0, 45, 60, "Squat, push-up, jump sequence", "Full Body", equipNone),
			ex("Mountain Climbers", 1, 3, 0, 45, 45, "Drive knees fast, hands under shoulders", "Core", equipNone),
			ex("Squat Jumps", 1, 3, 12, 0, 60, "Explode up from the squat, land soft", "Legs", equipNone),
		},
		DurationMin:        25,
		Difficulty:         "Intermediate",
		Equipment:          []string{equipNone},
		TargetMuscleGroups: []string{"Cardiovascular", "Full Body"},
	}
}

func hiitDumbbellTemplate() *domain.Plan {
	return &domain.Plan{
		Title:       "HIIT Circuit",
		Description: "30 seconds on, 15 seconds off, with dumbbells.",
		Exercises: []domain.Exercise{
			ex("Dumbbell Thrusters", 1, 8, 0, 30, 15, "Squat and press the dumbbells overhead", "Full Body", equipDumbbells),
			ex("Renegade Rows", 1, 8, 0, 30, 15, "Row each dumbbell from the plank position", "Back", equipDumbbells),
			ex("Squat Jumps", 1, 8, 0, 30, 15, "Explode up from the squat, land soft", "Legs", equipNone),
			ex("Burpees", 1, 8, 0, 30, 15, "Squat, push-up, jump sequence", "Full Body", equipNone),
		},
		DurationMin:        25,
		Difficulty:         "Advanced",
		Equipment:          []string{equipDumbbells},
		TargetMuscleGroups: []string{"Full Body", "Cardiovascular"},
	}
}

func hiitBodyweightTemplate() *domain.Plan {
	return &domain.Plan{
		Title:       "HIIT Circuit",
		Description: "30 seconds on, 15 seconds off, bodyweight only.",
		Exercises: []domain.Exercise{
			ex("Burpees", 1, 8, 0, 30, 15, "Squat, push-up, jump sequence", "Full Body", equipNone),
			ex("Squat Jumps", 1, 8, 0, 30, 15, "Explode up from the squat, land soft", "Legs", equipNone),
			ex("High Knees", 1, 8, 0, 30, 15, "Run in place, knees to hip height", "Cardiovascular", equipNone),
			ex("Push-ups", 1, 8, 0, 30, 15, "As many clean reps as fit the interval", "Chest", equipNone),
		},
		DurationMin:        20,
		Difficulty:         "Advanced",
		Equipment:          []string{equipNone},
		TargetMuscleGroups: []string{"Full Body", "Cardiovascular"},
	}
}

func yogaTemplate() *domain.Plan {
	return &domain.Plan{
		Title:       "Yoga & Flexibility",
		Description: "Flowing mobility session to stretch and unwind.",
		Exercises: []domain.Exercise{
			ex("Sun Salutation", 1, 3, 0, 120, 30, "Complete sun salutation sequence", "Full Body", equipYogaMat),
			ex("Downward Dog", 1, 3, 0, 45, 30, "Press heels down, lengthen the spine", "Hamstrings", equipYogaMat),
			ex("Warrior II", 1, 2, 0, 45, 30, "Front knee bent, arms long, both sides", "Legs", equipYogaMat),
			ex("Pigeon Pose", 1, 2, 0, 60, 30, "Hip opener, both sides", "Hips", equipYogaMat),
			ex("Child's Pose", 1, 1, 0, 90, 0, "Rest and breathe deeply", "Full Body", equipYogaMat),
		},
		DurationMin:        30,
		Difficulty:         "Beginner",
		Equipment:          []string{equipYogaMat},
		TargetMuscleGroups: []string{"Flexibility", "Balance", "Core"},
	}
}
