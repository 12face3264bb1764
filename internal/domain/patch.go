package domain

type PatchKind string

const (
	PatchAddExercise     PatchKind = "add_exercise"
	PatchRemoveExercise  PatchKind = "remove_exercise"
	PatchChangeDate      PatchKind = "change_date"
	PatchChangeIntensity PatchKind = "change_intensity"
	PatchChangeEquipment PatchKind = "change_equipment"
)

// PatchRequest is a structured edit command against the last created plan.
// Only the fields relevant to Kind are populated; RawText always carries
// the original user wording for downstream resolution.
type PatchRequest struct {
	Kind         PatchKind
	Day          int    // AddExercise
	ExerciseName string // AddExercise, RemoveExercise, ChangeIntensity (may be empty)
	RawText      string
}
