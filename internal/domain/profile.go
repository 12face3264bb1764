package domain

// Profile holds everything the coach knows about the user. Created with
// defaults at session start and overwritten field-by-field by onboarding
// answers or inline profile updates; never deleted.
type Profile struct {
	ID           string
	Name         string
	Age          int
	WeightKg     float64
	HeightCm     int
	Goals        []string
	Equipment    []string
	FitnessLevel FitnessLevel
}

const DefaultProfileID = "default"

// NewDefaultProfile returns the profile used before onboarding has run.
func NewDefaultProfile() *Profile {
	return &Profile{
		ID:           DefaultProfileID,
		Name:         "User",
		Age:          25,
		WeightKg:     70,
		HeightCm:     170,
		FitnessLevel: LevelIntermediate,
	}
}

// HasGoal reports whether the profile already lists the given goal.
func (p *Profile) HasGoal(goal string) bool {
	for _, g := range p.Goals {
		if g == goal {
			return true
		}
	}
	return false
}

// AddGoal appends a goal unless it is already present.
func (p *Profile) AddGoal(goal string) {
	if goal == "" || p.HasGoal(goal) {
		return
	}
	p.Goals = append(p.Goals, goal)
}

// HasEquipment reports whether the profile lists the given equipment item.
func (p *Profile) HasEquipment(item string) bool {
	for _, e := range p.Equipment {
		if e == item {
			return true
		}
	}
	return false
}

// AddEquipment appends an equipment item unless it is already present.
func (p *Profile) AddEquipment(item string) {
	if item == "" || p.HasEquipment(item) {
		return
	}
	p.Equipment = append(p.Equipment, item)
}
