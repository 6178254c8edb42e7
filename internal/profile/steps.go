// Package profile holds the questionnaire definition, the wizard navigator,
// and the answer record that drives plan generation.
package profile

// StepKey identifies a question step and doubles as its answer key.
type StepKey string

const (
	StepFocus      StepKey = "focus"
	StepMuscles    StepKey = "muscles"
	StepGoal       StepKey = "goal"
	StepExperience StepKey = "experience"
	StepEquipment  StepKey = "equipment"
	StepDuration   StepKey = "duration"
	StepLocation   StepKey = "location"
	StepInjuries   StepKey = "injuries"
	StepStyle      StepKey = "style"
)

// StepKind selects the input widget a step is rendered with.
type StepKind int

const (
	KindDropdown StepKind = iota
	KindMultiSelect
	KindSingleSelect
)

// Focus answers. The muscle-group step is only active on the targeted path.
const (
	FocusFullBody      = "Full body"
	FocusTargetMuscles = "Target muscle group"
)

// QuestionStep is a data-driven step descriptor. One generic rendering
// routine consumes these; there are no per-question widget types.
type QuestionStep struct {
	Key     StepKey
	Prompt  string
	Kind    StepKind
	Options []string

	// CompanionTrigger names the option that reveals a free-text field
	// (equipment "Other", injuries "Yes"). Empty means no companion.
	CompanionTrigger string
	CompanionPrompt  string
}

// Steps returns the fixed question sequence. Index 1 (muscle groups) is the
// single conditional step, skipped when the focus answer is FocusFullBody.
func Steps() []QuestionStep {
	return []QuestionStep{
		{
			Key:     StepFocus,
			Prompt:  "What kind of workout would you like to do?",
			Kind:    KindDropdown,
			Options: []string{FocusFullBody, FocusTargetMuscles},
		},
		{
			Key:     StepMuscles,
			Prompt:  "Which muscle groups?",
			Kind:    KindMultiSelect,
			Options: []string{"Chest", "Back", "Legs", "Arms", "Shoulders", "Core", "Glutes"},
		},
		{
			Key:     StepGoal,
			Prompt:  "What is your primary goal?",
			Kind:    KindDropdown,
			Options: []string{"Build muscle", "Lose fat", "Increase endurance", "Improve flexibility/mobility", "General fitness"},
		},
		{
			Key:     StepExperience,
			Prompt:  "What is your fitness level?",
			Kind:    KindSingleSelect,
			Options: []string{"Beginner", "Intermediate", "Advanced"},
		},
		{
			Key:              StepEquipment,
			Prompt:           "Available equipment:",
			Kind:             KindMultiSelect,
			Options:          []string{"Bodyweight only", "Dumbbells", "Barbells", "Resistance bands", "Kettlebells", "Machines", "Other"},
			CompanionTrigger: "Other",
			CompanionPrompt:  "Please describe your other equipment:",
		},
		{
			Key:     StepDuration,
			Prompt:  "Workout duration?",
			Kind:    KindDropdown,
			Options: []string{"15 minutes", "30 minutes", "45 minutes", "60 minutes"},
		},
		{
			Key:     StepLocation,
			Prompt:  "Where will you work out?",
			Kind:    KindDropdown,
			Options: []string{"Gym", "Home", "Outdoors"},
		},
		{
			Key:              StepInjuries,
			Prompt:           "Any injuries/restrictions?",
			Kind:             KindSingleSelect,
			Options:          []string{"No", "Yes"},
			CompanionTrigger: "Yes",
			CompanionPrompt:  "Please describe your injuries/restrictions:",
		},
		{
			Key:     StepStyle,
			Prompt:  "Preferred workout style?",
			Kind:    KindDropdown,
			Options: []string{"Traditional sets", "Supersets", "Circuit", "HIIT", "Yoga/Pilates", "Stretching/Mobility"},
		},
	}
}
