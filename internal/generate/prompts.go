package generate

import (
	"fmt"
	"os"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"chiseled/internal/profile"
)

// defaultPlanPrompt asks the model for a complete plan with the bracket
// markup the scanner expects.
const defaultPlanPrompt = `Create a detailed, personalized workout plan based on the following user preferences:

Workout Focus: {{.Focus}}
{{- if .MuscleGroups}}
Targeted Muscles: {{join .MuscleGroups ", "}}
{{- end}}
Goal: {{.Goal}}
Experience Level: {{.Experience}}
Equipment: {{join .Equipment ", "}}
Duration: {{.Duration}}
Location: {{.Location}}
{{- if .Injuries}}
Injuries/Restrictions: {{.Injuries}}
{{- end}}
Workout Style: {{.Style}}

Please provide a comprehensive workout plan that includes:
1. A warm-up routine
2. Main workout exercises with sets, reps, and rest periods
3. A cool-down routine
4. Any specific notes or modifications based on the user's preferences and restrictions

Important Guidelines:
1. Only suggest exercises that can be done with the available equipment
2. Ensure exercises are appropriate for the user's experience level
3. Account for any injuries or restrictions in the exercise selection
4. Match the workout duration to the user's preference
5. Consider the workout location in exercise selection

Formatting Guidelines:
1. Use markup to format the workouts
2. Make the title of the workout an H1 (use #)
3. Make the different workout block headers an H2 (use ##)
4. For each exercise:
   - Put the exercise name in square brackets [Exercise Name]
   - Include sets, reps, rest time, and important notes after the exercise name
   - Use bullet points (-) for sets, reps, and notes
5. Use clear spacing between sections and exercises

Format the plan in a clear, easy-to-follow structure with each exercise name in [brackets].`

// defaultInstructionPrompt asks for form instructions for one exercise.
const defaultInstructionPrompt = `Provide detailed instructions for the exercise: {{.Name}}

Please include:
1. Starting position
2. Movement execution
3. Breathing pattern
4. Common mistakes to avoid
5. Form cues
6. Safety tips

Keep the instructions clear and concise, focusing on proper form and safety.`

// PromptSet holds the two prompt templates used during generation. Templates
// may be overridden per user from a prompts.yaml in the data directory.
type PromptSet struct {
	plan        *template.Template
	instruction *template.Template
}

type promptFile struct {
	Plan        string `yaml:"plan"`
	Instruction string `yaml:"instruction"`
}

var templateFuncs = template.FuncMap{"join": strings.Join}

// DefaultPrompts returns the built-in prompt set.
func DefaultPrompts() *PromptSet {
	set, err := buildPrompts(defaultPlanPrompt, defaultInstructionPrompt)
	if err != nil {
		panic(fmt.Sprintf("built-in prompts must parse: %v", err))
	}
	return set
}

// LoadPrompts reads overrides from path. A missing file yields the built-in
// set; a present but unparseable file is an error. Either template may be
// omitted to keep its default.
func LoadPrompts(path string) (*PromptSet, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultPrompts(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read prompts file: %w", err)
	}

	var pf promptFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parse prompts file: %w", err)
	}

	planText := defaultPlanPrompt
	if strings.TrimSpace(pf.Plan) != "" {
		planText = pf.Plan
	}
	instructionText := defaultInstructionPrompt
	if strings.TrimSpace(pf.Instruction) != "" {
		instructionText = pf.Instruction
	}
	return buildPrompts(planText, instructionText)
}

func buildPrompts(planText, instructionText string) (*PromptSet, error) {
	plan, err := template.New("plan").Funcs(templateFuncs).Parse(planText)
	if err != nil {
		return nil, fmt.Errorf("parse plan template: %w", err)
	}
	instruction, err := template.New("instruction").Funcs(templateFuncs).Parse(instructionText)
	if err != nil {
		return nil, fmt.Errorf("parse instruction template: %w", err)
	}
	return &PromptSet{plan: plan, instruction: instruction}, nil
}

// PlanPrompt renders the plan prompt for rec.
func (p *PromptSet) PlanPrompt(rec profile.AnswerRecord) (string, error) {
	var b strings.Builder
	if err := p.plan.Execute(&b, rec); err != nil {
		return "", fmt.Errorf("render plan prompt: %w", err)
	}
	return b.String(), nil
}

// InstructionPrompt renders the instruction prompt for one exercise name.
func (p *PromptSet) InstructionPrompt(name string) (string, error) {
	var b strings.Builder
	if err := p.instruction.Execute(&b, struct{ Name string }{name}); err != nil {
		return "", fmt.Errorf("render instruction prompt: %w", err)
	}
	return b.String(), nil
}
