package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"chiseled/internal/profile"
)

func (m Model) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.companionOn {
		return m.updateCompanion(keyMsg)
	}

	step := m.nav.Step(m.stepIdx)
	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(step.Options)-1 {
			m.cursor++
		}
	case " ":
		if step.Kind == profile.KindMultiSelect {
			m.toggleOption(step, step.Options[m.cursor])
		}
	case "enter", "right":
		return m.confirmStep(step)
	case "left", "backspace", "esc":
		m.retreat()
	}
	return m, nil
}

func (m Model) updateCompanion(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.companionOn = false
		m.companion.Blur()
		m.storeCompanion(m.nav.Step(m.stepIdx))
		return m.leaveStep()
	case "esc":
		m.companionOn = false
		m.companion.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.companion, cmd = m.companion.Update(msg)
	return m, cmd
}

// confirmStep records the answer under the cursor and moves on. A step whose
// companion trigger is selected detours through the free-text field first.
func (m Model) confirmStep(step profile.QuestionStep) (tea.Model, tea.Cmd) {
	if step.Kind != profile.KindMultiSelect {
		m.storeSingle(step, step.Options[m.cursor])
	} else {
		m.storeMulti(step)
	}

	if step.CompanionTrigger != "" && m.triggerSelected(step) {
		m.companionOn = true
		m.companion.SetValue(m.companionValue(step))
		m.companion.Placeholder = step.CompanionPrompt
		m.companion.Focus()
		return m, nil
	}
	return m.leaveStep()
}

func (m Model) leaveStep() (tea.Model, tea.Cmd) {
	if m.nav.IsLast(m.stepIdx) {
		return m.startGeneration()
	}
	m.stepIdx = m.nav.Advance(m.stepIdx, m.raw)
	m.syncCursor()
	return m, nil
}

func (m *Model) retreat() {
	prev := m.nav.Retreat(m.stepIdx, m.raw)
	if prev != m.stepIdx {
		m.stepIdx = prev
		m.syncCursor()
	}
}

// syncCursor points the cursor at the previously chosen option when the user
// revisits a step, or the first option otherwise.
func (m *Model) syncCursor() {
	step := m.nav.Step(m.stepIdx)
	m.cursor = 0
	if step.Kind == profile.KindMultiSelect {
		return
	}
	current := m.singleValue(step)
	for i, opt := range step.Options {
		if opt == current {
			m.cursor = i
			return
		}
	}
}

func (m *Model) toggleOption(step profile.QuestionStep, opt string) {
	sel := m.multiSel[step.Key]
	if sel == nil {
		sel = make(map[string]bool)
		m.multiSel[step.Key] = sel
	}
	sel[opt] = !sel[opt]
}

func (m *Model) storeSingle(step profile.QuestionStep, value string) {
	switch step.Key {
	case profile.StepFocus:
		m.raw.Focus = value
	case profile.StepGoal:
		m.raw.Goal = value
	case profile.StepExperience:
		m.raw.Experience = value
	case profile.StepDuration:
		m.raw.Duration = value
	case profile.StepLocation:
		m.raw.Location = value
	case profile.StepInjuries:
		m.raw.InjuryFlag = value
	case profile.StepStyle:
		m.raw.Style = value
	}
}

func (m *Model) storeMulti(step profile.QuestionStep) {
	var chosen []string
	sel := m.multiSel[step.Key]
	for _, opt := range step.Options {
		if sel[opt] {
			chosen = append(chosen, opt)
		}
	}
	switch step.Key {
	case profile.StepMuscles:
		m.raw.MuscleGroups = chosen
	case profile.StepEquipment:
		m.raw.Equipment = chosen
	}
}

func (m *Model) storeCompanion(step profile.QuestionStep) {
	switch step.Key {
	case profile.StepEquipment:
		m.raw.EquipmentOther = m.companion.Value()
	case profile.StepInjuries:
		m.raw.InjuryNote = m.companion.Value()
	}
}

func (m Model) triggerSelected(step profile.QuestionStep) bool {
	if step.Kind == profile.KindMultiSelect {
		return m.multiSel[step.Key][step.CompanionTrigger]
	}
	return m.singleValue(step) == step.CompanionTrigger
}

func (m Model) singleValue(step profile.QuestionStep) string {
	switch step.Key {
	case profile.StepFocus:
		return m.raw.Focus
	case profile.StepGoal:
		return m.raw.Goal
	case profile.StepExperience:
		return m.raw.Experience
	case profile.StepDuration:
		return m.raw.Duration
	case profile.StepLocation:
		return m.raw.Location
	case profile.StepInjuries:
		return m.raw.InjuryFlag
	case profile.StepStyle:
		return m.raw.Style
	}
	return ""
}

func (m Model) companionValue(step profile.QuestionStep) string {
	if step.Key == profile.StepInjuries {
		return m.raw.InjuryNote
	}
	return m.raw.EquipmentOther
}

func (m Model) viewWizard() string {
	step := m.nav.Step(m.stepIdx)
	nums := m.nav.Numbering(m.raw)

	var b strings.Builder
	b.WriteString(m.styles.Header.Render("CHISELED"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.StepTag.Render(fmt.Sprintf("Question %d", nums[step.Key])))
	b.WriteString("\n")
	b.WriteString(m.styles.Question.Render(step.Prompt))
	b.WriteString("\n")

	sel := m.multiSel[step.Key]
	for i, opt := range step.Options {
		cursor := "  "
		if i == m.cursor {
			cursor = m.styles.ChoiceCursor.Render("> ")
		}
		label := opt
		if step.Kind == profile.KindMultiSelect {
			mark := "[ ]"
			if sel[opt] {
				mark = "[x]"
			}
			label = mark + " " + opt
		}
		style := m.styles.Choice
		if i == m.cursor {
			style = m.styles.ChoiceSelected
		}
		b.WriteString(cursor + style.Render(label) + "\n")
	}

	if m.companionOn {
		b.WriteString("\n" + m.styles.Question.Render(step.CompanionPrompt) + "\n")
		b.WriteString(m.companion.View() + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.styles.Error.Render(m.status) + "\n")
	}

	help := "↑/↓ move · enter select · ← back · q quit"
	if step.Kind == profile.KindMultiSelect {
		help = "↑/↓ move · space toggle · enter confirm · ← back · q quit"
	}
	b.WriteString("\n" + m.styles.Footer.Render(help))
	return b.String()
}
