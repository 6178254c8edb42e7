package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"chiseled/internal/generate"
	"chiseled/internal/profile"
)

func testModel() Model {
	m := New(App{Logger: zap.NewNop()}, nil, nil)
	m.screen = screenWizard
	return m
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestWizardSkipsMuscleStepOnFullBody(t *testing.T) {
	m := testModel()
	m = press(t, m, "enter") // "Full body" is the first option

	assert.Equal(t, profile.FocusFullBody, m.raw.Focus)
	assert.Equal(t, 2, m.stepIdx)
}

func TestWizardVisitsMuscleStepWhenTargeted(t *testing.T) {
	m := testModel()
	m = press(t, m, "down", "enter")

	assert.Equal(t, profile.FocusTargetMuscles, m.raw.Focus)
	assert.Equal(t, 1, m.stepIdx)
}

func TestWizardBackMirrorsSkip(t *testing.T) {
	m := testModel()
	m = press(t, m, "enter") // full body, lands on step 2
	m = press(t, m, "left")

	assert.Equal(t, 0, m.stepIdx)
}

func TestMultiSelectTogglesAndStores(t *testing.T) {
	m := testModel()
	m = press(t, m, "down", "enter")          // targeted focus
	m = press(t, m, "space", "down", "space") // Chest, Back
	m = press(t, m, "enter")

	assert.Equal(t, []string{"Chest", "Back"}, m.raw.MuscleGroups)
	assert.Equal(t, 2, m.stepIdx)
}

func TestInjuriesYesOpensCompanionField(t *testing.T) {
	m := testModel()
	m.stepIdx = 7 // injuries step
	m = press(t, m, "down", "enter") // "Yes"

	require.True(t, m.companionOn)
	m = press(t, m, "b", "a", "d", " ", "k", "n", "e", "e", "enter")

	assert.Equal(t, "Yes", m.raw.InjuryFlag)
	assert.Equal(t, "bad knee", m.raw.InjuryNote)
	assert.False(t, m.companionOn)
	assert.Equal(t, 8, m.stepIdx)
}

func TestSetResultCollectsLinksInOrder(t *testing.T) {
	m := testModel()
	rec := profile.Finalize(profile.RawAnswers{})
	rec.PlanText = "# Plan\n[Pushups] - 3x10\n[Squats] and [Pushups]"
	rec.Timestamp = "March 9, 2025 | 2:05pm"

	m.setResult(&generate.Result{Record: rec})

	require.Len(t, m.links, 3)
	assert.Equal(t, "Pushups", m.links[0].name)
	assert.Equal(t, "Squats", m.links[1].name)
	assert.Equal(t, 0, m.linkIdx)

	m.cycleLink(1)
	assert.Equal(t, 1, m.linkIdx)
	m.cycleLink(-1)
	m.cycleLink(-1)
	assert.Equal(t, 2, m.linkIdx)
}

func TestPopupFallsBackWhenInstructionsMissing(t *testing.T) {
	m := testModel()
	rec := profile.Finalize(profile.RawAnswers{})
	rec.PlanText = "[Lunges]"
	rec.Timestamp = "March 9, 2025 | 2:05pm"
	m.setResult(&generate.Result{Record: rec})
	m.screen = screenPlan

	m = press(t, m, "enter")
	assert.Equal(t, screenPopup, m.screen)
	assert.Equal(t, "Lunges", m.popupName)

	m = press(t, m, "esc")
	assert.Equal(t, screenPlan, m.screen)
}

func TestNewPlanKeyRestartsWizard(t *testing.T) {
	m := testModel()
	rec := profile.Finalize(profile.RawAnswers{})
	rec.PlanText = "# Plan"
	rec.Timestamp = "March 9, 2025 | 2:05pm"
	m.setResult(&generate.Result{Record: rec})
	m.screen = screenPlan

	m = press(t, m, "n")
	assert.Equal(t, screenWizard, m.screen)
	assert.Equal(t, 0, m.stepIdx)
	assert.Equal(t, profile.RawAnswers{}, m.raw)
}

func TestResumeOpensPlanScreen(t *testing.T) {
	rec := profile.Finalize(profile.RawAnswers{})
	rec.PlanText = "# Saved Plan\n[Rows]"
	rec.Timestamp = "March 9, 2025 | 2:05pm"

	m := New(App{Logger: zap.NewNop()}, &rec, nil)
	assert.Equal(t, screenPlan, m.screen)
	require.Len(t, m.links, 1)
}

func TestSplashSkipsOnKeyPress(t *testing.T) {
	m := New(App{Logger: zap.NewNop()}, nil, nil)
	require.Equal(t, screenSplash, m.screen)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	assert.Equal(t, screenWizard, m.screen)
	assert.Equal(t, 0, m.stepIdx)
}
