package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"chiseled/internal/plan"
)

// openPopup shows the instruction popup for one exercise.
func (m *Model) openPopup(name string) {
	instructions := m.result.Record.Instructions[name]
	if instructions == "" {
		instructions = plan.InstructionFallback
	}

	if m.popupVP.Width == 0 {
		m.popupVP = viewport.New(70, 20)
	}
	m.popupVP.SetContent(m.renderInstructionSegments(plan.FormatInstructions(instructions)))
	m.popupVP.SetYOffset(0)
	m.popupName = name
	m.screen = screenPopup
}

func (m *Model) renderInstructionSegments(segs []plan.Segment) string {
	var b strings.Builder
	for i, seg := range segs {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch seg.Kind {
		case plan.KindBreak:
		case plan.KindHeader:
			b.WriteString(m.styles.PlanSubheader.Render(seg.Content))
		case plan.KindBullet:
			b.WriteString(m.styles.PlanBullet.Render("• " + seg.Content))
		default:
			b.WriteString(m.styles.Body.Render(seg.Content))
		}
	}
	return b.String()
}

func (m Model) updatePopup(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q", "enter":
		m.screen = screenPlan
		return m, nil
	case "v":
		return m, m.openVideoCmd(m.popupName)
	}

	var cmd tea.Cmd
	m.popupVP, cmd = m.popupVP.Update(msg)
	return m, cmd
}

func (m Model) viewPopup() string {
	var b strings.Builder
	b.WriteString(m.styles.PopupTitle.Render(m.popupName))
	b.WriteString("\n")
	b.WriteString(m.popupVP.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.Footer.Render("↑/↓ scroll · v video · esc close"))
	return m.styles.PopupBorder.Render(b.String())
}
