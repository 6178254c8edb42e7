package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"chiseled/internal/generate"
	"chiseled/internal/plan"
)

// linkRef locates one exercise link occurrence in the segment stream.
type linkRef struct {
	segIdx int
	name   string
}

// setResult installs a generation result and rebuilds the plan view. Results
// loaded from disk arrive without segments; they are scanned here.
func (m *Model) setResult(res *generate.Result) {
	if len(res.Segments) == 0 && res.Record.PlanText != "" {
		res.Segments = plan.Scan(res.Record.PlanText)
	}
	m.result = res

	m.links = nil
	for i, seg := range res.Segments {
		if seg.Kind == plan.KindExerciseLink {
			m.links = append(m.links, linkRef{segIdx: i, name: seg.Content})
		}
	}
	m.linkIdx = -1
	if len(m.links) > 0 {
		m.linkIdx = 0
	}

	if m.vp.Width == 0 {
		m.vp = viewport.New(80, 24)
	}
	m.refreshPlanView()
}

func (m *Model) refreshPlanView() {
	m.vp.SetContent(m.renderSegments())
}

// renderSegments renders the segment stream with the focused link
// highlighted. Segments marked inline continue the current display line.
func (m *Model) renderSegments() string {
	var b strings.Builder
	for i, seg := range m.result.Segments {
		if i > 0 && !seg.Inline {
			b.WriteByte('\n')
		}
		switch seg.Kind {
		case plan.KindBreak:
		case plan.KindHeader:
			b.WriteString(m.styles.PlanHeader.Render(seg.Content))
		case plan.KindSubheader:
			b.WriteString(m.styles.PlanSubheader.Render(seg.Content))
		case plan.KindBullet:
			b.WriteString(m.styles.PlanBullet.Render("• " + seg.Content))
		case plan.KindExerciseLink:
			style := m.styles.Exercise
			if m.linkIdx >= 0 && m.links[m.linkIdx].segIdx == i {
				style = m.styles.ExerciseFocus
			}
			b.WriteString(style.Render(seg.Content))
		default:
			b.WriteString(m.styles.Body.Render(seg.Content))
		}
	}
	return b.String()
}

func (m Model) updatePlan(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "tab":
		m.cycleLink(1)
		return m, nil
	case "shift+tab":
		m.cycleLink(-1)
		return m, nil
	case "enter":
		if m.linkIdx >= 0 {
			m.openPopup(m.links[m.linkIdx].name)
		}
		return m, nil
	case "v":
		if m.linkIdx >= 0 {
			return m, m.openVideoCmd(m.links[m.linkIdx].name)
		}
		return m, nil
	case "r":
		if m.result != nil {
			return m.regenerate()
		}
		return m, nil
	case "n":
		m.restart()
		return m, nil
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *Model) cycleLink(dir int) {
	if len(m.links) == 0 {
		return
	}
	m.linkIdx = (m.linkIdx + dir + len(m.links)) % len(m.links)
	m.refreshPlanView()
	m.scrollToLink()
}

// scrollToLink keeps the focused link inside the viewport.
func (m *Model) scrollToLink() {
	line := 0
	for i := 0; i < m.links[m.linkIdx].segIdx; i++ {
		if i > 0 && !m.result.Segments[i].Inline {
			line++
		}
	}
	if line < m.vp.YOffset {
		m.vp.SetYOffset(line)
	} else if bottom := m.vp.YOffset + m.vp.Height - 1; line > bottom {
		m.vp.SetYOffset(line - m.vp.Height + 1)
	}
}

func (m Model) viewPlan() string {
	var b strings.Builder
	title := "YOUR WORKOUT PLAN"
	if m.result != nil && m.result.Record.Timestamp != "" {
		title += "  ·  " + m.result.Record.Timestamp
	}
	b.WriteString(m.styles.Header.Render(title))
	b.WriteString("\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.styles.Error.Render(m.status) + "\n")
	}
	b.WriteString(m.styles.Footer.Render(
		"tab/shift+tab links · enter instructions · v video · r regenerate · n new plan · q quit"))
	return b.String()
}
