package tui

import (
	"strings"
	"time"
)

// loadingPercent crawls toward 95% over loadingDuration; the final 5% waits
// for the real result so the bar never lies about being done.
func (m Model) loadingPercent() float64 {
	elapsed := time.Since(m.genStart)
	pct := 0.95 * float64(elapsed) / float64(loadingDuration)
	if pct > 0.95 {
		pct = 0.95
	}
	return pct
}

func (m Model) viewGenerating() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("CHISELED"))
	b.WriteString("\n\n")
	b.WriteString(m.spin.View())
	b.WriteString(m.styles.Body.Render(" Generating your personalized workout plan..."))
	b.WriteString("\n\n")
	b.WriteString(m.prog.ViewAs(m.loadingPercent()))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render("This can take a little while; exercises get individual instructions."))
	return b.String()
}
