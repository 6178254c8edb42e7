// Package ui provides the visual styling for the chiseled terminal app.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Brand palette. The dark slate and burnt orange come from the desktop-era
// color scheme and are kept for continuity.
var (
	Background = lipgloss.Color("#212529") // dark slate
	Foreground = lipgloss.Color("#ffffff")
	Accent     = lipgloss.Color("#eb5e28") // burnt orange
	AccentDim  = lipgloss.Color("#d44e1e") // pressed/hover orange
	Link       = lipgloss.Color("#4dabf7") // exercise link blue
	Muted      = lipgloss.Color("#868e96")
	ErrorRed   = lipgloss.Color("#e53935")
)

// Styles holds all the styled components.
type Styles struct {
	// Layout
	App    lipgloss.Style
	Header lipgloss.Style
	Footer lipgloss.Style

	// Text
	Title    lipgloss.Style
	Question lipgloss.Style
	StepTag  lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style

	// Plan rendering
	PlanHeader    lipgloss.Style
	PlanSubheader lipgloss.Style
	PlanBullet    lipgloss.Style
	Exercise      lipgloss.Style
	ExerciseFocus lipgloss.Style

	// Choices
	Choice         lipgloss.Style
	ChoiceSelected lipgloss.Style
	ChoiceCursor   lipgloss.Style

	// Status
	Error   lipgloss.Style
	Spinner lipgloss.Style

	// Popup
	PopupBorder lipgloss.Style
	PopupTitle  lipgloss.Style
}

// NewStyles creates the style set.
func NewStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Foreground(Foreground),

		Header: lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			MarginBottom(1),

		Question: lipgloss.NewStyle().
			Foreground(Foreground).
			Bold(true).
			MarginBottom(1),

		StepTag: lipgloss.NewStyle().
			Foreground(Muted),

		Body: lipgloss.NewStyle().
			Foreground(Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(Muted),

		PlanHeader: lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true),

		PlanSubheader: lipgloss.NewStyle().
			Foreground(Accent),

		PlanBullet: lipgloss.NewStyle().
			Foreground(Foreground),

		Exercise: lipgloss.NewStyle().
			Foreground(Link).
			Underline(true),

		ExerciseFocus: lipgloss.NewStyle().
			Foreground(Background).
			Background(Link).
			Bold(true),

		Choice: lipgloss.NewStyle().
			Foreground(Foreground).
			PaddingLeft(2),

		ChoiceSelected: lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			PaddingLeft(2),

		ChoiceCursor: lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(ErrorRed).
			Bold(true),

		Spinner: lipgloss.NewStyle().
			Foreground(Accent),

		PopupBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Accent).
			Padding(1, 2),

		PopupTitle: lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			MarginBottom(1),
	}
}

// Logo returns the startup banner.
func Logo(s Styles) string {
	logo := `
   ___ _  _ ___ ___ ___ _    ___ ___
  / __| || |_ _/ __| __| |  | __|   \
 | (__| __ || |\__ \ _|| |__| _|| |) |
  \___|_||_|___|___/___|____|___|___/
`
	return s.Title.Render(logo)
}

// RenderDivider returns a horizontal divider.
func (s Styles) RenderDivider(width int) string {
	return s.Muted.Render(strings.Repeat("─", width))
}
