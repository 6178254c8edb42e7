package tui

import (
	"time"

	"chiseled/internal/generate"
)

// generatedMsg carries the finished (or failed) generation result.
type generatedMsg struct {
	res *generate.Result
	err error
}

// splashDoneMsg ends the brand splash screen.
type splashDoneMsg struct{}

// progressTickMsg drives the loading bar animation.
type progressTickMsg time.Time

// planReloadedMsg fires when the plan file changed on disk.
type planReloadedMsg struct{}

// urlOpenedMsg reports the outcome of launching the browser.
type urlOpenedMsg struct{ err error }
