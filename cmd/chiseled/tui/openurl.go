package tui

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
)

// openVideoCmd opens the stored video link for name, or a YouTube results
// search when no link was resolved at generation time.
func (m Model) openVideoCmd(name string) tea.Cmd {
	target := m.result.Record.Videos[name]
	if target == "" {
		q := url.Values{"search_query": {name + " exercise tutorial proper form"}}
		target = "https://www.youtube.com/results?" + q.Encode()
	}
	return func() tea.Msg {
		return urlOpenedMsg{err: openURL(target)}
	}
}

func openURL(target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch browser: %w", err)
	}
	return nil
}
