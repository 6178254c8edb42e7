// Package tui implements the interactive questionnaire and plan viewer.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"chiseled/cmd/chiseled/ui"
	"chiseled/internal/generate"
	"chiseled/internal/gitsync"
	"chiseled/internal/profile"
	"chiseled/internal/store"
)

// App bundles the services the TUI drives. History may be nil. A zero
// Timeout means generation runs without a deadline.
type App struct {
	Generator *generate.Generator
	Store     *store.Store
	History   *store.History
	Logger    *zap.Logger
	Timeout   time.Duration
}

type screen int

const (
	screenSplash screen = iota
	screenWizard
	screenGenerating
	screenPlan
	screenPopup
)

// splashDuration is how long the brand screen shows before the wizard.
const splashDuration = 2 * time.Second

// loadingDuration is how long the bar takes to crawl to near-complete while
// the model works. It jumps to full when the result lands.
const loadingDuration = 12 * time.Second

// Model is the bubbletea model for the whole app.
type Model struct {
	app    App
	styles ui.Styles
	nav    *profile.Navigator

	screen screen
	width  int
	height int

	// wizard
	stepIdx     int
	cursor      int
	multiSel    map[profile.StepKey]map[string]bool
	companion   textinput.Model
	companionOn bool
	raw         profile.RawAnswers

	// generating
	spin     spinner.Model
	prog     progress.Model
	genStart time.Time

	// plan
	vp       viewport.Model
	result   *generate.Result
	links    []linkRef
	linkIdx  int
	status   string
	reloadCh chan struct{}

	// popup
	popupName string
	popupVP   viewport.Model
}

// New builds the initial model. When resume is non-nil the app opens straight
// on that previously saved plan. reloadCh, if non-nil, delivers plan-file
// change notifications from the store watcher.
func New(app App, resume *profile.AnswerRecord, reloadCh chan struct{}) Model {
	styles := ui.NewStyles()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	input := textinput.New()
	input.CharLimit = 200

	m := Model{
		app:      app,
		styles:   styles,
		nav:      profile.NewNavigator(),
		spin:     sp,
		prog:     progress.New(progress.WithDefaultGradient()),
		companion: input,
		multiSel: make(map[profile.StepKey]map[string]bool),
		linkIdx:  -1,
		reloadCh: reloadCh,
	}

	if resume != nil && resume.Generated() {
		m.setResult(&generate.Result{Record: *resume, Segments: nil})
		m.screen = screenPlan
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick}
	if m.screen == screenSplash {
		cmds = append(cmds, tea.Tick(splashDuration, func(time.Time) tea.Msg {
			return splashDoneMsg{}
		}))
	}
	if m.reloadCh != nil {
		cmds = append(cmds, waitForReload(m.reloadCh))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = msg.Height - 4
		m.popupVP.Width = min(msg.Width-8, 70)
		m.popupVP.Height = msg.Height - 8
		if m.result != nil {
			m.refreshPlanView()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// Any key skips the splash.
		if m.screen == screenSplash {
			m.screen = screenWizard
			return m, nil
		}

	case splashDoneMsg:
		if m.screen == screenSplash {
			m.screen = screenWizard
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case progressTickMsg:
		if m.screen != screenGenerating {
			return m, nil
		}
		return m, progressTick()

	case generatedMsg:
		return m.onGenerated(msg)

	case planReloadedMsg:
		return m.onPlanReloaded()

	case urlOpenedMsg:
		if msg.err != nil {
			m.status = "could not open browser: " + msg.err.Error()
			m.app.Logger.Warn("browser launch failed", zap.Error(msg.err))
		}
		return m, nil
	}

	switch m.screen {
	case screenWizard:
		return m.updateWizard(msg)
	case screenGenerating:
		return m, nil
	case screenPlan:
		return m.updatePlan(msg)
	case screenPopup:
		return m.updatePopup(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.screen {
	case screenSplash:
		return ui.Logo(m.styles) + "\n" +
			m.styles.Muted.Render("  personalized workout plans, forged in the terminal")
	case screenWizard:
		return m.viewWizard()
	case screenGenerating:
		return m.viewGenerating()
	case screenPlan:
		return m.viewPlan()
	case screenPopup:
		return m.viewPopup()
	}
	return ""
}

// startGeneration finalizes the answers and kicks off the pipeline.
func (m Model) startGeneration() (tea.Model, tea.Cmd) {
	m.screen = screenGenerating
	m.genStart = time.Now()
	m.status = ""
	return m, tea.Batch(m.spin.Tick, progressTick(), m.generateCmd(profile.Finalize(m.raw)))
}

// regenerate reruns the pipeline with the answers of the current plan.
func (m Model) regenerate() (tea.Model, tea.Cmd) {
	rec := m.result.Record
	rec.PlanText = ""
	rec.Timestamp = ""
	rec.Instructions = nil
	rec.Videos = nil
	m.screen = screenGenerating
	m.genStart = time.Now()
	m.status = ""
	return m, tea.Batch(m.spin.Tick, progressTick(), m.generateCmd(rec))
}

// generateCmd runs generation and persistence off the UI goroutine.
func (m Model) generateCmd(rec profile.AnswerRecord) tea.Cmd {
	app := m.app
	return func() tea.Msg {
		ctx := context.Background()
		if app.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, app.Timeout)
			defer cancel()
		}
		res, err := app.Generator.Generate(ctx, rec)
		if err != nil {
			return generatedMsg{err: err}
		}

		if _, err := app.Store.SavePlan(res.Record); err != nil {
			app.Logger.Error("saving plan failed", zap.Error(err))
		} else {
			gitsync.Sync(ctx, app.Store.DataDir(), gitsync.DefaultMessage, app.Logger)
		}
		if app.History != nil {
			if _, err := app.History.Record(res.Record); err != nil {
				app.Logger.Error("recording history failed", zap.Error(err))
			}
		}
		return generatedMsg{res: res}
	}
}

func (m Model) onGenerated(msg generatedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.app.Logger.Error("generation failed", zap.Error(msg.err))
		m.status = "generation failed: " + msg.err.Error()
		m.screen = screenWizard
		return m, nil
	}
	m.setResult(msg.res)
	if msg.res.Fallback {
		m.status = "plan generation failed; showing your answers instead"
	}
	m.screen = screenPlan
	return m, nil
}

func (m Model) onPlanReloaded() (tea.Model, tea.Cmd) {
	rec, err := m.app.Store.LoadPlan()
	if err != nil {
		m.app.Logger.Warn("reloading plan failed", zap.Error(err))
	} else if rec != nil && rec.Generated() && m.screen == screenPlan {
		m.setResult(&generate.Result{Record: *rec})
		m.status = "plan reloaded from disk"
	}
	var cmd tea.Cmd
	if m.reloadCh != nil {
		cmd = waitForReload(m.reloadCh)
	}
	return m, cmd
}

// restart clears all answers and returns to the first question.
func (m *Model) restart() {
	m.raw = profile.RawAnswers{}
	m.multiSel = make(map[profile.StepKey]map[string]bool)
	m.stepIdx = 0
	m.cursor = 0
	m.companionOn = false
	m.result = nil
	m.links = nil
	m.linkIdx = -1
	m.status = ""
	m.screen = screenWizard
}

func waitForReload(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return planReloadedMsg{}
	}
}

func progressTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return progressTickMsg(t)
	})
}
