package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"chiseled/cmd/chiseled/tui"
	"chiseled/internal/config"
	"chiseled/internal/logging"
	"chiseled/internal/store"
)

var (
	// Global flags
	dataDir string
	apiKey  string
	model   string
	verbose bool
	timeout time.Duration

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "chiseled",
	Short: "chiseled - AI workout plan generator",
	Long: `chiseled builds personalized workout plans.

A short questionnaire collects your focus, goal, experience, equipment,
duration, location, injuries, and preferred style; Gemini turns the answers
into a plan with per-exercise instructions and video links.

Run without arguments to start the interactive questionnaire.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if dataDir == "" {
			var err error
			dataDir, err = config.DefaultDataDir()
			if err != nil {
				return err
			}
		}

		var err error
		cfg, err = config.Load(dataDir)
		if err != nil {
			return err
		}
		if apiKey != "" {
			cfg.GeminiAPIKey = apiKey
		}
		if model != "" {
			cfg.Model = model
		}
		if verbose {
			cfg.Debug = true
		}

		logger, err = logging.New(cfg.DataDir, cfg.Debug)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

// runInteractive wires the services and hands the terminal to the TUI.
func runInteractive() error {
	app, cleanup, err := buildApp()
	if err != nil {
		return err
	}
	defer cleanup()

	resume, err := app.Store.LoadPlan()
	if err != nil {
		logger.Warn("could not load saved plan", zap.Error(err))
	}

	reloadCh := make(chan struct{}, 1)
	watcher, err := store.NewPlanWatcher(app.Store, func() {
		select {
		case reloadCh <- struct{}{}:
		default:
		}
	}, logger)
	if err != nil {
		logger.Warn("plan watcher unavailable", zap.Error(err))
		reloadCh = nil
	} else {
		if err := watcher.Start(cmdContext()); err != nil {
			logger.Warn("plan watcher failed to start", zap.Error(err))
		}
		defer watcher.Stop()
	}

	m := tui.New(*app, resume, reloadCh)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func main() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default: per-user config dir)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&model, "model", "", "Gemini model to use")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "deadline for a full generation run (0 = none)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(historyCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
