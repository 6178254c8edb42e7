package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"chiseled/internal/plan"
	"chiseled/internal/profile"
)

var genFlags struct {
	focus      string
	muscles    []string
	goal       string
	experience string
	equipment  []string
	duration   string
	location   string
	injuries   string
	style      string
}

// generateCmd runs the pipeline without the questionnaire, for scripted use.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a plan non-interactively from flags",
	Long: `Generates a workout plan from flag-supplied answers and prints it.
Unset flags fall back to the questionnaire defaults. The plan is saved the
same way the interactive flow saves it.

Example:
  chiseled generate --focus "Target muscle group" --muscles Chest,Back --goal "Build muscle"`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&genFlags.focus, "focus", "", `workout focus ("Full body" or "Target muscle group")`)
	f.StringSliceVar(&genFlags.muscles, "muscles", nil, "targeted muscle groups")
	f.StringVar(&genFlags.goal, "goal", "", "primary goal")
	f.StringVar(&genFlags.experience, "experience", "", "fitness level")
	f.StringSliceVar(&genFlags.equipment, "equipment", nil, "available equipment")
	f.StringVar(&genFlags.duration, "duration", "", "workout duration")
	f.StringVar(&genFlags.location, "location", "", "workout location")
	f.StringVar(&genFlags.injuries, "injuries", "", "injuries or restrictions")
	f.StringVar(&genFlags.style, "style", "", "preferred workout style")
}

// rawFromFlags maps the generate flags onto questionnaire answers. A
// non-empty --injuries value implies the "Yes" branch of the injuries step.
func rawFromFlags() profile.RawAnswers {
	raw := profile.RawAnswers{
		Focus:        genFlags.focus,
		MuscleGroups: genFlags.muscles,
		Goal:         genFlags.goal,
		Experience:   genFlags.experience,
		Equipment:    genFlags.equipment,
		Duration:     genFlags.duration,
		Location:     genFlags.location,
		Style:        genFlags.style,
	}
	if note := strings.TrimSpace(genFlags.injuries); note != "" {
		raw.InjuryFlag = "Yes"
		raw.InjuryNote = note
	}
	return raw
}

func runGenerate(cmd *cobra.Command, args []string) error {
	app, cleanup, err := buildApp()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmdContext()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	res, err := app.Generator.Generate(ctx, profile.Finalize(rawFromFlags()))
	if err != nil {
		return err
	}
	if _, err := app.Store.SavePlan(res.Record); err != nil {
		logger.Error("saving plan failed", zap.Error(err))
	}
	if app.History != nil {
		if _, err := app.History.Record(res.Record); err != nil {
			logger.Error("recording history failed", zap.Error(err))
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), plan.RenderText(res.Segments))
	if res.Fallback {
		return fmt.Errorf("plan generation failed; fallback shown")
	}
	return nil
}
