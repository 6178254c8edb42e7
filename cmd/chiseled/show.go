package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chiseled/internal/plan"
	"chiseled/internal/store"
)

var showInstructions bool

// showCmd prints the saved current plan.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved workout plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := store.New(cfg.DataDir, logger)
		rec, err := st.LoadPlan()
		if err != nil {
			return err
		}
		if rec == nil || !rec.Generated() {
			return fmt.Errorf("no saved plan; run chiseled to create one")
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Generated: %s\n\n", rec.Timestamp)
		fmt.Fprintln(out, plan.RenderText(plan.Scan(rec.PlanText)))

		if showInstructions {
			for _, name := range plan.ExerciseNames(plan.Scan(rec.PlanText)) {
				text, ok := rec.Instructions[name]
				if !ok {
					text = plan.InstructionFallback
				}
				fmt.Fprintf(out, "\n=== %s ===\n", name)
				fmt.Fprintln(out, plan.RenderText(plan.FormatInstructions(text)))
				if url := rec.Videos[name]; url != "" {
					fmt.Fprintf(out, "Video: %s\n", url)
				}
			}
		}
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showInstructions, "instructions", false, "include per-exercise instructions and video links")
}
