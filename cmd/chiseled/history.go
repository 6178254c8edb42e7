package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chiseled/internal/plan"
	"chiseled/internal/store"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse previously generated plans",
	RunE:  listHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Print one plan from the history",
	Args:  cobra.ExactArgs(1),
	RunE:  showHistoryEntry,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum entries to list")
	historyCmd.AddCommand(historyShowCmd)
}

func listHistory(cmd *cobra.Command, args []string) error {
	h, err := store.OpenHistory(cfg.DataDir)
	if err != nil {
		return err
	}
	defer h.Close()

	entries, err := h.List(historyLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No plans generated yet.")
		return nil
	}

	out := cmd.OutOrStdout()
	for _, e := range entries {
		fmt.Fprintf(out, "%s  %s  %s / %s\n",
			e.ID, e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Focus, e.Goal)
	}
	return nil
}

func showHistoryEntry(cmd *cobra.Command, args []string) error {
	h, err := store.OpenHistory(cfg.DataDir)
	if err != nil {
		return err
	}
	defer h.Close()

	entry, err := h.Get(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generated: %s\n\n", entry.Record.Timestamp)
	fmt.Fprintln(out, plan.RenderText(plan.Scan(entry.Record.PlanText)))
	return nil
}
