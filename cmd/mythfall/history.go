package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mythfall/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [mode]",
	Short: "Show recorded runs",
	Long: `Without a mode, shows per-mode totals and the most recent runs.
With a mode, shows that mode's best runs: wins first, then the furthest
stage, most kills and fastest time.

Examples:
  mythfall history
  mythfall history survival --limit 20
  mythfall history --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded runs")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening run database: %w", err)
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()
	out := cmd.OutOrStdout()

	if flagHistoryClear {
		if err := store.ClearRuns(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, "Run history cleared.")
		return nil
	}

	if len(args) == 1 {
		runs, err := store.BestRuns(ctx, args[0], flagHistoryLimit)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Best runs - %s\n", args[0])
		printRuns(cmd, runs)
		return nil
	}

	stats, err := store.AllModeStats(ctx)
	if err != nil {
		return err
	}
	if len(stats) > 0 {
		t := newTable("Mode", "Runs", "Wins", "Best stage", "Last played")
		for _, s := range stats {
			t.Row(s.Mode, fmt.Sprintf("%d", s.Runs), fmt.Sprintf("%d", s.Wins),
				fmt.Sprintf("%d", s.BestStage), s.LastPlayed.Format("2006-01-02 15:04"))
		}
		fmt.Fprintln(out, t.Render())
	}

	runs, err := store.RecentRuns(ctx, flagHistoryLimit)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Recent runs")
	printRuns(cmd, runs)
	return nil
}

func printRuns(cmd *cobra.Command, runs []storage.Run) {
	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out, "Play 'mythfall play' to record the first one!")
		return
	}
	t := newTable("#", "Mode", "Hero", "Difficulty", "Result", "Stage", "Kills", "Time", "Date")
	for i, r := range runs {
		t.Row(
			fmt.Sprintf("%d", i+1), r.Mode, r.Hero, r.Difficulty, r.Result,
			fmt.Sprintf("%d", r.Stage), fmt.Sprintf("%d", r.Kills),
			r.Duration.Round(time.Second).String(),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	fmt.Fprintln(out, t.Render())
}
