package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/firerun/internal/platform/tui"
	"github.com/vovakirdan/firerun/internal/registry"
	"github.com/vovakirdan/firerun/internal/storage"
)

var (
	flagReplaysGame  string
	flagReplaysLimit int
	flagPrune        int
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List recorded runs",
	Long: `List the most recent recorded runs. Runs store the seed and the
inputs of a session, not its score; use 'firerun replay <id>' to
re-simulate one.

Examples:
  firerun replays
  firerun replays --game firefighter_mobile --limit 5
  firerun replays --prune 100`,
	Args: cobra.NoArgs,
	Run:  runReplays,
}

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a recorded run",
	Long: `Replay a recorded run headless and print its outcome.
The ID may be any unique prefix of the full run ID.

Runs replay exactly only under the config they were recorded with, so
pass the same --config used while playing.

Examples:
  firerun replay 3f2a9c1e
  firerun replay 3f2a --config ./my-firefighter.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replaysCmd.Flags().StringVar(&flagReplaysGame, "game", "", "Only list runs of this game variant")
	replaysCmd.Flags().IntVar(&flagReplaysLimit, "limit", 20, "Number of runs to list")
	replaysCmd.Flags().IntVar(&flagPrune, "prune", 0, "Delete all but the N most recent runs")
}

func runReplays(cmd *cobra.Command, _ []string) {
	if flagReplaysGame != "" && !registry.Exists(flagReplaysGame) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", flagReplaysGame)
		fmt.Fprintln(os.Stderr, "Run 'firerun list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replay database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := cmd.Context()

	if flagPrune > 0 {
		removed, err := store.PruneRuns(ctx, flagPrune)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error pruning runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Removed %d runs, kept the %d most recent.\n", removed, flagPrune)
		return
	}

	runs, err := store.RecentRuns(ctx, flagReplaysGame, flagReplaysLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'firerun play' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-8s  %-19s  %-7s  %-7s  %-6s  %-6s  %s\n", "ID", "Game", "Device", "Preset", "Time", "Inputs", "Date")
	fmt.Printf("  %-8s  %-19s  %-7s  %-7s  %-6s  %-6s  %s\n", "--", "----", "------", "------", "----", "------", "----")

	for _, r := range runs {
		preset := r.Preset
		if preset == "" {
			preset = "-"
		}
		fmt.Printf("  %-8s  %-19s  %-7s  %-7s  %-6s  %-6d  %s\n",
			r.ID[:min(8, len(r.ID))],
			r.GameID,
			r.Device,
			preset,
			formatDuration(r.Frames),
			r.InputCount,
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}
}

func runReplay(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replay database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	outcome, run, err := tui.ReplayRun(cmd.Context(), store, args[0])
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error replaying run: %v\n", err)
		os.Exit(1)
	}

	end := "quit before the end"
	if outcome.GameOver {
		end = "game over"
	}

	fmt.Printf("Run %s (%s)\n", run.ID, run.GameID)
	fmt.Println()
	fmt.Printf("  Seed:      %d\n", run.Seed)
	fmt.Printf("  Device:    %s\n", run.Device)
	fmt.Printf("  Screen:    %dx%d\n", run.ScreenW, run.ScreenH)
	fmt.Printf("  Duration:  %s (%d ticks)\n", formatDuration(outcome.Ticks), outcome.Ticks)
	fmt.Printf("  Score:     %d (%d points)\n", outcome.Score/100, outcome.Score)
	fmt.Printf("  Water:     %d shots left\n", outcome.State.RemainingShoots)
	fmt.Printf("  Ended:     %s\n", end)
}

// formatDuration renders a tick count at 60 ticks per second as m:ss.
func formatDuration(ticks int) string {
	secs := ticks / 60
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
