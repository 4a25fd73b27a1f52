// firerun is a terminal side-scroller: a firefighter runs through a burning
// forest, jumps obstacles and sprays water on the fires ahead.
//
// Usage:
//
//	firerun list              - List available game variants
//	firerun play [game]       - Play a run
//	firerun menu              - Start menu to pick a variant interactively
//	firerun serve             - Start SSH server for remote play
//	firerun replays           - List recorded runs
//	firerun replay <id>       - Re-simulate a recorded run
//	firerun config dump       - Print the effective config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set replay database path (default: ~/.firerun/runs.db)
//	--config <path>     - Load a custom YAML or TOML config
//	--preset <name>     - Difficulty preset: easy, normal, hard, fixed
//	--device <class>    - Physics table: auto, desktop, mobile
//	--log-level <level> - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/firerun/internal/config"
	"github.com/vovakirdan/firerun/internal/games/firefighter"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagPreset   string
	flagDevice   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "firerun",
	Short: "Forest Firefighter - a runner for your terminal",
	Long: `Forest Firefighter is a side-scrolling runner played in the terminal.
Jump over obstacles, spray water on the fires ahead of you and grab
power-ups to refill the tank.

Available commands:
  list     - Show the game variants
  play     - Start a run directly
  menu     - Interactive picker with the replay browser
  serve    - Start SSH server for remote play
  replays  - List recorded runs
  replay   - Re-simulate a recorded run
  config   - Inspect the effective configuration

Examples:
  firerun play
  firerun play --device mobile --preset hard
  firerun menu
  firerun serve --ssh :2222
  firerun replay 3f2a9c1e`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if flagPreset != "" && config.ParsePreset(flagPreset) == "" {
			return fmt.Errorf("unknown preset %q (want easy, normal, hard or fixed)", flagPreset)
		}
		if _, err := gameIDForDevice(flagDevice); err != nil {
			return err
		}
		firefighter.SetConfigPath(flagConfig)
		firefighter.SetDifficultyPreset(flagPreset)
		return nil
	},
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.firerun/runs.db", "Path to replay database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	pf.StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagDevice, "device", "auto", "Physics table: auto, desktop, mobile")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// gameIDForDevice maps the --device flag to a registered game variant.
func gameIDForDevice(device string) (string, error) {
	if device == "" || device == "auto" {
		return "firefighter", nil
	}
	class, ok := config.ParseDeviceClass(device)
	if !ok {
		return "", fmt.Errorf("unknown device %q (want auto, desktop or mobile)", device)
	}
	return "firefighter_" + string(class), nil
}

// newLogger builds the command logger. Full-screen commands pass
// interactive=true so that, without --log-file, nothing is written over
// the game screen.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	case interactive:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "firerun",
		Level:           level,
	})
	firefighter.SetLogger(logger)
	return logger, closeFn, nil
}
