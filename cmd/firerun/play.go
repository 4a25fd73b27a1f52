package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/firerun/internal/core"
	"github.com/vovakirdan/firerun/internal/platform/tui"
	"github.com/vovakirdan/firerun/internal/registry"
	"github.com/vovakirdan/firerun/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a run",
	Long: `Start a run. Without a game argument the variant follows --device.

Controls:
  W/Up         - Jump
  A/Left       - Move left
  D/Right      - Move right
  X/Down       - Stop
  Space/S      - Spray water
  E            - Clear the nearest obstacle ahead
  P            - Pause
  Esc/B        - Back (when paused or after game over)
  R            - Restart (after game over)
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Half-speed ramp
  normal - Config ramp
  hard   - Faster start, 1.5x ramp
  fixed  - No ramp, the speed stays at its initial value

Examples:
  firerun play
  firerun play firefighter_mobile
  firerun play --preset hard --seed 42
  firerun play --config ./my-firefighter.toml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

// terminalConfig builds the runtime config from the terminal size and
// the global flags.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	return cfg.Normalized()
}

// openStore opens the replay log. Play continues without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open replay database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID, _ := gameIDForDevice(flagDevice)
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'firerun list' to see available games.")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	// Run the game
	runErr := tui.Run(game, store, terminalConfig(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
