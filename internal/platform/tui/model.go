package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/firerun/internal/core"
	"github.com/vovakirdan/firerun/internal/games/firefighter"
	"github.com/vovakirdan/firerun/internal/registry"
	"github.com/vovakirdan/firerun/internal/storage"
)

// statusTicks is how long a status line stays on screen.
const statusTicks = 120

// recorder is implemented by games that keep a replay log.
type recorder interface {
	Recording() firefighter.Recording
}

// runSavedMsg reports the outcome of a background replay save.
type runSavedMsg struct {
	id  string
	err error
}

// Model is the Bubble Tea model for running a game.
// It serves both local play and SSH sessions.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	logger     *log.Logger
	clipboard  bool // Copy screenshots to the system clipboard
	status     string
	statusLeft int
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current run has been written to the replay log
	embedded   bool // Hosted inside a SessionModel; going back keeps the program running
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg = cfg.Normalized()

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		logger:     log.New(io.Discard),
	}
}

// WithLogger returns a copy of the model that logs to l.
func (m Model) WithLogger(l *log.Logger) Model {
	if l != nil {
		m.logger = l
	}
	return m
}

// WithClipboard returns a copy of the model that also copies screenshots
// to the clipboard. Only useful when the game runs on the player's machine.
func (m Model) WithClipboard(enabled bool) Model {
	m.clipboard = enabled
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Initialize the game
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case runSavedMsg:
		if msg.err != nil {
			m.logger.Warn("could not save replay", "game", m.game.ID(), "err", msg.err)
			m.setStatus("replay not saved")
		} else {
			m.logger.Info("replay saved", "game", m.game.ID(), "id", msg.id)
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Sequence(m.saveRunCmd(), tea.Quit)
	}

	// Back to menu only when nothing is running
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		if m.embedded {
			return m, m.saveRunCmd()
		}
		return m, tea.Sequence(m.saveRunCmd(), tea.Quit)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	// Update screen size
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}

	// Note: This resets the game for games that cannot rescale
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	if m.statusLeft > 0 {
		m.statusLeft--
	}

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}

	// Save the replay on game over (once)
	if m.gameState.GameOver {
		cmds = append(cmds, m.saveRunCmd())
	}

	return m, tea.Batch(cmds...)
}

// saveRunCmd writes the current run to the replay log in the background.
// Runs that never advanced are skipped.
func (m *Model) saveRunCmd() tea.Cmd {
	if m.store == nil || m.runSaved || m.gameState.Ticks == 0 {
		return nil
	}
	rec, ok := m.game.(recorder)
	if !ok {
		return nil
	}
	m.runSaved = true

	store := m.store
	gameID := m.game.ID()
	recording := rec.Recording()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		id, err := store.SaveRecording(ctx, gameID, recording)
		return runSavedMsg{id: id, err: err}
	}
}

// saveScreenshot saves the current screen to a file and optionally copies
// it to the clipboard.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)
	text := m.screen.String()

	path, err := writeScreenshot(m.game.ID(), text)
	if err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
		m.setStatus("screenshot failed")
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
	m.setStatus("saved " + filepath.Base(path))

	if !m.clipboard {
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		m.logger.Debug("clipboard unavailable", "err", err)
		return
	}
	m.setStatus("saved " + filepath.Base(path) + " (copied)")
}

// writeScreenshot stores a frame under ~/.firerun/screenshots.
func writeScreenshot(gameID, text string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot find home directory: %w", err)
	}

	dir := filepath.Join(home, ".firerun", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", gameID, timestamp))

	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusLeft = statusTicks
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	if m.statusLeft > 0 && m.status != "" {
		m.screen.DrawTextColored(1, m.screen.Height()-1, " "+m.status+" ", core.ColorHUD)
	}

	// Convert screen to string
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg).
		WithLogger(logger).
		WithClipboard(true)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
