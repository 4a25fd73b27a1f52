// Package firefighter implements the forest firefighter runner: a pure
// step engine over immutable states plus the adapter that hosts it on a
// terminal screen.
package firefighter

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/firerun/internal/config"
	"github.com/vovakirdan/firerun/internal/core"
	"github.com/vovakirdan/firerun/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger routes game events to l. Nil restores the silent default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// LoadConfig loads the config the game runs with, before any preset.
func LoadConfig() (config.FirefighterConfig, error) {
	return config.LoadFirefighter(configPath)
}

// Game hosts one run of the engine behind registry.Game.
type Game struct {
	id       string
	title    string
	device   config.DeviceClass // Empty classifies by canvas width
	preset   config.DifficultyPreset
	cfg      config.FirefighterConfig // Preset already applied
	sim      config.Sim
	state    State
	rng      Rand
	runtime  core.RuntimeConfig
	paused   bool
	frame    int // Step calls since reset, paused ones included
	ticks    int // Advance calls since reset
	moveHold int // Steps until the held movement key counts as released
	rec      Recording
}

// New creates a game that picks its physics table from the canvas width.
func New() *Game {
	return &Game{id: "firefighter", title: "Forest Firefighter"}
}

// NewDesktop creates a game locked to the desktop physics table.
func NewDesktop() *Game {
	return &Game{
		id:     "firefighter_desktop",
		title:  "Forest Firefighter (desktop)",
		device: config.DeviceDesktop,
	}
}

// NewMobile creates a game locked to the mobile physics table.
func NewMobile() *Game {
	return &Game{
		id:     "firefighter_mobile",
		title:  "Forest Firefighter (mobile)",
		device: config.DeviceMobile,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset loads the config and starts a fresh run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := LoadConfig()
	if err != nil {
		logger.Warn("falling back to default config", "err", err)
		cfg = config.DefaultFirefighterConfig()
	}

	g.preset = difficultyPreset
	if g.preset != "" {
		config.ApplyFirefighterPreset(&cfg, g.preset)
	}
	g.cfg = cfg

	g.start(runtime)
}

// start resets the run with the already loaded config.
func (g *Game) start(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.sim = g.resolve(runtime.ScreenW, runtime.ScreenH)
	g.state = NewState(g.sim)
	g.rng = NewRand(runtime.Seed)
	g.paused = false
	g.frame = 0
	g.ticks = 0
	g.moveHold = 0
	g.rec = Recording{
		Seed:    runtime.Seed,
		Device:  g.device,
		Preset:  g.preset,
		ScreenW: runtime.ScreenW,
		ScreenH: runtime.ScreenH,
	}

	logger.Debug("run started",
		"game", g.id,
		"device", g.sim.Class,
		"canvas", [2]float64{g.sim.Display.CanvasWidth, g.sim.Display.CanvasHeight},
		"seed", runtime.Seed)
}

// resolve maps the terminal grid onto a virtual pixel canvas.
func (g *Game) resolve(screenW, screenH int) config.Sim {
	w := float64(screenW) * g.cfg.Host.CellWidth
	h := float64(screenH) * g.cfg.Host.CellHeight

	class := g.device
	if class == "" {
		class = config.ClassifyDevice(g.cfg, w)
	}
	return config.Resolve(g.cfg, w, h, class)
}

// Resize rescales the canvas without ending the run. Entities keep their
// pixel positions and the player is pulled back inside the new bounds.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	g.sim = g.resolve(screenW, screenH)

	p := &g.state.Player
	p.X = core.ClampF(p.X, 0, g.sim.Display.MaxPlayerX())
	if rest := g.sim.Display.RestY(); p.Y >= rest {
		p.Y = rest
		p.VY = 0
	}
	p.IsJumping = p.Airborne(g.sim.Display)

	g.rec.Resizes = append(g.rec.Resizes, ResizeEvent{Frame: g.frame, ScreenW: screenW, ScreenH: screenH})
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state.GameOver {
		return core.StepResult{State: g.State()}
	}

	g.record(in)
	g.frame++

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		logger.Debug("pause toggled", "paused", g.paused, "tick", g.ticks)
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.apply(in)
	g.state = Advance(g.state, g.sim, g.rng)
	g.ticks++

	if g.state.GameOver {
		logger.Info("run over",
			"game", g.id,
			"score", g.state.Score,
			"elapsed", g.state.ElapsedTime,
			"ticks", g.ticks)
	}

	return core.StepResult{State: g.State()}
}

// apply runs the action handlers for this frame's input.
// Terminals report key presses but not releases, so a movement key keeps
// the player moving for MoveHoldTicks steps after its last repeat and a
// new direction replaces the old one.
func (g *Game) apply(in core.InputFrame) {
	s := g.state

	if in.Has(core.ActionStop) {
		s = StopMoving(s)
		g.moveHold = 0
	}
	if in.Has(core.ActionLeft) {
		s = MoveLeft(StopMoving(s))
		g.moveHold = g.cfg.Host.MoveHoldTicks
	}
	if in.Has(core.ActionRight) {
		s = MoveRight(StopMoving(s))
		g.moveHold = g.cfg.Host.MoveHoldTicks
	}
	if in.Has(core.ActionJump) {
		s = Jump(s, g.sim)
	}
	if in.Has(core.ActionSpray) {
		s = SprayWater(s, g.sim)
	}
	if in.Has(core.ActionClear) {
		s = ClearNearestObstacle(s)
	}

	if g.moveHold > 0 {
		g.moveHold--
		if g.moveHold == 0 {
			s = StopMoving(s)
		}
	}

	g.state = s
}

// record appends this frame's gameplay actions to the replay log.
func (g *Game) record(in core.InputFrame) {
	for _, a := range in.Gameplay() {
		g.rec.Inputs = append(g.rec.Inputs, InputEvent{Frame: g.frame, Action: a})
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.GameOver,
		Paused:   g.paused,
		Ticks:    g.ticks,
	}
}

// Snapshot returns the engine state of the current run.
func (g *Game) Snapshot() State {
	return g.state
}

// Sim returns the simulation snapshot the current run steps with.
func (g *Game) Sim() config.Sim {
	return g.sim
}

// Register the game variants with the registry
func init() {
	registry.Register("firefighter", func() registry.Game {
		return New()
	})
	registry.Register("firefighter_desktop", func() registry.Game {
		return NewDesktop()
	})
	registry.Register("firefighter_mobile", func() registry.Game {
		return NewMobile()
	})
}
