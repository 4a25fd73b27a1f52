package firefighter

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/firerun/internal/config"
	"github.com/vovakirdan/firerun/internal/core"
)

// Validation errors reported by State.Validate.
var (
	ErrShootsOutOfRange   = errors.New("firefighter: remaining shoots out of range")
	ErrNegativeFireDanger = errors.New("firefighter: negative fire danger")
	ErrPlayerOutOfBounds  = errors.New("firefighter: player outside the canvas")
)

// Player is the firefighter.
type Player struct {
	X, Y        float64
	VY          float64 // Vertical velocity, negative is up
	IsJumping   bool    // Cached Y < rest line; Advance recomputes it every step
	MovingLeft  bool
	MovingRight bool
}

// Box returns the player's bounding box for the given display.
func (p Player) Box(d config.Display) core.Rect {
	return core.NewRect(p.X, p.Y, d.Player.Width, d.Player.Height)
}

// Airborne reports whether the player is above the rest line.
func (p Player) Airborne(d config.Display) bool {
	return p.Y < d.RestY()
}

// State is one immutable snapshot of a run. Advance and the action
// handlers return new states and never write through the input's slices.
type State struct {
	Player          Player
	Obstacles       []Entity // Burning obstacles; touching one ends the run
	Fires           []Entity // Trees of every kind
	WaterJets       []Entity
	Powerups        []Entity
	Score           int
	FireDanger      float64
	ElapsedTime     float64 // Simulated seconds
	RemainingShoots int
	GameOver        bool
}

// NewState returns the state at the start of a run.
func NewState(sim config.Sim) State {
	return State{
		Player: Player{
			X: core.ClampF(sim.Physics.StartX, 0, sim.Display.MaxPlayerX()),
			Y: sim.Display.RestY(),
		},
		RemainingShoots: sim.Tuning.MaxShoots,
	}
}

// Validate reports values no reachable state can hold.
func (s State) Validate(sim config.Sim) error {
	if s.RemainingShoots < 0 || s.RemainingShoots > sim.Tuning.MaxShoots {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrShootsOutOfRange, s.RemainingShoots, sim.Tuning.MaxShoots)
	}
	if s.FireDanger < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeFireDanger, s.FireDanger)
	}
	if s.Player.X < 0 || s.Player.X > sim.Display.MaxPlayerX() || s.Player.Y > sim.Display.RestY() {
		return fmt.Errorf("%w: (%v, %v)", ErrPlayerOutOfBounds, s.Player.X, s.Player.Y)
	}
	return nil
}

// EntityCount returns the number of live entities across all collections.
func (s State) EntityCount() int {
	return len(s.Obstacles) + len(s.Fires) + len(s.WaterJets) + len(s.Powerups)
}
