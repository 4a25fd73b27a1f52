package firefighter

import (
	"math"

	"github.com/vovakirdan/firerun/internal/config"
	"github.com/vovakirdan/firerun/internal/core"
)

// Advance runs one fixed simulation step and returns the next state.
//
// Callers must stop calling Advance once GameOver is set. Player-vs-world
// collisions use the player's box from the start of the step; the step
// that detects a hit still applies every other update before reporting
// the run as over.
func Advance(s State, sim config.Sim, rng Rand) State {
	d := sim.Display
	sched := config.NewScheduler(sim)
	speed := sched.Speed(s.ElapsedTime)
	obstacleRate := sched.ObstacleRate(speed)

	next := s
	next.Player = integratePlayer(s.Player, sim)

	scroll := -speed * sim.Tuning.ScrollFactor
	obstacles := scrollLeft(s.Obstacles, scroll)
	fires := scrollLeft(s.Fires, scroll)
	powerups := scrollLeft(s.Powerups, scroll)
	jets := advanceJets(s.WaterJets, speed*sim.Tuning.JetSpeedFactor, d.CanvasWidth)

	playerBox := s.Player.Box(d)
	_, crashed := FirstCollision(playerBox, obstacles)
	hit := extinguish(jets, obstacles, fires)
	collected, gotPowerup := FirstCollision(playerBox, powerups)

	next.Score = s.Score + sim.Tuning.StepPoints + hit.count*sim.Tuning.ExtinguishPoints
	next.FireDanger = math.Max(0, s.FireDanger-float64(hit.count)*sim.Tuning.DangerPerFire)
	next.ElapsedTime = s.ElapsedTime + sim.StepSeconds()
	next.GameOver = s.GameOver || crashed

	shoots := core.Clamp(s.RemainingShoots, 0, sim.Tuning.MaxShoots)
	if gotPowerup {
		shoots = min(shoots+sim.Tuning.PowerupShoots, sim.Tuning.MaxShoots)
	}
	next.RemainingShoots = shoots

	next.Obstacles = without(obstacles, hit.obstacles)
	next.Fires = without(fires, hit.fires)
	next.WaterJets = without(jets, hit.jets)
	next.Powerups = powerups
	if gotPowerup {
		next.Powerups = withoutIndex(powerups, collected)
	}

	spawn(&next, sim, obstacleRate, rng)
	return next
}

// integratePlayer applies gravity, the ground clamp and horizontal intent.
func integratePlayer(p Player, sim config.Sim) Player {
	d := sim.Display
	rest := d.RestY()

	y := p.Y + p.VY
	vy := p.VY + sim.Physics.Gravity
	if y > rest {
		y = rest
		vy = 0
	}
	vy = math.Min(vy, sim.Physics.MaxFallingSpeed)

	// Both flags set cancel out.
	x := p.X
	if p.MovingLeft {
		x -= sim.Tuning.MoveSpeed
	}
	if p.MovingRight {
		x += sim.Tuning.MoveSpeed
	}

	p.X = core.ClampF(x, 0, d.MaxPlayerX())
	p.Y = y
	p.VY = vy
	p.IsJumping = y < rest
	return p
}

// scrollLeft moves entities by dx (negative) and drops those fully past
// the left edge.
func scrollLeft(in []Entity, dx float64) []Entity {
	out := make([]Entity, 0, len(in)+1)
	for _, e := range in {
		moved := e.Shifted(dx)
		if moved.X > -moved.Width {
			out = append(out, moved)
		}
	}
	return out
}

// advanceJets moves water jets right and drops those past the right edge.
func advanceJets(in []Entity, dx, canvasWidth float64) []Entity {
	out := make([]Entity, 0, len(in))
	for _, e := range in {
		moved := e.Shifted(dx)
		if moved.X < canvasWidth {
			out = append(out, moved)
		}
	}
	return out
}

// hits records which entities water consumed this step, by index.
type hits struct {
	jets      []bool
	obstacles []bool
	fires     []bool
	count     int
}

// extinguish pairs jets with burning entities. Each jet scans the
// obstacles, then the fires, in order and takes the first extinguishable
// entity it overlaps that no earlier jet took. Pairs are never revisited.
func extinguish(jets, obstacles, fires []Entity) hits {
	h := hits{
		jets:      make([]bool, len(jets)),
		obstacles: make([]bool, len(obstacles)),
		fires:     make([]bool, len(fires)),
	}

	for j, jet := range jets {
		if takeFirst(jet, obstacles, h.obstacles) || takeFirst(jet, fires, h.fires) {
			h.jets[j] = true
			h.count++
		}
	}
	return h
}

// takeFirst marks the first free extinguishable target jet overlaps.
func takeFirst(jet Entity, targets []Entity, taken []bool) bool {
	for i, target := range targets {
		if taken[i] || !target.Kind.Extinguishable() {
			continue
		}
		if Intersects(jet, target) {
			taken[i] = true
			return true
		}
	}
	return false
}

// without returns the entities whose removed flag is unset.
func without(in []Entity, removed []bool) []Entity {
	out := make([]Entity, 0, len(in)+1)
	for i, e := range in {
		if !removed[i] {
			out = append(out, e)
		}
	}
	return out
}

// withoutIndex returns a copy of in with element i dropped.
func withoutIndex(in []Entity, i int) []Entity {
	out := make([]Entity, 0, len(in))
	out = append(out, in[:i]...)
	return append(out, in[i+1:]...)
}
