package firefighter

import (
	"math"

	"github.com/vovakirdan/firerun/internal/config"
)

// Jump gives the player upward velocity. It only fires when the player is
// on the ground or within JumpGrace pixels of it. The impulse is chosen to
// climb min(y, JumpHeightRatio × playable height), so a jump from the
// ground nearly reaches that ratio and a late jump adds less.
func Jump(s State, sim config.Sim) State {
	d := sim.Display
	p := s.Player
	if p.Airborne(d) && p.Y <= d.RestY()-sim.Tuning.JumpGrace {
		return s
	}

	height := math.Min(p.Y, sim.Tuning.JumpHeightRatio*d.PlayableHeight())
	p.VY = -math.Sqrt(2 * sim.Physics.Gravity * math.Max(0, height))
	p.IsJumping = true

	s.Player = p
	return s
}

// MoveLeft starts moving left. The right flag is left as is.
func MoveLeft(s State) State {
	s.Player.MovingLeft = true
	return s
}

// MoveRight starts moving right. The left flag is left as is.
func MoveRight(s State) State {
	s.Player.MovingRight = true
	return s
}

// StopMoving clears both movement flags.
func StopMoving(s State) State {
	s.Player.MovingLeft = false
	s.Player.MovingRight = false
	return s
}

// SprayWater fires one water jet if any water is left.
func SprayWater(s State, sim config.Sim) State {
	if s.RemainingShoots <= 0 {
		return s
	}

	jets := make([]Entity, len(s.WaterJets), len(s.WaterJets)+1)
	copy(jets, s.WaterJets)
	s.WaterJets = append(jets, NewWaterJet(s.Player, sim.Display))
	s.RemainingShoots--
	return s
}

// ClearNearestObstacle spends one shoot to remove the closest obstacle
// ahead of the player. Nothing happens without water or a target ahead.
func ClearNearestObstacle(s State) State {
	if s.RemainingShoots <= 0 {
		return s
	}

	nearest := -1
	shortest := math.Inf(1)
	for i, o := range s.Obstacles {
		dist := o.X - s.Player.X
		if dist > 0 && dist < shortest {
			shortest = dist
			nearest = i
		}
	}
	if nearest < 0 {
		return s
	}

	s.Obstacles = withoutIndex(s.Obstacles, nearest)
	s.RemainingShoots--
	return s
}
