package firefighter

import "github.com/vovakirdan/firerun/internal/config"

// spawn runs this step's Bernoulli trials and appends the new entities to
// next. The draw order is fixed so a seed always replays the same run:
// obstacle, burned tree (+ variant), green tree, power-up (+ height).
func spawn(next *State, sim config.Sim, obstacleRate float64, rng Rand) {
	d := sim.Display

	if rng.Float64() < obstacleRate {
		next.Obstacles = append(next.Obstacles, NewObstacle(d))
	}

	if rng.Float64() < sim.Spawn.BurnedTree {
		if rng.Float64() < 1-sim.Spawn.PixelBurnedShare {
			next.Fires = append(next.Fires, NewBurnedTree(d))
		} else {
			next.Fires = append(next.Fires, NewPixelBurnedTree(d))
		}
	}

	if rng.Float64() < sim.Spawn.GreenTree {
		next.Fires = append(next.Fires, NewGreenTree(d))
	}

	if rng.Float64() < sim.Spawn.Powerup {
		next.Powerups = append(next.Powerups, NewPowerup(d, rng))
	}
}
