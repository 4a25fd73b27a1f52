package firefighter

import (
	"testing"

	"github.com/vovakirdan/firerun/internal/config"
)

func TestSpawnEverythingOnZeroDraw(t *testing.T) {
	sim := desktopSim()
	var next State

	spawn(&next, sim, 0.001, fixedRand(0))

	if len(next.Obstacles) != 1 || next.Obstacles[0].Kind != KindObstacle {
		t.Errorf("Obstacles = %+v, expected one obstacle", next.Obstacles)
	}
	if len(next.Fires) != 2 {
		t.Fatalf("len(Fires) = %d, expected 2", len(next.Fires))
	}
	if next.Fires[0].Kind != KindBurnedTree {
		t.Errorf("Fires[0].Kind = %s, expected burned_tree", next.Fires[0].Kind)
	}
	if next.Fires[1].Kind != KindGreenTree {
		t.Errorf("Fires[1].Kind = %s, expected green_tree", next.Fires[1].Kind)
	}
	if len(next.Powerups) != 1 {
		t.Fatalf("len(Powerups) = %d, expected 1", len(next.Powerups))
	}
	if next.Powerups[0].Y != sim.Display.CanvasHeight/2 {
		t.Errorf("powerup Y = %v, expected %v", next.Powerups[0].Y, sim.Display.CanvasHeight/2)
	}
}

func TestSpawnNothingOnHighDraw(t *testing.T) {
	var next State
	spawn(&next, desktopSim(), 0.001, noSpawn)
	if next.EntityCount() != 0 {
		t.Errorf("EntityCount = %d, expected 0", next.EntityCount())
	}
}

func TestSpawnDrawOrder(t *testing.T) {
	sim := desktopSim()
	// obstacle miss, burned hit, variant picks pixel, green miss, powerup hit, y draw.
	rng := &seqRand{vals: []float64{0.9, 0.001, 0.7, 0.9, 0.0001, 1}}
	var next State

	spawn(&next, sim, 0.001, rng)

	if len(next.Obstacles) != 0 {
		t.Errorf("len(Obstacles) = %d, expected 0", len(next.Obstacles))
	}
	if len(next.Fires) != 1 || next.Fires[0].Kind != KindPixelBurnedTree {
		t.Errorf("Fires = %+v, expected one pixel_burned_tree", next.Fires)
	}
	if len(next.Powerups) != 1 {
		t.Fatalf("len(Powerups) = %d, expected 1", len(next.Powerups))
	}
	maxY := sim.Display.GroundLine() - sim.Display.Powerup.Height
	if !approxEqual(next.Powerups[0].Y, maxY) {
		t.Errorf("powerup Y = %v, expected %v", next.Powerups[0].Y, maxY)
	}
	if rng.draws != 6 {
		t.Errorf("draws = %d, expected 6", rng.draws)
	}
}

func TestSpawnRatesFromConfig(t *testing.T) {
	cfg := config.DefaultFirefighterConfig()
	cfg.Spawn.GreenTree = 0
	cfg.Spawn.BurnedTree = 0
	cfg.Spawn.Powerup = 0
	sim := config.Resolve(cfg, 1200, 600, config.DeviceDesktop)

	var next State
	spawn(&next, sim, 0, fixedRand(0))
	if next.EntityCount() != 0 {
		t.Errorf("EntityCount = %d, expected 0 with zero rates", next.EntityCount())
	}
}
