package firefighter

import (
	"testing"
)

func TestAdvanceWaterExtinguishesObstacleFire(t *testing.T) {
	sim := desktopSim()
	s := NewState(sim)
	s.FireDanger = 10
	s.WaterJets = []Entity{{X: 100, Y: 50, Width: 40, Height: 30, Kind: KindWater}}
	s.Fires = []Entity{{X: 110, Y: 55, Width: 60, Height: 90, Kind: KindObstacle}}

	next := Advance(s, sim, noSpawn)

	if len(next.Fires) != 0 {
		t.Errorf("len(Fires) = %d, expected 0", len(next.Fires))
	}
	if len(next.WaterJets) != 0 {
		t.Errorf("len(WaterJets) = %d, expected 0", len(next.WaterJets))
	}
	if next.Score != s.Score+16 {
		t.Errorf("Score = %d, expected %d", next.Score, s.Score+16)
	}
	if !approxEqual(next.FireDanger, 7) {
		t.Errorf("FireDanger = %v, expected 7", next.FireDanger)
	}
}

func TestAdvanceFireDangerFloorsAtZero(t *testing.T) {
	sim := desktopSim()
	s := NewState(sim)
	s.FireDanger = 1
	s.WaterJets = []Entity{{X: 100, Y: 50, Width: 40, Height: 30, Kind: KindWater}}
	s.Obstacles = []Entity{{X: 110, Y: 55, Width: 60, Height: 90, Kind: KindObstacle}}

	next := Advance(s, sim, noSpawn)

	if next.FireDanger != 0 {
		t.Errorf("FireDanger = %v, expected 0", next.FireDanger)
	}
	if len(next.Obstacles) != 0 {
		t.Errorf("len(Obstacles) = %d, expected 0", len(next.Obstacles))
	}
}

func TestAdvanceWaterIgnoresTrees(t *testing.T) {
	sim := desktopSim()
	s := NewState(sim)
	s.WaterJets = []Entity{{X: 100, Y: 50, Width: 40, Height: 30, Kind: KindWater}}
	s.Fires = []Entity{
		{X: 110, Y: 55, Width: 60, Height: 90, Kind: KindGreenTree},
		{X: 110, Y: 55, Width: 60, Height: 90, Kind: KindBurnedTree},
		{X: 110, Y: 55, Width: 60, Height: 90, Kind: KindFire},
	}

	next := Advance(s, sim, noSpawn)

	if len(next.Fires) != 3 {
		t.Errorf("len(Fires) = %d, expected 3", len(next.Fires))
	}
	if len(next.WaterJets) != 1 {
		t.Errorf("len(WaterJets) = %d, expected 1", len(next.WaterJets))
	}
	if next.Score != s.Score+1 {
		t.Errorf("Score = %d, expected %d", next.Score, s.Score+1)
	}
}

func TestAdvanceOneJetPutsOutOneFire(t *testing.T) {
	sim := desktopSim()
	s := NewState(sim)
	s.WaterJets = []Entity{
		{X: 100, Y: 50, Width: 40, Height: 30, Kind: KindWater},
		{X: 102, Y: 52, Width: 40, Height: 30, Kind: KindWater},
		{X: 104, Y: 54, Width: 40, Height: 30, Kind: KindWater},
	}
	s.Obstacles = []Entity{
		{X: 110, Y: 55, Width: 60, Height: 90, Kind: KindObstacle},
		{X: 120, Y: 60, Width: 60, Height: 90, Kind: KindObstacle},
	}

	next := Advance(s, sim, noSpawn)

	if len(next.Obstacles) != 0 {
		t.Errorf("len(Obstacles) = %d, expected 0", len(next.Obstacles))
	}
	if len(next.WaterJets) != 1 {
		t.Fatalf("len(WaterJets) = %d, expected 1", len(next.WaterJets))
	}
	// The third jet found both targets taken.
	if !approxEqual(next.WaterJets[0].Y, 54) {
		t.Errorf("surviving jet Y = %v, expected 54", next.WaterJets[0].Y)
	}
	if next.Score != s.Score+1+2*15 {
		t.Errorf("Score = %d, expected %d", next.Score, s.Score+31)
	}
}

func TestAdvanceObstacleCollisionEndsRun(t *testing.T) {
	sim := desktopSim()
	s := NewState(sim)
	box := s.Player.Box(sim.Display)
	s.Obstacles = []Entity{{X: box.X + 10, Y: box.Y + 10, Width: 40, Height: 60, Kind: KindObstacle}}

	next := Advance(s, sim, noSpawn)

	if !next.GameOver {
		t.Error("GameOver = false, expected true")
	}
	if next.Score != s.Score+1 {
		t.Errorf("Score = %d, expected %d", next.Score, s.Score+1)
	}
}

func TestAdvanceTouchingEdgesIsNotACollision(t *testing.T) {
	sim := desktopSim()
	s := NewState(sim)
	box := s.Player.Box(sim.Display)
	scroll := sim.Tuning.InitialGameSpeed * sim.Tuning.ScrollFactor
	// After scrolling the obstacle's left edge lands exactly on the player's right edge.
	s.Obstacles = []Entity{{X: box.Right() + scroll, Y: box.Y, Width: 40, Height: 60, Kind: KindObstacle}}

	next := Advance(s, sim, noSpawn)

	if next.GameOver {
		t.Error("GameOver = true, expected false for touching edges")
	}
}

func TestAdvancePowerupRefillsWater(t *testing.T) {
	tests := []struct {
		name     string
		shoots   int
		expected int
	}{
		{"adds refill", 50, 60},
		{"capped at max", 95, 100},
		{"from empty", 0, 10},
	}

	sim := desktopSim()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(sim)
			s.RemainingShoots = tt.shoots
			box := s.Player.Box(sim.Display)
			s.Powerups = []Entity{
				{X: box.X, Y: box.Y, Width: 80, Height: 80, Kind: KindPowerup},
				{X: box.X + 5, Y: box.Y, Width: 80, Height: 80, Kind: KindPowerup},
			}

			next := Advance(s, sim, noSpawn)

			if next.RemainingShoots != tt.expected {
				t.Errorf("RemainingShoots = %d, expected %d", next.RemainingShoots, tt.expected)
			}
			// Only one power-up is collected per step.
			if len(next.Powerups) != 1 {
				t.Errorf("len(Powerups) = %d, expected 1", len(next.Powerups))
			}
		})
	}
}

func TestAdvanceClampsShoots(t *testing.T) {
	sim := desktopSim()
	s := NewState(sim)
	s.RemainingShoots = -5

	next := Advance(s, sim, noSpawn)
	if next.RemainingShoots != 0 {
		t.Errorf("RemainingShoots = %d, expected 0", next.RemainingShoots)
	}

	s.RemainingShoots = 500
	next = Advance(s, sim, noSpawn)
	if next.RemainingShoots != sim.Tuning.MaxShoots {
		t.Errorf("RemainingShoots = %d, expected %d", next.RemainingShoots, sim.Tuning.MaxShoots)
	}
}

func TestAdvanceGravity(t *testing.T) {
	sim := desktopSim()
	s := NewState(sim)
	s.Player.Y = 100
	s.Player.VY = 0

	next := Advance(s, sim, noSpawn)
	if !approxEqual(next.Player.Y, 100) {
		t.Errorf("Y = %v, expected 100", next.Player.Y)
	}
	if !approxEqual(next.Player.VY, sim.Physics.Gravity) {
		t.Errorf("VY = %v, expected %v", next.Player.VY, sim.Physics.Gravity)
	}
	if !next.Player.IsJumping {
		t.Error("IsJumping = false, expected true above the rest line")
	}

	s.Player.VY = sim.Physics.MaxFallingSpeed
	next = Advance(s, sim, noSpawn)
	if next.Player.VY != sim.Physics.MaxFallingSpeed {
		t.Errorf("VY = %v, expected cap %v", next.Player.VY, sim.Physics.MaxFallingSpeed)
	}
}

func TestAdvanceLandsOnRestLine(t *testing.T) {
	sim := desktopSim()
	rest := sim.Display.RestY()
	s := NewState(sim)
	s.Player.Y = rest - 2
	s.Player.VY = 5
	s.Player.IsJumping = true

	next := Advance(s, sim, noSpawn)

	if next.Player.Y != rest {
		t.Errorf("Y = %v, expected %v", next.Player.Y, rest)
	}
	if next.Player.VY != 0 {
		t.Errorf("VY = %v, expected 0", next.Player.VY)
	}
	if next.Player.IsJumping {
		t.Error("IsJumping = true, expected false on the ground")
	}
}

func TestAdvanceHorizontalMovement(t *testing.T) {
	sim := desktopSim()
	speed := sim.Tuning.MoveSpeed
	maxX := sim.Display.MaxPlayerX()

	tests := []struct {
		name     string
		x        float64
		left     bool
		right    bool
		expected float64
	}{
		{"right", 100, false, true, 100 + speed},
		{"left", 100, true, false, 100 - speed},
		{"both cancel", 100, true, true, 100},
		{"clamped at left wall", 1, true, false, 0},
		{"clamped at right wall", maxX - 1, false, true, maxX},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(sim)
			s.Player.X = tt.x
			s.Player.MovingLeft = tt.left
			s.Player.MovingRight = tt.right

			next := Advance(s, sim, noSpawn)
			if !approxEqual(next.Player.X, tt.expected) {
				t.Errorf("X = %v, expected %v", next.Player.X, tt.expected)
			}
		})
	}
}

func TestAdvanceScrollsAndPrunes(t *testing.T) {
	sim := desktopSim()
	s := NewState(sim)
	s.Obstacles = []Entity{
		{X: 700, Y: 0, Width: 40, Height: 60, Kind: KindObstacle},
		{X: -39.5, Y: 0, Width: 40, Height: 60, Kind: KindObstacle},
	}
	s.Fires = []Entity{{X: -359.5, Y: 0, Width: 360, Height: 540, Kind: KindGreenTree}}
	s.WaterJets = []Entity{
		{X: 600, Y: 0, Width: 40, Height: 30, Kind: KindWater},
		{X: 1197, Y: 0, Width: 40, Height: 30, Kind: KindWater},
	}

	next := Advance(s, sim, noSpawn)

	if len(next.Obstacles) != 1 || !approxEqual(next.Obstacles[0].X, 699.2) {
		t.Errorf("Obstacles = %+v, expected one at x=699.2", next.Obstacles)
	}
	if len(next.Fires) != 0 {
		t.Errorf("len(Fires) = %d, expected 0", len(next.Fires))
	}
	if len(next.WaterJets) != 1 || !approxEqual(next.WaterJets[0].X, 605) {
		t.Errorf("WaterJets = %+v, expected one at x=605", next.WaterJets)
	}
}

func TestAdvanceDoesNotMutateInput(t *testing.T) {
	sim := desktopSim()
	s := NewState(sim)
	s.Obstacles = make([]Entity, 1, 8)
	s.Obstacles[0] = Entity{X: 700, Y: 0, Width: 40, Height: 60, Kind: KindObstacle}
	s.Fires = []Entity{{X: 800, Y: 0, Width: 360, Height: 540, Kind: KindFire}}

	_ = Advance(s, sim, fixedRand(0))

	if s.Obstacles[0].X != 700 {
		t.Errorf("input obstacle X = %v, expected 700", s.Obstacles[0].X)
	}
	if got := s.Obstacles[:2][1]; got != (Entity{}) {
		t.Errorf("spare capacity written: %+v", got)
	}
	if s.Fires[0].X != 800 {
		t.Errorf("input fire X = %v, expected 800", s.Fires[0].X)
	}
}

func TestAdvanceAddsElapsedTime(t *testing.T) {
	sim := desktopSim()
	s := NewState(sim)
	for i := 0; i < 60; i++ {
		s = Advance(s, sim, noSpawn)
	}
	if !approxEqual(s.ElapsedTime, 1) {
		t.Errorf("ElapsedTime = %v, expected 1", s.ElapsedTime)
	}
	if s.Score != 60 {
		t.Errorf("Score = %d, expected 60", s.Score)
	}
}

func TestAdvanceDeterministic(t *testing.T) {
	sim := desktopSim()
	run := func() State {
		rng := NewRand(42)
		s := NewState(sim)
		for i := 0; i < 5000 && !s.GameOver; i++ {
			if i%90 == 0 {
				s = Jump(s, sim)
			}
			if i%45 == 0 {
				s = SprayWater(s, sim)
			}
			s = Advance(s, sim, rng)
		}
		return s
	}

	a, b := run(), run()
	if a.Score != b.Score || a.ElapsedTime != b.ElapsedTime || a.GameOver != b.GameOver {
		t.Errorf("runs diverged: %d/%v/%v vs %d/%v/%v",
			a.Score, a.ElapsedTime, a.GameOver, b.Score, b.ElapsedTime, b.GameOver)
	}
	if a.EntityCount() != b.EntityCount() {
		t.Errorf("EntityCount = %d vs %d", a.EntityCount(), b.EntityCount())
	}
}

func TestAdvanceInvariantsHold(t *testing.T) {
	for _, tc := range []struct {
		name string
		seed int64
	}{
		{"seed 1", 1},
		{"seed 7", 7},
		{"seed 99", 99},
	} {
		t.Run(tc.name, func(t *testing.T) {
			sim := desktopSim()
			rng := NewRand(tc.seed)
			s := NewState(sim)
			lastScore := s.Score
			for i := 0; i < 20000 && !s.GameOver; i++ {
				if i%30 == 0 {
					s = SprayWater(s, sim)
				}
				if i%70 == 0 {
					s = Jump(s, sim)
				}
				s = Advance(s, sim, rng)

				if err := s.Validate(sim); err != nil {
					t.Fatalf("step %d: %v", i, err)
				}
				if s.Score < lastScore {
					t.Fatalf("step %d: score dropped from %d to %d", i, lastScore, s.Score)
				}
				lastScore = s.Score
				checkBounds(t, i, s, sim.Display.CanvasWidth)
			}
		})
	}
}

func checkBounds(t *testing.T, step int, s State, canvasWidth float64) {
	t.Helper()
	for _, group := range [][]Entity{s.Obstacles, s.Fires, s.WaterJets, s.Powerups} {
		for _, e := range group {
			if e.X < -e.Width || e.X > canvasWidth+e.Width {
				t.Fatalf("step %d: %s at x=%v out of bounds", step, e.Kind, e.X)
			}
		}
	}
}
