package config

import "math"

// Scheduler derives game speed and obstacle density from elapsed time.
type Scheduler struct {
	tuning  Tuning
	physics Physics
}

// NewScheduler creates a scheduler for the given simulation snapshot.
func NewScheduler(sim Sim) Scheduler {
	return Scheduler{tuning: sim.Tuning, physics: sim.Physics}
}

// Speed returns the scroll speed after elapsed seconds.
// The ramp is linear and unbounded unless MaxGameSpeed is set.
func (s Scheduler) Speed(elapsed float64) float64 {
	interval := s.tuning.DifficultyInterval
	if interval <= 0 {
		interval = 1 // Prevent division by zero
	}
	speed := s.tuning.InitialGameSpeed + (elapsed/interval)*s.physics.SpeedIncrement
	if s.tuning.MaxGameSpeed > 0 {
		speed = math.Min(speed, s.tuning.MaxGameSpeed)
	}
	return speed
}

// ObstacleRate returns the per-step obstacle spawn probability at speed.
func (s Scheduler) ObstacleRate(speed float64) float64 {
	return s.tuning.ObstacleBaseRate + (speed-s.tuning.InitialGameSpeed)*s.physics.ObstacleIncrement
}

// Level returns how many difficulty intervals have passed, for display.
func (s Scheduler) Level(elapsed float64) int {
	if s.tuning.DifficultyInterval <= 0 {
		return 0
	}
	return int(elapsed / s.tuning.DifficultyInterval)
}
