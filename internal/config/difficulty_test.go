package config

import "testing"

func TestSchedulerSpeed(t *testing.T) {
	sim := Resolve(DefaultFirefighterConfig(), 1200, 600, DeviceDesktop)
	s := NewScheduler(sim)

	tests := []struct {
		elapsed float64
		want    float64
	}{
		{0, 1.0},
		{10, 1.03},
		{20, 1.06},
		{200, 1.6},
		{20000, 61.0}, // no cap by default
	}
	for _, tc := range tests {
		if got := s.Speed(tc.elapsed); !approxEqual(got, tc.want) {
			t.Errorf("Speed(%v) = %v, expected %v", tc.elapsed, got, tc.want)
		}
	}
}

func TestSchedulerSpeedCap(t *testing.T) {
	sim := Resolve(DefaultFirefighterConfig(), 1200, 600, DeviceDesktop)
	sim.Tuning.MaxGameSpeed = 2.5
	s := NewScheduler(sim)

	if got := s.Speed(100000); got != 2.5 {
		t.Errorf("capped Speed = %v, expected 2.5", got)
	}
	if got := s.Speed(0); got != 1.0 {
		t.Errorf("Speed(0) = %v, expected 1.0 below the cap", got)
	}
}

func TestSchedulerMobileRamp(t *testing.T) {
	sim := Resolve(DefaultFirefighterConfig(), 700, 400, DeviceMobile)
	s := NewScheduler(sim)

	if got := s.Speed(20); !approxEqual(got, 1.03) {
		t.Errorf("mobile Speed(20) = %v, expected 1.03", got)
	}
	if got := s.ObstacleRate(2.0); !approxEqual(got, 0.00105) {
		t.Errorf("mobile ObstacleRate(2.0) = %v, expected 0.00105", got)
	}
}

func TestSchedulerObstacleRate(t *testing.T) {
	sim := Resolve(DefaultFirefighterConfig(), 1200, 600, DeviceDesktop)
	s := NewScheduler(sim)

	if got := s.ObstacleRate(1.0); !approxEqual(got, 0.001) {
		t.Errorf("ObstacleRate(initial) = %v, expected base rate 0.001", got)
	}
	if got := s.ObstacleRate(3.0); !approxEqual(got, 0.0012) {
		t.Errorf("ObstacleRate(3.0) = %v, expected 0.0012", got)
	}
}

func TestSchedulerLevel(t *testing.T) {
	sim := Resolve(DefaultFirefighterConfig(), 1200, 600, DeviceDesktop)
	s := NewScheduler(sim)

	if s.Level(19.9) != 0 || s.Level(20) != 1 || s.Level(65) != 3 {
		t.Errorf("Level() boundaries wrong: %d %d %d", s.Level(19.9), s.Level(20), s.Level(65))
	}
}
