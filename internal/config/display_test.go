package config

import "testing"

func TestResolveReferenceCanvas(t *testing.T) {
	cfg := DefaultFirefighterConfig()
	sim := Resolve(cfg, 1200, 600, DeviceDesktop)
	d := sim.Display

	if d.GroundHeight != 100 {
		t.Errorf("GroundHeight = %v, expected 100", d.GroundHeight)
	}
	if d.Player != (Size{Width: 80, Height: 80}) {
		t.Errorf("Player = %+v, expected 80x80", d.Player)
	}
	if d.RestY() != 420 {
		t.Errorf("RestY() = %v, expected 420", d.RestY())
	}
	if d.PlayableHeight() != 500 {
		t.Errorf("PlayableHeight() = %v, expected 500", d.PlayableHeight())
	}
	if d.MaxPlayerX() != 1120 {
		t.Errorf("MaxPlayerX() = %v, expected 1120", d.MaxPlayerX())
	}
	if sim.Physics != cfg.Physics.Desktop {
		t.Error("desktop class should select the desktop table")
	}
}

func TestResolveScalesWithSmallerAxis(t *testing.T) {
	cfg := DefaultFirefighterConfig()
	// Width scale 0.5, height scale 1.0 -> common scale 0.5
	sim := Resolve(cfg, 600, 600, DeviceMobile)
	d := sim.Display

	if d.GroundHeight != 50 {
		t.Errorf("GroundHeight = %v, expected 50", d.GroundHeight)
	}
	if d.Obstacle != (Size{Width: 30, Height: 45}) {
		t.Errorf("Obstacle = %+v, expected 30x45", d.Obstacle)
	}
	if d.WaterJet != cfg.Display.WaterJet {
		t.Errorf("WaterJet = %+v, should stay unscaled", d.WaterJet)
	}
	if sim.Physics != cfg.Physics.Mobile {
		t.Error("mobile class should select the mobile table")
	}
}

func TestResolveRoundsSizes(t *testing.T) {
	cfg := DefaultFirefighterConfig()
	// scale = 800/1200 = 0.666..., 90*scale = 60, 80*scale = 53.33 -> 53
	sim := Resolve(cfg, 800, 480, DeviceDesktop)
	if sim.Display.Player.Width != 53 {
		t.Errorf("Player.Width = %v, expected 53", sim.Display.Player.Width)
	}
	if sim.Display.Obstacle.Height != 60 {
		t.Errorf("Obstacle.Height = %v, expected 60", sim.Display.Obstacle.Height)
	}
}

func TestClassifyDevice(t *testing.T) {
	cfg := DefaultFirefighterConfig()
	tests := []struct {
		width float64
		want  DeviceClass
	}{
		{320, DeviceMobile},
		{768, DeviceMobile},
		{769, DeviceDesktop},
		{1920, DeviceDesktop},
	}
	for _, tc := range tests {
		if got := ClassifyDevice(cfg, tc.width); got != tc.want {
			t.Errorf("ClassifyDevice(%v) = %q, expected %q", tc.width, got, tc.want)
		}
	}
}

func TestParseDeviceClass(t *testing.T) {
	if c, ok := ParseDeviceClass("mobile"); !ok || c != DeviceMobile {
		t.Errorf("ParseDeviceClass(mobile) = %q, %v", c, ok)
	}
	if _, ok := ParseDeviceClass("auto"); ok {
		t.Error("auto should not parse to a fixed class")
	}
}

func TestStepSeconds(t *testing.T) {
	sim := Resolve(DefaultFirefighterConfig(), 1200, 600, DeviceDesktop)
	if !approxEqual(sim.StepSeconds(), 1.0/60) {
		t.Errorf("StepSeconds() = %v, expected 1/60", sim.StepSeconds())
	}

	sim.Tuning.StepRate = 0
	if !approxEqual(sim.StepSeconds(), 1.0/60) {
		t.Errorf("StepSeconds() with zero rate = %v, expected 1/60 fallback", sim.StepSeconds())
	}
}
