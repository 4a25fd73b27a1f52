package config

import "math"

// DeviceClass selects one of the physics tables.
type DeviceClass string

const (
	DeviceDesktop DeviceClass = "desktop"
	DeviceMobile  DeviceClass = "mobile"
)

// ParseDeviceClass maps a CLI string to a device class. "auto" and unknown
// values return ok=false so the caller can classify by canvas width.
func ParseDeviceClass(s string) (DeviceClass, bool) {
	switch c := DeviceClass(s); c {
	case DeviceDesktop, DeviceMobile:
		return c, true
	default:
		return "", false
	}
}

// ClassifyDevice picks the device class from a canvas width.
func ClassifyDevice(cfg FirefighterConfig, canvasWidth float64) DeviceClass {
	if canvasWidth <= cfg.Display.MobileMaxWidth {
		return DeviceMobile
	}
	return DeviceDesktop
}

// Table returns the physics table for a device class.
func (t PhysicsTables) Table(class DeviceClass) Physics {
	if class == DeviceMobile {
		return t.Mobile
	}
	return t.Desktop
}

// Display is the canvas and every entity size at the current scale.
type Display struct {
	CanvasWidth  float64
	CanvasHeight float64
	GroundHeight float64

	Player          Size
	Obstacle        Size
	Fire            Size
	Powerup         Size
	BurnedTree      Size
	GreenTree       Size
	PixelBurnedTree Size
	WaterJet        Size
}

// GroundLine is the y of the ground surface.
func (d Display) GroundLine() float64 {
	return d.CanvasHeight - d.GroundHeight
}

// RestY is the player's y when standing on the ground.
func (d Display) RestY() float64 {
	return d.GroundLine() - d.Player.Height
}

// PlayableHeight is the canvas height above the ground.
func (d Display) PlayableHeight() float64 {
	return d.CanvasHeight - d.GroundHeight
}

// MaxPlayerX is the right-most x the player may occupy.
func (d Display) MaxPlayerX() float64 {
	return d.CanvasWidth - d.Player.Width
}

// Sim is the immutable snapshot one simulation step reads. Hosts build a
// new one with Resolve whenever the canvas changes; the engine never
// modifies it.
type Sim struct {
	Class   DeviceClass
	Display Display
	Physics Physics
	Tuning  Tuning
	Spawn   SpawnRates
}

// StepSeconds is the simulated time covered by one step.
func (s Sim) StepSeconds() float64 {
	if s.Tuning.StepRate <= 0 {
		return 1.0 / 60
	}
	return 1 / s.Tuning.StepRate
}

// Resolve scales the configured sizes to a canvas and picks the physics
// table for class. Sizes use the common scale min(w/baseW, h/baseH),
// rounded to whole pixels; the water jet keeps its configured size.
func Resolve(cfg FirefighterConfig, canvasWidth, canvasHeight float64, class DeviceClass) Sim {
	base := cfg.Display
	scale := 1.0
	if base.BaseWidth > 0 && base.BaseHeight > 0 {
		scale = math.Min(canvasWidth/base.BaseWidth, canvasHeight/base.BaseHeight)
	}

	scaled := func(sz Size) Size {
		return Size{
			Width:  math.Round(sz.Width * scale),
			Height: math.Round(sz.Height * scale),
		}
	}

	return Sim{
		Class: class,
		Display: Display{
			CanvasWidth:     canvasWidth,
			CanvasHeight:    canvasHeight,
			GroundHeight:    math.Round(base.GroundHeight * scale),
			Player:          scaled(base.Player),
			Obstacle:        scaled(base.Obstacle),
			Fire:            scaled(base.Fire),
			Powerup:         scaled(base.Powerup),
			BurnedTree:      scaled(base.BurnedTree),
			GreenTree:       scaled(base.GreenTree),
			PixelBurnedTree: scaled(base.PixelBurnedTree),
			WaterJet:        base.WaterJet,
		},
		Physics: cfg.Physics.Table(class),
		Tuning:  cfg.Tuning,
		Spawn:   cfg.Spawn,
	}
}
