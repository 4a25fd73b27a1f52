package config

import (
	_ "embed"
)

//go:embed defaults/firefighter.yaml
var defaultFirefighterYAML []byte

// DefaultFirefighterConfig returns the built-in configuration.
// It mirrors defaults/firefighter.yaml and is the fallback when the
// embedded file cannot be parsed.
func DefaultFirefighterConfig() FirefighterConfig {
	return FirefighterConfig{
		Display: DisplayBase{
			BaseWidth:       1200,
			BaseHeight:      600,
			MobileMaxWidth:  768,
			GroundHeight:    100,
			Player:          Size{Width: 80, Height: 80},
			Obstacle:        Size{Width: 60, Height: 90},
			Fire:            Size{Width: 360, Height: 540},
			Powerup:         Size{Width: 120, Height: 120},
			BurnedTree:      Size{Width: 360, Height: 540},
			GreenTree:       Size{Width: 360, Height: 540},
			PixelBurnedTree: Size{Width: 360, Height: 540},
			WaterJet:        Size{Width: 40, Height: 30},
		},
		Physics: PhysicsTables{
			Desktop: Physics{
				Gravity:           0.1,
				MaxFallingSpeed:   10,
				SpeedIncrement:    0.06,
				ObstacleIncrement: 0.0001,
				StartX:            50,
			},
			Mobile: Physics{
				Gravity:           0.05,
				MaxFallingSpeed:   5,
				SpeedIncrement:    0.03,
				ObstacleIncrement: 0.00005,
				StartX:            100,
			},
		},
		Tuning: Tuning{
			MoveSpeed:          2.5,
			JumpGrace:          10,
			JumpHeightRatio:    0.75,
			MaxShoots:          100,
			PowerupShoots:      10,
			InitialGameSpeed:   1.0,
			DifficultyInterval: 20,
			MaxGameSpeed:       0,
			ObstacleBaseRate:   0.001,
			ScrollFactor:       0.8,
			JetSpeedFactor:     5,
			StepRate:           60,
			StepPoints:         1,
			ExtinguishPoints:   15,
			DangerPerFire:      3,
		},
		Spawn: SpawnRates{
			BurnedTree:       0.0015,
			PixelBurnedShare: 0.5,
			GreenTree:        0.003,
			Powerup:          0.0006,
		},
		Host: HostConfig{
			CellWidth:     10,
			CellHeight:    20,
			MoveHoldTicks: 12,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFirefighterYAML
}
