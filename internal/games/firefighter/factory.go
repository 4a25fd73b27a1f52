package firefighter

import "github.com/vovakirdan/firerun/internal/config"

// grounded places an entity of the given size on the ground line at the
// right edge of the canvas.
func grounded(d config.Display, size config.Size, kind Kind) Entity {
	return Entity{
		X:      d.CanvasWidth,
		Y:      d.GroundLine() - size.Height,
		Width:  size.Width,
		Height: size.Height,
		Kind:   kind,
	}
}

// NewObstacle creates a burning obstacle entering from the right.
func NewObstacle(d config.Display) Entity {
	return grounded(d, d.Obstacle, KindObstacle)
}

// NewFire creates a fire tree entering from the right.
func NewFire(d config.Display) Entity {
	return grounded(d, d.Fire, KindFire)
}

// NewBurnedTree creates a burned tree entering from the right.
func NewBurnedTree(d config.Display) Entity {
	return grounded(d, d.BurnedTree, KindBurnedTree)
}

// NewGreenTree creates a green tree entering from the right.
func NewGreenTree(d config.Display) Entity {
	return grounded(d, d.GreenTree, KindGreenTree)
}

// NewPixelBurnedTree creates a pixel-art burned tree entering from the right.
func NewPixelBurnedTree(d config.Display) Entity {
	return grounded(d, d.PixelBurnedTree, KindPixelBurnedTree)
}

// NewPowerup creates a water refill entering from the right, floating at a
// random height between mid-canvas and just above the ground.
func NewPowerup(d config.Display, rng Rand) Entity {
	minY := d.CanvasHeight / 2
	maxY := d.GroundLine() - d.Powerup.Height
	return Entity{
		X:      d.CanvasWidth,
		Y:      minY + rng.Float64()*(maxY-minY),
		Width:  d.Powerup.Width,
		Height: d.Powerup.Height,
		Kind:   KindPowerup,
	}
}

// NewWaterJet creates a jet leaving the player's leading edge at half height.
func NewWaterJet(p Player, d config.Display) Entity {
	return Entity{
		X:      p.X + d.Player.Width,
		Y:      p.Y + d.Player.Height/2 - d.WaterJet.Height/2,
		Width:  d.WaterJet.Width,
		Height: d.WaterJet.Height,
		Kind:   KindWater,
	}
}
