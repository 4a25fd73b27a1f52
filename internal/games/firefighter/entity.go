package firefighter

import "github.com/vovakirdan/firerun/internal/core"

// Kind is an entity archetype.
type Kind uint8

const (
	KindObstacle Kind = iota
	KindFire
	KindWater
	KindPowerup
	KindBurnedTree
	KindGreenTree
	KindPixelBurnedTree
)

var kindNames = [...]string{
	KindObstacle:        "obstacle",
	KindFire:            "fire",
	KindWater:           "water",
	KindPowerup:         "powerup",
	KindBurnedTree:      "burned_tree",
	KindGreenTree:       "green_tree",
	KindPixelBurnedTree: "pixel_burned_tree",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Extinguishable reports whether water puts this kind out.
// Only burning obstacles qualify; trees and power-ups never do.
func (k Kind) Extinguishable() bool {
	return k == KindObstacle
}

// Entity is a positioned, sized game object other than the player.
// Entities are values: the engine builds new ones instead of mutating.
type Entity struct {
	X, Y          float64
	Width, Height float64
	Kind          Kind
}

// Box returns the entity's bounding box.
func (e Entity) Box() core.Rect {
	return core.NewRect(e.X, e.Y, e.Width, e.Height)
}

// Shifted returns a copy moved horizontally by dx.
func (e Entity) Shifted(dx float64) Entity {
	e.X += dx
	return e
}

// Intersects reports whether two entities overlap.
func Intersects(a, b Entity) bool {
	return a.Box().Intersects(b.Box())
}

// FirstCollision returns the index of the first entity, in slice order,
// whose box overlaps box.
func FirstCollision(box core.Rect, entities []Entity) (int, bool) {
	for i, e := range entities {
		if box.Intersects(e.Box()) {
			return i, true
		}
	}
	return -1, false
}
