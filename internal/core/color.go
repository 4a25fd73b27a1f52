package core

// Color is a semantic foreground color for a screen cell.
// The platform layer decides how each one looks in the terminal.
type Color uint8

const (
	ColorDefault Color = iota
	ColorFlame         // burning obstacles
	ColorEmber         // fire trees, danger readouts
	ColorWater         // jets and the water bar
	ColorPowerup       // extinguisher refills
	ColorLeaf          // green trees
	ColorAsh           // burned trees
	ColorGround        // ground line
	ColorPlayer        // firefighter
	ColorHUD           // score and labels
	ColorDim           // hints and help text
)
