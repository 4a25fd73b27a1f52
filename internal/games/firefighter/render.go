package firefighter

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/firerun/internal/config"
	"github.com/vovakirdan/firerun/internal/core"
)

// Visual characters for rendering
const (
	ObstacleChar    = '▲'
	FireTreeChar    = '♠'
	GreenTreeChar   = '♣'
	BurnedTreeChar  = '▓'
	PixelBurnedChar = '▚'
	TrunkChar       = '║'
	PowerupChar     = '◆'
	JetChar         = '≈'
	PlayerChar      = '█'
	HelmetChar      = '▀'
	GroundTopChar   = '═'
	GroundChar      = '░'
)

const waterBarWidth = 10

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	s := g.state

	// Trees first, they are scenery behind everything else.
	for _, t := range s.Fires {
		g.drawTree(dst, t)
	}
	for _, o := range s.Obstacles {
		g.drawEntity(dst, o, ObstacleChar, core.ColorFlame)
	}
	for _, p := range s.Powerups {
		g.drawEntity(dst, p, PowerupChar, core.ColorPowerup)
	}
	g.drawPlayer(dst)
	for _, j := range s.WaterJets {
		g.drawEntity(dst, j, JetChar, core.ColorWater)
	}

	g.drawGround(dst)
	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if s.GameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", s.Score/100))
	}
}

// cells converts a canvas-pixel box to the terminal cells it covers.
func (g *Game) cells(x, y, w, h float64) (col, row, cols, rows int) {
	cw, ch := g.cfg.Host.CellWidth, g.cfg.Host.CellHeight
	x0 := int(math.Floor(x / cw))
	y0 := int(math.Floor(y / ch))
	x1 := int(math.Ceil((x + w) / cw))
	y1 := int(math.Ceil((y + h) / ch))
	return x0, y0, max(1, x1-x0), max(1, y1-y0)
}

func (g *Game) drawEntity(dst *core.Screen, e Entity, r rune, c core.Color) {
	col, row, cols, rows := g.cells(e.X, e.Y, e.Width, e.Height)
	dst.FillRect(col, row, cols, rows, r, c)
}

// drawTree renders a checkered canopy over a narrow trunk.
func (g *Game) drawTree(dst *core.Screen, t Entity) {
	var r rune
	var c core.Color
	switch t.Kind {
	case KindGreenTree:
		r, c = GreenTreeChar, core.ColorLeaf
	case KindBurnedTree:
		r, c = BurnedTreeChar, core.ColorAsh
	case KindPixelBurnedTree:
		r, c = PixelBurnedChar, core.ColorAsh
	case KindObstacle:
		r, c = ObstacleChar, core.ColorFlame
	default:
		r, c = FireTreeChar, core.ColorEmber
	}

	col, row, cols, rows := g.cells(t.X, t.Y, t.Width, t.Height)
	canopy := max(1, rows*2/3)
	for dy := 0; dy < canopy; dy++ {
		// Narrow the crown toward the top.
		inset := (canopy - dy - 1) * cols / (3 * canopy)
		for dx := inset; dx < cols-inset; dx++ {
			if (dx+dy)%2 == 0 {
				dst.SetColored(col+dx, row+dy, r, c)
			}
		}
	}

	trunkW := max(1, cols/6)
	trunkX := col + (cols-trunkW)/2
	dst.FillRect(trunkX, row+canopy, trunkW, rows-canopy, TrunkChar, c)
}

func (g *Game) drawPlayer(dst *core.Screen) {
	p := g.state.Player
	d := g.sim.Display
	col, row, cols, rows := g.cells(p.X, p.Y, d.Player.Width, d.Player.Height)

	dst.FillRect(col, row, cols, rows, PlayerChar, core.ColorPlayer)
	dst.DrawHLine(col, row, cols, HelmetChar, core.ColorFlame)
}

func (g *Game) drawGround(dst *core.Screen) {
	row := int(math.Floor(g.sim.Display.GroundLine() / g.cfg.Host.CellHeight))
	dst.DrawHLine(0, row, dst.Width(), GroundTopChar, core.ColorGround)
	dst.FillRect(0, row+1, dst.Width(), dst.Height()-row-1, GroundChar, core.ColorGround)

	hint := " ←→ move  ↑ jump  space spray  e clear  p pause  q quit "
	if row+1 < dst.Height() && utf8.RuneCountInString(hint) <= dst.Width() {
		dst.DrawTextColored(0, dst.Height()-1, hint, core.ColorDim)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.state

	scoreText := fmt.Sprintf(" Score: %d ", s.Score/100)
	dst.DrawTextColored(1, 0, scoreText, core.ColorHUD)

	x := 1 + utf8.RuneCountInString(scoreText) + 1
	dst.DrawTextColored(x, 0, " Water ", core.ColorHUD)
	x += len(" Water ")
	dst.DrawTextColored(x, 0, waterBar(s.RemainingShoots, g.sim.Tuning.MaxShoots), core.ColorWater)
	x += waterBarWidth + 2
	dst.DrawTextColored(x, 0, fmt.Sprintf(" %d ", s.RemainingShoots), core.ColorHUD)

	sched := config.NewScheduler(g.sim)
	levelText := fmt.Sprintf(" Lv %d  Spd %.2f ", sched.Level(s.ElapsedTime)+1, sched.Speed(s.ElapsedTime))
	if s.FireDanger > 0 {
		levelText = fmt.Sprintf(" Danger %.0f ", s.FireDanger) + levelText
	}
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(levelText)-1, 0, levelText, core.ColorEmber)
}

// waterBar renders the remaining water as a bracketed gauge.
func waterBar(shoots, maxShoots int) string {
	filled := 0
	if maxShoots > 0 {
		filled = core.Clamp(shoots*waterBarWidth/maxShoots, 0, waterBarWidth)
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("·", waterBarWidth-filled) + "]"
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := utf8.RuneCountInString(title)
	subtitleLen := utf8.RuneCountInString(subtitle)

	// Calculate box dimensions
	boxW := max(titleLen, subtitleLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawTextColored(boxX+(boxW-titleLen)/2, boxY+1, title, core.ColorHUD)
	dst.DrawText(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle)
}
