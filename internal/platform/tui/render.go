package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/firerun/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorFlame:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	core.ColorEmber:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorWater:   lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
	core.ColorPowerup: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
	core.ColorLeaf:    lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	core.ColorAsh:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorGround:  lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorPlayer:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	core.ColorHUD:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorDim:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
