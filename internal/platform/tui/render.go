package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// colorStyles maps the palette to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorSky:       lipgloss.NewStyle().Foreground(lipgloss.Color("24")),
	core.ColorCloud:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	core.ColorBird:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	core.ColorBirdWing:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	core.ColorPipe:      lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	core.ColorPipeEdge:  lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
	core.ColorGround:    lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
	core.ColorGrass:     lipgloss.NewStyle().Foreground(lipgloss.Color("112")),
	core.ColorText:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorScore:     lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorHighlight: lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	core.ColorFlash:     lipgloss.NewStyle().Foreground(lipgloss.Color("231")),
	core.ColorBonus:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	core.ColorDim:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
