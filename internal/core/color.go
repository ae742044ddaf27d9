package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color style.
type Color uint8

// Palette used by the flappy renderer.
const (
	ColorDefault Color = iota
	ColorSky           // Distant background skyline
	ColorCloud
	ColorBird
	ColorBirdWing
	ColorPipe
	ColorPipeEdge
	ColorGround
	ColorGrass
	ColorText
	ColorScore
	ColorHighlight // New high score, selected button
	ColorFlash
	ColorBonus
	ColorDim
)

// String returns the palette name of the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorSky:
		return "sky"
	case ColorCloud:
		return "cloud"
	case ColorBird:
		return "bird"
	case ColorBirdWing:
		return "wing"
	case ColorPipe:
		return "pipe"
	case ColorPipeEdge:
		return "pipe-edge"
	case ColorGround:
		return "ground"
	case ColorGrass:
		return "grass"
	case ColorText:
		return "text"
	case ColorScore:
		return "score"
	case ColorHighlight:
		return "highlight"
	case ColorFlash:
		return "flash"
	case ColorBonus:
		return "bonus"
	case ColorDim:
		return "dim"
	default:
		return "unknown"
	}
}
