package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Glyphs used to draw the field.
const (
	PipeChar      = '█'
	PipeCapTop    = '▀'
	PipeCapBottom = '▄'
	BirdChar      = '█'
	BonusChar     = '$'
	GrassChar     = '▀'
	FlashChar     = '█'
	SkylineChar   = '▒'
)

// Wing glyphs indexed by animation frame.
var wingFrames = []rune{'▀', '━', '▄'}

// building is one block of the background skyline, in fractions of the tile
// width and of the playable height.
type building struct {
	from, to, height float64
}

var skyline = []building{
	{0.02, 0.12, 0.18},
	{0.12, 0.20, 0.28},
	{0.24, 0.31, 0.12},
	{0.31, 0.42, 0.22},
	{0.48, 0.55, 0.32},
	{0.55, 0.66, 0.16},
	{0.70, 0.78, 0.26},
	{0.82, 0.95, 0.14},
}

// cloud positions in tile fractions.
var clouds = []struct{ x, y float64 }{
	{0.10, 0.10},
	{0.55, 0.22},
	{0.80, 0.08},
}

const (
	cloudText        = "≈≈≈"
	creditsLineSpace = 40.0 // World units between credit lines
)

// Draw renders a snapshot onto the screen through the viewport.
func Draw(dst *core.Screen, snap flappy.Snapshot, vp Viewport) {
	dst.Clear()

	if snap.Phase == flappy.PhaseCredits {
		drawCredits(dst, snap, vp)
		return
	}

	drawBackground(dst, snap, vp)
	for _, p := range snap.Pipes {
		drawPipe(dst, p, vp)
	}
	drawGround(dst, snap, vp)
	drawBird(dst, snap, vp)
	if snap.Bonus != nil {
		x, y, w, h := vp.CellRect(*snap.Bonus)
		dst.FillRect(x, y, w, h, BonusChar, core.ColorBonus)
	}

	switch snap.Phase {
	case flappy.PhaseStart:
		drawStart(dst, snap, vp)
	case flappy.PhasePlaying, flappy.PhaseBonus:
		drawHUD(dst, snap)
	case flappy.PhasePaused:
		drawHUD(dst, snap)
		drawPause(dst, snap, vp)
	case flappy.PhaseGameOver:
		drawGameOver(dst, snap, vp)
	}

	if snap.Flash {
		dst.FillRect(0, 0, vp.Cols, vp.Rows, FlashChar, core.ColorFlash)
	}
}

func drawBackground(dst *core.Screen, snap flappy.Snapshot, vp Viewport) {
	layer := snap.Background
	playable := snap.GroundY

	for _, offset := range layer.Offsets {
		for _, c := range clouds {
			x := vp.Col(offset + c.x*layer.Width)
			dst.DrawText(x, vp.Row(c.y*playable), cloudText, core.ColorCloud)
		}
		for _, b := range skyline {
			top := snap.GroundY - b.height*playable
			rect := core.NewRect(offset+b.from*layer.Width, top, (b.to-b.from)*layer.Width, snap.GroundY-top)
			x, y, w, h := vp.CellRect(rect)
			dst.FillRect(x, y, w, h, SkylineChar, core.ColorSky)
		}
	}
}

func drawPipe(dst *core.Screen, p flappy.PipePair, vp Viewport) {
	ux, uy, uw, uh := vp.CellRect(p.Upper())
	dst.FillRect(ux, uy, uw, uh, PipeChar, core.ColorPipe)
	if uh > 0 {
		dst.DrawHLine(ux, uy+uh-1, uw, PipeCapTop, core.ColorPipeEdge)
	}

	lx, ly, lw, lh := vp.CellRect(p.Lower())
	dst.FillRect(lx, ly, lw, lh, PipeChar, core.ColorPipe)
	if lh > 0 {
		dst.DrawHLine(lx, ly, lw, PipeCapBottom, core.ColorPipeEdge)
	}
}

// drawGround draws the grass line and a striped soil that scrolls with the
// ground layer.
func drawGround(dst *core.Screen, snap flappy.Snapshot, vp Viewport) {
	top := vp.Row(snap.GroundY)
	dst.DrawHLine(0, top, vp.Cols, GrassChar, core.ColorGrass)

	layer := snap.Ground
	stripe := layer.Width / 16
	for col := 0; col < vp.Cols; col++ {
		x := vp.ToWorld(col, 0).X
		u := math.Mod(x-layer.Offsets[0], layer.Width)
		if u < 0 {
			u += layer.Width
		}
		r := '░'
		if int(u/stripe)%2 == 0 {
			r = '▒'
		}
		for row := top + 1; row < vp.Rows; row++ {
			dst.SetColored(col, row, r, core.ColorGround)
		}
	}
}

func drawBird(dst *core.Screen, snap flappy.Snapshot, vp Viewport) {
	x, y, w, h := vp.CellRect(snap.Avatar)
	dst.FillRect(x, y, w, h, BirdChar, core.ColorBird)

	mid := y + h/2
	dst.SetColored(x, mid, wingFrames[snap.Frame%len(wingFrames)], core.ColorBirdWing)
	dst.SetColored(x+w, mid, beak(snap.Rotation), core.ColorHighlight)
}

// beak returns the nose glyph for a rotation in degrees.
func beak(rotation float64) rune {
	switch {
	case rotation >= 10:
		return '↗'
	case rotation <= -45:
		return '↘'
	default:
		return '→'
	}
}

func drawHUD(dst *core.Screen, snap flappy.Snapshot) {
	dst.DrawTextCentered(0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorScore)
	hi := fmt.Sprintf(" Hi: %d ", snap.HighScore)
	dst.DrawText(dst.Width()-len(hi)-1, 0, hi, core.ColorDim)
}

func drawStart(dst *core.Screen, snap flappy.Snapshot, vp Viewport) {
	y := vp.Rows / 3
	dst.DrawTextCentered(y, "F L A P P Y", core.ColorHighlight)
	dst.DrawTextCentered(y+2, "Press SPACE or ENTER to start", core.ColorText)
	if snap.HighScore > 0 {
		dst.DrawTextCentered(y+4, fmt.Sprintf("Best: %d", snap.HighScore), core.ColorScore)
	}
}

func drawPause(dst *core.Screen, snap flappy.Snapshot, vp Viewport) {
	x, y, w, h := vp.CellRect(snap.ResumeButton)
	w, h = max(w, 10), max(h, 3)

	dst.FillRect(x, y, w, h, ' ', core.ColorDefault)
	dst.DrawBox(x, y, w, h, core.ColorHighlight)
	label := "Resume"
	dst.DrawText(x+(w-len(label))/2, y+h/2, label, core.ColorText)

	dst.DrawTextCentered(y-2, "PAUSED", core.ColorText)
	dst.DrawTextCentered(y+h+1, "P/ESC or click to resume", core.ColorDim)
}

func drawGameOver(dst *core.Screen, snap flappy.Snapshot, vp Viewport) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Best: %d", snap.HighScore),
	}
	if snap.NewHighScore {
		lines = append(lines, "New High Score!")
	}
	lines = append(lines, "SPACE to restart")

	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 2
	boxX := (vp.Cols - boxW) / 2
	boxY := (vp.Rows - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorText)
	for i, l := range lines {
		c := core.ColorText
		switch {
		case i == 0:
			c = core.ColorFlash
		case l == "New High Score!":
			c = core.ColorHighlight
		}
		dst.DrawTextCentered(boxY+1+i, l, c)
	}
}

func drawCredits(dst *core.Screen, snap flappy.Snapshot, vp Viewport) {
	for i, line := range snap.CreditsLines {
		row := vp.Row(snap.CreditsOffset + float64(i)*creditsLineSpace)
		if row < 0 || row >= vp.Rows {
			continue
		}
		dst.DrawTextCentered(row, line, core.ColorText)
	}
}
