package tui

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Viewport maps world coordinates of the play field onto terminal cells.
// Both axes are scaled independently so the field fills the drawing area.
type Viewport struct {
	Cols, Rows     int
	FieldW, FieldH float64
}

// NewViewport creates a viewport for a field drawn into cols x rows cells.
func NewViewport(fieldW, fieldH float64, cols, rows int) Viewport {
	return Viewport{
		Cols:   max(cols, 1),
		Rows:   max(rows, 1),
		FieldW: fieldW,
		FieldH: fieldH,
	}
}

func (v Viewport) scaleX() float64 { return float64(v.Cols) / v.FieldW }
func (v Viewport) scaleY() float64 { return float64(v.Rows) / v.FieldH }

// Col returns the cell column holding world x.
func (v Viewport) Col(x float64) int {
	return int(math.Floor(x * v.scaleX()))
}

// Row returns the cell row holding world y.
func (v Viewport) Row(y float64) int {
	return int(math.Floor(y * v.scaleY()))
}

// CellRect returns the cells covered by a world rectangle.
// Anything with a positive size covers at least one cell.
func (v Viewport) CellRect(r core.Rect) (x, y, w, h int) {
	x, y = v.Col(r.X), v.Row(r.Y)
	w = max(v.Col(r.Right())-x, 1)
	h = max(v.Row(r.Bottom())-y, 1)
	if r.W <= 0 {
		w = 0
	}
	if r.H <= 0 {
		h = 0
	}
	return x, y, w, h
}

// ToWorld returns the world position at the centre of a cell.
func (v Viewport) ToWorld(col, row int) core.Point {
	return core.Point{
		X: (float64(col) + 0.5) / v.scaleX(),
		Y: (float64(row) + 0.5) / v.scaleY(),
	}
}

// Contains reports whether the cell lies inside the viewport.
func (v Viewport) Contains(col, row int) bool {
	return col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
}
