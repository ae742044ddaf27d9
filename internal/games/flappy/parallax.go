package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Layer is a horizontally tiled strip drawn with two copies of one tile.
type Layer struct {
	Width   float64    // Tile width
	Offsets [2]float64 // Left edges of both tiles
}

// Scroll moves both tiles left by dx. A tile that is fully off-screen jumps
// to the right of its partner.
func (l *Layer) Scroll(dx float64) {
	l.Offsets[0] -= dx
	l.Offsets[1] -= dx
	if l.Offsets[0] <= -l.Width {
		l.Offsets[0] = l.Offsets[1] + l.Width
	}
	if l.Offsets[1] <= -l.Width {
		l.Offsets[1] = l.Offsets[0] + l.Width
	}
}

// Reset puts the tiles at {0, Width}.
func (l *Layer) Reset() {
	l.Offsets = [2]float64{0, l.Width}
}

// Parallax scrolls the background and ground layers with the pipes.
// The ground moves with the pipes, the background slower.
type Parallax struct {
	Background Layer
	Ground     Layer
	cfg        config.ParallaxConfig
}

// NewParallax creates both layers at their reset offsets.
func NewParallax(cfg config.ParallaxConfig, assets Assets) *Parallax {
	p := &Parallax{
		Background: Layer{Width: assets.BackgroundWidth},
		Ground:     Layer{Width: assets.GroundWidth},
		cfg:        cfg,
	}
	p.Reset()
	return p
}

// Advance scrolls both layers for one tick at the given obstacle speed.
func (p *Parallax) Advance(speed float64) {
	p.Background.Scroll(p.BackgroundSpeed(speed))
	p.Ground.Scroll(speed)
}

// BackgroundSpeed returns the background scroll speed for an obstacle speed.
func (p *Parallax) BackgroundSpeed(speed float64) float64 {
	return math.Max(p.cfg.MinBackgroundSpeed, speed*p.cfg.BackgroundFactor)
}

// Reset restores both layers.
func (p *Parallax) Reset() {
	p.Background.Reset()
	p.Ground.Reset()
}
