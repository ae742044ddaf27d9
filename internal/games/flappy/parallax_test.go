package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestLayerWrap(t *testing.T) {
	l := Layer{Width: 400}
	l.Reset()

	for i := 0; i < 133; i++ {
		l.Scroll(3)
	}
	// 133 * 3 = 399, first tile still partly visible
	if l.Offsets[0] != -399 || l.Offsets[1] != 1 {
		t.Fatalf("Offsets = %v, expected [-399 1]", l.Offsets)
	}

	l.Scroll(3)
	// First tile is fully off-screen and jumps behind its partner
	if l.Offsets[1] != -2 || l.Offsets[0] != 398 {
		t.Errorf("Offsets = %v, expected [398 -2]", l.Offsets)
	}
}

func TestLayerTilesStayAdjacent(t *testing.T) {
	l := Layer{Width: 400}
	l.Reset()

	for i := 0; i < 5000; i++ {
		l.Scroll(7.5)
		d := l.Offsets[1] - l.Offsets[0]
		if d != 400 && d != -400 {
			t.Fatalf("tick %d: tiles %v apart, expected one tile width", i, d)
		}
	}
}

func TestParallaxSpeeds(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	p := NewParallax(cfg.Parallax, DefaultAssets(cfg))

	if got := p.BackgroundSpeed(3); got != 1 {
		t.Errorf("BackgroundSpeed(3) = %v, expected minimum 1", got)
	}
	if got := p.BackgroundSpeed(5); got != 1.5 {
		t.Errorf("BackgroundSpeed(5) = %v, expected 1.5", got)
	}

	p.Advance(5)
	if p.Background.Offsets[0] != -1.5 {
		t.Errorf("background offset = %v, expected -1.5", p.Background.Offsets[0])
	}
	if p.Ground.Offsets[0] != -5 {
		t.Errorf("ground offset = %v, expected -5", p.Ground.Offsets[0])
	}

	p.Reset()
	if p.Background.Offsets != [2]float64{0, 400} || p.Ground.Offsets != [2]float64{0, 400} {
		t.Errorf("Reset offsets: bg=%v ground=%v", p.Background.Offsets, p.Ground.Offsets)
	}
}
