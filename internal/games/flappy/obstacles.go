package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// PipePair is an upper and lower pipe sharing one horizontal position.
type PipePair struct {
	X           float64 // Left edge of both halves
	Width       float64
	UpperHeight float64 // Upper pipe spans [0, UpperHeight)
	Gap         float64
	LowerY      float64 // Top of the lower pipe
	LowerHeight float64 // Lower pipe ends at the ground
	Passed      bool    // Whether the pair has been scored
}

// Upper returns the collision rectangle of the upper pipe.
func (p PipePair) Upper() core.Rect {
	return core.NewRect(p.X, 0, p.Width, p.UpperHeight)
}

// Lower returns the collision rectangle of the lower pipe.
func (p PipePair) Lower() core.Rect {
	return core.NewRect(p.X, p.LowerY, p.Width, p.LowerHeight)
}

// Right returns the x-coordinate of the pair's right edge.
func (p PipePair) Right() float64 {
	return p.X + p.Width
}

// Stream generates, scrolls, scores and recycles pipe pairs.
// Pairs are kept in creation order, which is also left-to-right order.
type Stream struct {
	pairs      []PipePair
	rng        Random
	cfg        config.ObstacleConfig
	field      config.FieldConfig
	pipeWidth  float64
	difficulty *config.DifficultyManager
	speed      float64
	spacing    float64
}

// NewStream creates a stream holding its two initial pairs.
func NewStream(cfg config.ObstacleConfig, field config.FieldConfig, pipeWidth float64, rng Random) *Stream {
	s := &Stream{
		pairs:      make([]PipePair, 0, 8),
		rng:        rng,
		cfg:        cfg,
		field:      field,
		pipeWidth:  pipeWidth,
		difficulty: config.NewDifficultyManager(cfg),
	}
	s.Reset()
	return s
}

// Reset clears all pairs, restores base speed and spacing, and places two
// pairs ahead of the field separated by the base spacing.
func (s *Stream) Reset() {
	s.pairs = s.pairs[:0]
	s.speed = s.cfg.BaseSpeed
	s.spacing = s.difficulty.Spacing(s.speed)

	first := s.field.Width + s.cfg.InitialOffset
	s.pairs = append(s.pairs, s.newPair(first, 0), s.newPair(first+s.spacing, 0))
}

// Advance scrolls the stream by one tick at the speed for score.
// It returns the score delta and the number of pairs passed this tick; a pair
// counts once, the first tick its upper pipe's right edge is left of the
// avatar.
func (s *Stream) Advance(avatar core.Rect, score int) (delta, passed int) {
	s.speed = s.difficulty.Speed(score)
	s.spacing = s.difficulty.Spacing(s.speed)

	for i := range s.pairs {
		p := &s.pairs[i]
		p.X -= s.speed
		if !p.Passed && p.Upper().Right() < avatar.X {
			p.Passed = true
			passed++
			delta += s.cfg.ScoreIncrement
		}
	}

	// Drop pairs that scrolled off the left edge
	kept := s.pairs[:0]
	for _, p := range s.pairs {
		if p.Right() > 0 {
			kept = append(kept, p)
		}
	}
	s.pairs = kept

	if len(s.pairs) == 0 || s.pairs[len(s.pairs)-1].X < s.field.Width-s.spacing {
		s.pairs = append(s.pairs, s.newPair(s.field.Width, score))
	}

	return delta, passed
}

// newPair creates a pair at x with the gap for score and a random upper height.
func (s *Stream) newPair(x float64, score int) PipePair {
	gap := s.difficulty.GapSize(score)
	playable := s.field.PlayableHeight()

	minH := s.cfg.MinHeight
	maxH := playable - gap - float64(minH)
	if maxH <= float64(minH) {
		// Gap leaves no room: widen instead of failing
		maxH = float64(minH + s.cfg.DegenerateWidening)
	}
	upper := float64(minH + s.rng.Intn(int(maxH)-minH+1))

	return PipePair{
		X:           x,
		Width:       s.pipeWidth,
		UpperHeight: upper,
		Gap:         gap,
		LowerY:      upper + gap,
		LowerHeight: playable - upper - gap,
	}
}

// Pairs returns the active pairs, left to right.
func (s *Stream) Pairs() []PipePair {
	return s.pairs
}

// Rects returns the collision rectangles of every active pipe.
func (s *Stream) Rects() []core.Rect {
	rects := make([]core.Rect, 0, len(s.pairs)*2)
	for _, p := range s.pairs {
		rects = append(rects, p.Upper(), p.Lower())
	}
	return rects
}

// Speed returns the scroll speed used on the last tick.
func (s *Stream) Speed() float64 {
	return s.speed
}

// Spacing returns the spawn spacing used on the last tick.
func (s *Stream) Spacing() float64 {
	return s.spacing
}
