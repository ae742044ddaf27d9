package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Phase Phase

	FieldW, FieldH float64
	GroundY        float64 // Top of the ground strip

	Avatar   core.Rect
	Rotation float64
	Frame    int

	Pipes      []PipePair
	Background Layer
	Ground     Layer
	Speed      float64

	Score        int
	HighScore    int
	NewHighScore bool

	Bonus *core.Rect // Nil outside the bonus event
	Flash bool

	CreditsOffset float64 // Y of the first credits line
	CreditsLines  []string

	ResumeButton core.Rect // Clickable while paused
}

// Snapshot captures the current render state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:         g.phase,
		FieldW:        g.cfg.Field.Width,
		FieldH:        g.cfg.Field.Height,
		GroundY:       g.groundY(),
		Avatar:        g.avatar.Rect(),
		Rotation:      g.avatar.Rotation,
		Frame:         g.avatar.Frame,
		Pipes:         append([]PipePair(nil), g.stream.Pairs()...),
		Background:    g.parallax.Background,
		Ground:        g.parallax.Ground,
		Speed:         g.stream.Speed(),
		Score:         g.score,
		HighScore:     g.highScore,
		NewHighScore:  g.newHighScore,
		Flash:         g.FlashActive(),
		CreditsOffset: g.creditsOffset,
		CreditsLines:  g.cfg.Session.CreditsLines,
		ResumeButton:  g.ResumeButton(),
	}
	if g.bonus != nil {
		b := *g.bonus
		snap.Bonus = &b
	}
	return snap
}
