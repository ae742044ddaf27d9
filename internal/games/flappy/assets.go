package flappy

import "github.com/vovakirdan/tui-flappy/internal/config"

// Assets carries the dimensions of every loaded asset the simulation needs.
// The asset loader fills it in; the game never deals with files.
type Assets struct {
	AvatarW, AvatarH float64
	Frames           int // Avatar animation frames, at least 1
	PipeWidth        float64
	BackgroundWidth  float64 // Width of one background tile
	GroundWidth      float64 // Width of one ground tile
	BonusW, BonusH   float64
}

// DefaultAssets returns the asset dimensions described by cfg.
func DefaultAssets(cfg config.FlappyConfig) Assets {
	return Assets{
		AvatarW:         cfg.Avatar.Width,
		AvatarH:         cfg.Avatar.Height,
		Frames:          cfg.Avatar.Frames,
		PipeWidth:       cfg.Obstacles.PipeWidth,
		BackgroundWidth: cfg.Parallax.BackgroundWidth,
		GroundWidth:     cfg.Parallax.GroundWidth,
		BonusW:          cfg.Bonus.Width,
		BonusH:          cfg.Bonus.Height,
	}
}

// normalized replaces unusable values with the ones from cfg.
func (a Assets) normalized(cfg config.FlappyConfig) Assets {
	def := DefaultAssets(cfg)
	if a.AvatarW <= 0 || a.AvatarH <= 0 {
		a.AvatarW, a.AvatarH = def.AvatarW, def.AvatarH
	}
	if a.Frames < 1 {
		a.Frames = 1
	}
	if a.PipeWidth <= 0 {
		a.PipeWidth = def.PipeWidth
	}
	if a.BackgroundWidth <= 0 {
		a.BackgroundWidth = def.BackgroundWidth
	}
	if a.GroundWidth <= 0 {
		a.GroundWidth = def.GroundWidth
	}
	if a.BonusW <= 0 || a.BonusH <= 0 {
		a.BonusW, a.BonusH = def.BonusW, def.BonusH
	}
	return a
}
