package config

import "math"

// DifficultyManager derives obstacle speed, spacing and gap size from the score.
// All three are step functions: they change only when the score crosses a
// multiple of the configured step.
type DifficultyManager struct {
	cfg ObstacleConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg ObstacleConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// Speed returns the horizontal obstacle speed for the given score,
// capped at MaxSpeedFactor times the base speed.
func (d *DifficultyManager) Speed(score int) float64 {
	steps := float64(stepCount(score, d.cfg.SpeedStepScore))
	speed := d.cfg.BaseSpeed + steps*d.cfg.SpeedIncrease
	return math.Min(speed, d.MaxSpeed())
}

// MaxSpeed returns the speed cap.
func (d *DifficultyManager) MaxSpeed() float64 {
	return d.cfg.BaseSpeed * d.cfg.MaxSpeedFactor
}

// Spacing returns the spawn spacing for the given obstacle speed.
// Faster pipes are spaced further apart.
func (d *DifficultyManager) Spacing(speed float64) float64 {
	return d.cfg.BaseSpacing + (speed-d.cfg.BaseSpeed)*d.cfg.SpacingFactor
}

// GapSize returns the vertical gap for a pipe pair created at the given score.
func (d *DifficultyManager) GapSize(score int) float64 {
	steps := float64(stepCount(score, d.cfg.GapStepScore))
	return math.Max(d.cfg.GapMin, d.cfg.GapBase-steps*d.cfg.GapReduction)
}

// stepCount returns floor(score/step) for non-negative scores.
func stepCount(score, step int) int {
	if step <= 0 || score <= 0 {
		return 0
	}
	return score / step
}
