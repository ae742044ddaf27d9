// Package config provides YAML-based game configuration loading and
// difficulty management for the flappy engine.
package config

import (
	"errors"
	"fmt"
)

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	Field     FieldConfig    `yaml:"field"`
	Avatar    AvatarConfig   `yaml:"avatar"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Parallax  ParallaxConfig `yaml:"parallax"`
	Bonus     BonusConfig    `yaml:"bonus"`
	Session   SessionConfig  `yaml:"session"`
	Audio     AudioConfig    `yaml:"audio"`
}

// FieldConfig defines the play field in world units.
type FieldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// PlayableHeight returns the height above the ground.
func (f FieldConfig) PlayableHeight() float64 {
	return f.Height - f.GroundHeight
}

// AvatarConfig defines the bird's start position, hitbox and animation.
type AvatarConfig struct {
	StartX              float64 `yaml:"start_x"`
	StartY              float64 `yaml:"start_y"`
	Width               float64 `yaml:"width"`
	Height              float64 `yaml:"height"`
	Frames              int     `yaml:"frames"`
	AnimationIntervalMS int     `yaml:"animation_interval_ms"`
}

// PhysicsConfig defines vertical kinematics and rotation feedback.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	FlapImpulse      float64 `yaml:"flap_impulse"`  // Negative = up
	TiltUp           float64 `yaml:"tilt_up"`       // Rotation snapped on flap
	MaxRotation      float64 `yaml:"max_rotation"`  // Nose-up limit
	MinRotation      float64 `yaml:"min_rotation"`  // Nose-down limit
	RotationRate     float64 `yaml:"rotation_rate"` // Degrees per tick while falling
	RisingRateFactor float64 `yaml:"rising_rate_factor"`
	FallingThreshold float64 `yaml:"falling_threshold"`
	TopClampFactor   float64 `yaml:"top_clamp_factor"`
}

// ObstacleConfig defines pipe geometry and the difficulty curve.
type ObstacleConfig struct {
	PipeWidth          float64 `yaml:"pipe_width"`
	MinHeight          int     `yaml:"min_height"`
	GapBase            float64 `yaml:"gap_base"`
	GapMin             float64 `yaml:"gap_min"`
	GapReduction       float64 `yaml:"gap_reduction"`
	GapStepScore       int     `yaml:"gap_step_score"`
	BaseSpeed          float64 `yaml:"base_speed"`
	SpeedIncrease      float64 `yaml:"speed_increase"`
	SpeedStepScore     int     `yaml:"speed_step_score"`
	MaxSpeedFactor     float64 `yaml:"max_speed_factor"`
	BaseSpacing        float64 `yaml:"base_spacing"`
	SpacingFactor      float64 `yaml:"spacing_factor"`
	InitialOffset      float64 `yaml:"initial_offset"`
	DegenerateWidening int     `yaml:"degenerate_widening"`
	ScoreIncrement     int     `yaml:"score_increment"`
}

// ParallaxConfig defines the background and ground tiling layers.
type ParallaxConfig struct {
	BackgroundWidth    float64 `yaml:"background_width"`
	GroundWidth        float64 `yaml:"ground_width"`
	BackgroundFactor   float64 `yaml:"background_factor"`
	MinBackgroundSpeed float64 `yaml:"min_background_speed"`
}

// BonusConfig defines the bonus faller event.
type BonusConfig struct {
	TriggerScore int     `yaml:"trigger_score"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	FallSpeed    float64 `yaml:"fall_speed"`
}

// SessionConfig defines timings and screen content outside of play.
type SessionConfig struct {
	TickRate           int      `yaml:"tick_rate"`
	RestartCooldownMS  int      `yaml:"restart_cooldown_ms"`
	FlashDurationMS    int      `yaml:"flash_duration_ms"`
	CreditsScrollSpeed float64  `yaml:"credits_scroll_speed"`
	CreditsLines       []string `yaml:"credits_lines"`
	ResumeButtonWidth  float64  `yaml:"resume_button_width"`
	ResumeButtonHeight float64  `yaml:"resume_button_height"`
}

// AudioConfig defines sound output.
type AudioConfig struct {
	Enabled  bool    `yaml:"enabled"`
	SoundDir string  `yaml:"sound_dir"` // Optional WAV overrides
	Volume   float64 `yaml:"volume"`    // 0.0 to 1.0
}

// Validate reports configuration values the engine cannot run with.
func (c FlappyConfig) Validate() error {
	var errs []error

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field size must be positive, got %vx%v", c.Field.Width, c.Field.Height))
	}
	if c.Field.GroundHeight < 0 || c.Field.GroundHeight >= c.Field.Height {
		errs = append(errs, fmt.Errorf("ground height %v must be within field height %v", c.Field.GroundHeight, c.Field.Height))
	}
	if c.Avatar.Width <= 0 || c.Avatar.Height <= 0 {
		errs = append(errs, errors.New("avatar size must be positive"))
	}
	if c.Obstacles.PipeWidth <= 0 {
		errs = append(errs, errors.New("pipe width must be positive"))
	}
	if c.Obstacles.GapMin > c.Obstacles.GapBase {
		errs = append(errs, fmt.Errorf("gap_min %v exceeds gap_base %v", c.Obstacles.GapMin, c.Obstacles.GapBase))
	}
	if c.Obstacles.GapStepScore <= 0 || c.Obstacles.SpeedStepScore <= 0 {
		errs = append(errs, errors.New("difficulty step scores must be positive"))
	}
	if c.Obstacles.MinHeight < 0 || c.Obstacles.DegenerateWidening < 0 {
		errs = append(errs, errors.New("pipe min height and degenerate widening must not be negative"))
	}
	if c.Obstacles.BaseSpeed <= 0 {
		errs = append(errs, errors.New("base speed must be positive"))
	}
	if c.Parallax.BackgroundWidth <= 0 || c.Parallax.GroundWidth <= 0 {
		errs = append(errs, errors.New("parallax tile widths must be positive"))
	}
	if c.Session.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick rate must be positive, got %d", c.Session.TickRate))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
