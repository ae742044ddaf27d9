package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the hardcoded default configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file
// cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Field: FieldConfig{
			Width:        400,
			Height:       600,
			GroundHeight: 100,
		},
		Avatar: AvatarConfig{
			StartX:              50,
			StartY:              300,
			Width:               40,
			Height:              30,
			Frames:              3,
			AnimationIntervalMS: 100,
		},
		Physics: PhysicsConfig{
			Gravity:          0.5,
			FlapImpulse:      -9,
			TiltUp:           30,
			MaxRotation:      25,
			MinRotation:      -90,
			RotationRate:     3,
			RisingRateFactor: 1.5,
			FallingThreshold: 1,
			TopClampFactor:   0.5,
		},
		Obstacles: ObstacleConfig{
			PipeWidth:          50,
			MinHeight:          60,
			GapBase:            160,
			GapMin:             100,
			GapReduction:       0.5,
			GapStepScore:       15,
			BaseSpeed:          3,
			SpeedIncrease:      0.1,
			SpeedStepScore:     10,
			MaxSpeedFactor:     2.5,
			BaseSpacing:        250,
			SpacingFactor:      5,
			InitialOffset:      100,
			DegenerateWidening: 10,
			ScoreIncrement:     1,
		},
		Parallax: ParallaxConfig{
			BackgroundWidth:    400,
			GroundWidth:        400,
			BackgroundFactor:   0.3,
			MinBackgroundSpeed: 1,
		},
		Bonus: BonusConfig{
			TriggerScore: 9000,
			Width:        40,
			Height:       50,
			FallSpeed:    5,
		},
		Session: SessionConfig{
			TickRate:           60,
			RestartCooldownMS:  500,
			FlashDurationMS:    150,
			CreditsScrollSpeed: 1,
			ResumeButtonWidth:  150,
			ResumeButtonHeight: 50,
			CreditsLines: []string{
				"Flappy Bird Clone",
				"",
				"Terminal Edition",
				"",
				"Built with Bubble Tea,",
				"Lip Gloss and Beep",
				"",
				"Press Q to Quit",
			},
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
