package flappy

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Avatar is the bird: a fixed horizontal position with 1D vertical kinematics.
// Rotation is visual feedback only and does not affect the hitbox.
type Avatar struct {
	X, Y     float64 // Top-left corner of the hitbox
	W, H     float64
	Velocity float64 // Positive = falling
	Rotation float64 // Degrees, positive = nose up
	Frame    int

	frames      int
	interval    time.Duration
	lastFrameAt time.Duration
	startX      float64
	startY      float64
	physics     config.PhysicsConfig
}

// NewAvatar creates an avatar at its start position.
func NewAvatar(cfg config.AvatarConfig, physics config.PhysicsConfig, assets Assets) *Avatar {
	a := &Avatar{
		W:        assets.AvatarW,
		H:        assets.AvatarH,
		frames:   assets.Frames,
		interval: cfg.AnimationInterval(),
		startX:   cfg.StartX,
		startY:   cfg.StartY,
		physics:  physics,
	}
	a.Reset(0)
	return a
}

// Flap gives the avatar an upward impulse and tilts it nose up.
func (a *Avatar) Flap() {
	a.Velocity = a.physics.FlapImpulse
	a.Rotation = a.physics.TiltUp
}

// Update advances the avatar by one tick. now is the tick clock's elapsed
// time and only drives the animation.
func (a *Avatar) Update(now time.Duration) {
	a.Velocity += a.physics.Gravity
	a.Y += a.Velocity

	// Soft ceiling: the bird may poke above the field but never leave it
	if ceiling := -a.H * a.physics.TopClampFactor; a.Y < ceiling {
		a.Y = ceiling
	}

	if a.frames > 1 && now-a.lastFrameAt > a.interval {
		a.Frame = (a.Frame + 1) % a.frames
		a.lastFrameAt = now
	}

	if a.Velocity > a.physics.FallingThreshold {
		a.Rotation -= a.physics.RotationRate
	} else {
		a.Rotation += a.physics.RotationRate * a.physics.RisingRateFactor
	}
	a.Rotation = core.ClampF(a.Rotation, a.physics.MinRotation, a.physics.MaxRotation)
}

// Reset restores the start position, velocity, rotation and frame.
func (a *Avatar) Reset(now time.Duration) {
	a.X = a.startX
	a.Y = a.startY
	a.Velocity = 0
	a.Rotation = 0
	a.Frame = 0
	a.lastFrameAt = now
}

// Rect returns the collision rectangle.
func (a *Avatar) Rect() core.Rect {
	return core.NewRect(a.X, a.Y, a.W, a.H)
}
