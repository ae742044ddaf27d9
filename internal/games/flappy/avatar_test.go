package flappy

import (
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func newTestAvatar() *Avatar {
	cfg := config.DefaultFlappyConfig()
	return NewAvatar(cfg.Avatar, cfg.Physics, DefaultAssets(cfg))
}

func TestAvatarFlap(t *testing.T) {
	a := newTestAvatar()

	// Flap overrides any prior velocity and rotation
	a.Velocity = 7
	a.Rotation = -80
	a.Flap()

	if a.Velocity != -9 {
		t.Errorf("Velocity after flap = %v, expected -9", a.Velocity)
	}
	if a.Rotation != 30 {
		t.Errorf("Rotation after flap = %v, expected 30", a.Rotation)
	}
}

func TestAvatarGravity(t *testing.T) {
	a := newTestAvatar()

	a.Update(0)
	if a.Velocity != 0.5 || a.Y != 300.5 {
		t.Errorf("after 1 tick: vel=%v y=%v, expected 0.5 and 300.5", a.Velocity, a.Y)
	}

	a.Update(0)
	if a.Velocity != 1.0 || a.Y != 301.5 {
		t.Errorf("after 2 ticks: vel=%v y=%v, expected 1 and 301.5", a.Velocity, a.Y)
	}
}

func TestAvatarCeilingClamp(t *testing.T) {
	a := newTestAvatar()
	a.Y = 0

	for i := 0; i < 10; i++ {
		a.Flap()
		a.Update(0)
	}

	if a.Y != -15 {
		t.Errorf("Y = %v, expected soft ceiling -15", a.Y)
	}
}

func TestAvatarRotation(t *testing.T) {
	a := newTestAvatar()

	// Near-neutral velocity tilts nose up at 1.5x the rate
	a.Update(0)
	if a.Rotation != 4.5 {
		t.Errorf("Rotation while rising = %v, expected 4.5", a.Rotation)
	}

	// Falling faster than the threshold tilts nose down
	a.Velocity = 5
	before := a.Rotation
	a.Update(0)
	if a.Rotation != before-3 {
		t.Errorf("Rotation while falling = %v, expected %v", a.Rotation, before-3)
	}

	// Flap snaps to 30, the next tick clamps to the nose-up limit
	a.Flap()
	a.Update(0)
	if a.Rotation != 25 {
		t.Errorf("Rotation after flap tick = %v, expected 25", a.Rotation)
	}
}

func TestAvatarAnimation(t *testing.T) {
	a := newTestAvatar()

	a.Update(100 * time.Millisecond)
	if a.Frame != 0 {
		t.Errorf("frame advanced at exactly the interval: %d", a.Frame)
	}

	a.Update(101 * time.Millisecond)
	if a.Frame != 1 {
		t.Errorf("Frame = %d, expected 1", a.Frame)
	}

	a.Update(202 * time.Millisecond)
	a.Update(303 * time.Millisecond)
	if a.Frame != 0 {
		t.Errorf("Frame = %d, expected wrap to 0", a.Frame)
	}
}

func TestAvatarSingleFrameDoesNotAnimate(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	assets := DefaultAssets(cfg)
	assets.Frames = 1
	a := NewAvatar(cfg.Avatar, cfg.Physics, assets)

	a.Update(time.Second)
	if a.Frame != 0 {
		t.Errorf("Frame = %d, expected 0", a.Frame)
	}
}

func TestAvatarReset(t *testing.T) {
	a := newTestAvatar()
	a.Flap()
	for i := 0; i < 20; i++ {
		a.Update(time.Duration(i) * time.Second)
	}

	a.Reset(0)

	if a.X != 50 || a.Y != 300 || a.Velocity != 0 || a.Rotation != 0 || a.Frame != 0 {
		t.Errorf("Reset left %+v", a)
	}
	if r := a.Rect(); r.W != 40 || r.H != 30 {
		t.Errorf("Rect size = %vx%v, expected 40x30", r.W, r.H)
	}
}

func TestAvatarBoundsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := newTestAvatar()
		flaps := rapid.SliceOfN(rapid.Bool(), 1, 400).Draw(t, "flaps")

		for i, flap := range flaps {
			if flap {
				a.Flap()
				if a.Velocity != -9 || a.Rotation != 30 {
					t.Fatalf("flap set vel=%v rot=%v", a.Velocity, a.Rotation)
				}
			}
			a.Update(time.Duration(i) * time.Second / 60)

			if a.Y < -a.H*0.5 {
				t.Fatalf("tick %d: y=%v above soft ceiling", i, a.Y)
			}
			if a.Rotation < -90 || a.Rotation > 25 {
				t.Fatalf("tick %d: rotation %v out of range", i, a.Rotation)
			}
		}
	})
}
