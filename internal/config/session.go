package config

import "time"

// TickDuration returns the simulated time covered by one tick.
func (s SessionConfig) TickDuration() time.Duration {
	if s.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(s.TickRate)
}

// RestartCooldown returns the minimum time between death and restart.
func (s SessionConfig) RestartCooldown() time.Duration {
	return time.Duration(s.RestartCooldownMS) * time.Millisecond
}

// FlashDuration returns how long the death flash stays visible.
func (s SessionConfig) FlashDuration() time.Duration {
	return time.Duration(s.FlashDurationMS) * time.Millisecond
}

// AnimationInterval returns the time between avatar animation frames.
func (a AvatarConfig) AnimationInterval() time.Duration {
	return time.Duration(a.AnimationIntervalMS) * time.Millisecond
}
