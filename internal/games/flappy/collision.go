package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// ObstacleCollision reports whether the avatar touched the ground or hit a pipe.
// groundY is the top of the ground; reaching it counts as a hit. The ceiling
// is never a hit.
func ObstacleCollision(avatar core.Rect, obstacles []core.Rect, groundY float64) bool {
	if avatar.Bottom() >= groundY {
		return true
	}
	for _, r := range obstacles {
		if !avatar.OverlapsX(r) {
			continue
		}
		if avatar.Intersects(r) {
			return true
		}
	}
	return false
}

// BonusCollision reports whether the bonus faller caught the avatar.
// Both rectangles must be present.
func BonusCollision(avatar, bonus *core.Rect) bool {
	if avatar == nil || bonus == nil {
		return false
	}
	return avatar.Intersects(*bonus)
}
