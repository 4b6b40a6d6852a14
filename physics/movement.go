package physics

import (
	"github.com/lixenwraith/escape-artist/parameter"
	"github.com/lixenwraith/escape-artist/vmath"
)

// BlockedFunc reports whether an entity footprint at (x, y) collides
type BlockedFunc func(x, y int) bool

// ResolveHorizontal applies dx in one step, then backs off one pixel at a time while colliding
// Backing off stops after |dx| pixels so an entity already embedded at its start position cannot be pushed further
func ResolveHorizontal(x, y, dx int, blocked BlockedFunc) int {
	if dx == 0 {
		return x
	}
	x += dx
	step := -vmath.Sign(dx)
	for i := 0; i < vmath.Abs(dx) && blocked(x, y); i++ {
		x += step
	}
	return x
}

// VerticalResult is the outcome of a stepwise vertical move
type VerticalResult struct {
	Y int
	// Hit is true if a collision stopped the move (velocity must be zeroed)
	Hit bool
}

// ResolveVertical applies dy one pixel at a time, stopping before the first colliding step
func ResolveVertical(x, y, dy int, blocked BlockedFunc) VerticalResult {
	step := vmath.Sign(dy)
	for i := 0; i < vmath.Abs(dy); i++ {
		if blocked(x, y+step) {
			return VerticalResult{Y: y, Hit: true}
		}
		y += step
	}
	return VerticalResult{Y: y}
}

// ClampFall limits vertical velocity to less than one tile per tick
func ClampFall(vy int) int {
	return vmath.Clamp(vy, -parameter.MaxFallSpeed, parameter.MaxFallSpeed)
}
