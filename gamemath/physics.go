package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Distance returns the euclidean distance between two points.
func Distance(a, b dmath.Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// MoveTowards steps current toward target by at most maxDelta and never overshoots.
func MoveTowards(current, target dmath.Vec2, maxDelta float64) dmath.Vec2 {
	dx := target.X - current.X
	dy := target.Y - current.Y
	dist := math.Hypot(dx, dy)
	if dist <= maxDelta || dist == 0 {
		return target
	}
	return dmath.Vec2{
		X: current.X + dx/dist*maxDelta,
		Y: current.Y + dy/dist*maxDelta,
	}
}

// FacingToward returns -1 when target lies left of x, otherwise 1.
func FacingToward(x, targetX float64) float64 {
	if targetX < x {
		return -1
	}
	return 1
}

// CircleOverlapsRect reports whether the circle (cx, cy, r) touches the
// axis-aligned rectangle at (x, y) with size (w, h).
func CircleOverlapsRect(cx, cy, r, x, y, w, h float64) bool {
	nearX := math.Max(x, math.Min(cx, x+w))
	nearY := math.Max(y, math.Min(cy, y+h))
	dx := cx - nearX
	dy := cy - nearY
	return dx*dx+dy*dy <= r*r
}
