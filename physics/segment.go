package physics

import "github.com/synchro0001/kitten-engine/vector"

// SegmentIntersects reports whether the segment from p1 to p2 crosses or
// touches the centered rectangle, using Liang–Barsky parametric clipping.
// The parameter interval starts at [0, 1], restricting the test to the
// segment rather than its infinite line. Tangency counts as intersecting.
func SegmentIntersects(p1, p2, rectPos, rectSize vector.Vector2) bool {
	minX := rectPos.X - rectSize.X/2
	maxX := rectPos.X + rectSize.X/2
	minY := rectPos.Y - rectSize.Y/2
	maxY := rectPos.Y + rectSize.Y/2

	dx := p2.X - p1.X
	dy := p2.Y - p1.Y

	tMin := float32(0)
	tMax := float32(1)

	// One (p, q) pair per half-plane: left, right, bottom, top. q is the
	// signed distance from p1 to the boundary; p is the directional delta
	// against it.
	constraints := [4]struct{ p, q float32 }{
		{-dx, p1.X - minX},
		{dx, maxX - p1.X},
		{-dy, p1.Y - minY},
		{dy, maxY - p1.Y},
	}

	for _, c := range constraints {
		if c.p == 0 {
			if c.q < 0 {
				// Parallel to and fully outside this boundary. Force the
				// interval empty; the remaining constraints cannot revive it.
				tMin, tMax = 1, 0
			}
			continue
		}
		t := c.q / c.p
		if c.p < 0 {
			if t > tMin {
				tMin = t
			}
		} else {
			if t < tMax {
				tMax = t
			}
		}
	}

	return tMin <= tMax
}
