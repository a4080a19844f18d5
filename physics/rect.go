// Package physics implements the engine's 2D kinematics and collision core:
// AABB predicates, explicit-Euler integration helpers, impulse-based
// collision resolution, and a segment-vs-rectangle intersection test.
//
// Everything here is a pure computation over its inputs. Rectangles are
// axis-aligned and described by center + size, not min/max corners. The
// frame delta is threaded explicitly into every integration call; the
// package holds no state between frames.
package physics

import "github.com/synchro0001/kitten-engine/vector"

// Rectangle is an axis-aligned rectangle described by its center and size.
type Rectangle struct {
	Center vector.Vector2
	Size   vector.Vector2
}

// NewRectangle creates a rectangle from center and size.
func NewRectangle(center, size vector.Vector2) Rectangle {
	return Rectangle{Center: center, Size: size}
}

// Overlaps reports whether r and other intersect.
func (r Rectangle) Overlaps(other Rectangle) bool {
	return IsOverlapping(r.Center, r.Size, other.Center, other.Size)
}

// Contains reports whether the point lies inside r.
func (r Rectangle) Contains(point vector.Vector2) bool {
	return IsWithin(point, r.Center, r.Size)
}

// IsOverlapping reports whether two centered rectangles intersect. Touching
// edges and corners count as overlap.
func IsOverlapping(pos1, size1, pos2, size2 vector.Vector2) bool {
	dx := absf(pos1.X-pos2.X) * 2
	dy := absf(pos1.Y-pos2.Y) * 2
	return dx <= size1.X+size2.X && dy <= size1.Y+size2.Y
}

// IsWithin reports whether a point lies inside a centered rectangle,
// boundary included. A point is a zero-size rectangle.
func IsWithin(point, pos, size vector.Vector2) bool {
	return IsOverlapping(point, vector.Vector2{}, pos, size)
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
