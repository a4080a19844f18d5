package physics

import "github.com/synchro0001/kitten-engine/vector"

// Body is the unit of collision resolution: an axis-aligned box with a
// position, linear velocity, and mass. Rotation is not modeled.
//
// Mass 0 marks a static body: infinitely heavy, never moved by resolution.
// Use Static to test for it instead of comparing the field directly.
type Body struct {
	Position vector.Vector2
	Size     vector.Vector2
	Velocity vector.Vector2
	Mass     float32
}

// NewBody creates a dynamic body.
func NewBody(position, size, velocity vector.Vector2, mass float32) Body {
	return Body{Position: position, Size: size, Velocity: velocity, Mass: mass}
}

// NewStaticBody creates an immovable body.
func NewStaticBody(position, size vector.Vector2) Body {
	return Body{Position: position, Size: size}
}

// Static reports whether the body is immovable.
func (b Body) Static() bool {
	return b.Mass == 0
}

// invMass returns the inverse mass, 0 for static bodies. Impulse math uses
// this so static bodies absorb impulses without moving.
func (b Body) invMass() float32 {
	if b.Mass == 0 {
		return 0
	}
	return 1 / b.Mass
}

// Bounds returns the body's AABB.
func (b Body) Bounds() Rectangle {
	return Rectangle{Center: b.Position, Size: b.Size}
}
