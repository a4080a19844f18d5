// Package components defines the ECS components for entities simulated by
// the engine. The physics core does not know about these; the game layer
// converts them to physics bodies each frame and back.
package components

import (
	"github.com/synchro0001/kitten-engine/physics"
	"github.com/synchro0001/kitten-engine/vector"
)

// Position is an entity's world position (AABB center).
type Position struct {
	X, Y float32
}

// Velocity is an entity's linear velocity.
type Velocity struct {
	X, Y float32
}

// Extent is an entity's AABB size.
type Extent struct {
	W, H float32
}

// Mass holds an entity's mass. Zero marks a static body.
type Mass struct {
	Value float32
}

// Tint is the render color of an entity.
type Tint struct {
	R, G, B, A uint8
}

// ToBody assembles a physics body from the entity's components.
func ToBody(pos *Position, ext *Extent, vel *Velocity, mass *Mass) physics.Body {
	return physics.Body{
		Position: vector.New(pos.X, pos.Y),
		Size:     vector.New(ext.W, ext.H),
		Velocity: vector.New(vel.X, vel.Y),
		Mass:     mass.Value,
	}
}

// FromBody writes a resolved physics body back into the components.
func FromBody(b physics.Body, pos *Position, vel *Velocity) {
	pos.X, pos.Y = b.Position.X, b.Position.Y
	vel.X, vel.Y = b.Velocity.X, b.Velocity.Y
}
