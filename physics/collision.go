package physics

import "github.com/synchro0001/kitten-engine/vector"

// Resolve performs impulse-based collision resolution between two bodies
// and returns their updated copies. restitution is the coefficient of
// elasticity (0 = fully inelastic, 1 = perfectly elastic); friction scales
// the tangential impulse and is not clamped to the normal impulse.
//
// Resolution separates the bodies along the axis of minimum penetration
// (exact ties resolve along Y), then applies a normal impulse only when the
// bodies are approaching. Positions returned reflect only the positional
// correction; velocity is never integrated into position here — that is
// Move's job.
//
// A pair of two static bodies is returned unchanged.
func Resolve(a, b Body, restitution, friction float32) (Body, Body) {
	if !IsOverlapping(a.Position, a.Size, b.Position, b.Size) {
		return a, b
	}
	if a.Static() && b.Static() {
		return a, b
	}

	dx := b.Position.X - a.Position.X
	dy := b.Position.Y - a.Position.Y
	overlapX := (a.Size.X+b.Size.X)/2 - absf(dx)
	overlapY := (a.Size.Y+b.Size.Y)/2 - absf(dy)

	// Separate along the axis of minimum penetration. An exact tie is a
	// Y-axis collision: only a strictly smaller X overlap picks X.
	var normal vector.Vector2
	var depth float32
	if overlapX < overlapY {
		normal = vector.New(signOf(dx), 0)
		depth = overlapX
	} else {
		normal = vector.New(0, signOf(dy))
		depth = overlapY
	}

	// Positional correction, split by which bodies are static rather than
	// by mass ratio.
	switch {
	case a.Static():
		b.Position = b.Position.Add(normal.Scale(depth))
	case b.Static():
		a.Position = a.Position.Sub(normal.Scale(depth))
	default:
		half := normal.Scale(depth / 2)
		a.Position = a.Position.Sub(half)
		b.Position = b.Position.Add(half)
	}

	// Velocity change only while approaching; separating bodies keep their
	// velocities so resolution never glues bodies together.
	relVel := b.Velocity.Sub(a.Velocity)
	closingSpeed := relVel.Dot(normal)
	if closingSpeed > 0 {
		return a, b
	}

	invA := a.invMass()
	invB := b.invMass()
	invSum := invA + invB

	impulse := -(1 + restitution) * closingSpeed / invSum
	a.Velocity = a.Velocity.Sub(normal.Scale(impulse * invA))
	b.Velocity = b.Velocity.Add(normal.Scale(impulse * invB))

	// Tangential impulse: plain Coulomb-like damping of the sliding speed,
	// not clamped against the normal impulse magnitude.
	tangent := normal.RotateLeft()
	slideSpeed := relVel.Dot(tangent)
	frictionImpulse := -friction * slideSpeed / invSum
	a.Velocity = a.Velocity.Sub(tangent.Scale(frictionImpulse * invA))
	b.Velocity = b.Velocity.Add(tangent.Scale(frictionImpulse * invB))

	return a, b
}

// ResolveAll resolves every pair in the list sequentially: the head body is
// resolved against each remaining body in order, its updated state carried
// forward into each subsequent pair, then the rest of the list is processed
// the same way. This is a single pass of sequential impulses, dependent on
// input order, not a converging solver.
func ResolveAll(bodies []Body, restitution, friction float32) []Body {
	out := make([]Body, len(bodies))
	copy(out, bodies)
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			out[i], out[j] = Resolve(out[i], out[j], restitution, friction)
		}
	}
	return out
}

// signOf returns the unit sign of d, treating an exact zero as positive so
// coincident centers still separate deterministically.
func signOf(d float32) float32 {
	if d < 0 {
		return -1
	}
	return 1
}
