package physics

import (
	"errors"
	"math"

	"github.com/synchro0001/kitten-engine/vector"
)

// ErrZeroMass is returned when a force is applied to a massless body.
// Static bodies must never receive forces; check Body.Static first.
var ErrZeroMass = errors.New("physics: cannot apply force to zero mass")

// ErrNegativeFriction is returned for a friction coefficient below zero,
// which has no defined exponential decay.
var ErrNegativeFriction = errors.New("physics: friction coefficient must be >= 0")

// Move integrates position one step: pos + vel*dt. dt is the frame delta
// supplied by the clock, normalized to ≈1.0 at the reference frame rate.
func Move(pos, vel vector.Vector2, dt float32) vector.Vector2 {
	return pos.Add(vel.Scale(dt))
}

// ApplyForces returns the velocity after one step of the summed forces
// acting on the given mass. Returns ErrZeroMass when mass is 0: a static
// body has no finite acceleration.
func ApplyForces(vel vector.Vector2, mass float32, forces []vector.Vector2, dt float32) (vector.Vector2, error) {
	if mass == 0 {
		return vector.Vector2{}, ErrZeroMass
	}
	var total vector.Vector2
	for _, f := range forces {
		total = total.Add(f)
	}
	return vel.Add(total.Scale(dt / mass)), nil
}

// ApplyGravity returns the velocity after one step of a downward
// gravitational force of magnitude g.
func ApplyGravity(vel vector.Vector2, mass, g, dt float32) (vector.Vector2, error) {
	return ApplyForces(vel, mass, []vector.Vector2{vector.New(0, -g)}, dt)
}

// ApplyFriction decays velocity exponentially: vel * f^dt. f is the
// fraction of velocity kept per reference frame; f=1 keeps everything,
// f=0 stops immediately. Returns ErrNegativeFriction when f < 0.
func ApplyFriction(vel vector.Vector2, f, dt float32) (vector.Vector2, error) {
	if f < 0 {
		return vector.Vector2{}, ErrNegativeFriction
	}
	keep := float32(math.Pow(float64(f), float64(dt)))
	return vel.Scale(keep), nil
}
