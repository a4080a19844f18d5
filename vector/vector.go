// Package vector provides an immutable 2D vector value type used throughout
// the engine. Every operation returns a new value; nothing mutates in place.
package vector

import (
	"errors"
	"math"
	"math/rand"
)

// ErrZeroLength is returned when an operation needs a direction but the
// vector has none.
var ErrZeroLength = errors.New("vector: zero-length vector has no direction")

// Vector2 is a 2D vector with float32 components.
type Vector2 struct {
	X, Y float32
}

// New creates a vector from its components.
func New(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// XY returns the components as a pair.
func (v Vector2) XY() (float32, float32) {
	return v.X, v.Y
}

// Add returns v + other.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v - other.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the component-wise product of v and other.
func (v Vector2) Mul(other Vector2) Vector2 {
	return Vector2{X: v.X * other.X, Y: v.Y * other.Y}
}

// Scale returns v with both components multiplied by k.
func (v Vector2) Scale(k float32) Vector2 {
	return Vector2{X: v.X * k, Y: v.Y * k}
}

// Invert returns v with both components negated.
func (v Vector2) Invert() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of v and other.
func (v Vector2) Dot(other Vector2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// LengthSquared returns the squared magnitude of v.
func (v Vector2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the magnitude of v.
func (v Vector2) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSquared())))
}

// Lerp interpolates from v to other by p. p is not clamped, so values
// outside [0, 1] extrapolate.
func (v Vector2) Lerp(other Vector2, p float32) Vector2 {
	return v.Scale(1 - p).Add(other.Scale(p))
}

// Unit returns the unit vector at the given angle in radians.
func Unit(theta float32) Vector2 {
	return Vector2{
		X: float32(math.Cos(float64(theta))),
		Y: float32(math.Sin(float64(theta))),
	}
}

// UnitRandom returns a unit vector with a uniformly random angle in [0, 2π).
func UnitRandom(rng *rand.Rand) Vector2 {
	return Unit(rng.Float32() * 2 * math.Pi)
}

// SetLength returns v rescaled to the given length. Returns ErrZeroLength
// when v has no direction to preserve.
func (v Vector2) SetLength(length float32) (Vector2, error) {
	l := v.Length()
	if l == 0 {
		return Vector2{}, ErrZeroLength
	}
	return v.Scale(length / l), nil
}

// Normalize returns v rescaled to unit length. Returns ErrZeroLength for
// the zero vector.
func (v Vector2) Normalize() (Vector2, error) {
	return v.SetLength(1)
}

// ClampLength returns v with its magnitude clamped to [minLen, maxLen].
// The zero vector is returned unchanged since it has no direction to
// lengthen along.
func (v Vector2) ClampLength(minLen, maxLen float32) Vector2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	if l < minLen {
		return v.Scale(minLen / l)
	}
	if l > maxLen {
		return v.Scale(maxLen / l)
	}
	return v
}

// Clamp restricts each component to [min, max] independently.
func (v Vector2) Clamp(min, max Vector2) Vector2 {
	return Vector2{
		X: clampFloat(v.X, min.X, max.X),
		Y: clampFloat(v.Y, min.Y, max.Y),
	}
}

// Angle returns the angle of v in radians.
func (v Vector2) Angle() float32 {
	return float32(math.Atan2(float64(v.Y), float64(v.X)))
}

// Rotate returns v rotated by theta radians.
func (v Vector2) Rotate(theta float32) Vector2 {
	sin := float32(math.Sin(float64(theta)))
	cos := float32(math.Cos(float64(theta)))
	return Vector2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// SetAngle returns a vector with v's length pointing at theta radians.
func (v Vector2) SetAngle(theta float32) Vector2 {
	return Unit(theta).Scale(v.Length())
}

// RotateLeft returns v rotated 90 degrees counter-clockwise.
func (v Vector2) RotateLeft() Vector2 {
	return Vector2{X: -v.Y, Y: v.X}
}

// RotateRight returns v rotated 90 degrees clockwise.
func (v Vector2) RotateRight() Vector2 {
	return Vector2{X: v.Y, Y: -v.X}
}

// LooselyEquals reports whether each component of v is within precision of
// the corresponding component of other.
func (v Vector2) LooselyEquals(other Vector2, precision float32) bool {
	return absf(v.X-other.X) <= precision && absf(v.Y-other.Y) <= precision
}

// clampFloat clamps a float32 value between min and max.
func clampFloat(x, minVal, maxVal float32) float32 {
	if x < minVal {
		return minVal
	}
	if x > maxVal {
		return maxVal
	}
	return x
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
