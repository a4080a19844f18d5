// Package camera owns the world↔screen affine transform used for
// coordinate-space conversion. The physics core never touches this; the
// game layer forwards conversions through whichever camera it renders with.
package camera

import (
	"math"

	"github.com/synchro0001/kitten-engine/vector"
)

// Camera controls the viewport into the world. The transform is built from
// the camera center (translation), zoom (uniform scale), and rotation.
type Camera struct {
	// Position is the camera center in world coordinates.
	Position vector.Vector2

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification).
	Zoom float32

	// Rotation of the view in radians, counter-clockwise.
	Rotation float32

	// Viewport dimensions (screen size).
	ViewportW, ViewportH float32

	// Zoom constraints.
	MinZoom, MaxZoom float32
}

// New creates a camera centered on the given world point with 1:1 zoom.
func New(viewportW, viewportH float32, center vector.Vector2) *Camera {
	return &Camera{
		Position:  center,
		Zoom:      1.0,
		ViewportW: viewportW,
		ViewportH: viewportH,
		MinZoom:   0.1,
		MaxZoom:   8.0,
	}
}

// WorldToScreen converts world coordinates to screen coordinates by
// applying the camera transform: translate, rotate, scale, center on the
// viewport. Screen Y grows downward while world Y grows upward.
func (c *Camera) WorldToScreen(world vector.Vector2) vector.Vector2 {
	d := world.Sub(c.Position).Rotate(-c.Rotation).Scale(c.Zoom)
	return vector.New(c.ViewportW/2+d.X, c.ViewportH/2-d.Y)
}

// ScreenToWorld converts screen coordinates back to world coordinates.
// It is the exact inverse of WorldToScreen.
func (c *Camera) ScreenToWorld(screen vector.Vector2) vector.Vector2 {
	d := vector.New(screen.X-c.ViewportW/2, c.ViewportH/2-screen.Y)
	return d.Scale(1 / c.Zoom).Rotate(c.Rotation).Add(c.Position)
}

// IsVisible reports whether a circle at the world point with the given
// radius could appear on screen. Conservative: uses the rotation-safe
// bounding radius of the viewport, so it may return true for points just
// off screen, never false for visible ones.
func (c *Camera) IsVisible(world vector.Vector2, radius float32) bool {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)
	bound := float32(math.Sqrt(float64(halfW*halfW+halfH*halfH))) + radius
	return world.Sub(c.Position).LengthSquared() <= bound*bound
}

// Resize updates the viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// Pan moves the camera by the given delta in screen pixels, respecting the
// current zoom and rotation so the world appears to follow the drag.
func (c *Camera) Pan(dx, dy float32) {
	d := vector.New(dx, -dy).Scale(1 / c.Zoom).Rotate(c.Rotation)
	c.Position = c.Position.Add(d)
}

// SetZoom sets the zoom level, clamped to [MinZoom, MaxZoom].
func (c *Camera) SetZoom(zoom float32) {
	if zoom < c.MinZoom {
		zoom = c.MinZoom
	}
	if zoom > c.MaxZoom {
		zoom = c.MaxZoom
	}
	c.Zoom = zoom
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset recenters the camera on the given point with 1:1 zoom and no
// rotation.
func (c *Camera) Reset(center vector.Vector2) {
	c.Position = center
	c.Zoom = 1.0
	c.Rotation = 0
}

// VisibleWorldBounds returns the axis-aligned world-coordinate bounds of
// the visible area. With a rotated camera the bounds cover the rotated
// viewport's bounding box.
func (c *Camera) VisibleWorldBounds() (min, max vector.Vector2) {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)

	if c.Rotation != 0 {
		sin := absf(float32(math.Sin(float64(c.Rotation))))
		cos := absf(float32(math.Cos(float64(c.Rotation))))
		halfW, halfH = halfW*cos+halfH*sin, halfW*sin+halfH*cos
	}

	min = c.Position.Sub(vector.New(halfW, halfH))
	max = c.Position.Add(vector.New(halfW, halfH))
	return min, max
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
