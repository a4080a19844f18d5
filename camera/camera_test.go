package camera

import (
	"math"
	"testing"

	"github.com/synchro0001/kitten-engine/vector"
)

func TestNew(t *testing.T) {
	cam := New(1280, 720, vector.New(100, 200))

	if cam.Position != vector.New(100, 200) {
		t.Errorf("expected camera at (100, 200), got (%f, %f)", cam.Position.X, cam.Position.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
	if cam.Rotation != 0 {
		t.Errorf("expected rotation 0, got %f", cam.Rotation)
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := New(1280, 720, vector.New(100, 200))

	// Camera center should map to screen center.
	s := cam.WorldToScreen(vector.New(100, 200))
	if math.Abs(float64(s.X-640)) > 0.01 || math.Abs(float64(s.Y-360)) > 0.01 {
		t.Errorf("expected screen center (640, 360), got (%f, %f)", s.X, s.Y)
	}
}

func TestWorldToScreenYFlip(t *testing.T) {
	cam := New(1280, 720, vector.New(0, 0))

	// World up is screen up, which means smaller screen Y.
	s := cam.WorldToScreen(vector.New(0, 100))
	if s.Y >= 360 {
		t.Errorf("point above camera should be above screen center, got y=%f", s.Y)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, vector.New(100, 200))
	cam.SetZoom(2.0)
	cam.Rotation = 0.35

	screens := []vector.Vector2{
		vector.New(640, 360), // center
		vector.New(100, 100), // top-left
		vector.New(1200, 600),
	}

	for _, sc := range screens {
		w := cam.ScreenToWorld(sc)
		back := cam.WorldToScreen(w)
		if math.Abs(float64(back.X-sc.X)) > 0.01 || math.Abs(float64(back.Y-sc.Y)) > 0.01 {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				sc.X, sc.Y, w.X, w.Y, back.X, back.Y)
		}
	}
}

func TestPanFollowsZoom(t *testing.T) {
	cam := New(1280, 720, vector.New(0, 0))
	cam.SetZoom(2.0)

	// At 2x zoom, a 100px screen drag moves the camera 50 world units.
	cam.Pan(100, 0)
	if math.Abs(float64(cam.Position.X-50)) > 0.01 {
		t.Errorf("expected camera X 50, got %f", cam.Position.X)
	}

	// Screen-down drag moves the camera down in world space.
	cam.Pan(0, 100)
	if math.Abs(float64(cam.Position.Y+50)) > 0.01 {
		t.Errorf("expected camera Y -50, got %f", cam.Position.Y)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(1280, 720, vector.New(0, 0))

	cam.SetZoom(0.01) // below min
	if cam.Zoom != cam.MinZoom {
		t.Errorf("expected zoom clamped to %f, got %f", cam.MinZoom, cam.Zoom)
	}

	cam.SetZoom(100) // above max
	if cam.Zoom != cam.MaxZoom {
		t.Errorf("expected zoom clamped to %f, got %f", cam.MaxZoom, cam.Zoom)
	}

	cam.SetZoom(1)
	cam.ZoomBy(2)
	if cam.Zoom != 2 {
		t.Errorf("expected zoom 2, got %f", cam.Zoom)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(1280, 720, vector.New(0, 0))

	if !cam.IsVisible(vector.New(0, 0), 10) {
		t.Error("center should be visible")
	}
	if cam.IsVisible(vector.New(5000, 5000), 10) {
		t.Error("far point should not be visible")
	}
	// Near the corner with a large radius is conservatively visible.
	if !cam.IsVisible(vector.New(640, 360), 100) {
		t.Error("corner point with large radius should be visible")
	}
}

func TestReset(t *testing.T) {
	cam := New(1280, 720, vector.New(0, 0))
	cam.Position = vector.New(500, 500)
	cam.Zoom = 2.5
	cam.Rotation = 1.2

	cam.Reset(vector.New(0, 0))

	if cam.Position != vector.New(0, 0) {
		t.Errorf("expected position (0, 0), got (%f, %f)", cam.Position.X, cam.Position.Y)
	}
	if cam.Zoom != 1.0 || cam.Rotation != 0 {
		t.Errorf("expected zoom 1.0 rotation 0, got %f, %f", cam.Zoom, cam.Rotation)
	}
}

func TestVisibleWorldBounds(t *testing.T) {
	cam := New(1280, 720, vector.New(100, 100))
	cam.SetZoom(2.0)

	min, max := cam.VisibleWorldBounds()
	if math.Abs(float64(min.X-(100-320))) > 0.01 || math.Abs(float64(max.X-(100+320))) > 0.01 {
		t.Errorf("X bounds: got [%f, %f]", min.X, max.X)
	}
	if math.Abs(float64(min.Y-(100-180))) > 0.01 || math.Abs(float64(max.Y-(100+180))) > 0.01 {
		t.Errorf("Y bounds: got [%f, %f]", min.Y, max.Y)
	}

	// Rotation can only grow the bounding box.
	cam.Rotation = 0.5
	rmin, rmax := cam.VisibleWorldBounds()
	if rmax.X-rmin.X < max.X-min.X || rmax.Y-rmin.Y < max.Y-min.Y {
		t.Error("rotated bounds smaller than axis-aligned bounds")
	}
}
