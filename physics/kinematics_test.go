package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/synchro0001/kitten-engine/vector"
)

func TestMove(t *testing.T) {
	tests := []struct {
		name     string
		pos, vel vector.Vector2
		dt       float32
		want     vector.Vector2
	}{
		{"unit delta", vector.New(0, 0), vector.New(3, -4), 1, vector.New(3, -4)},
		{"half delta", vector.New(10, 10), vector.New(4, 2), 0.5, vector.New(12, 11)},
		{"zero delta freezes", vector.New(1, 2), vector.New(100, 100), 0, vector.New(1, 2)},
		{"zero velocity stays", vector.New(5, 5), vector.New(0, 0), 2, vector.New(5, 5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Move(tc.pos, tc.vel, tc.dt)
			if !got.LooselyEquals(tc.want, 1e-6) {
				t.Errorf("got (%f, %f), want (%f, %f)", got.X, got.Y, tc.want.X, tc.want.Y)
			}
		})
	}
}

func TestApplyForces(t *testing.T) {
	vel := vector.New(1, 0)
	forces := []vector.Vector2{vector.New(2, 0), vector.New(0, -4)}

	got, err := ApplyForces(vel, 2, forces, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := vector.New(2, -2)
	if !got.LooselyEquals(want, 1e-6) {
		t.Errorf("got (%f, %f), want (%f, %f)", got.X, got.Y, want.X, want.Y)
	}

	// Heavier body accelerates less from the same forces.
	heavy, err := ApplyForces(vel, 4, forces, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if heavy.Sub(vel).Length() >= got.Sub(vel).Length() {
		t.Error("heavier body changed velocity at least as much as lighter one")
	}

	if _, err := ApplyForces(vel, 0, forces, 1); !errors.Is(err, ErrZeroMass) {
		t.Errorf("expected ErrZeroMass, got %v", err)
	}
}

func TestApplyGravity(t *testing.T) {
	got, err := ApplyGravity(vector.New(3, 0), 1, 9.8, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := vector.New(3, -9.8)
	if !got.LooselyEquals(want, 1e-5) {
		t.Errorf("got (%f, %f), want (%f, %f)", got.X, got.Y, want.X, want.Y)
	}

	if _, err := ApplyGravity(vector.New(0, 0), 0, 9.8, 1); !errors.Is(err, ErrZeroMass) {
		t.Errorf("expected ErrZeroMass, got %v", err)
	}
}

func TestApplyFriction(t *testing.T) {
	vel := vector.New(10, -20)

	got, err := ApplyFriction(vel, 0.5, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.LooselyEquals(vector.New(5, -10), 1e-5) {
		t.Errorf("got (%f, %f), want (5, -10)", got.X, got.Y)
	}

	// Two half-steps decay the same as one full step.
	half, err := ApplyFriction(vel, 0.5, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	half, err = ApplyFriction(half, 0.5, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(float64(half.X-got.X)) > 1e-4 || math.Abs(float64(half.Y-got.Y)) > 1e-4 {
		t.Errorf("split steps diverge: (%f, %f) vs (%f, %f)", half.X, half.Y, got.X, got.Y)
	}

	// f=1 keeps velocity, f=0 stops it.
	keep, _ := ApplyFriction(vel, 1, 1)
	if keep != vel {
		t.Errorf("f=1 changed velocity to (%f, %f)", keep.X, keep.Y)
	}
	stop, _ := ApplyFriction(vel, 0, 1)
	if stop != (vector.Vector2{}) {
		t.Errorf("f=0 left velocity (%f, %f)", stop.X, stop.Y)
	}

	if _, err := ApplyFriction(vel, -0.1, 1); !errors.Is(err, ErrNegativeFriction) {
		t.Errorf("expected ErrNegativeFriction, got %v", err)
	}
}
