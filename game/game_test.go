package game

import (
	"testing"

	"github.com/synchro0001/kitten-engine/components"
	"github.com/synchro0001/kitten-engine/config"
	"github.com/synchro0001/kitten-engine/vector"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	config.MustInit("")
	g, err := New(Options{Seed: 1, Headless: true})
	if err != nil {
		t.Fatalf("creating game: %v", err)
	}
	return g
}

// forEachDynamic visits every non-static entity.
func (g *Game) forEachDynamic(fn func(pos *components.Position, vel *components.Velocity)) {
	query := g.bodyFilter.Query()
	for query.Next() {
		pos, vel, _, mass, _ := query.Get()
		if mass.Value == 0 {
			continue
		}
		fn(pos, vel)
	}
}

func TestNewSpawnsScene(t *testing.T) {
	g := newTestGame(t)

	boxes := config.Cfg().Demo.BoxCount
	want := boxes + 4 // four border walls
	if got := g.BodyCount(); got != want {
		t.Errorf("expected %d bodies, got %d", want, got)
	}
}

func TestGravityPullsBoxesDown(t *testing.T) {
	g := newTestGame(t)

	before := map[*components.Position]float32{}
	g.forEachDynamic(func(pos *components.Position, vel *components.Velocity) {
		vel.X, vel.Y = 0, 0 // isolate gravity from spawn velocity
		before[pos] = pos.Y
	})

	for i := 0; i < 10; i++ {
		if err := g.Step(1); err != nil {
			t.Fatalf("step: %v", err)
		}
	}

	fell := 0
	g.forEachDynamic(func(pos *components.Position, vel *components.Velocity) {
		if pos.Y < before[pos] {
			fell++
		}
	})
	if fell == 0 {
		t.Error("expected boxes to fall under gravity")
	}
}

func TestBoxesStayInsideWalls(t *testing.T) {
	g := newTestGame(t)

	for i := 0; i < 600; i++ {
		if err := g.Step(1); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	margin := float32(config.Cfg().Demo.MaxBoxSize)
	g.forEachDynamic(func(pos *components.Position, vel *components.Velocity) {
		if pos.X < -margin || pos.X > g.worldSize.X+margin ||
			pos.Y < -margin || pos.Y > g.worldSize.Y+margin {
			t.Errorf("box escaped the walls: (%f, %f)", pos.X, pos.Y)
		}
	})
}

func TestPausedStepDoesNotRun(t *testing.T) {
	g := newTestGame(t)
	g.SetPaused(true)

	snapshot := map[*components.Position]components.Position{}
	g.forEachDynamic(func(pos *components.Position, vel *components.Velocity) {
		snapshot[pos] = *pos
	})

	ran, err := g.Update()
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if ran {
		g.FinishFrame()
	}

	g.forEachDynamic(func(pos *components.Position, vel *components.Velocity) {
		if *pos != snapshot[pos] {
			t.Errorf("paused body moved from (%f, %f) to (%f, %f)",
				snapshot[pos].X, snapshot[pos].Y, pos.X, pos.Y)
		}
	})
}

func TestLineOfSight(t *testing.T) {
	g := newTestGame(t)

	// Any segment crossing the floor wall is blocked.
	inside := vector.New(g.worldSize.X/2, g.worldSize.Y/2)
	below := vector.New(g.worldSize.X/2, -200)
	if g.LineOfSight(inside, below) {
		t.Error("segment through the floor should be blocked")
	}

	// A segment far outside the world sees nothing.
	a := vector.New(-5000, -5000)
	b := vector.New(-5000, -4000)
	if !g.LineOfSight(a, b) {
		t.Error("segment far outside the world should be clear")
	}
}

func TestResetScene(t *testing.T) {
	g := newTestGame(t)
	initial := g.BodyCount()

	g.SpawnBox(vector.New(100, 400))
	g.SpawnBox(vector.New(200, 400))
	if got := g.BodyCount(); got != initial+2 {
		t.Fatalf("expected %d bodies after spawns, got %d", initial+2, got)
	}

	g.ResetScene()
	if got := g.BodyCount(); got != initial {
		t.Errorf("expected %d bodies after reset, got %d", initial, got)
	}
}
