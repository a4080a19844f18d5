// Package game hosts the engine's frame loop: it owns the persistent
// entity records, feeds them through the physics core once per frame, and
// renders the result. The physics core itself stays pure; everything
// stateful lives here.
package game

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/synchro0001/kitten-engine/camera"
	"github.com/synchro0001/kitten-engine/clock"
	"github.com/synchro0001/kitten-engine/components"
	"github.com/synchro0001/kitten-engine/config"
	"github.com/synchro0001/kitten-engine/telemetry"
	"github.com/synchro0001/kitten-engine/vector"
)

// Tuning holds the physics parameters the UI can adjust at runtime.
type Tuning struct {
	Gravity     float32
	Restitution float32
	Friction    float32
	AirFriction float32
}

// Options configures a new game.
type Options struct {
	Seed      int64
	Headless  bool
	OutputDir string
	LogStats  bool
}

// Game holds the complete engine state.
type Game struct {
	world *ecs.World
	rng   *rand.Rand

	bodyMapper *ecs.Map5[
		components.Position,
		components.Velocity,
		components.Extent,
		components.Mass,
		components.Tint,
	]
	bodyFilter *ecs.Filter5[
		components.Position,
		components.Velocity,
		components.Extent,
		components.Mass,
		components.Tint,
	]

	camera    *camera.Camera
	clock     *clock.FrameClock
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager
	tuning    Tuning
	opts      Options
	worldSize vector.Vector2

	frame     int64
	lastDelta float32
	paused    bool
	showPanel bool

	// Sight-line probe: anchor in world coordinates, toggled from input.
	sightAnchor vector.Vector2
	sightActive bool
}

// New creates a game from the loaded configuration.
func New(opts Options) (*Game, error) {
	cfg := config.Cfg()

	out, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}

	g := &Game{
		rng:    rand.New(rand.NewSource(opts.Seed)),
		opts:   opts,
		output: out,
		worldSize: vector.New(
			cfg.Derived.WorldW32,
			cfg.Derived.WorldH32,
		),
		tuning: Tuning{
			Gravity:     float32(cfg.Physics.Gravity),
			Restitution: float32(cfg.Physics.Restitution),
			Friction:    float32(cfg.Physics.Friction),
			AirFriction: float32(cfg.Physics.AirFriction),
		},
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.WindowFrames),
		showPanel: true,
	}

	clockOpts := []clock.Option{clock.WithMaxDelta(float32(cfg.Physics.MaxFrameDelta))}
	if !opts.Headless {
		// Windowed mode skips frames arriving faster than the target rate.
		clockOpts = append(clockOpts, clock.WithTargetRate(float32(cfg.Screen.TargetFPS)))
	}
	g.clock = clock.New(float32(cfg.Physics.ReferenceRate), clockOpts...)
	g.camera = camera.New(
		cfg.Derived.ScreenW32,
		cfg.Derived.ScreenH32,
		g.worldSize.Scale(0.5),
	)

	g.initWorld()
	g.spawnScene()
	return g, nil
}

// initWorld creates a fresh ECS world with the mappers bound to it.
func (g *Game) initWorld() {
	g.world = ecs.NewWorld()
	g.bodyMapper = ecs.NewMap5[
		components.Position,
		components.Velocity,
		components.Extent,
		components.Mass,
		components.Tint,
	](g.world)
	g.bodyFilter = ecs.NewFilter5[
		components.Position,
		components.Velocity,
		components.Extent,
		components.Mass,
		components.Tint,
	](g.world)
}

// ResetScene discards all entities and respawns the initial scene.
func (g *Game) ResetScene() {
	g.initWorld()
	g.spawnScene()
	g.camera.Reset(g.worldSize.Scale(0.5))
	g.clock.Reset()
}

// BodyCount returns the number of entities in the world.
func (g *Game) BodyCount() int {
	count := 0
	query := g.bodyFilter.Query()
	for query.Next() {
		count++
	}
	return count
}

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// SetPaused pauses or resumes the simulation, resetting the clock on
// resume so the pause does not arrive as one giant frame delta.
func (g *Game) SetPaused(paused bool) {
	if g.paused && !paused {
		g.clock.Reset()
	}
	g.paused = paused
}

// Close flushes telemetry output.
func (g *Game) Close() error {
	return g.output.Close()
}
