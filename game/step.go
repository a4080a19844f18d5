package game

import (
	"log/slog"

	"github.com/synchro0001/kitten-engine/components"
	"github.com/synchro0001/kitten-engine/physics"
	"github.com/synchro0001/kitten-engine/telemetry"
	"github.com/synchro0001/kitten-engine/vector"
)

// Step advances the simulation by one normalized frame delta: forces,
// integration, then collision resolution over all bodies.
func (g *Game) Step(dt float32) error {
	g.perf.StartPhase(telemetry.PhaseForces)

	// Snapshot the scene. Pointers stay valid for the whole step since no
	// entities are created or removed mid-frame.
	var (
		bodies     []physics.Body
		positions  []*components.Position
		velocities []*components.Velocity
	)
	query := g.bodyFilter.Query()
	for query.Next() {
		pos, vel, ext, mass, _ := query.Get()
		bodies = append(bodies, components.ToBody(pos, ext, vel, mass))
		positions = append(positions, pos)
		velocities = append(velocities, vel)
	}

	for i := range bodies {
		if bodies[i].Static() {
			continue
		}
		v, err := physics.ApplyGravity(bodies[i].Velocity, bodies[i].Mass, g.tuning.Gravity, dt)
		if err != nil {
			return err
		}
		v, err = physics.ApplyFriction(v, g.tuning.AirFriction, dt)
		if err != nil {
			return err
		}
		bodies[i].Velocity = v
	}

	g.perf.StartPhase(telemetry.PhaseMove)
	for i := range bodies {
		bodies[i].Position = physics.Move(bodies[i].Position, bodies[i].Velocity, dt)
	}

	g.perf.StartPhase(telemetry.PhaseResolve)
	resolved := physics.ResolveAll(bodies, g.tuning.Restitution, g.tuning.Friction)

	for i, b := range resolved {
		components.FromBody(b, positions[i], velocities[i])
	}

	g.frame++
	return nil
}

// LineOfSight reports whether the segment between two world points is
// clear of every body in the scene.
func (g *Game) LineOfSight(from, to vector.Vector2) bool {
	query := g.bodyFilter.Query()
	for query.Next() {
		pos, _, ext, _, _ := query.Get()
		center := vector.New(pos.X, pos.Y)
		size := vector.New(ext.W, ext.H)
		if physics.SegmentIntersects(from, to, center, size) {
			return false
		}
	}
	return true
}

// Update runs one frame of the simulation driven by the frame clock.
// Returns false when the frame arrived too fast and was skipped. Callers
// must pair a true return with FinishFrame once rendering is done.
func (g *Game) Update() (bool, error) {
	delta, ok := g.clock.Tick()
	if !ok {
		return false, nil
	}
	g.lastDelta = delta

	g.perf.StartFrame()
	if !g.paused {
		if err := g.Step(delta); err != nil {
			return false, err
		}
	}
	return true, nil
}

// FinishFrame closes the telemetry sample opened by Update.
func (g *Game) FinishFrame() {
	g.perf.EndFrame(float64(g.lastDelta), g.BodyCount())
	g.flushTelemetry()
}

// flushTelemetry writes window stats whenever the rolling window closes.
func (g *Game) flushTelemetry() {
	windowFrames := int64(g.perf.SampleCount())
	if windowFrames == 0 || !g.perf.WindowFull() || g.frame%windowFrames != 0 {
		return
	}
	stats := g.perf.Stats(g.frame)
	if g.opts.LogStats {
		stats.LogStats()
	}
	if err := g.output.WriteStats(stats); err != nil {
		// Telemetry failure should not kill the game loop.
		slog.Error("writing frame stats", "error", err)
	}
}
