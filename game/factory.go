package game

import (
	"github.com/synchro0001/kitten-engine/components"
	"github.com/synchro0001/kitten-engine/config"
	"github.com/synchro0001/kitten-engine/vector"
)

// spawnScene builds the initial sandbox: static border walls plus a shower
// of dynamic boxes above the floor.
func (g *Game) spawnScene() {
	g.spawnWalls()

	cfg := config.Cfg().Demo
	for i := 0; i < cfg.BoxCount; i++ {
		pos := vector.New(
			g.rng.Float32()*g.worldSize.X,
			g.worldSize.Y*(0.5+float32(cfg.SpawnHeight)*g.rng.Float32()*0.5),
		)
		g.SpawnBox(pos)
	}
}

// spawnWalls creates the static floor, ceiling, and side walls that keep
// the boxes inside the world.
func (g *Game) spawnWalls() {
	cfg := config.Cfg().Demo
	depth := float32(cfg.WallDepth)
	w, h := g.worldSize.X, g.worldSize.Y

	walls := []struct {
		pos, size vector.Vector2
	}{
		{vector.New(w/2, -depth/2), vector.New(w+2*depth, depth)},  // floor
		{vector.New(w/2, h+depth/2), vector.New(w+2*depth, depth)}, // ceiling
		{vector.New(-depth/2, h/2), vector.New(depth, h)},          // left
		{vector.New(w+depth/2, h/2), vector.New(depth, h)},         // right
	}

	for _, wall := range walls {
		g.bodyMapper.NewEntity(
			&components.Position{X: wall.pos.X, Y: wall.pos.Y},
			&components.Velocity{},
			&components.Extent{W: wall.size.X, H: wall.size.Y},
			&components.Mass{}, // zero mass: static
			&components.Tint{R: 90, G: 90, B: 100, A: 255},
		)
	}
}

// SpawnBox creates a dynamic box at the given world position with random
// size, mass, and initial velocity.
func (g *Game) SpawnBox(pos vector.Vector2) {
	cfg := config.Cfg().Demo

	size := float32(cfg.MinBoxSize) + g.rng.Float32()*float32(cfg.MaxBoxSize-cfg.MinBoxSize)
	mass := float32(cfg.MinBoxMass) + g.rng.Float32()*float32(cfg.MaxBoxMass-cfg.MinBoxMass)
	vel := vector.UnitRandom(g.rng).Scale(float32(cfg.SpawnSpeed))

	// Heavier boxes render darker so mass is visible at a glance.
	shade := uint8(255 - 140*(mass-float32(cfg.MinBoxMass))/float32(cfg.MaxBoxMass-cfg.MinBoxMass))

	g.bodyMapper.NewEntity(
		&components.Position{X: pos.X, Y: pos.Y},
		&components.Velocity{X: vel.X, Y: vel.Y},
		&components.Extent{W: size, H: size},
		&components.Mass{Value: mass},
		&components.Tint{R: shade, G: uint8(120 + g.rng.Intn(100)), B: 80, A: 255},
	)
}
