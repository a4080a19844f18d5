package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/synchro0001/kitten-engine/vector"
)

// handleInput processes keyboard and mouse input for one frame.
func (g *Game) handleInput() {
	if rl.IsWindowResized() {
		g.camera.Resize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.SetPaused(!g.paused)
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.ResetScene()
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.showPanel = !g.showPanel
	}

	g.handleCameraInput()
	g.handleMouseInput()
}

// handleCameraInput applies pan, zoom, and rotation controls.
func (g *Game) handleCameraInput() {
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		d := rl.GetMouseDelta()
		g.camera.Pan(-d.X, -d.Y)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.camera.ZoomBy(1 + wheel*0.1)
	}

	if rl.IsKeyDown(rl.KeyQ) {
		g.camera.Rotation += 0.02
	}
	if rl.IsKeyDown(rl.KeyE) {
		g.camera.Rotation -= 0.02
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset(g.worldSize.Scale(0.5))
	}
}

// handleMouseInput spawns boxes and drives the sight-line probe.
func (g *Game) handleMouseInput() {
	mouse := rl.GetMousePosition()
	if g.pointOverPanel(mouse.X, mouse.Y) {
		return
	}

	world := g.camera.ScreenToWorld(vector.New(mouse.X, mouse.Y))

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		g.SpawnBox(world)
	}

	// L anchors the sight line at the cursor; holding it shows the probe
	// from the anchor to the current cursor position.
	if rl.IsKeyPressed(rl.KeyL) {
		g.sightAnchor = world
		g.sightActive = true
	}
	if rl.IsKeyReleased(rl.KeyL) {
		g.sightActive = false
	}
}
