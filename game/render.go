package game

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/synchro0001/kitten-engine/telemetry"
	"github.com/synchro0001/kitten-engine/vector"
)

// Panel geometry for the tuning UI.
const (
	panelX = 10
	panelY = 10
	panelW = 270
	panelH = 210
)

// Draw renders the scene and UI for one frame.
func (g *Game) Draw() {
	g.perf.StartPhase(telemetry.PhaseRender)

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(24, 26, 34, 255))

	g.drawBodies()
	g.drawSightLine()
	if g.showPanel {
		g.drawPanel()
	}
	g.drawHUD()

	rl.EndDrawing()
}

// drawBodies draws every body as a screen-space rectangle through the
// camera transform.
func (g *Game) drawBodies() {
	rotationDeg := -g.camera.Rotation * 180 / math.Pi

	query := g.bodyFilter.Query()
	for query.Next() {
		pos, _, ext, _, tint := query.Get()

		center := vector.New(pos.X, pos.Y)
		halfDiag := float32(math.Hypot(float64(ext.W), float64(ext.H))) / 2
		if !g.camera.IsVisible(center, halfDiag) {
			continue
		}

		screen := g.camera.WorldToScreen(center)
		w := ext.W * g.camera.Zoom
		h := ext.H * g.camera.Zoom

		rl.DrawRectanglePro(
			rl.Rectangle{X: screen.X, Y: screen.Y, Width: w, Height: h},
			rl.Vector2{X: w / 2, Y: h / 2},
			rotationDeg,
			rl.NewColor(tint.R, tint.G, tint.B, tint.A),
		)
	}
}

// drawSightLine draws the line-of-sight probe, green when clear and red
// when any body blocks it.
func (g *Game) drawSightLine() {
	if !g.sightActive {
		return
	}

	mouse := rl.GetMousePosition()
	target := g.camera.ScreenToWorld(vector.New(mouse.X, mouse.Y))

	color := rl.Green
	if !g.LineOfSight(g.sightAnchor, target) {
		color = rl.Red
	}

	from := g.camera.WorldToScreen(g.sightAnchor)
	to := g.camera.WorldToScreen(target)
	rl.DrawLineEx(rl.Vector2{X: from.X, Y: from.Y}, rl.Vector2{X: to.X, Y: to.Y}, 2, color)
}

// drawPanel draws the raygui tuning panel for the physics parameters.
func (g *Game) drawPanel() {
	rl.DrawRectangle(panelX, panelY, panelW, panelH, rl.NewColor(0, 0, 0, 170))
	rl.DrawRectangleLines(panelX, panelY, panelW, panelH, rl.Gray)
	rl.DrawText("physics", panelX+10, panelY+8, 12, rl.LightGray)

	slider := func(row int, label string, value, min, max float32) float32 {
		bounds := rl.Rectangle{
			X:      panelX + 90,
			Y:      float32(panelY + 32 + row*30),
			Width:  panelW - 110,
			Height: 18,
		}
		rl.DrawText(label, panelX+10, int32(bounds.Y)+3, 10, rl.LightGray)
		return gui.SliderBar(bounds, "", fmt.Sprintf("%.2f", value), value, min, max)
	}

	g.tuning.Gravity = slider(0, "gravity", g.tuning.Gravity, 0, 3)
	g.tuning.Restitution = slider(1, "restitution", g.tuning.Restitution, 0, 1)
	g.tuning.Friction = slider(2, "friction", g.tuning.Friction, 0, 1)
	g.tuning.AirFriction = slider(3, "air friction", g.tuning.AirFriction, 0.8, 1)

	buttonY := float32(panelY + 32 + 4*30)
	label := "pause"
	if g.paused {
		label = "resume"
	}
	if gui.Button(rl.Rectangle{X: panelX + 10, Y: buttonY, Width: 80, Height: 24}, label) {
		g.SetPaused(!g.paused)
	}
	if gui.Button(rl.Rectangle{X: panelX + 100, Y: buttonY, Width: 80, Height: 24}, "reset") {
		g.ResetScene()
	}
}

// drawHUD draws the status line at the bottom of the screen.
func (g *Game) drawHUD() {
	status := fmt.Sprintf("bodies %d | frame %d | zoom %.2fx | space pause, r reset, l sight line, tab panel",
		g.BodyCount(), g.frame, g.camera.Zoom)
	rl.DrawText(status, 10, int32(rl.GetScreenHeight())-24, 10, rl.LightGray)

	if g.paused {
		rl.DrawText("paused", int32(rl.GetScreenWidth())/2-30, 10, 20, rl.Yellow)
	}
}

// pointOverPanel reports whether a screen point is inside the tuning
// panel, so clicks there do not spawn boxes.
func (g *Game) pointOverPanel(x, y float32) bool {
	return g.showPanel &&
		x >= panelX && x <= panelX+panelW &&
		y >= panelY && y <= panelY+panelH
}

// RunFrame executes one windowed frame: input, simulation, drawing.
func (g *Game) RunFrame() error {
	g.handleInput()

	ran, err := g.Update()
	if err != nil {
		return err
	}

	g.Draw()
	if ran {
		g.FinishFrame()
	}
	return nil
}
