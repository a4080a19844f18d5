// Package telemetry collects frame timing and scene statistics over rolling
// windows and optionally writes them to CSV for offline analysis.
package telemetry

import (
	"log/slog"
	"time"
)

// Phase names for the engine frame.
const (
	PhaseForces  = "forces"
	PhaseResolve = "resolve"
	PhaseMove    = "move"
	PhaseRender  = "render"
)

// FrameSample holds timing and scene data for a single frame.
type FrameSample struct {
	Duration   time.Duration
	Phases     map[string]time.Duration
	FrameDelta float64 // normalized delta the frame integrated with
	BodyCount  int
}

// PerfCollector tracks per-frame metrics over a rolling window.
type PerfCollector struct {
	windowSize  int
	samples     []FrameSample
	writeIndex  int
	sampleCount int

	currentPhases map[string]time.Duration
	frameStart    time.Time
	phaseStart    time.Time
	lastPhase     string
}

// NewPerfCollector creates a collector averaging over windowSize frames
// (e.g. 60 for one second at the reference rate).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		windowSize:    windowSize,
		samples:       make([]FrameSample, windowSize),
		currentPhases: make(map[string]time.Duration),
	}
}

// StartFrame begins timing a new frame.
func (p *PerfCollector) StartFrame() {
	p.frameStart = time.Now()
	p.currentPhases = make(map[string]time.Duration)
	p.lastPhase = ""
}

// StartPhase begins timing a phase, ending the previous one.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// EndFrame finishes the current frame and records the sample along with the
// frame delta and body count it ran with.
func (p *PerfCollector) EndFrame(frameDelta float64, bodyCount int) {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}

	p.samples[p.writeIndex] = FrameSample{
		Duration:   now.Sub(p.frameStart),
		Phases:     p.currentPhases,
		FrameDelta: frameDelta,
		BodyCount:  bodyCount,
	}
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}

	// The stored sample owns the phase map now.
	p.currentPhases = make(map[string]time.Duration)
	p.lastPhase = ""
}

// SampleCount returns the number of frames currently in the window.
func (p *PerfCollector) SampleCount() int {
	return p.sampleCount
}

// WindowFull reports whether the rolling window has wrapped at least once.
func (p *PerfCollector) WindowFull() bool {
	return p.sampleCount == p.windowSize
}

// window returns the valid samples in the rolling buffer.
func (p *PerfCollector) window() []FrameSample {
	return p.samples[:p.sampleCount]
}

// LogStats logs a window summary via slog.
func (s WindowStats) LogStats() {
	slog.Info("frame stats",
		"frames", s.Frames,
		"frame_ms_mean", s.FrameMsMean,
		"frame_ms_p95", s.FrameMsP95,
		"delta_mean", s.DeltaMean,
		"delta_std", s.DeltaStd,
		"bodies_mean", s.BodiesMean,
		"fps", s.FPS,
	)
}
