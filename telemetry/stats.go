package telemetry

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one window of frames.
type WindowStats struct {
	WindowEnd int64   `csv:"window_end"` // frame counter at window close
	Frames    int     `csv:"frames"`
	FPS       float64 `csv:"fps"`

	// Frame duration in milliseconds
	FrameMsMean float64 `csv:"frame_ms_mean"`
	FrameMsStd  float64 `csv:"frame_ms_std"`
	FrameMsP50  float64 `csv:"frame_ms_p50"`
	FrameMsP95  float64 `csv:"frame_ms_p95"`

	// Normalized frame delta the integrator ran with
	DeltaMean float64 `csv:"delta_mean"`
	DeltaStd  float64 `csv:"delta_std"`

	// Scene size
	BodiesMean float64 `csv:"bodies_mean"`
	BodiesMax  int     `csv:"bodies_max"`

	// Phase means in milliseconds
	ForcesMsMean  float64 `csv:"forces_ms_mean"`
	ResolveMsMean float64 `csv:"resolve_ms_mean"`
	MoveMsMean    float64 `csv:"move_ms_mean"`
	RenderMsMean  float64 `csv:"render_ms_mean"`
}

// Stats aggregates the collector's current window. windowEnd is the frame
// counter at the time of the call.
func (p *PerfCollector) Stats(windowEnd int64) WindowStats {
	samples := p.window()
	s := WindowStats{WindowEnd: windowEnd, Frames: len(samples)}
	if len(samples) == 0 {
		return s
	}

	frameMs := make([]float64, len(samples))
	deltas := make([]float64, len(samples))
	bodies := make([]float64, len(samples))
	phaseSum := map[string]time.Duration{}

	for i, sm := range samples {
		frameMs[i] = float64(sm.Duration) / float64(time.Millisecond)
		deltas[i] = sm.FrameDelta
		bodies[i] = float64(sm.BodyCount)
		if sm.BodyCount > s.BodiesMax {
			s.BodiesMax = sm.BodyCount
		}
		for phase, dur := range sm.Phases {
			phaseSum[phase] += dur
		}
	}

	s.FrameMsMean = stat.Mean(frameMs, nil)
	s.FrameMsStd = stat.StdDev(frameMs, nil)
	s.DeltaMean = stat.Mean(deltas, nil)
	s.DeltaStd = stat.StdDev(deltas, nil)
	s.BodiesMean = stat.Mean(bodies, nil)

	// Quantiles need sorted input.
	sorted := make([]float64, len(frameMs))
	copy(sorted, frameMs)
	sort.Float64s(sorted)
	s.FrameMsP50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	s.FrameMsP95 = stat.Quantile(0.95, stat.Empirical, sorted, nil)

	if s.FrameMsMean > 0 {
		s.FPS = 1000 / s.FrameMsMean
	}

	n := time.Duration(len(samples))
	s.ForcesMsMean = float64(phaseSum[PhaseForces]/n) / float64(time.Millisecond)
	s.ResolveMsMean = float64(phaseSum[PhaseResolve]/n) / float64(time.Millisecond)
	s.MoveMsMean = float64(phaseSum[PhaseMove]/n) / float64(time.Millisecond)
	s.RenderMsMean = float64(phaseSum[PhaseRender]/n) / float64(time.Millisecond)

	return s
}
