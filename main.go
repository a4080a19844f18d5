package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/synchro0001/kitten-engine/config"
	"github.com/synchro0001/kitten-engine/game"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output frame stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV frame stats")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxFrames := flag.Int64("max-frames", 0, "Stop after N frames (0 = unlimited)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Structured JSON logging to stdout
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	opts := game.Options{
		Seed:      rngSeed,
		Headless:  *headless,
		OutputDir: *outputDir,
		LogStats:  *logStats,
	}

	if *headless {
		runHeadless(opts, *maxFrames)
		return
	}

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "kitten engine")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.New(opts)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer g.Close()

	slog.Info("starting", "seed", rngSeed, "screen_w", cfg.Screen.Width, "screen_h", cfg.Screen.Height)

	for !rl.WindowShouldClose() {
		if err := g.RunFrame(); err != nil {
			slog.Error("frame failed", "error", err)
			os.Exit(1)
		}
	}
}

// runHeadless drives the simulation without a window, as fast as the clock
// allows. Used for soak runs and telemetry capture.
func runHeadless(opts game.Options, maxFrames int64) {
	g, err := game.New(opts)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer g.Close()

	slog.Info("starting headless", "seed", opts.Seed, "max_frames", maxFrames)

	var frames int64
	for maxFrames == 0 || frames < maxFrames {
		ran, err := g.Update()
		if err != nil {
			slog.Error("frame failed", "error", err)
			os.Exit(1)
		}
		if !ran {
			continue
		}
		g.FinishFrame()
		frames++
	}

	slog.Info("finished", "frames", frames)
}
