// Package config provides configuration loading and access for the engine.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all engine configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Demo      DemoConfig      `yaml:"demo"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds world dimensions in world units. The world can differ
// from the screen; the camera handles the viewport.
type WorldConfig struct {
	Width  int `yaml:"width"`  // 0 = use screen width
	Height int `yaml:"height"` // 0 = use screen height
}

// PhysicsConfig holds the simulation step parameters.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`        // downward force magnitude
	Restitution   float64 `yaml:"restitution"`    // default bounciness [0, 1]
	Friction      float64 `yaml:"friction"`       // default contact friction
	AirFriction   float64 `yaml:"air_friction"`   // velocity kept per reference frame
	ReferenceRate float64 `yaml:"reference_rate"` // fps at which frame delta == 1.0
	MaxFrameDelta float64 `yaml:"max_frame_delta"`
}

// DemoConfig holds sandbox scene parameters.
type DemoConfig struct {
	BoxCount    int     `yaml:"box_count"`
	MinBoxSize  float64 `yaml:"min_box_size"`
	MaxBoxSize  float64 `yaml:"max_box_size"`
	MinBoxMass  float64 `yaml:"min_box_mass"`
	MaxBoxMass  float64 `yaml:"max_box_mass"`
	SpawnSpeed  float64 `yaml:"spawn_speed"`  // initial speed of spawned boxes
	WallDepth   float64 `yaml:"wall_depth"`   // thickness of the static border walls
	SpawnHeight float64 `yaml:"spawn_height"` // fraction of world height boxes spawn above
}

// TelemetryConfig holds frame statistics parameters.
type TelemetryConfig struct {
	WindowFrames int `yaml:"window_frames"` // frames per aggregation window
}

// DerivedConfig holds values derived from loaded config.
type DerivedConfig struct {
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
	WorldW32  float32 // Effective world width as float32
	WorldH32  float32 // Effective world height as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	// World dimensions default to screen size if not specified
	worldW := c.World.Width
	if worldW == 0 {
		worldW = c.Screen.Width
	}
	worldH := c.World.Height
	if worldH == 0 {
		worldH = c.Screen.Height
	}
	c.Derived.WorldW32 = float32(worldW)
	c.Derived.WorldH32 = float32(worldH)
}
