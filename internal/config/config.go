// Package config handles scene configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds all application settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Simulation SimulationConfig `yaml:"simulation"`
	Camera     CameraConfig     `yaml:"camera"`
	Lighting   LightingConfig   `yaml:"lighting"`
	Audio      AudioConfig      `yaml:"audio"`
	Data       DataConfig       `yaml:"data"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// SimulationConfig holds the fixed-tick simulation settings.
type SimulationConfig struct {
	TickInterval     time.Duration `yaml:"tick_interval"`
	MaxTicksPerFrame int           `yaml:"max_ticks_per_frame"`
	CollisionBound   float32       `yaml:"collision_bound"`
	FramesPerFrame   int           `yaml:"frames_per_frame"` // motion blur sub-frames
	MotionBlur       bool          `yaml:"motion_blur"`
	Ball             BallConfig    `yaml:"ball"`
}

// BallConfig holds the ball's kinematic constants, in world units per tick.
type BallConfig struct {
	MaxSpeed     float32 `yaml:"max_speed"`
	Braking      float32 `yaml:"braking"`
	Acceleration float32 `yaml:"acceleration"`
}

// CameraConfig holds orbit camera parameters. Angles are in degrees.
type CameraConfig struct {
	Azimuth      float32 `yaml:"azimuth"`
	Elevation    float32 `yaml:"elevation"`
	Distance     float32 `yaml:"distance"`
	MinElevation float32 `yaml:"min_elevation"`
	MaxElevation float32 `yaml:"max_elevation"`
	MinDistance  float32 `yaml:"min_distance"`
	MaxDistance  float32 `yaml:"max_distance"`
	DragScale    float32 `yaml:"drag_scale"`
	ZoomStep     float32 `yaml:"zoom_step"`
}

// LightingConfig holds the shared lighting terms.
type LightingConfig struct {
	Ambient      float32 `yaml:"ambient"`
	HalfDistance float32 `yaml:"half_distance"` // distance at which a light falls to half intensity
}

// AudioConfig holds sound effect settings.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// DataConfig holds asset locations.
type DataConfig struct {
	TextureDir    string `yaml:"texture_dir"`
	ShaderDir     string `yaml:"shader_dir"`   // overrides the embedded shaders when set
	BounceSound   string `yaml:"bounce_sound"` // optional WAV, a synthesized thud is used otherwise
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the scene's tuned values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1440,
			Height:     900,
			Fullscreen: false,
			VSync:      true,
		},
		Simulation: SimulationConfig{
			TickInterval:     10 * time.Millisecond,
			MaxTicksPerFrame: 8,
			CollisionBound:   9.0,
			FramesPerFrame:   3,
			MotionBlur:       false,
			Ball: BallConfig{
				MaxSpeed:     0.3,
				Braking:      0.001,
				Acceleration: 0.005,
			},
		},
		Camera: CameraConfig{
			Azimuth:      295,
			Elevation:    -73,
			Distance:     4,
			MinElevation: -87,
			MaxElevation: -1,
			MinDistance:  3,
			MaxDistance:  12,
			DragScale:    0.2,
			ZoomStep:     0.5,
		},
		Lighting: LightingConfig{
			Ambient:      0.3,
			HalfDistance: 7,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
		Data: DataConfig{
			TextureDir:    "data/textures",
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports settings the scene cannot run with.
func (c *Config) Validate() error {
	var errs []error

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Simulation.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("simulation: tick_interval must be positive, got %v", c.Simulation.TickInterval))
	}
	if c.Simulation.MaxTicksPerFrame < 1 {
		errs = append(errs, fmt.Errorf("simulation: max_ticks_per_frame must be at least 1"))
	}
	if c.Simulation.FramesPerFrame < 1 {
		errs = append(errs, fmt.Errorf("simulation: frames_per_frame must be at least 1, got %d", c.Simulation.FramesPerFrame))
	}
	if c.Simulation.CollisionBound <= 0 {
		errs = append(errs, fmt.Errorf("simulation: collision_bound must be positive"))
	}
	if c.Simulation.Ball.MaxSpeed <= 0 {
		errs = append(errs, fmt.Errorf("simulation: ball max_speed must be positive"))
	}
	if c.Camera.MinElevation > c.Camera.MaxElevation {
		errs = append(errs, fmt.Errorf("camera: min_elevation %v > max_elevation %v", c.Camera.MinElevation, c.Camera.MaxElevation))
	}
	if c.Camera.MinDistance <= 0 || c.Camera.MinDistance > c.Camera.MaxDistance {
		errs = append(errs, fmt.Errorf("camera: invalid distance range [%v, %v]", c.Camera.MinDistance, c.Camera.MaxDistance))
	}
	if c.Lighting.HalfDistance <= 0 {
		errs = append(errs, fmt.Errorf("lighting: half_distance must be positive"))
	}

	return errors.Join(errs...)
}
