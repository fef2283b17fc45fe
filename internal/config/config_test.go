package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1440 || cfg.Graphics.Height != 900 {
		t.Errorf("expected 1440x900, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}

	// Simulation defaults
	if cfg.Simulation.TickInterval != 10*time.Millisecond {
		t.Errorf("expected tick interval 10ms, got %v", cfg.Simulation.TickInterval)
	}
	if cfg.Simulation.FramesPerFrame != 3 {
		t.Errorf("expected 3 frames per frame, got %d", cfg.Simulation.FramesPerFrame)
	}
	if cfg.Simulation.CollisionBound != 9.0 {
		t.Errorf("expected collision bound 9, got %f", cfg.Simulation.CollisionBound)
	}
	if cfg.Simulation.MotionBlur {
		t.Error("expected motion blur off by default")
	}
	if cfg.Simulation.Ball.MaxSpeed != 0.3 {
		t.Errorf("expected max speed 0.3, got %f", cfg.Simulation.Ball.MaxSpeed)
	}

	// Camera defaults
	if cfg.Camera.Azimuth != 295 || cfg.Camera.Elevation != -73 || cfg.Camera.Distance != 4 {
		t.Errorf("unexpected camera pose %+v", cfg.Camera)
	}

	if cfg.Lighting.HalfDistance != 7 {
		t.Errorf("expected half distance 7, got %f", cfg.Lighting.HalfDistance)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }},
		{"zero tick", func(c *Config) { c.Simulation.TickInterval = 0 }},
		{"no sub-frames", func(c *Config) { c.Simulation.FramesPerFrame = 0 }},
		{"no ticks per frame", func(c *Config) { c.Simulation.MaxTicksPerFrame = 0 }},
		{"negative bound", func(c *Config) { c.Simulation.CollisionBound = -1 }},
		{"inverted elevation", func(c *Config) { c.Camera.MinElevation = 10 }},
		{"inverted distance", func(c *Config) { c.Camera.MinDistance = 20 }},
		{"zero half distance", func(c *Config) { c.Lighting.HalfDistance = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

simulation:
  tick_interval: 5ms
  frames_per_frame: 6
  motion_blur: true
  ball:
    max_speed: 0.5

camera:
  distance: 8

audio:
  enabled: false

data:
  texture_dir: "/opt/textures"
  bounce_sound: "bounce.wav"

logging:
  level: "debug"
  log_file: "scene.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Simulation.TickInterval != 5*time.Millisecond {
		t.Errorf("expected tick interval 5ms, got %v", cfg.Simulation.TickInterval)
	}
	if cfg.Simulation.FramesPerFrame != 6 {
		t.Errorf("expected 6 frames per frame, got %d", cfg.Simulation.FramesPerFrame)
	}
	if !cfg.Simulation.MotionBlur {
		t.Error("expected motion blur on")
	}
	if cfg.Simulation.Ball.MaxSpeed != 0.5 {
		t.Errorf("expected max speed 0.5, got %f", cfg.Simulation.Ball.MaxSpeed)
	}
	// Untouched keys keep their defaults.
	if cfg.Simulation.Ball.Acceleration != 0.005 {
		t.Errorf("expected default acceleration, got %f", cfg.Simulation.Ball.Acceleration)
	}
	if cfg.Camera.Distance != 8 || cfg.Camera.Azimuth != 295 {
		t.Errorf("unexpected camera %+v", cfg.Camera)
	}
	if cfg.Audio.Enabled {
		t.Error("expected audio disabled")
	}
	if cfg.Data.TextureDir != "/opt/textures" || cfg.Data.BounceSound != "bounce.wav" {
		t.Errorf("unexpected data config %+v", cfg.Data)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "scene.log" {
		t.Errorf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); filepath.Base(path) != "config.yaml" {
		t.Errorf("expected config.yaml in current directory, got %q", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "shadowball.yaml"), []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); filepath.Base(path) != "shadowball.yaml" {
		t.Errorf("expected shadowball.yaml to take precedence, got %q", path)
	}
}

func TestResolvePath(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)
	os.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	t.Setenv(EnvConfig, "/from/env.yaml")
	if got := resolvePath(); got != "/from/env.yaml" {
		t.Errorf("resolvePath() = %q, want the env path", got)
	}

	*flagConfig = "/from/flag.yaml"
	defer func() { *flagConfig = "" }()
	if got := resolvePath(); got != "/from/flag.yaml" {
		t.Errorf("resolvePath() = %q, want the flag path", got)
	}
}

func TestLoadFromFileUnknownKey(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  widht: 800\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error for misspelt key, got nil")
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("empty file should load cleanly: %v", err)
	}
	if *cfg != *Default() {
		t.Error("empty file should leave defaults untouched")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "blur flags",
			setup: func() {
				*flagBlur = true
				*flagBlurFrames = 5
			},
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Simulation.MotionBlur {
					t.Error("expected motion blur enabled")
				}
				if cfg.Simulation.FramesPerFrame != 5 {
					t.Errorf("expected 5 frames per frame, got %d", cfg.Simulation.FramesPerFrame)
				}
			},
			teardown: func() {
				*flagBlur = false
				*flagBlurFrames = 0
			},
		},
		{
			name: "textures and mute flags",
			setup: func() {
				*flagTextures = "assets/tex"
				*flagMute = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Data.TextureDir != "assets/tex" {
					t.Errorf("expected texture dir override, got %s", cfg.Data.TextureDir)
				}
				if cfg.Audio.Enabled {
					t.Error("expected audio disabled with mute flag")
				}
			},
			teardown: func() {
				*flagTextures = ""
				*flagMute = false
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("simulation:\n  frames_per_frame: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected validation error from Load")
	}
}
