// Package main is the entry point for the shadowball scene.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/shadowball/internal/config"
	"github.com/Faultbox/shadowball/internal/engine/audio"
	"github.com/Faultbox/shadowball/internal/engine/ball"
	"github.com/Faultbox/shadowball/internal/engine/camera"
	"github.com/Faultbox/shadowball/internal/engine/compositor"
	"github.com/Faultbox/shadowball/internal/engine/input"
	"github.com/Faultbox/shadowball/internal/engine/renderer"
	"github.com/Faultbox/shadowball/internal/engine/window"
	"github.com/Faultbox/shadowball/internal/game"
	"github.com/Faultbox/shadowball/internal/game/world"
	"github.com/Faultbox/shadowball/internal/logger"
	"github.com/Faultbox/shadowball/pkg/math"
)

var commands = []struct{ keys, action string }{
	{"q / Esc", "quit"},
	{"w a s d", "push the ball relative to the camera"},
	{"left drag", "orbit the camera"},
	{"wheel", "zoom"},
	{"z / x", "decrease / increase ball shininess"},
	{"c / v", "decrease / increase ball reflectivity"},
	{"b", "toggle motion blur"},
	{"l", "show / hide light sources"},
	{"p", "save a screenshot"},
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Shadowball ===")
	logger.Debug("config loaded", zap.Any("config", cfg))
	for _, c := range commands {
		logger.Info("command", zap.String("keys", c.keys), zap.String("action", c.action))
	}

	if err := run(cfg); err != nil {
		logger.Error("scene error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("scene closed normally")
}

func run(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:      "Shadowball",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer win.Close()

	// Renderer must come AFTER the window, since the OpenGL context must exist.
	width, height := win.DrawableSize()
	r, err := renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		TextureDir: cfg.Data.TextureDir,
		ShaderDir:  cfg.Data.ShaderDir,
	})
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	defer r.Close()

	comp := compositor.New(r.Accumulator(), win, cfg.Simulation.FramesPerFrame)
	comp.SetMotionBlur(cfg.Simulation.MotionBlur)

	var sound game.Sound
	if cfg.Audio.Enabled {
		mgr := audio.New(cfg.Audio.Volume)
		if err := mgr.Init(cfg.Data.BounceSound); err != nil {
			logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
		} else {
			defer mgr.Close()
			sound = mgr
		}
	}

	w := world.New(worldConfig(cfg), orbitCamera(cfg))

	g := game.New(game.Config{
		TickInterval:     cfg.Simulation.TickInterval,
		MaxTicksPerFrame: cfg.Simulation.MaxTicksPerFrame,
		ScreenshotDir:    cfg.Data.ScreenshotDir,
	}, w, sceneRenderer{r}, comp, input.New(), sound)

	return g.Run()
}

func worldConfig(cfg *config.Config) world.Config {
	return world.Config{
		Bound: cfg.Simulation.CollisionBound,
		Ball: ball.Params{
			MaxSpeed:     cfg.Simulation.Ball.MaxSpeed,
			Braking:      cfg.Simulation.Ball.Braking,
			Acceleration: cfg.Simulation.Ball.Acceleration,
		},
		Ambient:      cfg.Lighting.Ambient,
		HalfDistance: cfg.Lighting.HalfDistance,
	}
}

func orbitCamera(cfg *config.Config) *camera.OrbitCamera {
	c := camera.NewOrbitCamera()
	c.Azimuth = cfg.Camera.Azimuth
	c.Elevation = cfg.Camera.Elevation
	c.Distance = cfg.Camera.Distance
	c.MinElevation = cfg.Camera.MinElevation
	c.MaxElevation = cfg.Camera.MaxElevation
	c.MinDistance = cfg.Camera.MinDistance
	c.MaxDistance = cfg.Camera.MaxDistance
	c.DragSensitivity = cfg.Camera.DragScale
	c.ZoomStep = cfg.Camera.ZoomStep
	c.Rotate(math.Vec3{}) // clamp configured values into range
	c.ResolvePosition()
	return c
}
