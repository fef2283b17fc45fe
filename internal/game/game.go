// Package game implements the main loop: fixed-rate simulation ticks, input
// dispatch and the ordered redraw handed to the compositor.
package game

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/shadowball/internal/engine/capture"
	"github.com/Faultbox/shadowball/internal/engine/compositor"
	"github.com/Faultbox/shadowball/internal/engine/input"
	"github.com/Faultbox/shadowball/internal/engine/lighting"
	"github.com/Faultbox/shadowball/internal/engine/material"
	"github.com/Faultbox/shadowball/internal/game/world"
	"github.com/Faultbox/shadowball/internal/logger"
	"github.com/Faultbox/shadowball/pkg/math"
)

// Renderer draws the scene. Calls arrive in the order of one frame.
type Renderer interface {
	ShadowPass(lights [lighting.LightCount]math.Vec3, ballModel math.Mat4, ballPos math.Vec3)
	Clear()
	SetCamera(view math.Mat4, eye math.Vec3)
	BindLighting(set lighting.LightSet)
	BindMaterial(m material.Material)
	DrawBall(model math.Mat4)
	DrawPlane(tile world.Tile)
	DrawLights(positions [lighting.LightCount]math.Vec3, intensities [lighting.LightCount]math.Vec4)
	DrawSkybox()
	Resize(width, height int32)
	ReadFrame() (pixels []byte, width, height int)
}

// Sound plays effects triggered by the simulation.
type Sound interface {
	PlayBounce(strength float64)
}

type silence struct{}

func (silence) PlayBounce(float64) {}

// Config holds loop timing and output locations.
type Config struct {
	TickInterval     time.Duration
	MaxTicksPerFrame int
	ScreenshotDir    string
}

// Game is the main game instance.
type Game struct {
	config     Config
	world      *world.World
	renderer   Renderer
	compositor *compositor.Compositor
	events     input.Source
	sound      Sound
	shots      *capture.Writer

	running    bool
	screenshot bool
	lag        time.Duration
	last       time.Time
	now        func() time.Time
	sleep      func(time.Duration)
	log        *zap.Logger

	frames   int
	fpsTimer time.Time
}

// New creates a new game instance. sound may be nil.
func New(cfg Config, w *world.World, r Renderer, comp *compositor.Compositor, events input.Source, sound Sound) *Game {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = 10 * time.Millisecond
	}
	if cfg.MaxTicksPerFrame < 1 {
		cfg.MaxTicksPerFrame = 1
	}
	if sound == nil {
		sound = silence{}
	}
	return &Game{
		config:     cfg,
		world:      w,
		renderer:   r,
		compositor: comp,
		events:     events,
		sound:      sound,
		shots:      capture.NewWriter(cfg.ScreenshotDir, "shadowball"),
		now:        time.Now,
		sleep:      time.Sleep,
		log:        logger.Named("game"),
	}
}

// Run starts the main game loop and returns when the player quits.
func (g *Game) Run() error {
	g.start()
	g.log.Info("starting game loop",
		zap.Duration("tick", g.config.TickInterval),
		zap.Int("max_ticks_per_frame", g.config.MaxTicksPerFrame),
	)

	for g.running {
		g.Step()
	}

	g.log.Info("game loop stopped")
	return nil
}

func (g *Game) start() {
	g.running = true
	g.lag = 0
	g.last = g.now()
	g.fpsTimer = g.last
}

// Step runs one loop iteration: events, due ticks, and at most one redraw.
func (g *Game) Step() {
	for _, e := range g.events.Poll() {
		g.handleEvent(e)
	}
	if !g.running {
		return
	}

	ticks := g.advance()
	if ticks == 0 {
		g.sleep(g.config.TickInterval - g.lag)
		return
	}

	g.drawFrame()
	if g.screenshot {
		g.screenshot = false
		g.saveScreenshot()
	}
	g.countFrame()
}

// advance runs the ticks due since the last call. When more than
// MaxTicksPerFrame are due the backlog is dropped rather than replayed.
func (g *Game) advance() int {
	now := g.now()
	g.lag += now.Sub(g.last)
	g.last = now

	ticks := 0
	for g.lag >= g.config.TickInterval && ticks < g.config.MaxTicksPerFrame {
		g.tick()
		g.lag -= g.config.TickInterval
		ticks++
	}
	if g.lag >= g.config.TickInterval {
		g.log.Debug("dropping simulation backlog", zap.Duration("lag", g.lag))
		g.lag = 0
	}
	return ticks
}

func (g *Game) tick() {
	res := g.world.Tick(g.compositor.FrameFraction())
	if res.Bounced {
		g.sound.PlayBounce(float64(res.Impact))
	}
}

func (g *Game) handleEvent(e input.Event) {
	switch e.Type {
	case input.EventQuit:
		g.running = false
	case input.EventWindowResize:
		g.renderer.Resize(e.Width, e.Height)
	case input.EventKeyDown, input.EventKeyUp:
		switch g.world.HandleKey(e.Key, e.Type == input.EventKeyDown, e.Repeat) {
		case world.ActionQuit:
			g.log.Info("quit requested", zap.Stringer("key", e.Key))
			g.running = false
		case world.ActionToggleMotionBlur:
			g.compositor.ToggleMotionBlur()
		case world.ActionScreenshot:
			g.screenshot = true
		}
	case input.EventMouseDown, input.EventMouseUp:
		g.world.HandleMouseButton(e.Button, e.Type == input.EventMouseDown, e.MouseX, e.MouseY)
	case input.EventMouseMove:
		g.world.HandleMouseMove(e.MouseX, e.MouseY)
	case input.EventWheel:
		g.world.HandleWheel(e.Wheel)
	}
}

// drawFrame renders one (sub-)frame: shadow maps first, then the lit scene
// back to front by category, the skybox last.
func (g *Game) drawFrame() {
	w := g.world
	r := g.renderer

	ballModel := w.Ball.ModelMatrix()
	lights := w.Lights.WorldPositions()
	r.ShadowPass(lights, ballModel, w.Ball.Position())

	r.Clear()
	view := w.Camera.ViewMatrix()
	r.SetCamera(view, w.Camera.Position())
	r.BindLighting(w.Lights.Snapshot(view))

	r.BindMaterial(w.BallMaterial)
	r.DrawBall(ballModel)

	floor := w.Floor()
	r.BindMaterial(w.ClothMaterial)
	r.DrawPlane(floor[0])
	r.BindMaterial(w.WoodMaterial)
	for _, tile := range floor[1:] {
		r.DrawPlane(tile)
	}

	if w.ShowLights {
		var intensities [lighting.LightCount]math.Vec4
		for i := range intensities {
			intensities[i] = w.Lights.Intensity(i)
		}
		r.DrawLights(lights, intensities)
	}

	r.DrawSkybox()
	g.compositor.Complete()
}

func (g *Game) saveScreenshot() {
	pixels, w, h := g.renderer.ReadFrame()
	path, err := g.shots.Save(pixels, w, h)
	if err != nil {
		g.log.Error("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", path))
}

func (g *Game) countFrame() {
	g.frames++
	if elapsed := g.now().Sub(g.fpsTimer); elapsed >= time.Second {
		g.log.Debug("fps", zap.Int("frames", g.frames), zap.Duration("elapsed", elapsed))
		g.frames = 0
		g.fpsTimer = g.now()
	}
}

// Running reports whether the loop is active.
func (g *Game) Running() bool {
	return g.running
}
