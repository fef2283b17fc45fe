// Package world holds the scene's simulation state: the ball, the camera
// following it, the lights and the materials the player can tune.
package world

import (
	"go.uber.org/zap"

	"github.com/Faultbox/shadowball/internal/engine/ball"
	"github.com/Faultbox/shadowball/internal/engine/camera"
	"github.com/Faultbox/shadowball/internal/engine/input"
	"github.com/Faultbox/shadowball/internal/engine/lighting"
	"github.com/Faultbox/shadowball/internal/engine/material"
	"github.com/Faultbox/shadowball/internal/logger"
	"github.com/Faultbox/shadowball/pkg/math"
)

// Material adjustment per key press.
const (
	ShininessStep    = 0.03
	ReflectivityStep = 0.03
)

// Start is where the ball rests at startup.
var Start = math.Vec3{X: 0, Y: 1, Z: 0}

// Intent is a held movement key, relative to the camera.
type Intent int

const (
	Forward Intent = iota
	Back
	Left
	Right
	intentCount
)

// Action is a request the world cannot satisfy itself.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleMotionBlur
	ActionScreenshot
)

// Config holds the world's tunables.
type Config struct {
	Bound        float32
	Ball         ball.Params
	Ambient      float32
	HalfDistance float32
}

// DefaultConfig returns the scene's tuned values.
func DefaultConfig() Config {
	return Config{
		Bound:        9,
		Ball:         ball.DefaultParams(),
		Ambient:      0.3,
		HalfDistance: 7,
	}
}

// TickResult describes what happened during a tick.
type TickResult struct {
	Bounced bool
	Impact  float32 // reflected speed relative to the maximum, [0, 1]
}

// World is the simulation state.
type World struct {
	Camera *camera.OrbitCamera
	Ball   *ball.Ball
	Lights *lighting.Model

	BallMaterial  material.Material
	ClothMaterial material.Material
	WoodMaterial  material.Material

	ShowLights bool

	bound    float32
	floor    [5]Tile
	held     [intentCount]bool
	dragging bool
	mouseX   int32
	mouseY   int32
	log      *zap.Logger
}

// New creates the world with the ball at rest at Start.
func New(cfg Config, cam *camera.OrbitCamera) *World {
	w := &World{
		Camera:        cam,
		Ball:          ball.New(Start, cfg.Ball),
		Lights:        lighting.NewModel(cfg.Ambient, cfg.HalfDistance),
		BallMaterial:  material.Ball(),
		ClothMaterial: material.Cloth(),
		WoodMaterial:  material.Wood(),
		bound:         cfg.Bound,
		floor:         Floor(),
		log:           logger.Named("world"),
	}
	cam.SetTarget(w.Ball.Position())
	return w
}

// Floor returns the floor tiles in draw order.
func (w *World) Floor() [5]Tile {
	return w.floor
}

// Bound is the half-extent of the square the ball is confined to.
func (w *World) Bound() float32 {
	return w.bound
}

// Held reports whether a movement intent is active.
func (w *World) Held(i Intent) bool {
	return w.held[i]
}

// direction maps an intent onto the floor relative to the view direction.
func direction(i Intent, view math.Vec3) math.Vec3 {
	switch i {
	case Forward:
		return view
	case Back:
		return view.Negate()
	case Left:
		return math.Vec3{X: view.Z, Y: 0, Z: -view.X}
	default:
		return math.Vec3{X: -view.Z, Y: 0, Z: view.X}
	}
}

// Tick advances the simulation by one step. frameFraction is 1 without
// motion blur and 1/N with N blur sub-frames.
func (w *World) Tick(frameFraction float32) TickResult {
	view := w.Camera.ViewDirection()
	for i := Intent(0); i < intentCount; i++ {
		if w.held[i] {
			w.Ball.ApplyIntent(direction(i, view), frameFraction)
		}
	}

	w.Ball.Integrate(frameFraction)

	pos := w.Ball.Position()
	vel := w.Ball.Velocity()
	var result TickResult
	if w.Ball.ApplyBoundaryReflection(w.bound) {
		var speed float32
		if math.Abs(pos.X) > w.bound {
			speed = math.Abs(vel.X)
		}
		if math.Abs(pos.Z) > w.bound {
			speed = max(speed, math.Abs(vel.Z))
		}
		result.Bounced = true
		if w.Ball.MaxSpeed > 0 {
			result.Impact = math.Clamp(speed/w.Ball.MaxSpeed, 0, 1)
		}
	}

	w.Camera.SetTarget(w.Ball.Position())
	return result
}

// HandleKey applies a key press or release. Repeated presses adjust the
// ball material again but never re-toggle.
func (w *World) HandleKey(key input.Key, down, repeat bool) Action {
	if i, ok := intentFor(key); ok {
		w.held[i] = down
		return ActionNone
	}
	if !down {
		return ActionNone
	}

	switch key {
	case input.KeyQ, input.KeyEscape:
		return ActionQuit
	case input.KeyZ:
		w.BallMaterial.AdjustShininess(-ShininessStep)
		w.logMaterial()
	case input.KeyX:
		w.BallMaterial.AdjustShininess(ShininessStep)
		w.logMaterial()
	case input.KeyC:
		w.BallMaterial.AdjustReflectivity(-ReflectivityStep)
		w.logMaterial()
	case input.KeyV:
		w.BallMaterial.AdjustReflectivity(ReflectivityStep)
		w.logMaterial()
	case input.KeyB:
		if !repeat {
			return ActionToggleMotionBlur
		}
	case input.KeyP:
		if !repeat {
			return ActionScreenshot
		}
	case input.KeyL:
		if !repeat {
			w.ShowLights = !w.ShowLights
			w.log.Info("light markers toggled", zap.Bool("light_markers", w.ShowLights))
		}
	}
	return ActionNone
}

func (w *World) logMaterial() {
	w.log.Debug("ball material",
		zap.Float32("shininess", w.BallMaterial.Shininess),
		zap.Float32("reflectivity", w.BallMaterial.Reflectivity),
	)
}

func intentFor(key input.Key) (Intent, bool) {
	switch key {
	case input.KeyW:
		return Forward, true
	case input.KeyS:
		return Back, true
	case input.KeyA:
		return Left, true
	case input.KeyD:
		return Right, true
	}
	return 0, false
}

// HandleMouseButton starts or ends a camera drag with the left button.
func (w *World) HandleMouseButton(button uint8, down bool, x, y int32) {
	if button != input.ButtonLeft {
		return
	}
	w.dragging = down
	w.mouseX, w.mouseY = x, y
}

// HandleMouseMove orbits the camera while dragging.
func (w *World) HandleMouseMove(x, y int32) {
	if !w.dragging {
		return
	}
	w.Camera.Drag(float32(x-w.mouseX), float32(y-w.mouseY))
	w.mouseX, w.mouseY = x, y
}

// HandleWheel zooms the camera; positive steps move it closer.
func (w *World) HandleWheel(steps int32) {
	w.Camera.Zoom(float32(steps))
}

// Dragging reports whether the camera is being dragged.
func (w *World) Dragging() bool {
	return w.dragging
}
