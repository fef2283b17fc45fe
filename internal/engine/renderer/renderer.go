// Package renderer provides the OpenGL lit pass for the scene.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/shadowball/internal/engine/camera"
	"github.com/Faultbox/shadowball/internal/engine/framebuffer"
	"github.com/Faultbox/shadowball/internal/engine/lighting"
	"github.com/Faultbox/shadowball/internal/engine/material"
	"github.com/Faultbox/shadowball/internal/engine/mesh"
	"github.com/Faultbox/shadowball/internal/engine/shader"
	"github.com/Faultbox/shadowball/internal/engine/shadow"
	"github.com/Faultbox/shadowball/internal/engine/texture"
	"github.com/Faultbox/shadowball/internal/logger"
	"github.com/Faultbox/shadowball/pkg/math"
)

// Uniform buffer binding points.
const (
	matricesBinding = 0
	lightBinding    = 1
	materialBinding = 2
)

// Texture units. Shadow maps follow the colour textures.
const (
	unitBall = iota
	unitCloth
	unitWood
	unitRoom
	unitRoomBall
	unitShadow
)

// Config holds renderer configuration.
type Config struct {
	Width      int32
	Height     int32
	TextureDir string
	ShaderDir  string // empty uses the embedded shaders
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	programs *shader.Library
	loc      locations
	ubo      [3]uint32
	sampler  uint32

	ball   *mesh.Mesh
	marker *mesh.Mesh
	plane  *mesh.Mesh
	cube   *mesh.Mesh

	loader   *texture.Loader
	textures [unitShadow]uint32

	shadows *shadow.Pipeline
	accum   *framebuffer.Accumulator

	view   math.Mat4
	camPos math.Vec3
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
		view:   math.Identity(),
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthMask(true)
	gl.DepthFunc(gl.LEQUAL)
	gl.DepthRange(0, 1)
	gl.Enable(gl.DEPTH_CLAMP)

	r.programs = shader.Load(shader.SourceFS(cfg.ShaderDir))
	r.loc = lookupLocations(r.programs)

	if err := r.createMeshes(); err != nil {
		r.Close()
		return nil, err
	}

	r.createBuffers()
	r.loadTextures()

	depth := &depthProgram{
		program: r.programs.Program(shader.Shadow),
		loc:     shader.GetUniform(r.programs.Program(shader.Shadow), "modelToClipMatrix"),
	}
	r.shadows = shadow.NewPipeline(depth, shadow.NewMapTarget, cfg.Width, cfg.Height)

	accum, err := framebuffer.NewAccumulator(cfg.Width, cfg.Height, r.programs.Program(shader.Composite))
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("failed to create accumulator: %w", err)
	}
	r.accum = accum

	r.setProjection()
	return r, nil
}

func (r *Renderer) createMeshes() error {
	var err error
	if r.ball, err = mesh.New(mesh.Sphere(mesh.BallShape, mesh.BallShape)); err != nil {
		return fmt.Errorf("failed to create ball mesh: %w", err)
	}
	if r.marker, err = mesh.New(mesh.Sphere(mesh.MarkerShape, mesh.MarkerShape)); err != nil {
		return fmt.Errorf("failed to create marker mesh: %w", err)
	}
	if r.plane, err = mesh.New(mesh.Plane()); err != nil {
		return fmt.Errorf("failed to create plane mesh: %w", err)
	}
	if r.cube, err = mesh.New(mesh.Cube()); err != nil {
		return fmt.Errorf("failed to create cube mesh: %w", err)
	}
	return nil
}

func (r *Renderer) createBuffers() {
	sizes := [3]int{
		matricesBinding: 2 * 16 * 4,
		lightBinding:    lighting.Std140Floats * 4,
		materialBinding: material.Std140Floats * 4,
	}
	gl.GenBuffers(int32(len(r.ubo)), &r.ubo[0])
	for binding, size := range sizes {
		gl.BindBuffer(gl.UNIFORM_BUFFER, r.ubo[binding])
		gl.BufferData(gl.UNIFORM_BUFFER, size, nil, gl.DYNAMIC_DRAW)
		gl.BindBufferRange(gl.UNIFORM_BUFFER, uint32(binding), r.ubo[binding], 0, size)
	}
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)

	for _, id := range []shader.ProgramID{shader.Simple, shader.Skybox, shader.Plane, shader.Ball} {
		p := r.programs.Program(id)
		shader.BindBlock(p, "GlobalMatrices", matricesBinding)
		shader.BindBlock(p, "Light", lightBinding)
		shader.BindBlock(p, "Material", materialBinding)
	}

	gl.GenSamplers(1, &r.sampler)
	gl.SamplerParameteri(r.sampler, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.SamplerParameteri(r.sampler, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.SamplerParameteri(r.sampler, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.SamplerParameteri(r.sampler, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
}

func (r *Renderer) loadTextures() {
	r.loader = texture.NewLoader(r.config.TextureDir)
	r.textures[unitBall] = r.loader.Load2D("ball_albedo.png")
	r.textures[unitCloth] = r.loader.Load2D("cloth.png")
	r.textures[unitWood] = r.loader.Load2D("wood.png")
	r.textures[unitRoom] = r.loader.LoadCubemap("skybox")
	r.textures[unitRoomBall] = r.loader.LoadCubemap("skyboxBall")

	// Sampler units never change, so they are set once.
	if p := r.programs.Program(shader.Skybox); p != 0 {
		gl.UseProgram(p)
		gl.Uniform1i(r.loc.skybox.cubemap, unitRoom)
	}
	if p := r.programs.Program(shader.Ball); p != 0 {
		gl.UseProgram(p)
		gl.Uniform1i(r.loc.ball.color, unitBall)
		gl.Uniform1i(r.loc.ball.cubemap, unitRoomBall)
	}
	if p := r.programs.Program(shader.Plane); p != 0 {
		units := shadowUnits()
		gl.UseProgram(p)
		gl.Uniform1iv(r.loc.plane.shadowTexture, int32(len(units)), &units[0])
	}
	gl.UseProgram(0)
}

func shadowUnits() [lighting.LightCount]int32 {
	var units [lighting.LightCount]int32
	for i := range units {
		units[i] = int32(unitShadow + i)
	}
	return units
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.accum != nil {
		r.accum.Destroy()
	}
	if r.shadows != nil {
		r.shadows.Destroy()
	}
	if r.loader != nil {
		r.loader.Destroy()
	}
	for _, m := range []*mesh.Mesh{r.ball, r.marker, r.plane, r.cube} {
		if m != nil {
			m.Destroy()
		}
	}
	if r.ubo[0] != 0 {
		gl.DeleteBuffers(int32(len(r.ubo)), &r.ubo[0])
		r.ubo = [3]uint32{}
	}
	if r.sampler != 0 {
		gl.DeleteSamplers(1, &r.sampler)
		r.sampler = 0
	}
	if r.programs != nil {
		r.programs.Destroy()
	}
}

// Accumulator is the offscreen target the compositor blends frames with.
func (r *Renderer) Accumulator() *framebuffer.Accumulator {
	return r.accum
}

// ReadFrame returns the most recent frame as RGBA rows, bottom row first.
func (r *Renderer) ReadFrame() ([]byte, int, int) {
	pixels, w, h := r.accum.ReadScene()
	return pixels, int(w), int(h)
}

// Resize reconfigures projection, shadow targets and offscreen targets.
func (r *Renderer) Resize(width, height int32) {
	if width < 1 || height < 1 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	r.shadows.Resize(width, height)
	r.accum.Resize(width, height)
	r.setProjection()
	r.log.Debug("renderer resized", zap.Int32("width", width), zap.Int32("height", height))
}

func (r *Renderer) setProjection() {
	proj := camera.Projection(float32(r.config.Width) / float32(r.config.Height))
	r.writeUBO(matricesBinding, 0, unsafe.Pointer(proj.Ptr()), 16*4)
}

// Clear starts the lit pass on the offscreen scene target.
func (r *Renderer) Clear() {
	r.accum.BeginFrame()
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.ClearColor(0, 0, 0, 0)
	gl.ClearDepth(1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetCamera uploads the world-to-camera matrix. eye is the camera's world
// position, used by the ball's reflection.
func (r *Renderer) SetCamera(view math.Mat4, eye math.Vec3) {
	r.view = view
	r.camPos = eye
	r.writeUBO(matricesBinding, 16*4, unsafe.Pointer(view.Ptr()), 16*4)
}

// BindLighting uploads the light block.
func (r *Renderer) BindLighting(set lighting.LightSet) {
	data := set.Std140()
	r.writeUBO(lightBinding, 0, unsafe.Pointer(&data[0]), len(data)*4)
}

// BindMaterial uploads the material block used by subsequent draws.
func (r *Renderer) BindMaterial(m material.Material) {
	data := m.Std140()
	r.writeUBO(materialBinding, 0, unsafe.Pointer(&data[0]), len(data)*4)
}

func (r *Renderer) writeUBO(binding, offset int, data unsafe.Pointer, size int) {
	gl.BindBuffer(gl.UNIFORM_BUFFER, r.ubo[binding])
	gl.BufferSubData(gl.UNIFORM_BUFFER, offset, size, data)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}
