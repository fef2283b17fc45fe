package framebuffer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/shadowball/internal/engine/shader"
)

// Accumulator renders the scene offscreen and blends finished frames into
// a floating-point accumulation target. Core-profile GL has no
// accumulation buffer, so Load/Accumulate/Resolve are fullscreen passes.
type Accumulator struct {
	scene *Framebuffer
	accum *Framebuffer

	program   uint32
	frameLoc  int32
	weightLoc int32
	vao       uint32 // empty; the composite shader builds its triangle from gl_VertexID
}

// NewAccumulator creates the scene and accumulation targets. program is
// the composite program (frame sampler, weight uniform).
func NewAccumulator(width, height int32, program uint32) (*Accumulator, error) {
	scene, err := New(width, height, SceneTarget)
	if err != nil {
		return nil, fmt.Errorf("creating scene target: %w", err)
	}
	accum, err := New(width, height, AccumTarget)
	if err != nil {
		scene.Destroy()
		return nil, fmt.Errorf("creating accumulation target: %w", err)
	}

	a := &Accumulator{
		scene:     scene,
		accum:     accum,
		program:   program,
		frameLoc:  shader.GetUniform(program, "frame"),
		weightLoc: shader.GetUniform(program, "weight"),
	}
	gl.GenVertexArrays(1, &a.vao)
	return a, nil
}

// BeginFrame makes the scene target current; the lit pass draws into it.
func (a *Accumulator) BeginFrame() {
	a.scene.Bind()
}

// Load replaces the accumulation with the scene scaled by weight.
func (a *Accumulator) Load(weight float32) {
	a.accum.Bind()
	a.draw(a.scene.ColorTexture(), weight)
}

// Accumulate adds the scene scaled by weight to the accumulation.
func (a *Accumulator) Accumulate(weight float32) {
	a.accum.Bind()
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)
	a.draw(a.scene.ColorTexture(), weight)
	gl.Disable(gl.BLEND)
}

// Resolve writes the accumulation to the default framebuffer.
func (a *Accumulator) Resolve() {
	a.bindDefault()
	a.draw(a.accum.ColorTexture(), 1)
}

// Passthrough writes the scene to the default framebuffer.
func (a *Accumulator) Passthrough() {
	a.bindDefault()
	a.draw(a.scene.ColorTexture(), 1)
}

// ReadScene returns the last rendered scene as RGBA rows, bottom row first.
func (a *Accumulator) ReadScene() (pixels []byte, width, height int32) {
	width, height = a.scene.Size()
	return a.scene.ReadPixels(), width, height
}

// Resize resizes both targets.
func (a *Accumulator) Resize(width, height int32) {
	a.scene.Resize(width, height)
	a.accum.Resize(width, height)
}

// Destroy releases both targets and the quad.
func (a *Accumulator) Destroy() {
	a.scene.Destroy()
	a.accum.Destroy()
	if a.vao != 0 {
		gl.DeleteVertexArrays(1, &a.vao)
		a.vao = 0
	}
}

func (a *Accumulator) bindDefault() {
	w, h := a.scene.Size()
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, w, h)
}

func (a *Accumulator) draw(texture uint32, weight float32) {
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	gl.UseProgram(a.program)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.Uniform1i(a.frameLoc, 0)
	gl.Uniform1f(a.weightLoc, weight)

	gl.BindVertexArray(a.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)

	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.DEPTH_TEST)
}
