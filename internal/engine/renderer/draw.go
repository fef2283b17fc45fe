package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/shadowball/internal/engine/lighting"
	"github.com/Faultbox/shadowball/internal/engine/mesh"
	"github.com/Faultbox/shadowball/internal/engine/shader"
	"github.com/Faultbox/shadowball/pkg/math"
)

// Surface selects the colour texture of a floor tile.
type Surface int

const (
	Cloth Surface = iota
	Wood
)

func (s Surface) unit() int {
	if s == Wood {
		return unitWood
	}
	return unitCloth
}

// caster adapts the ball mesh to the shadow pipeline.
type caster struct {
	model math.Mat4
	pos   math.Vec3
	mesh  *mesh.Mesh
}

func (c caster) ModelMatrix() math.Mat4 { return c.model }
func (c caster) Position() math.Vec3    { return c.pos }
func (c caster) Draw()                  { c.mesh.Draw() }

// ShadowPass renders the ball into every light's depth map.
func (r *Renderer) ShadowPass(lights [lighting.LightCount]math.Vec3, ballModel math.Mat4, ballPos math.Vec3) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	r.shadows.Render(lights, caster{model: ballModel, pos: ballPos, mesh: r.ball})
	gl.UseProgram(0)
}

// DrawBall draws the textured, reflective ball.
func (r *Renderer) DrawBall(model math.Mat4) {
	p := r.programs.Program(shader.Ball)
	if p == 0 {
		return
	}
	loc := r.loc.ball
	gl.UseProgram(p)

	normWorld := model.NormalMatrix()
	normCam := r.view.Mul(model).NormalMatrix()
	env, envIT := reflectionMatrices()

	gl.UniformMatrix4fv(loc.modelToWorld, 1, false, model.Ptr())
	gl.UniformMatrix3fv(loc.normalModelToWorld, 1, false, normWorld.Ptr())
	gl.UniformMatrix3fv(loc.normalModelToCamera, 1, false, normCam.Ptr())
	gl.UniformMatrix4fv(loc.worldToLight, 1, false, env.Ptr())
	gl.UniformMatrix3fv(loc.worldToLightIT, 1, false, envIT.Ptr())
	gl.Uniform3f(loc.camPos, r.camPos.X, r.camPos.Y, r.camPos.Z)

	gl.ActiveTexture(gl.TEXTURE0 + unitRoomBall)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, r.textures[unitRoomBall])
	gl.ActiveTexture(gl.TEXTURE0 + unitBall)
	gl.BindTexture(gl.TEXTURE_2D, r.textures[unitBall])
	gl.BindSampler(unitBall, r.sampler)

	r.ball.Draw()

	gl.BindSampler(unitBall, 0)
	gl.UseProgram(0)
}

// DrawPlane draws one floor tile, receiving shadows from every light.
func (r *Renderer) DrawPlane(model math.Mat4, textureScale math.Vec2, surface Surface) {
	p := r.programs.Program(shader.Plane)
	if p == 0 {
		return
	}
	loc := r.loc.plane
	gl.UseProgram(p)

	normCam := r.view.Mul(model).NormalMatrix()
	lightClip := r.shadows.Matrices()
	flags := shadowFlags(r.shadows.Enabled)
	w, h := r.shadows.Size()

	gl.UniformMatrix4fv(loc.modelToWorld, 1, false, model.Ptr())
	gl.UniformMatrix3fv(loc.normalModelToCamera, 1, false, normCam.Ptr())
	gl.UniformMatrix4fv(loc.worldToLightClip, int32(len(lightClip)), false, lightClip[0].Ptr())
	gl.Uniform1iv(loc.castsShadow, int32(len(flags)), &flags[0])
	gl.Uniform2f(loc.textureScale, textureScale.X, textureScale.Y)
	gl.Uniform2f(loc.shadowTexSize, float32(w), float32(h))

	unit := surface.unit()
	gl.Uniform1i(loc.color, int32(unit))

	for i, tex := range r.shadows.Textures() {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(unitShadow+i))
		gl.BindTexture(gl.TEXTURE_2D, tex)
	}
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, r.textures[unit])
	gl.BindSampler(uint32(unit), r.sampler)

	r.plane.Draw()

	gl.BindSampler(uint32(unit), 0)
	gl.UseProgram(0)
}

// DrawLights draws a small unlit sphere at each light, coloured by its
// intensity.
func (r *Renderer) DrawLights(positions [lighting.LightCount]math.Vec3, intensities [lighting.LightCount]math.Vec4) {
	p := r.programs.Program(shader.Simple)
	if p == 0 {
		return
	}
	gl.UseProgram(p)
	for i, pos := range positions {
		model := markerMatrix(pos)
		c := intensities[i]
		gl.UniformMatrix4fv(r.loc.simple.modelToWorld, 1, false, model.Ptr())
		gl.Uniform4f(r.loc.simple.baseColor, c.X, c.Y, c.Z, c.W)
		r.marker.Draw()
	}
	gl.UseProgram(0)
}

// DrawSkybox draws the room around the camera. It is drawn last so depth
// testing discards everything the scene already covers.
func (r *Renderer) DrawSkybox() {
	p := r.programs.Program(shader.Skybox)
	if p == 0 {
		return
	}
	gl.CullFace(gl.FRONT)
	gl.UseProgram(p)

	model := math.Identity()
	gl.UniformMatrix4fv(r.loc.skybox.modelToWorld, 1, false, model.Ptr())
	gl.ActiveTexture(gl.TEXTURE0 + unitRoom)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, r.textures[unitRoom])

	r.cube.Draw()

	gl.UseProgram(0)
	gl.CullFace(gl.BACK)
}
