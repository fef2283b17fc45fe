package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/shadowball/internal/engine/shader"
	"github.com/Faultbox/shadowball/pkg/math"
)

type simpleLocations struct {
	modelToWorld int32
	baseColor    int32
}

type skyboxLocations struct {
	modelToWorld int32
	cubemap      int32
}

type planeLocations struct {
	modelToWorld        int32
	normalModelToCamera int32
	worldToLightClip    int32
	textureScale        int32
	shadowTexSize       int32
	castsShadow         int32
	color               int32
	shadowTexture       int32
}

type ballLocations struct {
	modelToWorld        int32
	normalModelToWorld  int32
	normalModelToCamera int32
	worldToLight        int32
	worldToLightIT      int32
	camPos              int32
	color               int32
	cubemap             int32
}

type locations struct {
	simple simpleLocations
	skybox skyboxLocations
	plane  planeLocations
	ball   ballLocations
}

func lookupLocations(lib *shader.Library) locations {
	simple := lib.Program(shader.Simple)
	skybox := lib.Program(shader.Skybox)
	plane := lib.Program(shader.Plane)
	ball := lib.Program(shader.Ball)

	return locations{
		simple: simpleLocations{
			modelToWorld: shader.GetUniform(simple, "modelToWorldMatrix"),
			baseColor:    shader.GetUniform(simple, "baseColor"),
		},
		skybox: skyboxLocations{
			modelToWorld: shader.GetUniform(skybox, "modelToWorldMatrix"),
			cubemap:      shader.GetUniform(skybox, "skybox"),
		},
		plane: planeLocations{
			modelToWorld:        shader.GetUniform(plane, "modelToWorldMatrix"),
			normalModelToCamera: shader.GetUniform(plane, "normalModelToCameraMatrix"),
			worldToLightClip:    shader.GetUniform(plane, "worldToLightClipMatrix"),
			textureScale:        shader.GetUniform(plane, "textureScale"),
			shadowTexSize:       shader.GetUniform(plane, "shadowTexSize"),
			castsShadow:         shader.GetUniform(plane, "castsShadow"),
			color:               shader.GetUniform(plane, "colorTexture"),
			shadowTexture:       shader.GetUniform(plane, "shadowTexture"),
		},
		ball: ballLocations{
			modelToWorld:        shader.GetUniform(ball, "modelToWorldMatrix"),
			normalModelToWorld:  shader.GetUniform(ball, "normalModelToWorldMatrix"),
			normalModelToCamera: shader.GetUniform(ball, "normalModelToCameraMatrix"),
			worldToLight:        shader.GetUniform(ball, "worldToLightMatrix"),
			worldToLightIT:      shader.GetUniform(ball, "worldToLightITMatrix"),
			camPos:              shader.GetUniform(ball, "camPos"),
			color:               shader.GetUniform(ball, "colorTexture"),
			cubemap:             shader.GetUniform(ball, "skybox"),
		},
	}
}

// depthProgram is the shadow pass program.
type depthProgram struct {
	program uint32
	loc     int32
}

func (d *depthProgram) Use() {
	gl.UseProgram(d.program)
}

func (d *depthProgram) SetModelToClip(m math.Mat4) {
	gl.UniformMatrix4fv(d.loc, 1, false, m.Ptr())
}
