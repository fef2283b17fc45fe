// Package lighting holds the scene's fixed set of point lights.
package lighting

import (
	"github.com/Faultbox/shadowball/pkg/math"
)

// LightCount is the number of point lights. The shadow pass, the light
// uniform block and the shaders are all sized by it.
const LightCount = 3

// Std140Floats is the size of the Light uniform block in floats.
const Std140Floats = 4 + 4 + LightCount*8

// PointLight is a single light as seen by the lit pass.
type PointLight struct {
	CameraSpacePosition math.Vec4 // recomputed every frame
	Intensity           math.Vec4 // RGBA, each channel in [0,1]
}

// LightSet is the per-frame lighting snapshot uploaded to the GPU.
type LightSet struct {
	Ambient     math.Vec4
	Attenuation float32
	Lights      [LightCount]PointLight
}

// Std140 packs the set into the Light uniform block layout:
//
//	vec4  ambientIntensity
//	float lightAttenuation (+3 pad)
//	{ vec4 cameraSpaceLightPos; vec4 lightIntensity; } lights[LightCount]
func (s LightSet) Std140() []float32 {
	buf := make([]float32, 0, Std140Floats)

	a := s.Ambient.Array()
	buf = append(buf, a[:]...)
	buf = append(buf, s.Attenuation, 0, 0, 0)

	for _, l := range s.Lights {
		p := l.CameraSpacePosition.Array()
		i := l.Intensity.Array()
		buf = append(buf, p[:]...)
		buf = append(buf, i[:]...)
	}
	return buf
}
