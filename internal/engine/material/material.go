// Package material describes surface response for the lit shaders.
package material

import (
	"github.com/Faultbox/shadowball/pkg/math"
)

// Valid ranges.
const (
	MaxShininess    = 0.3
	MaxReflectivity = 1.0
)

// Std140Floats is the size of the Material uniform block in floats.
const Std140Floats = 8

// Material is one surface category's specular response.
type Material struct {
	SpecularColor math.Vec4
	Shininess     float32 // [0, MaxShininess]
	Reflectivity  float32 // [0, MaxReflectivity]
}

// Ball is the polished ball surface.
func Ball() Material {
	return Material{
		SpecularColor: math.Vec4{X: 0.8, Y: 0.8, Z: 0.8, W: 1},
		Shininess:     0.07,
		Reflectivity:  0.3,
	}
}

// Cloth is the matte floor surface.
func Cloth() Material {
	return Material{}
}

// Wood is the rail surface around the floor.
func Wood() Material {
	return Material{
		SpecularColor: math.Vec4{X: 0.7, Y: 0.7, Z: 0.7, W: 1},
		Shininess:     0.15,
	}
}

// AdjustShininess adds delta and clamps the result.
func (m *Material) AdjustShininess(delta float32) {
	m.Shininess = math.Clamp(m.Shininess+delta, 0, MaxShininess)
}

// AdjustReflectivity adds delta and clamps the result.
func (m *Material) AdjustReflectivity(delta float32) {
	m.Reflectivity = math.Clamp(m.Reflectivity+delta, 0, MaxReflectivity)
}

// Std140 packs the material as vec4 specularColor, float shininess,
// float reflectivity, two floats of padding.
func (m Material) Std140() []float32 {
	c := m.SpecularColor.Array()
	return []float32{c[0], c[1], c[2], c[3], m.Shininess, m.Reflectivity, 0, 0}
}
