package lighting

import (
	"github.com/Faultbox/shadowball/pkg/math"
)

// Model owns the world-space light state. Camera-space positions are only
// derived in Snapshot.
type Model struct {
	worldPositions [LightCount]math.Vec4
	intensities    [LightCount]math.Vec4
	ambient        math.Vec4
	attenuation    float32
}

// NewModel creates the default three-light rig: two cool lights over the
// front corners and a warm one behind. halfDistance is the distance at which
// a light falls to half intensity.
func NewModel(ambient, halfDistance float32) *Model {
	return &Model{
		worldPositions: [LightCount]math.Vec4{
			{X: 3, Y: 8, Z: 3, W: 1},
			{X: -3, Y: 8, Z: 3, W: 1},
			{X: 0, Y: 7, Z: -4, W: 1},
		},
		intensities: [LightCount]math.Vec4{
			{X: 0.85, Y: 0.9, Z: 1, W: 1},
			{X: 0.85, Y: 0.9, Z: 1, W: 1},
			{X: 1, Y: 0.85, Z: 0.45, W: 1},
		},
		ambient:     math.Vec4{X: ambient, Y: ambient, Z: ambient, W: 1},
		attenuation: 1 / (halfDistance * halfDistance),
	}
}

// Snapshot returns the light set with camera-space positions computed from
// the given world-to-camera matrix.
func (m *Model) Snapshot(view math.Mat4) LightSet {
	set := LightSet{
		Ambient:     m.ambient,
		Attenuation: m.attenuation,
	}
	for i := range set.Lights {
		set.Lights[i] = PointLight{
			CameraSpacePosition: view.MulVec4(m.worldPositions[i]),
			Intensity:           m.intensities[i],
		}
	}
	return set
}

// SetIntensity clamps value into [0,1] and stores it. Out-of-range indices
// are ignored.
func (m *Model) SetIntensity(index int, value math.Vec4) {
	if index < 0 || index >= LightCount {
		return
	}
	m.intensities[index] = value.Clamp(0, 1)
}

// SetWorldPosition moves a light. Out-of-range indices are ignored.
func (m *Model) SetWorldPosition(index int, pos math.Vec4) {
	if index < 0 || index >= LightCount {
		return
	}
	m.worldPositions[index] = pos
}

// Intensity returns the stored intensity of light index.
func (m *Model) Intensity(index int) math.Vec4 {
	if index < 0 || index >= LightCount {
		return math.Vec4{}
	}
	return m.intensities[index]
}

// WorldPositions returns every light's world position.
func (m *Model) WorldPositions() [LightCount]math.Vec3 {
	var out [LightCount]math.Vec3
	for i, p := range m.worldPositions {
		out[i] = p.XYZ()
	}
	return out
}

// Attenuation returns the shared inverse-square attenuation coefficient.
func (m *Model) Attenuation() float32 {
	return m.attenuation
}
