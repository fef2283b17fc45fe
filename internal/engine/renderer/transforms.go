package renderer

import (
	"github.com/Faultbox/shadowball/internal/engine/lighting"
	"github.com/Faultbox/shadowball/pkg/math"
)

// ReflectionScale shrinks the room around the ball for its reflection.
const ReflectionScale = 0.07

// MarkerScale is the size of a light marker relative to the unit sphere.
const MarkerScale = 0.2

// markerMatrix places a light marker at pos.
func markerMatrix(pos math.Vec3) math.Mat4 {
	return math.Translate(pos).Mul(math.Scale(math.Vec3{X: MarkerScale, Y: MarkerScale, Z: MarkerScale}))
}

// reflectionMatrices returns the world-to-environment matrix used by the
// ball's reflection and its normal matrix.
func reflectionMatrices() (math.Mat4, math.Mat3) {
	m := math.Scale(math.Vec3{X: ReflectionScale, Y: ReflectionScale, Z: ReflectionScale})
	return m, m.NormalMatrix()
}

// shadowFlags reports which lights have a usable shadow map.
func shadowFlags(enabled func(int) bool) [lighting.LightCount]int32 {
	var flags [lighting.LightCount]int32
	for i := range flags {
		if enabled(i) {
			flags[i] = 1
		}
	}
	return flags
}
