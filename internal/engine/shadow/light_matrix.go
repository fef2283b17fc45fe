package shadow

import (
	"github.com/Faultbox/shadowball/internal/engine/camera"
	"github.com/Faultbox/shadowball/pkg/math"
)

// LightUp is the up vector for every light's view. It suits lights placed
// above and around the floor; a light directly along Z from its target
// would make the basis degenerate.
var LightUp = math.Vec3{X: 0, Y: 0, Z: 1}

// LightSpaceMatrix returns projection * view for a point light looking at
// target. The projection matches the camera's so depth maps can share the
// viewport size.
func LightSpaceMatrix(lightPos, target math.Vec3, aspect float32) math.Mat4 {
	view := math.LookAt(lightPos, target, LightUp)
	return camera.Projection(aspect).Mul(view)
}
