// Package camera provides the orbit camera that follows the ball.
package camera

import (
	gomath "math"

	"github.com/Faultbox/shadowball/pkg/math"
)

// Projection parameters shared by the lit pass and the shadow pass.
const (
	FieldOfView = 45.0 // degrees
	Near        = 1.0
	Far         = 100.0
)

// WorldUp is the up vector used for the camera basis.
var WorldUp = math.Vec3{X: 0, Y: 1, Z: 0}

// OrbitCamera orbits a target point at (azimuth, elevation, distance).
// Angles are in degrees.
type OrbitCamera struct {
	Azimuth   float32 // unbounded
	Elevation float32
	Distance  float32

	// Constraints
	MinElevation float32
	MaxElevation float32
	MinDistance  float32
	MaxDistance  float32

	// Sensitivity
	DragSensitivity float32
	ZoomStep        float32

	target   math.Vec3
	position math.Vec3
	viewDir  math.Vec3
}

// NewOrbitCamera creates an orbit camera looking down at the floor from
// behind the ball's start point.
func NewOrbitCamera() *OrbitCamera {
	c := &OrbitCamera{
		Azimuth:         295,
		Elevation:       -73,
		Distance:        4,
		MinElevation:    -87,
		MaxElevation:    -1,
		MinDistance:     3,
		MaxDistance:     12,
		DragSensitivity: 0.2,
		ZoomStep:        0.5,
		target:          math.Vec3{X: 0, Y: 1, Z: 0},
	}
	c.ResolvePosition()
	return c
}

// Rotate adds delta (azimuth, elevation, distance) to the orbit parameters
// and clamps elevation and distance to their ranges.
func (c *OrbitCamera) Rotate(delta math.Vec3) {
	c.Azimuth += delta.X
	c.Elevation = math.Clamp(c.Elevation+delta.Y, c.MinElevation, c.MaxElevation)
	c.Distance = math.Clamp(c.Distance+delta.Z, c.MinDistance, c.MaxDistance)
}

// Drag rotates the camera by a mouse movement in pixels.
func (c *OrbitCamera) Drag(dx, dy float32) {
	c.Rotate(math.Vec3{X: dx * c.DragSensitivity, Y: dy * c.DragSensitivity})
}

// Zoom moves the camera by wheel steps; positive steps move it closer.
func (c *OrbitCamera) Zoom(steps float32) {
	c.Rotate(math.Vec3{Z: -steps * c.ZoomStep})
}

// ResolvePosition converts the orbit parameters into a world position and
// caches it together with the normalized view direction.
func (c *OrbitCamera) ResolvePosition() math.Vec3 {
	phi := float64(math.Radians(c.Azimuth))
	theta := float64(math.Radians(c.Elevation))

	sinTheta, cosTheta := gomath.Sincos(theta)
	sinPhi, cosPhi := gomath.Sincos(phi)

	dirToCamera := math.Vec3{
		X: float32(sinTheta * cosPhi),
		Y: float32(cosTheta),
		Z: float32(sinTheta * sinPhi),
	}

	c.viewDir = dirToCamera.Negate().Normalize()
	c.position = dirToCamera.Scale(c.Distance).Add(c.target)
	return c.position
}

// Position returns the last resolved camera position.
func (c *OrbitCamera) Position() math.Vec3 {
	return c.position
}

// ViewDirection returns the last resolved view direction.
func (c *OrbitCamera) ViewDirection() math.Vec3 {
	return c.viewDir
}

// Target returns the point the camera orbits.
func (c *OrbitCamera) Target() math.Vec3 {
	return c.target
}

// SetTarget moves the orbit center.
func (c *OrbitCamera) SetTarget(target math.Vec3) {
	c.target = target
}

// ViewMatrix resolves the position and returns the world-to-camera matrix.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	eye := c.ResolvePosition()
	return BuildViewMatrix(eye, c.target, WorldUp)
}

// Projection returns the perspective matrix for the given aspect ratio.
func Projection(aspect float32) math.Mat4 {
	return math.Perspective(math.Radians(FieldOfView), aspect, Near, Far)
}

// BuildViewMatrix builds a look-at matrix whose rotation rows are right,
// true up and the negated look direction, followed by a translation by -eye.
// eye must differ from target and up must not be parallel to the look
// direction.
func BuildViewMatrix(eye, target, up math.Vec3) math.Mat4 {
	return math.LookAt(eye, target, up)
}
