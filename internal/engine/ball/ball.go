// Package ball integrates the player-controlled ball rolling on the floor.
package ball

import (
	"github.com/Faultbox/shadowball/pkg/math"
)

// Epsilon is the per-step rotation angle below which the ball is treated
// as resting.
const Epsilon = 1e-5

// Params holds the kinematic constants, in world units per tick.
type Params struct {
	MaxSpeed     float32
	Braking      float32
	Acceleration float32
}

// DefaultParams returns the tuned kinematic constants.
func DefaultParams() Params {
	return Params{
		MaxSpeed:     0.3,
		Braking:      0.001,
		Acceleration: 0.005,
	}
}

// Ball is the rolling sphere. Velocity is confined to the XZ plane.
type Ball struct {
	Params

	position math.Vec3
	velocity math.Vec3
	rotation math.Quat
}

// New creates a resting ball at pos.
func New(pos math.Vec3, p Params) *Ball {
	return &Ball{
		Params:   p,
		position: pos,
		rotation: math.QuatIdentity(),
	}
}

// Position returns the world position.
func (b *Ball) Position() math.Vec3 { return b.position }

// Velocity returns the current velocity.
func (b *Ball) Velocity() math.Vec3 { return b.velocity }

// Rotation returns the accumulated rolling orientation.
func (b *Ball) Rotation() math.Quat { return b.rotation }

// SetPosition places the ball.
func (b *Ball) SetPosition(pos math.Vec3) { b.position = pos }

// SetVelocity sets the velocity; the vertical component is dropped.
func (b *Ball) SetVelocity(v math.Vec3) {
	b.velocity = b.clampVelocity(v.Horizontal())
}

// ApplyIntent accelerates the ball along the horizontal projection of
// direction. A direction with no horizontal component does nothing.
func (b *Ball) ApplyIntent(direction math.Vec3, frameFraction float32) {
	dir := direction.Horizontal().Normalize()
	if dir == (math.Vec3{}) {
		return
	}
	v := b.velocity.Add(dir.Scale(b.Acceleration * frameFraction))
	b.velocity = b.clampVelocity(v)
}

// Integrate rolls the ball, advances its position and applies braking.
func (b *Ball) Integrate(frameFraction float32) {
	angle := b.velocity.Length() * frameFraction
	if angle > Epsilon {
		axis := math.Vec3{X: b.velocity.Z, Y: 0, Z: -b.velocity.X}.Normalize()
		step := math.QuatFromAxisAngle(axis, angle).Normalize()
		b.rotation = step.Mul(b.rotation).Normalize()
	}

	b.position = b.position.Add(b.velocity.Scale(frameFraction))

	brake := b.Braking * frameFraction
	b.velocity.X = towardZero(b.velocity.X, brake)
	b.velocity.Z = towardZero(b.velocity.Z, brake)
}

// ApplyBoundaryReflection bounces the ball off the square [-bound, bound]
// on X and Z. The overshoot is tested before the position is clamped, so a
// crossing flips the velocity exactly once. It reports whether a bounce
// happened.
func (b *Ball) ApplyBoundaryReflection(bound float32) bool {
	bounced := false
	if math.Abs(b.position.X) > bound {
		b.velocity.X = -b.velocity.X
		bounced = true
	}
	if math.Abs(b.position.Z) > bound {
		b.velocity.Z = -b.velocity.Z
		bounced = true
	}

	b.position.X = math.Clamp(b.position.X, -bound, bound)
	b.position.Z = math.Clamp(b.position.Z, -bound, bound)
	return bounced
}

// ModelMatrix returns translate(position) * rotation.
func (b *Ball) ModelMatrix() math.Mat4 {
	return math.Translate(b.position).Mul(b.rotation.ToMat4())
}

func (b *Ball) clampVelocity(v math.Vec3) math.Vec3 {
	return v.Clamp(-b.MaxSpeed, b.MaxSpeed)
}

// towardZero moves x toward zero by step without crossing it.
func towardZero(x, step float32) float32 {
	if x < 0 {
		return math.Clamp(x+step, x, 0)
	}
	return math.Clamp(x-step, 0, x)
}
