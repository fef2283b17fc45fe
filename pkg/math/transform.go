package math

// Transform places an entity in the world: translation, rotation, then
// a non-uniform scale applied in model space.
type Transform struct {
	Position Vec3
	Rotation Quat
	Scale    Vec3
}

// NewTransform returns a transform at pos with no rotation and unit scale.
func NewTransform(pos Vec3) Transform {
	return Transform{
		Position: pos,
		Rotation: QuatIdentity(),
		Scale:    Vec3{1, 1, 1},
	}
}

// Matrix returns the model-to-world matrix T * R * S.
func (t Transform) Matrix() Mat4 {
	return Translate(t.Position).Mul(t.Rotation.ToMat4()).Mul(Scale(t.Scale))
}
