package math

// Vec4 is a 4-component vector: a homogeneous point or an RGBA colour.
type Vec4 struct {
	X, Y, Z, W float32
}

// XYZ drops the w component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Clamp clamps every component into [lo, hi].
func (v Vec4) Clamp(lo, hi float32) Vec4 {
	return Vec4{Clamp(v.X, lo, hi), Clamp(v.Y, lo, hi), Clamp(v.Z, lo, hi), Clamp(v.W, lo, hi)}
}

// Array returns the components in x, y, z, w order.
func (v Vec4) Array() [4]float32 {
	return [4]float32{v.X, v.Y, v.Z, v.W}
}
