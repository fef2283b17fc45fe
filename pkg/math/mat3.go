package math

// Mat3 is a 3x3 matrix in column-major order.
type Mat3 [9]float32

// Transpose returns the transposed matrix.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Determinant returns the determinant.
func (m Mat3) Determinant() float32 {
	return m[0]*(m[4]*m[8]-m[7]*m[5]) -
		m[3]*(m[1]*m[8]-m[7]*m[2]) +
		m[6]*(m[1]*m[5]-m[4]*m[2])
}

// Inverse returns the inverse matrix, or the identity if m is singular.
func (m Mat3) Inverse() Mat3 {
	det := m.Determinant()
	if det == 0 {
		return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
	}
	inv := 1 / det

	// Adjugate (transposed cofactors), column-major.
	return Mat3{
		(m[4]*m[8] - m[7]*m[5]) * inv,
		-(m[1]*m[8] - m[7]*m[2]) * inv,
		(m[1]*m[5] - m[4]*m[2]) * inv,

		-(m[3]*m[8] - m[6]*m[5]) * inv,
		(m[0]*m[8] - m[6]*m[2]) * inv,
		-(m[0]*m[5] - m[3]*m[2]) * inv,

		(m[3]*m[7] - m[6]*m[4]) * inv,
		-(m[0]*m[7] - m[6]*m[1]) * inv,
		(m[0]*m[4] - m[3]*m[1]) * inv,
	}
}

// Ptr returns a pointer to the first element (for OpenGL uniform calls).
func (m *Mat3) Ptr() *float32 {
	return &m[0]
}
