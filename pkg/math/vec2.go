// Package math provides the vector, matrix and quaternion types used by the scene.
package math

// Vec2 is a 2D vector. The floor tiles use it for texture repeat factors.
type Vec2 struct {
	X, Y float32
}
