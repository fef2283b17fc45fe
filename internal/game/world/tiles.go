package world

import (
	gomath "math"

	"github.com/Faultbox/shadowball/pkg/math"
)

// Surface is the material category of a floor tile.
type Surface int

const (
	Cloth Surface = iota
	Wood
)

func (s Surface) String() string {
	if s == Wood {
		return "wood"
	}
	return "cloth"
}

// Tile is one quad of the playing field.
type Tile struct {
	Transform    math.Transform
	TextureScale math.Vec2
	Surface      Surface
}

// Model returns the tile's model-to-world matrix.
func (t Tile) Model() math.Mat4 {
	return t.Transform.Matrix()
}

func tile(pos, euler, scale math.Vec3, surface Surface) Tile {
	return Tile{
		Transform: math.Transform{
			Position: pos,
			Rotation: math.QuatFromEuler(euler),
			Scale:    scale,
		},
		TextureScale: math.Vec2{X: scale.X, Y: scale.Z},
		Surface:      surface,
	}
}

// Floor returns the cloth field followed by the four wooden rails around
// it.
func Floor() [5]Tile {
	const half = gomath.Pi / 2
	return [5]Tile{
		tile(math.Vec3{}, math.Vec3{}, math.Vec3{X: 10, Y: 1, Z: 10}, Cloth),
		tile(math.Vec3{X: 10, Y: 0.5}, math.Vec3{Z: half}, math.Vec3{X: 0.5, Y: 1, Z: 10}, Wood),
		tile(math.Vec3{X: -10, Y: 0.5}, math.Vec3{Z: -half}, math.Vec3{X: 0.5, Y: 1, Z: 10}, Wood),
		tile(math.Vec3{Y: 0.5, Z: -10}, math.Vec3{X: half}, math.Vec3{X: 10, Y: 1, Z: 0.5}, Wood),
		tile(math.Vec3{Y: 0.5, Z: 10}, math.Vec3{X: -half}, math.Vec3{X: 10, Y: 1, Z: 0.5}, Wood),
	}
}
