package mesh

import (
	gomath "math"
)

// Sphere resolutions.
const (
	BallShape   = 50
	MarkerShape = 15
)

// Sphere returns a unit sphere with rings latitude rows and sectors
// longitude columns. The texture seam is duplicated so u wraps cleanly.
func Sphere(rings, sectors int) Geometry {
	if rings < 2 {
		rings = 2
	}
	if sectors < 3 {
		sectors = 3
	}

	R := 1 / float64(rings-1)
	S := 1 / float64(sectors-1)

	g := Geometry{
		Vertices: make([]Vertex, 0, rings*sectors),
		Indices:  make([]uint32, 0, (rings-1)*(sectors-1)*6),
	}

	for r := 0; r < rings; r++ {
		lat := -gomath.Pi/2 + gomath.Pi*float64(r)*R
		y := gomath.Sin(lat)
		ringRadius := gomath.Cos(lat)
		for s := 0; s < sectors; s++ {
			lon := 2 * gomath.Pi * float64(s) * S
			x := gomath.Cos(lon) * ringRadius
			z := gomath.Sin(lon) * ringRadius

			p := [3]float32{float32(x), float32(y), float32(z)}
			g.Vertices = append(g.Vertices, Vertex{
				Position: p,
				Normal:   p,
				TexCoord: [2]float32{float32(-float64(s) * S), float32(float64(r) * R)},
			})
		}
	}

	for r := 0; r < rings-1; r++ {
		for s := 0; s < sectors-1; s++ {
			a := uint32(r*sectors + s)
			b := uint32((r+1)*sectors + s)
			c := a + 1
			d := b + 1
			g.Indices = append(g.Indices, a, b, c, c, b, d)
		}
	}
	return g
}

// Plane returns a 2x2 quad in the XZ plane facing +Y. Texture coordinates
// span [0,1] and are scaled in the shader.
func Plane() Geometry {
	up := [3]float32{0, 1, 0}
	return Geometry{
		Vertices: []Vertex{
			{Position: [3]float32{-1, 0, -1}, Normal: up, TexCoord: [2]float32{0, 0}},
			{Position: [3]float32{1, 0, -1}, Normal: up, TexCoord: [2]float32{1, 0}},
			{Position: [3]float32{-1, 0, 1}, Normal: up, TexCoord: [2]float32{0, 1}},
			{Position: [3]float32{1, 0, 1}, Normal: up, TexCoord: [2]float32{1, 1}},
		},
		Indices: []uint32{2, 1, 0, 2, 3, 1},
	}
}

// Cube returns a unit cube centred on the origin with outward faces.
func Cube() Geometry {
	faces := []struct {
		n, u, v [3]float32 // u x v == n
	}{
		{n: [3]float32{1, 0, 0}, u: [3]float32{0, 1, 0}, v: [3]float32{0, 0, 1}},
		{n: [3]float32{-1, 0, 0}, u: [3]float32{0, 0, 1}, v: [3]float32{0, 1, 0}},
		{n: [3]float32{0, 1, 0}, u: [3]float32{0, 0, 1}, v: [3]float32{1, 0, 0}},
		{n: [3]float32{0, -1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, 1}},
		{n: [3]float32{0, 0, 1}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 1, 0}},
		{n: [3]float32{0, 0, -1}, u: [3]float32{0, 1, 0}, v: [3]float32{1, 0, 0}},
	}
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

	g := Geometry{
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint32, 0, 36),
	}
	for _, f := range faces {
		base := uint32(len(g.Vertices))
		for _, c := range corners {
			var p [3]float32
			for i := 0; i < 3; i++ {
				p[i] = 0.5 * (f.n[i] + c[0]*f.u[i] + c[1]*f.v[i])
			}
			g.Vertices = append(g.Vertices, Vertex{
				Position: p,
				Normal:   f.n,
				TexCoord: [2]float32{(c[0] + 1) / 2, (c[1] + 1) / 2},
			})
		}
		g.Indices = append(g.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return g
}
