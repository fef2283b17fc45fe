package mesh

import (
	gomath "math"
	"testing"
)

func sub(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func dot(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// checkOutward verifies every non-degenerate triangle faces away from the
// origin, or along dir when dir is non-zero.
func checkOutward(t *testing.T, name string, g Geometry, dir [3]float32) {
	t.Helper()
	for i := 0; i+2 < len(g.Indices); i += 3 {
		a := g.Vertices[g.Indices[i]].Position
		b := g.Vertices[g.Indices[i+1]].Position
		c := g.Vertices[g.Indices[i+2]].Position

		n := cross(sub(b, a), sub(c, a))
		if dot(n, n) < 1e-12 {
			continue
		}

		ref := dir
		if ref == ([3]float32{}) {
			ref = [3]float32{(a[0] + b[0] + c[0]) / 3, (a[1] + b[1] + c[1]) / 3, (a[2] + b[2] + c[2]) / 3}
		}
		if dot(n, ref) <= 0 {
			t.Fatalf("%s: triangle %d winds inward", name, i/3)
		}
	}
}

func checkIndices(t *testing.T, name string, g Geometry) {
	t.Helper()
	if len(g.Indices)%3 != 0 {
		t.Fatalf("%s: %d indices is not a triangle list", name, len(g.Indices))
	}
	for i, idx := range g.Indices {
		if int(idx) >= len(g.Vertices) {
			t.Fatalf("%s: index %d = %d out of range", name, i, idx)
		}
	}
}

func TestSphere(t *testing.T) {
	tests := []struct {
		rings, sectors int
	}{
		{BallShape, BallShape},
		{MarkerShape, MarkerShape},
		{3, 4},
	}

	for _, tt := range tests {
		g := Sphere(tt.rings, tt.sectors)

		if len(g.Vertices) != tt.rings*tt.sectors {
			t.Errorf("%dx%d: %d vertices", tt.rings, tt.sectors, len(g.Vertices))
		}
		if want := (tt.rings - 1) * (tt.sectors - 1) * 2; g.TriangleCount() != want {
			t.Errorf("%dx%d: %d triangles, want %d", tt.rings, tt.sectors, g.TriangleCount(), want)
		}
		checkIndices(t, "sphere", g)
		checkOutward(t, "sphere", g, [3]float32{})

		for i, v := range g.Vertices {
			l := gomath.Sqrt(float64(dot(v.Position, v.Position)))
			if gomath.Abs(l-1) > 1e-5 {
				t.Fatalf("vertex %d off the unit sphere: %v", i, l)
			}
			if v.Normal != v.Position {
				t.Fatalf("vertex %d normal %v differs from position", i, v.Normal)
			}
		}
	}
}

func TestSphereClampsResolution(t *testing.T) {
	g := Sphere(0, 0)
	checkIndices(t, "tiny sphere", g)
	if g.TriangleCount() == 0 {
		t.Error("expected a minimal sphere")
	}
}

func TestPlane(t *testing.T) {
	g := Plane()
	checkIndices(t, "plane", g)
	checkOutward(t, "plane", g, [3]float32{0, 1, 0})
	if g.TriangleCount() != 2 {
		t.Errorf("triangles = %d", g.TriangleCount())
	}
	for _, v := range g.Vertices {
		if v.Position[1] != 0 {
			t.Errorf("vertex %v not on the plane", v.Position)
		}
	}
}

func TestCube(t *testing.T) {
	g := Cube()
	checkIndices(t, "cube", g)
	checkOutward(t, "cube", g, [3]float32{})

	if g.TriangleCount() != 12 {
		t.Errorf("triangles = %d, want 12", g.TriangleCount())
	}
	for _, v := range g.Vertices {
		for i := 0; i < 3; i++ {
			if gomath.Abs(float64(v.Position[i])) != 0.5 {
				t.Fatalf("vertex %v not on the unit cube corners", v.Position)
			}
		}
	}
}
