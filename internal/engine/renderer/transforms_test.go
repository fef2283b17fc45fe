package renderer

import (
	stdmath "math"
	"testing"

	"github.com/Faultbox/shadowball/internal/engine/lighting"
	"github.com/Faultbox/shadowball/pkg/math"
)

func near(a, b float32) bool {
	return stdmath.Abs(float64(a-b)) < 1e-5
}

func TestMarkerMatrix(t *testing.T) {
	m := markerMatrix(math.Vec3{X: 3, Y: 8, Z: 3})

	center := m.TransformPoint(math.Vec3{})
	if !near(center.X, 3) || !near(center.Y, 8) || !near(center.Z, 3) {
		t.Errorf("centre = %+v", center)
	}

	top := m.TransformPoint(math.Vec3{Y: 1})
	if !near(top.Y, 8+MarkerScale) {
		t.Errorf("top = %+v, want y=%v", top, 8+MarkerScale)
	}
}

func TestReflectionMatrices(t *testing.T) {
	m, it := reflectionMatrices()

	p := m.TransformPoint(math.Vec3{X: 1, Y: 2, Z: 3})
	if !near(p.X, 0.07) || !near(p.Y, 0.14) || !near(p.Z, 0.21) {
		t.Errorf("scaled = %+v", p)
	}

	// Inverse transpose of a uniform scale is the reciprocal scale.
	want := float32(1 / ReflectionScale)
	for _, i := range []int{0, 4, 8} {
		if !near(it[i]/want, 1) {
			t.Errorf("it[%d] = %v, want %v", i, it[i], want)
		}
	}
	for _, i := range []int{1, 2, 3, 5, 6, 7} {
		if !near(it[i], 0) {
			t.Errorf("it[%d] = %v, want 0", i, it[i])
		}
	}
}

func TestShadowFlags(t *testing.T) {
	flags := shadowFlags(func(i int) bool { return i != 1 })
	want := [lighting.LightCount]int32{1, 0, 1}
	if flags != want {
		t.Errorf("flags = %v, want %v", flags, want)
	}
}

func TestSurfaceUnits(t *testing.T) {
	if Cloth.unit() != unitCloth || Wood.unit() != unitWood {
		t.Errorf("units = %d/%d", Cloth.unit(), Wood.unit())
	}
	if unitShadow+lighting.LightCount-1 != 7 {
		t.Errorf("last shadow unit = %d", unitShadow+lighting.LightCount-1)
	}
}
