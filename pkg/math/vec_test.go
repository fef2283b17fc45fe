package math

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	if got, want := x.Cross(y), (Vec3{0, 0, 1}); got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
	if got, want := y.Cross(x), (Vec3{0, 0, -1}); got != want {
		t.Errorf("Vec3.Cross() reversed = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 0, 4}.Normalize()
	if l := n.Length(); l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero vector normalized to %v, want zero", got)
	}
}

func TestVec3Horizontal(t *testing.T) {
	if got, want := (Vec3{1, -5, 2}).Horizontal(), (Vec3{1, 0, 2}); got != want {
		t.Errorf("Vec3.Horizontal() = %v, want %v", got, want)
	}
}

func TestVec3Clamp(t *testing.T) {
	got := Vec3{-0.5, 0.1, 0.7}.Clamp(-0.3, 0.3)
	if want := (Vec3{-0.3, 0.1, 0.3}); got != want {
		t.Errorf("Vec3.Clamp() = %v, want %v", got, want)
	}
}

func TestVec4(t *testing.T) {
	v := Vec3{1, 2, 3}.Vec4(1)
	if v != (Vec4{1, 2, 3, 1}) {
		t.Errorf("Vec3.Vec4() = %v", v)
	}
	if v.XYZ() != (Vec3{1, 2, 3}) {
		t.Errorf("Vec4.XYZ() = %v", v.XYZ())
	}
	if got := (Vec4{-1, 0.5, 2, 1}).Clamp(0, 1).Array(); got != [4]float32{0, 0.5, 1, 1} {
		t.Errorf("Vec4.Clamp().Array() = %v", got)
	}
}

func TestAbs(t *testing.T) {
	tests := []struct{ in, want float32 }{
		{-2, 2},
		{0, 0},
		{3.5, 3.5},
	}
	for _, tt := range tests {
		if got := Abs(tt.in); got != tt.want {
			t.Errorf("Abs(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
