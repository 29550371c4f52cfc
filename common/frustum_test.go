package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func testViewProj() mgl32.Mat4 {
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(math.Pi/4, 1, 0.1, 100)
	return proj.Mul4(view)
}

func TestExtractFrustum_ContainsPoint(t *testing.T) {
	f := ExtractFrustum(testViewProj())

	tests := []struct {
		name string
		pt   mgl32.Vec3
		want bool
	}{
		{"target", mgl32.Vec3{0, 0, 0}, true},
		{"behind camera", mgl32.Vec3{0, 0, 20}, false},
		{"beyond far plane", mgl32.Vec3{0, 0, -200}, false},
		{"far left", mgl32.Vec3{-50, 0, 0}, false},
		{"slightly off axis", mgl32.Vec3{1, 1, 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.ContainsPoint(tt.pt); got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

func TestExtractFrustum_PlanesNormalized(t *testing.T) {
	f := ExtractFrustum(testViewProj())
	for i, p := range f.Planes {
		if l := p.Normal.Len(); !mgl32.FloatEqualThreshold(l, 1, 1e-5) {
			t.Errorf("plane %d normal length = %v", i, l)
		}
	}
}

func TestFrustum_SegmentOutside(t *testing.T) {
	f := ExtractFrustum(testViewProj())
	if !f.SegmentOutside(mgl32.Vec3{-50, 0, 0}, mgl32.Vec3{-60, 1, 0}) {
		t.Error("segment left of the frustum should be outside")
	}
	if f.SegmentOutside(mgl32.Vec3{-50, 0, 0}, mgl32.Vec3{50, 0, 0}) {
		t.Error("segment crossing the frustum must not be reported outside")
	}
}
