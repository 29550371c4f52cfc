package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestApplyDepthRange_NegOneToOneIsIdentity(t *testing.T) {
	proj := mgl32.Perspective(math.Pi/4, 1.5, 0.1, 100)
	if got := ApplyDepthRange(proj, DepthRangeNegOneToOne); got != proj {
		t.Fatalf("expected unchanged matrix, got %v", got)
	}
}

func TestApplyDepthRange_ZeroToOneMapsNearAndFar(t *testing.T) {
	near, far := float32(0.5), float32(50)
	proj := ApplyDepthRange(mgl32.Perspective(math.Pi/3, 1, near, far), DepthRangeZeroToOne)

	ndcDepth := func(z float32) float32 {
		clip := proj.Mul4x1(mgl32.Vec4{0, 0, -z, 1})
		return clip[2] / clip[3]
	}
	if d := ndcDepth(near); math.Abs(float64(d)) > 1e-5 {
		t.Errorf("near plane depth = %v, want 0", d)
	}
	if d := ndcDepth(far); !mgl32.FloatEqualThreshold(d, 1, 1e-4) {
		t.Errorf("far plane depth = %v, want 1", d)
	}
}

func TestApplyDepthRange_KeepsYScale(t *testing.T) {
	proj := mgl32.Perspective(math.Pi/4, 2, 0.01, 1000)
	remapped := ApplyDepthRange(proj, DepthRangeZeroToOne)
	for _, i := range []int{0, 5, 11} {
		if remapped[i] != proj[i] {
			t.Errorf("element %d changed: %v -> %v", i, proj[i], remapped[i])
		}
	}
}

func TestParseDepthRange(t *testing.T) {
	tests := []struct {
		in   string
		want DepthRange
		ok   bool
	}{
		{"", DepthRangeNegOneToOne, true},
		{"neg_one_to_one", DepthRangeNegOneToOne, true},
		{"gl", DepthRangeNegOneToOne, true},
		{"zero_to_one", DepthRangeZeroToOne, true},
		{"webgpu", DepthRangeZeroToOne, true},
		{"sideways", DepthRangeNegOneToOne, false},
	}
	for _, tt := range tests {
		got, ok := ParseDepthRange(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseDepthRange(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
		if ok && tt.in != "" && tt.in != "gl" && tt.in != "webgpu" && got.String() != tt.in {
			t.Errorf("String() round trip: %q -> %q", tt.in, got.String())
		}
	}
}

func TestLogExpRoundTrip(t *testing.T) {
	for _, v := range []float32{0.1, 1, 10, 1000} {
		if got := Exp32(Log32(v)); !mgl32.FloatEqualThreshold(got, v, v*1e-6) {
			t.Errorf("Exp32(Log32(%v)) = %v", v, got)
		}
	}
}

func TestSliceToBytes(t *testing.T) {
	if SliceToBytes([]float32{}) != nil {
		t.Fatal("expected nil for empty slice")
	}
	b := SliceToBytes([]float32{1, 2, 3})
	if len(b) != 12 {
		t.Fatalf("len = %d, want 12", len(b))
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce(0, 0, 7, 9); got != 7 {
		t.Errorf("Coalesce = %d, want 7", got)
	}
	if got := Coalesce("", ""); got != "" {
		t.Errorf("Coalesce = %q, want empty", got)
	}
	if p := Ptr(float32(2)); *p != 2 {
		t.Errorf("Ptr = %v", *p)
	}
}

func TestLookAt_MatchesMathgl(t *testing.T) {
	tests := []struct {
		name            string
		eye, center, up mgl32.Vec3
	}{
		{"on +z", mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}},
		{"oblique", mgl32.Vec3{3, 4, -5}, mgl32.Vec3{1, 0, 2}, mgl32.Vec3{0, 1, 0}},
		{"tilted up", mgl32.Vec3{-2, 7, 1}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0.6, 0.8, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LookAt(tt.eye, tt.center, tt.up)
			want := mgl32.LookAtV(tt.eye, tt.center, tt.up)
			if !got.ApproxEqualThreshold(want, 1e-5) {
				t.Errorf("LookAt = %v, want %v", got, want)
			}
		})
	}
}

func TestLookAt_EyeAtCenterIsIdentity(t *testing.T) {
	tests := []struct {
		name        string
		eye, center mgl32.Vec3
	}{
		{"origin", mgl32.Vec3{}, mgl32.Vec3{}},
		{"offset", mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 2, 3}},
		{"within epsilon", mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 2, 3.0000002}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LookAt(tt.eye, tt.center, mgl32.Vec3{0, 1, 0}); got != mgl32.Ident4() {
				t.Errorf("LookAt = %v, want identity", got)
			}
		})
	}
}

func TestLookAt_DegenerateIsFinite(t *testing.T) {
	m := LookAt(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	for i, v := range m {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.Fatalf("element %d is not finite: %v", i, v)
		}
	}
}
