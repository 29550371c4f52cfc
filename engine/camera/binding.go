package camera

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// FrameBinding is the per-frame snapshot handed to the render body. Every OrbitState
// field is present, plus the derived matrices and the viewport the projection was built for.
// It is a plain value; mutating it has no effect on the camera.
type FrameBinding struct {
	FrameIndex uint64

	Center      mgl32.Vec3
	Theta       float32
	Phi         float32
	LogDistance float32
	Distance    float32
	Up          mgl32.Vec3
	Eye         mgl32.Vec3

	DTheta    float32
	DPhi      float32
	DDistance float32

	Fovy         float32
	Near         float32
	Far          float32
	FlipY        bool
	MouseEnabled bool

	View              mgl32.Mat4
	Projection        mgl32.Mat4
	ViewProjection    mgl32.Mat4
	InverseProjection mgl32.Mat4

	ViewportWidth  int
	ViewportHeight int
}

// newFrameBinding snapshots s. Caller must hold the camera mutex.
func newFrameBinding(index uint64, s *OrbitState, width, height int) FrameBinding {
	return FrameBinding{
		FrameIndex:        index,
		Center:            s.Center,
		Theta:             s.Theta,
		Phi:               s.Phi,
		LogDistance:       s.LogDistance,
		Distance:          s.Distance(),
		Up:                s.Up,
		Eye:               s.Eye,
		DTheta:            s.DTheta,
		DPhi:              s.DPhi,
		DDistance:         s.DDistance,
		Fovy:              s.Fovy,
		Near:              s.Near,
		Far:               s.Far,
		FlipY:             s.FlipY,
		MouseEnabled:      s.MouseEnabled,
		View:              s.View,
		Projection:        s.Projection,
		ViewProjection:    s.Projection.Mul4(s.View),
		InverseProjection: s.Projection.Inv(),
		ViewportWidth:     width,
		ViewportHeight:    height,
	}
}

// Aspect returns the viewport width over height the projection was built with.
func (b FrameBinding) Aspect() float32 {
	if b.ViewportHeight == 0 {
		return 1
	}
	return float32(b.ViewportWidth) / float32(b.ViewportHeight)
}

// Frustum extracts the normalized view frustum from the combined view-projection.
func (b FrameBinding) Frustum() common.Frustum {
	return common.ExtractFrustum(b.ViewProjection)
}

// Uniform packs the snapshot into its GPU layout.
func (b FrameBinding) Uniform() GPUCameraUniform {
	u := GPUCameraUniform{
		View:              b.View,
		Projection:        b.Projection,
		ViewProjection:    b.ViewProjection,
		InverseProjection: b.InverseProjection,
		Eye:               b.Eye,
		Theta:             b.Theta,
		Center:            b.Center,
		Phi:               b.Phi,
		Up:                b.Up,
		LogDistance:       b.LogDistance,
		Fovy:              b.Fovy,
		Near:              b.Near,
		Far:               b.Far,
	}
	if b.FlipY {
		u.FlipY = 1
	}
	return u
}

// FieldKind is the WGSL type of a uniform field.
type FieldKind int

const (
	FieldMat4 FieldKind = iota
	FieldVec3
	FieldF32
	FieldU32
)

// String returns the WGSL spelling of the kind.
func (k FieldKind) String() string {
	switch k {
	case FieldMat4:
		return "mat4x4<f32>"
	case FieldVec3:
		return "vec3<f32>"
	case FieldU32:
		return "u32"
	default:
		return "f32"
	}
}

// BindingField describes one member of the camera uniform block.
type BindingField struct {
	Name   string
	Offset int
	Size   int
	Kind   FieldKind
}

// BindingFields is the fixed layout of GPUCameraUniform, enumerated once so a pipeline
// can be set up without reflecting over the binding at runtime.
var BindingFields = []BindingField{
	{Name: "view", Offset: 0, Size: 64, Kind: FieldMat4},
	{Name: "projection", Offset: 64, Size: 64, Kind: FieldMat4},
	{Name: "view_projection", Offset: 128, Size: 64, Kind: FieldMat4},
	{Name: "inverse_projection", Offset: 192, Size: 64, Kind: FieldMat4},
	{Name: "eye", Offset: 256, Size: 12, Kind: FieldVec3},
	{Name: "theta", Offset: 268, Size: 4, Kind: FieldF32},
	{Name: "center", Offset: 272, Size: 12, Kind: FieldVec3},
	{Name: "phi", Offset: 284, Size: 4, Kind: FieldF32},
	{Name: "up", Offset: 288, Size: 12, Kind: FieldVec3},
	{Name: "log_distance", Offset: 300, Size: 4, Kind: FieldF32},
	{Name: "fovy", Offset: 304, Size: 4, Kind: FieldF32},
	{Name: "near", Offset: 308, Size: 4, Kind: FieldF32},
	{Name: "far", Offset: 312, Size: 4, Kind: FieldF32},
	{Name: "flip_y", Offset: 316, Size: 4, Kind: FieldU32},
}
