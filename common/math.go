package common

import (
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// DepthRange selects the clip-space depth convention a projection matrix targets.
type DepthRange int

const (
	// DepthRangeNegOneToOne maps near/far to [-1, 1] (OpenGL/WebGL convention).
	DepthRangeNegOneToOne DepthRange = iota
	// DepthRangeZeroToOne maps near/far to [0, 1] (WebGPU/Vulkan/D3D convention).
	DepthRangeZeroToOne
)

// String returns the config-file spelling of the depth range.
func (d DepthRange) String() string {
	switch d {
	case DepthRangeZeroToOne:
		return "zero_to_one"
	default:
		return "neg_one_to_one"
	}
}

// ParseDepthRange converts a config-file spelling into a DepthRange.
// Unknown values report false and return DepthRangeNegOneToOne.
//
// Parameters:
//   - s: "neg_one_to_one", "zero_to_one" or empty
//
// Returns:
//   - DepthRange: the parsed depth range
//   - bool: true if s was recognized
func ParseDepthRange(s string) (DepthRange, bool) {
	switch s {
	case "", "neg_one_to_one", "gl":
		return DepthRangeNegOneToOne, true
	case "zero_to_one", "webgpu":
		return DepthRangeZeroToOne, true
	}
	return DepthRangeNegOneToOne, false
}

// depthRemapZeroToOne rewrites clip z from [-w, w] to [0, w]: z' = 0.5*z + 0.5*w.
var depthRemapZeroToOne = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// ApplyDepthRange converts an OpenGL-style projection matrix (as produced by
// mgl32.Perspective) to the requested depth convention. Rows 0, 1 and 3 are untouched.
//
// Parameters:
//   - proj: projection matrix targeting [-1, 1] depth
//   - r: the target depth range
//
// Returns:
//   - mgl32.Mat4: the converted projection matrix
func ApplyDepthRange(proj mgl32.Mat4, r DepthRange) mgl32.Mat4 {
	if r != DepthRangeZeroToOne {
		return proj
	}
	return depthRemapZeroToOne.Mul4(proj)
}

// Log32 is math.Log for float32 values.
func Log32(x float32) float32 {
	return float32(math.Log(float64(x)))
}

// Exp32 is math.Exp for float32 values.
func Exp32(x float32) float32 {
	return float32(math.Exp(float64(x)))
}

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// LookAt creates a view matrix that positions and orients the camera.
// Matches mgl32.LookAtV for well-formed input. When eye and center coincide the
// identity matrix is returned; an up vector parallel to the view direction yields
// zero x and y axes instead of NaN.
//
// Parameters:
//   - eye: camera position in world space
//   - center: target point the camera looks at
//   - up: up vector defining camera orientation (typically 0,1,0)
//
// Returns:
//   - mgl32.Mat4: the view matrix (column-major)
func LookAt(eye, center, up mgl32.Vec3) mgl32.Mat4 {
	z := eye.Sub(center)
	if abs32(z[0]) < lookAtEpsilon && abs32(z[1]) < lookAtEpsilon && abs32(z[2]) < lookAtEpsilon {
		return mgl32.Ident4()
	}
	z = z.Mul(invLen(z))

	x := up.Cross(z)
	x = x.Mul(invLen(x))

	y := z.Cross(x)

	return mgl32.Mat4{
		x[0], y[0], z[0], 0,
		x[1], y[1], z[1], 0,
		x[2], y[2], z[2], 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
}

// lookAtEpsilon is the per-axis distance under which eye and center are the same point.
const lookAtEpsilon = 1e-6

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

// invLen returns 1/|v|, or 1 for a zero vector.
func invLen(v mgl32.Vec3) float32 {
	val := float64(v.Dot(v))
	if val == 0 {
		val = 1
	}
	return 1.0 / float32(math.Sqrt(val))
}
