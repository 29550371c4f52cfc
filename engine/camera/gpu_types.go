package camera

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUCameraUniformSource is the canonical WGSL definition of the CameraUniform struct.
// Matches GPUCameraUniform layout exactly (320 bytes, std430 aligned).
//
//go:embed assets/camera_uniform.wgsl
var GPUCameraUniformSource string

// GPUCameraUniform is the GPU-aligned representation of the camera uniform buffer.
// Matches the WGSL CameraUniform struct layout exactly (see GPUCameraUniformSource).
// Scalars are packed into the fourth lane of each vec3 slot.
// Size: 320 bytes (std430 / WGSL aligned).
type GPUCameraUniform struct {
	View              [16]float32 // offset   0: world to camera (mat4x4<f32>)
	Projection        [16]float32 // offset  64: camera to clip (mat4x4<f32>)
	ViewProjection    [16]float32 // offset 128: projection * view (mat4x4<f32>)
	InverseProjection [16]float32 // offset 192: clip to camera (mat4x4<f32>)
	Eye               [3]float32  // offset 256: world-space eye (vec3<f32>)
	Theta             float32     // offset 268
	Center            [3]float32  // offset 272: orbit focal point (vec3<f32>)
	Phi               float32     // offset 284
	Up                [3]float32  // offset 288 (vec3<f32>)
	LogDistance       float32     // offset 300
	Fovy              float32     // offset 304
	Near              float32     // offset 308
	Far               float32     // offset 312
	FlipY             uint32      // offset 316: 1 when the projection Y axis is negated
}

// Size returns the size of the GPUCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (320)
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCameraUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	putF32 := func(off int, v float32) {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
	}
	mats := [4]*[16]float32{&g.View, &g.Projection, &g.ViewProjection, &g.InverseProjection}
	for m, mat := range mats {
		for i := range 16 {
			putF32(m*64+i*4, mat[i])
		}
	}
	for i := range 3 {
		putF32(256+i*4, g.Eye[i])
		putF32(272+i*4, g.Center[i])
		putF32(288+i*4, g.Up[i])
	}
	putF32(268, g.Theta)
	putF32(284, g.Phi)
	putF32(300, g.LogDistance)
	putF32(304, g.Fovy)
	putF32(308, g.Near)
	putF32(312, g.Far)
	binary.LittleEndian.PutUint32(buf[316:], g.FlipY)
	return buf
}
