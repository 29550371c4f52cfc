package renderer

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/cogentcore/webgpu/wgpu"
)

// CameraBinding owns the uniform buffer and bind group that expose a camera.FrameBinding
// to shaders as the CameraUniform struct at @group(0) @binding(0).
type CameraBinding struct {
	backend RendererBackend

	buffer    *wgpu.Buffer
	layout    *wgpu.BindGroupLayout
	bindGroup *wgpu.BindGroup
}

func newCameraBinding(backend RendererBackend) (*CameraBinding, error) {
	size := uint64((&camera.GPUCameraUniform{}).Size())
	buf, layout, bg, err := backend.CreateUniformBuffer("Camera", size, wgpu.ShaderStageVertex|wgpu.ShaderStageFragment)
	if err != nil {
		return nil, fmt.Errorf("failed to create camera binding: %w", err)
	}
	return &CameraBinding{
		backend:   backend,
		buffer:    buf,
		layout:    layout,
		bindGroup: bg,
	}, nil
}

// Write uploads the frame's camera matrices and pose.
//
// Parameters:
//   - b: the frame snapshot to upload
func (c *CameraBinding) Write(b camera.FrameBinding) {
	u := b.Uniform()
	c.backend.WriteBuffer(c.buffer, 0, u.Marshal())
}

// Layout returns the bind group layout pipelines reading the camera must include at group 0.
func (c *CameraBinding) Layout() *wgpu.BindGroupLayout {
	return c.layout
}

// BindGroup returns the bind group to set at group 0.
func (c *CameraBinding) BindGroup() *wgpu.BindGroup {
	return c.bindGroup
}

// Release frees the GPU objects.
func (c *CameraBinding) Release() {
	if c.bindGroup != nil {
		c.bindGroup.Release()
		c.buffer.Release()
		c.layout.Release()
		c.bindGroup, c.buffer, c.layout = nil, nil, nil
	}
}
