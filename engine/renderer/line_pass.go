package renderer

import (
	_ "embed"
	"fmt"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/wireframe"
	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed assets/line.wgsl
var lineShaderBody string

// LineShaderSource is the complete WGSL module used by LinePass: the CameraUniform struct
// followed by the line vertex and fragment stages.
var LineShaderSource = camera.GPUCameraUniformSource + "\n" + lineShaderBody

// lineVertexLayout describes wireframe.LineVertex: position then color, both vec3<f32>.
var lineVertexLayout = wgpu.VertexBufferLayout{
	ArrayStride: wireframe.LineVertexStride,
	StepMode:    wgpu.VertexStepModeVertex,
	Attributes: []wgpu.VertexAttribute{
		{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
		{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
	},
}

// LinePass draws a static set of world-space segments as a line list.
type LinePass struct {
	backend RendererBackend
	camera  *CameraBinding

	pipeline    *wgpu.RenderPipeline
	vertices    *wgpu.Buffer
	vertexCount uint32
}

func newLinePass(backend RendererBackend, cam *CameraBinding, segs []wireframe.Segment) (*LinePass, error) {
	if len(segs) == 0 {
		return nil, fmt.Errorf("line pass needs at least one segment")
	}

	p, err := backend.CreateLinePipeline("Wireframe", LineShaderSource, cam.Layout(), lineVertexLayout)
	if err != nil {
		return nil, fmt.Errorf("failed to create wireframe pipeline: %w", err)
	}

	verts := wireframe.Vertices(segs)
	buf, err := backend.CreateVertexBuffer("Wireframe Vertex Buffer", common.SliceToBytes(verts))
	if err != nil {
		p.Release()
		return nil, fmt.Errorf("failed to upload wireframe vertices: %w", err)
	}

	return &LinePass{
		backend:     backend,
		camera:      cam,
		pipeline:    p,
		vertices:    buf,
		vertexCount: uint32(len(verts)),
	}, nil
}

// Draw records the line draw into the frame started by Renderer.BeginFrame.
func (l *LinePass) Draw() {
	l.backend.DrawLines(l.pipeline, l.camera.BindGroup(), l.vertices, l.vertexCount)
}

// VertexCount returns the number of vertices uploaded, two per segment.
func (l *LinePass) VertexCount() uint32 {
	return l.vertexCount
}

// Release frees the pipeline and vertex buffer.
func (l *LinePass) Release() {
	if l.pipeline != nil {
		l.pipeline.Release()
		l.vertices.Release()
		l.pipeline, l.vertices = nil, nil
	}
}
