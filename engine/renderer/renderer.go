package renderer

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/wireframe"
	"github.com/Carmen-Shannon/oxy-orbit/engine/window"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	camera *CameraBinding
	passes []*LinePass

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingMSAA          *MSAASampleCount
	clearColor           *[4]float64
}

// Renderer defines the interface for the rendering system.
//
// The Renderer owns the GPU device, the window surface and the camera uniform. Each frame the
// caller uploads the camera snapshot, then records any number of line passes between BeginFrame
// and EndFrame, then presents.
type Renderer interface {
	// Resize configures the underlying backend to handle a new surface size.
	// This should be called when re-sizing the window or when the surface size should change.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode sets the surface present mode which controls how frames are delivered to the display.
	// A call to Resize is required after changing this for the new mode to take effect.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// Camera returns the camera uniform binding shared by every pass.
	//
	// Returns:
	//   - *CameraBinding: the camera binding
	Camera() *CameraBinding

	// WriteCamera uploads a camera snapshot to the camera uniform buffer.
	//
	// Parameters:
	//   - b: the frame snapshot produced by camera.Camera.Frame
	WriteCamera(b camera.FrameBinding)

	// NewLinePass uploads segments and creates a line pass bound to the camera uniform.
	// The pass is released together with the Renderer.
	//
	// Parameters:
	//   - segs: world-space segments to draw
	//
	// Returns:
	//   - *LinePass: the created pass
	//   - error: an error if the pipeline or vertex buffer could not be created
	NewLinePass(segs []wireframe.Segment) (*LinePass, error)

	// BeginFrame acquires the swapchain texture and begins the main render pass.
	// Must be paired with EndFrame after all draws within a single frame.
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	BeginFrame() error

	// EndFrame ends the current render pass and submits the command buffer to the GPU.
	// Does not present the surface; call Present() after EndFrame to display the frame.
	EndFrame()

	// Present presents the surface to the display and releases the swapchain texture.
	// Must be called once per frame after EndFrame.
	Present()

	// Release frees every pass, the camera binding and the GPU device.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer instance with the specified backend type for the given window.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - w: the window whose surface is rendered to
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new instance of Renderer configured with the specified backend and options
//   - error: an error if the GPU device or camera binding could not be created
func NewRenderer(backendType RendererBackendType, w window.Window, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	msaa := MSAA4x // default
	if r.pendingMSAA != nil {
		msaa = *r.pendingMSAA
	}

	var err error
	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend, err = newWGPURendererBackend(w.SurfaceDescriptor(), r.forceFallbackAdapter, msaa)
	}
	if err != nil {
		return nil, err
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}
	if c := r.clearColor; c != nil {
		r.backend.SetClearColor(c[0], c[1], c[2], c[3])
	}

	r.backend.ConfigureSurface(w.Width(), w.Height())

	r.camera, err = newCameraBinding(r.backend)
	if err != nil {
		r.backend.Release()
		return nil, err
	}
	return r, nil
}

func (r *renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) Camera() *CameraBinding {
	return r.camera
}

func (r *renderer) WriteCamera(b camera.FrameBinding) {
	r.camera.Write(b)
}

func (r *renderer) NewLinePass(segs []wireframe.Segment) (*LinePass, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := newLinePass(r.backend, r.camera, segs)
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	r.passes = append(r.passes, p)
	return p, nil
}

func (r *renderer) BeginFrame() error {
	return r.backend.BeginFrame()
}

func (r *renderer) EndFrame() {
	r.backend.EndFrame()
}

func (r *renderer) Present() {
	r.backend.Present()
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.passes {
		p.Release()
	}
	r.passes = nil
	r.camera.Release()
	r.backend.Release()
}
