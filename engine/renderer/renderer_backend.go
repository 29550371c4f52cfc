package renderer

import "fmt"

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

func (m PresentMode) String() string {
	if m == PresentModeUncapped {
		return "uncapped"
	}
	return "vsync"
}

// MSAASampleCount controls the number of samples used for multisample anti-aliasing (MSAA).
// WebGPU guarantees support for 1 (off) and 4; 8 and 16 are adapter-dependent.
// Line edges are the only thing MSAA smooths here, so 4x is the default.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing (sample count 1).
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4x multisample anti-aliasing. This is the default.
	MSAA4x MSAASampleCount = 4

	// MSAA8x enables 8x multisample anti-aliasing. Adapter-dependent.
	MSAA8x MSAASampleCount = 8

	// MSAA16x enables 16x multisample anti-aliasing. Adapter-dependent.
	MSAA16x MSAASampleCount = 16
)

// ParseMSAA validates a sample count given on the command line.
//
// Parameters:
//   - n: requested samples per pixel; 0 and 1 both mean off
//
// Returns:
//   - MSAASampleCount: the matching sample count
//   - error: if n is not 0, 1, 4, 8 or 16
func ParseMSAA(n int) (MSAASampleCount, error) {
	switch n {
	case 0, 1:
		return MSAAOff, nil
	case 4:
		return MSAA4x, nil
	case 8:
		return MSAA8x, nil
	case 16:
		return MSAA16x, nil
	}
	return MSAAOff, fmt.Errorf("unsupported MSAA sample count %d (want 1, 4, 8 or 16)", n)
}

// RendererBackend is the top-level backend interface for the Renderer.
// It embeds the concrete backend interface for the selected GPU API.
type RendererBackend interface {
	wgpuRendererBackend
}
