package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/common"
)

type orbitCamera struct {
	mu *sync.Mutex

	cfg   Config
	state OrbitState

	minLogDistance float32
	maxLogDistance float32

	prevX, prevY float32
	hasPrev      bool

	viewportWidth  int
	viewportHeight int

	frameIndex uint64
	last       FrameBinding
}

// Camera defines the interface for a damped orbit camera.
// Input events accumulate into angular and radial velocity; Frame integrates that
// velocity once, rebuilds the view and projection, and hands a snapshot to the render body.
// All methods are safe to call from an event callback concurrently with Frame.
type Camera interface {
	// PointerMove feeds one pointer sample. While the primary button is held the
	// movement since the previous sample is added to the angular velocity, scaled by
	// the viewport extents and the current log distance.
	//
	// Parameters:
	//   - buttons: bitmask of held buttons (common.MouseButtonPrimary, ...)
	//   - x, y: pointer position in viewport pixels
	PointerMove(buttons uint32, x, y float32)

	// Wheel feeds one scroll event. Only the vertical component zooms.
	//
	// Parameters:
	//   - dx, dy: scroll deltas in pixels
	Wheel(dx, dy float32)

	// Resize records the viewport extents and re-derives the vertical field of view
	// from the configured base. Width and height must be non-zero.
	//
	// Parameters:
	//   - width, height: viewport size in pixels
	Resize(width, height int)

	// Frame advances the camera by one frame and then invokes body with the resulting
	// snapshot. body runs without the camera lock held and may be nil.
	//
	// Parameters:
	//   - overrides: optional per-frame patch applied before integration, may be nil
	//   - body: render work for this frame, may be nil
	//
	// Returns:
	//   - FrameBinding: the snapshot passed to body
	Frame(overrides *Overrides, body func(FrameBinding)) FrameBinding

	// Binding returns the snapshot produced by the most recent Frame, or the
	// construction-time snapshot if Frame has not run yet.
	//
	// Returns:
	//   - FrameBinding: the latest snapshot
	Binding() FrameBinding

	// State returns a copy of the live orbit state.
	//
	// Returns:
	//   - OrbitState: the current state
	State() OrbitState

	// Config returns the configuration the camera was built with.
	//
	// Returns:
	//   - Config: the construction configuration
	Config() Config

	// Viewport returns the extents last passed to Resize.
	//
	// Returns:
	//   - width, height: viewport size in pixels
	Viewport() (width, height int)

	// MouseEnabled reports whether pointer and wheel input are applied.
	//
	// Returns:
	//   - bool: true if input is applied
	MouseEnabled() bool

	// SetMouseEnabled gates pointer and wheel input without waiting for a frame.
	//
	// Parameters:
	//   - enabled: whether input should be applied
	SetMouseEnabled(enabled bool)

	// AtRest reports whether every pending velocity has been damped to exactly zero.
	//
	// Returns:
	//   - bool: true if the camera is not moving
	AtRest() bool

	// Reset restores the construction-time pose and clears pending motion.
	// The viewport and the previous pointer sample are kept.
	Reset()
}

// Compile-time interface compliance check
var _ Camera = &orbitCamera{}

// NewCamera creates an orbit camera from DefaultConfig with the given options applied.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...ConfigOption) Camera {
	cfg := DefaultConfig()
	for _, option := range options {
		option(&cfg)
	}
	return NewCameraFromConfig(cfg)
}

// NewCameraFromConfig creates an orbit camera from a complete configuration.
// The config is not validated; out-of-range pose values are clamped.
//
// Parameters:
//   - cfg: the camera configuration
//
// Returns:
//   - Camera: the newly created camera
func NewCameraFromConfig(cfg Config) Camera {
	c := &orbitCamera{
		mu:             &sync.Mutex{},
		cfg:            cfg,
		minLogDistance: common.Log32(cfg.MinDistance),
		maxLogDistance: common.Log32(cfg.MaxDistance),
		viewportWidth:  common.Coalesce(cfg.ViewportWidth, DefaultViewportWidth),
		viewportHeight: common.Coalesce(cfg.ViewportHeight, DefaultViewportHeight),
	}
	c.resetState()
	c.last = newFrameBinding(0, &c.state, c.viewportWidth, c.viewportHeight)
	return c
}

// resetState rebuilds the live state from cfg. Caller must hold the mutex or own c exclusively.
func (c *orbitCamera) resetState() {
	cfg := c.cfg
	c.state = OrbitState{
		Center:       cfg.Center,
		Theta:        cfg.Theta,
		Phi:          clamp(cfg.Phi, minPhi, maxPhi),
		LogDistance:  c.initialLogDistance(),
		Up:           cfg.Up,
		Fovy:         portraitFovy(cfg.Fovy, c.viewportWidth, c.viewportHeight),
		Near:         cfg.Near,
		Far:          cfg.Far,
		FlipY:        cfg.FlipY,
		MouseEnabled: cfg.MouseEnabled,
	}
	c.updateView()
	c.updateProjection()
}

func (c *orbitCamera) initialLogDistance() float32 {
	if c.cfg.Distance <= 0 {
		return c.minLogDistance
	}
	return clamp(common.Log32(c.cfg.Distance), c.minLogDistance, c.maxLogDistance)
}

func (c *orbitCamera) Frame(overrides *Overrides, body func(FrameBinding)) FrameBinding {
	c.mu.Lock()
	c.integrate(overrides)
	c.updateProjection()
	c.frameIndex++
	b := newFrameBinding(c.frameIndex, &c.state, c.viewportWidth, c.viewportHeight)
	c.last = b
	c.mu.Unlock()

	if body != nil {
		body(b)
	}
	return b
}

func (c *orbitCamera) Binding() FrameBinding {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

func (c *orbitCamera) State() OrbitState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *orbitCamera) Config() Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg
}

func (c *orbitCamera) AtRest() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.AtRest()
}

func (c *orbitCamera) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetState()
}
