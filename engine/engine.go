package engine

import (
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/profiler"
	"github.com/Carmen-Shannon/oxy-orbit/engine/window"
)

// engine implements the Engine interface.
// Drives one camera frame per window message loop iteration.
type engine struct {
	mu *sync.Mutex

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window window.Window
	camera camera.Camera

	profiler         *profiler.Profiler
	profilingEnabled bool

	overrideCallback func(deltaTime float32) *camera.Overrides
	renderCallback   func(b camera.FrameBinding, deltaTime float32)
	resizeCallback   func(width, height int)
	keyCallback      func(keyCode uint32)

	lastFrame        time.Time
	frames           uint64
	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
}

// Engine is the main entry point for an orbit viewer.
// It owns the window and the camera, forwards window input into the camera and runs
// exactly one camera frame per window loop iteration.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Camera returns the orbit camera driven by the engine.
	//
	// Returns:
	//   - camera.Camera: the camera instance
	Camera() camera.Camera

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetOverrideCallback registers the function asked for per-frame camera overrides.
	// Returning nil leaves the camera to its own motion for that frame.
	//
	// Parameters:
	//   - callback: function called before each camera frame, receiving the delta time in seconds
	SetOverrideCallback(callback func(deltaTime float32) *camera.Overrides)

	// SetRenderCallback registers the function called each frame with the camera snapshot.
	// Use this for GPU buffer updates and drawing.
	//
	// Parameters:
	//   - callback: function receiving the frame snapshot and the delta time in seconds
	SetRenderCallback(callback func(b camera.FrameBinding, deltaTime float32))

	// SetResizeCallback registers a function called after the camera has been resized.
	// Zero-area sizes never reach it.
	//
	// Parameters:
	//   - callback: function receiving the new framebuffer size in pixels
	SetResizeCallback(callback func(width, height int))

	// SetKeyCallback registers a function called for every key press after the engine's
	// own bindings (space toggles mouse input, R resets the camera) have run.
	//
	// Parameters:
	//   - callback: function receiving the key code
	SetKeyCallback(callback func(keyCode uint32))

	// SetRenderFrameLimit sets an optional render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop (default).
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Step runs a single frame: overrides, camera integration, render callback, profiler.
	// Run calls it once per window loop iteration; it is exported for hosts that own their loop.
	//
	// Returns:
	//   - camera.FrameBinding: the snapshot produced for this frame
	Step() camera.FrameBinding

	// Frames returns the number of frames stepped so far.
	//
	// Returns:
	//   - uint64: the frame count
	Frames() uint64

	// Run starts the window message loop (blocks until the window closes or Quit is called).
	Run()

	// Quit stops the window loop. The window itself stays open until the caller closes it,
	// so GPU resources bound to its surface can be released first.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()

	// Done returns a channel closed once Quit has been called.
	//
	// Returns:
	//   - <-chan struct{}: the quit channel
	Done() <-chan struct{}
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// A camera sized to the window is created unless WithCamera supplies one.
// Options are applied directly to the engine struct via the option-builder pattern.
//
// Parameters:
//   - options: functional options for engine configuration (window, camera, profiling, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		mu:               &sync.Mutex{},
		quitChannel:      make(chan struct{}),
		profiler:         profiler.NewProfiler(),
		profilingEnabled: false,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.camera == nil {
		var opts []camera.ConfigOption
		if e.window != nil {
			opts = append(opts, camera.WithViewport(e.window.Width(), e.window.Height()))
		}
		e.camera = camera.NewCamera(opts...)
	}

	if e.window != nil {
		e.window.SetResizeCallback(e.handleResize)
		e.window.SetPointerCallback(e.camera.PointerMove)
		e.window.SetScrollCallback(e.camera.Wheel)
		e.window.SetKeyDownCallback(e.handleKey)
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) Run() {
	e.mu.Lock()
	e.lastFrame = time.Now()
	e.mu.Unlock()

	e.window.SetUpdateCallback(func() {
		select {
		case <-e.quitChannel:
			return
		default:
		}
		e.Step()
	})
	e.window.ProcessMessages()
	e.signalQuit()
}

// Quit signals the loop to stop.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

func (e *engine) Done() <-chan struct{} {
	return e.quitChannel
}

// signalQuit closes the quit channel and asks the window loop to stop.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
		if e.window != nil {
			e.window.RequestClose()
		}
	})
}

func (e *engine) Step() camera.FrameBinding {
	e.mu.Lock()
	now := time.Now()
	if e.lastFrame.IsZero() {
		e.lastFrame = now
	}
	dt := float32(now.Sub(e.lastFrame).Seconds())
	e.lastFrame = now
	overrideCallback := e.overrideCallback
	renderCallback := e.renderCallback
	e.mu.Unlock()

	var o *camera.Overrides
	if overrideCallback != nil {
		o = overrideCallback(dt)
	}

	var body func(camera.FrameBinding)
	if renderCallback != nil {
		body = func(b camera.FrameBinding) { renderCallback(b, dt) }
	}
	b := e.camera.Frame(o, body)

	e.mu.Lock()
	e.frames++
	profiling := e.profilingEnabled
	limit := e.renderFrameLimit
	e.mu.Unlock()

	if profiling && e.profiler != nil {
		e.profiler.ObserveCamera(b)
		e.profiler.Tick()
	}

	// Frame rate limiting
	if limit > 0 {
		elapsed := time.Since(now)
		if remaining := limit - elapsed; remaining > 0 {
			time.Sleep(remaining)
		}
	}
	return b
}

func (e *engine) Frames() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frames
}

// handleResize forwards framebuffer sizes to the camera, dropping zero-area sizes
// produced while the window is minimized.
func (e *engine) handleResize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	e.camera.Resize(width, height)

	e.mu.Lock()
	cb := e.resizeCallback
	e.mu.Unlock()
	if cb != nil {
		cb(width, height)
	}
}

// handleKey applies the built-in camera bindings before the user key callback.
func (e *engine) handleKey(keyCode uint32) {
	switch keyCode {
	case common.KeySpace:
		enabled := !e.camera.MouseEnabled()
		e.camera.SetMouseEnabled(enabled)
		log.Printf("[Engine] Mouse input enabled: %v", enabled)
	case common.KeyR:
		e.camera.Reset()
		log.Printf("[Engine] Camera reset")
	}

	e.mu.Lock()
	cb := e.keyCallback
	e.mu.Unlock()
	if cb != nil {
		cb(keyCode)
	}
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = false
}

func (e *engine) SetOverrideCallback(callback func(deltaTime float32) *camera.Overrides) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.overrideCallback = callback
}

func (e *engine) SetRenderCallback(callback func(b camera.FrameBinding, deltaTime float32)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderCallback = callback
}

func (e *engine) SetResizeCallback(callback func(width, height int)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resizeCallback = callback
}

func (e *engine) SetKeyCallback(callback func(keyCode uint32)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.keyCallback = callback
}

// SetRenderFrameLimit sets an optional render frame rate cap.
// Pass 0 to uncap the render loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderFrameLimit = frameDuration(fps)
}

func frameDuration(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
