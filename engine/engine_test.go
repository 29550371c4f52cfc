package engine

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/cogentcore/webgpu/wgpu"
)

// fakeWindow records callbacks and runs a fixed number of loop iterations.
type fakeWindow struct {
	width, height int
	iterations    int
	closed        bool

	onUpdate  func()
	onResize  func(int, int)
	onScroll  func(float32, float32)
	onKeyDown func(uint32)
	onKeyUp   func(uint32)
	onPointer func(uint32, float32, float32)
}

func (w *fakeWindow) SetUpdateCallback(cb func())                        { w.onUpdate = cb }
func (w *fakeWindow) SetResizeCallback(cb func(int, int))                { w.onResize = cb }
func (w *fakeWindow) SetScrollCallback(cb func(float32, float32))        { w.onScroll = cb }
func (w *fakeWindow) SetKeyDownCallback(cb func(uint32))                 { w.onKeyDown = cb }
func (w *fakeWindow) SetKeyUpCallback(cb func(uint32))                   { w.onKeyUp = cb }
func (w *fakeWindow) SetPointerCallback(cb func(uint32, float32, float32)) { w.onPointer = cb }
func (w *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor         { return nil }
func (w *fakeWindow) IsRunning() bool                                    { return !w.closed }
func (w *fakeWindow) RequestClose()                                      { w.closed = true }
func (w *fakeWindow) Close() error                                       { w.closed = true; return nil }
func (w *fakeWindow) Width() int                                         { return w.width }
func (w *fakeWindow) Height() int                                        { return w.height }

func (w *fakeWindow) ProcessMessages() {
	for i := 0; i < w.iterations && !w.closed; i++ {
		if w.onUpdate != nil {
			w.onUpdate()
		}
	}
}

func TestNewEngine_CameraSizedToWindow(t *testing.T) {
	w := &fakeWindow{width: 300, height: 200}
	e := NewEngine(WithWindow(w))
	if gw, gh := e.Camera().Viewport(); gw != 300 || gh != 200 {
		t.Fatalf("camera viewport = %dx%d, want 300x200", gw, gh)
	}
	if w.onPointer == nil || w.onScroll == nil || w.onResize == nil || w.onKeyDown == nil {
		t.Fatal("window callbacks not wired")
	}
}

func TestEngine_RunStepsOncePerIteration(t *testing.T) {
	w := &fakeWindow{width: 100, height: 100, iterations: 5}
	e := NewEngine(WithWindow(w))

	var indices []uint64
	e.SetRenderCallback(func(b camera.FrameBinding, _ float32) {
		indices = append(indices, b.FrameIndex)
	})
	e.Run()

	if e.Frames() != 5 || len(indices) != 5 {
		t.Fatalf("frames = %d, render calls = %d, want 5", e.Frames(), len(indices))
	}
	for i, idx := range indices {
		if idx != uint64(i+1) {
			t.Errorf("render %d saw frame index %d", i, idx)
		}
	}
	if !w.closed {
		t.Error("window loop should be stopped after Run returns")
	}
	select {
	case <-e.Done():
	default:
		t.Error("Done channel not closed")
	}
}

func TestEngine_QuitStopsLoop(t *testing.T) {
	w := &fakeWindow{width: 100, height: 100, iterations: 100}
	e := NewEngine(WithWindow(w))
	e.SetRenderCallback(func(b camera.FrameBinding, _ float32) {
		if b.FrameIndex == 3 {
			e.Quit()
		}
	})
	e.Run()
	if e.Frames() != 3 {
		t.Fatalf("frames = %d, want 3", e.Frames())
	}
	e.Quit()
}

func TestEngine_InputReachesCamera(t *testing.T) {
	w := &fakeWindow{width: 100, height: 100}
	e := NewEngine(WithWindow(w))

	w.onPointer(common.MouseButtonPrimary, 10, 50)
	w.onPointer(common.MouseButtonPrimary, 30, 50)
	w.onScroll(0, 20)
	b := e.Step()

	if b.Theta <= 0 {
		t.Errorf("drag right should rotate, theta = %v", b.Theta)
	}
	if b.Distance <= camera.DefaultDistance {
		t.Errorf("scroll toward the user should zoom out, distance = %v", b.Distance)
	}
}

func TestEngine_Resize(t *testing.T) {
	w := &fakeWindow{width: 100, height: 100}
	e := NewEngine(WithWindow(w))

	var got [2]int
	e.SetResizeCallback(func(width, height int) { got = [2]int{width, height} })

	w.onResize(0, 0)
	if vw, vh := e.Camera().Viewport(); vw != 100 || vh != 100 {
		t.Fatalf("zero-area resize reached the camera: %dx%d", vw, vh)
	}
	if got != [2]int{} {
		t.Fatalf("zero-area resize reached the callback: %v", got)
	}

	w.onResize(400, 100)
	if vw, vh := e.Camera().Viewport(); vw != 400 || vh != 100 {
		t.Errorf("viewport = %dx%d", vw, vh)
	}
	if got != [2]int{400, 100} {
		t.Errorf("resize callback got %v", got)
	}
}

func TestEngine_KeyBindings(t *testing.T) {
	w := &fakeWindow{width: 100, height: 100}
	e := NewEngine(WithWindow(w))

	var keys []uint32
	e.SetKeyCallback(func(k uint32) { keys = append(keys, k) })

	w.onKeyDown(common.KeySpace)
	if e.Camera().MouseEnabled() {
		t.Fatal("space should disable mouse input")
	}
	w.onKeyDown(common.KeySpace)
	if !e.Camera().MouseEnabled() {
		t.Fatal("second space should re-enable mouse input")
	}

	e.SetOverrideCallback(func(float32) *camera.Overrides {
		return &camera.Overrides{DTheta: common.Ptr[float32](1)}
	})
	e.Step()
	e.SetOverrideCallback(nil)
	if e.Camera().AtRest() {
		t.Fatal("override should leave the camera moving")
	}
	w.onKeyDown(common.KeyR)
	if !e.Camera().AtRest() || e.Camera().State().Theta != 0 {
		t.Errorf("R should reset the camera, state = %+v", e.Camera().State())
	}

	if len(keys) != 3 {
		t.Errorf("key callback saw %v", keys)
	}
}

func TestEngine_WithCamera(t *testing.T) {
	cam := camera.NewCamera(camera.WithDistance(3))
	e := NewEngine(WithCamera(cam), WithRenderFrameLimit(0))
	if e.Camera() != cam {
		t.Fatal("WithCamera ignored")
	}
	if d := e.Step().Distance; d < 2.99 || d > 3.01 {
		t.Errorf("distance = %v", d)
	}
}

func TestFrameDuration(t *testing.T) {
	if frameDuration(0) != 0 || frameDuration(-5) != 0 {
		t.Error("non-positive fps should uncap")
	}
	if got := frameDuration(50); got.Milliseconds() != 20 {
		t.Errorf("frameDuration(50) = %v", got)
	}
}
