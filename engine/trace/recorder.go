package trace

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
)

// Recorder forwards input to a camera while capturing it as a Trace.
// Events delivered between two Frame calls are recorded into the same trace frame.
type Recorder struct {
	mu  *sync.Mutex
	cam camera.Camera

	trace   Trace
	pending []Event
}

var _ input.Sink = &Recorder{}

// NewRecorder creates a recorder in front of cam. The trace viewport is the camera's
// viewport at the time of the call.
//
// Parameters:
//   - cam: the camera that receives the forwarded input
//   - name: trace name stored in the output
//
// Returns:
//   - *Recorder: the new recorder
func NewRecorder(cam camera.Camera, name string) *Recorder {
	w, h := cam.Viewport()
	return &Recorder{
		mu:    &sync.Mutex{},
		cam:   cam,
		trace: Trace{Name: name, Viewport: Viewport{Width: w, Height: h}},
	}
}

func (r *Recorder) PointerMove(buttons uint32, x, y float32) {
	r.mu.Lock()
	r.pending = append(r.pending, Event{Pointer: &PointerEvent{Buttons: buttons, X: x, Y: y}})
	r.mu.Unlock()
	r.cam.PointerMove(buttons, x, y)
}

func (r *Recorder) Wheel(dx, dy float32) {
	r.mu.Lock()
	r.pending = append(r.pending, Event{Wheel: &WheelEvent{DX: dx, DY: dy}})
	r.mu.Unlock()
	r.cam.Wheel(dx, dy)
}

func (r *Recorder) Resize(width, height int) {
	r.mu.Lock()
	r.pending = append(r.pending, Event{Resize: &Viewport{Width: width, Height: height}})
	r.mu.Unlock()
	r.cam.Resize(width, height)
}

// Frame closes the current trace frame and advances the camera.
// Consecutive frames with no input and no overrides are folded into Repeat.
//
// Parameters:
//   - overrides: forwarded to the camera and recorded
//   - body: forwarded to the camera
//
// Returns:
//   - camera.FrameBinding: the camera's snapshot
func (r *Recorder) Frame(overrides *camera.Overrides, body func(camera.FrameBinding)) camera.FrameBinding {
	r.mu.Lock()
	f := Frame{Events: r.pending, Overrides: fromCamera(overrides)}
	r.pending = nil
	n := len(r.trace.Frames)
	if n > 0 && f.Events == nil && f.Overrides == nil && isIdle(r.trace.Frames[n-1]) {
		r.trace.Frames[n-1].Repeat++
	} else {
		r.trace.Frames = append(r.trace.Frames, f)
	}
	r.mu.Unlock()

	return r.cam.Frame(overrides, body)
}

func isIdle(f Frame) bool {
	return len(f.Events) == 0 && f.Overrides == nil
}

// Trace returns a copy of everything recorded so far. Input received since the
// last Frame is not included.
//
// Returns:
//   - *Trace: the recorded trace
func (r *Recorder) Trace() *Trace {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.trace
	t.Frames = append([]Frame(nil), r.trace.Frames...)
	return &t
}
