package trace

import (
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
)

// Summary describes the outcome of a replay.
type Summary struct {
	Name   string
	Frames int
	// SettledAt is the 1-based replay frame that started the final run of at-rest frames,
	// or -1 if the camera was still moving at the end.
	SettledAt int
	Final     camera.FrameBinding
}

// Settled reports whether the camera was at rest after the last frame.
func (s Summary) Settled() bool {
	return s.SettledAt >= 0
}

// Replay drives cam through every frame of t and calls fn with each snapshot.
// The camera is resized to the trace viewport first.
//
// Parameters:
//   - cam: the camera to drive
//   - t: the trace to replay
//   - fn: called once per frame, may be nil
//
// Returns:
//   - Summary: frame count, settle frame and final snapshot
func Replay(cam camera.Camera, t *Trace, fn func(camera.FrameBinding)) Summary {
	cam.Resize(t.Viewport.Width, t.Viewport.Height)

	sum := Summary{Name: t.Name, SettledAt: -1}
	step := func(o *camera.Overrides) {
		b := cam.Frame(o, fn)
		sum.Frames++
		sum.Final = b
		atRest := b.DTheta == 0 && b.DPhi == 0 && b.DDistance == 0
		switch {
		case !atRest:
			sum.SettledAt = -1
		case sum.SettledAt < 0:
			sum.SettledAt = sum.Frames
		}
	}

	for _, f := range t.Frames {
		for _, ev := range f.Events {
			switch {
			case ev.Pointer != nil:
				cam.PointerMove(ev.Pointer.Buttons, ev.Pointer.X, ev.Pointer.Y)
			case ev.Wheel != nil:
				cam.Wheel(ev.Wheel.DX, ev.Wheel.DY)
			case ev.Resize != nil:
				cam.Resize(ev.Resize.Width, ev.Resize.Height)
			}
		}
		step(f.Overrides.Camera())
		for range max(f.Repeat, 0) {
			step(nil)
		}
	}
	return sum
}
