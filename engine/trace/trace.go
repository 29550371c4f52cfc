package trace

import (
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Trace is a recorded or hand-written input session: a starting viewport and the
// input each frame received before it was integrated.
type Trace struct {
	Name     string   `yaml:"name,omitempty"`
	Viewport Viewport `yaml:"viewport"`
	Frames   []Frame  `yaml:"frames"`
}

// Viewport is a viewport size in pixels.
type Viewport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Frame holds the events delivered before one camera frame, in arrival order.
type Frame struct {
	Events    []Event    `yaml:"events,omitempty"`
	Overrides *Overrides `yaml:"overrides,omitempty"`
	// Repeat runs the frame this many extra times with no input. Useful for letting
	// a hand-written trace settle.
	Repeat int `yaml:"repeat,omitempty"`
}

// Event is exactly one of a pointer sample, a wheel step or a resize.
type Event struct {
	Pointer *PointerEvent `yaml:"pointer,omitempty"`
	Wheel   *WheelEvent   `yaml:"wheel,omitempty"`
	Resize  *Viewport     `yaml:"resize,omitempty"`
}

type PointerEvent struct {
	Buttons uint32  `yaml:"buttons"`
	X       float32 `yaml:"x"`
	Y       float32 `yaml:"y"`
}

type WheelEvent struct {
	DX float32 `yaml:"dx,omitempty"`
	DY float32 `yaml:"dy"`
}

// Overrides is the YAML form of camera.Overrides.
type Overrides struct {
	Center       *[3]float32 `yaml:"center,omitempty"`
	Theta        *float32    `yaml:"theta,omitempty"`
	Phi          *float32    `yaml:"phi,omitempty"`
	Distance     *float32    `yaml:"distance,omitempty"`
	Up           *[3]float32 `yaml:"up,omitempty"`
	DTheta       *float32    `yaml:"dtheta,omitempty"`
	DPhi         *float32    `yaml:"dphi,omitempty"`
	DDistance    *float32    `yaml:"ddistance,omitempty"`
	Fovy         *float32    `yaml:"fovy,omitempty"`
	Near         *float32    `yaml:"near,omitempty"`
	Far          *float32    `yaml:"far,omitempty"`
	FlipY        *bool       `yaml:"flip_y,omitempty"`
	MouseEnabled *bool       `yaml:"mouse_enabled,omitempty"`
}

// Camera converts the YAML overrides to camera.Overrides. A nil receiver yields nil.
func (o *Overrides) Camera() *camera.Overrides {
	if o == nil {
		return nil
	}
	co := &camera.Overrides{
		Theta:        o.Theta,
		Phi:          o.Phi,
		Distance:     o.Distance,
		DTheta:       o.DTheta,
		DPhi:         o.DPhi,
		DDistance:    o.DDistance,
		Fovy:         o.Fovy,
		Near:         o.Near,
		Far:          o.Far,
		FlipY:        o.FlipY,
		MouseEnabled: o.MouseEnabled,
	}
	if o.Center != nil {
		v := mgl32.Vec3(*o.Center)
		co.Center = &v
	}
	if o.Up != nil {
		v := mgl32.Vec3(*o.Up)
		co.Up = &v
	}
	return co
}

func fromCamera(co *camera.Overrides) *Overrides {
	if co.IsZero() {
		return nil
	}
	o := &Overrides{
		Theta:        co.Theta,
		Phi:          co.Phi,
		Distance:     co.Distance,
		DTheta:       co.DTheta,
		DPhi:         co.DPhi,
		DDistance:    co.DDistance,
		Fovy:         co.Fovy,
		Near:         co.Near,
		Far:          co.Far,
		FlipY:        co.FlipY,
		MouseEnabled: co.MouseEnabled,
	}
	if co.Center != nil {
		v := [3]float32(*co.Center)
		o.Center = &v
	}
	if co.Up != nil {
		v := [3]float32(*co.Up)
		o.Up = &v
	}
	return o
}

// FrameCount returns the number of camera frames the trace drives, counting repeats.
func (t *Trace) FrameCount() int {
	n := 0
	for _, f := range t.Frames {
		n += 1 + max(f.Repeat, 0)
	}
	return n
}

// Validate checks that the trace can be replayed.
//
// Returns:
//   - error: the first structural problem found, or nil
func (t *Trace) Validate() error {
	if t.Viewport.Width <= 0 || t.Viewport.Height <= 0 {
		return fmt.Errorf("viewport must be non-zero, got %dx%d", t.Viewport.Width, t.Viewport.Height)
	}
	for i, f := range t.Frames {
		for j, ev := range f.Events {
			set := 0
			for _, p := range []bool{ev.Pointer != nil, ev.Wheel != nil, ev.Resize != nil} {
				if p {
					set++
				}
			}
			if set != 1 {
				return fmt.Errorf("frame %d event %d: exactly one of pointer, wheel or resize must be set", i, j)
			}
			if ev.Resize != nil && (ev.Resize.Width <= 0 || ev.Resize.Height <= 0) {
				return fmt.Errorf("frame %d event %d: resize to %dx%d", i, j, ev.Resize.Width, ev.Resize.Height)
			}
		}
		if f.Repeat < 0 {
			return fmt.Errorf("frame %d: negative repeat %d", i, f.Repeat)
		}
	}
	return nil
}

// Parse decodes and validates a YAML trace.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - *Trace: the decoded trace
//   - error: decode or validation failure
func Parse(data []byte) (*Trace, error) {
	var t Trace
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to decode trace: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid trace: %w", err)
	}
	return &t, nil
}

// Load reads a YAML trace file.
//
// Parameters:
//   - filename: path to the trace
//
// Returns:
//   - *Trace: the decoded trace
//   - error: read, decode or validation failure
func Load(filename string) (*Trace, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read trace %s: %w", filename, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return t, nil
}

// Save writes the trace as YAML.
//
// Parameters:
//   - filename: destination path
//
// Returns:
//   - error: encode or write failure
func (t *Trace) Save(filename string) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to encode trace: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write trace %s: %w", filename, err)
	}
	return nil
}
