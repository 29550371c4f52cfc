package input

import "github.com/Carmen-Shannon/oxy-orbit/common"

// PolledInput is one tick of input read from a host that is polled rather than event
// driven, such as Ebitengine.
type PolledInput struct {
	// X, Y is the cursor position in viewport pixels, origin top-left.
	X, Y int

	Primary   bool
	Secondary bool
	Middle    bool

	// WheelX, WheelY are wheel notches. Positive WheelY scrolls away from the user.
	WheelX, WheelY float64
}

// Buttons packs the held buttons into a common.MouseButton* bitmask.
func (in PolledInput) Buttons() uint32 {
	var buttons uint32
	if in.Primary {
		buttons |= common.MouseButtonPrimary
	}
	if in.Secondary {
		buttons |= common.MouseButtonSecondary
	}
	if in.Middle {
		buttons |= common.MouseButtonMiddle
	}
	return buttons
}

// PolledSource forwards polled input to a Sink and remembers the last viewport it
// reported so unchanged layouts do not resize the sink every tick.
type PolledSource struct {
	sink Sink

	WheelStep float32

	width, height int
}

// NewPolledSource creates a PolledSource feeding sink. The initial viewport is assumed
// to already be known to the sink.
//
// Parameters:
//   - sink: the receiver of translated input
//   - width, height: the viewport the sink was created with
//
// Returns:
//   - *PolledSource: the new source
func NewPolledSource(sink Sink, width, height int) *PolledSource {
	return &PolledSource{
		sink:      sink,
		WheelStep: DefaultWheelStep,
		width:     width,
		height:    height,
	}
}

// Apply reports one tick of pointer and wheel input. The wheel y sign is flipped so a
// notch away from the user zooms in.
//
// Parameters:
//   - in: the polled input
func (ps *PolledSource) Apply(in PolledInput) {
	ps.sink.PointerMove(in.Buttons(), float32(in.X), float32(in.Y))
	if in.WheelX != 0 || in.WheelY != 0 {
		ps.sink.Wheel(float32(in.WheelX)*ps.WheelStep, float32(-in.WheelY)*ps.WheelStep)
	}
}

// Layout reports a new viewport size when it differs from the last one. Zero or
// negative extents are ignored.
//
// Parameters:
//   - width, height: the host's current layout size
//
// Returns:
//   - int, int: the viewport to render at, never smaller than 1x1
func (ps *PolledSource) Layout(width, height int) (int, int) {
	if width > 0 && height > 0 && (width != ps.width || height != ps.height) {
		ps.width, ps.height = width, height
		ps.sink.Resize(width, height)
	}
	return max(ps.width, 1), max(ps.height, 1)
}
