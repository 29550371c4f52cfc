package input

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/gdamore/tcell/v2"
)

// Default virtual cell size. Terminal cells are roughly twice as tall as wide, so
// reporting pixel extents keeps the projection aspect close to what is on screen.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
	// DefaultWheelStep is the scroll distance in pixels reported per wheel notch.
	DefaultWheelStep = 40
)

// KeyAction is a host-level command decoded from a key press.
type KeyAction int

const (
	KeyActionNone KeyAction = iota
	KeyActionQuit
	KeyActionToggleMouse
	KeyActionReset
)

// TerminalSource converts tcell events into Sink calls.
// Cell coordinates are scaled to virtual pixels of CellWidth x CellHeight.
type TerminalSource struct {
	sink Sink

	CellWidth  int
	CellHeight int
	WheelStep  float32
}

// TerminalSourceOption is a functional option for configuring a TerminalSource.
type TerminalSourceOption func(*TerminalSource)

// WithCellSize sets the virtual pixel size of one terminal cell.
//
// Parameters:
//   - width, height: cell size in virtual pixels
//
// Returns:
//   - TerminalSourceOption: functional option to set the cell size
func WithCellSize(width, height int) TerminalSourceOption {
	return func(ts *TerminalSource) {
		ts.CellWidth = width
		ts.CellHeight = height
	}
}

// WithWheelStep sets the pixel distance reported per wheel notch.
//
// Parameters:
//   - step: pixels per notch
//
// Returns:
//   - TerminalSourceOption: functional option to set the wheel step
func WithWheelStep(step float32) TerminalSourceOption {
	return func(ts *TerminalSource) {
		ts.WheelStep = step
	}
}

// NewTerminalSource creates a TerminalSource feeding sink.
//
// Parameters:
//   - sink: the receiver of translated events
//   - options: functional options
//
// Returns:
//   - *TerminalSource: the new source
func NewTerminalSource(sink Sink, options ...TerminalSourceOption) *TerminalSource {
	ts := &TerminalSource{
		sink:       sink,
		CellWidth:  DefaultCellWidth,
		CellHeight: DefaultCellHeight,
		WheelStep:  DefaultWheelStep,
	}
	for _, option := range options {
		option(ts)
	}
	return ts
}

// Handle translates one tcell event. Mouse and resize events are forwarded to the sink;
// key events are decoded into a KeyAction for the host to act on.
//
// Parameters:
//   - ev: the tcell event
//
// Returns:
//   - KeyAction: the decoded key command, KeyActionNone for anything else
func (ts *TerminalSource) Handle(ev tcell.Event) KeyAction {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		ts.handleMouse(ev)
	case *tcell.EventResize:
		cols, rows := ev.Size()
		if cols > 0 && rows > 0 {
			ts.sink.Resize(cols*ts.CellWidth, rows*ts.CellHeight)
		}
	case *tcell.EventKey:
		return decodeKey(ev)
	}
	return KeyActionNone
}

func (ts *TerminalSource) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	// Sample the cell center so a click without motion maps to a stable point.
	x := (float32(col) + 0.5) * float32(ts.CellWidth)
	y := (float32(row) + 0.5) * float32(ts.CellHeight)

	mask := ev.Buttons()
	var buttons uint32
	if mask&tcell.Button1 != 0 {
		buttons |= common.MouseButtonPrimary
	}
	if mask&tcell.Button2 != 0 {
		buttons |= common.MouseButtonSecondary
	}
	if mask&tcell.Button3 != 0 {
		buttons |= common.MouseButtonMiddle
	}
	ts.sink.PointerMove(buttons, x, y)

	switch {
	case mask&tcell.WheelUp != 0:
		ts.sink.Wheel(0, -ts.WheelStep)
	case mask&tcell.WheelDown != 0:
		ts.sink.Wheel(0, ts.WheelStep)
	}
}

func decodeKey(ev *tcell.EventKey) KeyAction {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return KeyActionQuit
		case ' ':
			return KeyActionToggleMouse
		case 'r', 'R':
			return KeyActionReset
		}
	}
	return KeyActionNone
}
