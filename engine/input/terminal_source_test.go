package input

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/gdamore/tcell/v2"
)

type pointerCall struct {
	buttons uint32
	x, y    float32
}

type fakeSink struct {
	pointer []pointerCall
	wheel   []float32
	resize  [][2]int
}

func (f *fakeSink) PointerMove(buttons uint32, x, y float32) {
	f.pointer = append(f.pointer, pointerCall{buttons, x, y})
}

func (f *fakeSink) Wheel(_, dy float32) { f.wheel = append(f.wheel, dy) }

func (f *fakeSink) Resize(width, height int) { f.resize = append(f.resize, [2]int{width, height}) }

func TestTerminalSource_Mouse(t *testing.T) {
	tests := []struct {
		name        string
		btn         tcell.ButtonMask
		wantButtons uint32
		wantWheel   []float32
	}{
		{"hover", tcell.ButtonNone, 0, nil},
		{"primary drag", tcell.Button1, common.MouseButtonPrimary, nil},
		{"secondary", tcell.Button2, common.MouseButtonSecondary, nil},
		{"middle", tcell.Button3, common.MouseButtonMiddle, nil},
		{"wheel up", tcell.WheelUp, 0, []float32{-DefaultWheelStep}},
		{"wheel down", tcell.WheelDown, 0, []float32{DefaultWheelStep}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &fakeSink{}
			ts := NewTerminalSource(sink)
			if act := ts.Handle(tcell.NewEventMouse(3, 2, tt.btn, tcell.ModNone)); act != KeyActionNone {
				t.Errorf("mouse event decoded as key action %v", act)
			}
			if len(sink.pointer) != 1 {
				t.Fatalf("got %d pointer calls", len(sink.pointer))
			}
			p := sink.pointer[0]
			if p.buttons != tt.wantButtons || p.x != 3.5*DefaultCellWidth || p.y != 2.5*DefaultCellHeight {
				t.Errorf("pointer = %+v", p)
			}
			if len(sink.wheel) != len(tt.wantWheel) {
				t.Fatalf("wheel = %v, want %v", sink.wheel, tt.wantWheel)
			}
			for i := range tt.wantWheel {
				if sink.wheel[i] != tt.wantWheel[i] {
					t.Errorf("wheel = %v, want %v", sink.wheel, tt.wantWheel)
				}
			}
		})
	}
}

func TestTerminalSource_Resize(t *testing.T) {
	sink := &fakeSink{}
	ts := NewTerminalSource(sink, WithCellSize(10, 20))
	ts.Handle(tcell.NewEventResize(80, 24))
	ts.Handle(tcell.NewEventResize(0, 24))

	if len(sink.resize) != 1 || sink.resize[0] != [2]int{800, 480} {
		t.Fatalf("resize calls = %v", sink.resize)
	}
}

func TestTerminalSource_WheelStep(t *testing.T) {
	sink := &fakeSink{}
	ts := NewTerminalSource(sink, WithWheelStep(7))
	ts.Handle(tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone))
	if len(sink.wheel) != 1 || sink.wheel[0] != 7 {
		t.Fatalf("wheel = %v", sink.wheel)
	}
}

func TestTerminalSource_Keys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want KeyAction
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), KeyActionQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), KeyActionQuit},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), KeyActionQuit},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), KeyActionToggleMouse},
		{"reset", tcell.NewEventKey(tcell.KeyRune, 'R', tcell.ModNone), KeyActionReset},
		{"other", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), KeyActionNone},
	}
	for _, tt := range tests {
		sink := &fakeSink{}
		if got := NewTerminalSource(sink).Handle(tt.ev); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
		if len(sink.pointer)+len(sink.wheel)+len(sink.resize) != 0 {
			t.Errorf("%s: key event reached the sink", tt.name)
		}
	}
}
