package input

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/common"
)

func TestPolledInput_Buttons(t *testing.T) {
	tests := []struct {
		name string
		in   PolledInput
		want uint32
	}{
		{"none", PolledInput{}, 0},
		{"primary", PolledInput{Primary: true}, common.MouseButtonPrimary},
		{"secondary", PolledInput{Secondary: true}, common.MouseButtonSecondary},
		{"middle", PolledInput{Middle: true}, common.MouseButtonMiddle},
		{"all", PolledInput{Primary: true, Secondary: true, Middle: true},
			common.MouseButtonPrimary | common.MouseButtonSecondary | common.MouseButtonMiddle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Buttons(); got != tt.want {
				t.Errorf("Buttons() = %b, want %b", got, tt.want)
			}
		})
	}
}

func TestPolledSource_Apply(t *testing.T) {
	tests := []struct {
		name      string
		in        PolledInput
		wantWheel []float32
	}{
		{"no wheel", PolledInput{X: 10, Y: 20, Primary: true}, nil},
		{"wheel away from user zooms in", PolledInput{X: 10, Y: 20, WheelY: 1}, []float32{-DefaultWheelStep}},
		{"wheel toward user zooms out", PolledInput{X: 10, Y: 20, WheelY: -2}, []float32{2 * DefaultWheelStep}},
		{"horizontal only", PolledInput{X: 10, Y: 20, WheelX: 1}, []float32{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &fakeSink{}
			NewPolledSource(sink, 640, 480).Apply(tt.in)

			if len(sink.pointer) != 1 {
				t.Fatalf("got %d pointer calls", len(sink.pointer))
			}
			if p := sink.pointer[0]; p.buttons != tt.in.Buttons() || p.x != 10 || p.y != 20 {
				t.Errorf("pointer = %+v", p)
			}
			if len(sink.wheel) != len(tt.wantWheel) {
				t.Fatalf("wheel = %v, want %v", sink.wheel, tt.wantWheel)
			}
			for i := range tt.wantWheel {
				if sink.wheel[i] != tt.wantWheel[i] {
					t.Errorf("wheel[%d] = %v, want %v", i, sink.wheel[i], tt.wantWheel[i])
				}
			}
		})
	}
}

func TestPolledSource_Layout(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
		wantResize    bool
	}{
		{"unchanged", 640, 480, 640, 480, false},
		{"grown", 800, 600, 800, 600, true},
		{"zero width", 0, 600, 640, 480, false},
		{"zero height", 800, 0, 640, 480, false},
		{"negative", -1, -1, 640, 480, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &fakeSink{}
			ps := NewPolledSource(sink, 640, 480)
			w, h := ps.Layout(tt.width, tt.height)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Layout = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
			if got := len(sink.resize) == 1; got != tt.wantResize {
				t.Errorf("resize calls = %v", sink.resize)
			}
		})
	}
}

func TestPolledSource_LayoutNeverZero(t *testing.T) {
	ps := NewPolledSource(&fakeSink{}, 0, 0)
	if w, h := ps.Layout(0, 0); w != 1 || h != 1 {
		t.Errorf("Layout = %dx%d, want 1x1", w, h)
	}
}
