package trace

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

const dragTrace = `
name: drag-right
viewport: {width: 100, height: 100}
frames:
  - events:
      - pointer: {buttons: 1, x: 10, y: 50}
  - events:
      - pointer: {buttons: 1, x: 30, y: 50}
      - wheel: {dy: 10}
  - repeat: 40
`

func TestParse(t *testing.T) {
	tr, err := Parse([]byte(dragTrace))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tr.Name != "drag-right" || tr.Viewport != (Viewport{100, 100}) {
		t.Errorf("header = %q %+v", tr.Name, tr.Viewport)
	}
	if got := tr.FrameCount(); got != 43 {
		t.Errorf("FrameCount = %d, want 43", got)
	}
	if ev := tr.Frames[1].Events[1]; ev.Wheel == nil || ev.Wheel.DY != 10 {
		t.Errorf("wheel event = %+v", ev)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"no viewport", "frames: []\n", "viewport"},
		{"empty event", "viewport: {width: 1, height: 1}\nframes:\n  - events: [{}]\n", "exactly one"},
		{"two kinds", "viewport: {width: 1, height: 1}\nframes:\n  - events: [{wheel: {dy: 1}, resize: {width: 1, height: 1}}]\n", "exactly one"},
		{"zero resize", "viewport: {width: 1, height: 1}\nframes:\n  - events: [{resize: {width: 0, height: 1}}]\n", "resize"},
		{"negative repeat", "viewport: {width: 1, height: 1}\nframes:\n  - repeat: -2\n", "repeat"},
		{"malformed", "viewport: [", "failed to decode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestReplay_DragSettles(t *testing.T) {
	tr, err := Parse([]byte(dragTrace))
	if err != nil {
		t.Fatal(err)
	}
	frames := 0
	sum := Replay(camera.NewCamera(), tr, func(camera.FrameBinding) { frames++ })

	if sum.Frames != 43 || frames != 43 {
		t.Fatalf("frames = %d (callback %d), want 43", sum.Frames, frames)
	}
	if !sum.Settled() || sum.SettledAt <= 2 || sum.SettledAt > 43 {
		t.Fatalf("SettledAt = %d", sum.SettledAt)
	}
	if sum.Final.Theta <= 0 {
		t.Errorf("drag to the right should increase theta, got %v", sum.Final.Theta)
	}
	if sum.Final.Distance <= camera.DefaultDistance {
		t.Errorf("positive wheel should zoom out, got distance %v", sum.Final.Distance)
	}
	if sum.Final.ViewportWidth != 100 || sum.Final.ViewportHeight != 100 {
		t.Errorf("viewport = %dx%d", sum.Final.ViewportWidth, sum.Final.ViewportHeight)
	}
}

func TestReplay_Unsettled(t *testing.T) {
	tr := &Trace{
		Viewport: Viewport{100, 100},
		Frames:   []Frame{{Overrides: &Overrides{DTheta: common.Ptr[float32](5)}}},
	}
	if sum := Replay(camera.NewCamera(), tr, nil); sum.Settled() {
		t.Fatalf("camera with pending velocity reported settled at %d", sum.SettledAt)
	}
}

func TestRecorder_RoundTrip(t *testing.T) {
	live := camera.NewCamera(camera.WithViewport(200, 100))
	rec := NewRecorder(live, "session")

	rec.PointerMove(0, 50, 50)
	rec.Frame(nil, nil)
	rec.PointerMove(common.MouseButtonPrimary, 80, 40)
	rec.Wheel(0, -30)
	rec.Frame(nil, nil)
	rec.Resize(100, 200)
	center := mgl32.Vec3{0, 1, 0}
	rec.Frame(&camera.Overrides{Center: &center}, nil)
	for range 30 {
		rec.Frame(nil, nil)
	}
	want := live.Binding()

	tr := rec.Trace()
	if len(tr.Frames) != 4 || tr.Frames[3].Repeat != 29 {
		t.Fatalf("recorded %d frames, last repeat %d", len(tr.Frames), tr.Frames[len(tr.Frames)-1].Repeat)
	}
	if tr.FrameCount() != 33 {
		t.Fatalf("FrameCount = %d, want 33", tr.FrameCount())
	}

	path := filepath.Join(t.TempDir(), "session.yaml")
	if err := tr.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	got := Replay(camera.NewCamera(), loaded, nil).Final
	if got.Eye != want.Eye || got.View != want.View || got.Projection != want.Projection {
		t.Errorf("replayed pose differs:\n got %+v\nwant %+v", got, want)
	}
	if got.Center != center {
		t.Errorf("center override lost: %v", got.Center)
	}
}

func TestOverrides_NilCamera(t *testing.T) {
	var o *Overrides
	if o.Camera() != nil {
		t.Fatal("nil overrides should convert to nil")
	}
}
