package window

import "testing"

func newTestWindow(options ...WindowBuilderOption) *engineWindow {
	w := &engineWindow{
		maxWidth: 3840, maxHeight: 2160,
		minWidth: 200, minHeight: 200,
		width: 1280, height: 720,
		scrollStep: 40,
	}
	for _, opt := range options {
		opt(w)
	}
	w.clampSize()
	return w
}

func TestWindowOptions(t *testing.T) {
	tests := []struct {
		name          string
		options       []WindowBuilderOption
		width, height int
		scrollStep    float32
	}{
		{"defaults", nil, 1280, 720, 40},
		{"size", []WindowBuilderOption{WithSize(800, 600)}, 800, 600, 40},
		{"non-positive size keeps default", []WindowBuilderOption{WithSize(0, -1)}, 1280, 720, 40},
		{"width then height", []WindowBuilderOption{WithWidth(640), WithHeight(480)}, 640, 480, 40},
		{"below minimum", []WindowBuilderOption{WithSize(100, 100)}, 200, 200, 40},
		{"raised minimum", []WindowBuilderOption{WithSizeLimits(1600, 0, 0, 0)}, 1600, 720, 40},
		{"lowered maximum", []WindowBuilderOption{WithSizeLimits(0, 0, 1024, 600)}, 1024, 600, 40},
		{"scroll step", []WindowBuilderOption{WithScrollStep(120)}, 1280, 720, 120},
		{"zero scroll step ignored", []WindowBuilderOption{WithScrollStep(0)}, 1280, 720, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWindow(tt.options...)
			if w.width != tt.width || w.height != tt.height {
				t.Errorf("size = %dx%d, want %dx%d", w.width, w.height, tt.width, tt.height)
			}
			if w.scrollStep != tt.scrollStep {
				t.Errorf("scrollStep = %v, want %v", w.scrollStep, tt.scrollStep)
			}
		})
	}
}

func TestWithTitle(t *testing.T) {
	if w := newTestWindow(WithTitle("orbit")); w.title != "orbit" {
		t.Errorf("title = %q", w.title)
	}
}
