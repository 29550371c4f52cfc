package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/engine/snapshot"
)

func testOptions(t *testing.T, out string) options {
	t.Helper()
	return options{
		TracePath: filepath.Join("..", "..", "testdata", "traces", "override.yaml"),
		OutPath:   filepath.Join(t.TempDir(), out),
		Render:    snapshot.Options{Supersample: 1, HUD: true},
	}
}

func TestRun_FinalFrame(t *testing.T) {
	opts := testOptions(t, "final.png")
	opts.ConfigPath = filepath.Join("..", "..", "configs", "orbit.yaml")
	written, err := run(opts)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(written) != 1 || written[0] != opts.OutPath {
		t.Fatalf("written = %v", written)
	}
	if info, err := os.Stat(opts.OutPath); err != nil || info.Size() == 0 {
		t.Fatalf("output not written: %v", err)
	}
}

func TestRun_Every(t *testing.T) {
	opts := testOptions(t, "f%03d.webp")
	opts.Every = 50
	written, err := run(opts)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	// override.yaml replays 201 frames: indices 50, 100, 150 and 200.
	if len(written) != 4 {
		t.Fatalf("written %d frames: %v", len(written), written)
	}
	if filepath.Base(written[0]) != "f050.webp" {
		t.Errorf("first frame = %s", written[0])
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*options)
	}{
		{"every without verb", func(o *options) { o.Every = 2 }},
		{"bad extension", func(o *options) { o.OutPath = "frame.gif" }},
		{"missing trace", func(o *options) { o.TracePath = "missing.yaml" }},
		{"missing config", func(o *options) { o.ConfigPath = "missing.yaml" }},
		{"missing background", func(o *options) { o.BackgroundPath = "missing.png" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions(t, "out.png")
			tt.modify(&opts)
			if _, err := run(opts); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
