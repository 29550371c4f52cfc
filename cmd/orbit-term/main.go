// Command orbit-term draws the reference wireframe as ASCII in the terminal.
//
// Controls: drag with the left button to orbit, scroll to zoom, space toggles mouse
// input, r resets the camera, q or Escape quits. With -record the session is saved
// as a trace on exit.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/Carmen-Shannon/oxy-orbit/engine/snapshot"
	"github.com/Carmen-Shannon/oxy-orbit/engine/trace"
	"github.com/Carmen-Shannon/oxy-orbit/engine/wireframe"
	"github.com/gdamore/tcell/v2"
)

// driver is what the loop feeds input to and steps each frame: the camera itself,
// or a trace.Recorder in front of it.
type driver interface {
	input.Sink
	Frame(overrides *camera.Overrides, body func(camera.FrameBinding)) camera.FrameBinding
}

func main() {
	configPath := flag.String("config", "", "camera config YAML (defaults when empty)")
	record := flag.String("record", "", "save the session as a trace to this path on exit")
	fps := flag.Int("fps", 30, "frames per second")
	flag.Parse()

	if err := run(*configPath, *record, *fps); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, recordPath string, fps int) error {
	cfg := camera.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = camera.LoadConfig(configPath); err != nil {
			return err
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	screen.EnableMouse()

	cols, rows := screen.Size()
	cfg.ViewportWidth = max(cols, 1) * input.DefaultCellWidth
	cfg.ViewportHeight = max(rows, 1) * input.DefaultCellHeight
	cam := camera.NewCameraFromConfig(cfg)

	var d driver = cam
	var rec *trace.Recorder
	if recordPath != "" {
		rec = trace.NewRecorder(cam, "orbit-term")
		d = rec
	}
	src := input.NewTerminalSource(d)
	segs := wireframe.ReferenceScene()

	ticker := time.NewTicker(time.Second / time.Duration(max(fps, 1)))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for running := true; running; {
		select {
		case ev := <-events:
			switch src.Handle(ev) {
			case input.KeyActionQuit:
				running = false
			case input.KeyActionToggleMouse:
				cam.SetMouseEnabled(!cam.MouseEnabled())
			case input.KeyActionReset:
				cam.Reset()
			}
		case <-ticker.C:
			d.Frame(nil, func(b camera.FrameBinding) {
				draw(screen, b, segs, cam.MouseEnabled())
			})
		}
	}

	screen.Fini()
	if rec != nil {
		if err := rec.Trace().Save(recordPath); err != nil {
			return err
		}
		log.Printf("[Main] Recorded %d frames to %s", rec.Trace().FrameCount(), recordPath)
	}
	return nil
}

func draw(screen tcell.Screen, b camera.FrameBinding, segs []wireframe.Segment, mouse bool) {
	cols, rows := screen.Size()
	screen.Clear()

	projected := wireframe.Project(segs, b.ViewProjection, b.ViewportWidth, b.ViewportHeight)
	for _, c := range rasterize(projected, cols, rows, input.DefaultCellWidth, input.DefaultCellHeight) {
		screen.SetContent(c.X, c.Y, c.Rune, nil, styleFor(c.Color))
	}

	status := snapshot.HUDText(b)
	if !mouse {
		status += "  [mouse off]"
	}
	for i, r := range status {
		if i >= cols {
			break
		}
		screen.SetContent(i, 0, r, nil, tcell.StyleDefault.Reverse(true))
	}
	screen.Show()
}
