// Command orbit-glfw opens a desktop window and draws the reference wireframe through
// the WebGPU renderer while the orbit camera follows the mouse.
//
// Controls: drag with the left button to orbit, scroll to zoom, space toggles mouse
// input, R resets the camera, Escape quits.
package main

import (
	"flag"
	"log"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/profiler"
	"github.com/Carmen-Shannon/oxy-orbit/engine/renderer"
	"github.com/Carmen-Shannon/oxy-orbit/engine/wireframe"
	"github.com/Carmen-Shannon/oxy-orbit/engine/window"
)

func main() {
	configPath := flag.String("config", "", "camera config YAML (defaults when empty)")
	width := flag.Int("width", 1280, "initial window width")
	height := flag.Int("height", 720, "initial window height")
	vsync := flag.Bool("vsync", true, "wait for vertical blank when presenting")
	msaa := flag.Int("msaa", int(renderer.MSAA4x), "MSAA sample count (1, 4, 8 or 16)")
	fps := flag.Float64("fps", 0, "frame rate cap, 0 for uncapped")
	software := flag.Bool("software", false, "force the software fallback adapter")
	profile := flag.Bool("profile", false, "log frame and camera statistics")
	scrollStep := flag.Float64("scroll-step", 40, "pixels of zoom input per wheel notch")
	flag.Parse()

	cfg := camera.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = camera.LoadConfig(*configPath); err != nil {
			log.Fatalf("[Main] %v", err)
		}
	}

	w := window.NewWindow(
		window.WithTitle("oxy-orbit"),
		window.WithSize(*width, *height),
		window.WithSizeLimits(320, 240, 0, 0),
		window.WithScrollStep(float32(*scrollStep)),
	)

	// WebGPU clip space uses [0, 1] depth.
	cfg.DepthRange = common.DepthRangeZeroToOne
	cfg.ViewportWidth, cfg.ViewportHeight = w.Width(), w.Height()
	cam := camera.NewCameraFromConfig(cfg)

	eng := engine.NewEngine(
		engine.WithWindow(w),
		engine.WithCamera(cam),
		engine.WithProfiling(*profile),
		engine.WithProfiler(profiler.NewProfiler()),
		engine.WithRenderFrameLimit(*fps),
	)

	samples, err := renderer.ParseMSAA(*msaa)
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}
	presentMode := renderer.PresentModeUncapped
	if *vsync {
		presentMode = renderer.PresentModeVSync
	}
	r, err := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		w,
		renderer.WithPresentMode(presentMode),
		renderer.WithMSAA(samples),
		renderer.WithForceSoftwareRenderer(*software),
		renderer.WithClearColor(0.07, 0.07, 0.09, 1),
	)
	if err != nil {
		log.Fatalf("[Main] Failed to create renderer: %v", err)
	}

	lines, err := r.NewLinePass(wireframe.ReferenceScene())
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}

	eng.SetResizeCallback(r.Resize)
	eng.SetRenderCallback(func(b camera.FrameBinding, _ float32) {
		r.WriteCamera(b)
		if err := r.BeginFrame(); err != nil {
			return
		}
		lines.Draw()
		r.EndFrame()
		r.Present()
	})

	log.Printf("[Main] Drawing %d line vertices at %dx%d, %s, %dx MSAA", lines.VertexCount(), w.Width(), w.Height(), presentMode, samples)
	eng.Run()

	r.Release()
	if err := w.Close(); err != nil {
		log.Printf("[Main] Failed to close window: %v", err)
	}
}
