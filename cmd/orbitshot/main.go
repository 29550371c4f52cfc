// Command orbitshot replays an input trace and renders the reference wireframe as seen
// by the camera to WebP or PNG images.
//
// Usage:
//
//	orbitshot -trace drag.yaml -out final.webp
//	orbitshot -trace drag.yaml -out frames/%04d.png -every 5
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/snapshot"
	"github.com/Carmen-Shannon/oxy-orbit/engine/trace"
	"github.com/Carmen-Shannon/oxy-orbit/engine/wireframe"
)

type options struct {
	TracePath      string
	OutPath        string
	ConfigPath     string
	BackgroundPath string
	Every          int
	Render         snapshot.Options
}

func main() {
	var opts options
	flag.StringVar(&opts.TracePath, "trace", "", "input trace YAML (required)")
	flag.StringVar(&opts.OutPath, "out", "orbit.webp", "output .webp or .png; with -every it must contain a %d verb")
	flag.StringVar(&opts.ConfigPath, "config", "", "camera config YAML (defaults when empty)")
	flag.StringVar(&opts.BackgroundPath, "background", "", "PNG, JPEG or TGA image drawn behind the wireframe")
	flag.IntVar(&opts.Every, "every", 0, "write every Nth frame instead of only the last one")
	supersample := flag.Int("supersample", snapshot.DefaultSupersample, "per-axis supersampling factor")
	lineWidth := flag.Float64("line-width", snapshot.DefaultLineWidth, "stroke width in output pixels")
	hud := flag.Bool("hud", true, "draw the camera pose in the corner")
	flag.Parse()

	opts.Render = snapshot.DefaultOptions()
	opts.Render.Supersample = *supersample
	opts.Render.LineWidth = float32(*lineWidth)
	opts.Render.HUD = *hud

	if opts.TracePath == "" {
		fmt.Fprintln(os.Stderr, "orbitshot: -trace is required")
		flag.Usage()
		os.Exit(2)
	}

	written, err := run(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "orbitshot:", err)
		os.Exit(1)
	}
	for _, p := range written {
		fmt.Println(p)
	}
}

// run replays the trace and writes the requested frames, returning the paths written.
func run(opts options) ([]string, error) {
	if opts.Every > 0 && !strings.Contains(opts.OutPath, "%") {
		return nil, fmt.Errorf("-out %q needs a %%d verb when -every is set", opts.OutPath)
	}
	if _, err := snapshot.FormatFromPath(opts.OutPath); err != nil {
		return nil, err
	}

	cfg := camera.DefaultConfig()
	if opts.ConfigPath != "" {
		var err error
		if cfg, err = camera.LoadConfig(opts.ConfigPath); err != nil {
			return nil, err
		}
	}
	if opts.BackgroundPath != "" {
		bg, err := snapshot.LoadBackground(opts.BackgroundPath)
		if err != nil {
			return nil, err
		}
		opts.Render.Background = bg
	}

	t, err := trace.Load(opts.TracePath)
	if err != nil {
		return nil, err
	}

	segs := wireframe.ReferenceScene()
	var written []string
	var saveErr error
	save := func(path string, img image.Image) {
		if saveErr != nil {
			return
		}
		if saveErr = snapshot.Save(path, img); saveErr == nil {
			written = append(written, path)
		}
	}

	var frame func(camera.FrameBinding)
	if opts.Every > 0 {
		frame = func(b camera.FrameBinding) {
			if b.FrameIndex%uint64(opts.Every) == 0 {
				save(fmt.Sprintf(opts.OutPath, b.FrameIndex), snapshot.Render(b, segs, opts.Render))
			}
		}
	}

	sum := trace.Replay(camera.NewCameraFromConfig(cfg), t, frame)
	if saveErr != nil {
		return written, saveErr
	}
	if opts.Every == 0 {
		save(opts.OutPath, snapshot.Render(sum.Final, segs, opts.Render))
	}
	return written, saveErr
}
