// Command orbit-ebiten draws the reference wireframe in an Ebitengine window.
//
// Controls: drag with the left button to orbit, scroll to zoom, space toggles mouse
// input, R resets the camera, Escape quits.
package main

import (
	"flag"
	"log"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/Carmen-Shannon/oxy-orbit/engine/snapshot"
	"github.com/Carmen-Shannon/oxy-orbit/engine/wireframe"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type viewer struct {
	cam   camera.Camera
	src   *input.PolledSource
	segs  []wireframe.Segment
	frame camera.FrameBinding

	lineWidth float32
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.cam.SetMouseEnabled(!v.cam.MouseEnabled())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.cam.Reset()
	}

	v.src.Apply(pollInput())
	v.frame = v.cam.Frame(nil, nil)
	return nil
}

func pollInput() input.PolledInput {
	mx, my := ebiten.CursorPosition()
	wx, wy := ebiten.Wheel()
	return input.PolledInput{
		X:         mx,
		Y:         my,
		Primary:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Secondary: ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		Middle:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		WheelX:    wx,
		WheelY:    wy,
	}
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(snapshot.DefaultBackgroundColor)
	b := screen.Bounds()
	for _, s := range wireframe.Project(v.segs, v.frame.ViewProjection, b.Dx(), b.Dy()) {
		vector.StrokeLine(screen, s.X0, s.Y0, s.X1, s.Y1, v.lineWidth, s.Color, true)
	}
	status := snapshot.HUDText(v.frame)
	if !v.cam.MouseEnabled() {
		status += "  [mouse off]"
	}
	ebitenutil.DebugPrint(screen, status)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.src.Layout(outsideWidth, outsideHeight)
}

func main() {
	configPath := flag.String("config", "", "camera config YAML (defaults when empty)")
	width := flag.Int("width", 1280, "initial window width")
	height := flag.Int("height", 720, "initial window height")
	lineWidth := flag.Float64("line-width", 1.5, "stroke width in pixels")
	flag.Parse()

	cfg := camera.DefaultConfig()
	if *configPath != "" {
		cfg = camera.MustLoadConfig(*configPath)
	}
	cfg.ViewportWidth, cfg.ViewportHeight = *width, *height

	cam := camera.NewCameraFromConfig(cfg)
	v := &viewer{
		cam:       cam,
		src:       input.NewPolledSource(cam, *width, *height),
		segs:      wireframe.ReferenceScene(),
		lineWidth: float32(*lineWidth),
	}
	v.frame = v.cam.Binding()

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("oxy-orbit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
