package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/wireframe"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Default render settings.
const (
	DefaultSupersample = 2
	DefaultLineWidth   = 1.5
)

var (
	DefaultBackgroundColor = color.RGBA{R: 18, G: 18, B: 24, A: 255}
	DefaultHUDColor        = color.RGBA{R: 220, G: 220, B: 160, A: 255}
)

// Options controls how a frame is rendered offline.
type Options struct {
	// Supersample is the per-axis oversampling factor, at least 1.
	Supersample int
	// LineWidth is the stroke width in output pixels.
	LineWidth float32
	// Background, when set, is scaled to fill the frame before lines are drawn.
	Background      image.Image
	BackgroundColor color.RGBA
	// HUD draws the camera pose in the top-left corner.
	HUD      bool
	HUDColor color.RGBA
}

// DefaultOptions returns the options Render uses for zero fields.
func DefaultOptions() Options {
	return Options{
		Supersample:     DefaultSupersample,
		LineWidth:       DefaultLineWidth,
		BackgroundColor: DefaultBackgroundColor,
		HUD:             true,
		HUDColor:        DefaultHUDColor,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Supersample < 1 {
		o.Supersample = def.Supersample
	}
	if o.LineWidth <= 0 {
		o.LineWidth = def.LineWidth
	}
	if o.BackgroundColor == (color.RGBA{}) {
		o.BackgroundColor = def.BackgroundColor
	}
	if o.HUDColor == (color.RGBA{}) {
		o.HUDColor = def.HUDColor
	}
	return o
}

// Render rasterizes segs as seen through the frame's camera into an image the size of
// the frame's viewport.
//
// Parameters:
//   - b: the camera snapshot to render from
//   - segs: world-space segments
//   - opts: render options, zero fields take their defaults
//
// Returns:
//   - *image.RGBA: the rendered frame
func Render(b camera.FrameBinding, segs []wireframe.Segment, opts Options) *image.RGBA {
	opts = opts.withDefaults()
	w, h := max(b.ViewportWidth, 1), max(b.ViewportHeight, 1)
	ss := opts.Supersample

	canvas := image.NewRGBA(image.Rect(0, 0, w*ss, h*ss))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(opts.BackgroundColor), image.Point{}, draw.Src)
	if opts.Background != nil {
		draw.CatmullRom.Scale(canvas, canvas.Bounds(), opts.Background, opts.Background.Bounds(), draw.Over, nil)
	}

	projected := wireframe.Project(segs, b.ViewProjection, w*ss, h*ss)
	strokeSegments(canvas, projected, opts.LineWidth*float32(ss))

	var dst *image.RGBA
	if ss == 1 {
		dst = canvas
	} else {
		dst = image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), canvas, canvas.Bounds(), draw.Src, nil)
	}

	if opts.HUD {
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(opts.HUDColor),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(6, 15),
		}
		d.DrawString(HUDText(b))
	}
	return dst
}

// strokeSegments draws every segment as a filled quad of the given width.
// Segments are batched per color so each color is one rasterizer pass.
func strokeSegments(dst *image.RGBA, segs []wireframe.ScreenSegment, width float32) {
	var order []color.RGBA
	byColor := make(map[color.RGBA][]wireframe.ScreenSegment)
	for _, s := range segs {
		if _, ok := byColor[s.Color]; !ok {
			order = append(order, s.Color)
		}
		byColor[s.Color] = append(byColor[s.Color], s)
	}

	bounds := dst.Bounds()
	r := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	for _, c := range order {
		r.Reset(bounds.Dx(), bounds.Dy())
		for _, s := range byColor[c] {
			addStroke(r, s, width/2)
		}
		r.Draw(dst, bounds, image.NewUniform(c), image.Point{})
	}
}

func addStroke(r *vector.Rasterizer, s wireframe.ScreenSegment, hw float32) {
	dx, dy := s.X1-s.X0, s.Y1-s.Y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	var nx, ny, tx, ty float32
	if l < 1e-6 {
		// Degenerate segment: a square dot.
		nx, ny, tx, ty = 0, hw, hw, 0
	} else {
		nx, ny = -dy/l*hw, dx/l*hw
	}
	r.MoveTo(s.X0-tx+nx, s.Y0-ty+ny)
	r.LineTo(s.X1+tx+nx, s.Y1+ty+ny)
	r.LineTo(s.X1+tx-nx, s.Y1+ty-ny)
	r.LineTo(s.X0-tx-nx, s.Y0-ty-ny)
	r.ClosePath()
}

// HUDText formats the pose line drawn by Render.
func HUDText(b camera.FrameBinding) string {
	return fmt.Sprintf("#%d  theta %.1f  phi %.1f  r %.2f",
		b.FrameIndex, mgl32.RadToDeg(b.Theta), mgl32.RadToDeg(b.Phi), b.Distance)
}
