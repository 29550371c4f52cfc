package wireframe

import (
	"image/color"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// minClipW keeps projected points strictly in front of the eye.
const minClipW = 1e-5

// ScreenSegment is a projected segment in viewport pixels, origin top-left, Y down.
type ScreenSegment struct {
	X0, Y0 float32
	X1, Y1 float32
	Color  color.RGBA
}

// clipPlane is a homogeneous half-space a·p >= 0 in clip space.
type clipPlane mgl32.Vec4

// Left, right, bottom, top and a w floor. Depth is left to the frustum test so the
// projector does not depend on the depth convention of the matrix.
var clipPlanes = [...]clipPlane{
	{1, 0, 0, 1},
	{-1, 0, 0, 1},
	{0, 1, 0, 1},
	{0, -1, 0, 1},
	{0, 0, 0, 1},
}

// Project transforms world-space segments into viewport pixels.
// Segments entirely outside the view frustum are dropped; the rest are clipped to the
// viewport edges and to the space in front of the eye.
//
// Parameters:
//   - segs: world-space segments
//   - viewProj: combined view-projection matrix
//   - width, height: viewport size in pixels
//
// Returns:
//   - []ScreenSegment: the visible portions in pixel coordinates
func Project(segs []Segment, viewProj mgl32.Mat4, width, height int) []ScreenSegment {
	frustum := common.ExtractFrustum(viewProj)
	out := make([]ScreenSegment, 0, len(segs))
	for _, s := range segs {
		if frustum.SegmentOutside(s.A, s.B) {
			continue
		}
		a := viewProj.Mul4x1(s.A.Vec4(1))
		b := viewProj.Mul4x1(s.B.Vec4(1))
		a, b, ok := clipSegment(a, b)
		if !ok {
			continue
		}
		x0, y0 := toViewport(a, width, height)
		x1, y1 := toViewport(b, width, height)
		out = append(out, ScreenSegment{X0: x0, Y0: y0, X1: x1, Y1: y1, Color: s.Color})
	}
	return out
}

// clipSegment clips a clip-space segment against clipPlanes (Liang-Barsky).
func clipSegment(a, b mgl32.Vec4) (mgl32.Vec4, mgl32.Vec4, bool) {
	t0, t1 := float32(0), float32(1)
	for i, p := range clipPlanes {
		pv := mgl32.Vec4(p)
		da := pv.Dot(a)
		db := pv.Dot(b)
		if i == len(clipPlanes)-1 {
			da -= minClipW
			db -= minClipW
		}
		switch {
		case da < 0 && db < 0:
			return a, b, false
		case da < 0:
			t0 = max(t0, da/(da-db))
		case db < 0:
			t1 = min(t1, da/(da-db))
		}
		if t0 > t1 {
			return a, b, false
		}
	}
	d := b.Sub(a)
	return a.Add(d.Mul(t0)), a.Add(d.Mul(t1)), true
}

func toViewport(p mgl32.Vec4, width, height int) (float32, float32) {
	nx, ny := p[0]/p[3], p[1]/p[3]
	return (nx + 1) * 0.5 * float32(width), (1 - ny) * 0.5 * float32(height)
}

// LineVertex is the GPU vertex layout for line-list drawing.
type LineVertex struct {
	Position [3]float32 // offset  0 (location 0)
	Color    [3]float32 // offset 12 (location 1)
}

// LineVertexStride is the byte stride of LineVertex.
const LineVertexStride = 24

// Vertices flattens segments into a line-list vertex array, two vertices per segment.
func Vertices(segs []Segment) []LineVertex {
	out := make([]LineVertex, 0, 2*len(segs))
	for _, s := range segs {
		c := [3]float32{float32(s.Color.R) / 255, float32(s.Color.G) / 255, float32(s.Color.B) / 255}
		out = append(out, LineVertex{Position: s.A, Color: c}, LineVertex{Position: s.B, Color: c})
	}
	return out
}
