package wireframe

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Reference colors used by the default scene.
var (
	ColorGrid = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	ColorCube = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	ColorX    = color.RGBA{R: 230, G: 70, B: 70, A: 255}
	ColorY    = color.RGBA{R: 70, G: 210, B: 90, A: 255}
	ColorZ    = color.RGBA{R: 80, G: 120, B: 240, A: 255}
)

// Segment is a colored line segment in world space.
type Segment struct {
	A, B  mgl32.Vec3
	Color color.RGBA
}

// Cube returns the 12 edges of an axis-aligned cube.
//
// Parameters:
//   - center: world-space center of the cube
//   - half: half of the edge length
//   - c: edge color
//
// Returns:
//   - []Segment: the cube edges
func Cube(center mgl32.Vec3, half float32, c color.RGBA) []Segment {
	var corners [8]mgl32.Vec3
	for i := range 8 {
		corners[i] = center.Add(mgl32.Vec3{
			signBit(i, 0) * half,
			signBit(i, 1) * half,
			signBit(i, 2) * half,
		})
	}
	segs := make([]Segment, 0, 12)
	for i := range 8 {
		for axis := range 3 {
			j := i | 1<<axis
			if j != i {
				segs = append(segs, Segment{A: corners[i], B: corners[j], Color: c})
			}
		}
	}
	return segs
}

func signBit(i, bit int) float32 {
	if i&(1<<bit) != 0 {
		return 1
	}
	return -1
}

// Grid returns a square grid on the y = 0 plane centered on the origin.
//
// Parameters:
//   - half: half of the grid extent
//   - divisions: number of cells along each side, at least 1
//   - c: line color
//
// Returns:
//   - []Segment: 2*(divisions+1) grid lines
func Grid(half float32, divisions int, c color.RGBA) []Segment {
	divisions = max(divisions, 1)
	step := 2 * half / float32(divisions)
	segs := make([]Segment, 0, 2*(divisions+1))
	for i := 0; i <= divisions; i++ {
		p := -half + float32(i)*step
		segs = append(segs,
			Segment{A: mgl32.Vec3{p, 0, -half}, B: mgl32.Vec3{p, 0, half}, Color: c},
			Segment{A: mgl32.Vec3{-half, 0, p}, B: mgl32.Vec3{half, 0, p}, Color: c},
		)
	}
	return segs
}

// Axes returns the three positive world axes from the origin, colored X red, Y green, Z blue.
func Axes(length float32) []Segment {
	return []Segment{
		{A: mgl32.Vec3{}, B: mgl32.Vec3{length, 0, 0}, Color: ColorX},
		{A: mgl32.Vec3{}, B: mgl32.Vec3{0, length, 0}, Color: ColorY},
		{A: mgl32.Vec3{}, B: mgl32.Vec3{0, 0, length}, Color: ColorZ},
	}
}

// ReferenceScene is the scene every host draws: a ground grid, world axes and a unit cube
// resting on the grid.
func ReferenceScene() []Segment {
	segs := Grid(5, 10, ColorGrid)
	segs = append(segs, Cube(mgl32.Vec3{0, 1, 0}, 1, ColorCube)...)
	return append(segs, Axes(3)...)
}
