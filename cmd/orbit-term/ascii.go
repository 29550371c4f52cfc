package main

import (
	"image/color"
	"math"

	"github.com/Carmen-Shannon/oxy-orbit/engine/wireframe"
	"github.com/gdamore/tcell/v2"
)

// cell is one character of a rasterized frame.
type cell struct {
	X, Y  int
	Rune  rune
	Color color.RGBA
}

// lineRune picks the glyph that best follows a screen-space direction.
// Screen y grows downwards, so a positive slope runs towards the bottom right.
func lineRune(dx, dy float32) rune {
	angle := math.Atan2(float64(dy), float64(dx)) * 180 / math.Pi
	if angle < 0 {
		angle += 180
	}
	switch {
	case angle < 22.5 || angle >= 157.5:
		return '-'
	case angle < 67.5:
		return '\\'
	case angle < 112.5:
		return '|'
	default:
		return '/'
	}
}

// rasterize walks every segment, given in virtual pixels, across a cols x rows grid of
// cellW x cellH cells. Later segments overwrite earlier ones.
func rasterize(segs []wireframe.ScreenSegment, cols, rows, cellW, cellH int) []cell {
	grid := make(map[[2]int]int)
	var out []cell
	for _, s := range segs {
		r := lineRune(s.X1-s.X0, (s.Y1-s.Y0)*float32(cellW)/float32(cellH))
		x0, y0 := s.X0/float32(cellW), s.Y0/float32(cellH)
		x1, y1 := s.X1/float32(cellW), s.Y1/float32(cellH)
		steps := int(math.Ceil(math.Max(math.Abs(float64(x1-x0)), math.Abs(float64(y1-y0)))))
		for i := 0; i <= steps; i++ {
			t := float32(0)
			if steps > 0 {
				t = float32(i) / float32(steps)
			}
			cx := int(math.Floor(float64(x0 + (x1-x0)*t)))
			cy := int(math.Floor(float64(y0 + (y1-y0)*t)))
			if cx < 0 || cy < 0 || cx >= cols || cy >= rows {
				continue
			}
			key := [2]int{cx, cy}
			c := cell{X: cx, Y: cy, Rune: r, Color: s.Color}
			if idx, ok := grid[key]; ok {
				out[idx] = c
				continue
			}
			grid[key] = len(out)
			out = append(out, c)
		}
	}
	return out
}

func styleFor(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}
