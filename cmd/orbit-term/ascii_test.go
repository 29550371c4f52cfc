package main

import (
	"image/color"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/engine/wireframe"
)

func TestLineRune(t *testing.T) {
	tests := []struct {
		dx, dy float32
		want   rune
	}{
		{10, 0, '-'},
		{-10, 1, '-'},
		{0, 10, '|'},
		{0, -10, '|'},
		{10, 10, '\\'},
		{10, -10, '/'},
		{-10, 10, '/'},
	}
	for _, tt := range tests {
		if got := lineRune(tt.dx, tt.dy); got != tt.want {
			t.Errorf("lineRune(%v, %v) = %q, want %q", tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestRasterize(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	segs := []wireframe.ScreenSegment{
		// Horizontal across row 1, columns 0..4.
		{X0: 4, Y0: 24, X1: 36, Y1: 24, Color: red},
		// Vertical down column 2, overwriting the crossing cell.
		{X0: 20, Y0: 8, X1: 20, Y1: 56, Color: blue},
		// Fully off-grid.
		{X0: -100, Y0: -100, X1: -50, Y1: -50, Color: red},
	}
	cells := rasterize(segs, 10, 4, 8, 16)

	byPos := make(map[[2]int]cell)
	for _, c := range cells {
		if _, dup := byPos[[2]int{c.X, c.Y}]; dup {
			t.Fatalf("duplicate cell at %d,%d", c.X, c.Y)
		}
		byPos[[2]int{c.X, c.Y}] = c
	}

	for x := 0; x <= 4; x++ {
		c, ok := byPos[[2]int{x, 1}]
		if !ok {
			t.Fatalf("missing horizontal cell %d,1", x)
		}
		if x != 2 && (c.Rune != '-' || c.Color != red) {
			t.Errorf("cell %d,1 = %q %v", x, c.Rune, c.Color)
		}
	}
	if c := byPos[[2]int{2, 1}]; c.Rune != '|' || c.Color != blue {
		t.Errorf("crossing cell = %q %v, want the later vertical segment", c.Rune, c.Color)
	}
	for _, c := range cells {
		if c.X < 0 || c.Y < 0 || c.X >= 10 || c.Y >= 4 {
			t.Errorf("cell out of bounds: %+v", c)
		}
	}
}
