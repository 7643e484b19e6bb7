// Package view holds the viewport state and the mapping between terminal
// cells and the complex plane.
package view

import (
	"math"

	"github.com/san-kum/fracviz/internal/fractal"
	"github.com/san-kum/fracviz/internal/palette"
)

const (
	// RealSpan and ImagSpan are the plane extents at zoom 1. The 1.75:1
	// ratio offsets the roughly 2:1 height of terminal character cells,
	// so a circle in the plane renders visually round.
	RealSpan = 3.5
	ImagSpan = 2.0

	MinZoom = 0.1
	MinIter = 50
	MaxIter = 1000

	// DefaultIter is the iteration cap at startup and after reset.
	DefaultIter = 100
)

// Viewport is the mutable session state: where the view is, how deep it
// iterates, and which overlays are active. One terminal row is always
// reserved for the status line.
type Viewport struct {
	Center        fractal.Point
	Zoom          float64
	MaxIter       int
	Family        fractal.Family
	JuliaParam    fractal.Point
	Palette       palette.Scheme
	ShowCrosshair bool
	ShowHelp      bool
}

// New returns the starting Mandelbrot view.
func New() Viewport {
	return Viewport{
		Center:     DefaultCenter(fractal.Mandelbrot),
		Zoom:       1.0,
		MaxIter:    DefaultIter,
		Family:     fractal.Mandelbrot,
		JuliaParam: fractal.DefaultJuliaParam,
	}
}

// DefaultCenter is the canonical home position for a family.
func DefaultCenter(f fractal.Family) fractal.Point {
	if f == fractal.Julia {
		return fractal.Point{}
	}
	return fractal.Point{Real: -0.75}
}

// Reset restores center, zoom and iteration depth to the current family's
// defaults. Palette and overlay flags are untouched.
func (v *Viewport) Reset() {
	v.Center = DefaultCenter(v.Family)
	v.Zoom = 1.0
	v.MaxIter = DefaultIter
}

// Rect is the visible slice of the complex plane.
type Rect struct {
	RealMin, RealMax float64
	ImagMin, ImagMax float64
}

// VisibleRect derives the plane rectangle for the current center and zoom.
func (v Viewport) VisibleRect() Rect {
	rw := RealSpan / v.Zoom
	ih := ImagSpan / v.Zoom
	return Rect{
		RealMin: v.Center.Real - rw/2,
		RealMax: v.Center.Real + rw/2,
		ImagMin: v.Center.Imag - ih/2,
		ImagMax: v.Center.Imag + ih/2,
	}
}

// PlaneAt maps terminal cell (col, row) to its plane coordinate. Columns
// span [RealMin, RealMax) across width cells; rows span [ImagMax, ImagMin]
// across height-1 lines (the last row is the status line), with row 0 at
// the most positive imaginary value.
func (v Viewport) PlaneAt(col, row, width, height int) fractal.Point {
	r := v.VisibleRect()
	return fractal.Point{
		Real: r.RealMin + float64(col)/float64(width)*(r.RealMax-r.RealMin),
		Imag: r.ImagMax - float64(row)/float64(height-1)*(r.ImagMax-r.ImagMin),
	}
}

// PixelOf is the exact inverse of PlaneAt: the cell whose plane coordinate
// is p. Mouse clicks use this so recentering lands on the same point the
// renderer colored at that cell.
func (v Viewport) PixelOf(p fractal.Point, width, height int) (col, row int) {
	r := v.VisibleRect()
	col = int(math.Round((p.Real - r.RealMin) / (r.RealMax - r.RealMin) * float64(width)))
	row = int(math.Round((r.ImagMax - p.Imag) / (r.ImagMax - r.ImagMin) * float64(height-1)))
	return col, row
}

// ClampZoom enforces the zoom floor.
func ClampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	return z
}

// ClampIter keeps the iteration cap within [MinIter, MaxIter].
func ClampIter(n int) int {
	if n < MinIter {
		return MinIter
	}
	if n > MaxIter {
		return MaxIter
	}
	return n
}

// Bookmark is a saved position for one of the digit slots '1'..'9'.
type Bookmark struct {
	Center fractal.Point
	Zoom   float64
}
