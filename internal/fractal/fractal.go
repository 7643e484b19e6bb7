package fractal

import (
	"fmt"
	"math"
)

// Family selects which escape-time iteration the kernel runs.
type Family int

const (
	Mandelbrot Family = iota
	Julia
)

func (f Family) String() string {
	if f == Julia {
		return "julia"
	}
	return "mandelbrot"
}

// ParseFamily maps a CLI name to a Family.
func ParseFamily(name string) (Family, error) {
	switch name {
	case "mandelbrot", "m":
		return Mandelbrot, nil
	case "julia", "j":
		return Julia, nil
	}
	return Mandelbrot, fmt.Errorf("unknown fractal family: %s", name)
}

// Point is a coordinate in the complex plane.
type Point struct {
	Real float64
	Imag float64
}

// DefaultJuliaParam is the c of the Julia iteration.
var DefaultJuliaParam = Point{Real: -0.7, Imag: 0.27015}

const (
	// Bailout is the squared-magnitude threshold beyond which an orbit
	// has escaped.
	Bailout = 4.0

	// smoothFloor guards the continuous estimate against degenerate
	// logarithms when an orbit escapes exactly at the threshold.
	smoothFloor = 1e-12
)

// Escape returns the fractional escape iteration for p. Mandelbrot iterates
// z = z*z + p from z = 0; Julia iterates z = z*z + juliaParam from z = p.
//
// A point that never escapes within maxIter returns exactly
// float64(maxIter), the inside-set sentinel. Escaped points return a
// continuous value near the integer escape count, so adjacent cells shade
// smoothly instead of banding.
func Escape(family Family, p, juliaParam Point, maxIter int) float64 {
	var zr, zi, cr, ci float64
	if family == Julia {
		zr, zi = p.Real, p.Imag
		cr, ci = juliaParam.Real, juliaParam.Imag
	} else {
		cr, ci = p.Real, p.Imag
	}

	for n := 0; n < maxIter; n++ {
		m := zr*zr + zi*zi
		if m >= Bailout {
			return smooth(n, m)
		}
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
	}
	return float64(maxIter)
}

// EscapeCount is Escape without the fractional refinement: the integer
// iteration at which the orbit escaped, or maxIter if it never did.
func EscapeCount(family Family, p, juliaParam Point, maxIter int) int {
	var zr, zi, cr, ci float64
	if family == Julia {
		zr, zi = p.Real, p.Imag
		cr, ci = juliaParam.Real, juliaParam.Imag
	} else {
		cr, ci = p.Real, p.Imag
	}

	for n := 0; n < maxIter; n++ {
		if zr*zr+zi*zi >= Bailout {
			return n
		}
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
	}
	return maxIter
}

// smooth refines the integer escape count n with the final squared
// magnitude m. Falls back to plain n whenever the refinement would not be
// finite.
func smooth(n int, m float64) float64 {
	if m <= smoothFloor {
		return float64(n)
	}
	v := float64(n) + 1 - math.Log2(math.Log(m)/2/math.Ln2)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return float64(n)
	}
	if v < 0 {
		return 0
	}
	return v
}
