package fractal

// POI is a named landmark on the Mandelbrot boundary, used as an animation
// target while the view is still wide enough to reach it.
type POI struct {
	Name  string
	Point Point
}

// POIs are classic regions of the set.
var POIs = []POI{
	{"seahorse valley", Point{Real: -0.7436447860, Imag: 0.1318252536}},
	{"spiral", Point{Real: -0.16, Imag: 1.0405}},
	{"mini-brot", Point{Real: -1.25066, Imag: 0.02012}},
	{"seahorse", Point{Real: -0.748, Imag: 0.1}},
}
