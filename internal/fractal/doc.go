// Package fractal implements the escape-time kernels for the explorer.
//
// The package provides pure per-point evaluation of the Mandelbrot and
// Julia iterations:
//
//   - [Escape]: fractional escape iteration with smooth coloring
//   - [EscapeCount]: plain integer escape count
//   - [POIs]: classic landmarks on the Mandelbrot boundary
//
// Both kernels are stateless; distinct coordinates may be evaluated
// concurrently without synchronization.
package fractal
