// Package palette maps escape values to terminal colors and density glyphs.
package palette

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Scheme is a named coloring of escape values.
type Scheme int

const (
	Rainbow Scheme = iota
	Fire
	Ice
	Grayscale
	Green
)

// Count is the number of schemes, for cycling.
const Count = 5

func (s Scheme) String() string {
	switch s {
	case Fire:
		return "fire"
	case Ice:
		return "ice"
	case Grayscale:
		return "grayscale"
	case Green:
		return "green"
	default:
		return "rainbow"
	}
}

// Next returns the following scheme, wrapping around.
func (s Scheme) Next() Scheme {
	return (s + 1) % Count
}

// Parse maps a CLI name to a Scheme.
func Parse(name string) (Scheme, error) {
	for s := Scheme(0); s < Count; s++ {
		if s.String() == name {
			return s, nil
		}
	}
	return Rainbow, fmt.Errorf("unknown palette: %s", name)
}

// Names lists all scheme names in cycling order.
func Names() []string {
	names := make([]string, Count)
	for s := Scheme(0); s < Count; s++ {
		names[s] = s.String()
	}
	return names
}

// Inside is the color of points that never escaped.
const Inside = lipgloss.Color("#000000")

// ramp orders glyphs from sparsest to densest.
var ramp = []rune(" .:-=+*#%@")

// ColorFor maps an escape value to a 24-bit color. A value exactly equal to
// the iteration cap is the inside-set sentinel and always maps to Inside;
// everything else is a continuous function of the value.
func ColorFor(value float64, maxIter int, s Scheme) lipgloss.Color {
	if value == float64(maxIter) {
		return Inside
	}

	if s == Grayscale {
		g := int(40 + value/float64(maxIter)*200)
		if g < 0 {
			g = 0
		}
		if g > 255 {
			g = 255
		}
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", g, g, g))
	}

	var hue, sat float64
	light := 0.4 + 0.2*math.Sin(value*0.1)
	switch s {
	case Fire:
		hue, sat = 60-math.Mod(value*2, 60), 1.0
	case Ice:
		hue, sat = 180+math.Mod(value*3, 60), 0.9
	case Green:
		hue, sat = 90+math.Mod(value*3, 60), 0.9
	default:
		hue, sat = math.Mod(value*7, 360), 0.8
	}
	return lipgloss.Color(colorful.Hsl(hue, sat, light).Hex())
}

// GlyphFor maps an escape value to a density glyph. The inside-set sentinel
// always yields the blank glyph.
func GlyphFor(value float64, maxIter int) rune {
	if value == float64(maxIter) {
		return ramp[0]
	}
	idx := int(value / float64(maxIter) * 9)
	if idx < 0 {
		idx = 0
	}
	if idx >= len(ramp) {
		idx = len(ramp) - 1
	}
	return ramp[idx]
}
