// Package render turns a viewport and terminal size into a full frame of
// colored glyphs plus a status line. Frames are always recomputed whole;
// there is no partial update.
package render

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/fracviz/internal/fractal"
	"github.com/san-kum/fracviz/internal/palette"
	"github.com/san-kum/fracviz/internal/view"
)

var (
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236"))
	crosshairColor = lipgloss.Color("#ffff00")
	helpColor      = lipgloss.Color("#cccccc")
	helpKeyColor   = lipgloss.Color("#00ffff")
)

// Cell is one colored glyph of the grid.
type Cell struct {
	Glyph rune
	Color lipgloss.Color
}

// Frame is a fully rendered screen: width x (height-1) cells plus one
// status line.
type Frame struct {
	Width  int
	Height int
	Cells  [][]Cell
	Status string
}

// StatusInfo carries session facts the renderer cannot derive from the
// viewport alone.
type StatusInfo struct {
	Animating bool
	Speed     string // speed preset name, shown while animating
	Slots     []rune // stored bookmark slots
	Notice    string // one-shot message, e.g. an export result
}

// Render computes the frame for a viewport at the given terminal size.
// Identical inputs always produce identical frames. When the help overlay
// is up the fractal is not evaluated at all. Degenerate sizes are clamped
// to the one-cell grid plus status line.
func Render(v view.Viewport, width, height int, info StatusInfo) *Frame {
	if width < 1 {
		width = 1
	}
	if height < 2 {
		height = 2
	}
	if v.ShowHelp {
		return helpFrame(width, height)
	}

	rows := height - 1
	cells := make([][]Cell, rows)

	// Cells are independent, so rows fan out to goroutines and the frame
	// is only returned once every row has landed.
	var wg sync.WaitGroup
	for row := 0; row < rows; row++ {
		wg.Add(1)
		go func(row int) {
			defer wg.Done()
			line := make([]Cell, width)
			for col := 0; col < width; col++ {
				p := v.PlaneAt(col, row, width, height)
				val := fractal.Escape(v.Family, p, v.JuliaParam, v.MaxIter)
				line[col] = Cell{
					Glyph: palette.GlyphFor(val, v.MaxIter),
					Color: palette.ColorFor(val, v.MaxIter, v.Palette),
				}
			}
			cells[row] = line
		}(row)
	}
	wg.Wait()

	if v.ShowCrosshair {
		overlayCrosshair(cells, width, rows)
	}

	return &Frame{
		Width:  width,
		Height: height,
		Cells:  cells,
		Status: statusLine(v, info),
	}
}

// overlayCrosshair marks the grid center and a 5x5 cross around it, taking
// precedence over the fractal cells it covers.
func overlayCrosshair(cells [][]Cell, width, rows int) {
	cc, cr := width/2, rows/2
	set := func(col, row int, glyph rune) {
		if col < 0 || col >= width || row < 0 || row >= rows {
			return
		}
		cells[row][col] = Cell{Glyph: glyph, Color: crosshairColor}
	}
	for d := -2; d <= 2; d++ {
		set(cc+d, cr, '─')
		set(cc, cr+d, '│')
	}
	set(cc, cr, '┼')
}

func statusLine(v view.Viewport, info StatusInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, " %s  center (%.4f, %.4f)  zoom %.2f  iter %d  %s",
		v.Family, v.Center.Real, v.Center.Imag, v.Zoom, v.MaxIter, v.Palette)

	if info.Animating {
		fmt.Fprintf(&b, "  anim:%s", info.Speed)
	}
	if len(info.Slots) > 0 {
		slots := append([]rune(nil), info.Slots...)
		sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })
		fmt.Fprintf(&b, "  marks:%s", string(slots))
	}
	if info.Notice != "" {
		fmt.Fprintf(&b, "  %s", info.Notice)
	}
	return b.String()
}

// String renders the frame as one write: clear, cursor home, grid, status.
// Runs of same-colored cells share one style invocation.
func (f *Frame) String() string {
	var b strings.Builder
	b.WriteString("\x1b[2J\x1b[H")

	for _, row := range f.Cells {
		i := 0
		for i < len(row) {
			j := i
			for j < len(row) && row[j].Color == row[i].Color {
				j++
			}
			run := make([]rune, 0, j-i)
			for _, c := range row[i:j] {
				run = append(run, c.Glyph)
			}
			b.WriteString(lipgloss.NewStyle().Foreground(row[i].Color).Render(string(run)))
			i = j
		}
		b.WriteByte('\n')
	}

	b.WriteString(statusStyle.Render(f.Status))
	return b.String()
}
