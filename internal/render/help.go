package render

import "github.com/charmbracelet/lipgloss"

// helpLines pairs a key with its action for the overlay.
var helpLines = []struct {
	key, action string
}{
	{"arrows / hjkl", "pan"},
	{"+ / -", "zoom in / out"},
	{"click", "center on point"},
	{"f", "toggle mandelbrot / julia"},
	{"p", "cycle palette"},
	{"] / [", "iteration depth +/- 50"},
	{"r", "reset view"},
	{"c", "toggle crosshair"},
	{"a", "animate / cycle speed"},
	{"s", "stop animation"},
	{"1-9", "recall bookmark"},
	{"shift+1-9", "save bookmark"},
	{"e", "export frame as replay script"},
	{"?", "toggle this help"},
	{"q", "quit"},
}

// helpFrame is the fixed overlay shown instead of the fractal; no numeric
// work happens while it is up.
func helpFrame(width, height int) *Frame {
	rows := height - 1
	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, width)
		for j := range cells[i] {
			cells[i][j] = Cell{Glyph: ' ', Color: helpColor}
		}
	}

	top := (rows - len(helpLines) - 2) / 2
	if top < 0 {
		top = 0
	}
	left := (width - 40) / 2
	if left < 0 {
		left = 0
	}

	writeLine(cells, top, left, "fracviz", helpKeyColor)
	for i, h := range helpLines {
		row := top + 2 + i
		if row >= rows {
			break
		}
		writeLine(cells, row, left, h.key, helpKeyColor)
		writeLine(cells, row, left+16, h.action, helpColor)
	}

	return &Frame{
		Width:  width,
		Height: height,
		Cells:  cells,
		Status: " press any key to close help",
	}
}

func writeLine(cells [][]Cell, row, col int, s string, color lipgloss.Color) {
	if row < 0 || row >= len(cells) {
		return
	}
	for i, r := range s {
		c := col + i
		if c < 0 || c >= len(cells[row]) {
			return
		}
		cells[row][c] = Cell{Glyph: r, Color: color}
	}
}
