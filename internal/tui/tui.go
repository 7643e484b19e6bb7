// Package tui drives the explorer with Bubble Tea: it translates key and
// mouse input into state-machine events, runs the animation tick chain,
// and writes full frames.
package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/fracviz/internal/explorer"
	"github.com/san-kum/fracviz/internal/export"
	"github.com/san-kum/fracviz/internal/fractal"
	"github.com/san-kum/fracviz/internal/render"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// shiftedDigits maps the shifted US-layout digit row to bookmark slots.
const shiftedDigits = "!@#$%^&*("

// Exporter is the collaborator that persists a rendered frame.
type Exporter interface {
	Export(content string, family fractal.Family, center fractal.Point, zoom float64) (string, error)
}

// tickMsg carries the generation of the tick chain that produced it;
// messages from superseded chains are dropped.
type tickMsg struct {
	gen int
}

// Model is the Bubble Tea model wrapping the state machine.
type Model struct {
	ex       *explorer.Explorer
	exporter Exporter

	width  int
	height int
	frame  *render.Frame
	notice string
	gen    int
	done   bool
}

// New builds the interactive model. With animate set, the session starts
// with an animation already running.
func New(animate bool, exporter Exporter) Model {
	m := Model{
		ex:       explorer.New(nil),
		exporter: exporter,
		width:    fallbackWidth,
		height:   fallbackHeight,
	}
	if animate {
		m.ex.Handle(explorer.Event{Kind: explorer.Animate}, m.width, m.height)
	}
	m.redraw()
	return m
}

func (m Model) Init() tea.Cmd {
	if m.ex.Anim.Active {
		return tick(m.gen, m.ex.Anim.Delay())
	}
	return nil
}

func tick(gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return tickMsg{gen} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 && msg.Height > 1 {
			m.width, m.height = msg.Width, msg.Height
		}
		m.redraw()
		return m, nil

	case tea.KeyMsg:
		if m.ex.View.ShowHelp {
			// Any key only dismisses the overlay.
			return m.apply(explorer.Event{Kind: explorer.ToggleHelp})
		}
		if msg.String() == "e" {
			m.doExport()
			m.redraw()
			return m, nil
		}
		ev, ok := keyToEvent(msg)
		if !ok {
			return m, nil
		}
		return m.apply(ev)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m.apply(explorer.Event{Kind: explorer.Click, Col: msg.X, Row: msg.Y})

	case tickMsg:
		if msg.gen != m.gen || !m.ex.Anim.Active {
			return m, nil
		}
		m.ex.Tick()
		m.redraw()
		return m, tick(m.gen, m.ex.Anim.Delay())
	}
	return m, nil
}

// apply runs one event through the state machine and obeys the resulting
// action. Bumping the generation abandons any in-flight tick chain.
func (m Model) apply(ev explorer.Event) (tea.Model, tea.Cmd) {
	// The notice is one-shot: it survives ticks but not the next input.
	m.notice = ""
	switch m.ex.Handle(ev, m.width, m.height) {
	case explorer.ActionStartTicker:
		m.gen++
		m.redraw()
		return m, tick(m.gen, m.ex.Anim.Delay())
	case explorer.ActionStopTicker:
		m.gen++
		m.redraw()
		return m, nil
	case explorer.ActionQuit:
		m.gen++
		m.done = true
		return m, tea.Quit
	default:
		m.redraw()
		return m, nil
	}
}

func (m *Model) redraw() {
	m.frame = render.Render(m.ex.View, m.width, m.height, render.StatusInfo{
		Animating: m.ex.Anim.Active,
		Speed:     m.ex.Anim.SpeedName(),
		Slots:     m.ex.Slots(),
		Notice:    m.notice,
	})
}

// doExport hands the current frame to the export collaborator and surfaces
// the outcome as a status notice; failures never end the session.
func (m *Model) doExport() {
	if m.exporter == nil {
		return
	}
	v := m.ex.View
	path, err := m.exporter.Export(m.frame.String(), v.Family, v.Center, v.Zoom)
	if err != nil {
		m.notice = "export failed: " + err.Error()
		return
	}
	m.notice = "exported " + path
}

func (m Model) View() string {
	if m.done || m.frame == nil {
		return ""
	}
	// Bubble Tea owns screen clearing; strip the raw-sink prefix.
	return strings.TrimPrefix(m.frame.String(), "\x1b[2J\x1b[H")
}

// keyToEvent translates a key press into a state-machine event.
func keyToEvent(msg tea.KeyMsg) (explorer.Event, bool) {
	s := msg.String()
	switch s {
	case "left", "h":
		return explorer.Event{Kind: explorer.PanLeft}, true
	case "right", "l":
		return explorer.Event{Kind: explorer.PanRight}, true
	case "up", "k":
		return explorer.Event{Kind: explorer.PanUp}, true
	case "down", "j":
		return explorer.Event{Kind: explorer.PanDown}, true
	case "+", "=":
		return explorer.Event{Kind: explorer.ZoomIn}, true
	case "-", "_":
		return explorer.Event{Kind: explorer.ZoomOut}, true
	case "f":
		return explorer.Event{Kind: explorer.ToggleFamily}, true
	case "p":
		return explorer.Event{Kind: explorer.CyclePalette}, true
	case "]":
		return explorer.Event{Kind: explorer.IterUp}, true
	case "[":
		return explorer.Event{Kind: explorer.IterDown}, true
	case "r":
		return explorer.Event{Kind: explorer.Reset}, true
	case "c":
		return explorer.Event{Kind: explorer.ToggleCrosshair}, true
	case "?":
		return explorer.Event{Kind: explorer.ToggleHelp}, true
	case "a":
		return explorer.Event{Kind: explorer.Animate}, true
	case "s":
		return explorer.Event{Kind: explorer.StopAnimation}, true
	case "q", "ctrl+c", "esc":
		return explorer.Event{Kind: explorer.Quit}, true
	}

	if len(s) == 1 {
		r := rune(s[0])
		if r >= '1' && r <= '9' {
			return explorer.Event{Kind: explorer.RecallBookmark, Slot: r}, true
		}
		if i := strings.IndexRune(shiftedDigits, r); i >= 0 {
			return explorer.Event{Kind: explorer.SaveBookmark, Slot: rune('1' + i)}, true
		}
	}

	return explorer.Event{}, false
}

// Run starts the interactive explorer and blocks until quit. Terminal
// setup and restore (alt screen, mouse reporting, cursor) are owned by
// Bubble Tea, including on interrupt.
func Run(animate bool) error {
	m := New(animate, export.NewWriter(""))
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
