package explorer

// EventKind enumerates the discrete inputs the state machine understands.
type EventKind int

const (
	PanLeft EventKind = iota
	PanRight
	PanUp
	PanDown
	ZoomIn
	ZoomOut
	ToggleFamily
	CyclePalette
	IterUp
	IterDown
	Reset
	ToggleCrosshair
	ToggleHelp
	Click
	SaveBookmark
	RecallBookmark
	Animate
	StopAnimation
	Quit
)

// Event is one discrete input. Slot is set for bookmark events, Col/Row
// for clicks.
type Event struct {
	Kind EventKind
	Slot rune
	Col  int
	Row  int
}

// Action tells the driver what to do after a transition.
type Action int

const (
	// ActionRender: state changed (or not); redraw.
	ActionRender Action = iota
	// ActionStartTicker: animation started or changed speed; (re)start the
	// periodic tick source at the current Delay, cancelling any old one.
	ActionStartTicker
	// ActionStopTicker: cancel the tick source.
	ActionStopTicker
	// ActionQuit: terminate the session.
	ActionQuit
)
