package explorer

import (
	"time"

	"github.com/san-kum/fracviz/internal/fractal"
)

// Speed is one animation tick-rate preset.
type Speed struct {
	Name  string
	Delay time.Duration
}

// speeds runs from "very slow" to "very fast"; the animate event cycles
// through them.
var speeds = []Speed{
	{"very slow", 400 * time.Millisecond},
	{"slow", 250 * time.Millisecond},
	{"relaxed", 150 * time.Millisecond},
	{"normal", 100 * time.Millisecond},
	{"brisk", 60 * time.Millisecond},
	{"fast", 40 * time.Millisecond},
	{"very fast", 25 * time.Millisecond},
}

// Speeds returns the preset table, slowest first.
func Speeds() []Speed {
	return append([]Speed(nil), speeds...)
}

// AnimState exists while an animated zoom is running.
type AnimState struct {
	Active bool
	Target fractal.Point
	Speed  int
}

// Delay is the tick period for the current speed preset.
func (a AnimState) Delay() time.Duration {
	return speeds[a.Speed].Delay
}

// SpeedName is the display name of the current speed preset.
func (a AnimState) SpeedName() string {
	return speeds[a.Speed].Name
}

const (
	// easeRate moves the center 5% of the remaining distance to the
	// target per tick: an exponential approach that never quite arrives.
	easeRate = 0.05

	// zoomGrowth compounds per tick.
	zoomGrowth = 1.01

	// Zoom caps per family. Julia is capped low because extreme zoom
	// leaves the visually interesting region for the fixed parameter.
	juliaZoomCap  = 50.0
	mandelZoomCap = 10000.0

	// Past retargetZoom, each Mandelbrot tick re-runs the boundary seek
	// with probability retargetChance (about once every 50 ticks).
	retargetZoom   = 10.0
	retargetChance = 0.02

	// poiZoomLimit: below this zoom an animation starts toward one of the
	// fixed landmarks instead of a sampled boundary point.
	poiZoomLimit = 5.0

	// juliaTargetSpread bounds the random Julia target on each axis.
	juliaTargetSpread = 0.25

	// Boundary-seek sampling: a seekGrid x seekGrid grid evaluated at a
	// fixed cap, keeping samples that escaped slowly.
	seekGrid    = 20
	seekIter    = 200
	seekMinIter = 50
	seekJitter  = 10.0
)
