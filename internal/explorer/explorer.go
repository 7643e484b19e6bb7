package explorer

import (
	"math"
	"math/rand"
	"time"

	"github.com/san-kum/fracviz/internal/fractal"
	"github.com/san-kum/fracviz/internal/view"
)

const (
	panStep  = 0.1
	zoomStep = 1.5
	iterStep = 50
)

// Explorer owns the session state. It is not safe for concurrent use; the
// driver must finish each Handle or Tick before starting the next.
type Explorer struct {
	View      view.Viewport
	Bookmarks map[rune]view.Bookmark
	Anim      AnimState

	rng *rand.Rand
}

// New builds an explorer at the default Mandelbrot view. A nil rng gets a
// time-seeded source; tests pass a fixed seed.
func New(rng *rand.Rand) *Explorer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Explorer{
		View:      view.New(),
		Bookmarks: make(map[rune]view.Bookmark),
		rng:       rng,
	}
}

// Handle applies one event at the given terminal size and reports what the
// driver should do next. While the help overlay is up, any event only
// dismisses it.
func (e *Explorer) Handle(ev Event, width, height int) Action {
	if e.View.ShowHelp {
		e.View.ShowHelp = false
		return ActionRender
	}

	switch ev.Kind {
	case PanLeft:
		e.pan(-1, 0)
	case PanRight:
		e.pan(1, 0)
	case PanUp:
		e.pan(0, 1)
	case PanDown:
		e.pan(0, -1)
	case ZoomIn:
		e.View.Zoom *= zoomStep
	case ZoomOut:
		e.View.Zoom = view.ClampZoom(e.View.Zoom / zoomStep)
	case ToggleFamily:
		if e.View.Family == fractal.Mandelbrot {
			e.View.Family = fractal.Julia
		} else {
			e.View.Family = fractal.Mandelbrot
		}
		e.View.Center = view.DefaultCenter(e.View.Family)
		e.View.Zoom = 1.0
	case CyclePalette:
		e.View.Palette = e.View.Palette.Next()
	case IterUp:
		e.View.MaxIter = view.ClampIter(e.View.MaxIter + iterStep)
	case IterDown:
		e.View.MaxIter = view.ClampIter(e.View.MaxIter - iterStep)
	case Reset:
		e.View.Reset()
	case ToggleCrosshair:
		e.View.ShowCrosshair = !e.View.ShowCrosshair
	case ToggleHelp:
		e.View.ShowHelp = true
	case Click:
		e.View.Center = e.View.PlaneAt(ev.Col, ev.Row, width, height)
	case SaveBookmark:
		if ev.Slot >= '1' && ev.Slot <= '9' {
			e.Bookmarks[ev.Slot] = view.Bookmark{Center: e.View.Center, Zoom: e.View.Zoom}
		}
	case RecallBookmark:
		if b, ok := e.Bookmarks[ev.Slot]; ok {
			e.View.Center = b.Center
			e.View.Zoom = b.Zoom
		}
	case Animate:
		if e.Anim.Active {
			e.Anim.Speed = (e.Anim.Speed + 1) % len(speeds)
		} else {
			e.Anim = AnimState{Active: true, Target: e.pickTarget()}
		}
		return ActionStartTicker
	case StopAnimation:
		if !e.Anim.Active {
			return ActionRender
		}
		e.Anim = AnimState{}
		return ActionStopTicker
	case Quit:
		e.Anim = AnimState{}
		return ActionQuit
	}
	return ActionRender
}

// pan moves the center one step; the step shrinks with zoom so visual pan
// speed stays roughly constant.
func (e *Explorer) pan(dx, dy float64) {
	e.View.Center.Real += dx * panStep / e.View.Zoom
	e.View.Center.Imag += dy * panStep / e.View.Zoom
}

// Slots lists the stored bookmark digits in unspecified order.
func (e *Explorer) Slots() []rune {
	slots := make([]rune, 0, len(e.Bookmarks))
	for slot := range e.Bookmarks {
		slots = append(slots, slot)
	}
	return slots
}

// Tick advances one animation step: ease toward the target, deepen the
// zoom, scale the iteration cap, and occasionally pick a fresh target.
// No-op when no animation is running.
func (e *Explorer) Tick() {
	if !e.Anim.Active {
		return
	}
	v := &e.View

	v.Center.Real += (e.Anim.Target.Real - v.Center.Real) * easeRate
	v.Center.Imag += (e.Anim.Target.Imag - v.Center.Imag) * easeRate

	v.Zoom *= zoomGrowth
	zoomCap := mandelZoomCap
	if v.Family == fractal.Julia {
		zoomCap = juliaZoomCap
	}
	if v.Zoom > zoomCap {
		v.Zoom = zoomCap
	}

	if v.Family == fractal.Julia {
		v.Center.Real = clamp(v.Center.Real, -2, 2)
		v.Center.Imag = clamp(v.Center.Imag, -1.5, 1.5)
	}

	v.MaxIter = min(view.MaxIter, view.DefaultIter+int(v.Zoom*10))

	if v.Family == fractal.Mandelbrot && v.Zoom > retargetZoom && e.rng.Float64() < retargetChance {
		e.Anim.Target = e.seekBoundary()
	}
}

// pickTarget chooses where a fresh animation heads: a random point near the
// origin for Julia, a fixed landmark while the Mandelbrot view is wide, a
// sampled boundary point once it is deep.
func (e *Explorer) pickTarget() fractal.Point {
	if e.View.Family == fractal.Julia {
		return fractal.Point{
			Real: (e.rng.Float64()*2 - 1) * juliaTargetSpread,
			Imag: (e.rng.Float64()*2 - 1) * juliaTargetSpread,
		}
	}
	if e.View.Zoom < poiZoomLimit {
		return fractal.POIs[e.rng.Intn(len(fractal.POIs))].Point
	}
	return e.seekBoundary()
}

// seekBoundary samples the visible rectangle for slow-escaping points near
// the set boundary and returns the best, with random jitter so repeated
// calls don't lock onto one cell. Falls back to the current center when
// nothing in view qualifies.
func (e *Explorer) seekBoundary() fractal.Point {
	r := e.View.VisibleRect()
	best := e.View.Center
	bestScore := math.Inf(-1)

	for i := 0; i < seekGrid; i++ {
		for j := 0; j < seekGrid; j++ {
			p := fractal.Point{
				Real: r.RealMin + float64(i)/(seekGrid-1)*(r.RealMax-r.RealMin),
				Imag: r.ImagMin + float64(j)/(seekGrid-1)*(r.ImagMax-r.ImagMin),
			}
			n := fractal.EscapeCount(fractal.Mandelbrot, p, fractal.Point{}, seekIter)
			if n <= seekMinIter || n >= seekIter {
				continue
			}
			score := float64(n) + e.rng.Float64()*seekJitter
			if score > bestScore {
				best, bestScore = p, score
			}
		}
	}

	return best
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
