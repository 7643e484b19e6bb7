package explorer_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fracviz/internal/explorer"
	"github.com/san-kum/fracviz/internal/fractal"
	"github.com/san-kum/fracviz/internal/view"
)

const (
	testW = 80
	testH = 24
)

func newExplorer() *explorer.Explorer {
	return explorer.New(rand.New(rand.NewSource(1)))
}

func handle(e *explorer.Explorer, kind explorer.EventKind) explorer.Action {
	return e.Handle(explorer.Event{Kind: kind}, testW, testH)
}

var _ = Describe("Explorer", func() {
	var e *explorer.Explorer

	BeforeEach(func() {
		e = newExplorer()
	})

	Describe("zooming", func() {
		It("multiplies and divides by 1.5", func() {
			handle(e, explorer.ZoomIn)
			Expect(e.View.Zoom).To(Equal(1.5))
			handle(e, explorer.ZoomOut)
			Expect(e.View.Zoom).To(Equal(1.0))
		})

		It("never drops below the floor", func() {
			for i := 0; i < 60; i++ {
				handle(e, explorer.ZoomOut)
			}
			Expect(e.View.Zoom).To(Equal(view.MinZoom))
		})
	})

	Describe("panning", func() {
		It("moves the center by 0.1/zoom", func() {
			handle(e, explorer.PanRight)
			Expect(e.View.Center.Real).To(BeNumerically("~", -0.65, 1e-12))
		})

		It("halves the step when zoom doubles", func() {
			e.View.Zoom = 2.0
			before := e.View.Center.Real
			handle(e, explorer.PanRight)
			Expect(e.View.Center.Real - before).To(BeNumerically("~", 0.05, 1e-12))
		})

		It("pans up toward positive imaginary", func() {
			handle(e, explorer.PanUp)
			Expect(e.View.Center.Imag).To(BeNumerically(">", 0))
		})
	})

	Describe("iteration depth", func() {
		It("steps by 50 within [50, 1000]", func() {
			handle(e, explorer.IterUp)
			Expect(e.View.MaxIter).To(Equal(150))

			for i := 0; i < 40; i++ {
				handle(e, explorer.IterDown)
			}
			Expect(e.View.MaxIter).To(Equal(view.MinIter))

			for i := 0; i < 40; i++ {
				handle(e, explorer.IterUp)
			}
			Expect(e.View.MaxIter).To(Equal(view.MaxIter))
		})
	})

	Describe("family toggle", func() {
		It("resets to the family's home view and back", func() {
			e.View.Zoom = 7.5
			handle(e, explorer.ToggleFamily)
			Expect(e.View.Family).To(Equal(fractal.Julia))
			Expect(e.View.Center).To(Equal(fractal.Point{}))
			Expect(e.View.Zoom).To(Equal(1.0))

			handle(e, explorer.ToggleFamily)
			Expect(e.View.Family).To(Equal(fractal.Mandelbrot))
			Expect(e.View.Center).To(Equal(fractal.Point{Real: -0.75}))
		})

		It("leaves the iteration cap alone", func() {
			e.View.MaxIter = 650
			handle(e, explorer.ToggleFamily)
			Expect(e.View.MaxIter).To(Equal(650))
		})
	})

	Describe("clicking", func() {
		It("recenters on the exact plane point under the cursor", func() {
			want := e.View.PlaneAt(13, 5, testW, testH)
			e.Handle(explorer.Event{Kind: explorer.Click, Col: 13, Row: 5}, testW, testH)
			Expect(e.View.Center).To(Equal(want))
		})
	})

	Describe("bookmarks", func() {
		It("restores center and zoom bit-identically", func() {
			e.View.Center = fractal.Point{Real: -1.25066, Imag: 0.02012}
			e.View.Zoom = 42.0
			e.Handle(explorer.Event{Kind: explorer.SaveBookmark, Slot: '3'}, testW, testH)

			handle(e, explorer.CyclePalette)
			handle(e, explorer.IterUp)
			handle(e, explorer.PanLeft)
			handle(e, explorer.ZoomOut)

			e.Handle(explorer.Event{Kind: explorer.RecallBookmark, Slot: '3'}, testW, testH)
			Expect(e.View.Center).To(Equal(fractal.Point{Real: -1.25066, Imag: 0.02012}))
			Expect(e.View.Zoom).To(Equal(42.0))
		})

		It("ignores recall of an empty slot", func() {
			before := e.View
			e.Handle(explorer.Event{Kind: explorer.RecallBookmark, Slot: '8'}, testW, testH)
			Expect(e.View).To(Equal(before))
		})

		It("overwrites a reused slot", func() {
			e.Handle(explorer.Event{Kind: explorer.SaveBookmark, Slot: '1'}, testW, testH)
			e.View.Zoom = 9.0
			e.Handle(explorer.Event{Kind: explorer.SaveBookmark, Slot: '1'}, testW, testH)
			Expect(e.Bookmarks['1'].Zoom).To(Equal(9.0))
		})
	})

	Describe("help overlay", func() {
		It("swallows the next event entirely", func() {
			handle(e, explorer.ToggleHelp)
			Expect(e.View.ShowHelp).To(BeTrue())

			before := e.View.Center
			handle(e, explorer.PanLeft)
			Expect(e.View.ShowHelp).To(BeFalse())
			Expect(e.View.Center).To(Equal(before))

			// The following event acts normally again.
			handle(e, explorer.PanLeft)
			Expect(e.View.Center).NotTo(Equal(before))
		})
	})

	Describe("animation", func() {
		It("starts with a landmark target at wide zoom", func() {
			act := handle(e, explorer.Animate)
			Expect(act).To(Equal(explorer.ActionStartTicker))
			Expect(e.Anim.Active).To(BeTrue())

			found := false
			for _, poi := range fractal.POIs {
				if poi.Point == e.Anim.Target {
					found = true
				}
			}
			Expect(found).To(BeTrue(), "target should be one of the fixed landmarks")
		})

		It("cycles speed presets without retargeting", func() {
			handle(e, explorer.Animate)
			target := e.Anim.Target

			for i := 1; i <= len(explorer.Speeds()); i++ {
				act := handle(e, explorer.Animate)
				Expect(act).To(Equal(explorer.ActionStartTicker))
				Expect(e.Anim.Speed).To(Equal(i % len(explorer.Speeds())))
				Expect(e.Anim.Target).To(Equal(target))
			}
		})

		It("stops on the explicit stop event", func() {
			handle(e, explorer.Animate)
			Expect(handle(e, explorer.StopAnimation)).To(Equal(explorer.ActionStopTicker))
			Expect(e.Anim.Active).To(BeFalse())

			// Stopping an idle session is a plain redraw.
			Expect(handle(e, explorer.StopAnimation)).To(Equal(explorer.ActionRender))
		})

		It("orders the speed presets fastest-last", func() {
			s := explorer.Speeds()
			Expect(s).To(HaveLen(7))
			Expect(s[0].Name).To(Equal("very slow"))
			Expect(s[len(s)-1].Name).To(Equal("very fast"))
			for i := 1; i < len(s); i++ {
				Expect(s[i].Delay).To(BeNumerically("<", s[i-1].Delay))
			}
		})
	})

	Describe("animation ticks", func() {
		BeforeEach(func() {
			handle(e, explorer.Animate)
		})

		It("monotonically deepens zoom and approaches the target", func() {
			dist := func() float64 {
				dx := e.Anim.Target.Real - e.View.Center.Real
				dy := e.Anim.Target.Imag - e.View.Center.Imag
				return math.Hypot(dx, dy)
			}

			prevZoom, prevDist := e.View.Zoom, dist()
			for i := 0; i < 25; i++ {
				e.Tick()
				Expect(e.View.Zoom).To(BeNumerically(">", prevZoom))
				Expect(dist()).To(BeNumerically("<", prevDist))
				prevZoom, prevDist = e.View.Zoom, dist()
			}
		})

		It("scales the iteration cap with zoom", func() {
			e.Tick()
			want := 100 + int(e.View.Zoom*10)
			Expect(e.View.MaxIter).To(Equal(want))

			e.View.Zoom = 5000
			e.Tick()
			Expect(e.View.MaxIter).To(Equal(view.MaxIter))
		})

		It("caps mandelbrot zoom at 10000", func() {
			e.View.Zoom = 9990
			for i := 0; i < 10; i++ {
				e.Tick()
			}
			Expect(e.View.Zoom).To(Equal(10000.0))
		})

		It("does nothing when idle", func() {
			handle(e, explorer.StopAnimation)
			before := e.View
			e.Tick()
			Expect(e.View).To(Equal(before))
		})
	})

	Describe("julia animation", func() {
		BeforeEach(func() {
			handle(e, explorer.ToggleFamily)
			handle(e, explorer.Animate)
		})

		It("targets a random point near the origin", func() {
			Expect(math.Abs(e.Anim.Target.Real)).To(BeNumerically("<=", 0.25))
			Expect(math.Abs(e.Anim.Target.Imag)).To(BeNumerically("<=", 0.25))
		})

		It("caps zoom at 50 and keeps the center in frame", func() {
			e.View.Zoom = 49.9
			for i := 0; i < 20; i++ {
				e.Tick()
				Expect(e.View.Center.Real).To(BeNumerically(">=", -2))
				Expect(e.View.Center.Real).To(BeNumerically("<=", 2))
				Expect(e.View.Center.Imag).To(BeNumerically(">=", -1.5))
				Expect(e.View.Center.Imag).To(BeNumerically("<=", 1.5))
			}
			Expect(e.View.Zoom).To(Equal(50.0))
		})
	})

	Describe("deep-zoom targeting", func() {
		It("starts from the boundary heuristic past the landmark range", func() {
			e.View.Zoom = 6.0
			handle(e, explorer.Animate)

			r := e.View.VisibleRect()
			t := e.Anim.Target
			inRect := t.Real >= r.RealMin && t.Real <= r.RealMax &&
				t.Imag >= r.ImagMin && t.Imag <= r.ImagMax
			Expect(inRect || t == e.View.Center).To(BeTrue())
		})
	})

	Describe("mid-animation retargeting", func() {
		It("eventually picks a fresh boundary target past zoom 10", func() {
			e.View.Center = fractal.Point{Real: -0.7436, Imag: 0.1318}
			e.View.Zoom = 12.0
			handle(e, explorer.Animate)
			initial := e.Anim.Target

			changed := false
			for i := 0; i < 1000 && !changed; i++ {
				e.Tick()
				changed = e.Anim.Target != initial
			}
			Expect(changed).To(BeTrue(), "the 2%% per-tick reseek should fire well within 1000 ticks")
		})

		It("keeps the target fixed while zoom stays at or below 10", func() {
			e.View.Zoom = 2.0
			handle(e, explorer.Animate)
			initial := e.Anim.Target

			// 150 ticks of 1.01 growth from zoom 2 stays under the
			// threshold, so no tick may reseek.
			for i := 0; i < 150; i++ {
				e.Tick()
				Expect(e.Anim.Target).To(Equal(initial))
			}
			Expect(e.View.Zoom).To(BeNumerically("<=", 10))
		})

		It("never retargets a julia animation", func() {
			handle(e, explorer.ToggleFamily)
			handle(e, explorer.Animate)
			e.View.Zoom = 45.0
			initial := e.Anim.Target

			for i := 0; i < 400; i++ {
				e.Tick()
			}
			Expect(e.Anim.Target).To(Equal(initial))
		})
	})

	Describe("quitting", func() {
		It("cancels the animation and signals termination", func() {
			handle(e, explorer.Animate)
			Expect(handle(e, explorer.Quit)).To(Equal(explorer.ActionQuit))
			Expect(e.Anim.Active).To(BeFalse())
		})
	})
})
