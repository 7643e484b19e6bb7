package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/fracviz/internal/explorer"
	"github.com/san-kum/fracviz/internal/fractal"
	"github.com/san-kum/fracviz/internal/palette"
	"github.com/san-kum/fracviz/internal/render"
	"github.com/san-kum/fracviz/internal/tui"
	"github.com/san-kum/fracviz/internal/view"
)

var (
	animation bool
	// Shared view flags for the one-shot commands.
	width       int
	height      int
	centerReal  float64
	centerImag  float64
	zoom        float64
	iterations  int
	familyName  string
	paletteName string
	juliaReal   float64
	juliaImag   float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fracviz",
		Short: "interactive terminal fractal explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(animation)
		},
	}
	rootCmd.Flags().BoolVarP(&animation, "animation", "a", false, "start with animation running")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render one frame to stdout",
		RunE:  renderFrame,
	}
	addViewFlags(renderCmd)

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "plot the escape profile across the view's center row",
		RunE:  analyzeView,
	}
	addViewFlags(analyzeCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list points of interest, palettes, and animation speeds",
		RunE:  listPresets,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "time full-frame renders across sizes and iteration caps",
		RunE:  benchRender,
	}

	rootCmd.AddCommand(renderCmd, analyzeCmd, presetsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addViewFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", 80, "grid width in cells")
	cmd.Flags().IntVar(&height, "height", 24, "grid height in rows (one reserved for status)")
	cmd.Flags().Float64Var(&centerReal, "real", -0.75, "center real part")
	cmd.Flags().Float64Var(&centerImag, "imag", 0.0, "center imaginary part")
	cmd.Flags().Float64Var(&zoom, "zoom", 1.0, "zoom factor")
	cmd.Flags().IntVar(&iterations, "iter", 100, "iteration cap")
	cmd.Flags().StringVar(&familyName, "family", "mandelbrot", "fractal family (mandelbrot|julia)")
	cmd.Flags().StringVar(&paletteName, "palette", "rainbow", "color palette")
	cmd.Flags().Float64Var(&juliaReal, "julia-real", fractal.DefaultJuliaParam.Real, "julia parameter real part")
	cmd.Flags().Float64Var(&juliaImag, "julia-imag", fractal.DefaultJuliaParam.Imag, "julia parameter imaginary part")
}

func buildViewport() (view.Viewport, error) {
	if width < 1 || height < 2 {
		return view.Viewport{}, fmt.Errorf("grid must be at least 1x2 (one row is the status line), got %dx%d", width, height)
	}
	family, err := fractal.ParseFamily(familyName)
	if err != nil {
		return view.Viewport{}, err
	}
	scheme, err := palette.Parse(paletteName)
	if err != nil {
		return view.Viewport{}, err
	}
	return view.Viewport{
		Center:     fractal.Point{Real: centerReal, Imag: centerImag},
		Zoom:       view.ClampZoom(zoom),
		MaxIter:    view.ClampIter(iterations),
		Family:     family,
		JuliaParam: fractal.Point{Real: juliaReal, Imag: juliaImag},
		Palette:    scheme,
	}, nil
}

func renderFrame(cmd *cobra.Command, args []string) error {
	v, err := buildViewport()
	if err != nil {
		return err
	}
	frame := render.Render(v, width, height, render.StatusInfo{})
	fmt.Println(frame.String())
	return nil
}

func analyzeView(cmd *cobra.Command, args []string) error {
	v, err := buildViewport()
	if err != nil {
		return err
	}

	row := (height - 1) / 2
	values := make([]float64, width)
	for col := 0; col < width; col++ {
		p := v.PlaneAt(col, row, width, height)
		values[col] = fractal.Escape(v.Family, p, v.JuliaParam, v.MaxIter)
	}

	fmt.Printf("escape profile: %s center (%.4f, %.4f) zoom %.2f\n\n",
		v.Family, v.Center.Real, v.Center.Imag, v.Zoom)
	fmt.Println(asciigraph.Plot(values,
		asciigraph.Height(12),
		asciigraph.Width(width),
		asciigraph.Caption("escape value across center row"),
	))
	fmt.Println()

	// Bucket escaped cells by escape fraction; inside-set cells count
	// separately.
	buckets := make([]int, 10)
	inside := 0
	for _, val := range values {
		if val == float64(v.MaxIter) {
			inside++
			continue
		}
		idx := int(val / float64(v.MaxIter) * 10)
		if idx > 9 {
			idx = 9
		}
		buckets[idx]++
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BUCKET\tCELLS")
	for i, n := range buckets {
		fmt.Fprintf(w, "%d0-%d0%%\t%d\n", i, i+1, n)
	}
	fmt.Fprintf(w, "inside\t%d\n", inside)
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "POINT OF INTEREST\tREAL\tIMAG")
	for _, poi := range fractal.POIs {
		fmt.Fprintf(w, "%s\t%.10f\t%.10f\n", poi.Name, poi.Point.Real, poi.Point.Imag)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "PALETTE")
	for _, name := range palette.Names() {
		fmt.Fprintf(w, "%s\n", name)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "SPEED\tTICK")
	for _, s := range explorer.Speeds() {
		fmt.Fprintf(w, "%s\t%v\n", s.Name, s.Delay)
	}
	return w.Flush()
}

func benchRender(cmd *cobra.Command, args []string) error {
	sizes := []struct{ w, h int }{{80, 24}, {120, 40}, {200, 60}}
	caps := []int{100, 250, 500, 1000}

	v := view.New()
	v.Zoom = 50
	v.Center = fractal.Point{Real: -0.7436, Imag: 0.1318}

	fmt.Println("benchmarking frame renders")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tITER\tTIME\tCELLS/SEC")

	for _, sz := range sizes {
		for _, iterCap := range caps {
			v.MaxIter = iterCap
			start := time.Now()
			render.Render(v, sz.w, sz.h, render.StatusInfo{})
			elapsed := time.Since(start)

			cells := sz.w * (sz.h - 1)
			fmt.Fprintf(w, "%dx%d\t%d\t%v\t%.0f\n",
				sz.w, sz.h, iterCap, elapsed, float64(cells)/elapsed.Seconds())
		}
	}
	return w.Flush()
}
