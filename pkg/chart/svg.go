package chart

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"golang.org/x/text/message"
)

const (
	colorArea   = "#15803d"
	colorGrid   = "#e5e7eb"
	colorLabel  = "#6b7280"
	fontStyle   = "font-size:11px;font-family:Inter,sans-serif"
	marginLeft  = 48
	marginRight = 12
	marginTop   = 10
	marginBot   = 24
)

// Options controls the drawn chart
type Options struct {
	Width   int
	Height  int
	XTicks  int
	YTicks  int
	Title   string
	Printer *message.Printer
}

// DefaultOptions returns the size used by the elevation tab
func DefaultOptions() Options {
	return Options{Width: 640, Height: 160, XTicks: 5, YTicks: 4, Printer: Printer("pt-BR")}
}

// RenderSVG draws the profile as an area chart, both axes spanning the
// data minimum to maximum.
func RenderSVG(w io.Writer, points []Point, opts Options) error {
	if len(points) < 2 {
		return fmt.Errorf("cannot draw %d points", len(points))
	}
	if opts.Width <= marginLeft+marginRight || opts.Height <= marginTop+marginBot {
		return fmt.Errorf("chart too small: %dx%d", opts.Width, opts.Height)
	}
	if opts.Printer == nil {
		opts.Printer = Printer("pt-BR")
	}

	stats := Summarize(points)
	xMin, xMax := points[0].DistanceKm, points[len(points)-1].DistanceKm
	yMin, yMax := stats.Min, stats.Max

	plotW := opts.Width - marginLeft - marginRight
	plotH := opts.Height - marginTop - marginBot
	sx := scale(xMin, xMax, marginLeft, marginLeft+plotW)
	sy := scale(yMin, yMax, marginTop+plotH, marginTop)

	canvas := svg.New(w)
	canvas.Start(opts.Width, opts.Height)
	if opts.Title != "" {
		canvas.Title(opts.Title)
	}

	for i := 0; i <= opts.YTicks && opts.YTicks > 0; i++ {
		v := yMin + (yMax-yMin)*float64(i)/float64(opts.YTicks)
		y := sy(v)
		canvas.Line(marginLeft, y, marginLeft+plotW, y, "stroke:"+colorGrid)
		canvas.Text(marginLeft-6, y+4, FormatM(opts.Printer, v), fontStyle+";text-anchor:end;fill:"+colorLabel)
	}
	for i := 0; i <= opts.XTicks && opts.XTicks > 0; i++ {
		v := xMin + (xMax-xMin)*float64(i)/float64(opts.XTicks)
		canvas.Text(sx(v), opts.Height-6, FormatKm(opts.Printer, v), fontStyle+";text-anchor:middle;fill:"+colorLabel)
	}

	xs := make([]int, 0, len(points)+2)
	ys := make([]int, 0, len(points)+2)
	for _, p := range points {
		xs = append(xs, sx(p.DistanceKm))
		ys = append(ys, sy(p.Elevation))
	}
	canvas.Polyline(xs, ys, "fill:none;stroke-width:2;stroke:"+colorArea)

	base := marginTop + plotH
	xs = append(xs, xs[len(xs)-1], xs[0])
	ys = append(ys, base, base)
	canvas.Polygon(xs, ys, "fill-opacity:0.25;fill:"+colorArea)

	canvas.End()
	return nil
}

// scale maps [lo, hi] onto integer pixels [from, to]; a flat domain maps to from
func scale(lo, hi float64, from, to int) func(float64) int {
	span := hi - lo
	return func(v float64) int {
		if span == 0 {
			return from
		}
		return from + int((v-lo)/span*float64(to-from)+0.5)
	}
}
