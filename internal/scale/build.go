package scale

import (
	"time"

	"gonum.org/v1/gonum/floats"

	"vizterm/internal/data"
)

// DefaultTicks is the tick count target used when nicing.
const DefaultTicks = 10

// Frame is the drawable box in surface pixels.
type Frame struct {
	Width   float64
	Height  float64
	Padding float64
}

// PlotWidth is the horizontal extent between the paddings, never below one pixel.
func (f Frame) PlotWidth() float64 { return atLeastOne(f.Width - 2*f.Padding) }

// PlotHeight is the vertical extent between the paddings, never below one pixel.
func (f Frame) PlotHeight() float64 { return atLeastOne(f.Height - 2*f.Padding) }

func atLeastOne(v float64) float64 {
	if v < 1 {
		return 1
	}
	return v
}

// ScaleSet holds the two axis mappings for one layout pass.
type ScaleSet struct {
	Kind  data.Kind
	Frame Frame
	X     Scale
	Y     Scale
	// OffsetY translates Y values into surface coordinates.
	OffsetY float64
	// YearCount is the number of year slots on a heatmap.
	YearCount int
}

// Build computes both scales for ds inside frame. It has no side effects.
func Build(ds *data.Dataset, frame Frame) ScaleSet {
	if ds != nil && ds.Kind == data.KindHeatmap {
		return buildHeatmap(ds, frame)
	}
	return buildScatter(ds, frame)
}

// extent returns the min and max of vs, or (fallback, fallback) when empty.
func extent(vs []float64, fallback float64) (float64, float64) {
	if len(vs) == 0 {
		return fallback, fallback
	}
	return floats.Min(vs), floats.Max(vs)
}

var fallbackYear = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

func buildScatter(ds *data.Dataset, f Frame) ScaleSet {
	years := make([]float64, 0, ds.Len())
	clocks := make([]float64, 0, ds.Len())
	if ds != nil {
		for _, r := range ds.Records {
			years = append(years, float64(r.YearStart().Unix()))
			clocks = append(clocks, r.Time.Seconds())
		}
	}

	x0, x1 := extent(years, float64(fallbackYear.Unix()))
	if x0 == x1 {
		x1 = float64(unix(x0).AddDate(1, 0, 0).Unix())
	}
	xr1 := f.Width - f.Padding/2
	if xr1 < f.Padding+1 {
		xr1 = f.Padding + 1
	}
	x := New(AxisYear, x0, x1, f.Padding, xr1, secondsPerYear).Nice(DefaultTicks)

	y0, y1 := extent(clocks, 0)
	y := New(AxisClock, y0, y1, 0, f.PlotHeight(), 1).Nice(DefaultTicks)

	return ScaleSet{Kind: data.KindScatter, Frame: f, X: x, Y: y, OffsetY: f.Padding}
}

func buildHeatmap(ds *data.Dataset, f Frame) ScaleSet {
	minYear, maxYear, ok := ds.YearSpan()
	if !ok {
		minYear, maxYear = fallbackYear.Year(), fallbackYear.Year()
	}
	x := New(AxisYearSlot, float64(minYear), float64(maxYear+1), f.Padding, f.Padding+f.PlotWidth(), 1)
	y := New(AxisMonth, 0, 12, f.Padding, f.Padding+f.PlotHeight(), 1)
	return ScaleSet{
		Kind:      data.KindHeatmap,
		Frame:     f,
		X:         x,
		Y:         y,
		YearCount: maxYear - minYear + 1,
	}
}

// Tick is a labelled axis position in surface pixels.
type Tick struct {
	Pos   float64
	Label string
}

// XTicks positions the x-axis labels. Year slots are labelled at their
// centre.
func (ss ScaleSet) XTicks(count int) []Tick {
	var out []Tick
	for _, v := range ss.X.Ticks(count) {
		pos := ss.X.Map(v)
		if ss.X.Axis() == AxisYearSlot {
			pos = ss.X.Map(v + 0.5)
		}
		out = append(out, Tick{Pos: pos, Label: ss.X.FormatTick(v)})
	}
	return out
}

// YTicks positions the y-axis labels, month slots at their centre.
func (ss ScaleSet) YTicks(count int) []Tick {
	var out []Tick
	for _, v := range ss.Y.Ticks(count) {
		pos := ss.Y.Map(v) + ss.OffsetY
		if ss.Y.Axis() == AxisMonth {
			pos = ss.Y.Map(v+0.5) + ss.OffsetY
		}
		out = append(out, Tick{Pos: pos, Label: ss.Y.FormatTick(v)})
	}
	return out
}

// Axes returns where the axis lines sit: the x-axis baseline, the y-axis
// column and the right end of the x-axis.
func (ss ScaleSet) Axes() (baseY, leftX, rightX float64) {
	f := ss.Frame
	return f.Padding + f.PlotHeight(), f.Padding, f.Padding + f.PlotWidth()
}
