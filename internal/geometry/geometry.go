// Package geometry binds dataset records to drawable shapes.
package geometry

import (
	"fmt"
	"math"

	"vizterm/internal/data"
	"vizterm/internal/scale"
)

// Shape is the primitive drawn for a record.
type Shape int

const (
	Circle Shape = iota
	Cell
)

// DotRadius is the scatter marker radius in surface pixels.
const DotRadius = 5.0

// Scatter colour classes.
const (
	ClassDot    = "dot"
	ClassDoping = "doping"
	ClassClean  = "clean"
	ClassCell   = "cell"
)

// Bucket is a heatmap colour band.
type Bucket int

const (
	Coolest Bucket = iota
	Cool
	Warm
	Warmest
)

func (b Bucket) String() string {
	switch b {
	case Coolest:
		return "coolest"
	case Cool:
		return "cool"
	case Warm:
		return "warm"
	default:
		return "warmest"
	}
}

// BucketOf classifies a variance: <= -1 coolest, (-1, 0] cool, (0, 1] warm,
// above 1 warmest.
func BucketOf(variance float64) Bucket {
	switch {
	case variance <= -1:
		return Coolest
	case variance <= 0:
		return Cool
	case variance <= 1:
		return Warm
	default:
		return Warmest
	}
}

// Element is the geometry for one record. X/Y is the circle centre or the
// cell's top-left corner.
type Element struct {
	Index int
	Key   string
	Shape Shape
	X, Y  float64
	R     float64
	W, H  float64
	// Class is the colour class, e.g. "dot doping" or "cell warm".
	Class  string
	Bucket Bucket
	// Attrs carries the data-* attributes written on the shape.
	Attrs []Attr
}

// Attr is one data-* attribute.
type Attr struct {
	Name  string
	Value string
}

// Bind maps every record of ds to an element, in dataset order.
func Bind(ds *data.Dataset, ss scale.ScaleSet) []Element {
	if ds.Len() == 0 {
		return nil
	}
	out := make([]Element, 0, ds.Len())
	if ds.Kind == data.KindHeatmap {
		w := ss.Frame.PlotWidth() / float64(max(1, ss.YearCount))
		h := ss.Frame.PlotHeight() / 12
		for i, r := range ds.Records {
			b := BucketOf(r.Variance)
			out = append(out, Element{
				Index:  i,
				Key:    r.Key(ds.Kind),
				Shape:  Cell,
				X:      ss.X.Map(float64(r.Year)),
				Y:      ss.Y.Map(float64(r.Month - 1)),
				W:      w,
				H:      h,
				Class:  ClassCell + " " + b.String(),
				Bucket: b,
				Attrs: []Attr{
					{Name: "data-year", Value: fmt.Sprintf("%d", r.Year)},
					{Name: "data-month", Value: fmt.Sprintf("%d", r.Month-1)},
					{Name: "data-temp", Value: fmt.Sprintf("%.1f", ds.Temperature(r))},
				},
			})
		}
		return out
	}
	for i, r := range ds.Records {
		class := ClassClean
		if r.HasDoping() {
			class = ClassDoping
		}
		out = append(out, Element{
			Index: i,
			Key:   r.Key(ds.Kind),
			Shape: Circle,
			X:     ss.X.MapTime(r.YearStart()),
			Y:     ss.Y.MapDuration(r.Time) + ss.OffsetY,
			R:     DotRadius,
			Class: ClassDot + " " + class,
			Attrs: []Attr{
				{Name: "data-xvalue", Value: r.YearStart().Format("2006-01-02")},
				{Name: "data-yvalue", Value: data.FormatClock(r.Time)},
			},
		})
	}
	return out
}

// Contains reports whether the surface point lies on the element; circles
// accept points within R+tolerance of the centre.
func (e Element) Contains(px, py, tolerance float64) bool {
	if e.Shape == Cell {
		return px >= e.X-tolerance && px < e.X+e.W+tolerance &&
			py >= e.Y-tolerance && py < e.Y+e.H+tolerance
	}
	return math.Hypot(px-e.X, py-e.Y) <= e.R+tolerance
}

// HitTest returns the element under (px, py). An element containing the
// point outright beats one only reached through the tolerance margin; among
// candidates the nearest centre wins.
func HitTest(elements []Element, px, py, tolerance float64) (int, bool) {
	if i, ok := nearest(elements, px, py, 0); ok {
		return i, true
	}
	return nearest(elements, px, py, tolerance)
}

func nearest(elements []Element, px, py, tolerance float64) (int, bool) {
	best, bestD := -1, math.Inf(1)
	for i, e := range elements {
		if !e.Contains(px, py, tolerance) {
			continue
		}
		cx, cy := e.Centre()
		if d := math.Hypot(px-cx, py-cy); d < bestD {
			best, bestD = i, d
		}
	}
	return best, best >= 0
}

// Centre returns the element's centre in surface pixels.
func (e Element) Centre() (float64, float64) {
	if e.Shape == Cell {
		return e.X + e.W/2, e.Y + e.H/2
	}
	return e.X, e.Y
}
