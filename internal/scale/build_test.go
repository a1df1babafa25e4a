package scale

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"vizterm/internal/data"
)

var frame = Frame{Width: 800, Height: 600, Padding: 50}

func scatter(recs ...data.Record) *data.Dataset {
	return &data.Dataset{Kind: data.KindScatter, Records: recs}
}

func clock(m, s int) time.Duration { return time.Duration(m)*time.Minute + time.Duration(s)*time.Second }

func TestBuild_Scatter(t *testing.T) {
	ds := scatter(
		data.Record{Year: 1994, Time: clock(36, 15)},
		data.Record{Year: 1998, Time: clock(35, 12)},
	)
	ss := Build(ds, frame)
	assert.Equal(t, data.KindScatter, ss.Kind)
	assert.Equal(t, 50.0, ss.OffsetY)

	assert.Equal(t, 50.0, ss.X.MapTime(ds.Records[0].YearStart()))
	assert.Equal(t, 775.0, ss.X.MapTime(ds.Records[1].YearStart()))

	r0, r1 := ss.Y.Range()
	assert.Equal(t, 0.0, r0)
	assert.Equal(t, 500.0, r1)
	// slower times sit lower on the chart
	assert.Greater(t, ss.Y.MapDuration(clock(36, 15)), ss.Y.MapDuration(clock(35, 12)))
}

func TestBuild_Heatmap(t *testing.T) {
	ds := &data.Dataset{Kind: data.KindHeatmap, BaseTemperature: 8, Records: []data.Record{
		{Year: 1900, Month: 1}, {Year: 1909, Month: 12},
	}}
	ss := Build(ds, frame)
	assert.Equal(t, 10, ss.YearCount)
	assert.Equal(t, 50.0, ss.X.Map(1900))
	assert.Equal(t, 750.0, ss.X.Map(1910))
	assert.Equal(t, 50.0, ss.Y.Map(0))
	assert.Equal(t, 550.0, ss.Y.Map(12))
	d0, d1 := ss.Y.Domain()
	assert.Equal(t, 0.0, d0)
	assert.Equal(t, 12.0, d1)
}

func TestBuild_Degenerate(t *testing.T) {
	cases := map[string]*data.Dataset{
		"nil":              nil,
		"empty scatter":    scatter(),
		"single scatter":   scatter(data.Record{Year: 2000, Time: clock(37, 0)}),
		"empty heatmap":    {Kind: data.KindHeatmap},
		"single heatmap":   {Kind: data.KindHeatmap, Records: []data.Record{{Year: 1900, Month: 3}}},
		"same year scatter": scatter(data.Record{Year: 2000, Time: clock(37, 0)}, data.Record{Year: 2000, Time: clock(37, 0)}),
	}
	frames := []Frame{frame, {Width: 0, Height: 0, Padding: 50}, {Width: 3, Height: 2, Padding: 0}}
	for name, ds := range cases {
		for _, f := range frames {
			ss := Build(ds, f)
			for _, s := range []Scale{ss.X, ss.Y} {
				d0, d1 := s.Domain()
				r0, r1 := s.Range()
				assert.Less(t, d0, d1, name)
				assert.GreaterOrEqual(t, math.Abs(r1-r0), 1.0, name)
				assert.False(t, math.IsNaN(s.Map(d0)), name)
				assert.False(t, math.IsInf(s.Map(d1), 0), name)
			}
		}
	}
}

func TestBuild_Pure(t *testing.T) {
	ds := scatter(data.Record{Year: 1994, Time: clock(36, 15)}, data.Record{Year: 2010, Time: clock(39, 1)})
	assert.Equal(t, Build(ds, frame), Build(ds, frame))
}

func TestBuild_CoversEveryRecord(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 40).Draw(t, "n")
		recs := make([]data.Record, n)
		for i := range recs {
			recs[i] = data.Record{
				Year: rapid.IntRange(1900, 2030).Draw(t, "year"),
				Time: time.Duration(rapid.IntRange(0, 7200).Draw(t, "secs")) * time.Second,
			}
		}
		f := Frame{
			Width:   float64(rapid.IntRange(0, 2000).Draw(t, "w")),
			Height:  float64(rapid.IntRange(0, 2000).Draw(t, "h")),
			Padding: float64(rapid.IntRange(0, 60).Draw(t, "pad")),
		}
		ss := Build(scatter(recs...), f)
		xr0, xr1 := ss.X.Range()
		yr0, yr1 := ss.Y.Range()
		const eps = 1e-6
		for _, r := range recs {
			x := ss.X.MapTime(r.YearStart())
			y := ss.Y.MapDuration(r.Time)
			if x < xr0-eps || x > xr1+eps {
				t.Fatalf("x %v outside [%v, %v]", x, xr0, xr1)
			}
			if y < yr0-eps || y > yr1+eps {
				t.Fatalf("y %v outside [%v, %v]", y, yr0, yr1)
			}
		}
	})
}

func TestBuild_HeatmapCoversEveryRecord(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 60).Draw(t, "n")
		recs := make([]data.Record, n)
		for i := range recs {
			recs[i] = data.Record{
				Year:     rapid.IntRange(1750, 2020).Draw(t, "year"),
				Month:    rapid.IntRange(1, 12).Draw(t, "month"),
				Variance: rapid.Float64Range(-7, 7).Draw(t, "variance"),
			}
		}
		ds := &data.Dataset{Kind: data.KindHeatmap, Records: recs}
		ss := Build(ds, frame)
		xr0, xr1 := ss.X.Range()
		yr0, yr1 := ss.Y.Range()
		for _, r := range recs {
			x, y := ss.X.Map(float64(r.Year)), ss.Y.Map(float64(r.Month-1))
			if x < xr0 || x >= xr1 || y < yr0 || y >= yr1 {
				t.Fatalf("record %+v mapped outside plot: (%v, %v)", r, x, y)
			}
		}
	})
}

func TestScaleSet_HeatmapTicks(t *testing.T) {
	ds := &data.Dataset{Kind: data.KindHeatmap, Records: []data.Record{
		{Year: 1900, Month: 1}, {Year: 1901, Month: 12},
	}}
	ss := Build(ds, frame)

	ys := ss.YTicks(DefaultTicks)
	assert.Len(t, ys, 12)
	assert.Equal(t, "Jan", ys[0].Label)
	assert.InDelta(t, 50+500.0/24, ys[0].Pos, 1e-9)

	xs := ss.XTicks(DefaultTicks)
	assert.NotEmpty(t, xs)
	assert.Equal(t, "1900", xs[0].Label)
	assert.InDelta(t, 50+700.0/4, xs[0].Pos, 1e-9)

	baseY, leftX, rightX := ss.Axes()
	assert.Equal(t, 550.0, baseY)
	assert.Equal(t, 50.0, leftX)
	assert.Equal(t, 750.0, rightX)
}
