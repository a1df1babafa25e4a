package present

import (
	"fmt"
	"strconv"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"vizterm/internal/data"
)

const none = "-"

// Summary holds the formatted summary-bar statistics.
type Summary struct {
	Total string
	Max   string
	Min   string
	Mean  string
}

// Summarize computes count, extremes and mean of the value axis: finishing
// time for scatter datasets, variance for heatmaps.
func Summarize(ds *data.Dataset) Summary {
	s := Summary{Total: strconv.Itoa(ds.Len()), Max: none, Min: none, Mean: none}
	if ds.Len() == 0 {
		return s
	}
	vs := make([]float64, ds.Len())
	for i, r := range ds.Records {
		if ds.Kind == data.KindHeatmap {
			vs[i] = r.Variance
		} else {
			vs[i] = r.Time.Seconds()
		}
	}
	format := func(v float64) string {
		if ds.Kind == data.KindHeatmap {
			return fmt.Sprintf("%+.2f°C", v)
		}
		return data.FormatClock(time.Duration(v * float64(time.Second)).Round(time.Second))
	}
	s.Max = format(floats.Max(vs))
	s.Min = format(floats.Min(vs))
	s.Mean = format(stat.Mean(vs, nil))
	return s
}
