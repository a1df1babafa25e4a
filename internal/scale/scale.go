// Package scale maps dataset domains onto surface pixels.
//
// A Scale is a value: it is rebuilt on every layout pass and never mutated
// afterwards. Construction widens degenerate domains and ranges so Map never
// divides by zero.
package scale

import (
	"fmt"
	"math"
	"time"
)

// Axis selects how domain values are niced, ticked and labelled.
type Axis int

const (
	// AxisLinear is a plain numeric axis.
	AxisLinear Axis = iota
	// AxisYear holds Unix seconds of calendar dates.
	AxisYear
	// AxisClock holds elapsed seconds, labelled M:SS.
	AxisClock
	// AxisMonth holds zero-based month slots 0..12.
	AxisMonth
	// AxisYearSlot holds integer years, one slot per year.
	AxisYearSlot
)

// Scale is a monotonic linear mapping from a domain to a pixel range.
type Scale struct {
	axis   Axis
	d0, d1 float64
	r0, r1 float64
}

// New builds a scale over [d0, d1] -> [r0, r1]. A zero-width domain is
// widened by minSpan (1 when minSpan <= 0) and a range narrower than one
// pixel is widened to one pixel.
func New(axis Axis, d0, d1, r0, r1, minSpan float64) Scale {
	if minSpan <= 0 {
		minSpan = 1
	}
	if !finite(d0) || !finite(d1) {
		d0, d1 = 0, minSpan
	}
	if d1 < d0 {
		d0, d1 = d1, d0
	}
	if d1-d0 == 0 {
		d1 = d0 + minSpan
	}
	if !finite(r0) || !finite(r1) {
		r0, r1 = 0, 1
	}
	if math.Abs(r1-r0) < 1 {
		r1 = r0 + 1
	}
	return Scale{axis: axis, d0: d0, d1: d1, r0: r0, r1: r1}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Axis returns the scale's axis kind.
func (s Scale) Axis() Axis { return s.axis }

// Domain returns the (possibly niced) domain.
func (s Scale) Domain() (float64, float64) { return s.d0, s.d1 }

// Range returns the pixel range.
func (s Scale) Range() (float64, float64) { return s.r0, s.r1 }

// Map projects a domain value into the range. Values outside the domain
// extrapolate linearly.
func (s Scale) Map(v float64) float64 {
	t := (v - s.d0) / (s.d1 - s.d0)
	return s.r0 + t*(s.r1-s.r0)
}

// Invert maps a pixel back into the domain.
func (s Scale) Invert(px float64) float64 {
	t := (px - s.r0) / (s.r1 - s.r0)
	return s.d0 + t*(s.d1-s.d0)
}

// MapTime projects a calendar date on an AxisYear scale.
func (s Scale) MapTime(t time.Time) float64 { return s.Map(float64(t.Unix())) }

// MapDuration projects an elapsed time on an AxisClock scale.
func (s Scale) MapDuration(d time.Duration) float64 { return s.Map(d.Seconds()) }

// Nice extends the domain to round boundaries suited to about count ticks.
func (s Scale) Nice(count int) Scale {
	switch s.axis {
	case AxisYear, AxisClock:
		s.d0, s.d1 = niceTime(s.d0, s.d1, count)
	case AxisMonth, AxisYearSlot:
		// slots must tile exactly
	default:
		s.d0, s.d1 = niceLinear(s.d0, s.d1, count)
	}
	return s
}

// Ticks returns about count tick values inside the domain.
func (s Scale) Ticks(count int) []float64 {
	switch s.axis {
	case AxisYear, AxisClock:
		return timeTicks(s.d0, s.d1, count)
	case AxisMonth:
		out := make([]float64, 0, 12)
		for m := 0; m < 12; m++ {
			out = append(out, float64(m))
		}
		return out
	case AxisYearSlot:
		ticks := linearTicks(s.d0, s.d1-1, count)
		out := ticks[:0]
		for _, v := range ticks {
			if v == math.Trunc(v) {
				out = append(out, v)
			}
		}
		return out
	default:
		return linearTicks(s.d0, s.d1, count)
	}
}

var shortMonths = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// FormatTick labels a tick value for this axis.
func (s Scale) FormatTick(v float64) string {
	switch s.axis {
	case AxisYear:
		t := time.Unix(int64(math.Round(v)), 0).UTC()
		if t.Month() == time.January && t.Day() == 1 && t.Hour() == 0 {
			return t.Format("2006")
		}
		return t.Format("Jan 2006")
	case AxisClock:
		secs := int(math.Round(v))
		sign := ""
		if secs < 0 {
			sign, secs = "-", -secs
		}
		return fmt.Sprintf("%s%d:%02d", sign, secs/60, secs%60)
	case AxisMonth:
		i := int(v)
		if i >= 0 && i < len(shortMonths) {
			return shortMonths[i]
		}
		return ""
	case AxisYearSlot:
		return fmt.Sprintf("%d", int(math.Floor(v)))
	default:
		return fmt.Sprintf("%g", v)
	}
}

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// tickIncrement returns a 1/2/5 x 10^k step, negative values meaning the
// reciprocal, so fractional steps stay exact.
func tickIncrement(start, stop float64, count int) float64 {
	if count < 1 {
		count = 1
	}
	step := (stop - start) / float64(count)
	power := math.Floor(math.Log10(step))
	errv := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case errv >= e10:
		factor = 10
	case errv >= e5:
		factor = 5
	case errv >= e2:
		factor = 2
	}
	if power >= 0 {
		return factor * math.Pow(10, power)
	}
	return -math.Pow(10, -power) / factor
}

// tickStep is the signed-free step size for [start, stop].
func tickStep(start, stop float64, count int) float64 {
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	inc := tickIncrement(start, stop, count)
	if inc < 0 {
		inc = 1 / -inc
	}
	if reverse {
		return -inc
	}
	return inc
}

func niceLinear(start, stop float64, count int) (float64, float64) {
	prestep := math.NaN()
	for i := 0; i < 10; i++ {
		step := tickIncrement(start, stop, count)
		if step == prestep || step == 0 || !finite(step) {
			break
		}
		if step > 0 {
			start = math.Floor(start/step) * step
			stop = math.Ceil(stop/step) * step
		} else {
			start = math.Ceil(start*step) / step
			stop = math.Floor(stop*step) / step
		}
		prestep = step
	}
	return start, stop
}

func linearTicks(start, stop float64, count int) []float64 {
	if stop < start || count <= 0 {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	inc := tickIncrement(start, stop, count)
	if inc == 0 || !finite(inc) {
		return nil
	}
	var out []float64
	if inc < 0 {
		inv := -inc
		i1, i2 := math.Round(start*inv), math.Round(stop*inv)
		if i1/inv < start {
			i1++
		}
		if i2/inv > stop {
			i2--
		}
		for i := i1; i <= i2; i++ {
			out = append(out, i/inv)
		}
		return out
	}
	i1, i2 := math.Round(start/inc), math.Round(stop/inc)
	if i1*inc < start {
		i1++
	}
	if i2*inc > stop {
		i2--
	}
	for i := i1; i <= i2; i++ {
		out = append(out, i*inc)
	}
	return out
}
