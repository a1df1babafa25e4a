package scale

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScale_MapInvert(t *testing.T) {
	s := New(AxisLinear, 0, 10, 100, 200, 1)
	assert.Equal(t, 100.0, s.Map(0))
	assert.Equal(t, 200.0, s.Map(10))
	assert.Equal(t, 150.0, s.Map(5))
	assert.InDelta(t, 7.5, s.Invert(175), 1e-9)
}

func TestScale_DegenerateDomainIsWidened(t *testing.T) {
	s := New(AxisLinear, 5, 5, 0, 100, 1)
	d0, d1 := s.Domain()
	assert.Equal(t, 5.0, d0)
	assert.Equal(t, 6.0, d1)
	assert.False(t, math.IsNaN(s.Map(5)))
	assert.False(t, math.IsInf(s.Map(5), 0))
}

func TestScale_DegenerateRangeIsWidened(t *testing.T) {
	s := New(AxisLinear, 0, 1, 40, 40, 1)
	r0, r1 := s.Range()
	assert.Equal(t, 40.0, r0)
	assert.Equal(t, 41.0, r1)
}

func TestScale_NonFiniteInputs(t *testing.T) {
	s := New(AxisLinear, math.NaN(), math.Inf(1), math.NaN(), 10, 2)
	d0, d1 := s.Domain()
	assert.Equal(t, 0.0, d0)
	assert.Equal(t, 2.0, d1)
	r0, r1 := s.Range()
	assert.Equal(t, 0.0, r0)
	assert.Equal(t, 1.0, r1)
}

func TestScale_ReversedDomainIsOrdered(t *testing.T) {
	s := New(AxisLinear, 10, 0, 0, 100, 1)
	d0, d1 := s.Domain()
	assert.Equal(t, 0.0, d0)
	assert.Equal(t, 10.0, d1)
}

func TestNiceLinear(t *testing.T) {
	s := New(AxisLinear, 0.3, 9.7, 0, 100, 1).Nice(10)
	d0, d1 := s.Domain()
	assert.Equal(t, 0.0, d0)
	assert.Equal(t, 10.0, d1)

	s = New(AxisLinear, 0.123, 0.871, 0, 100, 1).Nice(10)
	d0, d1 = s.Domain()
	assert.InDelta(t, 0.1, d0, 1e-12)
	assert.InDelta(t, 0.9, d1, 1e-12)
}

func TestLinearTicks(t *testing.T) {
	assert.Equal(t, []float64{0, 2, 4, 6, 8, 10}, linearTicks(0, 10, 5))
	assert.Equal(t, []float64{0, 0.5, 1}, linearTicks(0, 1, 2))
	assert.Nil(t, linearTicks(10, 0, 5))
}

func TestNiceTime_Clock(t *testing.T) {
	s := New(AxisClock, 2112, 2175, 0, 400, 1).Nice(10)
	d0, d1 := s.Domain()
	assert.Equal(t, 2110.0, d0)
	assert.Equal(t, 2175.0, d1)

	ticks := s.Ticks(10)
	require.NotEmpty(t, ticks)
	assert.Equal(t, 2110.0, ticks[0])
	assert.Equal(t, "35:10", s.FormatTick(ticks[0]))
}

func TestNiceTime_Years(t *testing.T) {
	y := func(year int) float64 {
		return float64(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).Unix())
	}
	s := New(AxisYear, y(1994), y(2015), 0, 800, secondsPerYear).Nice(10)
	d0, d1 := s.Domain()
	assert.Equal(t, y(1994), d0)
	assert.Equal(t, y(2016), d1)

	ticks := s.Ticks(10)
	require.NotEmpty(t, ticks)
	assert.Equal(t, "1994", s.FormatTick(ticks[0]))
	for _, tick := range ticks {
		assert.GreaterOrEqual(t, tick, d0)
		assert.LessOrEqual(t, tick, d1)
	}
}

func TestFormatTick(t *testing.T) {
	assert.Equal(t, "Jan", New(AxisMonth, 0, 12, 0, 1, 1).FormatTick(0))
	assert.Equal(t, "Dec", New(AxisMonth, 0, 12, 0, 1, 1).FormatTick(11))
	assert.Equal(t, "1900", New(AxisYearSlot, 1900, 1901, 0, 1, 1).FormatTick(1900))
	assert.Equal(t, "-0:05", New(AxisClock, 0, 1, 0, 1, 1).FormatTick(-5))
}

func TestTicks_MonthAndYearSlots(t *testing.T) {
	assert.Len(t, New(AxisMonth, 0, 12, 0, 1, 1).Ticks(10), 12)
	ticks := New(AxisYearSlot, 1753, 2016, 0, 1, 1).Ticks(10)
	require.NotEmpty(t, ticks)
	for _, v := range ticks {
		assert.Equal(t, math.Trunc(v), v)
		assert.Less(t, v, 2016.0)
	}
}
