package scale

import (
	"math"
	"sort"
	"time"
)

// interval is a calendar-aware tick unit. floor rounds down to a boundary,
// next advances one boundary.
type interval struct {
	approx time.Duration
	floor  func(time.Time) time.Time
	next   func(time.Time) time.Time
}

func fixed(d time.Duration) interval {
	return interval{
		approx: d,
		floor:  func(t time.Time) time.Time { return t.Truncate(d) },
		next:   func(t time.Time) time.Time { return t.Add(d) },
	}
}

func months(n int) interval {
	return interval{
		approx: time.Duration(n) * 30 * 24 * time.Hour,
		floor: func(t time.Time) time.Time {
			m := (int(t.Month()) - 1) / n * n
			return time.Date(t.Year(), time.Month(m+1), 1, 0, 0, 0, 0, time.UTC)
		},
		next: func(t time.Time) time.Time { return t.AddDate(0, n, 0) },
	}
}

func years(n int) interval {
	if n < 1 {
		n = 1
	}
	return interval{
		approx: time.Duration(n) * 365 * 24 * time.Hour,
		floor: func(t time.Time) time.Time {
			y := t.Year()
			y = int(math.Floor(float64(y)/float64(n))) * n
			return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
		},
		next: func(t time.Time) time.Time { return t.AddDate(n, 0, 0) },
	}
}

const day = 24 * time.Hour

// ladder is ordered by approximate duration.
var ladder = []interval{
	fixed(time.Second),
	fixed(5 * time.Second),
	fixed(15 * time.Second),
	fixed(30 * time.Second),
	fixed(time.Minute),
	fixed(5 * time.Minute),
	fixed(15 * time.Minute),
	fixed(30 * time.Minute),
	fixed(time.Hour),
	fixed(3 * time.Hour),
	fixed(6 * time.Hour),
	fixed(12 * time.Hour),
	fixed(day),
	fixed(2 * day),
	fixed(7 * day),
	months(1),
	months(3),
	years(1),
}

const secondsPerYear = 365 * 24 * 3600

// pickInterval chooses the unit whose tick count is closest to count.
func pickInterval(d0, d1 float64, count int) interval {
	if count < 1 {
		count = 1
	}
	target := time.Duration(math.Abs(d1-d0) / float64(count) * float64(time.Second))
	i := sort.Search(len(ladder), func(i int) bool { return ladder[i].approx > target })
	if i == len(ladder) {
		step := tickStep(d0/secondsPerYear, d1/secondsPerYear, count)
		return years(int(math.Max(1, math.Round(step))))
	}
	if i == 0 {
		return ladder[0]
	}
	lo, hi := ladder[i-1], ladder[i]
	if float64(target)/float64(lo.approx) < float64(hi.approx)/float64(target) {
		return lo
	}
	return hi
}

func unix(v float64) time.Time { return time.Unix(int64(math.Round(v)), 0).UTC() }

func niceTime(d0, d1 float64, count int) (float64, float64) {
	iv := pickInterval(d0, d1, count)
	lo := iv.floor(unix(d0))
	hiFloor := iv.floor(unix(d1))
	hi := hiFloor
	if float64(hiFloor.Unix()) < d1 {
		hi = iv.next(hiFloor)
	}
	return float64(lo.Unix()), float64(hi.Unix())
}

func timeTicks(d0, d1 float64, count int) []float64 {
	iv := pickInterval(d0, d1, count)
	t := iv.floor(unix(d0))
	if float64(t.Unix()) < d0 {
		t = iv.next(t)
	}
	var out []float64
	for guard := 0; float64(t.Unix()) <= d1 && guard < 1000; guard++ {
		out = append(out, float64(t.Unix()))
		t = iv.next(t)
	}
	return out
}
