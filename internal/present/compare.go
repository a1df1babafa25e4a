package present

import (
	"fmt"

	"vizterm/internal/data"
)

// Compare describes the hovered record relative to the pinned one. It
// returns nil unless both are present and distinct.
func Compare(pinned, hovered *data.Record, ctx Context) []string {
	if pinned == nil || hovered == nil || pinned.Key(ctx.Kind) == hovered.Key(ctx.Kind) {
		return nil
	}
	lines := []string{"Elapsed: " + Elapsed(monthIndex(*pinned, ctx), monthIndex(*hovered, ctx))}
	switch ctx.Kind {
	case data.KindHeatmap:
		lines = append(lines, fmt.Sprintf("Temperature delta: %+.1f°C", hovered.Variance-pinned.Variance))
	default:
		d := hovered.Time - pinned.Time
		sign := "+"
		if d < 0 {
			sign, d = "-", -d
		}
		lines = append(lines, "Time delta: "+sign+data.FormatClock(d))
	}
	return lines
}

// Elapsed formats the absolute distance between two month indices.
func Elapsed(a, b int) string {
	n := b - a
	if n < 0 {
		n = -n
	}
	return fmt.Sprintf("%d years and %d months", n/12, n%12)
}

func monthIndex(r data.Record, ctx Context) int {
	m := 0
	if ctx.Kind == data.KindHeatmap && r.Month >= 1 {
		m = r.Month - 1
	}
	return r.Year*12 + m
}
