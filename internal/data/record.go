// Package data loads scatter and heatmap datasets and defines their records.
package data

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind distinguishes the two dataset shapes.
type Kind int

const (
	KindUnknown Kind = iota
	KindScatter
	KindHeatmap
)

func (k Kind) String() string {
	switch k {
	case KindScatter:
		return "scatter"
	case KindHeatmap:
		return "heatmap"
	default:
		return "unknown"
	}
}

// ParseKind maps a config variant name to a Kind; "auto" and "" give KindUnknown.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return KindUnknown, nil
	case "scatter":
		return KindScatter, nil
	case "heatmap":
		return KindHeatmap, nil
	}
	return KindUnknown, fmt.Errorf("unknown variant %q", s)
}

// Record is one dataset entry. Scatter records use Year, Time, Name,
// Nationality and Doping; heatmap records use Year, Month and Variance.
type Record struct {
	Year int

	Time        time.Duration
	Name        string
	Nationality string
	Doping      string

	Month    int
	Variance float64
}

// HasDoping reports whether a doping allegation is attached.
func (r Record) HasDoping() bool { return strings.TrimSpace(r.Doping) != "" }

// Key is a stable identity used to find the same record after a reload.
func (r Record) Key(kind Kind) string {
	if kind == KindHeatmap {
		return fmt.Sprintf("heatmap:%d-%02d", r.Year, r.Month)
	}
	return fmt.Sprintf("scatter:%d:%s:%s", r.Year, FormatClock(r.Time), r.Name)
}

// YearStart is midnight UTC on January 1 of the record's year.
func (r Record) YearStart() time.Time {
	return time.Date(r.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// ParseClock parses "M:SS" (minutes may exceed 59) into a duration.
func ParseClock(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	m, sec, ok := strings.Cut(s, ":")
	if !ok || m == "" || len(sec) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrBadTime, s)
	}
	mins, err := strconv.Atoi(m)
	if err != nil || mins < 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadTime, s)
	}
	secs, err := strconv.Atoi(sec)
	if err != nil || secs < 0 || secs > 59 {
		return 0, fmt.Errorf("%w: %q", ErrBadTime, s)
	}
	return time.Duration(mins)*time.Minute + time.Duration(secs)*time.Second, nil
}

// FormatClock renders a duration as M:SS.
func FormatClock(d time.Duration) string {
	neg := d < 0
	if neg {
		d = -d
	}
	total := int(d.Round(time.Second) / time.Second)
	out := fmt.Sprintf("%d:%02d", total/60, total%60)
	if neg {
		return "-" + out
	}
	return out
}
