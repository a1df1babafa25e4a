// Package present turns records into the text blocks shown by the tooltip,
// the detail panel and the summary bar.
package present

import (
	"fmt"
	"time"

	"vizterm/internal/data"
)

const (
	DetailPlaceholder  = "Click a point to block details"
	TooltipPlaceholder = "Hover a point to view details"
)

// Context carries the dataset-level values a record needs to be described.
type Context struct {
	Kind            data.Kind
	BaseTemperature float64
}

// ContextOf returns the presentation context of ds.
func ContextOf(ds *data.Dataset) Context {
	if ds == nil {
		return Context{}
	}
	return Context{Kind: ds.Kind, BaseTemperature: ds.BaseTemperature}
}

// Block is a rendered panel body.
type Block struct {
	Lines   []string
	Visible bool
}

// Panel receives blocks whenever the selection changes.
type Panel interface {
	Set(Block)
}

// PanelFunc adapts a function to Panel.
type PanelFunc func(Block)

func (f PanelFunc) Set(b Block) { f(b) }

// Tooltip describes the hovered record. A nil record hides the tooltip.
func Tooltip(rec *data.Record, ctx Context) Block {
	if rec == nil {
		return Block{Lines: []string{TooltipPlaceholder}}
	}
	return Block{Lines: Describe(*rec, ctx), Visible: true}
}

// Detail describes the pinned record. A nil record yields the placeholder,
// which stays visible.
func Detail(rec *data.Record, ctx Context) Block {
	if rec == nil {
		return Block{Lines: []string{DetailPlaceholder}, Visible: true}
	}
	return Block{Lines: Describe(*rec, ctx), Visible: true}
}

// Describe formats a record's fields for ctx.Kind.
func Describe(rec data.Record, ctx Context) []string {
	switch ctx.Kind {
	case data.KindHeatmap:
		return []string{
			fmt.Sprintf("Year: %d", rec.Year),
			"Month: " + MonthName(rec.Month),
			fmt.Sprintf("Temperature: %.1f°C", ctx.BaseTemperature+rec.Variance),
			fmt.Sprintf("Variance: %+.1f°C", rec.Variance),
		}
	default:
		lines := []string{
			fmt.Sprintf("Name: %s, %s", rec.Name, rec.Nationality),
			fmt.Sprintf("Year: %d  Time: %s", rec.Year, data.FormatClock(rec.Time)),
		}
		if rec.HasDoping() {
			lines = append(lines, "Doping: "+rec.Doping)
		}
		return lines
	}
}

// MonthName maps a 1-based month to its English name.
func MonthName(m int) string {
	if m < 1 || m > 12 {
		return fmt.Sprintf("Month %d", m)
	}
	return time.Month(m).String()
}
