package tui

import (
	"fmt"
	"strconv"

	table "github.com/charmbracelet/bubbles/table"

	"vizterm/internal/data"
	"vizterm/internal/present"
)

// refreshRecords rebuilds the records table from the current dataset.
func (m *Model) refreshRecords() {
	ds := m.chart.Dataset()
	if ds.Len() == 0 {
		m.showRecords = false
		m.status = "no records loaded"
		return
	}
	var cols []table.Column
	rows := make([]table.Row, 0, ds.Len())
	switch ds.Kind {
	case data.KindHeatmap:
		cols = []table.Column{
			{Title: "#", Width: 5},
			{Title: "Year", Width: 6},
			{Title: "Month", Width: 10},
			{Title: "Temp °C", Width: 8},
			{Title: "Variance", Width: 9},
		}
		for i, r := range ds.Records {
			rows = append(rows, table.Row{
				strconv.Itoa(i + 1),
				strconv.Itoa(r.Year),
				present.MonthName(r.Month),
				fmt.Sprintf("%.1f", ds.Temperature(r)),
				fmt.Sprintf("%+.1f", r.Variance),
			})
		}
	default:
		cols = []table.Column{
			{Title: "#", Width: 4},
			{Title: "Year", Width: 6},
			{Title: "Time", Width: 6},
			{Title: "Name", Width: 20},
			{Title: "Nat", Width: 4},
			{Title: "Doping", Width: 24},
		}
		for i, r := range ds.Records {
			rows = append(rows, table.Row{
				strconv.Itoa(i + 1),
				strconv.Itoa(r.Year),
				data.FormatClock(r.Time),
				r.Name,
				r.Nationality,
				r.Doping,
			})
		}
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
	if ref := m.chart.Selection().Pinned; ref != nil {
		if _, i, ok := ds.Lookup(ref.Key); ok {
			m.tbl.SetCursor(i)
		}
	}
}
