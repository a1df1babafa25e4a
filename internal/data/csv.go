package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseCSV reads records from a CSV with a header row. Scatter files need
// year and time columns (name, nationality, doping optional); heatmap files
// need year, month and variance. Column names are case-insensitive.
func ParseCSV(r io.Reader, kind Kind, baseTemperature float64, source string) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, loadErr(source, "decode", err)
	}
	if len(recs) == 0 {
		return nil, loadErr(source, "decode", errors.New("empty csv"))
	}
	idx := map[string]int{}
	for i, h := range recs[0] {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, seen := idx[key]; !seen {
			idx[key] = i
		}
	}
	_, hasTime := idx["time"]
	_, hasVariance := idx["variance"]
	if kind == KindUnknown {
		switch {
		case hasVariance:
			kind = KindHeatmap
		case hasTime:
			kind = KindScatter
		default:
			return nil, loadErr(source, "schema", fmt.Errorf("%w: csv header %v", ErrUnknownShape, recs[0]))
		}
	}
	required := []string{"year", "time"}
	if kind == KindHeatmap {
		required = []string{"year", "month", "variance"}
	}
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return nil, loadErr(source, "schema", fmt.Errorf("csv: %s column not found", col))
		}
	}

	cell := func(row []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	ds := &Dataset{Kind: kind, Source: source, BaseTemperature: baseTemperature}
	for n, row := range recs[1:] {
		line := n + 2
		year, err := strconv.Atoi(cell(row, "year"))
		if err != nil {
			return nil, loadErr(source, "schema", fmt.Errorf("line %d: year: %w", line, err))
		}
		rec := Record{Year: year}
		if kind == KindScatter {
			rec.Time, err = ParseClock(cell(row, "time"))
			if err != nil {
				return nil, loadErr(source, "schema", fmt.Errorf("line %d: %w", line, err))
			}
			rec.Name = cell(row, "name")
			rec.Nationality = cell(row, "nationality")
			rec.Doping = cell(row, "doping")
		} else {
			rec.Month, err = strconv.Atoi(cell(row, "month"))
			if err != nil || rec.Month < 1 || rec.Month > 12 {
				return nil, loadErr(source, "schema", fmt.Errorf("line %d: %w", line, ErrBadMonth))
			}
			rec.Variance, err = strconv.ParseFloat(cell(row, "variance"), 64)
			if err != nil {
				return nil, loadErr(source, "schema", fmt.Errorf("line %d: variance: %w", line, err))
			}
		}
		ds.Records = append(ds.Records, rec)
	}
	return ds, nil
}
