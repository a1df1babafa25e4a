package data

import (
	"bytes"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

type scatterEntry struct {
	Year        int    `json:"Year"`
	Time        string `json:"Time"`
	Name        string `json:"Name"`
	Nationality string `json:"Nationality"`
	Doping      string `json:"Doping"`
}

type heatmapDoc struct {
	BaseTemperature *float64       `json:"baseTemperature"`
	MonthlyVariance []heatmapEntry `json:"monthlyVariance"`
}

type heatmapEntry struct {
	Year     int     `json:"year"`
	Month    int     `json:"month"`
	Variance float64 `json:"variance"`
}

// DetectKind guesses the dataset shape from the first JSON token.
func DetectKind(body []byte) Kind {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 {
		return KindUnknown
	}
	switch trimmed[0] {
	case '[':
		return KindScatter
	case '{':
		return KindHeatmap
	}
	return KindUnknown
}

// Parse reads a JSON document of the given kind. KindUnknown auto-detects.
func Parse(r io.Reader, kind Kind, source string) (*Dataset, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, loadErr(source, "read", err)
	}
	return ParseBytes(body, kind, source)
}

// ParseBytes is Parse over an in-memory document.
func ParseBytes(body []byte, kind Kind, source string) (*Dataset, error) {
	detected := DetectKind(body)
	if detected == KindUnknown {
		return nil, loadErr(source, "decode", ErrUnknownShape)
	}
	if kind == KindUnknown {
		kind = detected
	}
	if kind != detected {
		return nil, loadErr(source, "schema", fmt.Errorf("%w: want %s, document looks like %s", ErrUnknownShape, kind, detected))
	}

	switch kind {
	case KindScatter:
		var entries []scatterEntry
		if err := json.Unmarshal(body, &entries); err != nil {
			return nil, loadErr(source, "decode", err)
		}
		ds := &Dataset{Kind: KindScatter, Source: source, Records: make([]Record, 0, len(entries))}
		for i, e := range entries {
			d, err := ParseClock(e.Time)
			if err != nil {
				return nil, loadErr(source, "schema", fmt.Errorf("record %d: %w", i, err))
			}
			ds.Records = append(ds.Records, Record{
				Year:        e.Year,
				Time:        d,
				Name:        e.Name,
				Nationality: e.Nationality,
				Doping:      e.Doping,
			})
		}
		return ds, nil
	default:
		var doc heatmapDoc
		if err := json.Unmarshal(body, &doc); err != nil {
			return nil, loadErr(source, "decode", err)
		}
		if doc.BaseTemperature == nil {
			return nil, loadErr(source, "schema", fmt.Errorf("%w: missing baseTemperature", ErrUnknownShape))
		}
		ds := &Dataset{
			Kind:            KindHeatmap,
			Source:          source,
			BaseTemperature: *doc.BaseTemperature,
			Records:         make([]Record, 0, len(doc.MonthlyVariance)),
		}
		for i, e := range doc.MonthlyVariance {
			if e.Month < 1 || e.Month > 12 {
				return nil, loadErr(source, "schema", fmt.Errorf("record %d: %w: %d", i, ErrBadMonth, e.Month))
			}
			ds.Records = append(ds.Records, Record{Year: e.Year, Month: e.Month, Variance: e.Variance})
		}
		return ds, nil
	}
}
