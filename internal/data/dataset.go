package data

// Dataset is an ordered, immutable set of records of one Kind.
type Dataset struct {
	Kind            Kind
	Records         []Record
	BaseTemperature float64
	Source          string
}

// Len returns the record count; a nil dataset has none.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// Lookup finds the record with the given key.
func (d *Dataset) Lookup(key string) (Record, int, bool) {
	if d == nil || key == "" {
		return Record{}, -1, false
	}
	for i, r := range d.Records {
		if r.Key(d.Kind) == key {
			return r, i, true
		}
	}
	return Record{}, -1, false
}

// Temperature returns the absolute temperature of a heatmap record.
func (d *Dataset) Temperature(r Record) float64 {
	return d.BaseTemperature + r.Variance
}

// YearSpan returns the min and max Year; ok is false for an empty dataset.
func (d *Dataset) YearSpan() (minYear, maxYear int, ok bool) {
	if d.Len() == 0 {
		return 0, 0, false
	}
	minYear, maxYear = d.Records[0].Year, d.Records[0].Year
	for _, r := range d.Records[1:] {
		if r.Year < minYear {
			minYear = r.Year
		}
		if r.Year > maxYear {
			maxYear = r.Year
		}
	}
	return minYear, maxYear, true
}
