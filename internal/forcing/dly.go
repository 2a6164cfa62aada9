package forcing

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// .dly column layout: year, month, day, precipitation, evaporation,
// streamflow, max_temp, min_temp, tab separated, no header.
const dlyColumns = 8

// LoadDLY reads a tab-separated daily station file and returns a Series
// starting at day 0, with the observed streamflow attached.
func LoadDLY(path string) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = dlyColumns

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("forcing: reading %s: %w", path, err)
	}

	precip := make([]float64, 0, len(rows))
	evap := make([]float64, 0, len(rows))
	flow := make([]float64, 0, len(rows))

	for i, row := range rows {
		vals := make([]float64, dlyColumns)
		for j, field := range row {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("forcing: %s line %d column %d: %w", path, i+1, j+1, err)
			}
			vals[j] = v
		}
		precip = append(precip, vals[3])
		evap = append(evap, vals[4])
		flow = append(flow, vals[5])
	}

	s, err := NewSeries(0, precip, evap)
	if err != nil {
		return nil, err
	}
	return s.WithFlow(flow), nil
}
