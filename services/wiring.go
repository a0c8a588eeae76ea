package services

import "strings"

// maxWiringRows caps the growable wiring table.
const maxWiringRows = 18

// WiringRow is one cable-size costing entry. Fields are kept as the raw
// text the user typed: a blank qty means the row is unused, and anything
// non-numeric coerces to 0 when totalled.
type WiringRow struct {
	Size string `json:"size"`
	Rate string `json:"rate"`
	Qty  string `json:"qty"`
}

// WiringResult is the output of RecomputeWiring. Rows echoes the input,
// possibly grown by one blank row.
type WiringResult struct {
	Rows       []WiringRow `json:"rows"`
	Totals     []float64   `json:"totals"`
	GrandTotal float64     `json:"grand_total"`
}

// DefaultWiringRows seeds the eight standard (size, rate) pairs.
func DefaultWiringRows() []WiringRow {
	return []WiringRow{
		{Size: "15", Rate: "150"},
		{Size: "25", Rate: "250"},
		{Size: "35", Rate: "370"},
		{Size: "50", Rate: "510"},
		{Size: "70", Rate: "710"},
		{Size: "95", Rate: "950"},
		{Size: "120", Rate: "1250"},
		{Size: "150", Rate: "1600"},
	}
}

// RecomputeWiring totals rate × qty per row and across the table. Blank
// and unparseable fields contribute 0. If the last row's qty is non-empty
// one blank row is appended, up to the cap; the growth check runs once per
// call, never recursively.
func RecomputeWiring(rows []WiringRow) WiringResult {
	result := WiringResult{
		Rows:   make([]WiringRow, len(rows)),
		Totals: make([]float64, len(rows)),
	}
	copy(result.Rows, rows)

	for i, row := range rows {
		total := Round2(CoerceFloat(row.Rate) * CoerceFloat(row.Qty))
		result.Totals[i] = total
		result.GrandTotal += total
	}
	result.GrandTotal = Round2(result.GrandTotal)

	if n := len(result.Rows); n > 0 && n < maxWiringRows {
		if strings.TrimSpace(result.Rows[n-1].Qty) != "" {
			result.Rows = append(result.Rows, WiringRow{})
			result.Totals = append(result.Totals, 0)
		}
	}

	return result
}
