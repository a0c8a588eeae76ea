package services

// steelDensity converts sheet volume in mm³ to weight in kg.
const steelDensity = 7.85e-6

// EnclosureSpecRow is one sheet-metal gauge entry. The seven seeded rows
// cover 18 down to 10 SWG; rows are edited in place, never added or removed.
type EnclosureSpecRow struct {
	Gauge      string  `json:"gauge"`
	Thickness  float64 `json:"thickness_mm"`
	Length     float64 `json:"length_mm"`
	Width      float64 `json:"width_mm"`
	UnitWeight float64 `json:"unit_weight_kg"`
	Included   bool    `json:"included"`
}

// EnclosureSpecCalc holds the derived values for one gauge row.
type EnclosureSpecCalc struct {
	Area             float64 `json:"area_mm2"`
	CalculatedWeight float64 `json:"calculated_weight_kg"`
	WeightPerArea    float64 `json:"weight_per_area"`
}

// EnclosureDimensionRow is one panel dimension entry. Row 0 represents the
// outer enclosure shell and is excluded from the volume total.
type EnclosureDimensionRow struct {
	Label  string  `json:"label"`
	Length float64 `json:"length_mm"`
	Width  float64 `json:"width_mm"`
	Height float64 `json:"height_mm"`
	Volume float64 `json:"volume_mm3"`
}

// EnclosureResult is the output of RecomputeEnclosure.
type EnclosureResult struct {
	SpecCalcs   []EnclosureSpecCalc     `json:"spec_calcs"`
	TotalWeight float64                 `json:"total_weight_kg"`
	Dimensions  []EnclosureDimensionRow `json:"dimensions"`
	TotalVolume float64                 `json:"total_volume_mm3"`
}

// PercentAdjustment is the stored result of an explicit "apply percent"
// action over the included gauge rows. It stays stale until re-applied.
type PercentAdjustment struct {
	Base    float64 `json:"base_kg"`
	Percent float64 `json:"percent"`
	Delta   float64 `json:"delta_kg"`
	Final   float64 `json:"final_kg"`
}

// DefaultSpecRows seeds the seven standard gauge entries.
func DefaultSpecRows() []EnclosureSpecRow {
	return []EnclosureSpecRow{
		{Gauge: "18 SWG", Thickness: 1.20, Length: 2500, Width: 1250, UnitWeight: 30},
		{Gauge: "16 SWG", Thickness: 1.50, Length: 2500, Width: 1250, UnitWeight: 40},
		{Gauge: "14 SWG", Thickness: 2.00, Length: 2500, Width: 1250, UnitWeight: 50},
		{Gauge: "13 SWG", Thickness: 2.30, Length: 2500, Width: 1250, UnitWeight: 60},
		{Gauge: "12 SWG", Thickness: 2.64, Length: 2500, Width: 1250, UnitWeight: 70},
		{Gauge: "11 SWG", Thickness: 3.00, Length: 2500, Width: 1250, UnitWeight: 80},
		{Gauge: "10 SWG", Thickness: 3.25, Length: 2500, Width: 1250, UnitWeight: 90},
	}
}

// DefaultDimensionRows seeds the six panel dimension entries. Row 0 carries
// the fixed shell label.
func DefaultDimensionRows() []EnclosureDimensionRow {
	rows := []EnclosureDimensionRow{
		{Label: "28+1+1", Length: 2400, Width: 300, Height: 1600},
	}
	for _, label := range []string{"1", "2", "3", "4", "5"} {
		rows = append(rows, EnclosureDimensionRow{Label: label})
	}
	return rows
}

// dimensionAutofill maps an edited column on dimension row 0 to the rows
// that inherit the new value. The asymmetry (length fills rows 1 and 3,
// width fills row 3 only) mirrors the fabrication sheet this replaces.
var dimensionAutofill = map[string][]int{
	"length": {1, 3},
	"width":  {3},
}

// SetDimension writes a length/width/height value onto one dimension row.
// Writes to row 0's length or width propagate once to the rows named in
// the autofill table; no other row propagates anywhere.
func SetDimension(rows []EnclosureDimensionRow, index int, column string, value float64) {
	if index < 0 || index >= len(rows) {
		return
	}
	set := func(r *EnclosureDimensionRow) {
		switch column {
		case "length":
			r.Length = value
		case "width":
			r.Width = value
		case "height":
			r.Height = value
		}
	}
	set(&rows[index])
	if index != 0 {
		return
	}
	for _, target := range dimensionAutofill[column] {
		if target < len(rows) {
			set(&rows[target])
		}
	}
}

// RecomputeEnclosure derives per-gauge areas and weights and per-panel
// volumes. Total weight counts included gauge rows only; total volume
// counts dimension rows 1..n, never the shell row.
func RecomputeEnclosure(specRows []EnclosureSpecRow, dimRows []EnclosureDimensionRow) EnclosureResult {
	result := EnclosureResult{
		SpecCalcs:  make([]EnclosureSpecCalc, len(specRows)),
		Dimensions: make([]EnclosureDimensionRow, len(dimRows)),
	}

	for i, row := range specRows {
		area := row.Length * row.Width
		calc := EnclosureSpecCalc{
			Area:             area,
			CalculatedWeight: Round2(row.Thickness * area * steelDensity),
		}
		if area > 0 {
			calc.WeightPerArea = row.UnitWeight / area
		}
		result.SpecCalcs[i] = calc
		if row.Included {
			result.TotalWeight += calc.CalculatedWeight
		}
	}

	for i, row := range dimRows {
		row.Volume = row.Length * row.Width * row.Height
		result.Dimensions[i] = row
		if i > 0 {
			result.TotalVolume += row.Volume
		}
	}

	return result
}

// ApplyPercent parses a signed percentage ("10%", "-5") and applies it to
// the summed unit weight of the included gauge rows. A parse failure is
// returned to the caller and replaces nothing.
func ApplyPercent(specRows []EnclosureSpecRow, percentText string) (PercentAdjustment, error) {
	pct, err := ParsePercent(percentText)
	if err != nil {
		return PercentAdjustment{}, err
	}

	var base float64
	for _, row := range specRows {
		if row.Included {
			base += row.UnitWeight
		}
	}

	delta := base * pct / 100
	return PercentAdjustment{
		Base:    base,
		Percent: pct,
		Delta:   delta,
		Final:   base + delta,
	}, nil
}
