package services

import (
	"fmt"
	"strconv"
	"strings"
)

// Busbar material densities in kg per mm² of cross-section per metre of run.
const (
	DensityAluminum = 0.0027
	DensityCopper   = 0.0089
)

// BusbarErrorSentinel marks a row whose inputs could not be parsed during
// CalculateAll. The row is skipped by grand totalling; other rows are
// unaffected.
const BusbarErrorSentinel = "Error"

// BusbarRow holds the geometric and electrical inputs for one busbar run,
// as raw text, plus the formatted results written back by CalculateAll.
type BusbarRow struct {
	Length         string `json:"length_mm"`
	Width          string `json:"width_mm"`
	Runs           string `json:"run_count"`
	Phases         string `json:"phase_count"`
	Neutrals       string `json:"neutral_count"`
	PanelLength    string `json:"panel_length_mm"`
	HorizontalRuns string `json:"horizontal_run_count"`
	PricePerKg     string `json:"price_per_kg"`

	WeightPerMeter string `json:"weight_per_meter"`
	TotalLength    string `json:"total_length_m"`
	TotalWeight    string `json:"total_weight_kg"`
	GrandPrice     string `json:"grand_price"`
}

// BusbarSection is a titled group of busbar rows. Titles are unique
// case-insensitively within a book.
type BusbarSection struct {
	Title string      `json:"title"`
	Rows  []BusbarRow `json:"rows"`
}

// BusbarBook owns the busbar sections for one working session.
type BusbarBook struct {
	Sections []*BusbarSection `json:"sections"`
}

// busbarTemplates carries canned starter rows for the well-known section
// titles. Custom titles start with a single blank row.
var busbarTemplates = map[string][]BusbarRow{
	"main horizontal busbar": {
		{Length: "25", Width: "10", Runs: "1", Phases: "3", Neutrals: "1", PanelLength: "1600", HorizontalRuns: "1"},
	},
	"vertical busbar": {
		{Length: "25", Width: "10", Runs: "1", Phases: "3", Neutrals: "0", PanelLength: "1600", HorizontalRuns: "1"},
	},
	"earth busbar": {
		{Length: "25", Width: "5", Runs: "1", Phases: "1", Neutrals: "0", PanelLength: "1600", HorizontalRuns: "1"},
	},
}

// AddSection appends a new titled section. Predefined titles are seeded
// from the template table; anything else starts with one blank row.
// Duplicate titles (case-insensitive) are rejected without a merge.
func (b *BusbarBook) AddSection(title string) (*BusbarSection, error) {
	title = strings.TrimSpace(title)
	for _, s := range b.Sections {
		if strings.EqualFold(s.Title, title) {
			return nil, ErrDuplicateBusbarSection
		}
	}

	section := &BusbarSection{Title: title}
	if seed, ok := busbarTemplates[strings.ToLower(title)]; ok {
		section.Rows = append(section.Rows, seed...)
	} else {
		section.Rows = append(section.Rows, BusbarRow{})
	}
	b.Sections = append(b.Sections, section)
	return section, nil
}

// CalculateAll computes weight and price for every row of every section,
// writing formatted results back onto the rows. A zero density means no
// material was selected: the whole calculation is refused and no row is
// touched. A single row with unparseable input gets the error sentinel on
// its result fields; the remaining rows still compute.
func CalculateAll(sections []*BusbarSection, density float64) error {
	if density == 0 {
		return ErrNoMaterialSelected
	}

	for _, section := range sections {
		for i := range section.Rows {
			calculateRow(&section.Rows[i], density)
		}
	}
	return nil
}

func calculateRow(row *BusbarRow, density float64) {
	length, err1 := parseBusbarField(row.Length)
	width, err2 := parseBusbarField(row.Width)
	runs, err3 := parseBusbarField(row.Runs)
	phases, err4 := parseBusbarField(row.Phases)
	neutrals, err5 := parseBusbarField(row.Neutrals)
	panelLength, err6 := parseBusbarField(row.PanelLength)
	horizontal, err7 := parseBusbarField(row.HorizontalRuns)
	pricePerKg, err8 := parseBusbarField(row.PricePerKg)

	for _, err := range []error{err1, err2, err3, err4, err5, err6, err7, err8} {
		if err != nil {
			row.WeightPerMeter = BusbarErrorSentinel
			row.TotalLength = BusbarErrorSentinel
			row.TotalWeight = BusbarErrorSentinel
			row.GrandPrice = BusbarErrorSentinel
			return
		}
	}

	weightPerMeter := length * width * runs * density
	totalLength := (panelLength / 1000) * horizontal * (phases + neutrals)
	totalWeight := totalLength * weightPerMeter
	grandPrice := totalWeight * pricePerKg

	row.WeightPerMeter = fmt.Sprintf("%.3f", weightPerMeter)
	row.TotalLength = fmt.Sprintf("%.2f", totalLength)
	row.TotalWeight = fmt.Sprintf("%.2f", totalWeight)
	row.GrandPrice = fmt.Sprintf("%.2f", grandPrice)
}

// parseBusbarField treats blank as 0 but rejects garbage, so a half-filled
// template row still computes while a typo flags the row.
func parseBusbarField(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ParseError{Input: s}
	}
	return v, nil
}

// GrandTotal sums the grand prices across all sections, skipping rows
// carrying the error sentinel or no result at all. It does not require a
// preceding CalculateAll over the same book.
func GrandTotal(sections []*BusbarSection) float64 {
	var total float64
	for _, section := range sections {
		for _, row := range section.Rows {
			if row.GrandPrice == "" || row.GrandPrice == BusbarErrorSentinel {
				continue
			}
			if v, err := strconv.ParseFloat(row.GrandPrice, 64); err == nil {
				total += v
			}
		}
	}
	return Round2(total)
}
