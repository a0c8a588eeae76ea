package services

import (
	"errors"
	"math"
	"testing"
)

func TestBusbarAddSection(t *testing.T) {
	t.Run("template titles get seeded rows", func(t *testing.T) {
		book := &BusbarBook{}
		section, err := book.AddSection("Main Horizontal Busbar")
		if err != nil {
			t.Fatalf("AddSection: %v", err)
		}
		if len(section.Rows) != 1 {
			t.Fatalf("len(Rows) = %d, want 1", len(section.Rows))
		}
		if section.Rows[0].Length != "25" || section.Rows[0].Phases != "3" {
			t.Errorf("seeded row = %+v", section.Rows[0])
		}
	})

	t.Run("custom titles start with one blank row", func(t *testing.T) {
		book := &BusbarBook{}
		section, err := book.AddSection("Neutral Link")
		if err != nil {
			t.Fatalf("AddSection: %v", err)
		}
		if len(section.Rows) != 1 || section.Rows[0] != (BusbarRow{}) {
			t.Errorf("rows = %+v, want one blank row", section.Rows)
		}
	})

	t.Run("duplicate title rejected case-insensitively", func(t *testing.T) {
		book := &BusbarBook{}
		if _, err := book.AddSection("Earth Busbar"); err != nil {
			t.Fatalf("first AddSection: %v", err)
		}
		_, err := book.AddSection("EARTH BUSBAR")
		if !errors.Is(err, ErrDuplicateBusbarSection) {
			t.Errorf("err = %v, want ErrDuplicateBusbarSection", err)
		}
		if len(book.Sections) != 1 {
			t.Errorf("sections = %d, want 1", len(book.Sections))
		}
	})
}

func TestCalculateAll(t *testing.T) {
	t.Run("aluminum reference row", func(t *testing.T) {
		section := &BusbarSection{
			Title: "Main",
			Rows: []BusbarRow{{
				Length: "25", Width: "10", Runs: "1",
				Phases: "3", Neutrals: "0",
				PanelLength: "1600", HorizontalRuns: "1",
				PricePerKg: "100",
			}},
		}

		if err := CalculateAll([]*BusbarSection{section}, DensityAluminum); err != nil {
			t.Fatalf("CalculateAll: %v", err)
		}

		row := section.Rows[0]
		if row.WeightPerMeter != "0.675" {
			t.Errorf("WeightPerMeter = %q, want 0.675", row.WeightPerMeter)
		}
		if row.TotalLength != "4.80" {
			t.Errorf("TotalLength = %q, want 4.80", row.TotalLength)
		}
		if row.TotalWeight != "3.24" {
			t.Errorf("TotalWeight = %q, want 3.24", row.TotalWeight)
		}
		if row.GrandPrice != "324.00" {
			t.Errorf("GrandPrice = %q, want 324.00", row.GrandPrice)
		}
	})

	t.Run("zero density refused", func(t *testing.T) {
		section := &BusbarSection{Rows: []BusbarRow{{Length: "25"}}}
		err := CalculateAll([]*BusbarSection{section}, 0)
		if !errors.Is(err, ErrNoMaterialSelected) {
			t.Errorf("err = %v, want ErrNoMaterialSelected", err)
		}
		if section.Rows[0].WeightPerMeter != "" {
			t.Errorf("row touched despite refusal: %+v", section.Rows[0])
		}
	})

	t.Run("bad row gets sentinel, others still compute", func(t *testing.T) {
		section := &BusbarSection{
			Rows: []BusbarRow{
				{Length: "abc", Width: "10"},
				{Length: "25", Width: "10", Runs: "1", Phases: "3",
					PanelLength: "1600", HorizontalRuns: "1"},
			},
		}

		if err := CalculateAll([]*BusbarSection{section}, DensityCopper); err != nil {
			t.Fatalf("CalculateAll: %v", err)
		}

		bad := section.Rows[0]
		if bad.WeightPerMeter != BusbarErrorSentinel ||
			bad.TotalLength != BusbarErrorSentinel ||
			bad.TotalWeight != BusbarErrorSentinel ||
			bad.GrandPrice != BusbarErrorSentinel {
			t.Errorf("bad row results = %+v, want all %q", bad, BusbarErrorSentinel)
		}
		if section.Rows[1].WeightPerMeter == BusbarErrorSentinel || section.Rows[1].WeightPerMeter == "" {
			t.Errorf("good row did not compute: %+v", section.Rows[1])
		}
	})

	t.Run("blank fields compute as zero", func(t *testing.T) {
		section := &BusbarSection{Rows: []BusbarRow{{Length: "25", Width: "10"}}}

		if err := CalculateAll([]*BusbarSection{section}, DensityAluminum); err != nil {
			t.Fatalf("CalculateAll: %v", err)
		}

		row := section.Rows[0]
		if row.WeightPerMeter != "0.000" {
			t.Errorf("WeightPerMeter = %q, want 0.000 (blank runs)", row.WeightPerMeter)
		}
		if row.GrandPrice != "0.00" {
			t.Errorf("GrandPrice = %q, want 0.00", row.GrandPrice)
		}
	})
}

func TestGrandTotal(t *testing.T) {
	sections := []*BusbarSection{
		{
			Title: "Main",
			Rows: []BusbarRow{
				{GrandPrice: "324.00"},
				{GrandPrice: BusbarErrorSentinel},
				{GrandPrice: ""},
			},
		},
		{
			Title: "Earth",
			Rows:  []BusbarRow{{GrandPrice: "100.50"}},
		},
	}

	got := GrandTotal(sections)
	if math.Abs(got-424.50) > 0.001 {
		t.Errorf("GrandTotal = %v, want 424.50", got)
	}
}

func TestGrandTotalEmpty(t *testing.T) {
	if got := GrandTotal(nil); got != 0 {
		t.Errorf("GrandTotal(nil) = %v, want 0", got)
	}
}
