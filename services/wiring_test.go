package services

import (
	"math"
	"testing"
)

func TestRecomputeWiring(t *testing.T) {
	t.Run("per row and grand totals", func(t *testing.T) {
		rows := DefaultWiringRows()
		rows[0].Qty = "3" // 150 x 3
		rows[1].Qty = "2" // 250 x 2

		result := RecomputeWiring(rows)

		if math.Abs(result.Totals[0]-450) > 0.001 {
			t.Errorf("Totals[0] = %v, want 450", result.Totals[0])
		}
		if math.Abs(result.Totals[1]-500) > 0.001 {
			t.Errorf("Totals[1] = %v, want 500", result.Totals[1])
		}
		if math.Abs(result.GrandTotal-950) > 0.001 {
			t.Errorf("GrandTotal = %v, want 950", result.GrandTotal)
		}
	})

	t.Run("blank and garbage contribute zero", func(t *testing.T) {
		rows := []WiringRow{
			{Size: "15", Rate: "150", Qty: ""},
			{Size: "25", Rate: "abc", Qty: "4"},
			{Size: "35", Rate: "370", Qty: "x"},
		}

		result := RecomputeWiring(rows)
		if result.GrandTotal != 0 {
			t.Errorf("GrandTotal = %v, want 0", result.GrandTotal)
		}
	})

	t.Run("grows one blank row when last qty filled", func(t *testing.T) {
		rows := DefaultWiringRows()
		rows[len(rows)-1].Qty = "1"

		result := RecomputeWiring(rows)

		if len(result.Rows) != len(rows)+1 {
			t.Fatalf("len(Rows) = %d, want %d", len(result.Rows), len(rows)+1)
		}
		last := result.Rows[len(result.Rows)-1]
		if last.Size != "" || last.Rate != "" || last.Qty != "" {
			t.Errorf("appended row not blank: %+v", last)
		}
		if len(result.Totals) != len(result.Rows) {
			t.Errorf("totals length %d does not match rows %d", len(result.Totals), len(result.Rows))
		}
	})

	t.Run("no growth when last qty blank", func(t *testing.T) {
		rows := DefaultWiringRows()
		rows[0].Qty = "5"

		result := RecomputeWiring(rows)
		if len(result.Rows) != len(rows) {
			t.Errorf("len(Rows) = %d, want %d", len(result.Rows), len(rows))
		}
	})

	t.Run("growth stops at cap", func(t *testing.T) {
		rows := make([]WiringRow, maxWiringRows)
		for i := range rows {
			rows[i] = WiringRow{Size: "15", Rate: "150", Qty: "1"}
		}

		result := RecomputeWiring(rows)
		if len(result.Rows) != maxWiringRows {
			t.Errorf("len(Rows) = %d, want %d", len(result.Rows), maxWiringRows)
		}
	})

	t.Run("grows at most once per call", func(t *testing.T) {
		rows := []WiringRow{{Size: "15", Rate: "150", Qty: "2"}}

		result := RecomputeWiring(rows)
		if len(result.Rows) != 2 {
			t.Errorf("len(Rows) = %d, want 2", len(result.Rows))
		}
	})

	t.Run("empty input stays empty", func(t *testing.T) {
		result := RecomputeWiring(nil)
		if len(result.Rows) != 0 || result.GrandTotal != 0 {
			t.Errorf("result = %+v, want empty", result)
		}
	})
}

func TestDefaultWiringRows(t *testing.T) {
	rows := DefaultWiringRows()
	if len(rows) != 8 {
		t.Fatalf("len = %d, want 8", len(rows))
	}
	if rows[0].Size != "15" || rows[0].Rate != "150" {
		t.Errorf("first row = %+v, want size 15 rate 150", rows[0])
	}
	if rows[7].Size != "150" || rows[7].Rate != "1600" {
		t.Errorf("last row = %+v, want size 150 rate 1600", rows[7])
	}
}
