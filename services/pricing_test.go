package services

import (
	"math"
	"testing"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name            string
		item            LineItem
		expectUnit      float64
		expectDiscGross float64
		expectLPGross   float64
	}{
		{
			name: "basic discount",
			item: LineItem{
				NetQty: 10, ListPrice: 100, DiscountPercent: 20,
			},
			expectUnit:      80,
			expectDiscGross: 800,
			expectLPGross:   1000,
		},
		{
			name: "zero discount",
			item: LineItem{
				NetQty: 3, ListPrice: 150,
			},
			expectUnit:      150,
			expectDiscGross: 450,
			expectLPGross:   450,
		},
		{
			name: "full discount",
			item: LineItem{
				NetQty: 5, ListPrice: 200, DiscountPercent: 100,
			},
			expectUnit:      0,
			expectDiscGross: 0,
			expectLPGross:   1000,
		},
		{
			name: "fractional prices round to 2dp",
			item: LineItem{
				NetQty: 3, ListPrice: 33.335, DiscountPercent: 10,
			},
			expectUnit:      30.00,
			expectDiscGross: 90.00,
			expectLPGross:   100.01,
		},
		{
			name: "zero net qty",
			item: LineItem{
				NetQty: 0, ListPrice: 500, DiscountPercent: 10,
			},
			expectUnit:      450,
			expectDiscGross: 0,
			expectLPGross:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(tt.item)
			if math.Abs(got.DiscUnitPrice-tt.expectUnit) > 0.001 {
				t.Errorf("DiscUnitPrice = %v, want %v", got.DiscUnitPrice, tt.expectUnit)
			}
			if math.Abs(got.DiscGrossPrice-tt.expectDiscGross) > 0.001 {
				t.Errorf("DiscGrossPrice = %v, want %v", got.DiscGrossPrice, tt.expectDiscGross)
			}
			if math.Abs(got.LPGrossPrice-tt.expectLPGross) > 0.001 {
				t.Errorf("LPGrossPrice = %v, want %v", got.LPGrossPrice, tt.expectLPGross)
			}
		})
	}
}

func TestDeriveIdempotent(t *testing.T) {
	item := LineItem{
		Description: "MCCB 100A", Quantity: 4, NetQty: 4,
		ListPrice: 2350.75, DiscountPercent: 12.5,
	}

	once := Derive(item)
	twice := Derive(once)

	if once != twice {
		t.Errorf("Derive not idempotent: first %+v, second %+v", once, twice)
	}
}

func TestDeriveHeaderZeroesEverything(t *testing.T) {
	header := Derive(LineItem{
		Kind:        RowKindHeader,
		Description: "Incomer Section",
		Quantity:    7, NetQty: 7, ListPrice: 999, DiscountPercent: 50,
		DiscUnitPrice: 1, DiscGrossPrice: 2, LPGrossPrice: 3,
	})

	if !header.IsHeader() {
		t.Fatal("expected header row")
	}
	if header.Quantity != 0 || header.NetQty != 0 {
		t.Errorf("header quantities not zeroed: qty=%d netQty=%d", header.Quantity, header.NetQty)
	}
	if header.ListPrice != 0 || header.DiscountPercent != 0 {
		t.Errorf("header prices not zeroed: lp=%v disc=%v", header.ListPrice, header.DiscountPercent)
	}
	if header.DiscUnitPrice != 0 || header.DiscGrossPrice != 0 || header.LPGrossPrice != 0 {
		t.Errorf("header derived fields not zeroed: %+v", header)
	}
}
