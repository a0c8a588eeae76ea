package services

import (
	"errors"
	"math"
	"testing"
)

func testItem(desc string, qty int, listPrice, disc float64) LineItem {
	return LineItem{
		Description:     desc,
		Make:            "ABB",
		Material:        "FR",
		Quantity:        qty,
		ListPrice:       listPrice,
		DiscountPercent: disc,
	}
}

func TestDocumentAddProduct(t *testing.T) {
	t.Run("net qty defaults to quantity", func(t *testing.T) {
		doc := NewDocument()
		if err := doc.AddProduct(testItem("MCCB 100A", 4, 1000, 10), 10); err != nil {
			t.Fatalf("AddProduct: %v", err)
		}
		row := doc.Rows()[0]
		if row.NetQty != 4 {
			t.Errorf("NetQty = %d, want 4", row.NetQty)
		}
		if math.Abs(row.DiscGrossPrice-3600) > 0.001 {
			t.Errorf("DiscGrossPrice = %v, want 3600", row.DiscGrossPrice)
		}
	})

	t.Run("explicit net qty kept", func(t *testing.T) {
		doc := NewDocument()
		item := testItem("MCCB 100A", 4, 1000, 0)
		item.NetQty = 6
		if err := doc.AddProduct(item, 10); err != nil {
			t.Fatalf("AddProduct: %v", err)
		}
		if got := doc.Rows()[0].NetQty; got != 6 {
			t.Errorf("NetQty = %d, want 6", got)
		}
	})

	t.Run("rejects quantity above stock", func(t *testing.T) {
		doc := NewDocument()
		err := doc.AddProduct(testItem("MCCB 100A", 11, 1000, 0), 10)
		if !errors.Is(err, ErrInsufficientStock) {
			t.Errorf("err = %v, want ErrInsufficientStock", err)
		}
		if doc.Len() != 0 {
			t.Errorf("document changed on rejected add: %d rows", doc.Len())
		}
	})

	t.Run("rejects duplicate tuple", func(t *testing.T) {
		doc := NewDocument()
		if err := doc.AddProduct(testItem("MCCB 100A", 2, 1000, 0), 10); err != nil {
			t.Fatalf("first AddProduct: %v", err)
		}
		err := doc.AddProduct(testItem("MCCB 100A", 3, 1000, 5), 10)
		if !errors.Is(err, ErrDuplicateItem) {
			t.Errorf("err = %v, want ErrDuplicateItem", err)
		}
		if doc.Len() != 1 {
			t.Errorf("document changed on rejected add: %d rows", doc.Len())
		}
	})

	t.Run("same description different price allowed", func(t *testing.T) {
		doc := NewDocument()
		if err := doc.AddProduct(testItem("MCCB 100A", 2, 1000, 0), 10); err != nil {
			t.Fatalf("first AddProduct: %v", err)
		}
		if err := doc.AddProduct(testItem("MCCB 100A", 2, 1200, 0), 10); err != nil {
			t.Errorf("second AddProduct: %v", err)
		}
	})
}

func TestDocumentAddHeader(t *testing.T) {
	doc := NewDocument()
	if err := doc.AddHeader("Incomer Section"); err != nil {
		t.Fatalf("AddHeader: %v", err)
	}

	err := doc.AddHeader("INCOMER SECTION")
	if !errors.Is(err, ErrDuplicateSection) {
		t.Errorf("case-insensitive duplicate: err = %v, want ErrDuplicateSection", err)
	}
	if doc.Len() != 1 {
		t.Errorf("document changed on rejected header: %d rows", doc.Len())
	}
}

func TestDocumentEdit(t *testing.T) {
	doc := NewDocument()
	if err := doc.AddProduct(testItem("MCCB 100A", 4, 1000, 10), 10); err != nil {
		t.Fatalf("AddProduct: %v", err)
	}

	newDisc := 25.0
	if err := doc.Edit(0, ItemPatch{DiscountPercent: &newDisc}); err != nil {
		t.Fatalf("Edit: %v", err)
	}

	row := doc.Rows()[0]
	if math.Abs(row.DiscUnitPrice-750) > 0.001 {
		t.Errorf("DiscUnitPrice after edit = %v, want 750", row.DiscUnitPrice)
	}
	if math.Abs(row.DiscGrossPrice-3000) > 0.001 {
		t.Errorf("DiscGrossPrice after edit = %v, want 3000", row.DiscGrossPrice)
	}

	if err := doc.Edit(5, ItemPatch{}); err == nil {
		t.Error("expected out-of-range error")
	}
	if err := doc.Edit(-1, ItemPatch{}); err == nil {
		t.Error("expected out-of-range error for negative index")
	}
}

func TestDocumentDelete(t *testing.T) {
	doc := NewDocument()
	doc.AddProduct(testItem("A", 1, 100, 0), 10)
	doc.AddProduct(testItem("B", 1, 200, 0), 10)
	doc.AddProduct(testItem("C", 1, 300, 0), 10)

	if err := doc.Delete(1); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	rows := doc.Rows()
	if len(rows) != 2 || rows[0].Description != "A" || rows[1].Description != "C" {
		t.Errorf("rows after delete = %+v", rows)
	}

	if err := doc.Delete(7); err == nil {
		t.Error("expected out-of-range error")
	}
}

func TestDocumentTotals(t *testing.T) {
	t.Run("empty document", func(t *testing.T) {
		doc := NewDocument()
		lp, net := doc.Totals()
		if lp != 0 || net != 0 {
			t.Errorf("Totals() = (%v, %v), want (0, 0)", lp, net)
		}
	})

	t.Run("headers excluded", func(t *testing.T) {
		doc := NewDocument()
		doc.AddHeader("Section 1")
		doc.AddProduct(testItem("A", 2, 100, 10), 10)
		doc.AddProduct(testItem("B", 1, 500, 0), 10)

		lp, net := doc.Totals()
		if math.Abs(lp-700) > 0.001 {
			t.Errorf("lpTotal = %v, want 700", lp)
		}
		if math.Abs(net-680) > 0.001 {
			t.Errorf("netTotal = %v, want 680", net)
		}
	})
}

func TestDocumentGroups(t *testing.T) {
	t.Run("items before first header are ungrouped", func(t *testing.T) {
		doc := NewDocument()
		doc.AddProduct(testItem("Loose", 1, 100, 0), 10)
		doc.AddHeader("Feeders")
		doc.AddProduct(testItem("Feeder A", 1, 200, 0), 10)
		doc.AddProduct(testItem("Feeder B", 1, 300, 0), 10)

		groups := doc.Groups()
		if len(groups) != 2 {
			t.Fatalf("len(groups) = %d, want 2", len(groups))
		}
		if groups[0].Name != UngroupedSection || len(groups[0].Items) != 1 {
			t.Errorf("group 0 = %+v", groups[0])
		}
		if groups[1].Name != "Feeders" || len(groups[1].Items) != 2 {
			t.Errorf("group 1 = %+v", groups[1])
		}
	})

	t.Run("empty header keeps empty group", func(t *testing.T) {
		doc := NewDocument()
		doc.AddHeader("Empty")
		doc.AddHeader("Full")
		doc.AddProduct(testItem("X", 1, 100, 0), 10)

		groups := doc.Groups()
		if len(groups) != 2 {
			t.Fatalf("len(groups) = %d, want 2", len(groups))
		}
		if len(groups[0].Items) != 0 {
			t.Errorf("group %q has %d items, want 0", groups[0].Name, len(groups[0].Items))
		}
	})

	t.Run("empty document has no groups", func(t *testing.T) {
		doc := NewDocument()
		if groups := doc.Groups(); len(groups) != 0 {
			t.Errorf("Groups() = %+v, want none", groups)
		}
	})
}

func TestDocumentClear(t *testing.T) {
	doc := NewDocument()
	doc.AddHeader("S")
	doc.AddProduct(testItem("A", 1, 100, 0), 10)

	doc.Clear()
	if doc.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", doc.Len())
	}

	// A cleared document accepts rows that existed before the clear.
	if err := doc.AddProduct(testItem("A", 1, 100, 0), 10); err != nil {
		t.Errorf("AddProduct after Clear: %v", err)
	}
}
