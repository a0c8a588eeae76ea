// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotemaker/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestCustomer creates a customer record and returns it.
func CreateTestCustomer(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("customers")
	if err != nil {
		t.Fatalf("failed to find customers collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("phone", "98765 43210")
	record.Set("address", "Plot 14, MIDC, Pune")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test customer: %v", err)
	}

	return record
}

// CreateTestCategory creates a category record and returns it.
func CreateTestCategory(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("categories")
	if err != nil {
		t.Fatalf("failed to find categories collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test category: %v", err)
	}

	return record
}

// CreateTestInventoryItem creates an inventory record with the given tuple
// and stock, using fixed pricing defaults.
func CreateTestInventoryItem(t *testing.T, app *pocketbase.PocketBase, description, make_, material string, stock int) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("inventory")
	if err != nil {
		t.Fatalf("failed to find inventory collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("description", description)
	record.Set("ratings", "100A")
	record.Set("make", make_)
	record.Set("material", material)
	record.Set("category", "Circuit Breakers")
	record.Set("total_quantity", stock)
	record.Set("discount_percent", 35.0)
	record.Set("list_price", 8450.0)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test inventory item: %v", err)
	}

	return record
}

// CreateTestQuotation creates a quotation record and returns it.
func CreateTestQuotation(t *testing.T, app *pocketbase.PocketBase, quotationNo string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotations")
	if err != nil {
		t.Fatalf("failed to find quotations collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quotation_no", quotationNo)
	record.Set("customer_name", "Sharma Switchgear Pvt Ltd")
	record.Set("phone", "98765 43210")
	record.Set("shipping_address", "Plot 14, MIDC, Pune")
	record.Set("quotation_date", "2026-08-01")
	record.Set("delivery_date", "2026-09-15")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quotation: %v", err)
	}

	return record
}

// CreateTestQuotationItem creates a product row on a quotation. Derived
// prices are stored exactly as given.
func CreateTestQuotationItem(t *testing.T, app *pocketbase.PocketBase, quotationID string, sortOrder int, description string, qty int, listPrice, discPercent float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotation_items")
	if err != nil {
		t.Fatalf("failed to find quotation_items collection: %v", err)
	}

	unit := listPrice * (1 - discPercent/100)

	record := core.NewRecord(col)
	record.Set("quotation", quotationID)
	record.Set("sort_order", sortOrder)
	record.Set("row_type", "item")
	record.Set("description", description)
	record.Set("make", "ABB")
	record.Set("material", "Thermoplastic")
	record.Set("quantity", qty)
	record.Set("net_qty", qty)
	record.Set("list_price", listPrice)
	record.Set("discount_percent", discPercent)
	record.Set("disc_unit_price", unit)
	record.Set("disc_gross_price", unit*float64(qty))
	record.Set("lp_gross_price", listPrice*float64(qty))

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quotation item: %v", err)
	}

	return record
}

// CreateTestQuotationHeader creates a section-header row on a quotation.
func CreateTestQuotationHeader(t *testing.T, app *pocketbase.PocketBase, quotationID string, sortOrder int, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotation_items")
	if err != nil {
		t.Fatalf("failed to find quotation_items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quotation", quotationID)
	record.Set("sort_order", sortOrder)
	record.Set("row_type", "header")
	record.Set("description", name)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quotation header: %v", err)
	}

	return record
}
