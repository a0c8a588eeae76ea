package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ── Definition structs ───────────────────────────────────────────────────

type customerDef struct {
	name    string
	phone   string
	address string
}

type inventoryDef struct {
	description     string
	ratings         string
	make            string
	material        string
	category        string
	totalQuantity   int
	discountPercent float64
	listPrice       float64
}

// Seed populates the catalog collections with realistic electrical panel
// data. It is safe to call on every startup because it returns early if
// any inventory records already exist.
func Seed(app *pocketbase.PocketBase) error {
	// ── idempotency: skip if inventory already exists ────────────────
	inventoryCol, err := app.FindCollectionByNameOrId("inventory")
	if err != nil {
		return fmt.Errorf("seed: could not find inventory collection: %w", err)
	}
	existing, err := app.FindAllRecords(inventoryCol)
	if err != nil {
		return fmt.Errorf("seed: could not query inventory: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: inventory collection is empty – inserting seed data …")

	customersCol, err := app.FindCollectionByNameOrId("customers")
	if err != nil {
		return fmt.Errorf("seed: could not find customers collection: %w", err)
	}
	categoriesCol, err := app.FindCollectionByNameOrId("categories")
	if err != nil {
		return fmt.Errorf("seed: could not find categories collection: %w", err)
	}

	customers := []customerDef{
		{"Sharma Switchgear Pvt Ltd", "98765 43210", "Plot 14, MIDC Industrial Area, Pune 411026"},
		{"Coastal Marine Electricals", "94422 18837", "Dock Road, Willingdon Island, Kochi 682003"},
		{"Trident Infra Projects", "99001 27645", "Tower B, Sector 62, Noida 201309"},
	}

	categories := []string{
		"Circuit Breakers",
		"Contactors & Relays",
		"Metering",
		"Busbar & Accessories",
	}

	items := []inventoryDef{
		{"MCCB 100A 3P 25kA", "100A", "ABB", "Thermoplastic", "Circuit Breakers", 40, 35, 8450},
		{"MCCB 250A 4P 36kA", "250A", "Schneider", "Thermoplastic", "Circuit Breakers", 18, 40, 21300},
		{"ACB 1600A 3P EDO", "1600A", "L&T", "Steel", "Circuit Breakers", 4, 30, 185000},
		{"MCB 32A C-Curve SP", "32A", "Legrand", "Thermoplastic", "Circuit Breakers", 240, 45, 385},
		{"Power Contactor 95A AC3", "95A", "Siemens", "Thermoplastic", "Contactors & Relays", 32, 38, 6200},
		{"Thermal Overload Relay 80-100A", "100A", "Siemens", "Thermoplastic", "Contactors & Relays", 28, 38, 3950},
		{"Digital Multifunction Meter CL0.5", "440V", "Secure", "ABS", "Metering", 22, 25, 7800},
		{"CT 1600/5A CL1 15VA", "1600/5A", "Kappa", "Epoxy", "Metering", 12, 20, 1450},
		{"Aluminum Busbar 50x10", "50x10mm", "Hindalco", "Aluminum", "Busbar & Accessories", 120, 12, 890},
		{"Copper Busbar 25x10", "25x10mm", "Metrod", "Copper", "Busbar & Accessories", 80, 10, 2350},
		{"SMC Busbar Support 3P", "415V", "Epcos", "SMC", "Busbar & Accessories", 150, 30, 265},
	}

	for _, c := range customers {
		r := core.NewRecord(customersCol)
		r.Set("name", c.name)
		r.Set("phone", c.phone)
		r.Set("address", c.address)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save customer %q: %w", c.name, err)
		}
	}

	for _, name := range categories {
		r := core.NewRecord(categoriesCol)
		r.Set("name", name)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save category %q: %w", name, err)
		}
	}

	for _, item := range items {
		r := core.NewRecord(inventoryCol)
		r.Set("description", item.description)
		r.Set("ratings", item.ratings)
		r.Set("make", item.make)
		r.Set("material", item.material)
		r.Set("category", item.category)
		r.Set("total_quantity", item.totalQuantity)
		r.Set("discount_percent", item.discountPercent)
		r.Set("list_price", item.listPrice)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save inventory item %q: %w", item.description, err)
		}
	}

	log.Printf("seed: inserted %d customers, %d categories, %d inventory items",
		len(customers), len(categories), len(items))
	return nil
}
