package services

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Customer is a catalog customer record used for quotation autofill.
type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// InventoryItem is one purchasable catalog entry.
type InventoryItem struct {
	Description     string  `json:"description"`
	Ratings         string  `json:"ratings"`
	Make            string  `json:"make"`
	Material        string  `json:"material"`
	TotalQuantity   int     `json:"total_quantity"`
	DiscountPercent float64 `json:"discount_percent"`
	ListPrice       float64 `json:"list_price"`
}

// DefaultCategory is always present in the category list, stored or not.
const DefaultCategory = "General"

// ListCustomers returns all customers sorted by name. Any lookup failure
// degrades to an empty list; an unreachable catalog is a valid, displayable
// state, not an error.
func ListCustomers(app *pocketbase.PocketBase) []Customer {
	records, err := app.FindRecordsByFilter("customers", "id != ''", "name", 0, 0)
	if err != nil {
		log.Printf("catalog: ListCustomers degraded to empty: %v", err)
		return []Customer{}
	}

	customers := make([]Customer, 0, len(records))
	for _, r := range records {
		customers = append(customers, Customer{
			Name:    r.GetString("name"),
			Phone:   r.GetString("phone"),
			Address: r.GetString("address"),
		})
	}
	return customers
}

// ListCategories returns the sorted category names, always including the
// implicit default. Failures degrade to just the default.
func ListCategories(app *pocketbase.PocketBase) []string {
	names := []string{DefaultCategory}

	records, err := app.FindRecordsByFilter("categories", "id != ''", "name", 0, 0)
	if err != nil {
		log.Printf("catalog: ListCategories degraded to default only: %v", err)
		return names
	}

	for _, r := range records {
		name := r.GetString("name")
		if name != "" && !strings.EqualFold(name, DefaultCategory) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// ListInventory returns catalog items sorted by description, optionally
// filtered by category name. Failures degrade to an empty list.
func ListInventory(app *pocketbase.PocketBase, category string) []InventoryItem {
	filter := "id != ''"
	params := map[string]any{}
	if category != "" {
		filter = "category = {:category}"
		params["category"] = category
	}

	records, err := app.FindRecordsByFilter("inventory", filter, "description", 0, 0, params)
	if err != nil {
		log.Printf("catalog: ListInventory degraded to empty: %v", err)
		return []InventoryItem{}
	}

	items := make([]InventoryItem, 0, len(records))
	for _, r := range records {
		items = append(items, InventoryItem{
			Description:     r.GetString("description"),
			Ratings:         r.GetString("ratings"),
			Make:            r.GetString("make"),
			Material:        r.GetString("material"),
			TotalQuantity:   r.GetInt("total_quantity"),
			DiscountPercent: r.GetFloat("discount_percent"),
			ListPrice:       r.GetFloat("list_price"),
		})
	}
	return items
}

// FindInventoryItem resolves one catalog entry by its identifying tuple.
// The boolean is false when no such entry exists or the catalog is down.
func FindInventoryItem(app *pocketbase.PocketBase, description, make_, material string) (InventoryItem, bool) {
	records, err := app.FindRecordsByFilter(
		"inventory",
		"description = {:description} && make = {:make} && material = {:material}",
		"", 1, 0,
		map[string]any{"description": description, "make": make_, "material": material},
	)
	if err != nil || len(records) == 0 {
		return InventoryItem{}, false
	}

	r := records[0]
	return InventoryItem{
		Description:     r.GetString("description"),
		Ratings:         r.GetString("ratings"),
		Make:            r.GetString("make"),
		Material:        r.GetString("material"),
		TotalQuantity:   r.GetInt("total_quantity"),
		DiscountPercent: r.GetFloat("discount_percent"),
		ListPrice:       r.GetFloat("list_price"),
	}, true
}

// CreateCategory stores a new category name. Unlike the read paths this is
// side-effecting and reports failures, including duplicates.
func CreateCategory(app *pocketbase.PocketBase, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("category name is required")
	}

	existing, err := app.FindRecordsByFilter(
		"categories", "name:lower = {:name}", "", 1, 0,
		map[string]any{"name": strings.ToLower(name)},
	)
	if err == nil && len(existing) > 0 {
		return fmt.Errorf("category %q already exists", name)
	}

	col, err := app.FindCollectionByNameOrId("categories")
	if err != nil {
		return fmt.Errorf("categories collection not found: %w", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	if err := app.Save(record); err != nil {
		return fmt.Errorf("save category %q: %w", name, err)
	}
	return nil
}
